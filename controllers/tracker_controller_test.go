package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/adiashrafff-private/calorie-trackerv1/models"
	"github.com/adiashrafff-private/calorie-trackerv1/routes"
	"github.com/adiashrafff-private/calorie-trackerv1/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, *services.TrackerService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	tracker := services.NewTrackerService(services.NewMemoryStore(), nil, nil)
	return routes.SetupRouter(tracker, services.NewRealtimeHub()), tracker
}

func doJSON(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddItemEndpoint(t *testing.T) {
	r, tracker := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/meals/breakfast/items", `{"name":"egg","calories":"90"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Added bool            `json:"added"`
		Item  models.FoodItem `json:"item"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Added)
	assert.Equal(t, "egg", resp.Item.Name)
	assert.Equal(t, 90, resp.Item.Calories)
	assert.NotEmpty(t, resp.Item.ID)
	assert.Equal(t, 90, tracker.TotalCalories())
}

func TestAddItemEndpointIgnoresIncompleteInput(t *testing.T) {
	r, tracker := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/meals/breakfast/items", `{"name":"egg","calories":""}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"added": false}`, w.Body.String())
	assert.Equal(t, 0, tracker.TotalCalories())
}

func TestAddItemEndpointUnknownCategory(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/meals/brunch/items", `{"name":"egg","calories":"90"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRemoveItemEndpoint(t *testing.T) {
	r, tracker := newTestRouter(t)

	item, _ := tracker.AddItem("snacks", "chips", "160")

	w := doJSON(r, http.MethodDelete, "/api/meals/snacks/items/"+item.ID, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, 0, tracker.TotalCalories())

	// idempotent
	w = doJSON(r, http.MethodDelete, "/api/meals/snacks/items/"+item.ID, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestClearEndpointRequiresConfirmation(t *testing.T) {
	r, tracker := newTestRouter(t)
	tracker.AddItem("dinner", "pasta", "550")

	for _, body := range []string{"", `{}`, `{"confirm":false}`} {
		w := doJSON(r, http.MethodPost, "/api/clear", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body=%q", body)
		assert.Equal(t, 550, tracker.TotalCalories())
	}

	w := doJSON(r, http.MethodPost, "/api/clear", `{"confirm":true}`)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, 0, tracker.TotalCalories())
}

func TestEndDayEndpoint(t *testing.T) {
	r, tracker := newTestRouter(t)
	tracker.AddItem("breakfast", "egg", "90")

	// no profile name yet: suspended until the caller supplies one
	w := doJSON(r, http.MethodPost, "/api/day/end", "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Empty(t, tracker.History())

	// re-invoked with a name: applied to the profile, then archived
	w = doJSON(r, http.MethodPost, "/api/day/end", `{"name":"Adi"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var rec models.DayRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.Equal(t, 90, rec.TotalCalories)
	assert.Len(t, tracker.History(), 1)

	profile, _ := tracker.Profile()
	assert.Equal(t, "Adi", profile.Name)

	// name is remembered for the next archive
	w = doJSON(r, http.MethodPost, "/api/day/end", "")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, tracker.History(), 2)
}

func TestProfileEndpoints(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/api/profile", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got struct {
		Profile    models.UserProfile `json:"profile"`
		BMR        int                `json:"bmr"`
		TDEE       int                `json:"tdee"`
		DailyLimit int                `json:"dailyLimit"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, models.DefaultProfile(), got.Profile)
	assert.Equal(t, 1674, got.BMR)
	assert.Equal(t, 2594, got.TDEE)
	assert.Equal(t, 2194, got.DailyLimit)

	w = doJSON(r, http.MethodPut, "/api/profile", `{"weight":80}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 80.0, got.Profile.Weight)
	assert.Equal(t, 2301, got.DailyLimit)
}

func TestProfileEndpointRejectsBadEnums(t *testing.T) {
	r, tracker := newTestRouter(t)

	for _, body := range []string{
		`{"gender":"other"}`,
		`{"activityLevel":"couch"}`,
		`{"goal":"maintain"}`,
		`{"height":-10}`,
		`{"goalAmount":-1}`,
	} {
		w := doJSON(r, http.MethodPut, "/api/profile", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
	profile, _ := tracker.Profile()
	assert.Equal(t, models.DefaultProfile(), profile)
}

func TestInputEndpoint(t *testing.T) {
	r, tracker := newTestRouter(t)

	w := doJSON(r, http.MethodPut, "/api/meals/lunch/input", `{"name":"soup"}`)
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "soup", tracker.State().Inputs["lunch"].Name)

	w = doJSON(r, http.MethodPut, "/api/meals/brunch/input", `{"name":"soup"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHistoryAndExportEndpoints(t *testing.T) {
	r, tracker := newTestRouter(t)
	tracker.UpdateProfile(services.ProfilePatch{Name: strptr("Adi")})
	tracker.AddItem("breakfast", "egg", "90")
	tracker.EndDay()

	w := doJSON(r, http.MethodGet, "/api/history", "")
	require.Equal(t, http.StatusOK, w.Code)
	var history []models.DayRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	require.Len(t, history, 1)
	assert.Equal(t, 90, history[0].TotalCalories)

	w = doJSON(r, http.MethodGet, "/api/export", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "calorie-tracker-")

	var doc services.ExportDocument
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "Adi", doc.UserName)
	assert.Equal(t, 2194, doc.DailyLimit)
	assert.Len(t, doc.History, 1)
	assert.NotEmpty(t, doc.ExportDate)
}

func TestStateEndpoint(t *testing.T) {
	r, tracker := newTestRouter(t)
	tracker.AddItem("breakfast", "egg", "90")
	tracker.AddItem("breakfast", "toast", "120")

	w := doJSON(r, http.MethodGet, "/api/state", "")
	require.Equal(t, http.StatusOK, w.Code)

	var state services.TrackerState
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.Equal(t, 210, state.TotalCalories)
	assert.Equal(t, 210, state.MealCalories["breakfast"])
	assert.Equal(t, 2194, state.DailyLimit)
	assert.Len(t, state.Meals["breakfast"], 2)
}

func strptr(s string) *string { return &s }
