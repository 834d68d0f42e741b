package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/adiashrafff-private/calorie-trackerv1/models"
	"github.com/adiashrafff-private/calorie-trackerv1/services"

	"github.com/gin-gonic/gin"
)

type TrackerController struct {
	Tracker *services.TrackerService
}

func NewTrackerController(t *services.TrackerService) *TrackerController {
	return &TrackerController{Tracker: t}
}

// GET /api/state
func (tc *TrackerController) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, tc.Tracker.State())
}

// POST /api/meals/:category/items  { "name": "egg", "calories": "90" }
func (tc *TrackerController) AddItem(c *gin.Context) {
	category := c.Param("category")
	if !models.IsMealType(category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown meal category"})
		return
	}

	var body struct {
		Name     string `json:"name"`
		Calories string `json:"calories"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, added := tc.Tracker.AddItem(category, body.Name, body.Calories)
	if !added {
		// incomplete input is ignored, not an error
		c.JSON(http.StatusOK, gin.H{"added": false})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"added": true, "item": item})
}

// DELETE /api/meals/:category/items/:id
func (tc *TrackerController) RemoveItem(c *gin.Context) {
	category := c.Param("category")
	if !models.IsMealType(category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown meal category"})
		return
	}
	tc.Tracker.RemoveItem(category, c.Param("id"))
	c.Status(http.StatusNoContent)
}

// PUT /api/meals/:category/input  { "name": "banana" }
func (tc *TrackerController) SetInput(c *gin.Context) {
	category := c.Param("category")
	if !models.IsMealType(category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown meal category"})
		return
	}

	var patch services.InputPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tc.Tracker.SetInput(category, patch)
	c.Status(http.StatusAccepted)
}

// POST /api/clear  { "confirm": true }
func (tc *TrackerController) ClearAll(c *gin.Context) {
	var body struct {
		Confirm bool `json:"confirm"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || !body.Confirm {
		c.JSON(http.StatusBadRequest, gin.H{"error": "confirmation required"})
		return
	}
	tc.Tracker.ClearAll()
	c.Status(http.StatusNoContent)
}

// POST /api/day/end  { "name": "Adi" }  (name only needed while the profile
// has none; it is applied to the profile before archiving)
func (tc *TrackerController) EndDay(c *gin.Context) {
	var body struct {
		Name string `json:"name"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	if strings.TrimSpace(body.Name) != "" {
		tc.Tracker.UpdateProfile(services.ProfilePatch{Name: &body.Name})
	}

	rec, err := tc.Tracker.EndDay()
	if err != nil {
		if errors.Is(err, services.ErrNameRequired) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, rec)
}
