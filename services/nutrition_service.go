package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

const defaultFDCBaseURL = "https://api.nal.usda.gov/fdc/v1/foods/search"

// NutritionService looks up approximate calorie values through the
// FoodData Central search API. Single attempt per lookup, no retries and no
// caching — it only pre-fills a suggestion the user can overwrite.
type NutritionService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewNutritionService reads FDC_API_KEY (and FDC_API_URL, normally unset)
// from the environment.
func NewNutritionService() *NutritionService {
	baseURL := os.Getenv("FDC_API_URL")
	if baseURL == "" {
		baseURL = defaultFDCBaseURL
	}
	return &NutritionService{
		apiKey:  os.Getenv("FDC_API_KEY"),
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *NutritionService) Configured() bool {
	return s.apiKey != ""
}

type foodSearchResponse struct {
	Foods []struct {
		Description   string `json:"description"`
		FoodNutrients []struct {
			NutrientName string  `json:"nutrientName"`
			Value        float64 `json:"value"`
		} `json:"foodNutrients"`
	} `json:"foods"`
}

// LookupCalories asks for the single best match and returns its "Energy"
// nutrient value. Returns nil (and no error) when nothing matched or the
// match carries no energy entry.
func (s *NutritionService) LookupCalories(food string) (*float64, error) {
	q := url.Values{}
	q.Set("query", food)
	q.Set("pageSize", "1")
	q.Set("api_key", s.apiKey)
	u := s.baseURL + "?" + q.Encode()

	resp, err := s.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("failed to call food search API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read food search response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("food search API error %d: %s", resp.StatusCode, string(body))
	}

	var sr foodSearchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("failed to parse food search JSON: %w", err)
	}

	if len(sr.Foods) == 0 {
		return nil, nil
	}
	for _, n := range sr.Foods[0].FoodNutrients {
		if n.NutrientName == "Energy" {
			v := n.Value
			return &v, nil
		}
	}
	return nil, nil
}
