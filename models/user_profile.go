package models

// UserProfile holds everything the daily calorie target is computed from.
// JSON tags match the shape the web client has always persisted.
type UserProfile struct {
	Name          string  `json:"name"`
	Height        float64 `json:"height"` // cm
	Weight        float64 `json:"weight"` // kg
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`        // "male" | "female"
	ActivityLevel string  `json:"activityLevel"` // sedentary | light | moderate | heavy | very_intense
	Goal          string  `json:"goal"`          // "surplus" | "deficit"
	GoalAmount    int     `json:"goalAmount"`    // kcal adjustment
}

func DefaultProfile() UserProfile {
	return UserProfile{
		Height:        170,
		Weight:        70,
		Age:           25,
		Gender:        "male",
		ActivityLevel: "moderate",
		Goal:          "deficit",
		GoalAmount:    400,
	}
}
