package utils

import (
	"math"

	"github.com/adiashrafff-private/calorie-trackerv1/models"
)

// ActivityMultipliers maps an activity level to its TDEE multiplier. Also the
// source of truth for which levels are valid.
var ActivityMultipliers = map[string]float64{
	"sedentary":    1.2,
	"light":        1.375,
	"moderate":     1.55,
	"heavy":        1.725,
	"very_intense": 1.9,
}

// CalculateBMR computes basal metabolic rate via Mifflin-St Jeor.
// Height in centimeters, weight in kilograms.
func CalculateBMR(p *models.UserProfile) float64 {
	bmr := 10*p.Weight + 6.25*p.Height - 5*float64(p.Age)
	if p.Gender == "male" {
		return bmr + 5
	}
	return bmr - 161
}

// CalculateTDEE scales BMR by the activity multiplier. An unknown activity
// level falls back to moderate rather than multiplying by zero.
func CalculateTDEE(p *models.UserProfile) float64 {
	mult, ok := ActivityMultipliers[p.ActivityLevel]
	if !ok {
		mult = ActivityMultipliers["moderate"]
	}
	return CalculateBMR(p) * mult
}

// DailyTarget is TDEE adjusted by the surplus/deficit goal, rounded to a
// whole kcal.
func DailyTarget(p *models.UserProfile) int {
	target := CalculateTDEE(p)
	switch p.Goal {
	case "surplus":
		target += float64(p.GoalAmount)
	case "deficit":
		target -= float64(p.GoalAmount)
	}
	return int(math.Round(target))
}
