package controllers

import (
	"math"
	"net/http"

	"github.com/adiashrafff-private/calorie-trackerv1/services"
	"github.com/adiashrafff-private/calorie-trackerv1/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/profile
func (tc *TrackerController) GetProfile(c *gin.Context) {
	profile, limit := tc.Tracker.Profile()
	c.JSON(http.StatusOK, gin.H{
		"profile":    profile,
		"bmr":        int(math.Round(utils.CalculateBMR(&profile))),
		"tdee":       int(math.Round(utils.CalculateTDEE(&profile))),
		"dailyLimit": limit,
	})
}

// PUT /api/profile  — any subset of profile fields
func (tc *TrackerController) UpdateProfile(c *gin.Context) {
	var patch services.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, limit := tc.Tracker.UpdateProfile(patch)
	c.JSON(http.StatusOK, gin.H{"profile": profile, "dailyLimit": limit})
}
