package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/adiashrafff-private/calorie-trackerv1/services"

	"github.com/gin-gonic/gin"
)

// GET /api/calories?food=banana
func GetCalories(c *gin.Context) {
	food := strings.TrimSpace(c.Query("food"))
	if food == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Food is required"})
		return
	}

	svc := services.NewNutritionService()
	if !svc.Configured() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "API key missing!!"})
		return
	}

	cal, err := svc.LookupCalories(food)
	if err != nil {
		log.Printf("Calorie lookup for %q failed: %v", food, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch calories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"calories": cal})
}
