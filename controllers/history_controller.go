package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// GET /api/history
func (tc *TrackerController) GetHistory(c *gin.Context) {
	c.JSON(http.StatusOK, tc.Tracker.History())
}

// GET /api/export  — history + daily limit as a downloadable JSON document
func (tc *TrackerController) ExportHistory(c *gin.Context) {
	doc := tc.Tracker.Export()
	filename := fmt.Sprintf("calorie-tracker-%s.json", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.IndentedJSON(http.StatusOK, doc)
}
