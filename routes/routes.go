package routes

import (
	"github.com/adiashrafff-private/calorie-trackerv1/controllers"
	"github.com/adiashrafff-private/calorie-trackerv1/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(tracker *services.TrackerService, hub *services.RealtimeHub) *gin.Engine {
	r := gin.Default()

	tc := controllers.NewTrackerController(tracker)
	rc := controllers.NewRealtimeController(hub, tracker)

	api := r.Group("/api")
	{
		api.GET("/calories", controllers.GetCalories)

		api.GET("/state", tc.GetState)
		api.POST("/meals/:category/items", tc.AddItem)
		api.DELETE("/meals/:category/items/:id", tc.RemoveItem)
		api.PUT("/meals/:category/input", tc.SetInput)
		api.POST("/clear", tc.ClearAll)
		api.POST("/day/end", tc.EndDay)

		api.GET("/profile", tc.GetProfile)
		api.PUT("/profile", tc.UpdateProfile)

		api.GET("/history", tc.GetHistory)
		api.GET("/export", tc.ExportHistory)
	}

	r.GET("/ws", rc.StateWS)

	return r
}
