package main

import (
	"os"

	"github.com/adiashrafff-private/calorie-trackerv1/config"
	"github.com/adiashrafff-private/calorie-trackerv1/routes"
	"github.com/adiashrafff-private/calorie-trackerv1/services"
)

func main() {
	config.InitDB()

	store := services.NewRecordStore(config.DB)
	hub := services.NewRealtimeHub()
	nutrition := services.NewNutritionService()

	tracker := services.NewTrackerService(store, nutrition.LookupCalories, func(s services.TrackerState) {
		hub.Broadcast(s)
	})

	r := routes.SetupRouter(tracker, hub)
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
