package config

import (
	"log"
	"os"

	"github.com/adiashrafff-private/calorie-trackerv1/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading config from environment")
	}

	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "tracker.db"
	}

	var err error
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to open database %s: %v", path, err)
	}

	if err := DB.AutoMigrate(&models.Record{}); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}
