package models

import "gorm.io/datatypes"

// Storage keys, kept identical to the web client's localStorage keys so an
// exported blob from either side reads the same.
const (
	KeyMeals   = "calorieTrackerData"
	KeyHistory = "calorieTrackerHistory"
	KeyProfile = "calorieTrackerProfile"
	KeyName    = "calorieTrackerUserName"
)

// Record is one keyed JSON document. The whole persistence layer is four of
// these; there is no schema version and no migration.
type Record struct {
	Key   string         `gorm:"primaryKey;size:64"`
	Value datatypes.JSON `gorm:"not null"`
}
