package models

// DayRecord is an archived day: a snapshot of the meals at the moment the
// user ended the day, plus the total. Immutable once created. History keeps
// records in append order; ending the same day twice appends twice.
type DayRecord struct {
	Date          string `json:"date"` // e.g. "August 31, 2026"
	Meals         Meals  `json:"meals"`
	TotalCalories int    `json:"totalCalories"`
}
