package models

// FoodItem is one logged food entry. Immutable after creation; the only way
// to change one is to delete it and add another.
type FoodItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Calories int    `json:"calories"`
}
