package models

// MealTypes is the closed set of meal categories, in display order.
var MealTypes = []string{"breakfast", "lunch", "dinner", "snacks"}

// Meals maps a meal category to its logged items, insertion order preserved.
// All four categories are always present, possibly empty.
type Meals map[string][]FoodItem

func NewMeals() Meals {
	m := make(Meals, len(MealTypes))
	for _, t := range MealTypes {
		m[t] = []FoodItem{}
	}
	return m
}

func IsMealType(category string) bool {
	for _, t := range MealTypes {
		if t == category {
			return true
		}
	}
	return false
}

// Normalize repairs a collection that came out of storage: drops unknown
// categories and makes sure all four known ones exist.
func (m Meals) Normalize() {
	for k := range m {
		if !IsMealType(k) {
			delete(m, k)
		}
	}
	for _, t := range MealTypes {
		if m[t] == nil {
			m[t] = []FoodItem{}
		}
	}
}

// Clone returns a deep copy, so snapshots don't alias the working state.
func (m Meals) Clone() Meals {
	out := make(Meals, len(m))
	for k, items := range m {
		out[k] = append([]FoodItem{}, items...)
	}
	return out
}
