// Package diet holds the meal catalog, diet plans, and the user profile with
// its derived nutrition metrics (BMI and daily calorie goal).
package diet

import "errors"

// Category is the bucket a meal is served in.
type Category string

const (
	Breakfast Category = "Breakfast"
	Lunch     Category = "Lunch"
	Dinner    Category = "Dinner"
	Snack     Category = "Snack"
)

// categoryOrder is the declaration order used for plan buckets and any
// rendering that walks all categories.
var categoryOrder = []Category{Breakfast, Lunch, Dinner, Snack}

// ErrUnknownCategory is returned when a meal names a category outside the
// four recognized values.
var ErrUnknownCategory = errors.New("unknown meal category")

// Categories returns the four recognized categories in declaration order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// Valid reports whether c is one of the four recognized categories.
// Matching is exact and case-sensitive.
func (c Category) Valid() bool {
	for _, known := range categoryOrder {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}
