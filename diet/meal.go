package diet

import (
	"fmt"
	"hash/fnv"
)

// Meal is a single catalog entry. Identity is the (Name, Category) pair:
// two meals with the same name and category are the same meal no matter
// what their description or macros say.
type Meal struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Calories    int      `json:"calories"`
	ProteinG    float64  `json:"protein_g"`
	CarbsG      float64  `json:"carbs_g"`
	FatG        float64  `json:"fat_g"`
	Category    Category `json:"category"`
}

// MealKey is the comparable identity of a Meal, usable as a map key.
type MealKey struct {
	Name     string
	Category Category
}

// NewMeal builds a meal. Negative or zero numbers are accepted as-is.
func NewMeal(name, description string, calories int, proteinG, carbsG, fatG float64, category Category) Meal {
	return Meal{
		Name:        name,
		Description: description,
		Calories:    calories,
		ProteinG:    proteinG,
		CarbsG:      carbsG,
		FatG:        fatG,
		Category:    category,
	}
}

// Key returns the identity fields of m.
func (m Meal) Key() MealKey {
	return MealKey{Name: m.Name, Category: m.Category}
}

// Equal reports whether m and other share name and category (exact match).
func (m Meal) Equal(other Meal) bool {
	return m.Key() == other.Key()
}

// Hash combines the name hash and the category hash, so meals that are
// Equal always hash equal.
func (m Meal) Hash() uint64 {
	return fnvString(m.Name) + fnvString(string(m.Category))
}

func fnvString(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}

// String renders "Name (Category) - N cal, Pg protein, Cg carbs, Fg fats".
func (m Meal) String() string {
	return fmt.Sprintf("%s (%s) - %d cal, %.1fg protein, %.1fg carbs, %.1fg fats",
		m.Name, m.Category, m.Calories, m.ProteinG, m.CarbsG, m.FatG)
}

// NutritionLabel is the one-line nutrition summary shown under a meal.
func (m Meal) NutritionLabel() string {
	return fmt.Sprintf("Calories: %d | Protein: %.1fg | Carbs: %.1fg | Fats: %.1fg",
		m.Calories, m.ProteinG, m.CarbsG, m.FatG)
}

// Nutrition is a running total of calories and macros over a set of meals.
type Nutrition struct {
	Calories int     `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
	Meals    int     `json:"meals"`
}

// SumNutrition totals calories and macros over meals.
func SumNutrition(meals []Meal) Nutrition {
	var n Nutrition
	for _, m := range meals {
		n.Calories += m.Calories
		n.ProteinG += m.ProteinG
		n.CarbsG += m.CarbsG
		n.FatG += m.FatG
		n.Meals++
	}
	return n
}
