package diet

import (
	"encoding/json"
	"fmt"
)

// Plan is a named diet made of meals grouped into the four categories.
// Every category bucket exists from construction on, possibly empty.
type Plan struct {
	Name        string
	Description string

	buckets map[Category][]Meal
}

// NewPlan returns a plan with four empty buckets.
func NewPlan(name, description string) *Plan {
	p := &Plan{
		Name:        name,
		Description: description,
		buckets:     make(map[Category][]Meal, len(categoryOrder)),
	}
	for _, c := range categoryOrder {
		p.buckets[c] = []Meal{}
	}
	return p
}

// AddMeal appends m to the bucket for its category. Duplicates are kept.
// A meal whose category is not one of the four returns ErrUnknownCategory.
// The zero Plan is usable; its buckets are created on first add.
func (p *Plan) AddMeal(m Meal) error {
	if !m.Category.Valid() {
		return fmt.Errorf("add meal %q: %w: %q", m.Name, ErrUnknownCategory, m.Category)
	}
	if p.buckets == nil {
		p.buckets = make(map[Category][]Meal, len(categoryOrder))
	}
	p.buckets[m.Category] = append(p.buckets[m.Category], m)
	return nil
}

// MealsByCategory returns the meals in c in insertion order. An unknown
// category yields an empty slice rather than an error.
func (p *Plan) MealsByCategory(c Category) []Meal {
	bucket := p.buckets[c]
	out := make([]Meal, len(bucket))
	copy(out, bucket)
	return out
}

// AllMeals concatenates every bucket. Only the order inside a category is
// meaningful to callers.
func (p *Plan) AllMeals() []Meal {
	out := []Meal{}
	for _, c := range categoryOrder {
		out = append(out, p.buckets[c]...)
	}
	return out
}

// MealsByType returns a copy of the whole category → meals mapping.
func (p *Plan) MealsByType() map[Category][]Meal {
	out := make(map[Category][]Meal, len(categoryOrder))
	for _, c := range categoryOrder {
		out[c] = p.MealsByCategory(c)
	}
	return out
}

// Totals sums calories and macros over the whole plan.
func (p *Plan) Totals() Nutrition {
	return SumNutrition(p.AllMeals())
}

// CategoryTotals sums calories and macros over one bucket.
func (p *Plan) CategoryTotals(c Category) Nutrition {
	return SumNutrition(p.buckets[c])
}

// planJSON fixes the category order on the wire; encoding/json would
// otherwise sort map keys alphabetically.
type planJSON struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Meals       []categoryJSON `json:"meals"`
	Totals      Nutrition      `json:"totals"`
}

type categoryJSON struct {
	Category Category  `json:"category"`
	Meals    []Meal    `json:"meals"`
	Totals   Nutrition `json:"totals"`
}

// MarshalJSON emits one entry per category in declaration order, with totals.
func (p *Plan) MarshalJSON() ([]byte, error) {
	out := planJSON{
		Name:        p.Name,
		Description: p.Description,
		Meals:       make([]categoryJSON, 0, len(categoryOrder)),
		Totals:      p.Totals(),
	}
	for _, c := range categoryOrder {
		out.Meals = append(out.Meals, categoryJSON{
			Category: c,
			Meals:    p.MealsByCategory(c),
			Totals:   p.CategoryTotals(c),
		})
	}
	return json.Marshal(out)
}
