package diet

import "fmt"

// WeightClass is the BMI bucket label.
type WeightClass string

const (
	Underweight  WeightClass = "Underweight"
	NormalWeight WeightClass = "Normal weight"
	Overweight   WeightClass = "Overweight"
	Obese        WeightClass = "Obese"
)

// ClassifyBMI buckets a BMI value: <18.5, <25, <30, and the rest.
func ClassifyBMI(bmi float64) WeightClass {
	switch {
	case bmi < 18.5:
		return Underweight
	case bmi < 25:
		return NormalWeight
	case bmi < 30:
		return Overweight
	default:
		return Obese
	}
}

// Profile is a user's body stats and diet preferences.
//
// The daily calorie goal is derived: SetAge, SetWeightKg, SetHeightCm and
// SetActivityLevel recompute it eagerly. SetDailyCalorieGoal overrides it
// until the next one of those setters runs. Nothing else touches it.
//
// Two profiles are Equal when their names match; all other fields are
// ignored.
type Profile struct {
	name           string
	age            int
	weightKg       float64
	heightCm       float64
	activityLevel  string
	dietPreference *string
	allergies      []string
	favoriteMeals  []Meal

	dailyCalorieGoal float64
}

// NewProfile creates a profile with no allergies or favorites and a
// freshly computed calorie goal.
func NewProfile(name string, age int, weightKg, heightCm float64, activityLevel string) *Profile {
	p := &Profile{
		name:          name,
		age:           age,
		weightKg:      weightKg,
		heightCm:      heightCm,
		activityLevel: activityLevel,
		allergies:     []string{},
		favoriteMeals: []Meal{},
	}
	p.recalculate()
	return p
}

func (p *Profile) recalculate() {
	p.dailyCalorieGoal = CalorieGoal(p.weightKg, p.heightCm, p.age, p.activityLevel)
}

func (p *Profile) Name() string          { return p.name }
func (p *Profile) Age() int              { return p.age }
func (p *Profile) WeightKg() float64     { return p.weightKg }
func (p *Profile) HeightCm() float64     { return p.heightCm }
func (p *Profile) ActivityLevel() string { return p.activityLevel }

// DailyCalorieGoal returns the derived goal, or the override if one was set
// after the last recompute.
func (p *Profile) DailyCalorieGoal() float64 { return p.dailyCalorieGoal }

// DietPreference returns the preference and whether one is set.
func (p *Profile) DietPreference() (string, bool) {
	if p.dietPreference == nil {
		return "", false
	}
	return *p.dietPreference, true
}

func (p *Profile) SetName(name string) { p.name = name }

func (p *Profile) SetAge(age int) {
	p.age = age
	p.recalculate()
}

func (p *Profile) SetWeightKg(weightKg float64) {
	p.weightKg = weightKg
	p.recalculate()
}

func (p *Profile) SetHeightCm(heightCm float64) {
	p.heightCm = heightCm
	p.recalculate()
}

func (p *Profile) SetActivityLevel(level string) {
	p.activityLevel = level
	p.recalculate()
}

func (p *Profile) SetDietPreference(pref string) { p.dietPreference = &pref }

func (p *Profile) ClearDietPreference() { p.dietPreference = nil }

// SetDailyCalorieGoal overrides the derived goal without recomputing.
func (p *Profile) SetDailyCalorieGoal(goal float64) { p.dailyCalorieGoal = goal }

// RecommendedPlan maps the diet preference onto a canned plan type.
func (p *Profile) RecommendedPlan() (PlanType, bool) {
	pref, ok := p.DietPreference()
	if !ok {
		return "", false
	}
	return ParsePlanType(pref)
}

// BMI is weight over height (in meters) squared, computed on every call.
func (p *Profile) BMI() float64 {
	m := p.heightCm / 100
	return p.weightKg / (m * m)
}

func (p *Profile) BMICategory() WeightClass {
	return ClassifyBMI(p.BMI())
}

// Allergies returns a copy of the allergy list in insertion order.
func (p *Profile) Allergies() []string {
	out := make([]string, len(p.allergies))
	copy(out, p.allergies)
	return out
}

// HasAllergy is an exact, case-sensitive lookup.
func (p *Profile) HasAllergy(allergy string) bool {
	return p.allergyIndex(allergy) >= 0
}

// AddAllergy is a no-op when allergy is already present.
func (p *Profile) AddAllergy(allergy string) {
	if p.HasAllergy(allergy) {
		return
	}
	p.allergies = append(p.allergies, allergy)
}

// RemoveAllergy is a no-op when allergy is absent.
func (p *Profile) RemoveAllergy(allergy string) {
	if i := p.allergyIndex(allergy); i >= 0 {
		p.allergies = append(p.allergies[:i], p.allergies[i+1:]...)
	}
}

func (p *Profile) allergyIndex(allergy string) int {
	for i, a := range p.allergies {
		if a == allergy {
			return i
		}
	}
	return -1
}

// FavoriteMeals returns a copy of the favorites in insertion order.
func (p *Profile) FavoriteMeals() []Meal {
	out := make([]Meal, len(p.favoriteMeals))
	copy(out, p.favoriteMeals)
	return out
}

// IsFavorite reports whether a meal Equal to m is a favorite.
func (p *Profile) IsFavorite(m Meal) bool {
	return p.favoriteIndex(m) >= 0
}

// AddFavoriteMeal is a no-op when an Equal meal is already a favorite.
func (p *Profile) AddFavoriteMeal(m Meal) {
	if p.IsFavorite(m) {
		return
	}
	p.favoriteMeals = append(p.favoriteMeals, m)
}

// RemoveFavoriteMeal drops the first favorite Equal to m.
func (p *Profile) RemoveFavoriteMeal(m Meal) {
	if i := p.favoriteIndex(m); i >= 0 {
		p.favoriteMeals = append(p.favoriteMeals[:i], p.favoriteMeals[i+1:]...)
	}
}

func (p *Profile) favoriteIndex(m Meal) int {
	for i, fav := range p.favoriteMeals {
		if fav.Equal(m) {
			return i
		}
	}
	return -1
}

// Equal compares names only.
func (p *Profile) Equal(other *Profile) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.name == other.name
}

func (p *Profile) String() string {
	return fmt.Sprintf("User: %s, Age: %d, Weight: %.1f kg, Height: %.1f cm, Activity: %s, BMI: %.1f (%s), Daily Calorie Goal: %.0f",
		p.name, p.age, p.weightKg, p.heightCm, p.activityLevel, p.BMI(), p.BMICategory(), p.dailyCalorieGoal)
}
