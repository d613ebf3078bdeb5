package main

import (
	"lg/diet-maker-go-api/diet"
)

/* ─── JSON API shapes ────────────────────────────────────────────────── */

// dietPlanSummary is one entry in the GET /api/diet-plans response.
type dietPlanSummary struct {
	Type        diet.PlanType  `json:"type"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	MealCount   int            `json:"meal_count"`
	Totals      diet.Nutrition `json:"totals"`
}

// profileSummaryRequest is the request body for POST /api/profile/summary
// and the arguments of the profile_summary tool. DailyCalorieGoal, when
// present, overrides the derived goal.
type profileSummaryRequest struct {
	Name             string      `json:"name"`
	Age              int         `json:"age"`
	WeightKg         float64     `json:"weight_kg"`
	HeightCm         float64     `json:"height_cm"`
	ActivityLevel    string      `json:"activity_level"`
	DietPreference   *string     `json:"diet_preference"`
	Allergies        []string    `json:"allergies"`
	FavoriteMeals    []diet.Meal `json:"favorite_meals"`
	DailyCalorieGoal *float64    `json:"daily_calorie_goal"`
}

// profileSummaryResponse carries the profile back with every derived value.
// Allergies and favorites come back deduplicated.
type profileSummaryResponse struct {
	Name               string           `json:"name"`
	Age                int              `json:"age"`
	WeightKg           float64          `json:"weight_kg"`
	HeightCm           float64          `json:"height_cm"`
	ActivityLevel      string           `json:"activity_level"`
	ActivityMultiplier float64          `json:"activity_multiplier"`
	KnownActivityLevel bool             `json:"known_activity_level"`
	DietPreference     *string          `json:"diet_preference"`
	RecommendedPlan    *diet.PlanType   `json:"recommended_plan"`
	Allergies          []string         `json:"allergies"`
	FavoriteMeals      []diet.Meal      `json:"favorite_meals"`
	BMR                float64          `json:"bmr"`
	BMI                float64          `json:"bmi"`
	BMICategory        diet.WeightClass `json:"bmi_category"`
	DailyCalorieGoal   float64          `json:"daily_calorie_goal"`
	GoalOverridden     bool             `json:"goal_overridden"`
	Summary            string           `json:"summary"`
}

/* ─── HTML view models ───────────────────────────────────────────────── */

// planPage is the data passed to diet_plan.html.
type planPage struct {
	Selected diet.PlanType
	Title    string
	Plan     *diet.Plan
	Sections []mealSection
	Links    []planLink
	Totals   diet.Nutrition
}

// mealSection is one category block on the page.
type mealSection struct {
	Category diet.Category
	Meals    []diet.Meal
	Totals   diet.Nutrition
}

// planLink is one entry in the diet selector.
type planLink struct {
	Type     diet.PlanType
	Name     string
	Selected bool
}
