package main

import (
	"errors"
	"log"
	"math"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"lg/diet-maker-go-api/diet"
)

var (
	errNameRequired  = errors.New("name is required")
	errInvalidHeight = errors.New("height_cm must be greater than 0")
	errOutOfRange    = errors.New("weight_kg and height_cm are out of range")
)

// validate rejects inputs the derived metrics cannot be computed from.
// A zero height would make BMI infinite, which JSON cannot carry.
func (r profileSummaryRequest) validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errNameRequired
	}
	if r.HeightCm <= 0 {
		return errInvalidHeight
	}
	return nil
}

// buildProfile turns the request into a fresh profile. Allergies and
// favorites go through the profile's add methods so duplicates collapse the
// same way they would for any other caller.
func (r profileSummaryRequest) buildProfile() *diet.Profile {
	p := diet.NewProfile(r.Name, r.Age, r.WeightKg, r.HeightCm, r.ActivityLevel)
	if r.DietPreference != nil {
		p.SetDietPreference(*r.DietPreference)
	}
	for _, a := range r.Allergies {
		p.AddAllergy(a)
	}
	for _, m := range r.FavoriteMeals {
		p.AddFavoriteMeal(m)
	}
	if r.DailyCalorieGoal != nil {
		p.SetDailyCalorieGoal(*r.DailyCalorieGoal)
	}
	return p
}

// checkFinite rejects a profile whose derived values overflow. JSON cannot
// encode Inf or NaN, and gin would fail the render after the status is set.
func checkFinite(p *diet.Profile) error {
	for _, v := range []float64{
		p.BMI(),
		p.DailyCalorieGoal(),
		diet.BMR(p.WeightKg(), p.HeightCm(), p.Age()),
	} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return errOutOfRange
		}
	}
	return nil
}

// newProfileSummary reads every derived value off p.
func newProfileSummary(p *diet.Profile, overridden bool) profileSummaryResponse {
	resp := profileSummaryResponse{
		Name:               p.Name(),
		Age:                p.Age(),
		WeightKg:           p.WeightKg(),
		HeightCm:           p.HeightCm(),
		ActivityLevel:      p.ActivityLevel(),
		ActivityMultiplier: diet.ActivityMultiplier(p.ActivityLevel()),
		KnownActivityLevel: diet.KnownActivityLevel(p.ActivityLevel()),
		Allergies:          p.Allergies(),
		FavoriteMeals:      p.FavoriteMeals(),
		BMR:                diet.BMR(p.WeightKg(), p.HeightCm(), p.Age()),
		BMI:                p.BMI(),
		BMICategory:        p.BMICategory(),
		DailyCalorieGoal:   p.DailyCalorieGoal(),
		GoalOverridden:     overridden,
		Summary:            p.String(),
	}
	if pref, ok := p.DietPreference(); ok {
		resp.DietPreference = &pref
	}
	if pt, ok := p.RecommendedPlan(); ok {
		resp.RecommendedPlan = &pt
	}
	return resp
}

// summarizeProfile computes BMI, BMI category and the daily calorie goal for
// the posted profile. Nothing is stored.
// POST /api/profile/summary.
func (h *Handler) summarizeProfile(c *gin.Context) {
	var body profileSummaryRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := body.validate(); err != nil {
		apiError(c, http.StatusBadRequest, err.Error())
		return
	}

	if !diet.KnownActivityLevel(body.ActivityLevel) {
		log.Printf("[profile] unrecognized activity level %q, using default multiplier %.1f",
			body.ActivityLevel, diet.DefaultActivityMultiplier)
	}

	p := body.buildProfile()
	if err := checkFinite(p); err != nil {
		apiError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, newProfileSummary(p, body.DailyCalorieGoal != nil))
}
