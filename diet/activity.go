package diet

import "strings"

// activityMultipliers maps lower-cased activity levels to the multiplier
// applied to BMR. Anything not listed falls back to
// DefaultActivityMultiplier.
var activityMultipliers = map[string]float64{
	"sedentary":         1.2,
	"lightly active":    1.375,
	"moderately active": 1.55,
	"very active":       1.725,
}

// DefaultActivityMultiplier applies to unrecognized activity levels.
const DefaultActivityMultiplier = 1.4

// Activity level names as accepted by Profile.
const (
	Sedentary        = "sedentary"
	LightlyActive    = "lightly active"
	ModeratelyActive = "moderately active"
	VeryActive       = "very active"
)

// ActivityMultiplier looks level up case-insensitively. It never fails.
func ActivityMultiplier(level string) float64 {
	if mult, ok := activityMultipliers[strings.ToLower(level)]; ok {
		return mult
	}
	return DefaultActivityMultiplier
}

// KnownActivityLevel reports whether level has its own multiplier.
func KnownActivityLevel(level string) bool {
	_, ok := activityMultipliers[strings.ToLower(level)]
	return ok
}

// BMR is the Mifflin-St Jeor basal metabolic rate with the male constant
// (+5). Sex is not modeled.
func BMR(weightKg, heightCm float64, age int) float64 {
	return 10*weightKg + 6.25*heightCm - 5*float64(age) + 5
}

// CalorieGoal is BMR scaled by the activity multiplier.
func CalorieGoal(weightKg, heightCm float64, age int, activityLevel string) float64 {
	return BMR(weightKg, heightCm, age) * ActivityMultiplier(activityLevel)
}
