package diet

import (
	"errors"
	"fmt"
	"strings"
)

// PlanType is the routing token for one of the canned diet plans.
type PlanType string

const (
	VegetarianPlan    PlanType = "vegetarian"
	NonVegetarianPlan PlanType = "non-vegetarian"
	BalancedPlan      PlanType = "balanced"
)

// ErrUnknownPlanType is returned by Build for a token that names no plan.
var ErrUnknownPlanType = errors.New("unknown diet plan type")

var planTypeOrder = []PlanType{VegetarianPlan, NonVegetarianPlan, BalancedPlan}

// PlanTypes returns the canned plan types in display order.
func PlanTypes() []PlanType {
	out := make([]PlanType, len(planTypeOrder))
	copy(out, planTypeOrder)
	return out
}

// ParsePlanType resolves a token case-insensitively, ignoring surrounding
// whitespace.
func ParsePlanType(token string) (PlanType, bool) {
	t := PlanType(strings.ToLower(strings.TrimSpace(token)))
	for _, known := range planTypeOrder {
		if t == known {
			return t, true
		}
	}
	return "", false
}

// Build returns a freshly constructed plan for t.
func Build(t PlanType) (*Plan, error) {
	switch t {
	case VegetarianPlan:
		return Vegetarian(), nil
	case NonVegetarianPlan:
		return NonVegetarian(), nil
	case BalancedPlan:
		return Balanced(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPlanType, t)
}

// mustPlan builds a plan from literal catalog data. The literals only use
// the four known categories, so AddMeal failing is a programming error.
func mustPlan(name, description string, meals []Meal) *Plan {
	p := NewPlan(name, description)
	for _, m := range meals {
		if err := p.AddMeal(m); err != nil {
			panic(err)
		}
	}
	return p
}

// Vegetarian builds the plant-based plan.
func Vegetarian() *Plan {
	return mustPlan("Vegetarian Diet", "Plant-based meals rich in nutrients and fiber", []Meal{
		NewMeal("Oatmeal with Berries", "Steel-cut oats topped with fresh blueberries and almonds", 320, 12.0, 58.0, 8.0, Breakfast),
		NewMeal("Avocado Toast", "Whole grain bread with mashed avocado, tomato, and seeds", 280, 8.0, 35.0, 15.0, Breakfast),
		NewMeal("Greek Yogurt Parfait", "Greek yogurt layered with granola and fresh fruits", 250, 15.0, 30.0, 8.0, Breakfast),

		NewMeal("Quinoa Buddha Bowl", "Quinoa with roasted vegetables, chickpeas, and tahini dressing", 450, 18.0, 65.0, 14.0, Lunch),
		NewMeal("Caprese Salad", "Fresh mozzarella, tomatoes, and basil with balsamic glaze", 320, 16.0, 12.0, 24.0, Lunch),
		NewMeal("Vegetable Wrap", "Hummus wrap with fresh vegetables and sprouts", 380, 12.0, 48.0, 16.0, Lunch),

		NewMeal("Lentil Curry", "Red lentils cooked in aromatic spices with rice", 420, 20.0, 68.0, 6.0, Dinner),
		NewMeal("Eggplant Parmesan", "Baked eggplant layers with marinara and cheese", 380, 18.0, 32.0, 22.0, Dinner),
		NewMeal("Stuffed Bell Peppers", "Bell peppers stuffed with rice, vegetables, and herbs", 310, 12.0, 52.0, 8.0, Dinner),

		NewMeal("Mixed Nuts", "Almonds, walnuts, and cashews", 170, 6.0, 6.0, 15.0, Snack),
		NewMeal("Apple with Peanut Butter", "Fresh apple slices with natural peanut butter", 190, 7.0, 20.0, 12.0, Snack),
	})
}

// NonVegetarian builds the protein-heavy plan with lean meats and fish.
func NonVegetarian() *Plan {
	return mustPlan("Non-Vegetarian Diet", "Protein-rich meals including lean meats and fish", []Meal{
		NewMeal("Scrambled Eggs with Toast", "Scrambled eggs with whole grain toast and avocado", 350, 20.0, 28.0, 18.0, Breakfast),
		NewMeal("Protein Smoothie", "Whey protein with banana, berries, and almond milk", 280, 25.0, 32.0, 5.0, Breakfast),
		NewMeal("Turkey Sausage Breakfast", "Turkey sausage with sweet potato hash", 320, 22.0, 25.0, 15.0, Breakfast),

		NewMeal("Grilled Chicken Salad", "Mixed greens with grilled chicken breast and vinaigrette", 380, 35.0, 12.0, 22.0, Lunch),
		NewMeal("Salmon Bowl", "Grilled salmon with quinoa and steamed broccoli", 450, 32.0, 35.0, 20.0, Lunch),
		NewMeal("Turkey Club Sandwich", "Lean turkey with lettuce, tomato on whole grain bread", 420, 28.0, 42.0, 16.0, Lunch),

		NewMeal("Beef Stir Fry", "Lean beef with mixed vegetables and brown rice", 480, 30.0, 45.0, 18.0, Dinner),
		NewMeal("Baked Cod", "Herb-crusted cod with roasted vegetables", 320, 28.0, 15.0, 12.0, Dinner),
		NewMeal("Chicken Curry", "Tender chicken in coconut curry sauce with rice", 420, 32.0, 38.0, 16.0, Dinner),

		NewMeal("Protein Bar", "Whey protein bar with nuts and dried fruits", 200, 20.0, 18.0, 8.0, Snack),
		NewMeal("Hard-Boiled Eggs", "Two hard-boiled eggs with a pinch of salt", 140, 12.0, 1.0, 10.0, Snack),
	})
}

// Balanced builds the mixed plan.
func Balanced() *Plan {
	return mustPlan("Balanced Diet", "Well-rounded meals with optimal macro-nutrient balance", []Meal{
		NewMeal("Whole Grain Pancakes", "Whole wheat pancakes with Greek yogurt and berries", 320, 14.0, 48.0, 10.0, Breakfast),
		NewMeal("Egg and Veggie Omelet", "Two-egg omelet with spinach, mushrooms, and cheese", 290, 18.0, 8.0, 20.0, Breakfast),
		NewMeal("Smoothie Bowl", "Acai smoothie with granola, nuts, and fresh fruits", 340, 12.0, 52.0, 12.0, Breakfast),

		NewMeal("Mediterranean Bowl", "Quinoa with grilled chicken, vegetables, and feta cheese", 430, 28.0, 42.0, 18.0, Lunch),
		NewMeal("Tuna Salad Wrap", "Tuna salad with vegetables in a spinach wrap", 360, 24.0, 28.0, 16.0, Lunch),
		NewMeal("Vegetable Soup with Bread", "Mixed vegetable soup with whole grain bread", 280, 12.0, 48.0, 8.0, Lunch),

		NewMeal("Grilled Fish with Quinoa", "Grilled tilapia with quinoa and roasted asparagus", 380, 30.0, 32.0, 14.0, Dinner),
		NewMeal("Chicken and Rice Bowl", "Teriyaki chicken with brown rice and steamed vegetables", 410, 28.0, 48.0, 12.0, Dinner),
		NewMeal("Pasta Primavera", "Whole wheat pasta with seasonal vegetables and olive oil", 350, 14.0, 58.0, 10.0, Dinner),

		NewMeal("Greek Yogurt with Honey", "Plain Greek yogurt drizzled with honey and nuts", 150, 12.0, 15.0, 6.0, Snack),
		NewMeal("Vegetable Sticks with Hummus", "Carrot and celery sticks with hummus dip", 120, 5.0, 12.0, 6.0, Snack),
	})
}
