package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"lg/diet-maker-go-api/diet"
)

// index sends the browser to the default diet page.
// GET /.
func (h *Handler) index(c *gin.Context) {
	c.Redirect(http.StatusFound, "/diets/"+string(h.defaultDiet))
}

// showDietPlan renders the selected plan as an HTML page with one section
// per category. GET /diets/:type. The type token is case-insensitive; an
// unknown token redirects to the default diet instead of failing.
func (h *Handler) showDietPlan(c *gin.Context) {
	token := c.Param("type")
	pt, ok := diet.ParsePlanType(token)
	if !ok {
		log.Printf("[diet] unknown diet type %q, redirecting to %s", token, h.defaultDiet)
		c.Redirect(http.StatusFound, "/diets/"+string(h.defaultDiet))
		return
	}

	plan, err := diet.Build(pt)
	if err != nil {
		log.Printf("[diet] build %s: %v", pt, err)
		apiError(c, http.StatusInternalServerError, "failed to build diet plan")
		return
	}

	c.HTML(http.StatusOK, "diet_plan.html", newPlanPage(pt, plan))
}

// newPlanPage shapes a plan for the template: sections in category order,
// selector links with the current plan marked.
func newPlanPage(selected diet.PlanType, plan *diet.Plan) planPage {
	page := planPage{
		Selected: selected,
		Title:    "Selected Diet Plan: " + plan.Name,
		Plan:     plan,
		Totals:   plan.Totals(),
	}
	for _, cat := range diet.Categories() {
		page.Sections = append(page.Sections, mealSection{
			Category: cat,
			Meals:    plan.MealsByCategory(cat),
			Totals:   plan.CategoryTotals(cat),
		})
	}
	for _, pt := range diet.PlanTypes() {
		p, err := diet.Build(pt)
		if err != nil {
			continue
		}
		page.Links = append(page.Links, planLink{Type: pt, Name: p.Name, Selected: pt == selected})
	}
	return page
}

// listDietPlans returns every canned plan's name, description and totals.
// GET /api/diet-plans.
func (h *Handler) listDietPlans(c *gin.Context) {
	c.JSON(http.StatusOK, dietPlanSummaries())
}

func dietPlanSummaries() []dietPlanSummary {
	out := make([]dietPlanSummary, 0, len(diet.PlanTypes()))
	for _, pt := range diet.PlanTypes() {
		plan, err := diet.Build(pt)
		if err != nil {
			continue
		}
		totals := plan.Totals()
		out = append(out, dietPlanSummary{
			Type:        pt,
			Name:        plan.Name,
			Description: plan.Description,
			MealCount:   totals.Meals,
			Totals:      totals,
		})
	}
	return out
}

// planFromParam resolves the :type path param and builds the plan. Writes a
// 404 and returns ok=false for an unknown token.
func (h *Handler) planFromParam(c *gin.Context) (*diet.Plan, bool) {
	pt, ok := diet.ParsePlanType(c.Param("type"))
	if !ok {
		apiError(c, http.StatusNotFound, "unknown diet type, expected one of: vegetarian, non-vegetarian, balanced")
		return nil, false
	}
	plan, err := diet.Build(pt)
	if err != nil {
		log.Printf("[diet] build %s: %v", pt, err)
		apiError(c, http.StatusInternalServerError, "failed to build diet plan")
		return nil, false
	}
	return plan, true
}

// getDietPlan returns one plan with its meals grouped by category.
// GET /api/diet-plans/:type.
func (h *Handler) getDietPlan(c *gin.Context) {
	plan, ok := h.planFromParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, plan)
}

// getDietPlanMeals returns the meals in one category, or every meal when no
// category is given. GET /api/diet-plans/:type/meals?category=Lunch.
// Category matching is exact; an unknown category yields [] (not an error).
func (h *Handler) getDietPlanMeals(c *gin.Context) {
	plan, ok := h.planFromParam(c)
	if !ok {
		return
	}

	category, given := c.GetQuery("category")
	if !given {
		c.JSON(http.StatusOK, plan.AllMeals())
		return
	}
	c.JSON(http.StatusOK, plan.MealsByCategory(diet.Category(category)))
}
