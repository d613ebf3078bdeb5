// CLI that prints a canned diet plan grouped by meal category.
// Usage: go run ./cmd/dietplan -diet vegetarian [-category Lunch]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"lg/diet-maker-go-api/diet"
)

var (
	dietFlag     = flag.String("diet", "", "Diet plan: vegetarian, non-vegetarian, balanced (defaults to $DEFAULT_DIET or balanced)")
	categoryFlag = flag.String("category", "", "Only print this category (Breakfast, Lunch, Dinner, Snack)")
	listFlag     = flag.Bool("list", false, "List the available diet plans and exit")
)

func main() {
	flag.Parse()
	if err := loadDotenv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading .env: %v\n", err)
		os.Exit(1)
	}

	if *listFlag {
		printPlanList(os.Stdout)
		return
	}

	token := *dietFlag
	if token == "" {
		token = os.Getenv("DEFAULT_DIET")
	}
	plan, err := diet.Build(resolvePlanType(token, os.Stderr))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building plan: %v\n", err)
		os.Exit(1)
	}

	categories := diet.Categories()
	if *categoryFlag != "" {
		categories = []diet.Category{diet.Category(*categoryFlag)}
	}
	printPlan(os.Stdout, plan, categories)
}

// loadDotenv reads .env from the working directory. A missing file is fine.
func loadDotenv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// resolvePlanType parses token, falling back to the balanced plan. A
// non-empty token that is not recognized gets a warning on stderr.
func resolvePlanType(token string, stderr io.Writer) diet.PlanType {
	pt, ok := diet.ParsePlanType(token)
	if ok {
		return pt
	}
	if token != "" {
		fmt.Fprintf(stderr, "Unknown diet %q, showing %s instead\n", token, diet.BalancedPlan)
	}
	return diet.BalancedPlan
}

// printPlanList writes one line per canned plan.
func printPlanList(w io.Writer) {
	for _, pt := range diet.PlanTypes() {
		plan, err := diet.Build(pt)
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "%-15s %s - %s\n", pt, plan.Name, plan.Description)
	}
}

// printPlan writes the plan heading and one section per category. A category
// with no meals (including one that is not recognized) prints a placeholder.
func printPlan(w io.Writer, plan *diet.Plan, categories []diet.Category) {
	fmt.Fprintf(w, "Selected Diet Plan: %s\n", plan.Name)
	fmt.Fprintf(w, "%s\n", plan.Description)

	for _, cat := range categories {
		meals := plan.MealsByCategory(cat)
		totals := diet.SumNutrition(meals)

		heading := fmt.Sprintf("%s (%d cal)", cat, totals.Calories)
		fmt.Fprintf(w, "\n%s\n%s\n", heading, strings.Repeat("-", len(heading)))
		if len(meals) == 0 {
			fmt.Fprintln(w, "  No meals in this category.")
			continue
		}
		for _, m := range meals {
			fmt.Fprintf(w, "  %s\n    %s\n    %s\n", m.Name, m.Description, m.NutritionLabel())
		}
	}
}
