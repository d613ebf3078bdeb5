// CLI tool to enter a user profile and print its BMI and daily calorie goal.
// Nothing is saved.
// Usage: go run ./cmd/create-profile
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"lg/diet-maker-go-api/diet"
)

func main() {
	p, err := readProfile(bufio.NewReader(os.Stdin), os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading profile: %v\n", err)
		os.Exit(1)
	}
	printProfile(os.Stdout, p)
}

// prompt writes label and returns the trimmed answer line.
func prompt(r *bufio.Reader, w io.Writer, label string) (string, error) {
	fmt.Fprint(w, label)
	line, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read %s: %w", strings.TrimSuffix(label, ": "), err)
	}
	return strings.TrimSpace(line), nil
}

// readProfile asks for the base attributes, then optional diet preference
// and comma-separated allergies.
func readProfile(r *bufio.Reader, w io.Writer) (*diet.Profile, error) {
	name, err := prompt(r, w, "Name: ")
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	ageStr, err := prompt(r, w, "Age: ")
	if err != nil {
		return nil, err
	}
	age, err := strconv.Atoi(ageStr)
	if err != nil {
		return nil, fmt.Errorf("invalid age %q: %w", ageStr, err)
	}

	weightStr, err := prompt(r, w, "Weight (kg): ")
	if err != nil {
		return nil, err
	}
	weight, err := strconv.ParseFloat(weightStr, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid weight %q: %w", weightStr, err)
	}

	heightStr, err := prompt(r, w, "Height (cm): ")
	if err != nil {
		return nil, err
	}
	height, err := strconv.ParseFloat(heightStr, 64)
	if err != nil || height <= 0 {
		return nil, fmt.Errorf("invalid height %q, expected a positive number", heightStr)
	}

	activity, err := prompt(r, w, "Activity level (sedentary, lightly active, moderately active, very active): ")
	if err != nil {
		return nil, err
	}

	p := diet.NewProfile(name, age, weight, height, activity)

	// Optional fields: EOF here just means the user stopped answering.
	if pref, err := prompt(r, w, "Diet preference (optional): "); err == nil && pref != "" {
		p.SetDietPreference(pref)
	}
	if allergies, err := prompt(r, w, "Allergies, comma-separated (optional): "); err == nil {
		for _, a := range strings.Split(allergies, ",") {
			if a = strings.TrimSpace(a); a != "" {
				p.AddAllergy(a)
			}
		}
	}
	return p, nil
}

// printProfile writes the derived metrics and, when the diet preference
// names a canned plan, that plan's name.
func printProfile(w io.Writer, p *diet.Profile) {
	fmt.Fprintf(w, "\nProfile summary\n")
	fmt.Fprintf(w, "  %s\n", p)
	fmt.Fprintf(w, "  BMI:        %.1f (%s)\n", p.BMI(), p.BMICategory())
	fmt.Fprintf(w, "  Calories:   %.0f / day\n", p.DailyCalorieGoal())
	if !diet.KnownActivityLevel(p.ActivityLevel()) {
		fmt.Fprintf(w, "  Note:       activity level %q not recognized, using x%.1f\n", p.ActivityLevel(), diet.DefaultActivityMultiplier)
	}
	if allergies := p.Allergies(); len(allergies) > 0 {
		fmt.Fprintf(w, "  Allergies:  %s\n", strings.Join(allergies, ", "))
	}
	if pt, ok := p.RecommendedPlan(); ok {
		if plan, err := diet.Build(pt); err == nil {
			fmt.Fprintf(w, "  Plan:       %s\n", plan.Name)
		}
	}
}
