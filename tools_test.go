package main

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lg/diet-maker-go-api/diet"
)

// toolText posts a tool call and returns the text of the first content block.
func toolText(t *testing.T, body string) string {
	t.Helper()
	w := doRequest(setupRouterTest(), http.MethodPost, "/mcp", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var result struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Len(t, result.Content, 1)
	assert.Equal(t, "text", result.Content[0].Type)
	return result.Content[0].Text
}

func TestToolCall_ListDietPlans(t *testing.T) {
	text := toolText(t, `{"name": "list_diet_plans"}`)

	var plans []dietPlanSummary
	require.NoError(t, json.Unmarshal([]byte(text), &plans))
	require.Len(t, plans, 3)
	assert.Equal(t, diet.BalancedPlan, plans[2].Type)
}

func TestToolCall_GetDietPlanCategory(t *testing.T) {
	text := toolText(t, `{"name": "get_diet_plan", "arguments": {"diet_type": "Non-Vegetarian", "category": "Snack"}}`)

	var meals []diet.Meal
	require.NoError(t, json.Unmarshal([]byte(text), &meals))
	require.Len(t, meals, 2)
	assert.Equal(t, "Protein Bar", meals[0].Name)
	assert.Equal(t, "Hard-Boiled Eggs", meals[1].Name)
}

func TestToolCall_GetDietPlanWhole(t *testing.T) {
	text := toolText(t, `{"name": "get_diet_plan", "arguments": {"diet_type": "vegetarian"}}`)

	var plan struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal([]byte(text), &plan))
	assert.Equal(t, "Vegetarian Diet", plan.Name)
}

func TestToolCall_ProfileSummary(t *testing.T) {
	text := toolText(t, `{"name": "profile_summary", "arguments": {
		"name": "John", "age": 30, "weight_kg": 70, "height_cm": 175, "activity_level": "sedentary"
	}}`)

	var resp profileSummaryResponse
	require.NoError(t, json.Unmarshal([]byte(text), &resp))
	assert.InDelta(t, 1648.75*1.2, resp.DailyCalorieGoal, 1e-6)
	assert.Equal(t, diet.NormalWeight, resp.BMICategory)
}

func TestToolCall_Errors(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		status int
	}{
		{"unknown tool", `{"name": "delete_everything"}`, http.StatusNotFound},
		{"unknown diet type", `{"name": "get_diet_plan", "arguments": {"diet_type": "vegan"}}`, http.StatusBadRequest},
		{"bad argument type", `{"name": "get_diet_plan", "arguments": {"diet_type": 42}}`, http.StatusBadRequest},
		{"profile without height", `{"name": "profile_summary", "arguments": {"name": "x"}}`, http.StatusBadRequest},
		{"profile with tiny height", `{"name": "profile_summary", "arguments": {"name": "x", "weight_kg": 70, "height_cm": 1e-200}}`, http.StatusBadRequest},
		{"profile with huge weight", `{"name": "profile_summary", "arguments": {"name": "x", "weight_kg": 1e308, "height_cm": 175}}`, http.StatusBadRequest},
		{"malformed body", `not json`, http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(setupRouterTest(), http.MethodPost, "/mcp", tc.body)
			assert.Equal(t, tc.status, w.Code, w.Body.String())

			var resp map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp["error"])
		})
	}
}
