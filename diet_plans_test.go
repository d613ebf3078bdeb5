package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lg/diet-maker-go-api/diet"
)

// setupRouterTest builds the full router with balanced as the default diet.
func setupRouterTest() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return newRouter(&Handler{defaultDiet: diet.BalancedPlan})
}

// doRequest sends a request through the router and records the response.
func doRequest(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

/* ─── HTML pages ─────────────────────────────────────────────────────── */

func TestIndex_RedirectsToDefaultDiet(t *testing.T) {
	router := setupRouterTest()

	w := doRequest(router, http.MethodGet, "/", "")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/diets/balanced", w.Header().Get("Location"))
}

func TestShowDietPlan_RendersSections(t *testing.T) {
	router := setupRouterTest()

	w := doRequest(router, http.MethodGet, "/diets/vegetarian", "")

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := w.Body.String()
	assert.Contains(t, body, "Selected Diet Plan: Vegetarian Diet")
	assert.Contains(t, body, "Plant-based meals rich in nutrients and fiber")
	for _, cat := range diet.Categories() {
		assert.Contains(t, body, `id="`+string(cat)+`"`)
	}
	assert.Contains(t, body, "Lentil Curry")
	assert.Contains(t, body, "Calories: 420 | Protein: 20.0g | Carbs: 68.0g | Fats: 6.0g")
	assert.NotContains(t, body, "Beef Stir Fry")
}

func TestShowDietPlan_TokenIsCaseInsensitive(t *testing.T) {
	router := setupRouterTest()

	w := doRequest(router, http.MethodGet, "/diets/NON-VEGETARIAN", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Selected Diet Plan: Non-Vegetarian Diet")
}

func TestShowDietPlan_UnknownTokenRedirects(t *testing.T) {
	router := setupRouterTest()

	w := doRequest(router, http.MethodGet, "/diets/vegan", "")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/diets/balanced", w.Header().Get("Location"))
}

/* ─── JSON API ───────────────────────────────────────────────────────── */

func TestListDietPlans(t *testing.T) {
	router := setupRouterTest()

	w := doRequest(router, http.MethodGet, "/api/diet-plans", "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp []dietPlanSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 3)
	assert.Equal(t, diet.VegetarianPlan, resp[0].Type)
	assert.Equal(t, "Non-Vegetarian Diet", resp[1].Name)
	assert.Equal(t, "Balanced Diet", resp[2].Name)
	for _, s := range resp {
		assert.Equal(t, 11, s.MealCount)
	}
}

func TestGetDietPlan(t *testing.T) {
	router := setupRouterTest()

	w := doRequest(router, http.MethodGet, "/api/diet-plans/Balanced", "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Name  string `json:"name"`
		Meals []struct {
			Category diet.Category `json:"category"`
			Meals    []diet.Meal   `json:"meals"`
		} `json:"meals"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Balanced Diet", resp.Name)
	require.Len(t, resp.Meals, 4)
	assert.Equal(t, diet.Breakfast, resp.Meals[0].Category)
	assert.Len(t, resp.Meals[0].Meals, 3)
	assert.Len(t, resp.Meals[3].Meals, 2)
}

func TestGetDietPlan_UnknownType(t *testing.T) {
	router := setupRouterTest()

	w := doRequest(router, http.MethodGet, "/api/diet-plans/paleo", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "unknown diet type")
}

func TestGetDietPlanMeals(t *testing.T) {
	router := setupRouterTest()

	cases := []struct {
		name  string
		query string
		count int
	}{
		{"lunch", "?category=Lunch", 3},
		{"snack", "?category=Snack", 2},
		{"lowercase misses", "?category=lunch", 0},
		{"unknown category", "?category=Brunch", 0},
		{"no category returns all", "", 11},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(router, http.MethodGet, "/api/diet-plans/vegetarian/meals"+tc.query, "")

			require.Equal(t, http.StatusOK, w.Code)
			assert.NotEqual(t, "null", strings.TrimSpace(w.Body.String()), "empty result must be [], not null")
			var meals []diet.Meal
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &meals))
			assert.Len(t, meals, tc.count)
		})
	}
}

/* ─── Middleware ─────────────────────────────────────────────────────── */

func TestRequestID(t *testing.T) {
	router := setupRouterTest()

	w := doRequest(router, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, w.Header().Get(requestIDHeader), 36)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "3f1c2f8e-8a3b-4c5d-9e6f-0a1b2c3d4e5f")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "3f1c2f8e-8a3b-4c5d-9e6f-0a1b2c3d4e5f", w.Header().Get(requestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "not-a-uuid")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.NotEqual(t, "not-a-uuid", w.Header().Get(requestIDHeader))
}

func TestWithCORS(t *testing.T) {
	router := withCORS(setupRouterTest(), []string{"https://diet.example.com"})

	req := httptest.NewRequest(http.MethodGet, "/api/diet-plans", nil)
	req.Header.Set("Origin", "https://diet.example.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "https://diet.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/diet-plans", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
