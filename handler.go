package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/cors"

	"lg/diet-maker-go-api/diet"
)

// Handler holds shared configuration for all route handlers. It carries no
// diet state: every request builds its own plan or profile.
type Handler struct {
	defaultDiet diet.PlanType
}

const requestIDHeader = "X-Request-ID"

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// requestID stamps every request with a UUID, reusing a well-formed
// X-Request-ID from the client. Failed requests are logged with the ID.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)

		c.Next()

		if status := c.Writer.Status(); status >= http.StatusBadRequest {
			log.Printf("[request] %s %s -> %d (request_id=%s)", c.Request.Method, c.Request.URL.Path, status, id)
		}
	}
}

/* ─── Server setup ────────────────────────────────────────────────────── */

// newRouter builds the gin engine with middleware, templates, and routes.
func newRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), requestID())
	router.SetTrustedProxies(nil)
	router.SetHTMLTemplate(loadTemplates())
	h.registerRoutes(router)
	return router
}

// withCORS wraps the router the same way for every origin list; "*" alone
// allows any origin.
func withCORS(router http.Handler, allowedOrigins []string) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
	})
	return c.Handler(router)
}

// registerRoutes registers all page and API routes on the router.
func (h *Handler) registerRoutes(router *gin.Engine) {
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Server-rendered pages
	router.GET("/", h.index)
	router.GET("/diets/:type", h.showDietPlan)

	// JSON API
	api := router.Group("/api")
	api.GET("/diet-plans", h.listDietPlans)
	api.GET("/diet-plans/:type", h.getDietPlan)
	api.GET("/diet-plans/:type/meals", h.getDietPlanMeals)
	api.POST("/profile/summary", h.summarizeProfile)

	// Tool calls
	router.POST("/mcp", h.handleToolCall)
}
