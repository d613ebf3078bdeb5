package main

import (
	"fmt"
	"net"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"lg/diet-maker-go-api/diet"
)

// config is read from the environment (optionally seeded from .env).
type config struct {
	Host           string
	Port           string
	DefaultDiet    diet.PlanType
	AllowedOrigins []string
	GinMode        string
}

func (c config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// loadConfig reads HOST, PORT, DEFAULT_DIET, CORS_ALLOWED_ORIGINS and
// GIN_MODE. An unknown DEFAULT_DIET or GIN_MODE is an error.
func loadConfig() (config, error) {
	cfg := config{
		Host:    envOr("HOST", "localhost"),
		Port:    envOr("PORT", "3000"),
		GinMode: os.Getenv("GIN_MODE"),
	}

	pt, ok := diet.ParsePlanType(envOr("DEFAULT_DIET", string(diet.BalancedPlan)))
	if !ok {
		return config{}, fmt.Errorf("DEFAULT_DIET must be one of: vegetarian, non-vegetarian, balanced (got %q)", os.Getenv("DEFAULT_DIET"))
	}
	cfg.DefaultDiet = pt

	for _, origin := range strings.Split(envOr("CORS_ALLOWED_ORIGINS", "*"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}

	switch cfg.GinMode {
	case "", gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return config{}, fmt.Errorf("GIN_MODE must be one of: debug, release, test (got %q)", cfg.GinMode)
	}

	return cfg, nil
}
