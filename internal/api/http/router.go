package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/nba-team-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health  *handlers.HealthHandler
	Metrics *handlers.MetricsHandler
	Teams   *handlers.TeamsHandler
}

// RegisterRoutes wires HTTP routes. There is deliberately no delete route.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	if cfg.Health != nil {
		app.Get("/health/live", cfg.Health.Live)
		app.Get("/health/ready", cfg.Health.Ready)
	}
	if cfg.Metrics != nil {
		app.Get("/metrics", cfg.Metrics.Show)
	}

	teams := app.Group("/api/nba-teams")
	teams.Post("", cfg.Teams.Create)
	teams.Get("", cfg.Teams.List)
	teams.Get("/:id", cfg.Teams.Get)
	teams.Put("", cfg.Teams.Update)
	teams.Put("/:id", cfg.Teams.Update)
}
