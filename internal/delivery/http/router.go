package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/catcoat/backend/internal/config"
	"github.com/catcoat/backend/internal/service"
)

// SetupRoutes configures all HTTP routes
func SetupRoutes(app *fiber.App, advisorSvc *service.AdvisorService, repo service.CatRepository, cfg *config.Config) {
	handler := NewHandler(advisorSvc, repo, cfg)

	// Liveness marker and health probe
	app.Get("/", handler.Root)
	app.Get("/test", handler.TestStatus)

	// Prometheus exposition
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// API routes
	api := app.Group("/api")
	{
		// Cat CRUD
		api.Get("/cats", handler.ListCats)
		api.Post("/cats", handler.CreateCat)
		api.Delete("/cats/:id", handler.DeleteCat)

		// Weather + coat recommendations
		api.Get("/recommendations/:id", handler.GetRecommendations)
		api.Get("/dashboard", handler.GetDashboard)
	}
}
