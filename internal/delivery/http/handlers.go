package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/catcoat/backend/internal/config"
	"github.com/catcoat/backend/internal/domain"
	"github.com/catcoat/backend/internal/service"
)

// Handler contains all HTTP handlers
type Handler struct {
	advisorSvc *service.AdvisorService
	repo       service.CatRepository
	cfg        *config.Config
}

// NewHandler creates a new handler
func NewHandler(advisorSvc *service.AdvisorService, repo service.CatRepository, cfg *config.Config) *Handler {
	return &Handler{
		advisorSvc: advisorSvc,
		repo:       repo,
		cfg:        cfg,
	}
}

// Root returns the liveness marker
func (h *Handler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Cats Weather & Coat Advisor API",
	})
}

// ListCats returns every stored cat
func (h *Handler) ListCats(c *fiber.Ctx) error {
	ctx := c.Context()

	cats, err := h.repo.List(ctx)
	if err != nil {
		return mapStoreError(err)
	}
	if cats == nil {
		cats = []domain.Cat{}
	}

	return c.JSON(fiber.Map{
		"cats": cats,
	})
}

// CreateCat stores a new cat and returns its assigned id
func (h *Handler) CreateCat(c *fiber.Ctx) error {
	ctx := c.Context()

	var req domain.CreateCatRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	id, err := h.repo.Create(ctx, req.Cat())
	if err != nil {
		return mapStoreError(err)
	}

	return c.JSON(fiber.Map{
		"id": id.String(),
	})
}

// DeleteCat removes a cat by id
func (h *Handler) DeleteCat(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id format")
	}

	if err := h.repo.Delete(ctx, id); err != nil {
		return mapStoreError(err)
	}

	return c.JSON(fiber.Map{
		"status": "deleted",
	})
}

// GetRecommendations returns one cat's weather and day/night coat advice
func (h *Handler) GetRecommendations(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id format")
	}

	advice, err := h.advisorSvc.AdviceForCat(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCatNotFound):
			return fiber.NewError(fiber.StatusNotFound, "Cat not found")
		case errors.Is(err, domain.ErrStoreUnavailable):
			return fiber.NewError(fiber.StatusInternalServerError, "Database not available")
		default:
			return fiber.NewError(fiber.StatusBadGateway, "Failed to fetch weather data")
		}
	}

	return c.JSON(advice)
}

// GetDashboard returns the aggregated all-cats view. Per-cat weather
// failures surface inside the items, never as a request failure.
func (h *Handler) GetDashboard(c *fiber.Ctx) error {
	ctx := c.Context()

	items, err := h.advisorSvc.Dashboard(ctx)
	if err != nil {
		return mapStoreError(err)
	}

	return c.JSON(fiber.Map{
		"items": items,
	})
}

// TestStatus reports environment and store health, mirroring what an
// operator needs to see first when the service misbehaves.
func (h *Handler) TestStatus(c *fiber.Ctx) error {
	ctx := c.Context()

	status := fiber.Map{
		"backend":      "✅ Go backend running",
		"database_url": "✅ DATABASE_URL is set",
	}
	if h.cfg.DatabaseURL == "" {
		status["database_url"] = "⚠️ DATABASE_URL is not set"
	}

	if err := h.repo.Health(ctx); err != nil {
		status["database"] = "❌ not connected"
		status["connection_status"] = "❌ " + err.Error()
		return c.JSON(status)
	}
	status["database"] = "✅ connected"
	status["connection_status"] = "✅ ping ok"

	tables, err := h.repo.Tables(ctx)
	if err != nil {
		status["collections"] = "⚠️ could not list tables: " + err.Error()
		return c.JSON(status)
	}
	if len(tables) > 10 {
		tables = tables[:10]
	}
	status["collections"] = tables

	return c.JSON(status)
}

// mapStoreError translates repository sentinels into HTTP errors.
func mapStoreError(err error) error {
	switch {
	case errors.Is(err, domain.ErrCatNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Cat not found")
	case errors.Is(err, domain.ErrStoreUnavailable):
		return fiber.NewError(fiber.StatusInternalServerError, "Database not available")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
	}
}
