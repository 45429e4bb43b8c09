package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/aura-guide/locais-service/internal/pkg/utils"
	"github.com/aura-guide/locais-service/internal/usecase"
)

// CatalogHandler serves the merged catalog and single-place lookups.
type CatalogHandler struct {
	catalogUC *usecase.CatalogUseCase
	logger    *zap.Logger
}

func NewCatalogHandler(catalogUC *usecase.CatalogUseCase, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: catalogUC,
		logger:    logger,
	}
}

// Health godoc
// @Summary Service health
// @Description Reports liveness and whether a catalog snapshot is published
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /api/v1/health [get]
func (h *CatalogHandler) Health(c *fiber.Ctx) error {
	if !h.catalogUC.Loaded() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "loading",
			"time":   time.Now(),
		})
	}

	return c.JSON(fiber.Map{
		"status": "healthy",
		"time":   time.Now(),
	})
}

// ListPlaces godoc
// @Summary List all places
// @Description Returns the full merged catalog in source order
// @Tags catalog
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/locais [get]
func (h *CatalogHandler) ListPlaces(c *fiber.Ctx) error {
	places := h.catalogUC.AllPlaces()

	return utils.SendSuccess(c, places, &utils.Meta{
		Total: len(places),
	})
}

// GetPlace godoc
// @Summary Get a place by id
// @Tags catalog
// @Produce json
// @Param id path string true "Place ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/locais/{id} [get]
func (h *CatalogHandler) GetPlace(c *fiber.Ctx) error {
	id := c.Params("id")

	place, err := h.catalogUC.GetByID(id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, place, nil)
}
