package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/aura-guide/locais-service/internal/pkg/utils"
	"github.com/aura-guide/locais-service/internal/pkg/validator"
	"github.com/aura-guide/locais-service/internal/usecase"
	"github.com/aura-guide/locais-service/internal/usecase/dto"
)

// PositionHandler manages geolocation sessions: issue an id, report the
// outcome of the client-side position request, read the lifecycle state.
type PositionHandler struct {
	positionUC *usecase.PositionUseCase
	logger     *zap.Logger
}

func NewPositionHandler(positionUC *usecase.PositionUseCase, logger *zap.Logger) *PositionHandler {
	return &PositionHandler{
		positionUC: positionUC,
		logger:     logger,
	}
}

// StartSession godoc
// @Summary Start a geolocation session
// @Tags position
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/sessions [post]
func (h *PositionHandler) StartSession(c *fiber.Ctx) error {
	pos, err := h.positionUC.StartSession(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.SessionResponse{SessionID: pos.SessionID}, nil)
}

// ReportPosition godoc
// @Summary Report the geolocation outcome for a session
// @Description Accepts either a coordinate pair or a failure reason
// @Tags position
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.ReportPositionRequest true "Resolved coordinates or failure reason"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/position [post]
func (h *PositionHandler) ReportPosition(c *fiber.Ctx) error {
	var req dto.ReportPositionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	pos, err := h.positionUC.ReportPosition(
		c.Context(),
		c.Params("id"),
		req.Latitude,
		req.Longitude,
		req.FailureReason,
	)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, pos, nil)
}

// GetPosition godoc
// @Summary Current position lifecycle state for a session
// @Tags position
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/position [get]
func (h *PositionHandler) GetPosition(c *fiber.Ctx) error {
	pos, err := h.positionUC.GetPosition(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, pos, nil)
}
