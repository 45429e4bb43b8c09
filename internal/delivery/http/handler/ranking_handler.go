package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/aura-guide/locais-service/internal/pkg/utils"
	"github.com/aura-guide/locais-service/internal/usecase"
	"github.com/aura-guide/locais-service/internal/usecase/dto"
)

const featuredLimit = 10

// RankingHandler serves the category listing and the home page carousel.
type RankingHandler struct {
	rankingUC *usecase.RankingUseCase
	logger    *zap.Logger
}

func NewRankingHandler(rankingUC *usecase.RankingUseCase, logger *zap.Logger) *RankingHandler {
	return &RankingHandler{
		rankingUC: rankingUC,
		logger:    logger,
	}
}

// ListByCategory godoc
// @Summary Ranked listing for a category
// @Description Filters the catalog by category, annotates distances from the session position and sorts by the requested criterion
// @Tags ranking
// @Produce json
// @Param categoria path string true "Category key"
// @Param sort query string false "Sort criterion" Enums(distance-asc, rating-desc, rating-asc, name-asc, name-desc)
// @Param session query string false "Position session id"
// @Success 200 {object} utils.SuccessResponse
// @Failure 409 {object} utils.ErrorResponse "POSITION_REQUIRED for distance-asc without a resolved position"
// @Router /api/v1/categorias/{categoria}/locais [get]
func (h *RankingHandler) ListByCategory(c *fiber.Ctx) error {
	req := dto.RankingRequest{
		Category:  c.Params("categoria"),
		Sort:      c.Query("sort"),
		SessionID: c.Query("session"),
	}

	result, err := h.rankingUC.Rank(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// Featured godoc
// @Summary Featured places for the home page
// @Description Top-rated leisure places, capped to ten
// @Tags ranking
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/destaques [get]
func (h *RankingHandler) Featured(c *fiber.Ctx) error {
	entries := h.rankingUC.Featured(featuredLimit)

	return utils.SendSuccess(c, entries, &utils.Meta{
		Total: len(entries),
		Limit: featuredLimit,
	})
}
