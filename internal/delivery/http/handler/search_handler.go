package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/aura-guide/locais-service/internal/pkg/utils"
	"github.com/aura-guide/locais-service/internal/pkg/validator"
	"github.com/aura-guide/locais-service/internal/usecase"
	"github.com/aura-guide/locais-service/internal/usecase/dto"
)

// SearchHandler serves the dropdown-style free-text search.
type SearchHandler struct {
	searchUC *usecase.SearchUseCase
	logger   *zap.Logger
}

func NewSearchHandler(searchUC *usecase.SearchUseCase, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{
		searchUC: searchUC,
		logger:   logger,
	}
}

// Search godoc
// @Summary Free-text search over the catalog
// @Description Substring match on name, short description and tags, case and diacritic insensitive
// @Tags search
// @Produce json
// @Param q query string false "Query text"
// @Param categoria query string false "Restrict to one category"
// @Param limit query int false "Result cap (default 6, max 50)"
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/busca [get]
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	req := dto.SearchRequest{
		Query:    c.Query("q"),
		Category: c.Query("categoria"),
		Limit:    c.QueryInt("limit"),
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.searchUC.Search(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
		Limit: req.Limit,
	})
}
