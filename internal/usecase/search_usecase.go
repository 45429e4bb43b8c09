package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/aura-guide/locais-service/internal/domain"
	"github.com/aura-guide/locais-service/internal/domain/repository"
	"github.com/aura-guide/locais-service/internal/metrics"
	"github.com/aura-guide/locais-service/internal/pkg/utils"
	"github.com/aura-guide/locais-service/internal/usecase/dto"
)

// DefaultSearchLimit caps the dropdown-style search result.
const DefaultSearchLimit = 6

// SearchUseCase answers free-text queries over the catalog, optionally
// scoped to one category. Results are cached briefly in Redis keyed on the
// normalized query, since the same prefix is typed by many users.
type SearchUseCase struct {
	catalogRepo repository.CatalogRepository
	cacheRepo   repository.CacheRepository
	logger      *zap.Logger
	metrics     *metrics.Metrics
	cacheTTL    time.Duration
}

func NewSearchUseCase(
	catalogRepo repository.CatalogRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	m *metrics.Metrics,
	cacheTTL time.Duration,
) *SearchUseCase {
	return &SearchUseCase{
		catalogRepo: catalogRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
		metrics:     m,
		cacheTTL:    cacheTTL,
	}
}

// Search filters the (optionally category-scoped) catalog by the query and
// caps the result. An empty query is a no-op filter, not "match nothing".
func (uc *SearchUseCase) Search(ctx context.Context, req dto.SearchRequest) (*dto.SearchResponse, error) {
	if req.Limit == 0 {
		req.Limit = DefaultSearchLimit
	}

	uc.metrics.SearchRequests.Inc()

	// The snapshot version in the key retires every cached result the
	// moment a new catalog is published; stale keys just expire.
	cacheKey := fmt.Sprintf("search:v%d:%s:%s:%d",
		uc.catalogRepo.Version(),
		utils.NormalizeText(req.Category),
		utils.NormalizeText(req.Query),
		req.Limit,
	)

	if cached, err := uc.cacheRepo.Get(ctx, cacheKey); err == nil && cached != nil {
		var resp dto.SearchResponse
		if err := json.Unmarshal(cached, &resp); err == nil {
			return &resp, nil
		}
		// A corrupt cache entry falls through to a fresh computation.
		uc.logger.Warn("Discarding unreadable search cache entry", zap.String("key", cacheKey))
	}

	entries := uc.catalogRepo.Snapshot()
	if req.Category != "" {
		entries = FilterByCategory(entries, req.Category)
	}

	matched := MatchQuery(entries, req.Query)

	// Cap after matching, never inside the matcher.
	if len(matched) > req.Limit {
		matched = matched[:req.Limit]
	}

	resp := &dto.SearchResponse{
		Results: matched,
		Total:   len(matched),
	}

	if data, err := json.Marshal(resp); err == nil {
		if err := uc.cacheRepo.Set(ctx, cacheKey, data, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache search result", zap.Error(err))
		}
	}

	return resp, nil
}

// MatchQuery returns the entries whose name, short description or any tag
// contains the normalized query as a substring. The filter is stable: the
// input order is preserved. An empty normalized query returns the input
// unchanged.
func MatchQuery(entries []domain.Place, query string) []domain.Place {
	normalized := utils.NormalizeText(strings.TrimSpace(query))
	if normalized == "" {
		return entries
	}

	matched := make([]domain.Place, 0, len(entries))
	for _, p := range entries {
		if matchesPlace(p, normalized) {
			matched = append(matched, p)
		}
	}
	return matched
}

func matchesPlace(p domain.Place, normalizedQuery string) bool {
	if strings.Contains(utils.NormalizeText(p.Name), normalizedQuery) {
		return true
	}
	if p.ShortDescription != "" &&
		strings.Contains(utils.NormalizeText(p.ShortDescription), normalizedQuery) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(utils.NormalizeText(tag), normalizedQuery) {
			return true
		}
	}
	return false
}
