package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/aura-guide/locais-service/internal/domain"
	"github.com/aura-guide/locais-service/internal/domain/repository"
	"github.com/aura-guide/locais-service/internal/pkg/utils"
	"github.com/aura-guide/locais-service/internal/usecase/dto"
)

// statsCacheKey includes the snapshot version, so a catalog re-publish
// retires the cached aggregate instead of serving it until the TTL.
func statsCacheKey(version uint64) string {
	return fmt.Sprintf("stats:v%d", version)
}

// StatsUseCase aggregates per-category counts and ratings over the current
// snapshot, with a short Redis cache in front.
type StatsUseCase struct {
	catalogRepo repository.CatalogRepository
	cacheRepo   repository.CacheRepository
	logger      *zap.Logger
	cacheTTL    time.Duration
}

func NewStatsUseCase(
	catalogRepo repository.CatalogRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *StatsUseCase {
	return &StatsUseCase{
		catalogRepo: catalogRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
		cacheTTL:    cacheTTL,
	}
}

func (uc *StatsUseCase) GetStatistics(ctx context.Context) (*dto.StatsResponse, error) {
	cacheKey := statsCacheKey(uc.catalogRepo.Version())

	if cached, err := uc.cacheRepo.Get(ctx, cacheKey); err == nil && cached != nil {
		var resp dto.StatsResponse
		if err := json.Unmarshal(cached, &resp); err == nil {
			return &resp, nil
		}
	}

	snapshot := uc.catalogRepo.Snapshot()

	counts := make(map[string]int)
	ratingSums := make(map[string]float64)
	ratingCounts := make(map[string]int)
	for _, p := range snapshot {
		key := utils.NormalizeText(p.Category)
		counts[key]++
		if p.Rating != nil {
			ratingSums[key] += *p.Rating
			ratingCounts[key]++
		}
	}

	// Known categories first, in declaration order, then whatever else the
	// sources carried.
	categories := make([]dto.CategoryStats, 0, len(counts))
	emit := func(key string) {
		stat := dto.CategoryStats{Category: key, Places: counts[key]}
		if ratingCounts[key] > 0 {
			stat.AverageRating = ratingSums[key] / float64(ratingCounts[key])
		}
		categories = append(categories, stat)
		delete(counts, key)
	}
	for _, key := range domain.KnownCategories {
		if _, ok := counts[key]; ok {
			emit(key)
		}
	}
	for key := range counts {
		emit(key)
	}

	resp := &dto.StatsResponse{
		TotalPlaces: len(snapshot),
		Categories:  categories,
		GeneratedAt: time.Now().UTC(),
	}

	if data, err := json.Marshal(resp); err == nil {
		if err := uc.cacheRepo.Set(ctx, cacheKey, data, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache stats", zap.Error(err))
		}
	}

	return resp, nil
}
