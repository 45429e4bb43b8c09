package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aura-guide/locais-service/internal/domain"
	"github.com/aura-guide/locais-service/internal/domain/repository"
	"github.com/aura-guide/locais-service/internal/metrics"
	"github.com/aura-guide/locais-service/internal/pkg/errors"
	"github.com/aura-guide/locais-service/internal/pkg/utils"
)

// CatalogUseCase loads the category sources, merges them into one catalog
// and publishes it atomically. It is the only writer of the catalog store.
type CatalogUseCase struct {
	sourceRepo  repository.SourceRepository
	catalogRepo repository.CatalogRepository
	logger      *zap.Logger
	metrics     *metrics.Metrics
	categories  []string
	required    map[string]bool
}

func NewCatalogUseCase(
	sourceRepo repository.SourceRepository,
	catalogRepo repository.CatalogRepository,
	logger *zap.Logger,
	m *metrics.Metrics,
	categories []string,
	requiredCategories []string,
) *CatalogUseCase {
	required := make(map[string]bool, len(requiredCategories))
	for _, c := range requiredCategories {
		required[utils.NormalizeText(c)] = true
	}

	return &CatalogUseCase{
		sourceRepo:  sourceRepo,
		catalogRepo: catalogRepo,
		logger:      logger,
		metrics:     m,
		categories:  categories,
		required:    required,
	}
}

// LoadCatalog fetches every source in parallel and waits for all of them
// to settle. A tolerated source that fails contributes an empty list; a
// required source that fails makes the whole load fail and nothing is
// published. On success the merged catalog replaces the previous snapshot
// in one step.
func (uc *CatalogUseCase) LoadCatalog(ctx context.Context) error {
	start := time.Now()

	// One result slot per source keeps the merge in declaration order
	// regardless of fetch completion order.
	results := make([][]domain.Place, len(uc.categories))

	g, gctx := errgroup.WithContext(ctx)
	for i, category := range uc.categories {
		g.Go(func() error {
			places, err := uc.sourceRepo.FetchCategory(gctx, category)
			if err != nil {
				if uc.required[utils.NormalizeText(category)] {
					uc.metrics.SourceFetches.WithLabelValues(category, "fatal").Inc()
					uc.logger.Error("Required catalog source failed",
						zap.String("category", category),
						zap.Error(err))
					return errors.ErrEssentialSourceUnavailable.WithDetails(map[string]interface{}{
						"category": category,
						"cause":    err.Error(),
					})
				}

				// Tolerated: degrade to an empty contribution, log only.
				uc.metrics.SourceFetches.WithLabelValues(category, "tolerated_failure").Inc()
				uc.logger.Warn("Catalog source unavailable, contributing empty list",
					zap.String("category", category),
					zap.Error(err))
				results[i] = nil
				return nil
			}

			uc.metrics.SourceFetches.WithLabelValues(category, "ok").Inc()
			results[i] = places
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		uc.metrics.RequestSeconds.WithLabelValues("error").Observe(time.Since(start).Seconds())
		return err
	}

	merged := uc.merge(results)
	uc.catalogRepo.Publish(merged)

	uc.metrics.CatalogSize.Set(float64(len(merged)))
	uc.metrics.RequestSeconds.WithLabelValues("ok").Observe(time.Since(start).Seconds())

	uc.logger.Info("Catalog loaded",
		zap.Int("sources", len(uc.categories)),
		zap.Int("places", len(merged)),
		zap.Duration("took", time.Since(start)))

	return nil
}

// merge flattens the per-source results preserving source declaration
// order, then intra-source order. Duplicate ids keep the first occurrence.
func (uc *CatalogUseCase) merge(results [][]domain.Place) []domain.Place {
	total := 0
	for _, r := range results {
		total += len(r)
	}

	merged := make([]domain.Place, 0, total)
	seen := make(map[string]bool, total)
	for _, r := range results {
		for _, p := range r {
			if seen[p.ID] {
				uc.logger.Warn("Duplicate place id dropped", zap.String("id", p.ID))
				continue
			}
			seen[p.ID] = true
			merged = append(merged, p)
		}
	}

	return merged
}

// AllPlaces returns the current catalog snapshot.
func (uc *CatalogUseCase) AllPlaces() []domain.Place {
	return uc.catalogRepo.Snapshot()
}

// GetByID looks a place up in the snapshot. A miss is the non-fatal
// PLACE_NOT_FOUND condition, rendered as a user-facing message.
func (uc *CatalogUseCase) GetByID(id string) (*domain.Place, error) {
	place, ok := uc.catalogRepo.GetByID(id)
	if !ok {
		return nil, errors.ErrPlaceNotFound.WithDetails(map[string]interface{}{
			"id": id,
		})
	}
	return place, nil
}

// Loaded reports whether a catalog snapshot has been published yet.
func (uc *CatalogUseCase) Loaded() bool {
	return uc.catalogRepo.Loaded()
}
