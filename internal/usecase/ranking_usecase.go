package usecase

import (
	"context"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/aura-guide/locais-service/internal/domain"
	"github.com/aura-guide/locais-service/internal/domain/repository"
	"github.com/aura-guide/locais-service/internal/metrics"
	"github.com/aura-guide/locais-service/internal/pkg/errors"
	"github.com/aura-guide/locais-service/internal/pkg/utils"
	"github.com/aura-guide/locais-service/internal/usecase/dto"
)

// RankingUseCase builds the ordered listing a category page renders:
// filter by category, annotate with distance, sort by criterion. The whole
// pipeline is recomputed per request over the immutable snapshot; previous
// results are never patched.
type RankingUseCase struct {
	catalogRepo repository.CatalogRepository
	positionUC  *PositionUseCase
	logger      *zap.Logger
	metrics     *metrics.Metrics
}

func NewRankingUseCase(
	catalogRepo repository.CatalogRepository,
	positionUC *PositionUseCase,
	logger *zap.Logger,
	m *metrics.Metrics,
) *RankingUseCase {
	return &RankingUseCase{
		catalogRepo: catalogRepo,
		positionUC:  positionUC,
		logger:      logger,
		metrics:     m,
	}
}

// Rank runs the full pipeline for one request. Selecting distance-asc
// without a resolved position yields POSITION_REQUIRED; the caller is
// expected to request geolocation and fall back to another criterion.
func (uc *RankingUseCase) Rank(ctx context.Context, req dto.RankingRequest) (*dto.RankedListResponse, error) {
	criterion, ok := domain.ParseSortCriterion(req.Sort)
	if !ok {
		return nil, errors.ErrInvalidSort.WithDetails(map[string]interface{}{
			"sort": req.Sort,
		})
	}

	positionState := domain.PositionUnrequested
	positionError := ""
	var userCoords *domain.Coordinates

	if req.SessionID != "" {
		pos, err := uc.positionUC.GetPosition(ctx, req.SessionID)
		switch {
		case err == errors.ErrSessionNotFound:
			// Unknown or expired session ranks with null distances.
			uc.logger.Debug("Ranking without position, session unknown",
				zap.String("session_id", req.SessionID))
		case err != nil:
			return nil, err
		default:
			positionState = pos.State
			positionError = pos.FailureReason
			if pos.IsResolved() {
				userCoords = pos.Coordinates
			}
		}
	}

	if criterion.RequiresPosition() && userCoords == nil {
		return nil, errors.ErrPositionRequired.WithDetails(map[string]interface{}{
			"position_state": string(positionState),
			"fallback":       string(domain.DefaultSort),
		})
	}

	filtered := FilterByCategory(uc.catalogRepo.Snapshot(), req.Category)
	entries := AnnotateDistances(filtered, userCoords)
	uc.SortEntries(entries, criterion)

	uc.metrics.RankingRequests.WithLabelValues(string(criterion)).Inc()

	return &dto.RankedListResponse{
		Entries:       entries,
		SortCriterion: criterion,
		Total:         len(entries),
		PositionState: positionState,
		PositionError: positionError,
	}, nil
}

// FilterByCategory returns every place whose normalized category equals
// the normalized key. An empty result is valid, not an error.
func FilterByCategory(catalog []domain.Place, categoryKey string) []domain.Place {
	key := utils.NormalizeText(categoryKey)

	filtered := make([]domain.Place, 0, len(catalog))
	for _, p := range catalog {
		if utils.NormalizeText(p.Category) == key {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// AnnotateDistances derives a RankedEntry per place. The distance is nil
// when the user position is absent, the place has no coordinate pair, or
// the pair fails validation; a bad entry never aborts the whole ranking.
func AnnotateDistances(places []domain.Place, userCoords *domain.Coordinates) []domain.RankedEntry {
	entries := make([]domain.RankedEntry, len(places))
	for i, p := range places {
		entry := domain.RankedEntry{Place: p}

		if userCoords != nil && p.Coordinates != nil {
			if km, ok := utils.DistanceKm(
				userCoords.Latitude, userCoords.Longitude,
				p.Coordinates.Latitude, p.Coordinates.Longitude,
			); ok {
				d := km
				entry.DistanceKm = &d
				entry.DistanceText = utils.FormatDistance(&d)
			}
		}

		entries[i] = entry
	}
	return entries
}

// SortEntries orders entries in place by criterion. All sorts are stable:
// ties and entries with missing data keep their relative order.
func (uc *RankingUseCase) SortEntries(entries []domain.RankedEntry, criterion domain.SortCriterion) {
	switch criterion {
	case domain.SortDistanceAsc:
		// Entries with an unknown distance sort after every known one.
		sort.SliceStable(entries, func(i, j int) bool {
			di, dj := entries[i].DistanceKm, entries[j].DistanceKm
			if di == nil {
				return false
			}
			if dj == nil {
				return true
			}
			return *di < *dj
		})
	case domain.SortRatingAsc:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].RatingOrZero() < entries[j].RatingOrZero()
		})
	case domain.SortNameAsc:
		// Collators carry mutable comparison buffers and must not be
		// shared across requests, so each sort builds its own.
		col := collate.New(language.BrazilianPortuguese)
		sort.SliceStable(entries, func(i, j int) bool {
			return col.CompareString(entries[i].Name, entries[j].Name) < 0
		})
	case domain.SortNameDesc:
		col := collate.New(language.BrazilianPortuguese)
		sort.SliceStable(entries, func(i, j int) bool {
			return col.CompareString(entries[i].Name, entries[j].Name) > 0
		})
	default: // rating-desc
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].RatingOrZero() > entries[j].RatingOrZero()
		})
	}
}

// Featured returns the home page carousel contract: the lazer category
// ordered by rating, capped to limit.
func (uc *RankingUseCase) Featured(limit int) []domain.RankedEntry {
	filtered := FilterByCategory(uc.catalogRepo.Snapshot(), domain.CategoryLazer)
	entries := AnnotateDistances(filtered, nil)
	uc.SortEntries(entries, domain.SortRatingDesc)

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
