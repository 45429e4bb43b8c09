package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aura-guide/locais-service/internal/domain"
	"github.com/aura-guide/locais-service/internal/domain/repository"
	"github.com/aura-guide/locais-service/internal/pkg/errors"
	"github.com/aura-guide/locais-service/internal/pkg/utils"
)

// PositionUseCase owns the session position lifecycle. It is the only
// writer of position records; ranking requests only read them.
type PositionUseCase struct {
	cacheRepo      repository.CacheRepository
	logger         *zap.Logger
	resolveTimeout time.Duration
	sessionTTL     time.Duration
}

func NewPositionUseCase(
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	resolveTimeout time.Duration,
	sessionTTL time.Duration,
) *PositionUseCase {
	return &PositionUseCase{
		cacheRepo:      cacheRepo,
		logger:         logger,
		resolveTimeout: resolveTimeout,
		sessionTTL:     sessionTTL,
	}
}

// StartSession issues a session id and a pending position record: the
// client is expected to report coordinates or a failure reason next.
func (uc *PositionUseCase) StartSession(ctx context.Context) (*domain.UserPosition, error) {
	pos := &domain.UserPosition{
		SessionID:   uuid.NewString(),
		State:       domain.PositionPending,
		RequestedAt: time.Now().UTC(),
	}

	if err := uc.cacheRepo.SetPosition(ctx, pos, uc.sessionTTL); err != nil {
		return nil, errors.ErrCacheError
	}

	uc.logger.Debug("Position session started", zap.String("session_id", pos.SessionID))
	return pos, nil
}

// ReportPosition settles a pending request with either a coordinate pair
// or a failure reason. Reported coordinates are validated; out-of-range
// pairs are rejected rather than stored.
func (uc *PositionUseCase) ReportPosition(
	ctx context.Context,
	sessionID string,
	lat, lon *float64,
	failureReason string,
) (*domain.UserPosition, error) {
	pos, err := uc.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	switch {
	case failureReason != "":
		if !domain.ValidFailureReason(failureReason) {
			return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
				"failure_reason": failureReason,
			})
		}
		pos.State = domain.PositionFailed
		pos.FailureReason = failureReason
		pos.Coordinates = nil
		pos.ResolvedAt = now

	case lat != nil && lon != nil:
		if !utils.ValidateCoordinates(*lat, *lon) {
			return nil, errors.ErrInvalidCoordinates
		}
		pos.State = domain.PositionResolved
		pos.Coordinates = &domain.Coordinates{Latitude: *lat, Longitude: *lon}
		pos.FailureReason = ""
		pos.ResolvedAt = now

	default:
		// A half-complete pair is treated the same as no pair at all.
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"reason": "either both coordinates or a failure_reason is required",
		})
	}

	if err := uc.cacheRepo.SetPosition(ctx, pos, uc.sessionTTL); err != nil {
		return nil, errors.ErrCacheError
	}

	uc.logger.Debug("Position reported",
		zap.String("session_id", sessionID),
		zap.String("state", string(pos.State)))

	return pos, nil
}

// GetPosition returns the session's current lifecycle state. A pending
// request past the resolve timeout transitions to failed/timeout here, so
// no session stays pending indefinitely.
func (uc *PositionUseCase) GetPosition(ctx context.Context, sessionID string) (*domain.UserPosition, error) {
	pos, err := uc.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if pos.Expired(uc.resolveTimeout, time.Now().UTC()) {
		pos.State = domain.PositionFailed
		pos.FailureReason = domain.PositionReasonTimeout
		pos.ResolvedAt = time.Now().UTC()

		if err := uc.cacheRepo.SetPosition(ctx, pos, uc.sessionTTL); err != nil {
			uc.logger.Warn("Failed to persist position timeout", zap.Error(err))
		}
	}

	return pos, nil
}

func (uc *PositionUseCase) loadSession(ctx context.Context, sessionID string) (*domain.UserPosition, error) {
	if sessionID == "" {
		return nil, errors.ErrSessionNotFound
	}

	pos, err := uc.cacheRepo.GetPosition(ctx, sessionID)
	if err != nil {
		return nil, errors.ErrCacheError
	}
	if pos == nil {
		return nil, errors.ErrSessionNotFound
	}

	return pos, nil
}
