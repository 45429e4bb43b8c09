package repository

import (
	"context"
	"time"

	"github.com/aura-guide/locais-service/internal/domain"
)

// CacheRepository is the Redis-backed side store: short-lived caches for
// search results and stats, plus the session position records.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	GetPosition(ctx context.Context, sessionID string) (*domain.UserPosition, error)
	SetPosition(ctx context.Context, pos *domain.UserPosition, ttl time.Duration) error
}
