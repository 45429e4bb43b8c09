package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/aura-guide/locais-service/internal/domain"
	"github.com/aura-guide/locais-service/internal/domain/repository"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func positionKey(sessionID string) string {
	return fmt.Sprintf("position:%s", sessionID)
}

// GetPosition loads the session position record. A missing key means the
// session is unknown or expired; callers translate that to a not-found.
func (r *cacheRepository) GetPosition(ctx context.Context, sessionID string) (*domain.UserPosition, error) {
	data, err := r.Get(ctx, positionKey(sessionID))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var pos domain.UserPosition
	if err := json.Unmarshal(data, &pos); err != nil {
		r.logger.Error("Failed to unmarshal position from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal position: %w", err)
	}

	return &pos, nil
}

// SetPosition stores the whole lifecycle record under the session key.
func (r *cacheRepository) SetPosition(ctx context.Context, pos *domain.UserPosition, ttl time.Duration) error {
	data, err := json.Marshal(pos)
	if err != nil {
		return fmt.Errorf("marshal position: %w", err)
	}
	return r.Set(ctx, positionKey(pos.SessionID), data, ttl)
}
