package usecase_test

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/aura-guide/locais-service/internal/domain"
)

func ptrFloat64(v float64) *float64 { return &v }

// fakeCache is a map-backed CacheRepository double. TTLs are recorded but
// not enforced; tests drive expiry through the position timestamps.
type fakeCache struct {
	mu    sync.Mutex
	data  map[string][]byte
	ttls  map[string]time.Duration
	fail  bool
	getsN int
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		data: make(map[string][]byte),
		ttls: make(map[string]time.Duration),
	}
}

func (f *fakeCache) Get(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getsN++
	return f.data[key], nil
}

func (f *fakeCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errFakeCache
	}
	f.data[key] = value
	f.ttls[key] = ttl
	return nil
}

func (f *fakeCache) GetPosition(ctx context.Context, sessionID string) (*domain.UserPosition, error) {
	data, err := f.Get(ctx, "position:"+sessionID)
	if err != nil || data == nil {
		return nil, err
	}
	var pos domain.UserPosition
	if err := json.Unmarshal(data, &pos); err != nil {
		return nil, err
	}
	return &pos, nil
}

func (f *fakeCache) SetPosition(ctx context.Context, pos *domain.UserPosition, ttl time.Duration) error {
	data, err := json.Marshal(pos)
	if err != nil {
		return err
	}
	return f.Set(ctx, "position:"+pos.SessionID, data, ttl)
}

type fakeCacheError struct{}

func (fakeCacheError) Error() string { return "fake cache failure" }

var errFakeCache = fakeCacheError{}
