package memory

import (
	"sync"

	"go.uber.org/zap"

	"github.com/aura-guide/locais-service/internal/domain"
	"github.com/aura-guide/locais-service/internal/domain/repository"
)

// catalogStore keeps the merged catalog as an immutable snapshot. Publish
// replaces the slice and the id index together under the write lock, so a
// reader never sees a half-merged catalog.
type catalogStore struct {
	mu      sync.RWMutex
	places  []domain.Place
	byID    map[string]int
	version uint64
	loaded  bool
	logger  *zap.Logger
}

func NewCatalogStore(logger *zap.Logger) repository.CatalogRepository {
	return &catalogStore{
		byID:   make(map[string]int),
		logger: logger,
	}
}

func (s *catalogStore) Publish(places []domain.Place) {
	byID := make(map[string]int, len(places))
	for i, p := range places {
		byID[p.ID] = i
	}

	s.mu.Lock()
	s.places = places
	s.byID = byID
	s.version++
	s.loaded = true
	version := s.version
	s.mu.Unlock()

	s.logger.Info("Catalog snapshot published",
		zap.Int("places", len(places)),
		zap.Uint64("version", version))
}

// Snapshot returns the current catalog. The slice header is shared with
// the store but the snapshot itself is never mutated, so callers may read
// it without copying.
func (s *catalogStore) Snapshot() []domain.Place {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.places
}

func (s *catalogStore) GetByID(id string) (*domain.Place, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	p := s.places[i]
	return &p, true
}

func (s *catalogStore) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

func (s *catalogStore) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}
