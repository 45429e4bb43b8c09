package repository

import "github.com/aura-guide/locais-service/internal/domain"

// CatalogRepository holds the process-wide merged catalog. Publish swaps
// the whole snapshot atomically: readers observe either the previous
// snapshot or the new one, never an interleaving.
type CatalogRepository interface {
	Publish(places []domain.Place)
	Snapshot() []domain.Place
	GetByID(id string) (*domain.Place, bool)
	Loaded() bool
	// Version increments on every Publish. Derived caches key on it so
	// entries computed from an older snapshot are never served again.
	Version() uint64
}
