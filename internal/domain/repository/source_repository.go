package repository

import (
	"context"

	"github.com/aura-guide/locais-service/internal/domain"
)

// SourceRepository fetches the raw place records for one category source.
// Implementations decide how tolerant they are of malformed payloads; the
// catalog use case decides whether a failed source is fatal.
type SourceRepository interface {
	FetchCategory(ctx context.Context, category string) ([]domain.Place, error)
}
