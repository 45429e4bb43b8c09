package usecase_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aura-guide/locais-service/internal/domain"
	"github.com/aura-guide/locais-service/internal/metrics"
	"github.com/aura-guide/locais-service/internal/repository/memory"
	"github.com/aura-guide/locais-service/internal/usecase"
	"github.com/aura-guide/locais-service/internal/usecase/dto"
)

func newSearchFixture(t *testing.T, places []domain.Place) (*usecase.SearchUseCase, *fakeCache) {
	t.Helper()

	store := memory.NewCatalogStore(zap.NewNop())
	store.Publish(places)

	cache := newFakeCache()
	uc := usecase.NewSearchUseCase(store, cache, zap.NewNop(),
		metrics.NewMetrics(prometheus.NewRegistry()), time.Minute)

	return uc, cache
}

func searchCatalog() []domain.Place {
	return []domain.Place{
		{ID: "1", Name: "Café União", Category: "alimentacao",
			ShortDescription: "Cafeteria artesanal", Tags: []string{"café", "brunch"}},
		{ID: "2", Name: "Pizzaria Bella", Category: "alimentacao",
			ShortDescription: "Forno a lenha", Tags: []string{"pizza"}},
		{ID: "3", Name: "Parque das Águas", Category: "lazer",
			ShortDescription: "Trilhas e cafeteria", Tags: []string{"natureza"}},
		{ID: "4", Name: "Pet Feliz", Category: "pets",
			ShortDescription: "Banho e tosa", Tags: []string{"banho", "tosa"}},
	}
}

func TestMatchQuery(t *testing.T) {
	catalog := searchCatalog()

	t.Run("empty query returns input unchanged", func(t *testing.T) {
		assert.Len(t, usecase.MatchQuery(catalog, ""), len(catalog))
		assert.Len(t, usecase.MatchQuery(catalog, "   "), len(catalog))
	})

	t.Run("matches name ignoring accents and case", func(t *testing.T) {
		result := usecase.MatchQuery(catalog, "uniao")
		require.Len(t, result, 1)
		assert.Equal(t, "1", result[0].ID)
	})

	t.Run("matches short description", func(t *testing.T) {
		result := usecase.MatchQuery(catalog, "cafeteria")
		require.Len(t, result, 2)
		assert.Equal(t, "1", result[0].ID)
		assert.Equal(t, "3", result[1].ID)
	})

	t.Run("matches tags", func(t *testing.T) {
		result := usecase.MatchQuery(catalog, "tosa")
		require.Len(t, result, 1)
		assert.Equal(t, "4", result[0].ID)
	})

	t.Run("no match yields empty slice", func(t *testing.T) {
		assert.Empty(t, usecase.MatchQuery(catalog, "farmacia"))
	})
}

func TestSearchUseCase_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("scopes by category before matching", func(t *testing.T) {
		uc, _ := newSearchFixture(t, searchCatalog())

		resp, err := uc.Search(ctx, dto.SearchRequest{Query: "cafeteria", Category: "lazer"})
		require.NoError(t, err)
		require.Len(t, resp.Results, 1)
		assert.Equal(t, "3", resp.Results[0].ID)
		assert.Equal(t, 1, resp.Total)
	})

	t.Run("caps the result after matching", func(t *testing.T) {
		places := make([]domain.Place, 0, 10)
		for i := 0; i < 10; i++ {
			places = append(places, domain.Place{
				ID:       string(rune('a' + i)),
				Name:     "Restaurante",
				Category: "alimentacao",
			})
		}
		uc, _ := newSearchFixture(t, places)

		resp, err := uc.Search(ctx, dto.SearchRequest{Query: "restaurante"})
		require.NoError(t, err)
		assert.Len(t, resp.Results, usecase.DefaultSearchLimit)
		assert.Equal(t, usecase.DefaultSearchLimit, resp.Total)

		resp, err = uc.Search(ctx, dto.SearchRequest{Query: "restaurante", Limit: 3})
		require.NoError(t, err)
		assert.Len(t, resp.Results, 3)
	})

	t.Run("second identical query is served from cache", func(t *testing.T) {
		uc, cache := newSearchFixture(t, searchCatalog())

		req := dto.SearchRequest{Query: "pizza"}

		first, err := uc.Search(ctx, req)
		require.NoError(t, err)
		require.Len(t, first.Results, 1)

		// Rewrite the stored entry; the repeat query must return it
		// verbatim instead of recomputing.
		tampered, err := json.Marshal(dto.SearchResponse{
			Results: []domain.Place{{ID: "cached", Name: "Cached"}},
			Total:   1,
		})
		require.NoError(t, err)
		for key := range cache.data {
			cache.data[key] = tampered
		}

		second, err := uc.Search(ctx, req)
		require.NoError(t, err)
		require.Len(t, second.Results, 1)
		assert.Equal(t, "cached", second.Results[0].ID)
	})

	t.Run("re-publish retires cached results", func(t *testing.T) {
		store := memory.NewCatalogStore(zap.NewNop())
		store.Publish(searchCatalog())
		cache := newFakeCache()
		uc := usecase.NewSearchUseCase(store, cache, zap.NewNop(),
			metrics.NewMetrics(prometheus.NewRegistry()), time.Minute)

		req := dto.SearchRequest{Query: "pizza"}

		first, err := uc.Search(ctx, req)
		require.NoError(t, err)
		require.Len(t, first.Results, 1)

		// The pizzeria is gone from the new snapshot; the old cached
		// entry must not outlive the publish.
		store.Publish(nil)

		second, err := uc.Search(ctx, req)
		require.NoError(t, err)
		assert.Empty(t, second.Results)
	})

	t.Run("cache write failure does not fail the search", func(t *testing.T) {
		uc, cache := newSearchFixture(t, searchCatalog())
		cache.fail = true

		resp, err := uc.Search(ctx, dto.SearchRequest{Query: "pizza"})
		require.NoError(t, err)
		assert.Len(t, resp.Results, 1)
	})
}
