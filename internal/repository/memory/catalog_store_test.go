package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aura-guide/locais-service/internal/domain"
)

func TestCatalogStore(t *testing.T) {
	places := []domain.Place{
		{ID: "1", Name: "Café União", Category: "alimentacao"},
		{ID: "2", Name: "Parque das Águas", Category: "lazer"},
	}

	t.Run("empty store is not loaded", func(t *testing.T) {
		store := NewCatalogStore(zap.NewNop())

		assert.False(t, store.Loaded())
		assert.Empty(t, store.Snapshot())

		_, ok := store.GetByID("1")
		assert.False(t, ok)
	})

	t.Run("publish replaces the snapshot atomically", func(t *testing.T) {
		store := NewCatalogStore(zap.NewNop())
		store.Publish(places)

		assert.True(t, store.Loaded())
		assert.Len(t, store.Snapshot(), 2)

		p, ok := store.GetByID("2")
		require.True(t, ok)
		assert.Equal(t, "Parque das Águas", p.Name)

		store.Publish(places[:1])
		assert.Len(t, store.Snapshot(), 1)
		_, ok = store.GetByID("2")
		assert.False(t, ok)
	})

	t.Run("GetByID returns a copy", func(t *testing.T) {
		store := NewCatalogStore(zap.NewNop())
		store.Publish(places)

		p, ok := store.GetByID("1")
		require.True(t, ok)
		p.Name = "mutated"

		again, ok := store.GetByID("1")
		require.True(t, ok)
		assert.Equal(t, "Café União", again.Name)
	})

	t.Run("version increments on every publish", func(t *testing.T) {
		store := NewCatalogStore(zap.NewNop())
		assert.Equal(t, uint64(0), store.Version())

		store.Publish(places)
		assert.Equal(t, uint64(1), store.Version())

		store.Publish(places)
		assert.Equal(t, uint64(2), store.Version())
	})

	t.Run("publishing nil still marks the store loaded", func(t *testing.T) {
		store := NewCatalogStore(zap.NewNop())
		store.Publish(nil)

		assert.True(t, store.Loaded())
		assert.Empty(t, store.Snapshot())
	})

	t.Run("concurrent readers during publish", func(t *testing.T) {
		store := NewCatalogStore(zap.NewNop())
		store.Publish(places)

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					snapshot := store.Snapshot()
					assert.True(t, len(snapshot) == 1 || len(snapshot) == 2)
					store.GetByID("1")
				}
			}()
		}
		for i := 0; i < 100; i++ {
			if i%2 == 0 {
				store.Publish(places[:1])
			} else {
				store.Publish(places)
			}
		}
		wg.Wait()
	})
}
