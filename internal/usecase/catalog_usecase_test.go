package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aura-guide/locais-service/internal/domain"
	"github.com/aura-guide/locais-service/internal/metrics"
	apperrors "github.com/aura-guide/locais-service/internal/pkg/errors"
	"github.com/aura-guide/locais-service/internal/repository/memory"
	"github.com/aura-guide/locais-service/internal/usecase"
)

// MockSourceRepository is a mock of SourceRepository
type MockSourceRepository struct {
	mock.Mock
}

func (m *MockSourceRepository) FetchCategory(ctx context.Context, category string) ([]domain.Place, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Place), args.Error(1)
}

func place(id, name, category string) domain.Place {
	return domain.Place{ID: id, Name: name, Category: category}
}

func TestCatalogUseCase_LoadCatalog(t *testing.T) {
	ctx := context.Background()
	categories := []string{"alimentacao", "infantil", "beleza", "lazer", "pets"}
	required := []string{"alimentacao", "infantil", "beleza", "lazer"}

	t.Run("merges sources in declaration order", func(t *testing.T) {
		source := &MockSourceRepository{}
		source.On("FetchCategory", mock.Anything, "alimentacao").
			Return([]domain.Place{place("a1", "Pizzaria", "alimentacao"), place("a2", "Padaria", "alimentacao")}, nil)
		source.On("FetchCategory", mock.Anything, "infantil").
			Return([]domain.Place{place("i1", "Buffet", "infantil")}, nil)
		source.On("FetchCategory", mock.Anything, "beleza").
			Return([]domain.Place{}, nil)
		source.On("FetchCategory", mock.Anything, "lazer").
			Return([]domain.Place{place("l1", "Parque", "lazer")}, nil)
		source.On("FetchCategory", mock.Anything, "pets").
			Return([]domain.Place{place("p1", "Pet Shop", "pets")}, nil)

		store := memory.NewCatalogStore(zap.NewNop())
		uc := usecase.NewCatalogUseCase(source, store, zap.NewNop(),
			metrics.NewMetrics(prometheus.NewRegistry()), categories, required)

		require.NoError(t, uc.LoadCatalog(ctx))

		snapshot := store.Snapshot()
		ids := make([]string, len(snapshot))
		for i, p := range snapshot {
			ids[i] = p.ID
		}
		assert.Equal(t, []string{"a1", "a2", "i1", "l1", "p1"}, ids)
		assert.True(t, store.Loaded())
	})

	t.Run("tolerated source failure contributes empty list", func(t *testing.T) {
		source := &MockSourceRepository{}
		for _, cat := range required {
			source.On("FetchCategory", mock.Anything, cat).
				Return([]domain.Place{place(cat+"-1", "Local", cat)}, nil)
		}
		source.On("FetchCategory", mock.Anything, "pets").
			Return(nil, errors.New("404 not found"))

		store := memory.NewCatalogStore(zap.NewNop())
		uc := usecase.NewCatalogUseCase(source, store, zap.NewNop(),
			metrics.NewMetrics(prometheus.NewRegistry()), categories, required)

		require.NoError(t, uc.LoadCatalog(ctx))
		assert.Len(t, store.Snapshot(), 4)
	})

	t.Run("required source failure is fatal and publishes nothing", func(t *testing.T) {
		source := &MockSourceRepository{}
		source.On("FetchCategory", mock.Anything, mock.Anything).
			Return(nil, errors.New("connection refused"))

		store := memory.NewCatalogStore(zap.NewNop())
		uc := usecase.NewCatalogUseCase(source, store, zap.NewNop(),
			metrics.NewMetrics(prometheus.NewRegistry()), categories, required)

		err := uc.LoadCatalog(ctx)
		require.Error(t, err)

		appErr, ok := err.(*apperrors.AppError)
		require.True(t, ok)
		assert.Equal(t, "ESSENTIAL_SOURCE_UNAVAILABLE", appErr.Code)
		assert.False(t, store.Loaded())
		assert.Empty(t, store.Snapshot())
	})

	t.Run("duplicate ids keep the first occurrence", func(t *testing.T) {
		source := &MockSourceRepository{}
		source.On("FetchCategory", mock.Anything, "alimentacao").
			Return([]domain.Place{place("dup", "Primeiro", "alimentacao")}, nil)
		source.On("FetchCategory", mock.Anything, "lazer").
			Return([]domain.Place{place("dup", "Segundo", "lazer")}, nil)

		store := memory.NewCatalogStore(zap.NewNop())
		uc := usecase.NewCatalogUseCase(source, store, zap.NewNop(),
			metrics.NewMetrics(prometheus.NewRegistry()),
			[]string{"alimentacao", "lazer"}, []string{"alimentacao", "lazer"})

		require.NoError(t, uc.LoadCatalog(ctx))

		snapshot := store.Snapshot()
		require.Len(t, snapshot, 1)
		assert.Equal(t, "Primeiro", snapshot[0].Name)
	})
}

func TestCatalogUseCase_GetByID(t *testing.T) {
	source := &MockSourceRepository{}
	source.On("FetchCategory", mock.Anything, "pets").
		Return([]domain.Place{place("p1", "Pet Shop", "pets")}, nil)

	store := memory.NewCatalogStore(zap.NewNop())
	uc := usecase.NewCatalogUseCase(source, store, zap.NewNop(),
		metrics.NewMetrics(prometheus.NewRegistry()), []string{"pets"}, []string{"pets"})
	require.NoError(t, uc.LoadCatalog(context.Background()))

	t.Run("found", func(t *testing.T) {
		p, err := uc.GetByID("p1")
		require.NoError(t, err)
		assert.Equal(t, "Pet Shop", p.Name)
	})

	t.Run("miss is PLACE_NOT_FOUND", func(t *testing.T) {
		_, err := uc.GetByID("missing")
		require.Error(t, err)

		appErr, ok := err.(*apperrors.AppError)
		require.True(t, ok)
		assert.Equal(t, "PLACE_NOT_FOUND", appErr.Code)
	})
}
