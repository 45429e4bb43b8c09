package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/aura-guide/locais-service/internal/usecase"
)

// RefreshWorker re-runs the catalog load on an interval, so edits to the
// static source files show up without a restart. A failed refresh keeps
// the previous snapshot; only the initial load at startup is fatal.
type RefreshWorker struct {
	catalogUC *usecase.CatalogUseCase
	logger    *zap.Logger
	interval  time.Duration
}

func NewRefreshWorker(catalogUC *usecase.CatalogUseCase, logger *zap.Logger, interval time.Duration) *RefreshWorker {
	return &RefreshWorker{
		catalogUC: catalogUC,
		logger:    logger,
		interval:  interval,
	}
}

// Run blocks until ctx is cancelled, reloading the catalog every interval.
func (w *RefreshWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info("Catalog refresh worker started", zap.Duration("interval", w.interval))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Catalog refresh worker stopped")
			return
		case <-ticker.C:
			if err := w.catalogUC.LoadCatalog(ctx); err != nil {
				w.logger.Error("Catalog refresh failed, keeping previous snapshot", zap.Error(err))
			}
		}
	}
}
