package main

// @title Locais Service API
// @version 1.0.0
// @description Catalog, search and distance ranking API for the Aura local guide.
// @description
// @description Main capabilities:
// @description - Merged catalog of places across the five categories
// @description - Category browsing with distance, rating and name sorting
// @description - Diacritic-insensitive free-text search
// @description - Per-session geolocation lifecycle
// @description - Mock authentication flow

// @contact.name API Support
// @contact.email support@aura.guide

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	_ "github.com/aura-guide/locais-service/docs/swagger"
	"github.com/aura-guide/locais-service/internal/config"
	httpDelivery "github.com/aura-guide/locais-service/internal/delivery/http"
	"github.com/aura-guide/locais-service/internal/delivery/http/handler"
	"github.com/aura-guide/locais-service/internal/infrastructure/source"
	"github.com/aura-guide/locais-service/internal/metrics"
	"github.com/aura-guide/locais-service/internal/pkg/logger"
	"github.com/aura-guide/locais-service/internal/repository/cache"
	"github.com/aura-guide/locais-service/internal/repository/memory"
	"github.com/aura-guide/locais-service/internal/usecase"
	"github.com/aura-guide/locais-service/internal/worker"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Locais Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.Strings("categories", cfg.Catalog.Categories),
	)

	// 3. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Health(ctx); err != nil {
		cancel()
		log.Fatal("Redis health check failed", zap.Error(err))
	}
	cancel()
	log.Info("Redis connected and healthy")

	// 4. Metrics registry
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	m := metrics.NewMetrics(registry)

	// 5. Initialize repositories
	catalogStore := memory.NewCatalogStore(log)
	sourceClient := source.NewSourceClient(&cfg.Catalog, log)
	cacheRepo := cache.NewCacheRepository(redisClient)

	log.Info("Repositories initialized")

	// 6. Initialize use cases
	catalogUC := usecase.NewCatalogUseCase(
		sourceClient,
		catalogStore,
		log,
		m,
		cfg.Catalog.Categories,
		cfg.Catalog.RequiredCategories,
	)

	positionUC := usecase.NewPositionUseCase(
		cacheRepo,
		log,
		cfg.Geolocation.ResolveTimeout,
		cfg.Geolocation.SessionTTL,
	)

	rankingUC := usecase.NewRankingUseCase(catalogStore, positionUC, log, m)

	searchUC := usecase.NewSearchUseCase(
		catalogStore,
		cacheRepo,
		log,
		m,
		cfg.Cache.SearchCacheTTL,
	)

	statsUC := usecase.NewStatsUseCase(
		catalogStore,
		cacheRepo,
		log,
		cfg.Cache.StatsCacheTTL,
	)

	authUC := usecase.NewAuthUseCase(
		log,
		cfg.Auth.SigningKey,
		cfg.Auth.TokenTTL,
		cfg.Auth.MockLatency,
	)

	log.Info("Use cases initialized")

	// 7. Initial catalog load. A required source failure here is fatal: no
	// partial catalog is ever served.
	loadCtx, loadCancel := context.WithTimeout(context.Background(), cfg.Catalog.FetchTimeout+5*time.Second)
	if err := catalogUC.LoadCatalog(loadCtx); err != nil {
		loadCancel()
		log.Fatal("Initial catalog load failed", zap.Error(err))
	}
	loadCancel()

	// 8. Initialize HTTP handlers
	catalogHandler := handler.NewCatalogHandler(catalogUC, log)
	rankingHandler := handler.NewRankingHandler(rankingUC, log)
	searchHandler := handler.NewSearchHandler(searchUC, log)
	positionHandler := handler.NewPositionHandler(positionUC, log)
	authHandler := handler.NewAuthHandler(authUC, log)
	statsHandler := handler.NewStatsHandler(statsUC, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		catalogHandler,
		rankingHandler,
		searchHandler,
		positionHandler,
		authHandler,
		statsHandler,
		registry,
	)

	// 10. Background catalog refresh
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	if cfg.Worker.RefreshEnabled {
		refreshWorker := worker.NewRefreshWorker(catalogUC, log, cfg.Worker.RefreshInterval)
		go refreshWorker.Run(workerCtx)
	}

	// 11. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 12. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	workerCancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
