package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/aura-guide/locais-service/internal/config"
	"github.com/aura-guide/locais-service/internal/delivery/http/handler"
	"github.com/aura-guide/locais-service/internal/delivery/http/middleware"
)

// Server is the Fiber HTTP server exposing the catalog API.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	catalogHandler  *handler.CatalogHandler
	rankingHandler  *handler.RankingHandler
	searchHandler   *handler.SearchHandler
	positionHandler *handler.PositionHandler
	authHandler     *handler.AuthHandler
	statsHandler    *handler.StatsHandler

	metricsRegistry *prometheus.Registry
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	catalogHandler *handler.CatalogHandler,
	rankingHandler *handler.RankingHandler,
	searchHandler *handler.SearchHandler,
	positionHandler *handler.PositionHandler,
	authHandler *handler.AuthHandler,
	statsHandler *handler.StatsHandler,
	metricsRegistry *prometheus.Registry,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Locais Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:             app,
		config:          cfg,
		logger:          logger,
		catalogHandler:  catalogHandler,
		rankingHandler:  rankingHandler,
		searchHandler:   searchHandler,
		positionHandler: positionHandler,
		authHandler:     authHandler,
		statsHandler:    statsHandler,
		metricsRegistry: metricsRegistry,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Prometheus metrics
	s.app.Get("/metrics", adaptor.HTTPHandler(
		promhttp.HandlerFor(s.metricsRegistry, promhttp.HandlerOpts{}),
	))

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", s.catalogHandler.Health)

	// Catalog routes
	api.Get("/locais", s.catalogHandler.ListPlaces)
	api.Get("/locais/:id", s.catalogHandler.GetPlace)

	// Ranked category listing
	api.Get("/categorias/:categoria/locais", s.rankingHandler.ListByCategory)
	api.Get("/destaques", s.rankingHandler.Featured)

	// Search
	api.Get("/busca", s.searchHandler.Search)

	// Geolocation sessions
	api.Post("/sessions", s.positionHandler.StartSession)
	api.Post("/sessions/:id/position", s.positionHandler.ReportPosition)
	api.Get("/sessions/:id/position", s.positionHandler.GetPosition)

	// Mock auth
	api.Post("/auth/login", s.authHandler.Login)
	api.Post("/auth/register", s.authHandler.Register)

	// Stats
	api.Get("/stats", s.statsHandler.GetStatistics)
}

func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
