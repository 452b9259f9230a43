// Package server provides the JSON API HTTP server
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/platewise/v1/internal/infrastructure/config"
	"github.com/platewise/v1/internal/infrastructure/http/handlers"
	"github.com/platewise/v1/internal/infrastructure/http/middleware"
	"github.com/platewise/v1/internal/ports/inbound"
	"github.com/platewise/v1/pkg/healthcheck"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Server represents the HTTP server
type Server struct {
	config        *config.Config
	logger        *zap.Logger
	router        *chi.Mux
	server        *http.Server
	recipeService inbound.RecipeService
	pantryService inbound.PantryService
	health        *healthcheck.HealthCheck
	registry      *prometheus.Registry
}

// NewServer creates a new HTTP server instance
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	recipeService inbound.RecipeService,
	pantryService inbound.PantryService,
	health *healthcheck.HealthCheck,
) *Server {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	s := &Server{
		config:        cfg,
		logger:        logger.Named("http-server"),
		recipeService: recipeService,
		pantryService: pantryService,
		health:        health,
		registry:      registry,
	}

	s.router = s.setupRouter()

	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           s.router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    cfg.Server.MaxHeaderBytes,
	}

	return s
}

// setupRouter configures the HTTP router with middleware and routes
func (s *Server) setupRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger,
		s.config.Monitoring.HealthCheckPath,
		s.config.Monitoring.ReadinessPath,
	))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Security())
	if s.config.Server.EnableCORS {
		r.Use(middleware.CORS(s.config.Server.AllowedOrigins))
	}
	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(chimiddleware.Compress(5))

	if s.config.Monitoring.EnableMetrics {
		metrics := middleware.NewMetrics(s.registry)
		r.Use(metrics.Handler())
		r.Method(http.MethodGet, s.config.Monitoring.MetricsPath,
			promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	}

	// Health probes
	r.Get(s.config.Monitoring.HealthCheckPath, s.health.Handler())
	r.Get(s.config.Monitoring.ReadinessPath, s.health.ReadinessHandler())
	r.Get("/live", s.health.LivenessHandler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.JSONOnly())
		s.setupAPIRoutes(r)
	})

	return r
}

// setupAPIRoutes configures the REST API routes
func (s *Server) setupAPIRoutes(r chi.Router) {
	recipeH := handlers.NewRecipeHandlers(s.recipeService, s.logger)
	pantryH := handlers.NewPantryHandlers(s.pantryService, s.logger)

	// Text utilities take no caller identity
	r.Post("/parse", recipeH.Parse)
	r.Post("/detect", recipeH.Detect)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Identity())

		r.Route("/pantry", func(r chi.Router) {
			r.Get("/", pantryH.List)
			r.Post("/", pantryH.Add)
			r.Get("/expired", pantryH.ListExpired)
			r.Get("/{id}", pantryH.Get)
			r.Put("/{id}", pantryH.Update)
			r.Delete("/{id}", pantryH.Remove)
		})

		r.Route("/recipes", func(r chi.Router) {
			r.Post("/", recipeH.Create)
			r.Post("/import", recipeH.Import)
			r.Post("/search", recipeH.Search)
			r.Post("/safe", recipeH.FilterSafe)
			r.Get("/{id}", recipeH.Get)
			r.Put("/{id}", recipeH.Update)
			r.Delete("/{id}", recipeH.Delete)
			r.Post("/{id}/tags", recipeH.Tag)
			r.Delete("/{id}/tags/{tag}", recipeH.Untag)
			r.Get("/{id}/coverage", recipeH.Coverage)
			r.Post("/{id}/safety", recipeH.Safety)
		})

		r.Post("/coverage/text", recipeH.CoverageForText)
		r.Get("/tags", recipeH.ListTags)
	})
}

// Router returns the configured router, used by tests
func (s *Server) Router() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server",
		zap.String("address", s.server.Addr),
		zap.String("environment", s.config.App.Environment),
	)

	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}
