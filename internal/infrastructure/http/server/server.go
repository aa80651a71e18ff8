// Package server provides the HTTP server for the meal planning API
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/kalehq/kale/internal/infrastructure/config"
	"github.com/kalehq/kale/internal/infrastructure/http/handlers"
	"github.com/kalehq/kale/internal/infrastructure/http/middleware"
	"go.uber.org/zap"
)

// Server represents the HTTP server
type Server struct {
	config *config.Config
	logger *zap.Logger
	router *chi.Mux
	server *http.Server
}

// NewServer creates a new HTTP server instance
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	apiHandlers *handlers.APIHandlers,
) *Server {
	s := &Server{
		config: cfg,
		logger: logger.Named("server"),
	}

	s.router = s.setupRouter(apiHandlers)

	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           s.router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		MaxHeaderBytes:    cfg.Server.MaxHeaderBytes,
	}

	return s
}

func (s *Server) setupRouter(api *handlers.APIHandlers) *chi.Mux {
	r := chi.NewRouter()

	mw := middleware.New(s.logger)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(mw.RequestLogger)
	r.Use(mw.Recoverer)

	r.Get("/health", api.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/mealplan", func(r chi.Router) {
			r.Post("/generate", api.GenerateMealPlan)
			r.Post("/regenerate", api.RegenerateMealPlan)
		})
		r.Get("/recipes", api.ListRecipes)
		r.Get("/ingredients", api.ListIngredients)
	})

	return r
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server", zap.String("addr", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// Router exposes the router for tests
func (s *Server) Router() http.Handler {
	return s.router
}
