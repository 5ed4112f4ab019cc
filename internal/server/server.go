// Package server defines the core Server struct that composes the app's main dependencies.
//
// It contains the initialization logic to spin up the HTTP server
// and handles graceful shutdowns
//
// It owns the lifecycle of:
//   - configuration
//   - logger + optional New Relic service wrapper
//   - http.Server
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/items-api/internal/config"
	"github.com/rs/zerolog"

	loggerPkg "github.com/deppfellow/items-api/internal/logger"
)

// Server is the application container that holds shared resources.
//
// It is not the HTTP server itself. It holds the config, the logger(s) and
// an internal *http.Server used to listen and serve requests.
type Server struct {
	Config *config.Config
	Logger *zerolog.Logger

	// LoggerService optionally holds the New Relic application instance.
	// GetApplication returns nil when New Relic is disabled.
	LoggerService *loggerPkg.LoggerService

	httpServer *http.Server
}

// New constructs a Server.
//
// It does NOT start the HTTP server. That is done in SetupHTTPServer + Start.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	return &Server{
		Config:        cfg,
		Logger:        logger,
		LoggerService: loggerService,
	}, nil
}

// SetupHTTPServer configures the internal net/http server around handler
// (the Echo router).
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:    ":" + s.Config.Server.Port,
		Handler: handler,

		// Config stores seconds.
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start runs the HTTP server. It blocks until the server stops and returns
// http.ErrServerClosed after a graceful Shutdown.
//
// It requires SetupHTTPServer to be called first.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Msgf("Server is running on port %s", s.Config.Server.Port)

	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server, letting in-flight requests
// finish until ctx expires, then flushes New Relic data.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown HTTP server: %w", err)
		}
	}

	if s.LoggerService != nil {
		s.LoggerService.Shutdown()
	}

	return nil
}
