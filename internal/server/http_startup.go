package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"resumatch/internal/analyzer"
	"resumatch/internal/benchmark"
	"resumatch/internal/extract"
	"resumatch/internal/observability"
	"resumatch/internal/store"
)

// Start starts the HTTP server with all configured components
func (s *Server) Start(ctx context.Context) error {
	om, err := s.initializeObservability()
	if err != nil {
		return err
	}
	defer s.shutdownObservability(om)

	if err := s.initializeAnalysis(ctx); err != nil {
		return err
	}

	httpServer := s.setupHTTPServer(om)

	s.displayServerInfo()

	return s.startWithGracefulShutdown(httpServer)
}

// initializeObservability sets up observability components
func (s *Server) initializeObservability() (*observability.ObservabilityManager, error) {
	obsConfig := observability.GetObservabilityConfig(s.AppConfig, s.Version)

	om, err := observability.NewObservabilityManager(obsConfig, s.AppConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize observability: %w", err)
	}

	return om, nil
}

// shutdownObservability handles observability cleanup
func (s *Server) shutdownObservability(om *observability.ObservabilityManager) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := om.Shutdown(ctx); err != nil {
		s.Logger.LogError(err, "Failed to shutdown observability")
	}
}

// initializeAnalysis builds the benchmark provider stack, the analysis
// pipeline and the result store
func (s *Server) initializeAnalysis(ctx context.Context) error {
	bench, stopBench, err := benchmark.NewFromConfig(ctx, s.AppConfig.Benchmarks, s.Logger)
	if err != nil {
		return fmt.Errorf("failed to build benchmark provider: %w", err)
	}
	s.Benchmarks = bench
	s.benchStop = stopBench

	var tagger extract.Tagger
	if s.AppConfig.Analysis.Tagger == "heuristic" {
		tagger = extract.NewHeuristicTagger()
	}
	s.Analysis = analyzer.NewService(tagger, bench)

	if s.AppConfig.Store.Enabled {
		resultStore, err := store.OpenSQLite(s.AppConfig.Store.Path)
		if err != nil {
			return fmt.Errorf("failed to open result store: %w", err)
		}
		s.Store = resultStore
	}

	return nil
}

// setupHTTPServer creates and configures the HTTP server
func (s *Server) setupHTTPServer(om *observability.ObservabilityManager) *http.Server {
	mux := s.setupRoutes(om)
	handler := om.HTTPMiddleware()(mux)
	addr := fmt.Sprintf("%s:%s", s.Host, s.Port)

	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  s.ReadTimeout,
		WriteTimeout: s.WriteTimeout,
		IdleTimeout:  s.IdleTimeout,
	}
}

// startWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func (s *Server) startWithGracefulShutdown(server *http.Server) error {
	// Channel to receive OS signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Channel to receive server errors
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		s.Logger.Info("Starting HTTP server", "address", server.Addr)

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	// Wait for either a signal or server error
	select {
	case err := <-serverErrors:
		s.cleanupComponents()
		return fmt.Errorf("server failed to start: %w", err)
	case sig := <-quit:
		s.Logger.Info("Received shutdown signal, starting graceful shutdown",
			"signal", sig.String())

		return s.performGracefulShutdown(server)
	}
}

// performGracefulShutdown handles the graceful shutdown process
func (s *Server) performGracefulShutdown(server *http.Server) error {
	// Create a context with timeout for graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Attempt graceful shutdown of HTTP server first so in-flight requests
	// can still reach the store and benchmark provider
	s.Logger.Info("Shutting down HTTP server...")
	if err := server.Shutdown(shutdownCtx); err != nil {
		s.Logger.LogError(err, "Failed to shutdown server gracefully, forcing close")
		closeErr := server.Close()
		s.cleanupComponents()
		return closeErr
	}

	s.cleanupComponents()

	s.Logger.Info("Server shutdown completed successfully")
	return nil
}

// cleanupComponents releases the benchmark provider, the result store and
// the rate limiter
func (s *Server) cleanupComponents() {
	if s.benchStop != nil {
		s.benchStop()
		s.benchStop = nil
	}

	if s.Store != nil {
		if err := s.Store.Close(); err != nil {
			s.Logger.LogError(err, "Failed to close result store")
		}
	}

	s.cleanupRateLimiter()
}

// cleanupRateLimiter cleans up the rate limiter resources
func (s *Server) cleanupRateLimiter() {
	if s.RateLimiter != nil {
		s.RateLimiter.Close()
		s.Logger.Info("Rate limiter cleaned up")
	}
}
