package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/artfolio/gallery/internal/metrics"
)

const (
	metricsReadTimeout  = 15 * time.Second
	metricsWriteTimeout = 15 * time.Second
	metricsIdleTimeout  = 60 * time.Second
)

// MetricsServer serves the Prometheus exposition endpoint. It listens on a
// separate internal port so the scrape endpoint is never reachable through
// the public API listener.
type MetricsServer struct {
	server *http.Server
	logger *slog.Logger
}

// NewMetricsServer creates a new MetricsServer. A nil provider yields a
// server with no /metrics route, which is useful in tests.
func NewMetricsServer(
	host string,
	port int,
	logger *slog.Logger,
	metricsProvider *metrics.Provider,
) *MetricsServer {
	return &MetricsServer{
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			Handler:      newMetricsRouter(logger, metricsProvider),
			ReadTimeout:  metricsReadTimeout,
			WriteTimeout: metricsWriteTimeout,
			IdleTimeout:  metricsIdleTimeout,
		},
		logger: logger,
	}
}

func newMetricsRouter(logger *slog.Logger, provider *metrics.Provider) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(CustomLoggerMiddleware(logger))
	if provider != nil {
		router.GET("/metrics", gin.WrapH(provider.Handler()))
	}
	return router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *MetricsServer) GetHandler() http.Handler {
	return s.server.Handler
}

// Start starts the metrics HTTP server.
func (s *MetricsServer) Start(ctx context.Context) error {
	s.logger.Info("starting metrics server", slog.String("addr", s.server.Addr))

	err := s.server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start metrics server: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the metrics HTTP server.
func (s *MetricsServer) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down metrics server")
	return s.server.Shutdown(ctx)
}
