package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/artfolio/gallery/internal/app"
	"github.com/artfolio/gallery/internal/config"
	internalHTTP "github.com/artfolio/gallery/internal/http"
)

// RunServer starts the API server and, when metrics are enabled, the
// metrics server on its own port. Blocks until SIGINT/SIGTERM or until a
// server fails, then shuts both down gracefully.
func RunServer(ctx context.Context, version string) error {
	cfg := config.Load()
	gin.SetMode(cfg.GetGinMode())

	container := app.NewContainer(cfg)
	logger := container.Logger()
	defer closeContainer(container, logger)

	apiServer, err := container.HTTPServer()
	if err != nil {
		return fmt.Errorf("failed to initialize API server: %w", err)
	}

	metricsServer, err := container.MetricsServer()
	if err != nil {
		return fmt.Errorf("failed to initialize metrics server: %w", err)
	}

	logger.Info("starting server",
		slog.String("version", version),
		slog.String("addr", fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort)),
		slog.Bool("metrics", metricsServer != nil),
	)

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	serverErr := make(chan error, 2)
	go func() {
		if err := apiServer.Start(ctx); err != nil {
			serverErr <- fmt.Errorf("api server: %w", err)
		}
	}()
	if metricsServer != nil {
		go func() {
			if err := metricsServer.Start(ctx); err != nil {
				serverErr <- fmt.Errorf("metrics server: %w", err)
			}
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case runErr = <-serverErr:
		logger.Error("server failed, shutting down", slog.Any("error", runErr))
	}

	shutdownErr := stopServers(apiServer, metricsServer, cfg.DBConnMaxLifetime)
	return errors.Join(runErr, shutdownErr)
}

// stopServers shuts both servers down within the given timeout. A nil
// metrics server is skipped.
func stopServers(
	apiServer *internalHTTP.Server,
	metricsServer *internalHTTP.MetricsServer,
	timeout time.Duration,
) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var errs []error
	if err := apiServer.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("api server shutdown: %w", err))
	}
	if metricsServer != nil {
		if err := metricsServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}
