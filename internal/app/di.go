// Package app provides the dependency injection container assembling the
// application components.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"sync"

	adminHTTP "github.com/artfolio/gallery/internal/admin/http"
	adminUsecase "github.com/artfolio/gallery/internal/admin/usecase"
	authService "github.com/artfolio/gallery/internal/auth/service"
	catalogHTTP "github.com/artfolio/gallery/internal/catalog/http"
	catalogUsecase "github.com/artfolio/gallery/internal/catalog/usecase"
	"github.com/artfolio/gallery/internal/config"
	"github.com/artfolio/gallery/internal/database"
	"github.com/artfolio/gallery/internal/http"
	"github.com/artfolio/gallery/internal/metrics"
	settingsHTTP "github.com/artfolio/gallery/internal/settings/http"
	settingsUsecase "github.com/artfolio/gallery/internal/settings/usecase"
	"github.com/artfolio/gallery/internal/storage"
	uploadHTTP "github.com/artfolio/gallery/internal/upload/http"
	uploadUsecase "github.com/artfolio/gallery/internal/upload/usecase"
	userHTTP "github.com/artfolio/gallery/internal/user/http"
	userUsecase "github.com/artfolio/gallery/internal/user/usecase"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	db              *sql.DB
	txManager       database.TxManager
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics
	store           *storage.Store

	// Services
	passwordService authService.PasswordService
	tokenService    authService.TokenService

	// Repositories
	userRepo      userUsecase.UserRepository
	designRepo    catalogUsecase.DesignRepository
	favoriteRepo  catalogUsecase.FavoriteRepository
	settingsRepo  settingsUsecase.SettingsRepository
	analyticsRepo adminUsecase.AnalyticsRepository

	// Use Cases
	userUseCase      userUsecase.UseCase
	designUseCase    catalogUsecase.DesignUseCase
	favoriteUseCase  catalogUsecase.FavoriteUseCase
	settingsUseCase  settingsUsecase.SettingsUseCase
	uploadUseCase    uploadUsecase.UploadUseCase
	analyticsUseCase adminUsecase.AnalyticsUseCase

	// Handlers
	authHandler      *userHTTP.AuthHandler
	adminUserHandler *userHTTP.AdminUserHandler
	designHandler    *catalogHTTP.DesignHandler
	favoriteHandler  *catalogHTTP.FavoriteHandler
	settingsHandler  *settingsHTTP.SettingsHandler
	uploadHandler    *uploadHTTP.UploadHandler
	analyticsHandler *adminHTTP.AnalyticsHandler

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	// Initialization flags and mutex for thread-safety
	mu                   sync.Mutex
	loggerInit           sync.Once
	dbInit               sync.Once
	txManagerInit        sync.Once
	metricsProviderInit  sync.Once
	businessMetricsInit  sync.Once
	storeInit            sync.Once
	passwordServiceInit  sync.Once
	tokenServiceInit     sync.Once
	userRepoInit         sync.Once
	designRepoInit       sync.Once
	favoriteRepoInit     sync.Once
	settingsRepoInit     sync.Once
	analyticsRepoInit    sync.Once
	userUseCaseInit      sync.Once
	designUseCaseInit    sync.Once
	favoriteUseCaseInit  sync.Once
	settingsUseCaseInit  sync.Once
	uploadUseCaseInit    sync.Once
	analyticsUseCaseInit sync.Once
	authHandlerInit      sync.Once
	adminUserHandlerInit sync.Once
	designHandlerInit    sync.Once
	favoriteHandlerInit  sync.Once
	settingsHandlerInit  sync.Once
	uploadHandlerInit    sync.Once
	analyticsHandlerInit sync.Once
	httpServerInit       sync.Once
	metricsServerInit    sync.Once
	initErrors           map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// DB returns the database connection.
// It creates and configures the database connection on first access.
func (c *Container) DB() (*sql.DB, error) {
	c.dbInit.Do(func() {
		db, err := c.initDB()
		if err != nil {
			c.initErrors["db"] = err
			return
		}
		c.db = db
	})
	if storedErr, exists := c.initErrors["db"]; exists {
		return nil, storedErr
	}
	return c.db, nil
}

// TxManager returns the transaction manager.
// It requires a database connection to be initialized first.
func (c *Container) TxManager() (database.TxManager, error) {
	c.txManagerInit.Do(func() {
		txManager, err := c.initTxManager()
		if err != nil {
			c.initErrors["txManager"] = err
			return
		}
		c.txManager = txManager
	})
	if storedErr, exists := c.initErrors["txManager"]; exists {
		return nil, storedErr
	}
	return c.txManager, nil
}

// MetricsProvider returns the metrics provider. Returns nil when metrics
// are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	c.metricsProviderInit.Do(func() {
		provider, err := c.initMetricsProvider()
		if err != nil {
			c.initErrors["metricsProvider"] = err
			return
		}
		c.metricsProvider = provider
	})
	if storedErr, exists := c.initErrors["metricsProvider"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder. A no-op
// implementation is returned when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	c.businessMetricsInit.Do(func() {
		businessMetrics, err := c.initBusinessMetrics()
		if err != nil {
			c.initErrors["businessMetrics"] = err
			return
		}
		c.businessMetrics = businessMetrics
	})
	if storedErr, exists := c.initErrors["businessMetrics"]; exists {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// Store returns the blob store for design images.
func (c *Container) Store() (*storage.Store, error) {
	c.storeInit.Do(func() {
		store, err := c.initStore()
		if err != nil {
			c.initErrors["store"] = err
			return
		}
		c.store = store
	})
	if storedErr, exists := c.initErrors["store"]; exists {
		return nil, storedErr
	}
	return c.store, nil
}

// HTTPServer returns the API HTTP server instance.
func (c *Container) HTTPServer() (*http.Server, error) {
	c.httpServerInit.Do(func() {
		server, err := c.initHTTPServer()
		if err != nil {
			c.initErrors["httpServer"] = err
			return
		}
		c.httpServer = server
	})
	if storedErr, exists := c.initErrors["httpServer"]; exists {
		return nil, storedErr
	}
	return c.httpServer, nil
}

// MetricsServer returns the metrics server instance. Returns nil when
// metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	c.metricsServerInit.Do(func() {
		server, err := c.initMetricsServer()
		if err != nil {
			c.initErrors["metricsServer"] = err
			return
		}
		c.metricsServer = server
	})
	if storedErr, exists := c.initErrors["metricsServer"]; exists {
		return nil, storedErr
	}
	return c.metricsServer, nil
}

// Shutdown performs cleanup of all initialized resources.
// It should be called when the application is shutting down.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if c.store != nil {
		if err := c.store.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("blob store close: %w", err))
		}
	}

	if c.db != nil {
		if err := c.db.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("database close: %w", err))
		}
	}

	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initDB creates and configures the database connection.
func (c *Container) initDB() (*sql.DB, error) {
	db, err := database.Connect(database.Config{
		Driver:             c.config.DBDriver,
		ConnectionString:   c.config.DBConnectionString,
		MaxOpenConnections: c.config.DBMaxOpenConnections,
		MaxIdleConnections: c.config.DBMaxIdleConnections,
		ConnMaxLifetime:    c.config.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// initTxManager creates the transaction manager using the database connection.
func (c *Container) initTxManager() (database.TxManager, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for tx manager: %w", err)
	}
	return database.NewTxManager(db), nil
}

// initMetricsProvider creates the metrics provider when metrics are enabled.
func (c *Container) initMetricsProvider() (*metrics.Provider, error) {
	if !c.config.MetricsEnabled {
		return nil, nil
	}

	provider, err := metrics.NewProvider(c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics provider: %w", err)
	}
	return provider, nil
}

// initBusinessMetrics creates the business metrics recorder.
func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	if !c.config.MetricsEnabled {
		return metrics.NewNoOpBusinessMetrics(), nil
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for business metrics: %w", err)
	}

	businessMetrics, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create business metrics: %w", err)
	}
	return businessMetrics, nil
}

// initStore opens the blob bucket configured for design images.
func (c *Container) initStore() (*storage.Store, error) {
	store, err := storage.NewStore(context.Background(), c.config.BlobBucketURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open blob store: %w", err)
	}
	return store, nil
}

// initHTTPServer creates the API HTTP server with all its dependencies.
func (c *Container) initHTTPServer() (*http.Server, error) {
	logger := c.Logger()

	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for http server: %w", err)
	}

	tokenService, err := c.TokenService()
	if err != nil {
		return nil, fmt.Errorf("failed to get token service for http server: %w", err)
	}

	authHandler, err := c.AuthHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get auth handler for http server: %w", err)
	}

	adminUserHandler, err := c.AdminUserHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get admin user handler for http server: %w", err)
	}

	designHandler, err := c.DesignHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get design handler for http server: %w", err)
	}

	favoriteHandler, err := c.FavoriteHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get favorite handler for http server: %w", err)
	}

	settingsHandler, err := c.SettingsHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings handler for http server: %w", err)
	}

	uploadHandler, err := c.UploadHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get upload handler for http server: %w", err)
	}

	analyticsHandler, err := c.AnalyticsHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get analytics handler for http server: %w", err)
	}

	metricsProvider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
	}

	server := http.NewServer(db, c.config.ServerHost, c.config.ServerPort, logger)
	server.SetupRouter(http.RouterConfig{
		TokenService:            tokenService,
		AuthHandler:             authHandler,
		AdminUserHandler:        adminUserHandler,
		DesignHandler:           designHandler,
		FavoriteHandler:         favoriteHandler,
		SettingsHandler:         settingsHandler,
		UploadHandler:           uploadHandler,
		AnalyticsHandler:        analyticsHandler,
		MetricsProvider:         metricsProvider,
		MetricsNamespace:        c.config.MetricsNamespace,
		CORSEnabled:             c.config.CORSEnabled,
		CORSAllowOrigins:        c.config.CORSAllowOrigins,
		RateLimitEnabled:        c.config.RateLimitEnabled,
		RateLimitRequestsPerSec: c.config.RateLimitRequestsPerSec,
		RateLimitBurst:          c.config.RateLimitBurst,
	})

	return server, nil
}

// initMetricsServer creates the metrics server when metrics are enabled.
func (c *Container) initMetricsServer() (*http.MetricsServer, error) {
	if !c.config.MetricsEnabled {
		return nil, nil
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for metrics server: %w", err)
	}

	return http.NewMetricsServer(c.config.ServerHost, c.config.MetricsPort, c.Logger(), provider), nil
}
