// Package http provides the API server, route table, and server middleware.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	adminHTTP "github.com/artfolio/gallery/internal/admin/http"
	authDomain "github.com/artfolio/gallery/internal/auth/domain"
	authHTTP "github.com/artfolio/gallery/internal/auth/http"
	authService "github.com/artfolio/gallery/internal/auth/service"
	catalogHTTP "github.com/artfolio/gallery/internal/catalog/http"
	"github.com/artfolio/gallery/internal/metrics"
	settingsHTTP "github.com/artfolio/gallery/internal/settings/http"
	uploadHTTP "github.com/artfolio/gallery/internal/upload/http"
	userHTTP "github.com/artfolio/gallery/internal/user/http"
)

// Server represents the API HTTP server.
type Server struct {
	server *http.Server
	router *gin.Engine
	db     *sql.DB
	logger *slog.Logger
}

// NewServer creates a new API server. The router is not registered until
// SetupRouter is called with the handlers.
func NewServer(db *sql.DB, host string, port int, logger *slog.Logger) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// RouterConfig carries the handlers and middleware settings used to build
// the route table.
type RouterConfig struct {
	TokenService authService.TokenService

	AuthHandler      *userHTTP.AuthHandler
	AdminUserHandler *userHTTP.AdminUserHandler
	DesignHandler    *catalogHTTP.DesignHandler
	FavoriteHandler  *catalogHTTP.FavoriteHandler
	SettingsHandler  *settingsHTTP.SettingsHandler
	UploadHandler    *uploadHTTP.UploadHandler
	AnalyticsHandler *adminHTTP.AnalyticsHandler

	// MetricsProvider enables HTTP request metrics when non-nil.
	MetricsProvider  *metrics.Provider
	MetricsNamespace string

	CORSEnabled      bool
	CORSAllowOrigins string

	RateLimitEnabled        bool
	RateLimitRequestsPerSec float64
	RateLimitBurst          int
}

// SetupRouter builds the Gin engine and registers all routes.
//
// Route protection levels:
//   - Public: register, login (both rate limited), settings read, health/ready
//   - Authenticated: catalog browsing, favorites, own profile, logout
//   - Admin: design mutations, user management, settings update, uploads,
//     analytics
//
// Favorite and profile routes resolve ownership inside their handlers, so
// they carry only the authentication middleware here.
func (s *Server) SetupRouter(cfg RouterConfig) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if cfg.MetricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(cfg.MetricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")

	// Public credential endpoints, rate limited per client IP.
	auth := v1.Group("/auth")
	if cfg.RateLimitEnabled {
		auth.Use(authHTTP.LoginRateLimitMiddleware(cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}
	auth.POST("/register", cfg.AuthHandler.RegisterHandler)
	auth.POST("/login", cfg.AuthHandler.LoginHandler)

	// Public app settings, so clients can check maintenance mode before login.
	v1.GET("/settings", cfg.SettingsHandler.GetHandler)

	authenticated := v1.Group("")
	authenticated.Use(authHTTP.AuthenticationMiddleware(cfg.TokenService, s.logger))

	// Profile and session; allowed while the account is still pending.
	authenticated.GET("/auth/me", cfg.AuthHandler.MeHandler)
	authenticated.POST("/auth/logout", cfg.AuthHandler.LogoutHandler)

	// Catalog browsing for approved accounts.
	authenticated.GET(
		"/designs",
		s.authorize(authDomain.ResourceDesign, authDomain.ActionList),
		cfg.DesignHandler.ListHandler,
	)
	authenticated.GET(
		"/designs/featured",
		s.authorize(authDomain.ResourceDesign, authDomain.ActionList),
		cfg.DesignHandler.FeaturedHandler,
	)
	authenticated.GET(
		"/designs/:id",
		s.authorize(authDomain.ResourceDesign, authDomain.ActionRead),
		cfg.DesignHandler.GetHandler,
	)

	// Favorites; the handler consults the gate with the caller as owner.
	authenticated.POST("/designs/:id/favorite", cfg.FavoriteHandler.CreateHandler)
	authenticated.DELETE("/designs/:id/favorite", cfg.FavoriteHandler.DeleteHandler)
	authenticated.GET("/favorites", cfg.FavoriteHandler.ListHandler)

	// Catalog mutations, admin only.
	authenticated.POST(
		"/designs",
		s.authorize(authDomain.ResourceDesign, authDomain.ActionCreate),
		cfg.DesignHandler.CreateHandler,
	)
	authenticated.PATCH(
		"/designs/:id",
		s.authorize(authDomain.ResourceDesign, authDomain.ActionUpdate),
		cfg.DesignHandler.UpdateHandler,
	)
	authenticated.DELETE(
		"/designs/:id",
		s.authorize(authDomain.ResourceDesign, authDomain.ActionDelete),
		cfg.DesignHandler.DeleteHandler,
	)

	admin := authenticated.Group("/admin")

	admin.GET(
		"/users",
		s.authorize(authDomain.ResourceUser, authDomain.ActionList),
		cfg.AdminUserHandler.ListHandler,
	)
	admin.GET(
		"/users/pending",
		s.authorize(authDomain.ResourceUser, authDomain.ActionList),
		cfg.AdminUserHandler.ListPendingHandler,
	)
	admin.PUT(
		"/users/:id",
		s.authorize(authDomain.ResourceUser, authDomain.ActionUpdate),
		cfg.AdminUserHandler.UpdateHandler,
	)
	admin.POST(
		"/users/:id/approve",
		s.authorize(authDomain.ResourceUserApproval, authDomain.ActionUpdate),
		cfg.AdminUserHandler.ApproveHandler,
	)
	admin.POST(
		"/users/:id/reject",
		s.authorize(authDomain.ResourceUserApproval, authDomain.ActionUpdate),
		cfg.AdminUserHandler.RejectHandler,
	)
	admin.DELETE(
		"/users/:id",
		s.authorize(authDomain.ResourceUser, authDomain.ActionDelete),
		cfg.AdminUserHandler.DeleteHandler,
	)

	admin.PATCH(
		"/settings",
		s.authorize(authDomain.ResourceSettings, authDomain.ActionUpdate),
		cfg.SettingsHandler.UpdateHandler,
	)

	admin.GET(
		"/analytics",
		s.authorize(authDomain.ResourceAnalytics, authDomain.ActionRead),
		cfg.AnalyticsHandler.OverviewHandler,
	)

	admin.POST(
		"/uploads",
		s.authorize(authDomain.ResourceUpload, authDomain.ActionCreate),
		cfg.UploadHandler.CreateHandler,
	)
	admin.GET(
		"/uploads/url",
		s.authorize(authDomain.ResourceUpload, authDomain.ActionRead),
		cfg.UploadHandler.GetURLHandler,
	)
	admin.GET(
		"/uploads",
		s.authorize(authDomain.ResourceUpload, authDomain.ActionList),
		cfg.UploadHandler.ListHandler,
	)
	admin.DELETE(
		"/uploads",
		s.authorize(authDomain.ResourceUpload, authDomain.ActionDelete),
		cfg.UploadHandler.DeleteHandler,
	)

	s.router = router
}

// authorize gates a route on the access policy for a resource/action pair.
func (s *Server) authorize(resource authDomain.Resource, action authDomain.Action) gin.HandlerFunc {
	return authHTTP.AuthorizationMiddleware(resource, action, s.logger)
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can serve traffic. The
// database is pinged with a short timeout; a failed ping returns 503.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{"database": "ok"}

	if s.db == nil {
		components["database"] = "error"
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": components,
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		s.logger.Warn("readiness check failed", slog.Any("error", err))
		components["database"] = "error"
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": components,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": components,
	})
}

// Start starts the HTTP server. Blocks until the server stops.
func (s *Server) Start(ctx context.Context) error {
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
