// Package http provides the admin analytics dashboard endpoint.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/artfolio/gallery/internal/admin/domain"
	"github.com/artfolio/gallery/internal/admin/usecase"
	catalogDTO "github.com/artfolio/gallery/internal/catalog/http/dto"
	"github.com/artfolio/gallery/internal/httputil"
)

// CategoryCountResponse represents a category tally in the dashboard
type CategoryCountResponse struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// AnalyticsResponse represents the admin dashboard snapshot
type AnalyticsResponse struct {
	TotalUsers      int                         `json:"total_users"`
	PendingUsers    int                         `json:"pending_users"`
	ApprovedUsers   int                         `json:"approved_users"`
	TotalDesigns    int                         `json:"total_designs"`
	FeaturedDesigns int                         `json:"featured_designs"`
	TotalViews      int64                       `json:"total_views"`
	TotalLikes      int64                       `json:"total_likes"`
	TopCategories   []CategoryCountResponse     `json:"top_categories"`
	RecentDesigns   []catalogDTO.DesignResponse `json:"recent_designs"`
}

// AnalyticsHandler handles analytics requests.
type AnalyticsHandler struct {
	analyticsUseCase usecase.AnalyticsUseCase
	logger           *slog.Logger
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(analyticsUseCase usecase.AnalyticsUseCase, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUseCase: analyticsUseCase,
		logger:           logger,
	}
}

// OverviewHandler returns the dashboard snapshot.
// GET /v1/admin/analytics - Requires admin.
func (h *AnalyticsHandler) OverviewHandler(c *gin.Context) {
	analytics, err := h.analyticsUseCase.Overview(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, toAnalyticsResponse(analytics))
}

func toAnalyticsResponse(analytics *domain.Analytics) AnalyticsResponse {
	categories := make([]CategoryCountResponse, 0, len(analytics.TopCategories))
	for _, cc := range analytics.TopCategories {
		categories = append(categories, CategoryCountResponse{Category: cc.Category, Count: cc.Count})
	}

	recent := make([]catalogDTO.DesignResponse, 0, len(analytics.RecentDesigns))
	for _, design := range analytics.RecentDesigns {
		recent = append(recent, catalogDTO.ToDesignResponse(design))
	}

	return AnalyticsResponse{
		TotalUsers:      analytics.TotalUsers,
		PendingUsers:    analytics.PendingUsers,
		ApprovedUsers:   analytics.ApprovedUsers,
		TotalDesigns:    analytics.TotalDesigns,
		FeaturedDesigns: analytics.FeaturedDesigns,
		TotalViews:      analytics.TotalViews,
		TotalLikes:      analytics.TotalLikes,
		TopCategories:   categories,
		RecentDesigns:   recent,
	}
}
