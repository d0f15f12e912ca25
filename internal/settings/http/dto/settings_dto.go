// Package dto provides data transfer objects for the settings HTTP layer.
package dto

import (
	"time"

	"github.com/artfolio/gallery/internal/settings/domain"
	"github.com/artfolio/gallery/internal/settings/usecase"
)

// SettingsResponse represents the application settings in API responses
type SettingsResponse struct {
	AllowScreenshots     bool      `json:"allow_screenshots"`
	AllowDownloads       bool      `json:"allow_downloads"`
	WatermarkEnabled     bool      `json:"watermark_enabled"`
	MaxUploadSize        int64     `json:"max_upload_size"`
	SupportedFormats     string    `json:"supported_formats"`
	GalleryPerPage       int       `json:"gallery_per_page"`
	FeaturedDesignsCount int       `json:"featured_designs_count"`
	MaintenanceMode      bool      `json:"maintenance_mode"`
	AppVersion           string    `json:"app_version"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// UpdateSettingsRequest represents the settings update request. All fields
// are optional; absent fields are left unchanged.
type UpdateSettingsRequest struct {
	AllowScreenshots     *bool   `json:"allow_screenshots"`
	AllowDownloads       *bool   `json:"allow_downloads"`
	WatermarkEnabled     *bool   `json:"watermark_enabled"`
	MaxUploadSize        *int64  `json:"max_upload_size"`
	SupportedFormats     *string `json:"supported_formats"`
	GalleryPerPage       *int    `json:"gallery_per_page"`
	FeaturedDesignsCount *int    `json:"featured_designs_count"`
	MaintenanceMode      *bool   `json:"maintenance_mode"`
	AppVersion           *string `json:"app_version"`
}

// ToSettingsResponse converts a domain Settings model to a SettingsResponse DTO
func ToSettingsResponse(settings *domain.Settings) SettingsResponse {
	return SettingsResponse{
		AllowScreenshots:     settings.AllowScreenshots,
		AllowDownloads:       settings.AllowDownloads,
		WatermarkEnabled:     settings.WatermarkEnabled,
		MaxUploadSize:        settings.MaxUploadSize,
		SupportedFormats:     settings.SupportedFormats,
		GalleryPerPage:       settings.GalleryPerPage,
		FeaturedDesignsCount: settings.FeaturedDesignsCount,
		MaintenanceMode:      settings.MaintenanceMode,
		AppVersion:           settings.AppVersion,
		UpdatedAt:            settings.UpdatedAt,
	}
}

// ToUpdateSettingsInput converts an UpdateSettingsRequest to the use case input
func ToUpdateSettingsInput(req UpdateSettingsRequest) usecase.UpdateSettingsInput {
	return usecase.UpdateSettingsInput{
		AllowScreenshots:     req.AllowScreenshots,
		AllowDownloads:       req.AllowDownloads,
		WatermarkEnabled:     req.WatermarkEnabled,
		MaxUploadSize:        req.MaxUploadSize,
		SupportedFormats:     req.SupportedFormats,
		GalleryPerPage:       req.GalleryPerPage,
		FeaturedDesignsCount: req.FeaturedDesignsCount,
		MaintenanceMode:      req.MaintenanceMode,
		AppVersion:           req.AppVersion,
	}
}
