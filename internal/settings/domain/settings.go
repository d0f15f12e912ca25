// Package domain defines the application settings entity: a single record
// of client-facing configuration the mobile app reads on startup.
package domain

import (
	"time"

	"github.com/artfolio/gallery/internal/errors"
)

// Settings is the singleton application configuration record. The read
// endpoint is public so unauthenticated clients can pick up maintenance
// mode and version information before login.
type Settings struct {
	AllowScreenshots     bool
	AllowDownloads       bool
	WatermarkEnabled     bool
	MaxUploadSize        int64
	SupportedFormats     string
	GalleryPerPage       int
	FeaturedDesignsCount int
	MaintenanceMode      bool
	AppVersion           string
	UpdatedAt            time.Time
}

// Defaults returns the settings used to seed a fresh installation.
func Defaults() *Settings {
	return &Settings{
		AllowScreenshots:     false,
		AllowDownloads:       false,
		WatermarkEnabled:     true,
		MaxUploadSize:        10 << 20,
		SupportedFormats:     "jpg,jpeg,png,webp",
		GalleryPerPage:       20,
		FeaturedDesignsCount: 6,
		MaintenanceMode:      false,
		AppVersion:           "1.0.0",
	}
}

// ErrSettingsNotFound indicates the settings record has not been seeded.
var ErrSettingsNotFound = errors.Wrap(errors.ErrNotFound, "settings not found")
