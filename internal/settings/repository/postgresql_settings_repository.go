// Package repository provides data persistence implementations for the
// application settings record.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/artfolio/gallery/internal/database"
	apperrors "github.com/artfolio/gallery/internal/errors"
	"github.com/artfolio/gallery/internal/settings/domain"
)

const settingsColumns = `allow_screenshots, allow_downloads, watermark_enabled, max_upload_size,
	supported_formats, gallery_per_page, featured_designs_count, maintenance_mode, app_version, updated_at`

// PostgreSQLSettingsRepository handles settings persistence for PostgreSQL.
// The settings table holds exactly one row, keyed by id = 1.
type PostgreSQLSettingsRepository struct {
	db *sql.DB
}

// NewPostgreSQLSettingsRepository creates a new PostgreSQLSettingsRepository
func NewPostgreSQLSettingsRepository(db *sql.DB) *PostgreSQLSettingsRepository {
	return &PostgreSQLSettingsRepository{
		db: db,
	}
}

// Get retrieves the settings record
func (r *PostgreSQLSettingsRepository) Get(ctx context.Context) (*domain.Settings, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + settingsColumns + ` FROM app_settings WHERE id = 1`

	var s domain.Settings
	err := querier.QueryRowContext(ctx, query).Scan(
		&s.AllowScreenshots, &s.AllowDownloads, &s.WatermarkEnabled, &s.MaxUploadSize,
		&s.SupportedFormats, &s.GalleryPerPage, &s.FeaturedDesignsCount, &s.MaintenanceMode,
		&s.AppVersion, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSettingsNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get settings")
	}
	return &s, nil
}

// Update persists the settings record
func (r *PostgreSQLSettingsRepository) Update(ctx context.Context, settings *domain.Settings) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE app_settings SET allow_screenshots = $1, allow_downloads = $2,
			  watermark_enabled = $3, max_upload_size = $4, supported_formats = $5,
			  gallery_per_page = $6, featured_designs_count = $7, maintenance_mode = $8,
			  app_version = $9, updated_at = NOW()
			  WHERE id = 1`

	result, err := querier.ExecContext(ctx, query,
		settings.AllowScreenshots, settings.AllowDownloads, settings.WatermarkEnabled,
		settings.MaxUploadSize, settings.SupportedFormats, settings.GalleryPerPage,
		settings.FeaturedDesignsCount, settings.MaintenanceMode, settings.AppVersion,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update settings")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return domain.ErrSettingsNotFound
	}
	return nil
}
