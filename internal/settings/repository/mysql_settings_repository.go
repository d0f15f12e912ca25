package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/artfolio/gallery/internal/database"
	apperrors "github.com/artfolio/gallery/internal/errors"
	"github.com/artfolio/gallery/internal/settings/domain"
)

// MySQLSettingsRepository handles settings persistence for MySQL
type MySQLSettingsRepository struct {
	db *sql.DB
}

// NewMySQLSettingsRepository creates a new MySQLSettingsRepository
func NewMySQLSettingsRepository(db *sql.DB) *MySQLSettingsRepository {
	return &MySQLSettingsRepository{
		db: db,
	}
}

// Get retrieves the settings record
func (r *MySQLSettingsRepository) Get(ctx context.Context) (*domain.Settings, error) {
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
func (r *MySQLSettingsRepository) Update(ctx context.Context, settings *domain.Settings) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE app_settings SET allow_screenshots = ?, allow_downloads = ?,
			  watermark_enabled = ?, max_upload_size = ?, supported_formats = ?,
			  gallery_per_page = ?, featured_designs_count = ?, maintenance_mode = ?,
			  app_version = ?, updated_at = NOW()
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
