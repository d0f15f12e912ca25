// Package usecase implements the application settings business logic.
package usecase

import (
	"context"

	validation "github.com/jellydator/validation"

	"github.com/artfolio/gallery/internal/database"
	apperrors "github.com/artfolio/gallery/internal/errors"
	"github.com/artfolio/gallery/internal/settings/domain"
	appValidation "github.com/artfolio/gallery/internal/validation"
)

// UpdateSettingsInput contains the mutable settings fields. Nil fields are
// left unchanged.
type UpdateSettingsInput struct {
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

// SettingsRepository interface defines settings repository operations
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, settings *domain.Settings) error
}

// SettingsUseCase defines the interface for settings business logic operations
type SettingsUseCase interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, input UpdateSettingsInput) (*domain.Settings, error)
}

// settingsUseCase handles settings business logic
type settingsUseCase struct {
	txManager    database.TxManager
	settingsRepo SettingsRepository
}

// NewSettingsUseCase creates a new SettingsUseCase
func NewSettingsUseCase(txManager database.TxManager, settingsRepo SettingsRepository) SettingsUseCase {
	return &settingsUseCase{
		txManager:    txManager,
		settingsRepo: settingsRepo,
	}
}

// validateUpdateSettingsInput validates the update input. The numeric
// bounds are checked by hand: the validation library treats zero as an
// absent value, which would let a zero page size through.
func validateUpdateSettingsInput(input UpdateSettingsInput) error {
	if input.MaxUploadSize != nil && *input.MaxUploadSize < 1 {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "max_upload_size must be positive")
	}
	if input.GalleryPerPage != nil && (*input.GalleryPerPage < 1 || *input.GalleryPerPage > 100) {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "gallery_per_page must be between 1 and 100")
	}
	if input.FeaturedDesignsCount != nil && (*input.FeaturedDesignsCount < 1 || *input.FeaturedDesignsCount > 50) {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "featured_designs_count must be between 1 and 50")
	}

	err := validation.ValidateStruct(&input,
		validation.Field(&input.SupportedFormats,
			appValidation.NotBlank,
		),
		validation.Field(&input.AppVersion,
			appValidation.NotBlank,
			validation.Length(1, 20).Error("app_version must be at most 20 characters"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// Get retrieves the current application settings
func (uc *settingsUseCase) Get(ctx context.Context) (*domain.Settings, error) {
	return uc.settingsRepo.Get(ctx)
}

// Update applies partial changes to the settings inside a transaction.
func (uc *settingsUseCase) Update(ctx context.Context, input UpdateSettingsInput) (*domain.Settings, error) {
	if err := validateUpdateSettingsInput(input); err != nil {
		return nil, err
	}

	var settings *domain.Settings
	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		var err error
		settings, err = uc.settingsRepo.Get(ctx)
		if err != nil {
			return err
		}

		applySettingsUpdate(settings, input)

		return uc.settingsRepo.Update(ctx, settings)
	})
	if err != nil {
		return nil, err
	}
	return settings, nil
}

// applySettingsUpdate copies non-nil input fields onto the settings.
func applySettingsUpdate(settings *domain.Settings, input UpdateSettingsInput) {
	if input.AllowScreenshots != nil {
		settings.AllowScreenshots = *input.AllowScreenshots
	}
	if input.AllowDownloads != nil {
		settings.AllowDownloads = *input.AllowDownloads
	}
	if input.WatermarkEnabled != nil {
		settings.WatermarkEnabled = *input.WatermarkEnabled
	}
	if input.MaxUploadSize != nil {
		settings.MaxUploadSize = *input.MaxUploadSize
	}
	if input.SupportedFormats != nil {
		settings.SupportedFormats = *input.SupportedFormats
	}
	if input.GalleryPerPage != nil {
		settings.GalleryPerPage = *input.GalleryPerPage
	}
	if input.FeaturedDesignsCount != nil {
		settings.FeaturedDesignsCount = *input.FeaturedDesignsCount
	}
	if input.MaintenanceMode != nil {
		settings.MaintenanceMode = *input.MaintenanceMode
	}
	if input.AppVersion != nil {
		settings.AppVersion = *input.AppVersion
	}
}
