// Package usecase implements the catalog business logic: browsing and
// administering designs, and the user favorite workflow.
package usecase

import (
	"context"
	"log/slog"

	validation "github.com/jellydator/validation"

	"github.com/google/uuid"

	"github.com/artfolio/gallery/internal/catalog/domain"
	"github.com/artfolio/gallery/internal/database"
	appValidation "github.com/artfolio/gallery/internal/validation"
)

// CreateDesignInput contains the input data for creating a design.
type CreateDesignInput struct {
	Title            string `json:"title"`
	ShortDescription string `json:"short_description"`
	LongDescription  string `json:"long_description"`
	Category         string `json:"category"`
	Style            string `json:"style"`
	Colour           string `json:"colour"`
	Fabric           string `json:"fabric"`
	Occasion         string `json:"occasion"`
	SizesAvailable   string `json:"sizes_available"`
	PriceRange       string `json:"price_range"`
	Tags             string `json:"tags"`
	DesignerName     string `json:"designer_name"`
	CollectionName   string `json:"collection_name"`
	Season           string `json:"season"`
	ObjectKey        string `json:"object_key"`
	ImageURL         string `json:"image_url"`
	Featured         bool   `json:"featured"`
}

// UpdateDesignInput contains the mutable design fields. Nil fields are
// left unchanged.
type UpdateDesignInput struct {
	Title            *string `json:"title"`
	ShortDescription *string `json:"short_description"`
	LongDescription  *string `json:"long_description"`
	Category         *string `json:"category"`
	Style            *string `json:"style"`
	Colour           *string `json:"colour"`
	Fabric           *string `json:"fabric"`
	Occasion         *string `json:"occasion"`
	SizesAvailable   *string `json:"sizes_available"`
	PriceRange       *string `json:"price_range"`
	Tags             *string `json:"tags"`
	DesignerName     *string `json:"designer_name"`
	CollectionName   *string `json:"collection_name"`
	Season           *string `json:"season"`
	ObjectKey        *string `json:"object_key"`
	ImageURL         *string `json:"image_url"`
	Featured         *bool   `json:"featured"`
	Status           *string `json:"status"`
}

// DesignRepository interface defines design repository operations
type DesignRepository interface {
	Create(ctx context.Context, design *domain.Design) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Design, error)
	List(ctx context.Context, filter domain.Filter, offset, limit int) ([]*domain.Design, error)
	Count(ctx context.Context, filter domain.Filter) (int, error)
	ListFeatured(ctx context.Context, limit int) ([]*domain.Design, error)
	Update(ctx context.Context, design *domain.Design) error
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementViewCount(ctx context.Context, id uuid.UUID) error
	AdjustLikeCount(ctx context.Context, id uuid.UUID, delta int) error
}

// ObjectStore abstracts the blob store so design deletion can clean up
// the stored image.
type ObjectStore interface {
	Delete(ctx context.Context, key string) error
}

// DesignUseCase defines the interface for design business logic operations
type DesignUseCase interface {
	Create(ctx context.Context, input CreateDesignInput) (*domain.Design, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Design, error)
	List(ctx context.Context, filter domain.Filter, offset, limit int) ([]*domain.Design, int, error)
	ListFeatured(ctx context.Context, limit int) ([]*domain.Design, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateDesignInput) (*domain.Design, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// designUseCase handles design-related business logic
type designUseCase struct {
	txManager    database.TxManager
	designRepo   DesignRepository
	favoriteRepo FavoriteRepository
	objectStore  ObjectStore
	logger       *slog.Logger
}

// NewDesignUseCase creates a new DesignUseCase
func NewDesignUseCase(
	txManager database.TxManager,
	designRepo DesignRepository,
	favoriteRepo FavoriteRepository,
	objectStore ObjectStore,
	logger *slog.Logger,
) DesignUseCase {
	return &designUseCase{
		txManager:    txManager,
		designRepo:   designRepo,
		favoriteRepo: favoriteRepo,
		objectStore:  objectStore,
		logger:       logger,
	}
}

// validateCreateDesignInput validates the creation input using jellydator/validation
func validateCreateDesignInput(input CreateDesignInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Title,
			validation.Required.Error("title is required"),
			appValidation.NotBlank,
			validation.Length(1, 200).Error("title must be between 1 and 200 characters"),
		),
		validation.Field(&input.Category,
			validation.Required.Error("category is required"),
			appValidation.NotBlank,
			validation.Length(1, 100).Error("category must be between 1 and 100 characters"),
		),
		validation.Field(&input.ShortDescription,
			validation.Length(0, 500).Error("short description must be at most 500 characters"),
		),
		validation.Field(&input.DesignerName,
			validation.Length(0, 100).Error("designer name must be at most 100 characters"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// Create inserts a new design into the catalog. New designs start active
// with zeroed counters.
func (uc *designUseCase) Create(ctx context.Context, input CreateDesignInput) (*domain.Design, error) {
	if err := validateCreateDesignInput(input); err != nil {
		return nil, err
	}

	design := &domain.Design{
		ID:               uuid.Must(uuid.NewV7()),
		Title:            input.Title,
		ShortDescription: input.ShortDescription,
		LongDescription:  input.LongDescription,
		Category:         input.Category,
		Style:            input.Style,
		Colour:           input.Colour,
		Fabric:           input.Fabric,
		Occasion:         input.Occasion,
		SizesAvailable:   input.SizesAvailable,
		PriceRange:       input.PriceRange,
		Tags:             input.Tags,
		DesignerName:     input.DesignerName,
		CollectionName:   input.CollectionName,
		Season:           input.Season,
		ObjectKey:        input.ObjectKey,
		ImageURL:         input.ImageURL,
		Featured:         input.Featured,
		Status:           domain.DesignStatusActive,
	}

	if err := uc.designRepo.Create(ctx, design); err != nil {
		return nil, err
	}
	return design, nil
}

// Get retrieves a design and records the view. The counter bump is
// best-effort: a read never fails because the counter update did.
func (uc *designUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Design, error) {
	design, err := uc.designRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.designRepo.IncrementViewCount(ctx, id); err != nil {
		uc.logger.Warn("failed to increment view count",
			slog.String("design_id", id.String()),
			slog.String("error", err.Error()))
	} else {
		design.ViewCount++
	}
	return design, nil
}

// List retrieves designs matching the filter with the total count for
// pagination.
func (uc *designUseCase) List(ctx context.Context, filter domain.Filter, offset, limit int) ([]*domain.Design, int, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, 0, domain.ErrInvalidStatus
	}

	designs, err := uc.designRepo.List(ctx, filter, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := uc.designRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return designs, total, nil
}

// ListFeatured retrieves the featured designs for the gallery home screen.
func (uc *designUseCase) ListFeatured(ctx context.Context, limit int) ([]*domain.Design, error) {
	return uc.designRepo.ListFeatured(ctx, limit)
}

// Update applies partial changes to a design inside a transaction.
func (uc *designUseCase) Update(ctx context.Context, id uuid.UUID, input UpdateDesignInput) (*domain.Design, error) {
	if input.Status != nil && !domain.DesignStatus(*input.Status).Valid() {
		return nil, domain.ErrInvalidStatus
	}

	var design *domain.Design
	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		var err error
		design, err = uc.designRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		applyDesignUpdate(design, input)

		return uc.designRepo.Update(ctx, design)
	})
	if err != nil {
		return nil, err
	}
	return design, nil
}

// Delete removes a design along with its favorite links, then cleans up
// the stored image. The object store cleanup happens after the commit and
// is best-effort: an unreachable store never resurrects the catalog row.
func (uc *designUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	var objectKey string
	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		design, err := uc.designRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		objectKey = design.ObjectKey

		if err := uc.favoriteRepo.DeleteByDesign(ctx, id); err != nil {
			return err
		}
		return uc.designRepo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	if objectKey != "" && uc.objectStore != nil {
		if err := uc.objectStore.Delete(ctx, objectKey); err != nil {
			uc.logger.Warn("failed to delete design object",
				slog.String("design_id", id.String()),
				slog.String("object_key", objectKey),
				slog.String("error", err.Error()))
		}
	}
	return nil
}

// applyDesignUpdate copies non-nil input fields onto the design.
func applyDesignUpdate(design *domain.Design, input UpdateDesignInput) {
	if input.Title != nil {
		design.Title = *input.Title
	}
	if input.ShortDescription != nil {
		design.ShortDescription = *input.ShortDescription
	}
	if input.LongDescription != nil {
		design.LongDescription = *input.LongDescription
	}
	if input.Category != nil {
		design.Category = *input.Category
	}
	if input.Style != nil {
		design.Style = *input.Style
	}
	if input.Colour != nil {
		design.Colour = *input.Colour
	}
	if input.Fabric != nil {
		design.Fabric = *input.Fabric
	}
	if input.Occasion != nil {
		design.Occasion = *input.Occasion
	}
	if input.SizesAvailable != nil {
		design.SizesAvailable = *input.SizesAvailable
	}
	if input.PriceRange != nil {
		design.PriceRange = *input.PriceRange
	}
	if input.Tags != nil {
		design.Tags = *input.Tags
	}
	if input.DesignerName != nil {
		design.DesignerName = *input.DesignerName
	}
	if input.CollectionName != nil {
		design.CollectionName = *input.CollectionName
	}
	if input.Season != nil {
		design.Season = *input.Season
	}
	if input.ObjectKey != nil {
		design.ObjectKey = *input.ObjectKey
	}
	if input.ImageURL != nil {
		design.ImageURL = *input.ImageURL
	}
	if input.Featured != nil {
		design.Featured = *input.Featured
	}
	if input.Status != nil {
		design.Status = domain.DesignStatus(*input.Status)
	}
}
