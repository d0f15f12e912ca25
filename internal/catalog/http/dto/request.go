// Package dto provides data transfer objects for the catalog HTTP layer.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/artfolio/gallery/internal/catalog/usecase"
	appValidation "github.com/artfolio/gallery/internal/validation"
)

// CreateDesignRequest represents the API request for creating a design.
// Counters and status are never client-supplied.
type CreateDesignRequest struct {
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

// Validate validates the CreateDesignRequest using the jellydator/validation library
func (r *CreateDesignRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			appValidation.NotBlank,
			validation.Length(1, 200).Error("title must be between 1 and 200 characters"),
		),
		validation.Field(&r.Category,
			validation.Required.Error("category is required"),
			appValidation.NotBlank,
			validation.Length(1, 100).Error("category must be between 1 and 100 characters"),
		),
		validation.Field(&r.ShortDescription,
			validation.Length(0, 500).Error("short description must be at most 500 characters"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// UpdateDesignRequest represents the design update request. All fields are
// optional; absent fields are left unchanged.
type UpdateDesignRequest struct {
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

// Validate validates the UpdateDesignRequest
func (r *UpdateDesignRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Title,
			appValidation.NotBlank,
			validation.Length(1, 200).Error("title must be between 1 and 200 characters"),
		),
		validation.Field(&r.Category,
			appValidation.NotBlank,
			validation.Length(1, 100).Error("category must be between 1 and 100 characters"),
		),
		validation.Field(&r.Status,
			validation.In("active", "archived").Error("status must be active or archived"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// ToCreateDesignInput converts a CreateDesignRequest to the use case input
func ToCreateDesignInput(req CreateDesignRequest) usecase.CreateDesignInput {
	return usecase.CreateDesignInput{
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		LongDescription:  req.LongDescription,
		Category:         req.Category,
		Style:            req.Style,
		Colour:           req.Colour,
		Fabric:           req.Fabric,
		Occasion:         req.Occasion,
		SizesAvailable:   req.SizesAvailable,
		PriceRange:       req.PriceRange,
		Tags:             req.Tags,
		DesignerName:     req.DesignerName,
		CollectionName:   req.CollectionName,
		Season:           req.Season,
		ObjectKey:        req.ObjectKey,
		ImageURL:         req.ImageURL,
		Featured:         req.Featured,
	}
}

// ToUpdateDesignInput converts an UpdateDesignRequest to the use case input
func ToUpdateDesignInput(req UpdateDesignRequest) usecase.UpdateDesignInput {
	return usecase.UpdateDesignInput{
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		LongDescription:  req.LongDescription,
		Category:         req.Category,
		Style:            req.Style,
		Colour:           req.Colour,
		Fabric:           req.Fabric,
		Occasion:         req.Occasion,
		SizesAvailable:   req.SizesAvailable,
		PriceRange:       req.PriceRange,
		Tags:             req.Tags,
		DesignerName:     req.DesignerName,
		CollectionName:   req.CollectionName,
		Season:           req.Season,
		ObjectKey:        req.ObjectKey,
		ImageURL:         req.ImageURL,
		Featured:         req.Featured,
		Status:           req.Status,
	}
}
