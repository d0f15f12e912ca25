// Package dto provides data transfer objects for the user HTTP layer.
package dto

import (
	validation "github.com/jellydator/validation"

	authDomain "github.com/artfolio/gallery/internal/auth/domain"
	"github.com/artfolio/gallery/internal/user/usecase"
	appValidation "github.com/artfolio/gallery/internal/validation"
)

// RegisterRequest represents the API request for user registration.
// There is no role or approval field: those are never client-supplied.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate validates the RegisterRequest using the jellydator/validation library
func (r *RegisterRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			appValidation.NotBlank,
			appValidation.Username,
			validation.Length(3, 50).Error("username must be between 3 and 50 characters"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be between 8 and 128 characters"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// LoginRequest represents the API request for login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate validates the LoginRequest
func (r *LoginRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			appValidation.NotBlank,
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// UpdateUserRequest represents the administrative user update request.
// Both fields are optional; absent fields are left unchanged.
type UpdateUserRequest struct {
	Role     *string `json:"role"`
	Approval *string `json:"approval_state"`
}

// Validate validates the UpdateUserRequest
func (r *UpdateUserRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Role,
			validation.In("standard", "admin").Error("role must be standard or admin"),
		),
		validation.Field(&r.Approval,
			validation.In("pending", "approved", "rejected").
				Error("approval_state must be pending, approved or rejected"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// ToUpdateUserInput converts an UpdateUserRequest to the use case input
func ToUpdateUserInput(req UpdateUserRequest) usecase.UpdateUserInput {
	var input usecase.UpdateUserInput
	if req.Role != nil {
		role := authDomain.Role(*req.Role)
		input.Role = &role
	}
	if req.Approval != nil {
		approval := authDomain.ApprovalState(*req.Approval)
		input.Approval = &approval
	}
	return input
}

// ToRegisterInput converts a RegisterRequest to the use case input
func ToRegisterInput(req RegisterRequest) usecase.RegisterInput {
	return usecase.RegisterInput{
		Username: req.Username,
		Password: req.Password,
	}
}

// ToAuthenticateInput converts a LoginRequest to the use case input
func ToAuthenticateInput(req LoginRequest) usecase.AuthenticateInput {
	return usecase.AuthenticateInput{
		Username: req.Username,
		Password: req.Password,
	}
}
