package dto

import (
	"github.com/artfolio/gallery/internal/httputil"
	"github.com/artfolio/gallery/internal/user/domain"
)

// ToUserResponse converts a domain User model to a UserResponse DTO.
// This enforces the boundary between internal domain models and external API contracts.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Role:      string(user.Role),
		Approval:  string(user.Approval),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// ToLoginResponse builds the login payload with the bearer token and user.
func ToLoginResponse(token string, expiresIn int, user *domain.User) LoginResponse {
	return LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   expiresIn,
		User:        ToUserResponse(user),
	}
}

// ToListUsersResponse builds a paginated user list payload.
func ToListUsersResponse(users []*domain.User, total int, page httputil.Page) ListUsersResponse {
	items := make([]UserResponse, 0, len(users))
	for _, user := range users {
		items = append(items, ToUserResponse(user))
	}
	return ListUsersResponse{
		Users:      items,
		Total:      total,
		Page:       page.Number,
		PerPage:    page.PerPage,
		TotalPages: page.TotalPages(total),
	}
}
