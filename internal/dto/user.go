package dto

import (
	"time"

	"github.com/Harsha9951/travel_management_app/internal/core/domain"
)

// RegisterRequest defines the data needed to create a new user account.
type RegisterRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
	Department string `json:"department"`
}

// SwitchRoleRequest changes the acting role of the logged-in user.
type SwitchRoleRequest struct {
	Role domain.UserRole `json:"role" binding:"required,oneof=EMPLOYEE MANAGER FINANCE ADMIN"`
}

// UserResponse defines the data returned for a user.
type UserResponse struct {
	UserID     string          `json:"userID"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Role       domain.UserRole `json:"role"`
	Department string          `json:"department"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// ToUserResponse converts a domain.User to UserResponse DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:     u.UserID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		Department: u.Department,
		CreatedAt:  u.CreatedAt,
	}
}
