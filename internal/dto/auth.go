package dto

import (
	"time"

	"github.com/mattmach1/restaurant-inventory/internal/core/domain"
)

// RegisterRequest creates a new organization together with its first user.
type RegisterRequest struct {
	Email            string `json:"email" binding:"required,email"`
	Password         string `json:"password" binding:"required,min=8"`
	Name             string `json:"name" binding:"required"`
	OrganizationName string `json:"organizationName" binding:"required"`
}

// LoginRequest authenticates an existing user.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateUserRequest adds a user to the caller's organization (admin only).
// Role is optional and defaults to MANAGER; only the closed role set is accepted.
type CreateUserRequest struct {
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password" binding:"required,min=8"`
	Name     string      `json:"name" binding:"required"`
	Role     domain.Role `json:"role" binding:"omitempty,oneof=ADMIN MANAGER"`
}

// UserResponse is the public view of a user; the password hash never leaves
// the service layer.
type UserResponse struct {
	UserID         string      `json:"id"`
	Email          string      `json:"email"`
	Name           string      `json:"name"`
	OrganizationID string      `json:"organizationId"`
	Role           domain.Role `json:"role"`
	CreatedAt      time.Time   `json:"createdAt"`
}

// AuthResponse pairs a bearer token with the authenticated user.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ToUserResponse converts domain.User to DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:         u.UserID,
		Email:          u.Email,
		Name:           u.Name,
		OrganizationID: u.OrganizationID,
		Role:           u.Role,
		CreatedAt:      u.CreatedAt,
	}
}

// ToUserResponseList converts a slice of domain.User to DTOs.
func ToUserResponseList(users []domain.User) []UserResponse {
	list := make([]UserResponse, len(users))
	for i := range users {
		list[i] = ToUserResponse(&users[i])
	}
	return list
}
