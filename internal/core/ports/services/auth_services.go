package services

import (
	"context"

	"github.com/mattmach1/restaurant-inventory/internal/core/domain"
	"github.com/mattmach1/restaurant-inventory/internal/dto"
)

// AuthSvcFacade issues credentials and sessions.
type AuthSvcFacade interface {
	// Register creates a new organization and its first ADMIN user, returning
	// a signed bearer token for the new user.
	Register(ctx context.Context, req dto.RegisterRequest) (string, *domain.User, error)
	// Login verifies email+password and returns a token identical in shape to
	// the one issued at registration.
	Login(ctx context.Context, req dto.LoginRequest) (string, *domain.User, error)
}
