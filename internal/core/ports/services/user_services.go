package services

import (
	"context"

	"github.com/mattmach1/restaurant-inventory/internal/core/domain"
	"github.com/mattmach1/restaurant-inventory/internal/dto"
)

// UserReaderSvc is the minimal user lookup needed by the auth middleware to
// resolve a token subject into an Identity.
type UserReaderSvc interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// UserSvcFacade manages users within an organization.
type UserSvcFacade interface {
	UserReaderSvc
	// CreateUser adds a user to the caller's organization. The new user
	// inherits the caller's organizationID; role defaults to MANAGER.
	CreateUser(ctx context.Context, identity domain.Identity, req dto.CreateUserRequest) (*domain.User, error)
	ListUsers(ctx context.Context, identity domain.Identity) ([]domain.User, error)
}
