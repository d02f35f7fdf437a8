package repositories

import (
	"context"

	"github.com/mattmach1/restaurant-inventory/internal/core/domain"
)

// UserRepository persists users and the registration of a new organization.
type UserRepository interface {
	// SaveUserWithOrganization inserts the organization and its first admin
	// user in one transaction; either both rows exist afterwards or neither.
	SaveUserWithOrganization(ctx context.Context, org domain.Organization, user domain.User) error
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsersByOrganization(ctx context.Context, organizationID string) ([]domain.User, error)
}
