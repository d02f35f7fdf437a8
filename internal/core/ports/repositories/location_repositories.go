package repositories

import (
	"context"

	"github.com/mattmach1/restaurant-inventory/internal/core/domain"
)

// LocationRepository persists restaurant locations.
type LocationRepository interface {
	SaveLocation(ctx context.Context, location domain.Location) error
	FindLocationByID(ctx context.Context, locationID string) (*domain.Location, error)
	ListLocationsByOrganization(ctx context.Context, organizationID string) ([]domain.Location, error)
	UpdateLocation(ctx context.Context, location domain.Location) error
	DeleteLocation(ctx context.Context, locationID string) error
}
