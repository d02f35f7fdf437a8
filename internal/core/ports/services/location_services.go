package services

import (
	"context"

	"github.com/mattmach1/restaurant-inventory/internal/core/domain"
	"github.com/mattmach1/restaurant-inventory/internal/dto"
)

// LocationSvcFacade manages locations scoped to the caller's organization.
type LocationSvcFacade interface {
	ListLocations(ctx context.Context, identity domain.Identity) ([]domain.Location, error)
	CreateLocation(ctx context.Context, identity domain.Identity, req dto.CreateLocationRequest) (*domain.Location, error)
	UpdateLocation(ctx context.Context, identity domain.Identity, locationID string, req dto.UpdateLocationRequest) (*domain.Location, error)
	DeleteLocation(ctx context.Context, identity domain.Identity, locationID string) error
}
