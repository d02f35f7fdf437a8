package services

import (
	"context"

	"github.com/mattmach1/restaurant-inventory/internal/core/domain"
	"github.com/mattmach1/restaurant-inventory/internal/dto"
	"github.com/shopspring/decimal"
)

// MixMappingSvcFacade manages recipe mappings and derived recipe costs.
type MixMappingSvcFacade interface {
	// ListMappings returns the mappings for one (menu item, location) pair
	// with each ingredient embedded. Both referenced resources must belong to
	// the caller's organization.
	ListMappings(ctx context.Context, identity domain.Identity, menuItemID, locationID string) ([]domain.MixMappingDetail, error)
	CreateMapping(ctx context.Context, identity domain.Identity, req dto.CreateMixMappingRequest) (*domain.MixMapping, error)
	UpdateMapping(ctx context.Context, identity domain.Identity, mappingID string, req dto.UpdateMixMappingRequest) (*domain.MixMapping, error)
	DeleteMapping(ctx context.Context, identity domain.Identity, mappingID string) error
	// CopyMappings replaces every mapping at the destination location with
	// copies from the source location, atomically.
	CopyMappings(ctx context.Context, identity domain.Identity, req dto.CopyMixMappingsRequest) (int64, error)
	// RecipeCost computes the total ingredient cost for a menu item at a
	// location: sum of price x quantity over its mappings.
	RecipeCost(ctx context.Context, identity domain.Identity, menuItemID, locationID string) (decimal.Decimal, error)
}
