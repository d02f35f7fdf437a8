package repositories

import (
	"context"

	"github.com/mattmach1/restaurant-inventory/internal/core/domain"
)

// MixMappingRepository persists recipe mappings.
type MixMappingRepository interface {
	SaveMapping(ctx context.Context, mapping domain.MixMapping) error
	FindMappingByID(ctx context.Context, mappingID string) (*domain.MixMapping, error)
	ListMappingDetails(ctx context.Context, menuItemID, locationID string) ([]domain.MixMappingDetail, error)
	UpdateMappingQuantity(ctx context.Context, mapping domain.MixMapping) error
	DeleteMapping(ctx context.Context, mappingID string) error
	// ReplaceLocationMappings atomically deletes every mapping at the
	// destination location and inserts copies of the source location's
	// mappings rewritten to the destination, returning the number inserted.
	// Both steps run in one transaction; on error the destination is unchanged.
	ReplaceLocationMappings(ctx context.Context, fromLocationID, toLocationID string) (int64, error)
}
