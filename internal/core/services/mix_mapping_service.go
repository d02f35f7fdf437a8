package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/mattmach1/restaurant-inventory/internal/apperrors"
	"github.com/mattmach1/restaurant-inventory/internal/core/domain"
	portsrepo "github.com/mattmach1/restaurant-inventory/internal/core/ports/repositories"
	portssvc "github.com/mattmach1/restaurant-inventory/internal/core/ports/services"
	"github.com/mattmach1/restaurant-inventory/internal/dto"
	"github.com/shopspring/decimal"
)

// mixMappingService implements the MixMappingSvcFacade interface.
type mixMappingService struct {
	BaseService
	mappingRepo    portsrepo.MixMappingRepository
	locationRepo   portsrepo.LocationRepository
	menuItemRepo   portsrepo.MenuItemRepository
	ingredientRepo portsrepo.IngredientRepository
}

// NewMixMappingService creates a new mix mapping service.
func NewMixMappingService(
	mappingRepo portsrepo.MixMappingRepository,
	locationRepo portsrepo.LocationRepository,
	menuItemRepo portsrepo.MenuItemRepository,
	ingredientRepo portsrepo.IngredientRepository,
) portssvc.MixMappingSvcFacade {
	return &mixMappingService{
		mappingRepo:    mappingRepo,
		locationRepo:   locationRepo,
		menuItemRepo:   menuItemRepo,
		ingredientRepo: ingredientRepo,
	}
}

var _ portssvc.MixMappingSvcFacade = (*mixMappingService)(nil)

// ListMappings returns the mappings for one (menu item, location) pair with
// ingredients embedded. Both referenced resources must belong to the caller's
// organization; the query cannot be used to enumerate another tenant's recipes.
func (s *mixMappingService) ListMappings(ctx context.Context, identity domain.Identity, menuItemID, locationID string) ([]domain.MixMappingDetail, error) {
	if _, err := s.ownedLocation(ctx, identity, locationID); err != nil {
		return nil, err
	}
	if _, err := s.ownedMenuItem(ctx, identity, menuItemID); err != nil {
		return nil, err
	}

	details, err := s.mappingRepo.ListMappingDetails(ctx, menuItemID, locationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list mix mappings",
			slog.String("menu_item_id", menuItemID),
			slog.String("location_id", locationID))
		return nil, err
	}
	if details == nil {
		return []domain.MixMappingDetail{}, nil
	}
	return details, nil
}

// CreateMapping links an ingredient to a (menu item, location) pair. All
// three referenced resources must belong to the caller's organization,
// checked in order: location, menu item, ingredient. Nothing is persisted
// when any check fails.
func (s *mixMappingService) CreateMapping(ctx context.Context, identity domain.Identity, req dto.CreateMixMappingRequest) (*domain.MixMapping, error) {
	if !req.Quantity.IsPositive() {
		return nil, apperrors.NewValidationFailedError("quantity must be positive")
	}

	if _, err := s.ownedLocation(ctx, identity, req.LocationID); err != nil {
		return nil, err
	}
	if _, err := s.ownedMenuItem(ctx, identity, req.MenuItemID); err != nil {
		return nil, err
	}
	if _, err := s.ownedIngredient(ctx, identity, req.IngredientID); err != nil {
		return nil, err
	}

	mapping := domain.MixMapping{
		MappingID:    uuid.NewString(),
		MenuItemID:   req.MenuItemID,
		LocationID:   req.LocationID,
		IngredientID: req.IngredientID,
		Quantity:     req.Quantity,
	}

	if err := s.mappingRepo.SaveMapping(ctx, mapping); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("mapping already exists for this menu item, location and ingredient")
		}
		s.LogError(ctx, err, "Failed to save mix mapping", slog.String("mapping_id", mapping.MappingID))
		return nil, err
	}

	s.LogInfo(ctx, "Mix mapping created", slog.String("mapping_id", mapping.MappingID))
	return &mapping, nil
}

// UpdateMapping changes a mapping's quantity. Ownership is established
// through the mapping's location.
func (s *mixMappingService) UpdateMapping(ctx context.Context, identity domain.Identity, mappingID string, req dto.UpdateMixMappingRequest) (*domain.MixMapping, error) {
	if !req.Quantity.IsPositive() {
		return nil, apperrors.NewValidationFailedError("quantity must be positive")
	}

	mapping, err := s.findOwnedMapping(ctx, identity, mappingID)
	if err != nil {
		return nil, err
	}

	mapping.Quantity = req.Quantity
	if err := s.mappingRepo.UpdateMappingQuantity(ctx, *mapping); err != nil {
		s.LogError(ctx, err, "Failed to update mix mapping", slog.String("mapping_id", mappingID))
		return nil, err
	}

	s.LogInfo(ctx, "Mix mapping updated", slog.String("mapping_id", mappingID))
	return mapping, nil
}

// DeleteMapping removes a mapping. Ownership is established through the
// mapping's location.
func (s *mixMappingService) DeleteMapping(ctx context.Context, identity domain.Identity, mappingID string) error {
	if _, err := s.findOwnedMapping(ctx, identity, mappingID); err != nil {
		return err
	}

	if err := s.mappingRepo.DeleteMapping(ctx, mappingID); err != nil {
		s.LogError(ctx, err, "Failed to delete mix mapping", slog.String("mapping_id", mappingID))
		return err
	}

	s.LogInfo(ctx, "Mix mapping deleted", slog.String("mapping_id", mappingID))
	return nil
}

// CopyMappings replaces every mapping at the destination location with copies
// of the source location's mappings. Both locations must belong to the
// caller's organization. The delete and insert run in one transaction, so a
// failure leaves the destination unchanged.
func (s *mixMappingService) CopyMappings(ctx context.Context, identity domain.Identity, req dto.CopyMixMappingsRequest) (int64, error) {
	if req.FromLocationID == req.ToLocationID {
		return 0, apperrors.NewValidationFailedError("source and destination locations must differ")
	}

	if _, err := s.ownedLocation(ctx, identity, req.FromLocationID); err != nil {
		return 0, err
	}
	if _, err := s.ownedLocation(ctx, identity, req.ToLocationID); err != nil {
		return 0, err
	}

	copied, err := s.mappingRepo.ReplaceLocationMappings(ctx, req.FromLocationID, req.ToLocationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to copy mix mappings",
			slog.String("from_location_id", req.FromLocationID),
			slog.String("to_location_id", req.ToLocationID))
		return 0, err
	}

	s.LogInfo(ctx, "Mix mappings copied",
		slog.String("from_location_id", req.FromLocationID),
		slog.String("to_location_id", req.ToLocationID),
		slog.Int64("copied_count", copied))
	return copied, nil
}

// RecipeCost computes the total ingredient cost for a menu item at a
// location as exact decimal arithmetic.
func (s *mixMappingService) RecipeCost(ctx context.Context, identity domain.Identity, menuItemID, locationID string) (decimal.Decimal, error) {
	details, err := s.ListMappings(ctx, identity, menuItemID, locationID)
	if err != nil {
		return decimal.Zero, err
	}
	return domain.RecipeCost(details), nil
}

// findOwnedMapping resolves a mapping and checks ownership via its location.
func (s *mixMappingService) findOwnedMapping(ctx context.Context, identity domain.Identity, mappingID string) (*domain.MixMapping, error) {
	mapping, err := s.mappingRepo.FindMappingByID(ctx, mappingID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("mix mapping not found")
		}
		s.LogError(ctx, err, "Failed to find mix mapping", slog.String("mapping_id", mappingID))
		return nil, err
	}
	if _, err := s.ownedLocation(ctx, identity, mapping.LocationID); err != nil {
		return nil, err
	}
	return mapping, nil
}

func (s *mixMappingService) ownedLocation(ctx context.Context, identity domain.Identity, locationID string) (*domain.Location, error) {
	location, err := s.locationRepo.FindLocationByID(ctx, locationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("location not found")
		}
		return nil, err
	}
	if err := s.AuthorizeOrganization(identity, location.OrganizationID, "location"); err != nil {
		return nil, err
	}
	return location, nil
}

func (s *mixMappingService) ownedMenuItem(ctx context.Context, identity domain.Identity, menuItemID string) (*domain.MenuItem, error) {
	item, err := s.menuItemRepo.FindMenuItemByID(ctx, menuItemID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("menu item not found")
		}
		return nil, err
	}
	if err := s.AuthorizeOrganization(identity, item.OrganizationID, "menu item"); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *mixMappingService) ownedIngredient(ctx context.Context, identity domain.Identity, ingredientID string) (*domain.Ingredient, error) {
	ingredient, err := s.ingredientRepo.FindIngredientByID(ctx, ingredientID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("ingredient not found")
		}
		return nil, err
	}
	if err := s.AuthorizeOrganization(identity, ingredient.OrganizationID, "ingredient"); err != nil {
		return nil, err
	}
	return ingredient, nil
}
