package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mattmach1/restaurant-inventory/internal/apperrors"
	"github.com/mattmach1/restaurant-inventory/internal/core/domain"
	portsrepo "github.com/mattmach1/restaurant-inventory/internal/core/ports/repositories"
	portssvc "github.com/mattmach1/restaurant-inventory/internal/core/ports/services"
	"github.com/mattmach1/restaurant-inventory/internal/dto"
)

// menuItemService implements the MenuItemSvcFacade interface.
type menuItemService struct {
	BaseService
	menuItemRepo portsrepo.MenuItemRepository
}

// NewMenuItemService creates a new menu item service.
func NewMenuItemService(menuItemRepo portsrepo.MenuItemRepository) portssvc.MenuItemSvcFacade {
	return &menuItemService{menuItemRepo: menuItemRepo}
}

var _ portssvc.MenuItemSvcFacade = (*menuItemService)(nil)

// ListMenuItems returns all menu items of the caller's organization.
func (s *menuItemService) ListMenuItems(ctx context.Context, identity domain.Identity) ([]domain.MenuItem, error) {
	items, err := s.menuItemRepo.ListMenuItemsByOrganization(ctx, identity.OrganizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list menu items",
			slog.String("organization_id", identity.OrganizationID))
		return nil, err
	}
	if items == nil {
		return []domain.MenuItem{}, nil
	}
	return items, nil
}

// CreateMenuItem creates a menu item owned by the caller's organization.
func (s *menuItemService) CreateMenuItem(ctx context.Context, identity domain.Identity, req dto.CreateMenuItemRequest) (*domain.MenuItem, error) {
	item := domain.MenuItem{
		MenuItemID:     uuid.NewString(),
		Name:           req.Name,
		Description:    req.Description,
		OrganizationID: identity.OrganizationID,
		CreatedAt:      time.Now(),
	}

	if err := s.menuItemRepo.SaveMenuItem(ctx, item); err != nil {
		s.LogError(ctx, err, "Failed to save menu item", slog.String("menu_item_id", item.MenuItemID))
		return nil, err
	}

	s.LogInfo(ctx, "Menu item created", slog.String("menu_item_id", item.MenuItemID))
	return &item, nil
}

// UpdateMenuItem applies a partial update after the ownership check.
func (s *menuItemService) UpdateMenuItem(ctx context.Context, identity domain.Identity, menuItemID string, req dto.UpdateMenuItemRequest) (*domain.MenuItem, error) {
	item, err := s.findOwnedMenuItem(ctx, identity, menuItemID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = req.Description
	}

	if err := s.menuItemRepo.UpdateMenuItem(ctx, *item); err != nil {
		s.LogError(ctx, err, "Failed to update menu item", slog.String("menu_item_id", menuItemID))
		return nil, err
	}

	s.LogInfo(ctx, "Menu item updated", slog.String("menu_item_id", menuItemID))
	return item, nil
}

// DeleteMenuItem removes a menu item after the ownership check. The ADMIN
// gate is enforced by the route middleware.
func (s *menuItemService) DeleteMenuItem(ctx context.Context, identity domain.Identity, menuItemID string) error {
	if _, err := s.findOwnedMenuItem(ctx, identity, menuItemID); err != nil {
		return err
	}

	if err := s.menuItemRepo.DeleteMenuItem(ctx, menuItemID); err != nil {
		s.LogError(ctx, err, "Failed to delete menu item", slog.String("menu_item_id", menuItemID))
		return err
	}

	s.LogInfo(ctx, "Menu item deleted", slog.String("menu_item_id", menuItemID))
	return nil
}

func (s *menuItemService) findOwnedMenuItem(ctx context.Context, identity domain.Identity, menuItemID string) (*domain.MenuItem, error) {
	item, err := s.menuItemRepo.FindMenuItemByID(ctx, menuItemID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("menu item not found")
		}
		s.LogError(ctx, err, "Failed to find menu item", slog.String("menu_item_id", menuItemID))
		return nil, err
	}
	if err := s.AuthorizeOrganization(identity, item.OrganizationID, "menu item"); err != nil {
		return nil, err
	}
	return item, nil
}
