package services

import (
	"context"

	"github.com/mattmach1/restaurant-inventory/internal/core/domain"
	"github.com/mattmach1/restaurant-inventory/internal/dto"
)

// MenuItemSvcFacade manages menu items scoped to the caller's organization.
type MenuItemSvcFacade interface {
	ListMenuItems(ctx context.Context, identity domain.Identity) ([]domain.MenuItem, error)
	CreateMenuItem(ctx context.Context, identity domain.Identity, req dto.CreateMenuItemRequest) (*domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, identity domain.Identity, menuItemID string, req dto.UpdateMenuItemRequest) (*domain.MenuItem, error)
	DeleteMenuItem(ctx context.Context, identity domain.Identity, menuItemID string) error
}
