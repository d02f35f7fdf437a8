package repositories

import (
	"context"

	"github.com/mattmach1/restaurant-inventory/internal/core/domain"
)

// MenuItemRepository persists menu items.
type MenuItemRepository interface {
	SaveMenuItem(ctx context.Context, item domain.MenuItem) error
	FindMenuItemByID(ctx context.Context, menuItemID string) (*domain.MenuItem, error)
	ListMenuItemsByOrganization(ctx context.Context, organizationID string) ([]domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, item domain.MenuItem) error
	DeleteMenuItem(ctx context.Context, menuItemID string) error
}
