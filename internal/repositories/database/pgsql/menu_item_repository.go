package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mattmach1/restaurant-inventory/internal/apperrors"
	"github.com/mattmach1/restaurant-inventory/internal/core/domain"
	portsrepo "github.com/mattmach1/restaurant-inventory/internal/core/ports/repositories"
)

type PgxMenuItemRepository struct {
	BaseRepository
}

func newPgxMenuItemRepository(pool *pgxpool.Pool) portsrepo.MenuItemRepository {
	return &PgxMenuItemRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.MenuItemRepository = (*PgxMenuItemRepository)(nil)

const fullMenuItemSelectQuery = `
SELECT
	m.menu_item_id, m.name, m.description, m.organization_id, m.created_at
FROM menu_items m
`

func (r *PgxMenuItemRepository) getMenuItems(ctx context.Context, filterQuery string, args ...any) ([]domain.MenuItem, error) {
	rows, err := r.Pool.Query(ctx, fullMenuItemSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query menu items", err)
	}
	defer rows.Close()
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.MenuItem])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect menu item rows", err)
	}
	return items, nil
}

func (r *PgxMenuItemRepository) SaveMenuItem(ctx context.Context, item domain.MenuItem) error {
	query := `
		INSERT INTO menu_items (menu_item_id, name, description, organization_id, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query,
		item.MenuItemID, item.Name, item.Description, item.OrganizationID, item.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save menu item "+item.MenuItemID, err)
	}
	return nil
}

func (r *PgxMenuItemRepository) FindMenuItemByID(ctx context.Context, menuItemID string) (*domain.MenuItem, error) {
	items, err := r.getMenuItems(ctx, `WHERE m.menu_item_id = $1`, menuItemID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &items[0], nil
}

func (r *PgxMenuItemRepository) ListMenuItemsByOrganization(ctx context.Context, organizationID string) ([]domain.MenuItem, error) {
	return r.getMenuItems(ctx, `WHERE m.organization_id = $1 ORDER BY m.name`, organizationID)
}

func (r *PgxMenuItemRepository) UpdateMenuItem(ctx context.Context, item domain.MenuItem) error {
	query := `
		UPDATE menu_items
		SET name = $1, description = $2
		WHERE menu_item_id = $3;
	`
	result, err := r.Pool.Exec(ctx, query, item.Name, item.Description, item.MenuItemID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update menu item "+item.MenuItemID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("menu item " + item.MenuItemID + " not found")
	}
	return nil
}

func (r *PgxMenuItemRepository) DeleteMenuItem(ctx context.Context, menuItemID string) error {
	result, err := r.Pool.Exec(ctx, `DELETE FROM menu_items WHERE menu_item_id = $1;`, menuItemID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete menu item "+menuItemID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("menu item " + menuItemID + " not found")
	}
	return nil
}
