package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mattmach1/restaurant-inventory/internal/apperrors"
	"github.com/mattmach1/restaurant-inventory/internal/core/domain"
	portsrepo "github.com/mattmach1/restaurant-inventory/internal/core/ports/repositories"
)

type PgxMixMappingRepository struct {
	BaseRepository
}

func newPgxMixMappingRepository(pool *pgxpool.Pool) portsrepo.MixMappingRepository {
	return &PgxMixMappingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.MixMappingRepository = (*PgxMixMappingRepository)(nil)

func (r *PgxMixMappingRepository) SaveMapping(ctx context.Context, mapping domain.MixMapping) error {
	query := `
		INSERT INTO mix_mappings (mapping_id, menu_item_id, location_id, ingredient_id, quantity)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query,
		mapping.MappingID, mapping.MenuItemID, mapping.LocationID, mapping.IngredientID, mapping.Quantity,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation on the triple
			return apperrors.NewConflictError("mapping already exists")
		}
		return apperrors.NewAppError(500, "failed to save mix mapping "+mapping.MappingID, err)
	}
	return nil
}

func (r *PgxMixMappingRepository) FindMappingByID(ctx context.Context, mappingID string) (*domain.MixMapping, error) {
	query := `
		SELECT mapping_id, menu_item_id, location_id, ingredient_id, quantity
		FROM mix_mappings
		WHERE mapping_id = $1;
	`
	var m domain.MixMapping
	err := r.Pool.QueryRow(ctx, query, mappingID).Scan(
		&m.MappingID, &m.MenuItemID, &m.LocationID, &m.IngredientID, &m.Quantity,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find mix mapping "+mappingID, err)
	}
	return &m, nil
}

// ListMappingDetails joins each mapping with its ingredient for one
// (menu item, location) pair.
func (r *PgxMixMappingRepository) ListMappingDetails(ctx context.Context, menuItemID, locationID string) ([]domain.MixMappingDetail, error) {
	query := `
		SELECT
			mm.mapping_id, mm.menu_item_id, mm.location_id, mm.ingredient_id, mm.quantity,
			i.ingredient_id, i.name, i.price, i.unit, i.organization_id, i.created_at
		FROM mix_mappings mm
		JOIN ingredients i ON mm.ingredient_id = i.ingredient_id
		WHERE mm.menu_item_id = $1 AND mm.location_id = $2
		ORDER BY i.name;
	`
	rows, err := r.Pool.Query(ctx, query, menuItemID, locationID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query mix mappings", err)
	}
	defer rows.Close()

	var details []domain.MixMappingDetail
	for rows.Next() {
		var d domain.MixMappingDetail
		err := rows.Scan(
			&d.MappingID, &d.MenuItemID, &d.LocationID, &d.IngredientID, &d.Quantity,
			&d.Ingredient.IngredientID, &d.Ingredient.Name, &d.Ingredient.Price,
			&d.Ingredient.Unit, &d.Ingredient.OrganizationID, &d.Ingredient.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan mix mapping row", err)
		}
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating mix mapping rows", err)
	}

	return details, nil
}

func (r *PgxMixMappingRepository) UpdateMappingQuantity(ctx context.Context, mapping domain.MixMapping) error {
	query := `
		UPDATE mix_mappings
		SET quantity = $1
		WHERE mapping_id = $2;
	`
	result, err := r.Pool.Exec(ctx, query, mapping.Quantity, mapping.MappingID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update mix mapping "+mapping.MappingID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("mix mapping " + mapping.MappingID + " not found")
	}
	return nil
}

func (r *PgxMixMappingRepository) DeleteMapping(ctx context.Context, mappingID string) error {
	result, err := r.Pool.Exec(ctx, `DELETE FROM mix_mappings WHERE mapping_id = $1;`, mappingID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete mix mapping "+mappingID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("mix mapping " + mappingID + " not found")
	}
	return nil
}

// ReplaceLocationMappings copies all mappings from one location onto another
// inside a single transaction: the destination's mappings are deleted, then
// fresh copies of the source mappings are inserted with the location
// rewritten. Either both steps commit or the destination stays unchanged.
func (r *PgxMixMappingRepository) ReplaceLocationMappings(ctx context.Context, fromLocationID, toLocationID string) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(ctx, `DELETE FROM mix_mappings WHERE location_id = $1;`, toLocationID); err != nil {
		return 0, apperrors.NewAppError(500, "failed to clear mappings at location "+toLocationID, err)
	}

	insertQuery := `
		INSERT INTO mix_mappings (mapping_id, menu_item_id, location_id, ingredient_id, quantity)
		SELECT gen_random_uuid(), menu_item_id, $2, ingredient_id, quantity
		FROM mix_mappings
		WHERE location_id = $1;
	`
	result, err := tx.Exec(ctx, insertQuery, fromLocationID, toLocationID)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to copy mappings from location "+fromLocationID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
