package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mattmach1/restaurant-inventory/internal/apperrors"
	"github.com/mattmach1/restaurant-inventory/internal/core/domain"
	portsrepo "github.com/mattmach1/restaurant-inventory/internal/core/ports/repositories"
)

type PgxIngredientRepository struct {
	BaseRepository
}

func newPgxIngredientRepository(pool *pgxpool.Pool) portsrepo.IngredientRepository {
	return &PgxIngredientRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.IngredientRepository = (*PgxIngredientRepository)(nil)

const fullIngredientSelectQuery = `
SELECT
	i.ingredient_id, i.name, i.price, i.unit, i.organization_id, i.created_at
FROM ingredients i
`

func (r *PgxIngredientRepository) getIngredients(ctx context.Context, filterQuery string, args ...any) ([]domain.Ingredient, error) {
	rows, err := r.Pool.Query(ctx, fullIngredientSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query ingredients", err)
	}
	defer rows.Close()
	ingredients, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Ingredient])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect ingredient rows", err)
	}
	return ingredients, nil
}

func (r *PgxIngredientRepository) SaveIngredient(ctx context.Context, ingredient domain.Ingredient) error {
	query := `
		INSERT INTO ingredients (ingredient_id, name, price, unit, organization_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		ingredient.IngredientID, ingredient.Name, ingredient.Price, ingredient.Unit,
		ingredient.OrganizationID, ingredient.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save ingredient "+ingredient.IngredientID, err)
	}
	return nil
}

func (r *PgxIngredientRepository) FindIngredientByID(ctx context.Context, ingredientID string) (*domain.Ingredient, error) {
	ingredients, err := r.getIngredients(ctx, `WHERE i.ingredient_id = $1`, ingredientID)
	if err != nil {
		return nil, err
	}
	if len(ingredients) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &ingredients[0], nil
}

func (r *PgxIngredientRepository) ListIngredientsByOrganization(ctx context.Context, organizationID string) ([]domain.Ingredient, error) {
	return r.getIngredients(ctx, `WHERE i.organization_id = $1 ORDER BY i.name`, organizationID)
}

func (r *PgxIngredientRepository) UpdateIngredient(ctx context.Context, ingredient domain.Ingredient) error {
	query := `
		UPDATE ingredients
		SET name = $1, price = $2, unit = $3
		WHERE ingredient_id = $4;
	`
	result, err := r.Pool.Exec(ctx, query,
		ingredient.Name, ingredient.Price, ingredient.Unit, ingredient.IngredientID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update ingredient "+ingredient.IngredientID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("ingredient " + ingredient.IngredientID + " not found")
	}
	return nil
}

func (r *PgxIngredientRepository) DeleteIngredient(ctx context.Context, ingredientID string) error {
	result, err := r.Pool.Exec(ctx, `DELETE FROM ingredients WHERE ingredient_id = $1;`, ingredientID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete ingredient "+ingredientID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("ingredient " + ingredientID + " not found")
	}
	return nil
}
