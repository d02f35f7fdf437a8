package repositories

import (
	"context"

	"github.com/mattmach1/restaurant-inventory/internal/core/domain"
)

// IngredientRepository persists ingredients.
type IngredientRepository interface {
	SaveIngredient(ctx context.Context, ingredient domain.Ingredient) error
	FindIngredientByID(ctx context.Context, ingredientID string) (*domain.Ingredient, error)
	ListIngredientsByOrganization(ctx context.Context, organizationID string) ([]domain.Ingredient, error)
	UpdateIngredient(ctx context.Context, ingredient domain.Ingredient) error
	DeleteIngredient(ctx context.Context, ingredientID string) error
}
