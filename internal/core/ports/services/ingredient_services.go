package services

import (
	"context"

	"github.com/mattmach1/restaurant-inventory/internal/core/domain"
	"github.com/mattmach1/restaurant-inventory/internal/dto"
)

// IngredientSvcFacade manages ingredients scoped to the caller's organization.
type IngredientSvcFacade interface {
	ListIngredients(ctx context.Context, identity domain.Identity) ([]domain.Ingredient, error)
	CreateIngredient(ctx context.Context, identity domain.Identity, req dto.CreateIngredientRequest) (*domain.Ingredient, error)
	UpdateIngredient(ctx context.Context, identity domain.Identity, ingredientID string, req dto.UpdateIngredientRequest) (*domain.Ingredient, error)
	DeleteIngredient(ctx context.Context, identity domain.Identity, ingredientID string) error
}
