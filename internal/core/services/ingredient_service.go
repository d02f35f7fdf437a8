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

// ingredientService implements the IngredientSvcFacade interface.
type ingredientService struct {
	BaseService
	ingredientRepo portsrepo.IngredientRepository
}

// NewIngredientService creates a new ingredient service.
func NewIngredientService(ingredientRepo portsrepo.IngredientRepository) portssvc.IngredientSvcFacade {
	return &ingredientService{ingredientRepo: ingredientRepo}
}

var _ portssvc.IngredientSvcFacade = (*ingredientService)(nil)

// ListIngredients returns all ingredients of the caller's organization.
func (s *ingredientService) ListIngredients(ctx context.Context, identity domain.Identity) ([]domain.Ingredient, error) {
	ingredients, err := s.ingredientRepo.ListIngredientsByOrganization(ctx, identity.OrganizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ingredients",
			slog.String("organization_id", identity.OrganizationID))
		return nil, err
	}
	if ingredients == nil {
		return []domain.Ingredient{}, nil
	}
	return ingredients, nil
}

// CreateIngredient creates an ingredient owned by the caller's organization.
// Price must be non-negative.
func (s *ingredientService) CreateIngredient(ctx context.Context, identity domain.Identity, req dto.CreateIngredientRequest) (*domain.Ingredient, error) {
	if req.Price.IsNegative() {
		return nil, apperrors.NewValidationFailedError("price must not be negative")
	}

	ingredient := domain.Ingredient{
		IngredientID:   uuid.NewString(),
		Name:           req.Name,
		Price:          req.Price,
		Unit:           req.Unit,
		OrganizationID: identity.OrganizationID,
		CreatedAt:      time.Now(),
	}

	if err := s.ingredientRepo.SaveIngredient(ctx, ingredient); err != nil {
		s.LogError(ctx, err, "Failed to save ingredient", slog.String("ingredient_id", ingredient.IngredientID))
		return nil, err
	}

	s.LogInfo(ctx, "Ingredient created", slog.String("ingredient_id", ingredient.IngredientID))
	return &ingredient, nil
}

// UpdateIngredient applies a partial update after the ownership check.
func (s *ingredientService) UpdateIngredient(ctx context.Context, identity domain.Identity, ingredientID string, req dto.UpdateIngredientRequest) (*domain.Ingredient, error) {
	ingredient, err := s.findOwnedIngredient(ctx, identity, ingredientID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		ingredient.Name = *req.Name
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, apperrors.NewValidationFailedError("price must not be negative")
		}
		ingredient.Price = *req.Price
	}
	if req.Unit != nil {
		ingredient.Unit = *req.Unit
	}

	if err := s.ingredientRepo.UpdateIngredient(ctx, *ingredient); err != nil {
		s.LogError(ctx, err, "Failed to update ingredient", slog.String("ingredient_id", ingredientID))
		return nil, err
	}

	s.LogInfo(ctx, "Ingredient updated", slog.String("ingredient_id", ingredientID))
	return ingredient, nil
}

// DeleteIngredient removes an ingredient after the ownership check. Mappings
// referencing it are removed by the schema's cascade. The ADMIN gate is
// enforced by the route middleware.
func (s *ingredientService) DeleteIngredient(ctx context.Context, identity domain.Identity, ingredientID string) error {
	if _, err := s.findOwnedIngredient(ctx, identity, ingredientID); err != nil {
		return err
	}

	if err := s.ingredientRepo.DeleteIngredient(ctx, ingredientID); err != nil {
		s.LogError(ctx, err, "Failed to delete ingredient", slog.String("ingredient_id", ingredientID))
		return err
	}

	s.LogInfo(ctx, "Ingredient deleted", slog.String("ingredient_id", ingredientID))
	return nil
}

func (s *ingredientService) findOwnedIngredient(ctx context.Context, identity domain.Identity, ingredientID string) (*domain.Ingredient, error) {
	ingredient, err := s.ingredientRepo.FindIngredientByID(ctx, ingredientID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("ingredient not found")
		}
		s.LogError(ctx, err, "Failed to find ingredient", slog.String("ingredient_id", ingredientID))
		return nil, err
	}
	if err := s.AuthorizeOrganization(identity, ingredient.OrganizationID, "ingredient"); err != nil {
		return nil, err
	}
	return ingredient, nil
}
