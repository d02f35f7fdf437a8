package dto

import (
	"time"

	"github.com/mattmach1/restaurant-inventory/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateIngredientRequest defines data for creating an ingredient. Price is
// exact decimal; non-numeric input fails binding with 400. Zero prices are
// allowed, negative ones are not.
type CreateIngredientRequest struct {
	Name  string          `json:"name" binding:"required"`
	Price decimal.Decimal `json:"price" binding:"decimalnonneg"`
	Unit  string          `json:"unit" binding:"required"`
}

// UpdateIngredientRequest defines a partial ingredient update.
type UpdateIngredientRequest struct {
	Name  *string          `json:"name"`
	Price *decimal.Decimal `json:"price"`
	Unit  *string          `json:"unit"`
}

// IngredientResponse defines data returned for an ingredient.
type IngredientResponse struct {
	IngredientID   string          `json:"id"`
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	Unit           string          `json:"unit"`
	OrganizationID string          `json:"organizationId"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ToIngredientResponse converts domain.Ingredient to DTO.
func ToIngredientResponse(ing *domain.Ingredient) IngredientResponse {
	return IngredientResponse{
		IngredientID:   ing.IngredientID,
		Name:           ing.Name,
		Price:          ing.Price,
		Unit:           ing.Unit,
		OrganizationID: ing.OrganizationID,
		CreatedAt:      ing.CreatedAt,
	}
}

// ToIngredientResponseList converts a slice of domain.Ingredient to DTOs.
func ToIngredientResponseList(ings []domain.Ingredient) []IngredientResponse {
	list := make([]IngredientResponse, len(ings))
	for i := range ings {
		list[i] = ToIngredientResponse(&ings[i])
	}
	return list
}
