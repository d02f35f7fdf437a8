package dto

import (
	"github.com/mattmach1/restaurant-inventory/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateMixMappingRequest links an ingredient to a (menu item, location) pair.
type CreateMixMappingRequest struct {
	MenuItemID   string          `json:"menuItemId" binding:"required"`
	LocationID   string          `json:"locationId" binding:"required"`
	IngredientID string          `json:"ingredientId" binding:"required"`
	Quantity     decimal.Decimal `json:"quantity" binding:"decimalpositive"`
}

// UpdateMixMappingRequest changes a mapping's quantity.
type UpdateMixMappingRequest struct {
	Quantity decimal.Decimal `json:"quantity" binding:"decimalpositive"`
}

// CopyMixMappingsRequest replaces all mappings at the destination location
// with copies from the source location.
type CopyMixMappingsRequest struct {
	FromLocationID string `json:"fromLocationId" binding:"required"`
	ToLocationID   string `json:"toLocationId" binding:"required"`
}

// CopyMixMappingsResponse reports the outcome of a bulk copy.
type CopyMixMappingsResponse struct {
	Message     string `json:"message"`
	CopiedCount int64  `json:"copiedCount"`
}

// MixMappingResponse defines data returned for a mapping. Ingredient is
// embedded on list responses and omitted elsewhere.
type MixMappingResponse struct {
	MappingID    string              `json:"id"`
	MenuItemID   string              `json:"menuItemId"`
	LocationID   string              `json:"locationId"`
	IngredientID string              `json:"ingredientId"`
	Quantity     decimal.Decimal     `json:"quantity"`
	Ingredient   *IngredientResponse `json:"ingredient,omitempty"`
}

// RecipeCostResponse carries the derived recipe cost for a (menu item,
// location) pair.
type RecipeCostResponse struct {
	MenuItemID string          `json:"menuItemId"`
	LocationID string          `json:"locationId"`
	TotalCost  decimal.Decimal `json:"totalCost"`
}

// ToMixMappingResponse converts domain.MixMapping to DTO.
func ToMixMappingResponse(m *domain.MixMapping) MixMappingResponse {
	return MixMappingResponse{
		MappingID:    m.MappingID,
		MenuItemID:   m.MenuItemID,
		LocationID:   m.LocationID,
		IngredientID: m.IngredientID,
		Quantity:     m.Quantity,
	}
}

// ToMixMappingDetailResponse converts a mapping joined with its ingredient.
func ToMixMappingDetailResponse(d *domain.MixMappingDetail) MixMappingResponse {
	resp := ToMixMappingResponse(&d.MixMapping)
	ing := ToIngredientResponse(&d.Ingredient)
	resp.Ingredient = &ing
	return resp
}

// ToMixMappingDetailResponseList converts a slice of mapping details to DTOs.
func ToMixMappingDetailResponseList(ds []domain.MixMappingDetail) []MixMappingResponse {
	list := make([]MixMappingResponse, len(ds))
	for i := range ds {
		list[i] = ToMixMappingDetailResponse(&ds[i])
	}
	return list
}
