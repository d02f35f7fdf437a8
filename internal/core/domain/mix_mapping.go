package domain

import "github.com/shopspring/decimal"

// MixMapping links a menu item at a location to one ingredient and the
// quantity of it used there. The (menu item, location, ingredient) triple is
// unique; recipes with several ingredients hold one mapping per ingredient.
type MixMapping struct {
	MappingID    string          `json:"mappingID" db:"mapping_id"`
	MenuItemID   string          `json:"menuItemID" db:"menu_item_id"`
	LocationID   string          `json:"locationID" db:"location_id"`
	IngredientID string          `json:"ingredientID" db:"ingredient_id"`
	Quantity     decimal.Decimal `json:"quantity" db:"quantity"`
}

// MixMappingDetail is a mapping joined with its ingredient, as returned by
// recipe listings.
type MixMappingDetail struct {
	MixMapping
	Ingredient Ingredient `json:"ingredient"`
}

// Cost is the mapping's contribution to the recipe cost: price x quantity.
func (d MixMappingDetail) Cost() decimal.Decimal {
	return d.Ingredient.Price.Mul(d.Quantity)
}

// RecipeCost sums the cost contributions of all mappings for one
// (menu item, location) pair.
func RecipeCost(details []MixMappingDetail) decimal.Decimal {
	total := decimal.Zero
	for _, d := range details {
		total = total.Add(d.Cost())
	}
	return total
}
