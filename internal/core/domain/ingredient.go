package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ingredient is a purchasable input with a unit price, owned by an organization.
// Price is exact decimal, never float.
type Ingredient struct {
	IngredientID   string          `json:"ingredientID" db:"ingredient_id"`
	Name           string          `json:"name" db:"name"`
	Price          decimal.Decimal `json:"price" db:"price"`
	Unit           string          `json:"unit" db:"unit"`
	OrganizationID string          `json:"organizationID" db:"organization_id"`
	CreatedAt      time.Time       `json:"createdAt" db:"created_at"`
}
