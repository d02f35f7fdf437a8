package domain

import "time"

// MenuItem is a sellable dish owned by an organization.
type MenuItem struct {
	MenuItemID     string    `json:"menuItemID" db:"menu_item_id"`
	Name           string    `json:"name" db:"name"`
	Description    *string   `json:"description,omitempty" db:"description"`
	OrganizationID string    `json:"organizationID" db:"organization_id"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}
