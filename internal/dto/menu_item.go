package dto

import (
	"time"

	"github.com/mattmach1/restaurant-inventory/internal/core/domain"
)

// CreateMenuItemRequest defines data for creating a menu item.
type CreateMenuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

// UpdateMenuItemRequest defines a partial menu item update.
type UpdateMenuItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// MenuItemResponse defines data returned for a menu item.
type MenuItemResponse struct {
	MenuItemID     string    `json:"id"`
	Name           string    `json:"name"`
	Description    *string   `json:"description,omitempty"`
	OrganizationID string    `json:"organizationId"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ToMenuItemResponse converts domain.MenuItem to DTO.
func ToMenuItemResponse(m *domain.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		MenuItemID:     m.MenuItemID,
		Name:           m.Name,
		Description:    m.Description,
		OrganizationID: m.OrganizationID,
		CreatedAt:      m.CreatedAt,
	}
}

// ToMenuItemResponseList converts a slice of domain.MenuItem to DTOs.
func ToMenuItemResponseList(ms []domain.MenuItem) []MenuItemResponse {
	list := make([]MenuItemResponse, len(ms))
	for i := range ms {
		list[i] = ToMenuItemResponse(&ms[i])
	}
	return list
}
