package dto

import (
	"time"

	"github.com/mattmach1/restaurant-inventory/internal/core/domain"
)

// CreateLocationRequest defines data for creating a location. The owning
// organization is always taken from the authenticated identity, never from
// the body.
type CreateLocationRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateLocationRequest defines a partial location update. Pointers
// distinguish omitted fields from zero values.
type UpdateLocationRequest struct {
	Name *string `json:"name"`
}

// LocationResponse defines data returned for a location.
type LocationResponse struct {
	LocationID     string    `json:"id"`
	Name           string    `json:"name"`
	OrganizationID string    `json:"organizationId"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ToLocationResponse converts domain.Location to DTO.
func ToLocationResponse(l *domain.Location) LocationResponse {
	return LocationResponse{
		LocationID:     l.LocationID,
		Name:           l.Name,
		OrganizationID: l.OrganizationID,
		CreatedAt:      l.CreatedAt,
	}
}

// ToLocationResponseList converts a slice of domain.Location to DTOs.
func ToLocationResponseList(ls []domain.Location) []LocationResponse {
	list := make([]LocationResponse, len(ls))
	for i := range ls {
		list[i] = ToLocationResponse(&ls[i])
	}
	return list
}
