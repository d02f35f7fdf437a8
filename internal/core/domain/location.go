package domain

import "time"

// Location is a physical restaurant site owned by an organization.
type Location struct {
	LocationID     string    `json:"locationID" db:"location_id"`
	Name           string    `json:"name" db:"name"`
	OrganizationID string    `json:"organizationID" db:"organization_id"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}
