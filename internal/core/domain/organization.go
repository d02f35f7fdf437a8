package domain

import "time"

// Organization is the root tenant boundary. Every other entity belongs to
// exactly one organization, and requests never cross it.
type Organization struct {
	OrganizationID string    `json:"organizationID" db:"organization_id"`
	Name           string    `json:"name" db:"name"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}
