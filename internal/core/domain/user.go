package domain

import "time"

// Role defines the possible roles a user can have within their organization.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
)

// IsValid reports whether r is one of the supported roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager:
		return true
	}
	return false
}

// User represents a member of an organization.
type User struct {
	UserID         string    `json:"userID" db:"user_id"`
	Email          string    `json:"email" db:"email"`
	PasswordHash   string    `json:"-" db:"password_hash"`
	Name           string    `json:"name" db:"name"`
	OrganizationID string    `json:"organizationID" db:"organization_id"`
	Role           Role      `json:"role" db:"role"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}

// Identity is the per-request capability object resolved once by the auth
// middleware: who is calling, which organization their reads and writes are
// confined to, and which role gate they pass.
type Identity struct {
	UserID         string
	OrganizationID string
	Role           Role
}
