package domain

import "time"

// BusinessSector classifies what kind of business a user runs. The transaction
// type catalog offered to the user depends on it.
type BusinessSector string

const (
	SectorServices BusinessSector = "Services"
	SectorProducts BusinessSector = "Products"
)

// User represents a registered user profile in the domain.
// Every other record in the system is scoped to a user via its owner id.
type User struct {
	UserID         string         `json:"userID"` // Primary Key (UUID)
	Username       string         `json:"username"`
	PasswordHash   string         `json:"-"`
	Name           string         `json:"name"`
	BusinessSector BusinessSector `json:"businessSector"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`

	// Refresh token rotation state
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
}
