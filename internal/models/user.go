package models

import (
	"database/sql"
	"time"
)

// User is the users table row.
type User struct {
	UserID         string `db:"user_id"`
	Username       string `db:"username"`
	PasswordHash   string `db:"password_hash"`
	Name           string `db:"name"`
	BusinessSector string `db:"business_sector"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`

	// Refresh Token Fields
	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"`
}
