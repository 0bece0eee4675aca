package models

import (
	"database/sql"
	"time"
)

// AuthUser is a row of auth_users. OAuth accounts have no password hash.
type AuthUser struct {
	UserID                 string         `db:"user_id"`
	Email                  string         `db:"email"`
	PasswordHash           sql.NullString `db:"password_hash"`
	AuthProvider           string         `db:"auth_provider"`
	ProviderUserID         sql.NullString `db:"provider_user_id"`
	EmailVerified          bool           `db:"email_verified"`
	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"`
	CreatedAt              time.Time      `db:"created_at"`
}

type Profile struct {
	UserID    string    `db:"user_id"`
	FullName  string    `db:"full_name"`
	Email     string    `db:"email"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
