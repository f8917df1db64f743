package model

import "time"

// User represents a registered account.
// This is a pure domain model with no database-specific dependencies or tags.
// PasswordHash is excluded from JSON so it can never leak across the API boundary.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
