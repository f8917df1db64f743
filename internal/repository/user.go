package repository

import (
	"context"

	"docregistry/internal/model"
)

// UserRepository defines data access for user accounts using SQL queries only.
// No business logic here — strictly persistence operations.
type UserRepository interface {
	// Create inserts a new user row and returns the stored record with the
	// database-assigned ID. Uniqueness of username is enforced by the store;
	// violations surface as errors matchable with postgres.IsUniqueViolation.
	Create(ctx context.Context, user *model.User) (*model.User, error)

	// FindByUsername returns the user with the given username, or sql.ErrNoRows.
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}
