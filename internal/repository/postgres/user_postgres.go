package postgres

import (
	"context"
	"database/sql"

	"docregistry/internal/database"
	"docregistry/internal/model"
	"docregistry/internal/repository"
)

// UserPostgres is a PostgreSQL implementation of repository.UserRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type UserPostgres struct {
	db *sql.DB
}

// NewUserPostgres creates a new UserPostgres repository.
func NewUserPostgres(db *sql.DB) *UserPostgres {
	return &UserPostgres{db: db}
}

var _ repository.UserRepository = (*UserPostgres)(nil)

// Create inserts a new user row inside a transaction so a constraint failure
// leaves no partial row behind.
func (r *UserPostgres) Create(ctx context.Context, user *model.User) (*model.User, error) {
	var out model.User
	err := database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		return r.insert(ctx, tx, user, &out)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *UserPostgres) insert(ctx context.Context, q database.Querier, user *model.User, out *model.User) error {
	const query = `
		INSERT INTO users (username, password_hash, created_at)
		VALUES ($1, $2, $3)
		RETURNING id, username, password_hash, created_at
	`
	row := q.QueryRowContext(ctx, query,
		user.Username,
		user.PasswordHash,
		user.CreatedAt,
	)
	return row.Scan(
		&out.ID,
		&out.Username,
		&out.PasswordHash,
		&out.CreatedAt,
	)
}

// FindByUsername fetches a single user by username.
func (r *UserPostgres) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	const q = `
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE username = $1
	`
	row := r.db.QueryRowContext(ctx, q, username)
	var u model.User
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}
