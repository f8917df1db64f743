package postgres

import (
	"context"
	"database/sql"

	"docregistry/internal/database"
	"docregistry/internal/model"
	"docregistry/internal/repository"
)

// DocumentTypePostgres is a PostgreSQL implementation of repository.DocumentTypeRepository.
type DocumentTypePostgres struct {
	db *sql.DB
}

// NewDocumentTypePostgres creates a new DocumentTypePostgres repository.
func NewDocumentTypePostgres(db *sql.DB) *DocumentTypePostgres {
	return &DocumentTypePostgres{db: db}
}

var _ repository.DocumentTypeRepository = (*DocumentTypePostgres)(nil)

// Create inserts a new type row inside a transaction. On a name-uniqueness
// violation the transaction rolls back before the error is returned.
func (r *DocumentTypePostgres) Create(ctx context.Context, name string) (*model.DocumentType, error) {
	var out model.DocumentType
	err := database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		return r.insert(ctx, tx, name, &out)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *DocumentTypePostgres) insert(ctx context.Context, q database.Querier, name string, out *model.DocumentType) error {
	const query = `
		INSERT INTO document_types (name)
		VALUES ($1)
		RETURNING id, name
	`
	return q.QueryRowContext(ctx, query, name).Scan(&out.ID, &out.Name)
}

// FindByID fetches a single type by its ID.
func (r *DocumentTypePostgres) FindByID(ctx context.Context, id int64) (*model.DocumentType, error) {
	const q = `
		SELECT id, name
		FROM document_types
		WHERE id = $1
	`
	var dt model.DocumentType
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&dt.ID, &dt.Name); err != nil {
		return nil, err
	}
	return &dt, nil
}

// List returns all types ordered by id ascending.
func (r *DocumentTypePostgres) List(ctx context.Context) ([]model.DocumentType, error) {
	const q = `
		SELECT id, name
		FROM document_types
		ORDER BY id ASC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.DocumentType, 0)
	for rows.Next() {
		var dt model.DocumentType
		if err := rows.Scan(&dt.ID, &dt.Name); err != nil {
			return nil, err
		}
		items = append(items, dt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
