package postgres

import (
	"context"
	"database/sql"

	"docregistry/internal/database"
	"docregistry/internal/model"
	"docregistry/internal/repository"
)

// DocumentPostgres is a PostgreSQL implementation of repository.DocumentRepository.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

// Create inserts a new document row inside a transaction and returns the
// stored record with the database-assigned ID.
func (r *DocumentPostgres) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	var out model.Document
	err := database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		return r.insert(ctx, tx, doc, &out)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *DocumentPostgres) insert(ctx context.Context, q database.Querier, doc *model.Document, out *model.Document) error {
	const query = `
		INSERT INTO documents (type_id, link, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, type_id, link, created_at, updated_at
	`
	row := q.QueryRowContext(ctx, query,
		doc.TypeID,
		doc.Link,
		doc.CreatedAt,
		doc.UpdatedAt,
	)
	return row.Scan(
		&out.ID,
		&out.TypeID,
		&out.Link,
		&out.CreatedAt,
		&out.UpdatedAt,
	)
}

// List returns all documents in insertion order (id ascending).
func (r *DocumentPostgres) List(ctx context.Context) ([]model.Document, error) {
	const q = `
		SELECT id, type_id, link, created_at, updated_at
		FROM documents
		ORDER BY id ASC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Document, 0)
	for rows.Next() {
		var d model.Document
		if err := rows.Scan(
			&d.ID,
			&d.TypeID,
			&d.Link,
			&d.CreatedAt,
			&d.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
