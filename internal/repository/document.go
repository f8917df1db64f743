package repository

import (
	"context"

	"docregistry/internal/model"
)

// DocumentTypeRepository defines data access for document types.
type DocumentTypeRepository interface {
	// Create inserts a new type row. Name uniqueness is enforced by the store.
	Create(ctx context.Context, name string) (*model.DocumentType, error)

	// FindByID returns the type with the given ID, or sql.ErrNoRows.
	FindByID(ctx context.Context, id int64) (*model.DocumentType, error)

	// List returns every type ordered by id ascending.
	List(ctx context.Context) ([]model.DocumentType, error)
}

// DocumentRepository defines data access for documents.
type DocumentRepository interface {
	// Create inserts a new document row and returns the stored record.
	// The caller provides type_id, link, and both timestamps.
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)

	// List returns every document ordered by id ascending.
	List(ctx context.Context) ([]model.Document, error)
}
