package service

import (
	"context"
	"fmt"
	"time"

	"docregistry/internal/model"
	"docregistry/internal/repository"
	"docregistry/internal/repository/postgres"
)

// DocumentService defines the use cases for registering and listing documents.
type DocumentService interface {
	// Create verifies the referenced type exists, then persists a document.
	// A missing type fails with ErrTypeNotFound before anything is written.
	Create(ctx context.Context, typeID int64, link string) (*model.Document, error)

	// List returns every document ordered by id ascending.
	List(ctx context.Context) ([]model.Document, error)
}

type documentService struct {
	repo  repository.DocumentRepository
	types repository.DocumentTypeRepository
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(repo repository.DocumentRepository, types repository.DocumentTypeRepository) DocumentService {
	return &documentService{repo: repo, types: types}
}

func (s *documentService) Create(ctx context.Context, typeID int64, link string) (*model.Document, error) {
	// Existence check first; avoids a doomed insert that would otherwise
	// surface as a foreign-key failure.
	if _, err := s.types.FindByID(ctx, typeID); err != nil {
		if postgres.IsNoRowsError(err) {
			return nil, ErrTypeNotFound
		}
		return nil, fmt.Errorf("find document type: %w", err)
	}

	now := time.Now().UTC()
	doc := &model.Document{
		TypeID:    typeID,
		Link:      link,
		CreatedAt: now,
		UpdatedAt: now,
	}
	stored, err := s.repo.Create(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}
	return stored, nil
}

func (s *documentService) List(ctx context.Context) ([]model.Document, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return items, nil
}
