package service

import (
	"context"
	"errors"
	"fmt"

	"docregistry/internal/model"
	"docregistry/internal/repository"
	"docregistry/internal/repository/postgres"
)

var (
	ErrTypeExists   = errors.New("document type already exists")
	ErrTypeNotFound = errors.New("document type not found")
)

// DocumentTypeService defines the use cases for document type registration.
type DocumentTypeService interface {
	// Create persists a new type. A duplicate name fails with ErrTypeExists
	// after the storage transaction has rolled back.
	Create(ctx context.Context, name string) (*model.DocumentType, error)

	// List returns every type ordered by id ascending.
	List(ctx context.Context) ([]model.DocumentType, error)
}

type documentTypeService struct {
	repo repository.DocumentTypeRepository
}

// NewDocumentTypeService constructs a new DocumentTypeService.
func NewDocumentTypeService(repo repository.DocumentTypeRepository) DocumentTypeService {
	return &documentTypeService{repo: repo}
}

func (s *documentTypeService) Create(ctx context.Context, name string) (*model.DocumentType, error) {
	stored, err := s.repo.Create(ctx, name)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return nil, ErrTypeExists
		}
		return nil, fmt.Errorf("create document type: %w", err)
	}
	return stored, nil
}

func (s *documentTypeService) List(ctx context.Context) ([]model.DocumentType, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list document types: %w", err)
	}
	return items, nil
}
