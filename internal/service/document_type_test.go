package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"docregistry/internal/model"
	repoMocks "docregistry/internal/repository/mocks"
)

func TestDocumentTypeService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		typeName   string
		setupMocks func(mRepo *repoMocks.MockDocumentTypeRepository)
		wantErr    error
	}{
		{
			name:     "happy path",
			typeName: "invoice",
			setupMocks: func(mRepo *repoMocks.MockDocumentTypeRepository) {
				mRepo.On("Create", ctx, "invoice").
					Return(&model.DocumentType{ID: 1, Name: "invoice"}, nil)
			},
		},
		{
			name:     "duplicate name",
			typeName: "invoice",
			setupMocks: func(mRepo *repoMocks.MockDocumentTypeRepository) {
				mRepo.On("Create", ctx, "invoice").Return(nil, uniqueViolation())
			},
			wantErr: ErrTypeExists,
		},
		{
			name:     "storage error",
			typeName: "invoice",
			setupMocks: func(mRepo *repoMocks.MockDocumentTypeRepository) {
				mRepo.On("Create", ctx, "invoice").Return(nil, errors.New("db fail"))
			},
			wantErr: errors.New("db fail"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockDocumentTypeRepository)
			tt.setupMocks(mRepo)
			svc := NewDocumentTypeService(mRepo)

			dt, err := svc.Create(ctx, tt.typeName)

			if tt.wantErr != nil {
				assert.Error(t, err)
				if errors.Is(tt.wantErr, ErrTypeExists) {
					assert.ErrorIs(t, err, ErrTypeExists)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.typeName, dt.Name)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestDocumentTypeService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("ordered result passes through", func(t *testing.T) {
		mRepo := new(repoMocks.MockDocumentTypeRepository)
		mRepo.On("List", ctx).Return([]model.DocumentType{
			{ID: 1, Name: "invoice"},
			{ID: 2, Name: "receipt"},
		}, nil)
		svc := NewDocumentTypeService(mRepo)

		items, err := svc.List(ctx)

		assert.NoError(t, err)
		assert.Len(t, items, 2)
		assert.Equal(t, int64(1), items[0].ID)
		mRepo.AssertExpectations(t)
	})

	t.Run("repository error", func(t *testing.T) {
		mRepo := new(repoMocks.MockDocumentTypeRepository)
		mRepo.On("List", ctx).Return(nil, errors.New("db fail"))
		svc := NewDocumentTypeService(mRepo)

		_, err := svc.List(ctx)

		assert.Error(t, err)
	})
}
