package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"docregistry/internal/auth"
	"docregistry/internal/model"
	"docregistry/internal/repository"
	"docregistry/internal/repository/postgres"
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// AccountService defines the use cases for account registration and login.
type AccountService interface {
	// Register hashes the password and persists a new user.
	// A duplicate username fails with ErrUsernameTaken.
	Register(ctx context.Context, username, password string) (*model.User, error)

	// Authenticate returns the user when the credentials match.
	// Unknown username and wrong password both fail with ErrInvalidCredentials
	// so callers cannot tell the two apart.
	Authenticate(ctx context.Context, username, password string) (*model.User, error)

	// FindByUsername returns the user or ErrUserNotFound.
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}

// accountService is a concrete implementation of AccountService.
type accountService struct {
	repo   repository.UserRepository
	hasher auth.Hasher
}

// NewAccountService constructs a new AccountService.
func NewAccountService(repo repository.UserRepository, hasher auth.Hasher) AccountService {
	return &accountService{repo: repo, hasher: hasher}
}

func (s *accountService) Register(ctx context.Context, username, password string) (*model.User, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	stored, err := s.repo.Create(ctx, user)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return stored, nil
}

func (s *accountService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if postgres.IsNoRowsError(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *accountService) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if postgres.IsNoRowsError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}
