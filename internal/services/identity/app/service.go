// Package app orchestrates identity use cases over the storage contracts
// and hosts the HTTP runtime.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/identitylab/identify/internal/services/identity/domain"
	"github.com/identitylab/identify/internal/services/identity/storage"
)

var (
	// ErrServiceNotConfigured indicates the identity service is nil.
	ErrServiceNotConfigured = errors.New("identity service is not configured")
	// ErrStoreNotConfigured indicates the user store dependency is missing.
	ErrStoreNotConfigured = errors.New("user store is not configured")
	// ErrInvalidUserID indicates a caller-supplied ID is not a UUID.
	ErrInvalidUserID = errors.New("user id is not a valid uuid")
)

// Config controls identity service behavior.
type Config struct {
	Clock func() time.Time
}

// CreateUserInput carries one user registration request.
type CreateUserInput struct {
	Email     string
	FirstName string
	LastName  string
}

// Service executes identity use cases against a user store.
type Service struct {
	store storage.UserStore
	clock func() time.Time
}

// NewService builds an identity service from a user store.
func NewService(store storage.UserStore, cfg Config) *Service {
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	return &Service{store: store, clock: clock}
}

// CreateUser registers one user. The identifier is derived from the email,
// so a second registration with the same email fails with
// storage.ErrEmailTaken rather than minting a new identity.
func (s *Service) CreateUser(ctx context.Context, input CreateUserInput) (domain.User, error) {
	if s == nil {
		return domain.User{}, ErrServiceNotConfigured
	}
	if s.store == nil {
		return domain.User{}, ErrStoreNotConfigured
	}

	user, err := domain.NewUser(domain.NewUserAttrs{
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}, s.clock().UTC())
	if err != nil {
		return domain.User{}, err
	}

	if err := s.store.InsertUser(ctx, toRecord(user)); err != nil {
		return domain.User{}, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

// GetUser returns one user by its canonical UUID text.
func (s *Service) GetUser(ctx context.Context, id string) (domain.User, error) {
	if s == nil {
		return domain.User{}, ErrServiceNotConfigured
	}
	if s.store == nil {
		return domain.User{}, ErrStoreNotConfigured
	}

	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return domain.User{}, ErrInvalidUserID
	}

	record, err := s.store.GetUser(ctx, parsed.String())
	if err != nil {
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}
	return fromRecord(record)
}

// toRecord flattens a domain user into its storage record.
func toRecord(user domain.User) storage.User {
	return storage.User{
		ID:        user.ID.String(),
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// fromRecord rehydrates a storage record, re-verifying the derived ID.
func fromRecord(record storage.User) (domain.User, error) {
	id, err := uuid.Parse(record.ID)
	if err != nil {
		return domain.User{}, fmt.Errorf("stored user id: %w", err)
	}
	return domain.LoadUser(domain.UserAttrs{
		ID:        id,
		Email:     record.Email,
		FirstName: record.FirstName,
		LastName:  record.LastName,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	})
}
