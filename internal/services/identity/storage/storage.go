// Package storage defines persistence contracts for identity service state.
package storage

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound indicates a requested user record is missing.
	ErrNotFound = errors.New("record not found")
	// ErrEmailTaken indicates a user with the same email already exists.
	ErrEmailTaken = errors.New("email is already taken")
)

// User stores one persisted identity record. IDs are canonical UUID text.
type User struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserStore persists identity user records.
type UserStore interface {
	InsertUser(ctx context.Context, user User) error
	GetUser(ctx context.Context, id string) (User, error)
}
