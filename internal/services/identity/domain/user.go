// Package domain defines the user entity and its deterministic identifier.
package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	platformid "github.com/identitylab/identify/internal/platform/id"
)

// userIDNamespace seeds UUIDv5 derivation for user identifiers. The bytes
// are load-bearing: changing them re-keys every stored user.
var userIDNamespace = uuid.UUID{'i', 'd', 'e', 'n', 't', 'i', 'f', 'y', '-', 'b', 'a', 'c', 'k', 'e', 'n', 'd'}

// userIDKind is the entity discriminator mixed into the derivation name so
// identifiers of different entity kinds never collide on equal fields.
const userIDKind = "UserId"

var (
	// ErrEmailRequired indicates a user email was empty.
	ErrEmailRequired = errors.New("email is required")
	// ErrFirstNameRequired indicates a user first name was empty.
	ErrFirstNameRequired = errors.New("first name is required")
)

// IDMismatchError reports that a stored identifier does not match the one
// derived from the record's own fields, which signals record corruption or a
// derivation scheme change.
type IDMismatchError struct {
	Expected uuid.UUID
	Derived  uuid.UUID
}

// Error returns the identifier mismatch message.
func (e *IDMismatchError) Error() string {
	if e == nil {
		return "user id mismatch"
	}
	return fmt.Sprintf("user id mismatch: expected %s, derived %s", e.Expected, e.Derived)
}

// User is one registered identity. The ID is a pure function of the email,
// so registering the same email twice derives the same identifier.
type User struct {
	ID        uuid.UUID
	Email     string
	FirstName string
	LastName  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUserAttrs carries caller-supplied fields for a new user.
type NewUserAttrs struct {
	Email     string
	FirstName string
	LastName  string
}

// UserAttrs carries a full stored record for rehydration.
type UserAttrs struct {
	ID        uuid.UUID
	Email     string
	FirstName string
	LastName  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserID derives the deterministic identifier for an email address.
func UserID(email string) uuid.UUID {
	return platformid.Deterministic(userIDNamespace, userIDKind, " ID", email)
}

// NewUser builds a user with a derived identifier and now as both
// timestamps.
func NewUser(attrs NewUserAttrs, now time.Time) (User, error) {
	email := strings.TrimSpace(attrs.Email)
	if email == "" {
		return User{}, ErrEmailRequired
	}
	firstName := strings.TrimSpace(attrs.FirstName)
	if firstName == "" {
		return User{}, ErrFirstNameRequired
	}
	now = now.UTC()
	return User{
		ID:        UserID(email),
		Email:     email,
		FirstName: firstName,
		LastName:  strings.TrimSpace(attrs.LastName),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// LoadUser rehydrates a stored user and verifies the stored identifier
// still matches the one derived from the email.
func LoadUser(attrs UserAttrs) (User, error) {
	email := strings.TrimSpace(attrs.Email)
	if email == "" {
		return User{}, ErrEmailRequired
	}
	derived := UserID(email)
	if derived != attrs.ID {
		return User{}, &IDMismatchError{Expected: attrs.ID, Derived: derived}
	}
	return User{
		ID:        attrs.ID,
		Email:     email,
		FirstName: attrs.FirstName,
		LastName:  attrs.LastName,
		CreatedAt: attrs.CreatedAt.UTC(),
		UpdatedAt: attrs.UpdatedAt.UTC(),
	}, nil
}
