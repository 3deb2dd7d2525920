package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/identitylab/identify/internal/services/identity/domain"
	"github.com/identitylab/identify/internal/services/identity/storage"
)

type memoryStore struct {
	users   map[string]storage.User
	byEmail map[string]struct{}
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:   make(map[string]storage.User),
		byEmail: make(map[string]struct{}),
	}
}

func (m *memoryStore) InsertUser(_ context.Context, user storage.User) error {
	if _, taken := m.byEmail[user.Email]; taken {
		return storage.ErrEmailTaken
	}
	if _, taken := m.users[user.ID]; taken {
		return storage.ErrEmailTaken
	}
	m.users[user.ID] = user
	m.byEmail[user.Email] = struct{}{}
	return nil
}

func (m *memoryStore) GetUser(_ context.Context, id string) (storage.User, error) {
	user, ok := m.users[id]
	if !ok {
		return storage.User{}, storage.ErrNotFound
	}
	return user, nil
}

func fixedClock(now time.Time) func() time.Time {
	return func() time.Time { return now }
}

func TestCreateUserPersistsDerivedIdentity(t *testing.T) {
	now := time.Date(2026, time.March, 3, 8, 0, 0, 0, time.UTC)
	service := NewService(newMemoryStore(), Config{Clock: fixedClock(now)})

	user, err := service.CreateUser(context.Background(), CreateUserInput{
		Email:     "ada@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if user.ID != domain.UserID("ada@example.com") {
		t.Fatalf("id = %s, want derivation of email", user.ID)
	}
	if !user.CreatedAt.Equal(now) {
		t.Fatalf("created_at = %v, want %v", user.CreatedAt, now)
	}

	got, err := service.GetUser(context.Background(), user.ID.String())
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if got.Email != "ada@example.com" || got.FirstName != "Ada" {
		t.Fatalf("unexpected round trip: %+v", got)
	}
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	service := NewService(newMemoryStore(), Config{})
	input := CreateUserInput{Email: "grace@example.com", FirstName: "Grace"}

	if _, err := service.CreateUser(context.Background(), input); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := service.CreateUser(context.Background(), input)
	if !errors.Is(err, storage.ErrEmailTaken) {
		t.Fatalf("duplicate create error = %v, want %v", err, storage.ErrEmailTaken)
	}
}

func TestCreateUserValidatesInput(t *testing.T) {
	service := NewService(newMemoryStore(), Config{})

	_, err := service.CreateUser(context.Background(), CreateUserInput{FirstName: "Ada"})
	if !errors.Is(err, domain.ErrEmailRequired) {
		t.Fatalf("error = %v, want %v", err, domain.ErrEmailRequired)
	}
	_, err = service.CreateUser(context.Background(), CreateUserInput{Email: "ada@example.com"})
	if !errors.Is(err, domain.ErrFirstNameRequired) {
		t.Fatalf("error = %v, want %v", err, domain.ErrFirstNameRequired)
	}
}

func TestGetUserRejectsMalformedID(t *testing.T) {
	service := NewService(newMemoryStore(), Config{})

	_, err := service.GetUser(context.Background(), "not-a-uuid")
	if !errors.Is(err, ErrInvalidUserID) {
		t.Fatalf("error = %v, want %v", err, ErrInvalidUserID)
	}
}

func TestGetUserPropagatesNotFound(t *testing.T) {
	service := NewService(newMemoryStore(), Config{})

	_, err := service.GetUser(context.Background(), domain.UserID("nobody@example.com").String())
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("error = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestServiceRequiresStore(t *testing.T) {
	service := NewService(nil, Config{})

	if _, err := service.CreateUser(context.Background(), CreateUserInput{}); !errors.Is(err, ErrStoreNotConfigured) {
		t.Fatalf("error = %v, want %v", err, ErrStoreNotConfigured)
	}
	if _, err := service.GetUser(context.Background(), ""); !errors.Is(err, ErrStoreNotConfigured) {
		t.Fatalf("error = %v, want %v", err, ErrStoreNotConfigured)
	}
}
