// Package rest exposes the identity service as a JSON HTTP API.
package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	platformid "github.com/identitylab/identify/internal/platform/id"
	"github.com/identitylab/identify/internal/services/identity/app"
	"github.com/identitylab/identify/internal/services/identity/domain"
	"github.com/identitylab/identify/internal/services/identity/storage"
)

const requestIDHeader = "X-Request-Id"

// Service defines identity use cases consumed by this API.
type Service interface {
	CreateUser(ctx context.Context, input app.CreateUserInput) (domain.User, error)
	GetUser(ctx context.Context, id string) (domain.User, error)
}

// NewHandler wires identity routes into a request-scoped handler.
func NewHandler(service Service) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/users", func(w http.ResponseWriter, r *http.Request) {
		handleCreateUser(w, r, service)
	})
	mux.HandleFunc("GET /v1/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		handleGetUser(w, r, service)
	})
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return withRequestID(mux)
}

// withRequestID tags every response with a request identifier, minting one
// when the caller did not send any.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := strings.TrimSpace(r.Header.Get(requestIDHeader))
		if requestID == "" {
			minted, err := platformid.NewID()
			if err == nil {
				requestID = minted
			}
		}
		if requestID != "" {
			w.Header().Set(requestIDHeader, requestID)
		}
		next.ServeHTTP(w, r)
	})
}

type createUserRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
}

type userResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func handleCreateUser(w http.ResponseWriter, r *http.Request, service Service) {
	if service == nil {
		writeError(w, http.StatusInternalServerError, "service unavailable")
		return
	}
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	user, err := service.CreateUser(r.Context(), app.CreateUserInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toUserResponse(user))
}

func handleGetUser(w http.ResponseWriter, r *http.Request, service Service) {
	if service == nil {
		writeError(w, http.StatusInternalServerError, "service unavailable")
		return
	}
	user, err := service.GetUser(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

// writeServiceError maps use-case errors onto HTTP statuses without leaking
// internals to the caller.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrEmailRequired),
		errors.Is(err, domain.ErrFirstNameRequired),
		errors.Is(err, app.ErrInvalidUserID):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, storage.ErrEmailTaken):
		writeError(w, http.StatusConflict, "email is already taken")
	case errors.Is(err, storage.ErrNotFound):
		writeError(w, http.StatusNotFound, "user not found")
	default:
		log.Printf("identity api: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func toUserResponse(user domain.User) userResponse {
	return userResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CreatedAt: user.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: user.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("identity api: encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
