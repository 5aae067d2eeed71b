// Package session holds the authenticated-principal state: who is logged in,
// the proof of it, and its persistence across restarts. Two interchangeable
// implementations exist, selected by deployment variant: a credential-check
// store for the local backend and a bearer-token store for the API backend.
package session

import (
	"context"

	"github.com/Revolutionnnn/gestor-ia/internal/client/models"
)

// Store is the single source of truth the UI uses to gate admin surfaces.
//
// Login either establishes and persists a session and reports success, or
// reports failure with a user-facing message and leaves state untouched.
// Logout always clears the persisted session; it never talks to a server.
// There is no refresh or expiry timer; staleness is discovered lazily when
// a subsequent request is rejected.
type Store interface {
	Login(ctx context.Context, email, password string) models.LoginResult
	Register(ctx context.Context, email, password, fullName string) models.LoginResult
	Logout(ctx context.Context)
	IsAuthenticated() bool
	IsAdmin() bool
	CurrentUser() *models.User
}

// Authenticator is the slice of the API client the token store needs:
// credential exchange against the auth backend.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Register(ctx context.Context, email, password, fullName string) (*models.AuthResponse, error)
}
