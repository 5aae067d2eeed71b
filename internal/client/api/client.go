// Package api wraps the two REST backends (resource API and auth API) behind
// a single client interface: JSON bodies, bearer-token authorization and
// centralized response handling.
package api

import (
	"context"

	"github.com/Revolutionnnn/gestor-ia/internal/client/models"
)

// Client is the full surface of backend operations. Each method is a thin
// wrapper over one endpoint; failures arrive as a single error value with no
// automatic retry.
type Client interface {
	// Auth API.
	Register(ctx context.Context, email, password, fullName string) (*models.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)

	// Public product endpoints.
	ListPublic(ctx context.Context) ([]*models.Product, error)
	GetPublic(ctx context.Context, id string) (*models.Product, error)
	Sell(ctx context.Context, id string) (*models.SellResult, error)

	// Admin product endpoints (authenticated).
	ListAll(ctx context.Context) ([]*models.Product, error)
	Get(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, payload models.ProductPayload) (*models.Product, error)
	Update(ctx context.Context, id string, payload models.ProductPayload) (*models.Product, error)
	Delete(ctx context.Context, id string) error
	Activate(ctx context.Context, id string) (*models.Product, error)
	Deactivate(ctx context.Context, id string) (*models.Product, error)
}

// SessionTokens is the slice of the session store the client needs: where to
// source the bearer token and whom to notify when the backend rejects it.
type SessionTokens interface {
	Token() string
	HandleUnauthorized()
}
