// Package products defines the product collection repository: one contract,
// two backings. The local implementation keeps the whole collection as a
// JSON blob in the persistence adapter; the remote one delegates every
// operation to the resource API. Controllers never know which one they got.
package products

import (
	"context"
	"errors"

	"github.com/Revolutionnnn/gestor-ia/internal/client/models"
)

var ErrOutOfStock = errors.New("Stock insuficiente")

// Repository owns the durable product collection.
//
// Create assigns a fresh id and creation timestamp regardless of the input.
// Update merges the payload over the existing record, preserving id and
// createdAt, and re-normalizes the rest. SetActive flips only the activation
// flag. Inputs are untrusted partial records; outputs are always canonical.
type Repository interface {
	ListPublic(ctx context.Context) ([]*models.Product, error)
	GetPublic(ctx context.Context, id string) (*models.Product, error)
	ListAll(ctx context.Context) ([]*models.Product, error)
	Get(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, raw *models.RawProduct) (*models.Product, error)
	Update(ctx context.Context, id string, raw *models.RawProduct) (*models.Product, error)
	Delete(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string, active bool) (*models.Product, error)
	Sell(ctx context.Context, id string) (*models.SellResult, error)
}
