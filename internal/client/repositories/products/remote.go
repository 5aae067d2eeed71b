package products

import (
	"context"

	"github.com/Revolutionnnn/gestor-ia/internal/client/api"
	"github.com/Revolutionnnn/gestor-ia/internal/client/models"
)

// RemoteRepository delegates the collection to the resource API. It holds no
// product state of its own: correctness favors a fresh read over stale
// derived state, so callers re-list after every mutation.
type RemoteRepository struct {
	client api.Client
}

func NewRemoteRepository(client api.Client) *RemoteRepository {
	return &RemoteRepository{client: client}
}

func (r *RemoteRepository) ListPublic(ctx context.Context) ([]*models.Product, error) {
	return r.client.ListPublic(ctx)
}

func (r *RemoteRepository) GetPublic(ctx context.Context, id string) (*models.Product, error) {
	return r.client.GetPublic(ctx, id)
}

func (r *RemoteRepository) ListAll(ctx context.Context) ([]*models.Product, error) {
	return r.client.ListAll(ctx)
}

func (r *RemoteRepository) Get(ctx context.Context, id string) (*models.Product, error) {
	return r.client.Get(ctx, id)
}

// Create normalizes the untrusted input locally before building the write
// payload; the backend assigns the authoritative id and timestamp.
func (r *RemoteRepository) Create(ctx context.Context, raw *models.RawProduct) (*models.Product, error) {
	in := *raw
	in.ID = ""
	in.CreatedAt = ""
	in.CreatedTS = ""
	return r.client.Create(ctx, models.PayloadFrom(models.Normalize(&in)))
}

func (r *RemoteRepository) Update(ctx context.Context, id string, raw *models.RawProduct) (*models.Product, error) {
	in := *raw
	in.ID = id
	return r.client.Update(ctx, id, models.PayloadFrom(models.Normalize(&in)))
}

func (r *RemoteRepository) Delete(ctx context.Context, id string) error {
	return r.client.Delete(ctx, id)
}

// SetActive uses the dedicated activate/deactivate calls so only the flag
// travels over the wire.
func (r *RemoteRepository) SetActive(ctx context.Context, id string, active bool) (*models.Product, error) {
	if active {
		return r.client.Activate(ctx, id)
	}
	return r.client.Deactivate(ctx, id)
}

func (r *RemoteRepository) Sell(ctx context.Context, id string) (*models.SellResult, error) {
	return r.client.Sell(ctx, id)
}
