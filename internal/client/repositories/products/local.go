package products

import (
	"context"
	"sync"

	"github.com/Revolutionnnn/gestor-ia/internal/client/models"
	"github.com/Revolutionnnn/gestor-ia/internal/client/storage"
	"github.com/Revolutionnnn/gestor-ia/internal/common"
	"github.com/Revolutionnnn/gestor-ia/internal/logging"
)

// lowStockThreshold mirrors the backend default for the local variant's
// sell bookkeeping.
const lowStockThreshold = 10

// LocalRepository keeps the collection in memory and persists it as a single
// JSON blob on every change. On startup it restores the stored collection,
// normalizing every record; an empty or unreadable store gets the seed
// catalog.
type LocalRepository struct {
	store storage.Store
	log   logging.Logger

	mu       sync.Mutex
	products []*models.Product
}

func NewLocalRepository(store storage.Store, log logging.Logger) *LocalRepository {
	r := &LocalRepository{store: store, log: log}

	var stored []*models.RawProduct
	if store != nil {
		store.Load(common.ProductsStorageKey, &stored)
	}

	for _, raw := range stored {
		if p := models.Normalize(raw); p != nil {
			r.products = append(r.products, p)
		}
	}

	if len(r.products) == 0 {
		for _, raw := range seedProducts() {
			r.products = append(r.products, models.Normalize(raw))
		}
		r.persist(context.Background())
	}

	return r
}

// persist writes the whole collection; storage faults are logged and
// swallowed, the in-memory state stays authoritative for the session.
func (r *LocalRepository) persist(ctx context.Context) {
	if r.store == nil {
		return
	}
	if err := r.store.Save(common.ProductsStorageKey, r.products); err != nil && r.log != nil {
		r.log.Warn(ctx, "error persisting products", "error", err)
	}
}

func (r *LocalRepository) snapshot() []*models.Product {
	out := make([]*models.Product, len(r.products))
	copy(out, r.products)
	return out
}

func (r *LocalRepository) ListPublic(ctx context.Context) ([]*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*models.Product, 0, len(r.products))
	for _, p := range r.products {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

// GetPublic only sees active products, like the public list.
func (r *LocalRepository) GetPublic(ctx context.Context, id string) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.products {
		if p.ID == id && p.IsActive {
			return p, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *LocalRepository) ListAll(ctx context.Context) ([]*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot(), nil
}

func (r *LocalRepository) Get(ctx context.Context, id string) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, common.ErrNotFound
}

// Create normalizes the payload with a fresh id and creation timestamp and
// prepends the record, newest first.
func (r *LocalRepository) Create(ctx context.Context, raw *models.RawProduct) (*models.Product, error) {
	in := *raw
	in.ID = ""
	in.CreatedAt = ""
	in.CreatedTS = ""

	p := models.Normalize(&in)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = append([]*models.Product{p}, r.products...)
	r.persist(ctx)

	return p, nil
}

// Update merges the payload over the stored record: fields the payload omits
// keep their stored value, id and createdAt always come from the existing
// entry, and the merged result re-normalizes.
func (r *LocalRepository) Update(ctx context.Context, id string, raw *models.RawProduct) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.products {
		if existing.ID != id {
			continue
		}

		p := models.Normalize(models.Merge(existing, raw))
		r.products[i] = p
		r.persist(ctx)
		return p, nil
	}

	return nil, common.ErrNotFound
}

func (r *LocalRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			r.persist(ctx)
			return nil
		}
	}
	return common.ErrNotFound
}

func (r *LocalRepository) SetActive(ctx context.Context, id string, active bool) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == id {
			updated := *p
			updated.IsActive = active
			r.products[i] = &updated
			r.persist(ctx)
			return &updated, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *LocalRepository) Sell(ctx context.Context, id string) (*models.SellResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID != id {
			continue
		}
		if p.Stock <= 0 {
			return nil, ErrOutOfStock
		}

		updated := *p
		updated.Stock--
		r.products[i] = &updated
		r.persist(ctx)

		return &models.SellResult{
			ID:                updated.ID,
			Name:              updated.Name,
			Stock:             updated.Stock,
			LowStockAlertSent: updated.Stock < lowStockThreshold,
		}, nil
	}
	return nil, common.ErrNotFound
}
