package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Revolutionnnn/gestor-ia/internal/client/models"
	"github.com/Revolutionnnn/gestor-ia/internal/client/repositories/products"
	"github.com/Revolutionnnn/gestor-ia/internal/common"
	"github.com/Revolutionnnn/gestor-ia/internal/logging"
)

// Stats are the aggregate inventory figures recomputed on every collection
// change.
type Stats struct {
	TotalProducts  int
	TotalStock     int
	InventoryValue float64
	Highlighted    int
	Active         int
}

// ComputeStats derives the aggregates: total unit count, summed inventory
// value (price × stock per item) and highlighted/active counters.
func ComputeStats(list []*models.Product) Stats {
	s := Stats{TotalProducts: len(list)}
	for _, p := range list {
		s.TotalStock += p.Stock
		s.InventoryValue += p.Price * float64(p.Stock)
		if p.Highlight {
			s.Highlighted++
		}
		if p.IsActive {
			s.Active++
		}
	}
	return s
}

// AdminService orchestrates the dashboard mutations. Every mutating
// operation is immediately followed by a full collection refresh; nothing is
// merged optimistically into the cached view.
type AdminService struct {
	repo products.Repository
	log  logging.Logger

	mu         sync.Mutex
	collection []*models.Product
	stats      Stats
	editingID  string
}

func NewAdminService(repo products.Repository, log logging.Logger) *AdminService {
	return &AdminService{repo: repo, log: log}
}

// Refresh re-reads the full collection and recomputes the stats.
func (s *AdminService) Refresh(ctx context.Context) ([]*models.Product, error) {
	list, err := s.repo.ListAll(ctx)
	if err != nil {
		if s.log != nil {
			s.log.Error(ctx, "error fetching products", "error", err)
		}
		if errors.Is(err, common.ErrSessionExpired) {
			return nil, err
		}
		return nil, ErrLoadProducts
	}

	s.mu.Lock()
	s.collection = list
	s.stats = ComputeStats(list)
	s.mu.Unlock()

	return list, nil
}

// Products returns the last refreshed collection.
func (s *AdminService) Products() []*models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.Product, len(s.collection))
	copy(out, s.collection)
	return out
}

func (s *AdminService) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// StartEditing marks a record as the edit in progress.
func (s *AdminService) StartEditing(id string) {
	s.mu.Lock()
	s.editingID = id
	s.mu.Unlock()
}

func (s *AdminService) EditingID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editingID
}

func (s *AdminService) CancelEditing() {
	s.StartEditing("")
}

func (s *AdminService) Create(ctx context.Context, raw *models.RawProduct) error {
	if _, err := s.repo.Create(ctx, raw); err != nil {
		return s.fail(ctx, "Error al crear el producto", err)
	}
	_, err := s.Refresh(ctx)
	return err
}

// Update merges the payload over the stored record and clears the edit
// pointer on success.
func (s *AdminService) Update(ctx context.Context, id string, raw *models.RawProduct) error {
	if _, err := s.repo.Update(ctx, id, raw); err != nil {
		return s.fail(ctx, "Error al actualizar el producto", err)
	}

	s.mu.Lock()
	if s.editingID == id {
		s.editingID = ""
	}
	s.mu.Unlock()

	_, err := s.Refresh(ctx)
	return err
}

// Delete removes the record; if it was mid-edit, the edit pointer is
// cleared so the UI does not keep a form open over a ghost.
func (s *AdminService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.fail(ctx, "Error al eliminar el producto", err)
	}

	s.mu.Lock()
	if s.editingID == id {
		s.editingID = ""
	}
	s.mu.Unlock()

	_, err := s.Refresh(ctx)
	return err
}

// ToggleActive flips the activation flag through the dedicated call. The
// current state is read from the repository, not the cached collection, so
// the toggle works before any refresh and never acts on a stale flag.
func (s *AdminService) ToggleActive(ctx context.Context, id string) error {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return s.fail(ctx, "Error al cambiar el estado del producto", err)
	}

	if _, err := s.repo.SetActive(ctx, id, !current.IsActive); err != nil {
		return s.fail(ctx, "Error al cambiar el estado del producto", err)
	}

	_, err = s.Refresh(ctx)
	return err
}

// fail logs the fault and converts it into the user-visible form: session
// expiry passes through untouched (the redirect already happened), domain
// details stay visible behind the generic action message.
func (s *AdminService) fail(ctx context.Context, msg string, err error) error {
	if s.log != nil {
		s.log.Error(ctx, msg, "error", err)
	}
	if errors.Is(err, common.ErrSessionExpired) {
		return err
	}
	return fmt.Errorf("%s: %w", msg, err)
}
