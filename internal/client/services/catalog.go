// Package services holds the view logic of the two fronts: the public
// catalog derivations and the admin orchestration. Both sit on a product
// repository and never touch transport or storage directly.
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/Revolutionnnn/gestor-ia/internal/client/models"
	"github.com/Revolutionnnn/gestor-ia/internal/client/repositories/products"
	"github.com/Revolutionnnn/gestor-ia/internal/common"
	"github.com/Revolutionnnn/gestor-ia/internal/logging"
)

// AllCategories is the sentinel facet value matching every category.
const AllCategories = "all"

// ErrLoadProducts is the generic user-facing message for a failed catalog
// fetch; the underlying cause goes to the log, not the user.
var ErrLoadProducts = errors.New("No se pudieron cargar los productos")

// Categories derives the facet list: distinct non-empty categories in
// first-seen order, prefixed with the "all" sentinel.
func Categories(list []*models.Product) []string {
	out := []string{AllCategories}
	seen := map[string]struct{}{}
	for _, p := range list {
		c := strings.TrimSpace(p.Category)
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// Filter narrows the collection by a free-text term and a category facet.
// The term matches case-insensitively against name or description; an empty
// term matches everything. The category must match exactly unless it is the
// "all" sentinel. Order is preserved.
func Filter(list []*models.Product, term, category string) []*models.Product {
	needle := strings.ToLower(strings.TrimSpace(term))

	out := make([]*models.Product, 0, len(list))
	for _, p := range list {
		matchesSearch := needle == "" ||
			strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle)

		c := strings.TrimSpace(p.Category)
		matchesCategory := category == AllCategories || category == "" || (c != "" && c == category)

		if matchesSearch && matchesCategory {
			out = append(out, p)
		}
	}
	return out
}

// CatalogService is the public-view controller: it loads the active product
// collection and derives filtered views over it.
type CatalogService struct {
	repo products.Repository
	log  logging.Logger
}

func NewCatalogService(repo products.Repository, log logging.Logger) *CatalogService {
	return &CatalogService{repo: repo, log: log}
}

// Browse fetches the public collection and returns the filtered view plus
// the facet list for the whole (unfiltered) collection.
func (s *CatalogService) Browse(ctx context.Context, term, category string) ([]*models.Product, []string, error) {
	list, err := s.repo.ListPublic(ctx)
	if err != nil {
		if s.log != nil {
			s.log.Error(ctx, "error fetching products", "error", err)
		}
		if errors.Is(err, common.ErrSessionExpired) {
			return nil, nil, err
		}
		return nil, nil, ErrLoadProducts
	}
	return Filter(list, term, category), Categories(list), nil
}

// Get returns one active product by id.
func (s *CatalogService) Get(ctx context.Context, id string) (*models.Product, error) {
	p, err := s.repo.GetPublic(ctx, id)
	if err != nil {
		if s.log != nil {
			s.log.Error(ctx, "error fetching product", "id", id, "error", err)
		}
		return nil, err
	}
	return p, nil
}

// Sell sells one unit of a product. Requires an authenticated session in
// the API variant; errors carry the backend detail verbatim.
func (s *CatalogService) Sell(ctx context.Context, id string) (*models.SellResult, error) {
	result, err := s.repo.Sell(ctx, id)
	if err != nil {
		if s.log != nil {
			s.log.Error(ctx, "error selling product", "id", id, "error", err)
		}
		return nil, err
	}
	return result, nil
}
