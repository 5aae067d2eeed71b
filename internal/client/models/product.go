// Package models defines the canonical product entity, the untrusted input
// shape accepted at system boundaries, and the normalization rules between
// the two.
package models

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cast"
)

// Defaults substituted by Normalize for absent fields.
const (
	DefaultName        = "Nuevo producto"
	DefaultDescription = "Describe tu producto para destacar beneficios."
	DefaultCategory    = "General"
)

// Product is the canonical, fully-normalized product record. Internal code
// only ever sees this shape; payload aliases are resolved by Normalize at
// the boundary.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Stock       int      `json:"stock"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	IsActive    bool     `json:"is_active"`
	Highlight   bool     `json:"highlight"`
	Cover       string   `json:"cover,omitempty"`
	CreatedAt   string   `json:"createdAt"`
}

// SellResult is the backend's answer to selling one unit: the remaining
// stock and whether a low-stock alert was triggered.
type SellResult struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Stock             int    `json:"stock"`
	LowStockAlertSent bool   `json:"low_stock_alert_sent"`
}

// RawProduct is a partial, untrusted product record as it arrives from a
// form, a stored blob or an API response. Price, stock and tag fields may
// carry arbitrary JSON types; tags/keywords and cover/image_url are legacy
// alias pairs, as are createdAt/created_at.
type RawProduct struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       any    `json:"price"`
	Stock       any    `json:"stock"`
	Category    string `json:"category"`
	Tags        any    `json:"tags"`
	Keywords    any    `json:"keywords"`
	Status      string `json:"status"`
	IsActive    *bool  `json:"is_active"`
	Highlight   *bool  `json:"highlight"`
	Cover       string `json:"cover"`
	ImageURL    string `json:"image_url"`
	CreatedAt   string `json:"createdAt"`
	CreatedTS   string `json:"created_at"`
}

// Raw converts a canonical product back into the input shape, e.g. to merge
// an update payload over an existing record before re-normalizing.
func (p *Product) Raw() *RawProduct {
	active := p.IsActive
	highlight := p.Highlight
	return &RawProduct{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Category:    p.Category,
		Tags:        p.Tags,
		IsActive:    &active,
		Highlight:   &highlight,
		Cover:       p.Cover,
		CreatedAt:   p.CreatedAt,
	}
}

// Merge overlays a partial payload onto an existing record's input shape:
// fields the payload carries replace the stored value, fields it omits keep
// it. Identity (id, createdAt) always comes from the existing record. The
// result still goes through Normalize.
func Merge(existing *Product, raw *RawProduct) *RawProduct {
	in := existing.Raw()
	if raw == nil {
		return in
	}

	if raw.Name != "" {
		in.Name = raw.Name
	}
	if raw.Description != "" {
		in.Description = raw.Description
	}
	if raw.Price != nil {
		in.Price = raw.Price
	}
	if raw.Stock != nil {
		in.Stock = raw.Stock
	}
	if raw.Category != "" {
		in.Category = raw.Category
	}
	if raw.Tags != nil || raw.Keywords != nil {
		in.Tags = raw.Tags
		in.Keywords = raw.Keywords
	}
	if raw.IsActive != nil {
		in.IsActive = raw.IsActive
	} else if raw.Status != "" {
		// a status string decides activation only when no boolean came along
		in.IsActive = nil
		in.Status = raw.Status
	}
	if raw.Highlight != nil {
		in.Highlight = raw.Highlight
	}
	if cover := raw.Cover; cover != "" {
		in.Cover = cover
	} else if raw.ImageURL != "" {
		in.Cover = raw.ImageURL
	}

	in.ID = existing.ID
	in.CreatedAt = existing.CreatedAt
	in.CreatedTS = ""
	return in
}

// Test seams, in the spirit of an injected id generator and clock.
var (
	newID   = NewProductID
	timeNow = time.Now
)

// NewProductID returns a fresh unique product id: a random UUID, or a
// timestamp-derived value if the random source is exhausted.
func NewProductID() string {
	id, err := uuid.NewRandom()
	if err != nil {
		return fmt.Sprintf("prd-%d", timeNow().UnixMilli())
	}
	return id.String()
}

// Normalize maps an arbitrary partial record to a fully-populated Product.
// It fills defaults, coerces price/stock from whatever type they arrived in,
// resolves field aliases and generates an id when none is present. A nil
// input yields nil. The function has no side effects beyond consuming ids
// from the generator.
//
// Guarantees on the result: price and stock are finite and non-negative,
// tags is never nil, id and createdAt are taken verbatim when provided.
func Normalize(raw *RawProduct) *Product {
	if raw == nil {
		return nil
	}

	id := raw.ID
	if id == "" {
		id = newID()
	}

	createdAt := raw.CreatedAt
	if createdAt == "" {
		createdAt = raw.CreatedTS
	}
	if createdAt == "" {
		createdAt = timeNow().UTC().Format(time.RFC3339)
	}

	cover := raw.Cover
	if cover == "" {
		cover = raw.ImageURL
	}

	p := &Product{
		ID:          id,
		Name:        raw.Name,
		Description: raw.Description,
		Price:       normalizeNumber(raw.Price),
		Stock:       normalizeCount(raw.Stock),
		Category:    raw.Category,
		Tags:        normalizeTags(raw.Tags, raw.Keywords),
		IsActive:    normalizeActive(raw.IsActive, raw.Status),
		Highlight:   raw.Highlight != nil && *raw.Highlight,
		Cover:       cover,
		CreatedAt:   createdAt,
	}

	if p.Name == "" {
		p.Name = DefaultName
	}
	if p.Description == "" {
		p.Description = DefaultDescription
	}
	if p.Category == "" {
		p.Category = DefaultCategory
	}

	return p
}

func normalizeNumber(v any) float64 {
	if v == nil {
		return 0
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}

func normalizeCount(v any) int {
	if v == nil {
		return 0
	}
	n, err := cast.ToIntE(v)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// normalizeTags resolves the tags/keywords alias pair. Sequences are kept
// element-wise; a plain string is treated as a comma-separated keyword list;
// anything else collapses to an empty slice.
func normalizeTags(tags any, keywords any) []string {
	v := tags
	if v == nil {
		v = keywords
	}

	switch t := v.(type) {
	case []string:
		out := make([]string, 0, len(t))
		for _, s := range t {
			if s != "" {
				out = append(out, s)
			}
		}
		return out
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			s, err := cast.ToStringE(item)
			if err != nil || s == "" {
				continue
			}
			out = append(out, s)
		}
		return out
	case string:
		return SplitKeywords(t)
	default:
		return []string{}
	}
}

// SplitKeywords turns a comma-separated keyword string into a clean slice:
// "a, b ,c" becomes ["a","b","c"]. Empty entries are dropped.
func SplitKeywords(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if kw := strings.TrimSpace(part); kw != "" {
			out = append(out, kw)
		}
	}
	return out
}

// normalizeActive resolves the two activation models the deployments used:
// a boolean is_active flag or a tri-state status string. The boolean is
// canonical; a published status maps to true, any other non-empty status to
// false, and a record carrying neither defaults to active.
func normalizeActive(isActive *bool, status string) bool {
	if isActive != nil {
		return *isActive
	}
	switch status {
	case "":
		return true
	case "Publicado", "Published", "Activo":
		return true
	default:
		return false
	}
}
