package products

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Revolutionnnn/gestor-ia/internal/client/models"
	"github.com/Revolutionnnn/gestor-ia/internal/common"
)

type memStore struct {
	data map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (m *memStore) Load(key string, out any) bool {
	raw, ok := m.data[key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

func (m *memStore) Save(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = raw
	return nil
}

func (m *memStore) Remove(key string) error {
	delete(m.data, key)
	return nil
}

func (m *memStore) Close() error { return nil }

func TestLocalRepository_SeedsEmptyStore(t *testing.T) {
	store := newMemStore()
	r := NewLocalRepository(store, nil)

	list, err := r.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 6)
	assert.Equal(t, "prd-neo-001", list[0].ID)
	assert.True(t, list[0].IsActive)

	var persisted []*models.RawProduct
	require.True(t, store.Load(common.ProductsStorageKey, &persisted))
	assert.Len(t, persisted, 6)
}

func TestLocalRepository_RestoresStoredCollection(t *testing.T) {
	store := newMemStore()
	require.NoError(t, store.Save(common.ProductsStorageKey, []*models.RawProduct{
		{ID: "p1", Name: "Guardado", Price: "15", Stock: 2, Status: "Publicado"},
	}))

	r := NewLocalRepository(store, nil)

	list, err := r.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "p1", list[0].ID)
	assert.Equal(t, 15.0, list[0].Price)
}

func TestLocalRepository_CreateAssignsFreshIdentity(t *testing.T) {
	r := NewLocalRepository(newMemStore(), nil)

	p, err := r.Create(context.Background(), &models.RawProduct{
		ID:        "id-del-formulario",
		Name:      "Nuevo",
		CreatedAt: "1999-01-01T00:00:00Z",
		Price:     10,
		Stock:     5,
	})
	require.NoError(t, err)

	assert.NotEqual(t, "id-del-formulario", p.ID)
	assert.NotEqual(t, "1999-01-01T00:00:00Z", p.CreatedAt)

	list, err := r.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 7)
	assert.Equal(t, p.ID, list[0].ID, "new products go first")
}

func TestLocalRepository_UpdatePreservesIdentity(t *testing.T) {
	r := NewLocalRepository(newMemStore(), nil)

	original, err := r.Get(context.Background(), "prd-neo-001")
	require.NoError(t, err)

	p, err := r.Update(context.Background(), "prd-neo-001", &models.RawProduct{
		Name:  "Renombrado",
		Price: "99.99",
		Stock: 7,
	})
	require.NoError(t, err)

	assert.Equal(t, "prd-neo-001", p.ID)
	assert.Equal(t, original.CreatedAt, p.CreatedAt)
	assert.Equal(t, "Renombrado", p.Name)
	assert.Equal(t, 99.99, p.Price)
	assert.Equal(t, 7, p.Stock)
}

func TestLocalRepository_UpdateKeepsOmittedFields(t *testing.T) {
	r := NewLocalRepository(newMemStore(), nil)

	original, err := r.Get(context.Background(), "prd-neo-001")
	require.NoError(t, err)
	require.True(t, original.Highlight)
	require.NotEmpty(t, original.Tags)
	require.NotEmpty(t, original.Cover)

	p, err := r.Update(context.Background(), "prd-neo-001", &models.RawProduct{Name: "Renombrado"})
	require.NoError(t, err)

	assert.Equal(t, "Renombrado", p.Name)
	assert.True(t, p.Highlight)
	assert.Equal(t, original.Tags, p.Tags)
	assert.Equal(t, original.Cover, p.Cover)
	assert.Equal(t, original.Price, p.Price)
	assert.Equal(t, original.Stock, p.Stock)
	assert.Equal(t, original.Description, p.Description)
	assert.Equal(t, original.Category, p.Category)
	assert.True(t, p.IsActive)
}

func TestLocalRepository_UpdateCanDeactivate(t *testing.T) {
	r := NewLocalRepository(newMemStore(), nil)

	inactive := false
	p, err := r.Update(context.Background(), "prd-neo-001", &models.RawProduct{IsActive: &inactive})
	require.NoError(t, err)

	assert.False(t, p.IsActive)
	assert.True(t, p.Highlight, "unrelated fields stay put")
}

func TestLocalRepository_UpdateUnknownID(t *testing.T) {
	r := NewLocalRepository(newMemStore(), nil)

	_, err := r.Update(context.Background(), "no-existe", &models.RawProduct{Name: "X"})
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestLocalRepository_DeleteRemovesExactlyOne(t *testing.T) {
	r := NewLocalRepository(newMemStore(), nil)

	require.NoError(t, r.Delete(context.Background(), "prd-neo-002"))

	list, err := r.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 5)
	for _, p := range list {
		assert.NotEqual(t, "prd-neo-002", p.ID)
	}

	assert.ErrorIs(t, r.Delete(context.Background(), "prd-neo-002"), common.ErrNotFound)
}

func TestLocalRepository_SetActiveHidesFromPublicView(t *testing.T) {
	r := NewLocalRepository(newMemStore(), nil)

	p, err := r.SetActive(context.Background(), "prd-neo-003", false)
	require.NoError(t, err)
	assert.False(t, p.IsActive)

	public, err := r.ListPublic(context.Background())
	require.NoError(t, err)
	assert.Len(t, public, 5)

	_, err = r.GetPublic(context.Background(), "prd-neo-003")
	assert.ErrorIs(t, err, common.ErrNotFound)

	// admin view still sees it
	hidden, err := r.Get(context.Background(), "prd-neo-003")
	require.NoError(t, err)
	assert.False(t, hidden.IsActive)
}

func TestLocalRepository_SellDecrementsStock(t *testing.T) {
	r := NewLocalRepository(newMemStore(), nil)

	result, err := r.Sell(context.Background(), "prd-neo-001")
	require.NoError(t, err)

	assert.Equal(t, "prd-neo-001", result.ID)
	assert.Equal(t, 23, result.Stock)
	assert.False(t, result.LowStockAlertSent)

	p, err := r.Get(context.Background(), "prd-neo-001")
	require.NoError(t, err)
	assert.Equal(t, 23, p.Stock)
}

func TestLocalRepository_SellLowStockAlert(t *testing.T) {
	r := NewLocalRepository(newMemStore(), nil)

	_, err := r.Update(context.Background(), "prd-neo-001", &models.RawProduct{Name: "Uno", Stock: 10})
	require.NoError(t, err)

	result, err := r.Sell(context.Background(), "prd-neo-001")
	require.NoError(t, err)
	assert.Equal(t, 9, result.Stock)
	assert.True(t, result.LowStockAlertSent)
}

func TestLocalRepository_SellOutOfStock(t *testing.T) {
	r := NewLocalRepository(newMemStore(), nil)

	_, err := r.Update(context.Background(), "prd-neo-001", &models.RawProduct{Name: "Uno", Stock: 0})
	require.NoError(t, err)

	_, err = r.Sell(context.Background(), "prd-neo-001")
	assert.ErrorIs(t, err, ErrOutOfStock)

	_, err = r.Sell(context.Background(), "no-existe")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestLocalRepository_ChangesSurviveRestart(t *testing.T) {
	store := newMemStore()

	first := NewLocalRepository(store, nil)
	created, err := first.Create(context.Background(), &models.RawProduct{Name: "Persistente", Price: 5, Stock: 1})
	require.NoError(t, err)
	require.NoError(t, first.Delete(context.Background(), "prd-neo-006"))

	second := NewLocalRepository(store, nil)
	list, err := second.ListAll(context.Background())
	require.NoError(t, err)

	assert.Len(t, list, 6)
	assert.Equal(t, created.ID, list[0].ID)
	for _, p := range list {
		assert.NotEqual(t, "prd-neo-006", p.ID)
	}
}
