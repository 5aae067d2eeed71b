package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Revolutionnnn/gestor-ia/internal/client/models"
	"github.com/Revolutionnnn/gestor-ia/internal/common"
)

func TestComputeStats(t *testing.T) {
	stats := ComputeStats([]*models.Product{
		{Price: 10, Stock: 3, IsActive: true, Highlight: true},
		{Price: 2.5, Stock: 4, IsActive: true},
		{Price: 100, Stock: 0, IsActive: false, Highlight: true},
	})

	assert.Equal(t, 3, stats.TotalProducts)
	assert.Equal(t, 7, stats.TotalStock)
	assert.Equal(t, 40.0, stats.InventoryValue)
	assert.Equal(t, 2, stats.Highlighted)
	assert.Equal(t, 2, stats.Active)
}

func TestComputeStats_Empty(t *testing.T) {
	assert.Equal(t, Stats{}, ComputeStats(nil))
}

func TestAdminService_Refresh(t *testing.T) {
	repo := &fakeRepo{list: sampleCatalog()}
	s := NewAdminService(repo, nil)

	list, err := s.Refresh(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 4)

	assert.Len(t, s.Products(), 4)
	assert.Equal(t, 4, s.Stats().TotalProducts)
	assert.Equal(t, 3, s.Stats().Active)
}

func TestAdminService_RefreshMapsFetchError(t *testing.T) {
	repo := &fakeRepo{listErr: errors.New("conexión rechazada")}
	s := NewAdminService(repo, nil)

	_, err := s.Refresh(context.Background())
	assert.ErrorIs(t, err, ErrLoadProducts)

	repo.listErr = common.ErrSessionExpired
	_, err = s.Refresh(context.Background())
	assert.ErrorIs(t, err, common.ErrSessionExpired)
}

func TestAdminService_CreateRefreshesCollection(t *testing.T) {
	repo := &fakeRepo{list: sampleCatalog()}
	s := NewAdminService(repo, nil)

	raw := &models.RawProduct{Name: "Nuevo"}
	require.NoError(t, s.Create(context.Background(), raw))

	assert.Same(t, raw, repo.lastCreated)
	assert.Equal(t, 1, repo.listAllCalls, "a successful create refetches the collection")
	assert.Len(t, s.Products(), 4)
}

func TestAdminService_CreateFailure(t *testing.T) {
	repo := &fakeRepo{createErr: errors.New("detalle del backend")}
	s := NewAdminService(repo, nil)

	err := s.Create(context.Background(), &models.RawProduct{Name: "Nuevo"})
	require.Error(t, err)

	assert.Contains(t, err.Error(), "Error al crear el producto")
	assert.Contains(t, err.Error(), "detalle del backend")
	assert.Zero(t, repo.listAllCalls, "no refresh after a failed write")
}

func TestAdminService_UpdateClearsEditPointer(t *testing.T) {
	repo := &fakeRepo{list: sampleCatalog()}
	s := NewAdminService(repo, nil)

	s.StartEditing("p2")
	require.NoError(t, s.Update(context.Background(), "p2", &models.RawProduct{Name: "Editado"}))

	assert.Empty(t, s.EditingID())
	assert.Equal(t, 1, repo.listAllCalls)
}

func TestAdminService_UpdateKeepsUnrelatedEditPointer(t *testing.T) {
	repo := &fakeRepo{list: sampleCatalog()}
	s := NewAdminService(repo, nil)

	s.StartEditing("p1")
	require.NoError(t, s.Update(context.Background(), "p2", &models.RawProduct{Name: "Editado"}))

	assert.Equal(t, "p1", s.EditingID())
}

func TestAdminService_DeleteClearsEditPointer(t *testing.T) {
	repo := &fakeRepo{list: sampleCatalog()}
	s := NewAdminService(repo, nil)

	s.StartEditing("p3")
	require.NoError(t, s.Delete(context.Background(), "p3"))

	assert.Empty(t, s.EditingID())
	assert.Equal(t, 1, repo.listAllCalls)
}

func TestAdminService_DeleteFailureKeepsEditPointer(t *testing.T) {
	repo := &fakeRepo{deleteErr: common.ErrNotFound}
	s := NewAdminService(repo, nil)

	s.StartEditing("p3")
	err := s.Delete(context.Background(), "p3")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Error al eliminar el producto")
	assert.Equal(t, "p3", s.EditingID())
}

func TestAdminService_ToggleActiveFlipsCurrentState(t *testing.T) {
	repo := &fakeRepo{list: sampleCatalog()}
	s := NewAdminService(repo, nil)

	_, err := s.Refresh(context.Background())
	require.NoError(t, err)

	// p1 is active, so the toggle must deactivate
	require.NoError(t, s.ToggleActive(context.Background(), "p1"))
	assert.Equal(t, "p1", repo.lastActiveID)
	assert.False(t, repo.lastActive)

	// p4 is inactive, so the toggle must activate
	require.NoError(t, s.ToggleActive(context.Background(), "p4"))
	assert.Equal(t, "p4", repo.lastActiveID)
	assert.True(t, repo.lastActive)
}

func TestAdminService_ToggleActiveWithoutPriorRefresh(t *testing.T) {
	repo := &fakeRepo{list: sampleCatalog()}
	s := NewAdminService(repo, nil)

	// no Refresh first: the current state must come from the repository
	require.NoError(t, s.ToggleActive(context.Background(), "p1"))

	assert.Equal(t, "p1", repo.lastActiveID)
	assert.False(t, repo.lastActive)
}

func TestAdminService_ToggleActiveUnknownID(t *testing.T) {
	repo := &fakeRepo{list: sampleCatalog()}
	s := NewAdminService(repo, nil)

	err := s.ToggleActive(context.Background(), "no-existe")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Error al cambiar el estado del producto")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestAdminService_SessionExpiryPassesThrough(t *testing.T) {
	repo := &fakeRepo{createErr: common.ErrSessionExpired}
	s := NewAdminService(repo, nil)

	err := s.Create(context.Background(), &models.RawProduct{Name: "Nuevo"})
	assert.Equal(t, common.ErrSessionExpired, err)
}
