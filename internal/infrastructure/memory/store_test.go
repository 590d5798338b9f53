package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/custodia-api/internal/domain"
	"github.com/jhoicas/custodia-api/internal/domain/entity"
	"github.com/jhoicas/custodia-api/internal/domain/repository"
	"github.com/jhoicas/custodia-api/internal/infrastructure/memory"
)

func seedAsset(t *testing.T, store *memory.Store, id, serial string) {
	t.Helper()
	now := time.Now()
	require.NoError(t, store.Assets().Create(context.Background(), &entity.Asset{
		ID: id, SerialNumber: serial, CategoryID: "cat-1",
		Condition: entity.ConditionServiceable, EntryDate: now,
		CurrentLocation: entity.Warehouse(), Version: 1,
		IsActive: true, CreatedAt: now, UpdatedAt: now,
	}))
}

// El compare-and-swap del cache rechaza versiones desactualizadas.
func TestAssetRepo_UpdateLocationCAS(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	seedAsset(t, store, "a-1", "SN-1")

	require.NoError(t, store.Assets().UpdateLocation(ctx, "a-1", entity.AtUnit("u-1", ""), 1))

	a, err := store.Assets().GetByID(ctx, "a-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), a.Version)
	assert.Equal(t, "u-1", a.CurrentLocation.UnitID)

	// La misma versión ya no sirve: alguien más escribió primero.
	err = store.Assets().UpdateLocation(ctx, "a-1", entity.Warehouse(), 1)
	assert.ErrorIs(t, err, domain.ErrConcurrentModification)

	err = store.Assets().UpdateLocation(ctx, "no-existe", entity.Warehouse(), 1)
	assert.ErrorIs(t, err, domain.ErrAssetNotFound)
}

// El runner revierte activos y ledger completos cuando el callback falla.
func TestTxRunner_RollbackRestauraSnapshot(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	seedAsset(t, store, "a-1", "SN-1")

	boom := errors.New("fallo simulado")
	err := store.Tx().Run(ctx, func(assetRepo repository.AssetRepository, transferRepo repository.TransferRepository) error {
		require.NoError(t, transferRepo.Create(ctx, &entity.Transfer{
			ID: "t-1", AssetID: "a-1", Direction: entity.DirectionWarehouseToUnit,
			Source: entity.Warehouse(), Target: entity.AtUnit("u-1", ""),
			Timestamp: time.Now(), CreatedAt: time.Now(),
		}))
		require.NoError(t, assetRepo.UpdateLocation(ctx, "a-1", entity.AtUnit("u-1", ""), 1))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	history, err := store.Transfers().ListByAsset(ctx, "a-1")
	require.NoError(t, err)
	assert.Empty(t, history, "el rollback debe descartar el append")

	a, err := store.Assets().GetByID(ctx, "a-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), a.Version, "el rollback debe restaurar la versión")
	assert.True(t, a.CurrentLocation.IsWarehouse())
}

// El update de campos editables preserva serie, ubicación y versión almacenadas.
func TestAssetRepo_UpdatePreservaCamposDerivados(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	seedAsset(t, store, "a-1", "SN-1")
	require.NoError(t, store.Assets().UpdateLocation(ctx, "a-1", entity.AtUnit("u-1", "sala"), 1))

	a, err := store.Assets().GetByID(ctx, "a-1")
	require.NoError(t, err)
	a.Brand = "HP"
	a.SerialNumber = "SN-HACKED"
	a.CurrentLocation = entity.Warehouse()
	a.Version = 99
	require.NoError(t, store.Assets().Update(ctx, a))

	stored, err := store.Assets().GetByID(ctx, "a-1")
	require.NoError(t, err)
	assert.Equal(t, "HP", stored.Brand)
	assert.Equal(t, "SN-1", stored.SerialNumber, "la serie no se actualiza por Update")
	assert.Equal(t, "u-1", stored.CurrentLocation.UnitID, "la ubicación solo cambia vía UpdateLocation")
	assert.Equal(t, int64(2), stored.Version)
}

func TestTransferRepo_ListPorDireccion(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	base := time.Now()
	for i, dir := range []string{
		entity.DirectionWarehouseToUnit,
		entity.DirectionUnitToUnit,
		entity.DirectionUnitToWarehouse,
	} {
		require.NoError(t, store.Transfers().Create(ctx, &entity.Transfer{
			ID: string(rune('a' + i)), AssetID: "a-1", Direction: dir,
			Timestamp: base.Add(time.Duration(i) * time.Second), CreatedAt: base,
		}))
	}

	list, total, err := store.Transfers().List(ctx, entity.DirectionUnitToUnit, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, entity.DirectionUnitToUnit, list[0].Direction)

	list, total, err = store.Transfers().List(ctx, "", 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, list, 2)
	assert.Equal(t, entity.DirectionUnitToWarehouse, list[0].Direction, "más reciente primero")
}
