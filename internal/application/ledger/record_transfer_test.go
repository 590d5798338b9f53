package ledger_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appledger "github.com/jhoicas/custodia-api/internal/application/ledger"
	"github.com/jhoicas/custodia-api/internal/domain"
	"github.com/jhoicas/custodia-api/internal/domain/entity"
	"github.com/jhoicas/custodia-api/internal/domain/repository"
	"github.com/jhoicas/custodia-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testCategoryID = "00000000-0000-0000-0000-00000000c001"
	testUnitA      = "00000000-0000-0000-0000-0000000000a1"
	testUnitB      = "00000000-0000-0000-0000-0000000000b1"
	testUnitOff    = "00000000-0000-0000-0000-0000000000ff"
	testAssetID    = "00000000-0000-0000-0000-00000000f001"
)

type fixture struct {
	store *memory.Store
	uc    *appledger.RecordTransferUseCase
}

// newFixture arma un almacén en memoria con una categoría, dos unidades
// activas, una desactivada y un activo recién ingresado en bodega.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	now := time.Now()
	require.NoError(t, store.Categories().Create(ctx, &entity.Category{
		ID: testCategoryID, Name: "Portátiles", IsActive: true, CreatedAt: now, UpdatedAt: now,
	}))
	for id, name := range map[string]string{testUnitA: "OPD Norte", testUnitB: "OPD Sur"} {
		require.NoError(t, store.Units().Create(ctx, &entity.OrgUnit{
			ID: id, Name: name, IsActive: true, CreatedAt: now, UpdatedAt: now,
		}))
	}
	require.NoError(t, store.Units().Create(ctx, &entity.OrgUnit{
		ID: testUnitOff, Name: "OPD Cerrada", IsActive: false, CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, store.Assets().Create(ctx, &entity.Asset{
		ID: testAssetID, SerialNumber: "SN-0001", CategoryID: testCategoryID,
		Brand: "Lenovo", Model: "T14", Condition: entity.ConditionServiceable,
		EntryDate: now, CurrentLocation: entity.Warehouse(), Version: 1,
		IsActive: true, CreatedAt: now, UpdatedAt: now,
	}))

	uc := appledger.NewRecordTransferUseCase(
		store.Tx(), store.Assets(), store.Units(), store.Transfers(), nil,
	)
	return &fixture{store: store, uc: uc}
}

func (f *fixture) asset(t *testing.T) *entity.Asset {
	t.Helper()
	a, err := f.store.Assets().GetByID(context.Background(), testAssetID)
	require.NoError(t, err)
	require.NotNil(t, a)
	return a
}

func (f *fixture) history(t *testing.T) []*entity.Transfer {
	t.Helper()
	h, err := f.store.Transfers().ListByAsset(context.Background(), testAssetID)
	require.NoError(t, err)
	return h
}

func toUnit(unitID, specific string) appledger.TransferInput {
	return appledger.TransferInput{
		AssetID: testAssetID, TargetKind: entity.LocationKindUnit,
		TargetUnitID: unitID, SpecificLocation: specific,
	}
}

func toWarehouse() appledger.TransferInput {
	return appledger.TransferInput{AssetID: testAssetID, TargetKind: entity.LocationKindWarehouse}
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo feliz
// ──────────────────────────────────────────────────────────────────────────────

// Ciclo completo: bodega → unidad A → unidad B → bodega. Cada asiento deriva
// su dirección, anexa al ledger y actualiza el cache en la misma transacción.
func TestRecord_CicloCompleto(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.uc.Record(ctx, toUnit(testUnitA, "sala 3"))
	require.NoError(t, err)
	assert.Equal(t, entity.DirectionWarehouseToUnit, first.Direction)
	assert.True(t, first.Source.IsWarehouse(), "el origen del primer movimiento es la bodega")
	assert.Equal(t, testUnitA, first.Target.UnitID)
	assert.Equal(t, "sala 3", first.SpecificLocation)

	asset := f.asset(t)
	assert.Equal(t, testUnitA, asset.CurrentLocation.UnitID, "el cache debe apuntar a la unidad A")
	assert.Equal(t, int64(2), asset.Version, "el CAS debe haber subido la versión")

	second, err := f.uc.Record(ctx, toUnit(testUnitB, "estante 1"))
	require.NoError(t, err)
	assert.Equal(t, entity.DirectionUnitToUnit, second.Direction)
	assert.Equal(t, testUnitA, second.Source.UnitID, "el origen se deriva del historial, no del cliente")

	third, err := f.uc.Record(ctx, toWarehouse())
	require.NoError(t, err)
	assert.Equal(t, entity.DirectionUnitToWarehouse, third.Direction)
	assert.Empty(t, third.SpecificLocation, "la bodega no lleva ubicación específica")

	assert.True(t, f.asset(t).CurrentLocation.IsWarehouse())
	assert.Len(t, f.history(t), 3)
}

// El timestamp por activo es estrictamente creciente aunque el reloj empate.
func TestRecord_TimestampsEstrictamenteCrecientes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a, err := f.uc.Record(ctx, toUnit(testUnitA, ""))
	require.NoError(t, err)
	b, err := f.uc.Record(ctx, toWarehouse())
	require.NoError(t, err)
	c, err := f.uc.Record(ctx, toUnit(testUnitB, ""))
	require.NoError(t, err)

	assert.True(t, b.Timestamp.After(a.Timestamp))
	assert.True(t, c.Timestamp.After(b.Timestamp))
}

// Direction explícita que coincide con la derivada se acepta sin más.
func TestRecord_DireccionExplicitaCoincidente(t *testing.T) {
	f := newFixture(t)
	in := toUnit(testUnitA, "")
	in.Direction = entity.DirectionWarehouseToUnit
	_, err := f.uc.Record(context.Background(), in)
	assert.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Rechazos
// ──────────────────────────────────────────────────────────────────────────────

// Un rechazo nunca toca el ledger ni el cache.
func assertUnchanged(t *testing.T, f *fixture, historyLen int) {
	t.Helper()
	assert.Len(t, f.history(t), historyLen, "el ledger no debe crecer tras un rechazo")
	asset := f.asset(t)
	assert.True(t, asset.CurrentLocation.IsWarehouse(), "el cache no debe cambiar tras un rechazo")
	assert.Equal(t, int64(1), asset.Version)
}

func TestRecord_NoOp_Rechazado(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Record(context.Background(), toWarehouse())
	assert.ErrorIs(t, err, domain.ErrNoOpTransfer, "bodega a bodega es un no-op")
	assertUnchanged(t, f, 0)
}

func TestRecord_MismaUnidad_EsNoOp(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.uc.Record(ctx, toUnit(testUnitA, "sala 1"))
	require.NoError(t, err)

	// Cambiar solo la ubicación específica dentro de la misma unidad no mueve el activo.
	_, err = f.uc.Record(ctx, toUnit(testUnitA, "sala 2"))
	assert.ErrorIs(t, err, domain.ErrNoOpTransfer)
	assert.Len(t, f.history(t), 1)
}

func TestRecord_UnidadInexistente(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Record(context.Background(), toUnit("00000000-0000-0000-0000-000000000bad", ""))
	assert.ErrorIs(t, err, domain.ErrUnknownUnit)
	assertUnchanged(t, f, 0)
}

func TestRecord_UnidadDesactivada(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Record(context.Background(), toUnit(testUnitOff, ""))
	assert.ErrorIs(t, err, domain.ErrUnknownUnit, "una unidad desactivada no recibe activos")
	assertUnchanged(t, f, 0)
}

func TestRecord_ActivoInexistente(t *testing.T) {
	f := newFixture(t)
	in := toUnit(testUnitA, "")
	in.AssetID = "00000000-0000-0000-0000-000000000bad"
	_, err := f.uc.Record(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrAssetNotFound)
}

func TestRecord_DireccionContradice_Rechazada(t *testing.T) {
	f := newFixture(t)
	in := toUnit(testUnitA, "")
	in.Direction = entity.DirectionUnitToUnit // la derivada es WAREHOUSE_TO_UNIT
	_, err := f.uc.Record(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assertUnchanged(t, f, 0)
}

func TestRecord_DestinoUnidadSinID(t *testing.T) {
	f := newFixture(t)
	in := appledger.TransferInput{AssetID: testAssetID, TargetKind: entity.LocationKindUnit}
	_, err := f.uc.Record(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Concurrencia
// ──────────────────────────────────────────────────────────────────────────────

// raceTxRunner intercala una transferencia rival entre la lectura del activo
// y el commit del asiento bajo prueba.
type raceTxRunner struct {
	inner   appledger.TxRunner
	once    sync.Once
	compete func()
}

func (r *raceTxRunner) Run(ctx context.Context, fn func(
	assetRepo repository.AssetRepository,
	transferRepo repository.TransferRepository,
) error) error {
	r.once.Do(r.compete)
	return r.inner.Run(ctx, fn)
}

// Dos transferencias simultáneas sobre el mismo activo: exactamente una gana.
// La perdedora recibe CONCURRENT_MODIFICATION y no deja rastro en el ledger.
func TestRecord_CarreraPerdida_TodoONada(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	rival := appledger.NewRecordTransferUseCase(
		f.store.Tx(), f.store.Assets(), f.store.Units(), f.store.Transfers(), nil,
	)
	runner := &raceTxRunner{inner: f.store.Tx(), compete: func() {
		_, err := rival.Record(ctx, toUnit(testUnitB, ""))
		require.NoError(t, err, "la transferencia rival debe asentarse primero")
	}}
	loser := appledger.NewRecordTransferUseCase(
		runner, f.store.Assets(), f.store.Units(), f.store.Transfers(), nil,
	)

	_, err := loser.Record(ctx, toUnit(testUnitA, ""))
	assert.ErrorIs(t, err, domain.ErrConcurrentModification,
		"la transferencia que perdió la carrera debe rechazarse completa")

	history := f.history(t)
	require.Len(t, history, 1, "solo el asiento ganador debe quedar en el ledger")
	assert.Equal(t, testUnitB, history[0].Target.UnitID)

	asset := f.asset(t)
	assert.Equal(t, testUnitB, asset.CurrentLocation.UnitID, "el cache refleja solo a la ganadora")
	assert.Equal(t, int64(2), asset.Version)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas
// ──────────────────────────────────────────────────────────────────────────────

func TestHistory_OrdenCronologico(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.uc.Record(ctx, toUnit(testUnitA, ""))
	require.NoError(t, err)
	_, err = f.uc.Record(ctx, toUnit(testUnitB, ""))
	require.NoError(t, err)

	items, err := f.uc.History(ctx, testAssetID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, testUnitA, items[0].Target.UnitID, "el historial va del más antiguo al más reciente")
	assert.Equal(t, testUnitB, items[1].Target.UnitID)
}

func TestHistory_ActivoInexistente(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.History(context.Background(), "00000000-0000-0000-0000-000000000bad")
	assert.ErrorIs(t, err, domain.ErrAssetNotFound)
}

func TestHistory_SinMovimientos_EsVacio(t *testing.T) {
	f := newFixture(t)
	items, err := f.uc.History(context.Background(), testAssetID)
	require.NoError(t, err)
	assert.Empty(t, items, "un activo que nunca se movió tiene historial vacío, no error")
}
