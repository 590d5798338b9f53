package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/custodia-api/internal/application/dto"
	"github.com/jhoicas/custodia-api/internal/application/usecase"
	"github.com/jhoicas/custodia-api/internal/domain"
	"github.com/jhoicas/custodia-api/internal/domain/entity"
	"github.com/jhoicas/custodia-api/internal/infrastructure/memory"
)

// assetEnv almacén con una categoría activa lista para registrar activos.
type assetEnv struct {
	store      *memory.Store
	uc         *usecase.AssetUseCase
	categoryID string
}

func newAssetEnv(t *testing.T) *assetEnv {
	t.Helper()
	store := memory.NewStore()
	category, err := usecase.NewCategoryUseCase(store.Categories(), store.Assets(), nil).
		Create(context.Background(), dto.CreateCatalogEntryRequest{Name: "Portátiles"})
	require.NoError(t, err)
	return &assetEnv{
		store:      store,
		uc:         usecase.NewAssetUseCase(store.Assets(), store.Categories(), nil),
		categoryID: category.ID,
	}
}

func (e *assetEnv) create(t *testing.T, serial string) *dto.AssetResponse {
	t.Helper()
	out, err := e.uc.Create(context.Background(), dto.CreateAssetRequest{
		SerialNumber: serial, CategoryID: e.categoryID,
		Brand: "Lenovo", Model: "T14", Condition: entity.ConditionServiceable,
	})
	require.NoError(t, err)
	return out
}

// Todo activo nace en la bodega central, activo y en versión 1.
func TestAsset_CreateNaceEnBodega(t *testing.T) {
	env := newAssetEnv(t)
	out := env.create(t, "SN-0001")

	assert.Equal(t, entity.LocationKindWarehouse, out.CurrentLocation.Kind)
	assert.True(t, out.IsActive)
	assert.False(t, out.EntryDate.IsZero(), "entry_date por defecto es la fecha de registro")

	stored, err := env.store.Assets().GetByID(context.Background(), out.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.Version)
}

func TestAsset_SerieDuplicada(t *testing.T) {
	env := newAssetEnv(t)
	env.create(t, "SN-0001")

	_, err := env.uc.Create(context.Background(), dto.CreateAssetRequest{
		SerialNumber: "SN-0001", CategoryID: env.categoryID,
		Brand: "HP", Model: "EliteBook", Condition: entity.ConditionServiceable,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateSerial)
}

func TestAsset_CategoriaDesconocida(t *testing.T) {
	env := newAssetEnv(t)
	_, err := env.uc.Create(context.Background(), dto.CreateAssetRequest{
		SerialNumber: "SN-0001", CategoryID: "no-existe",
		Brand: "Lenovo", Model: "T14", Condition: entity.ConditionServiceable,
	})
	assert.ErrorIs(t, err, domain.ErrUnknownCategory)
}

// El enum de condiciones se valida en el dominio, no solo en el DTO.
func TestAsset_CondicionInvalida(t *testing.T) {
	env := newAssetEnv(t)
	ctx := context.Background()

	_, err := env.uc.Create(ctx, dto.CreateAssetRequest{
		SerialNumber: "SN-0001", CategoryID: env.categoryID,
		Brand: "Lenovo", Model: "T14", Condition: "COMO_NUEVO",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out := env.create(t, "SN-0002")
	bad := "COMO_NUEVO"
	_, err = env.uc.Update(ctx, out.ID, dto.UpdateAssetRequest{Condition: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	stored, err := env.store.Assets().GetByID(ctx, out.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ConditionServiceable, stored.Condition, "el update rechazado no deja rastro")
}

// Update cambia campos editables sin tocar serie, ubicación ni versión.
func TestAsset_UpdateNoTocaSerieNiUbicacion(t *testing.T) {
	env := newAssetEnv(t)
	ctx := context.Background()
	out := env.create(t, "SN-0001")

	brand := "Dell"
	condition := entity.ConditionPartiallyDamaged
	updated, err := env.uc.Update(ctx, out.ID, dto.UpdateAssetRequest{
		Brand: &brand, Condition: &condition,
	})
	require.NoError(t, err)
	assert.Equal(t, "Dell", updated.Brand)
	assert.Equal(t, entity.ConditionPartiallyDamaged, updated.Condition)
	assert.Equal(t, "SN-0001", updated.SerialNumber)

	stored, err := env.store.Assets().GetByID(ctx, out.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.Version, "update de campos editables no mueve la versión")
	assert.True(t, stored.CurrentLocation.IsWarehouse())
}

func TestAsset_UpdateCategoriaDesconocida(t *testing.T) {
	env := newAssetEnv(t)
	out := env.create(t, "SN-0001")

	bad := "no-existe"
	_, err := env.uc.Update(context.Background(), out.ID, dto.UpdateAssetRequest{CategoryID: &bad})
	assert.ErrorIs(t, err, domain.ErrUnknownCategory)
}

// Desactivar oculta de los listados por defecto y libera la serie; el
// historial del activo queda intacto.
func TestAsset_DeactivateOcultaYLiberaSerie(t *testing.T) {
	env := newAssetEnv(t)
	ctx := context.Background()
	out := env.create(t, "SN-0001")

	require.NoError(t, env.uc.Deactivate(ctx, out.ID))

	list, err := env.uc.List(ctx, dto.AssetFilterRequest{})
	require.NoError(t, err)
	assert.Empty(t, list.Items, "los desactivados no aparecen por defecto")

	all, err := env.uc.List(ctx, dto.AssetFilterRequest{IncludeInactive: true})
	require.NoError(t, err)
	assert.Len(t, all.Items, 1, "con include_inactive sí aparecen")

	env.create(t, "SN-0001") // la serie quedó libre
}

func TestAsset_ListFiltros(t *testing.T) {
	env := newAssetEnv(t)
	ctx := context.Background()
	env.create(t, "SN-0001")
	env.create(t, "SN-0002")

	out, err := env.uc.List(ctx, dto.AssetFilterRequest{Text: "0002"})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "SN-0002", out.Items[0].SerialNumber)

	out, err = env.uc.List(ctx, dto.AssetFilterRequest{Condition: entity.ConditionLostOrDamaged})
	require.NoError(t, err)
	assert.Empty(t, out.Items)

	out, err = env.uc.List(ctx, dto.AssetFilterRequest{Location: entity.LocationKindWarehouse})
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
	assert.Equal(t, int64(2), out.Page.Total)
}

func TestAsset_ListPaginacion(t *testing.T) {
	env := newAssetEnv(t)
	ctx := context.Background()
	for _, serial := range []string{"SN-0001", "SN-0002", "SN-0003"} {
		env.create(t, serial)
	}

	out, err := env.uc.List(ctx, dto.AssetFilterRequest{
		PageRequest: dto.PageRequest{Page: 2, Limit: 2},
	})
	require.NoError(t, err)
	require.Len(t, out.Items, 1, "la segunda página de a dos trae el tercero")
	assert.Equal(t, "SN-0003", out.Items[0].SerialNumber)
	assert.Equal(t, int64(3), out.Page.Total)
}
