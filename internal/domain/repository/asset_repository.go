package repository

import (
	"context"

	"github.com/jhoicas/custodia-api/internal/domain/entity"
)

// AssetFilter criterios de listado de activos. Los campos vacíos no filtran.
// TextQuery busca por substring (case-insensitive) en serie, marca y modelo.
type AssetFilter struct {
	CategoryID      string
	Condition       string
	LocationKind    string
	UnitID          string
	TextQuery       string
	IncludeInactive bool
}

// AssetRepository define el puerto de persistencia para Asset (DIP).
//
// CurrentLocation solo se escribe vía UpdateLocation: el compare-and-swap
// sobre Version es lo que serializa las transferencias por activo.
type AssetRepository interface {
	// Create persiste el activo; domain.ErrDuplicateSerial si el número de
	// serie ya existe.
	Create(ctx context.Context, asset *entity.Asset) error
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.Asset, error)
	// Update actualiza los campos editables (marca, modelo, condición,
	// descripción, categoría, is_active). Nunca toca serie, ubicación ni versión.
	Update(ctx context.Context, asset *entity.Asset) error
	// List devuelve la página solicitada y el total de coincidencias.
	List(ctx context.Context, filter AssetFilter, limit, offset int) ([]*entity.Asset, int64, error)
	// ListAllActive devuelve todos los activos activos (agregación y reconciliación).
	ListAllActive(ctx context.Context) ([]*entity.Asset, error)
	// ListAll devuelve todos los activos, incluidos los desactivados (reconciliación).
	ListAll(ctx context.Context) ([]*entity.Asset, error)
	// UpdateLocation escribe la ubicación cacheada con CAS sobre expectedVersion;
	// domain.ErrConcurrentModification si la versión ya no coincide.
	UpdateLocation(ctx context.Context, id string, location entity.LocationRef, expectedVersion int64) error
	// CountActiveByCategory cuenta activos activos que referencian la categoría.
	CountActiveByCategory(ctx context.Context, categoryID string) (int64, error)
	// CountActiveAtUnit cuenta activos activos cuya ubicación actual es la unidad.
	CountActiveAtUnit(ctx context.Context, unitID string) (int64, error)
}
