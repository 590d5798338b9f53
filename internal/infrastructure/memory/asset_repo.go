package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/custodia-api/internal/domain"
	"github.com/jhoicas/custodia-api/internal/domain/entity"
	"github.com/jhoicas/custodia-api/internal/domain/repository"
)

var _ repository.AssetRepository = (*AssetRepo)(nil)

// AssetRepo repositorio de activos en memoria.
//
// tx marca las instancias atadas a una transacción del TxRunner: operan sin
// tomar el lock del Store porque el runner ya lo sostiene.
type AssetRepo struct {
	s  *Store
	tx bool
}

func (r *AssetRepo) lock() func() {
	if r.tx {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r *AssetRepo) rlock() func() {
	if r.tx {
		return func() {}
	}
	r.s.mu.RLock()
	return r.s.mu.RUnlock
}

// Create persiste el activo; domain.ErrDuplicateSerial si la serie ya existe
// entre los activos activos.
func (r *AssetRepo) Create(_ context.Context, asset *entity.Asset) error {
	defer r.lock()()
	for _, a := range r.s.assets {
		if a.IsActive && a.SerialNumber == asset.SerialNumber {
			return domain.ErrDuplicateSerial
		}
	}
	r.s.assets[asset.ID] = *asset
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *AssetRepo) GetByID(_ context.Context, id string) (*entity.Asset, error) {
	defer r.rlock()()
	a, ok := r.s.assets[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

// Update reemplaza los campos editables. La ubicación y la versión del
// registro almacenado se preservan: solo UpdateLocation las toca.
func (r *AssetRepo) Update(_ context.Context, asset *entity.Asset) error {
	defer r.lock()()
	stored, ok := r.s.assets[asset.ID]
	if !ok {
		return domain.ErrAssetNotFound
	}
	updated := *asset
	updated.SerialNumber = stored.SerialNumber
	updated.CurrentLocation = stored.CurrentLocation
	updated.Version = stored.Version
	r.s.assets[asset.ID] = updated
	return nil
}

// List filtra, ordena por serie y devuelve la página pedida con el total.
func (r *AssetRepo) List(_ context.Context, filter repository.AssetFilter, limit, offset int) ([]*entity.Asset, int64, error) {
	defer r.rlock()()
	var matched []entity.Asset
	for _, a := range r.s.assets {
		if matches(a, filter) {
			matched = append(matched, a)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].SerialNumber < matched[j].SerialNumber })
	total := int64(len(matched))

	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(matched) {
		end = len(matched)
	}
	out := make([]*entity.Asset, 0, end-offset)
	for i := offset; i < end; i++ {
		a := matched[i]
		out = append(out, &a)
	}
	return out, total, nil
}

func matches(a entity.Asset, f repository.AssetFilter) bool {
	if !f.IncludeInactive && !a.IsActive {
		return false
	}
	if f.CategoryID != "" && a.CategoryID != f.CategoryID {
		return false
	}
	if f.Condition != "" && a.Condition != f.Condition {
		return false
	}
	if f.LocationKind != "" && a.CurrentLocation.Kind != f.LocationKind {
		return false
	}
	if f.UnitID != "" && a.CurrentLocation.UnitID != f.UnitID {
		return false
	}
	if f.TextQuery != "" {
		q := strings.ToLower(f.TextQuery)
		if !strings.Contains(strings.ToLower(a.SerialNumber), q) &&
			!strings.Contains(strings.ToLower(a.Brand), q) &&
			!strings.Contains(strings.ToLower(a.Model), q) {
			return false
		}
	}
	return true
}

// ListAllActive devuelve todos los activos activos, ordenados por serie.
func (r *AssetRepo) ListAllActive(_ context.Context) ([]*entity.Asset, error) {
	return r.listAll(false)
}

// ListAll devuelve todos los activos, incluidos los desactivados.
func (r *AssetRepo) ListAll(_ context.Context) ([]*entity.Asset, error) {
	return r.listAll(true)
}

func (r *AssetRepo) listAll(includeInactive bool) ([]*entity.Asset, error) {
	defer r.rlock()()
	var out []*entity.Asset
	for _, a := range r.s.assets {
		if !includeInactive && !a.IsActive {
			continue
		}
		cc := a
		out = append(out, &cc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SerialNumber < out[j].SerialNumber })
	return out, nil
}

// UpdateLocation escribe la ubicación cacheada con compare-and-swap sobre la
// versión; domain.ErrConcurrentModification si la versión ya no coincide.
func (r *AssetRepo) UpdateLocation(_ context.Context, id string, location entity.LocationRef, expectedVersion int64) error {
	defer r.lock()()
	stored, ok := r.s.assets[id]
	if !ok {
		return domain.ErrAssetNotFound
	}
	if stored.Version != expectedVersion {
		return domain.ErrConcurrentModification
	}
	stored.CurrentLocation = location
	stored.Version++
	r.s.assets[id] = stored
	return nil
}

// CountActiveByCategory cuenta activos activos que referencian la categoría.
func (r *AssetRepo) CountActiveByCategory(_ context.Context, categoryID string) (int64, error) {
	defer r.rlock()()
	var n int64
	for _, a := range r.s.assets {
		if a.IsActive && a.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

// CountActiveAtUnit cuenta activos activos cuya ubicación actual es la unidad.
func (r *AssetRepo) CountActiveAtUnit(_ context.Context, unitID string) (int64, error) {
	defer r.rlock()()
	var n int64
	for _, a := range r.s.assets {
		if a.IsActive && a.CurrentLocation.Kind == entity.LocationKindUnit && a.CurrentLocation.UnitID == unitID {
			n++
		}
	}
	return n, nil
}
