package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/custodia-api/internal/domain"
	"github.com/jhoicas/custodia-api/internal/domain/entity"
	"github.com/jhoicas/custodia-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)
var _ repository.OrgUnitRepository = (*OrgUnitRepo)(nil)

// CategoryRepo repositorio de categorías en memoria.
type CategoryRepo struct {
	s *Store
}

// Create persiste la categoría; domain.ErrDuplicateName si el nombre ya existe
// entre las activas (comparación exacta).
func (r *CategoryRepo) Create(_ context.Context, category *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.categories {
		if c.IsActive && c.Name == category.Name {
			return domain.ErrDuplicateName
		}
	}
	r.s.categories[category.ID] = *category
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *CategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// Update reemplaza la categoría existente.
func (r *CategoryRepo) Update(_ context.Context, category *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[category.ID]; !ok {
		return domain.ErrNotFound
	}
	for _, c := range r.s.categories {
		if c.ID != category.ID && c.IsActive && category.IsActive && c.Name == category.Name {
			return domain.ErrDuplicateName
		}
	}
	r.s.categories[category.ID] = *category
	return nil
}

// List devuelve las categorías ordenadas por nombre.
func (r *CategoryRepo) List(_ context.Context, includeInactive bool) ([]*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Category
	for _, c := range r.s.categories {
		if !includeInactive && !c.IsActive {
			continue
		}
		cc := c
		out = append(out, &cc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// OrgUnitRepo repositorio de unidades organizacionales en memoria.
type OrgUnitRepo struct {
	s *Store
}

// Create persiste la unidad; domain.ErrDuplicateName si el nombre ya existe
// entre las activas.
func (r *OrgUnitRepo) Create(_ context.Context, unit *entity.OrgUnit) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.units {
		if u.IsActive && u.Name == unit.Name {
			return domain.ErrDuplicateName
		}
	}
	r.s.units[unit.ID] = *unit
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *OrgUnitRepo) GetByID(_ context.Context, id string) (*entity.OrgUnit, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.units[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// Update reemplaza la unidad existente.
func (r *OrgUnitRepo) Update(_ context.Context, unit *entity.OrgUnit) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.units[unit.ID]; !ok {
		return domain.ErrNotFound
	}
	for _, u := range r.s.units {
		if u.ID != unit.ID && u.IsActive && unit.IsActive && u.Name == unit.Name {
			return domain.ErrDuplicateName
		}
	}
	r.s.units[unit.ID] = *unit
	return nil
}

// List devuelve las unidades ordenadas por nombre.
func (r *OrgUnitRepo) List(_ context.Context, includeInactive bool) ([]*entity.OrgUnit, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.OrgUnit
	for _, u := range r.s.units {
		if !includeInactive && !u.IsActive {
			continue
		}
		cc := u
		out = append(out, &cc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
