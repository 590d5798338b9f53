package repository

import (
	"context"

	"github.com/jhoicas/custodia-api/internal/domain/entity"
)

// OrgUnitRepository define el puerto de persistencia para OrgUnit (DIP).
type OrgUnitRepository interface {
	// Create persiste la unidad; domain.ErrDuplicateName si el nombre ya
	// existe entre las activas.
	Create(ctx context.Context, unit *entity.OrgUnit) error
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.OrgUnit, error)
	Update(ctx context.Context, unit *entity.OrgUnit) error
	List(ctx context.Context, includeInactive bool) ([]*entity.OrgUnit, error)
}
