package repository

import (
	"context"

	"github.com/jhoicas/custodia-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	// Create persiste la categoría; domain.ErrDuplicateName si el nombre ya
	// existe entre las activas.
	Create(ctx context.Context, category *entity.Category) error
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	// List devuelve las categorías activas, ordenadas por nombre; con
	// includeInactive también las desactivadas.
	List(ctx context.Context, includeInactive bool) ([]*entity.Category, error)
}
