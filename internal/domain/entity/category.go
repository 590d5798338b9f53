package entity

import "time"

// Category representa una categoría de activos (catálogo de referencia).
// No se elimina mientras algún activo la referencie; se desactiva.
type Category struct {
	ID          string
	Name        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
