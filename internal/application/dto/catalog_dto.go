package dto

import "time"

// CreateCatalogEntryRequest entrada para crear una categoría o unidad organizacional.
type CreateCatalogEntryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description"`
}

// UpdateCatalogEntryRequest entrada para actualizar nombre/descripción.
type UpdateCatalogEntryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
}

// CatalogEntryResponse salida de una categoría o unidad.
type CatalogEntryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
