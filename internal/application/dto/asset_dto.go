package dto

import "time"

// LocationDTO representación JSON del valor etiquetado LocationRef.
// kind es WAREHOUSE o UNIT; unit_id y specific_location solo acompañan UNIT.
type LocationDTO struct {
	Kind             string `json:"kind"`
	UnitID           string `json:"unit_id,omitempty"`
	UnitName         string `json:"unit_name,omitempty"`
	SpecificLocation string `json:"specific_location,omitempty"`
}

// CreateAssetRequest entrada para registrar un activo. Todo activo nace en la
// bodega central.
type CreateAssetRequest struct {
	SerialNumber string     `json:"serial_number" validate:"required,min=1,max=100"`
	CategoryID   string     `json:"category_id" validate:"required,uuid4"`
	Brand        string     `json:"brand" validate:"required,max=200"`
	Model        string     `json:"model" validate:"required,max=200"`
	Condition    string     `json:"condition" validate:"required,oneof=SERVICEABLE PARTIALLY_DAMAGED LOST_OR_DAMAGED"`
	Description  string     `json:"description"`
	EntryDate    *time.Time `json:"entry_date"`
}

// UpdateAssetRequest entrada para actualizar campos editables. Ni el número de
// serie ni la ubicación se actualizan por esta vía.
type UpdateAssetRequest struct {
	CategoryID  *string `json:"category_id" validate:"omitempty,uuid4"`
	Brand       *string `json:"brand" validate:"omitempty,max=200"`
	Model       *string `json:"model" validate:"omitempty,max=200"`
	Condition   *string `json:"condition" validate:"omitempty,oneof=SERVICEABLE PARTIALLY_DAMAGED LOST_OR_DAMAGED"`
	Description *string `json:"description"`
}

// AssetFilterRequest query params de GET /api/assets.
type AssetFilterRequest struct {
	PageRequest
	CategoryID string `query:"category"`
	Condition  string `query:"condition"`
	Location   string `query:"location"` // WAREHOUSE o UNIT
	UnitID     string `query:"unit_id"`
	Text       string `query:"text"`
	// IncludeInactive incluye activos desactivados en el listado.
	IncludeInactive bool `query:"include_inactive"`
}

// AssetResponse salida de un activo.
type AssetResponse struct {
	ID              string      `json:"id"`
	SerialNumber    string      `json:"serial_number"`
	CategoryID      string      `json:"category_id"`
	CategoryName    string      `json:"category_name,omitempty"`
	Brand           string      `json:"brand"`
	Model           string      `json:"model"`
	Condition       string      `json:"condition"`
	Description     string      `json:"description"`
	EntryDate       time.Time   `json:"entry_date"`
	CurrentLocation LocationDTO `json:"current_location"`
	IsActive        bool        `json:"is_active"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// AssetListResponse lista paginada de activos.
type AssetListResponse struct {
	Items []AssetResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
