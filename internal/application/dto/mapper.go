package dto

import "github.com/jhoicas/custodia-api/internal/domain/entity"

// NewLocationDTO convierte el valor etiquetado del dominio a su forma JSON.
func NewLocationDTO(l entity.LocationRef) LocationDTO {
	return LocationDTO{
		Kind:             l.Kind,
		UnitID:           l.UnitID,
		SpecificLocation: l.SpecificLocation,
	}
}

// NewAssetResponse convierte un activo del dominio a su respuesta HTTP.
func NewAssetResponse(a *entity.Asset) AssetResponse {
	return AssetResponse{
		ID:              a.ID,
		SerialNumber:    a.SerialNumber,
		CategoryID:      a.CategoryID,
		Brand:           a.Brand,
		Model:           a.Model,
		Condition:       a.Condition,
		Description:     a.Description,
		EntryDate:       a.EntryDate,
		CurrentLocation: NewLocationDTO(a.CurrentLocation),
		IsActive:        a.IsActive,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// NewTransferResponse convierte una transferencia del ledger a su respuesta HTTP.
func NewTransferResponse(t *entity.Transfer) TransferResponse {
	return TransferResponse{
		ID:               t.ID,
		AssetID:          t.AssetID,
		Direction:        t.Direction,
		Source:           NewLocationDTO(t.Source),
		Target:           NewLocationDTO(t.Target),
		SpecificLocation: t.SpecificLocation,
		Notes:            t.Notes,
		ProcessedBy:      t.ProcessedBy,
		Timestamp:        t.Timestamp,
	}
}
