package dto

import "time"

// RecordTransferRequest body para POST /api/transfers.
//
// El origen nunca viene del cliente: se deriva del historial del activo.
// Direction es opcional; si viene, debe coincidir con la derivada.
type RecordTransferRequest struct {
	AssetID          string `json:"asset_id" validate:"required,uuid4"`
	Direction        string `json:"direction" validate:"omitempty,oneof=WAREHOUSE_TO_UNIT UNIT_TO_WAREHOUSE UNIT_TO_UNIT"`
	TargetKind       string `json:"target_kind" validate:"required,oneof=WAREHOUSE UNIT"`
	TargetUnitID     string `json:"target_unit_id" validate:"omitempty,uuid4"`
	SpecificLocation string `json:"specific_location" validate:"max=200"`
	Notes            string `json:"notes"`
	ProcessedBy      string `json:"processed_by" validate:"max=200"`
}

// TransferFilterRequest query params de GET /api/transfers.
type TransferFilterRequest struct {
	PageRequest
	Direction string `query:"direction" validate:"omitempty,oneof=WAREHOUSE_TO_UNIT UNIT_TO_WAREHOUSE UNIT_TO_UNIT"`
}

// TransferResponse salida de una transferencia del ledger.
type TransferResponse struct {
	ID               string      `json:"id"`
	AssetID          string      `json:"asset_id"`
	Direction        string      `json:"direction"`
	Source           LocationDTO `json:"source"`
	Target           LocationDTO `json:"target"`
	SpecificLocation string      `json:"specific_location"`
	Notes            string      `json:"notes,omitempty"`
	ProcessedBy      string      `json:"processed_by,omitempty"`
	Timestamp        time.Time   `json:"timestamp"`
}

// TransferListResponse lista paginada de transferencias.
type TransferListResponse struct {
	Items []TransferResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
