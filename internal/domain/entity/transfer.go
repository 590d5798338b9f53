package entity

import "time"

// Direcciones de transferencia. Derivables de (origen, destino); nunca se
// aceptan de forma independiente.
const (
	DirectionWarehouseToUnit = "WAREHOUSE_TO_UNIT"
	DirectionUnitToWarehouse = "UNIT_TO_WAREHOUSE"
	DirectionUnitToUnit      = "UNIT_TO_UNIT"
)

// Transfer es un registro inmutable de un cambio de ubicación de un activo.
// El ledger es append-only: una transferencia nunca se edita ni se borra;
// una corrección se modela como una nueva transferencia compensatoria.
//
// Timestamp es estrictamente creciente por activo (los empates se resuelven
// por orden de inserción y se registran así).
type Transfer struct {
	ID               string
	AssetID          string
	Direction        string
	Source           LocationRef
	Target           LocationRef
	SpecificLocation string
	Notes            string
	ProcessedBy      string
	Timestamp        time.Time
	CreatedAt        time.Time
}
