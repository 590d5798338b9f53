package entity

import "time"

// OrgUnit representa una unidad organizacional ("OPD"): el origen o destino de
// una transferencia distinto de la bodega central.
type OrgUnit struct {
	ID          string
	Name        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
