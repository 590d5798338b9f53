package entity

import "time"

// Condiciones físicas de un activo.
const (
	ConditionServiceable      = "SERVICEABLE"
	ConditionPartiallyDamaged = "PARTIALLY_DAMAGED"
	ConditionLostOrDamaged    = "LOST_OR_DAMAGED"
)

// ValidCondition indica si el valor pertenece al enum de condiciones.
func ValidCondition(c string) bool {
	switch c {
	case ConditionServiceable, ConditionPartiallyDamaged, ConditionLostOrDamaged:
		return true
	}
	return false
}

// Asset representa una unidad física rastreada por número de serie.
//
// CurrentLocation es un campo derivado: su única fuente legítima es el
// resolver aplicado al historial de transferencias. El registro nunca acepta
// una escritura directa que no provenga de una transferencia exitosa o de la
// rutina de reconciliación.
//
// Version respalda el compare-and-swap que serializa las transferencias por
// activo: cada actualización de CurrentLocation incrementa la versión.
type Asset struct {
	ID              string
	SerialNumber    string
	CategoryID      string
	Brand           string
	Model           string
	Condition       string
	Description     string
	EntryDate       time.Time
	CurrentLocation LocationRef
	Version         int64
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
