// Package ledger contiene los servicios puros del ledger de custodia:
// resolución de la ubicación autoritativa desde el historial y derivación de
// la dirección de una transferencia.
package ledger

import (
	"github.com/jhoicas/custodia-api/internal/domain"
	"github.com/jhoicas/custodia-api/internal/domain/entity"
)

// Resolve calcula la ubicación autoritativa de un activo a partir de su
// historial ordenado (más antiguo primero): el destino de la última
// transferencia, o la bodega central si el activo nunca se ha movido.
func Resolve(history []*entity.Transfer) entity.LocationRef {
	if len(history) == 0 {
		return entity.Warehouse()
	}
	return history[len(history)-1].Target
}

// DeriveDirection deriva la dirección desde (origen, destino).
// Origen y destino en el mismo lugar no es un movimiento: ErrNoOpTransfer.
func DeriveDirection(source, target entity.LocationRef) (string, error) {
	if source.SamePlace(target) {
		return "", domain.ErrNoOpTransfer
	}
	switch {
	case source.IsWarehouse():
		return entity.DirectionWarehouseToUnit, nil
	case target.IsWarehouse():
		return entity.DirectionUnitToWarehouse, nil
	default:
		return entity.DirectionUnitToUnit, nil
	}
}
