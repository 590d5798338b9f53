package entity

// Tipos de ubicación de custodia.
const (
	LocationKindWarehouse = "WAREHOUSE"
	LocationKindUnit      = "UNIT"
)

// LocationRef valor etiquetado: la bodega central o una unidad organizacional
// con una ubicación específica de texto libre (sala, estante). UnitID y
// SpecificLocation solo tienen significado cuando Kind es UNIT.
type LocationRef struct {
	Kind             string
	UnitID           string
	SpecificLocation string
}

// Warehouse devuelve la referencia a la bodega central (sin ubicación específica).
func Warehouse() LocationRef {
	return LocationRef{Kind: LocationKindWarehouse}
}

// AtUnit devuelve la referencia a una unidad organizacional con su ubicación específica.
func AtUnit(unitID, specificLocation string) LocationRef {
	return LocationRef{Kind: LocationKindUnit, UnitID: unitID, SpecificLocation: specificLocation}
}

// IsWarehouse indica si la referencia apunta a la bodega central.
func (l LocationRef) IsWarehouse() bool {
	return l.Kind == LocationKindWarehouse
}

// SamePlace compara el lugar físico: tipo y unidad. La ubicación específica
// (texto libre) no distingue lugares; mover dentro de la misma unidad no es
// una transferencia válida.
func (l LocationRef) SamePlace(other LocationRef) bool {
	if l.Kind != other.Kind {
		return false
	}
	if l.Kind == LocationKindUnit {
		return l.UnitID == other.UnitID
	}
	return true
}
