package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/custodia-api/internal/domain"
	"github.com/jhoicas/custodia-api/internal/domain/entity"
	"github.com/jhoicas/custodia-api/internal/domain/ledger"
)

// Sin historial, todo activo está en la bodega central.
func TestResolve_HistorialVacio_EsBodega(t *testing.T) {
	loc := ledger.Resolve(nil)
	assert.True(t, loc.IsWarehouse(), "un activo sin transferencias debe resolverse en bodega")
}

// La ubicación resuelta es el destino de la última transferencia.
func TestResolve_UltimoDestino(t *testing.T) {
	history := []*entity.Transfer{
		{Target: entity.AtUnit("u-1", "sala 2")},
		{Target: entity.AtUnit("u-2", "estante B")},
	}
	loc := ledger.Resolve(history)
	assert.Equal(t, entity.LocationKindUnit, loc.Kind)
	assert.Equal(t, "u-2", loc.UnitID)
	assert.Equal(t, "estante B", loc.SpecificLocation)
}

func TestResolve_RetornoABodega(t *testing.T) {
	history := []*entity.Transfer{
		{Target: entity.AtUnit("u-1", "")},
		{Target: entity.Warehouse()},
	}
	assert.True(t, ledger.Resolve(history).IsWarehouse())
}

// La dirección siempre se deriva del par (origen, destino).
func TestDeriveDirection_TresDirecciones(t *testing.T) {
	cases := []struct {
		name     string
		source   entity.LocationRef
		target   entity.LocationRef
		expected string
	}{
		{"bodega a unidad", entity.Warehouse(), entity.AtUnit("u-1", ""), entity.DirectionWarehouseToUnit},
		{"unidad a bodega", entity.AtUnit("u-1", ""), entity.Warehouse(), entity.DirectionUnitToWarehouse},
		{"unidad a unidad", entity.AtUnit("u-1", ""), entity.AtUnit("u-2", ""), entity.DirectionUnitToUnit},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			derived, err := ledger.DeriveDirection(tc.source, tc.target)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, derived)
		})
	}
}

// Mismo lugar físico: no hay transferencia que derivar.
func TestDeriveDirection_MismoLugar_EsNoOp(t *testing.T) {
	_, err := ledger.DeriveDirection(entity.Warehouse(), entity.Warehouse())
	assert.ErrorIs(t, err, domain.ErrNoOpTransfer, "bodega a bodega es un no-op")

	_, err = ledger.DeriveDirection(entity.AtUnit("u-1", "sala 1"), entity.AtUnit("u-1", "sala 2"))
	assert.ErrorIs(t, err, domain.ErrNoOpTransfer,
		"cambiar solo la ubicación específica dentro de la misma unidad no es una transferencia")
}
