package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/custodia-api/internal/domain/entity"
)

// uniqueViolation devuelve el nombre del constraint si el error es una
// violación de unicidad (23505), o "" si no lo es.
func uniqueViolation(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return pgErr.ConstraintName
	}
	if strings.Contains(err.Error(), "23505") {
		return "unknown"
	}
	return ""
}

// locationColumns descompone una LocationRef en sus columnas; el unit_id de
// la bodega se persiste como NULL.
func locationColumns(l entity.LocationRef) (kind string, unitID *string, specific string) {
	kind = l.Kind
	specific = l.SpecificLocation
	if l.Kind == entity.LocationKindUnit {
		id := l.UnitID
		unitID = &id
	}
	return kind, unitID, specific
}

// scanLocation reconstruye una LocationRef desde sus columnas.
func scanLocation(kind string, unitID *string, specific string) entity.LocationRef {
	l := entity.LocationRef{Kind: kind, SpecificLocation: specific}
	if unitID != nil {
		l.UnitID = *unitID
	}
	return l
}
