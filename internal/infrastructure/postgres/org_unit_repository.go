package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/custodia-api/internal/domain"
	"github.com/jhoicas/custodia-api/internal/domain/entity"
	"github.com/jhoicas/custodia-api/internal/domain/repository"
)

var _ repository.OrgUnitRepository = (*OrgUnitRepo)(nil)

// OrgUnitRepo implementación de OrgUnitRepository sobre PostgreSQL (usable con pool o tx).
type OrgUnitRepo struct {
	q Querier
}

// NewOrgUnitRepository construye el adaptador de unidades organizacionales.
func NewOrgUnitRepository(q Querier) *OrgUnitRepo {
	return &OrgUnitRepo{q: q}
}

// Create persiste una nueva unidad organizacional.
func (r *OrgUnitRepo) Create(ctx context.Context, unit *entity.OrgUnit) error {
	query := `
		INSERT INTO org_units (id, name, description, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		unit.ID, unit.Name, unit.Description, unit.IsActive, unit.CreatedAt, unit.UpdatedAt,
	)
	if err != nil {
		if uniqueViolation(err) != "" {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("insert unidad: %w", err)
	}
	return nil
}

// GetByID obtiene una unidad por ID. Devuelve (nil, nil) si no existe.
func (r *OrgUnitRepo) GetByID(ctx context.Context, id string) (*entity.OrgUnit, error) {
	query := `
		SELECT id, name, description, is_active, created_at, updated_at
		FROM org_units WHERE id = $1`
	var u entity.OrgUnit
	err := r.q.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Name, &u.Description, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get unidad: %w", err)
	}
	return &u, nil
}

// Update actualiza una unidad existente.
func (r *OrgUnitRepo) Update(ctx context.Context, unit *entity.OrgUnit) error {
	query := `
		UPDATE org_units SET name = $2, description = $3, is_active = $4, updated_at = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		unit.ID, unit.Name, unit.Description, unit.IsActive, unit.UpdatedAt,
	)
	if err != nil {
		if uniqueViolation(err) != "" {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("update unidad: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista unidades ordenadas por nombre.
func (r *OrgUnitRepo) List(ctx context.Context, includeInactive bool) ([]*entity.OrgUnit, error) {
	query := `
		SELECT id, name, description, is_active, created_at, updated_at
		FROM org_units WHERE is_active OR $1 ORDER BY name`
	rows, err := r.q.Query(ctx, query, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("list unidades: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrgUnit
	for rows.Next() {
		var u entity.OrgUnit
		if err := rows.Scan(&u.ID, &u.Name, &u.Description, &u.IsActive, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan unidad: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}
