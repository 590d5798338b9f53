package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/custodia-api/internal/domain"
	"github.com/jhoicas/custodia-api/internal/domain/entity"
	"github.com/jhoicas/custodia-api/internal/domain/repository"
)

var _ repository.AssetRepository = (*AssetRepo)(nil)

const assetColumns = `id, serial_number, category_id, brand, model, condition, description,
		entry_date, location_kind, location_unit_id, specific_location, version,
		is_active, created_at, updated_at`

// AssetRepo implementación de AssetRepository sobre PostgreSQL (usable con pool o tx).
type AssetRepo struct {
	q Querier
}

// NewAssetRepository construye el adaptador de activos. Pasar pool o tx (Querier).
func NewAssetRepository(q Querier) *AssetRepo {
	return &AssetRepo{q: q}
}

// Create persiste un nuevo activo.
func (r *AssetRepo) Create(ctx context.Context, asset *entity.Asset) error {
	query := `
		INSERT INTO assets (id, serial_number, category_id, brand, model, condition, description,
			entry_date, location_kind, location_unit_id, specific_location, version,
			is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	kind, unitID, specific := locationColumns(asset.CurrentLocation)
	_, err := r.q.Exec(ctx, query,
		asset.ID, asset.SerialNumber, asset.CategoryID, asset.Brand, asset.Model,
		asset.Condition, asset.Description, asset.EntryDate,
		kind, unitID, specific, asset.Version,
		asset.IsActive, asset.CreatedAt, asset.UpdatedAt,
	)
	if err != nil {
		if uniqueViolation(err) != "" {
			return domain.ErrDuplicateSerial
		}
		return fmt.Errorf("insert activo: %w", err)
	}
	return nil
}

// GetByID obtiene un activo por ID. Devuelve (nil, nil) si no existe.
func (r *AssetRepo) GetByID(ctx context.Context, id string) (*entity.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE id = $1`
	a, err := scanAsset(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get activo: %w", err)
	}
	return a, nil
}

// Update actualiza los campos editables. Nunca toca serie, ubicación ni versión.
func (r *AssetRepo) Update(ctx context.Context, asset *entity.Asset) error {
	query := `
		UPDATE assets SET category_id = $2, brand = $3, model = $4, condition = $5,
			description = $6, entry_date = $7, is_active = $8, updated_at = $9
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		asset.ID, asset.CategoryID, asset.Brand, asset.Model, asset.Condition,
		asset.Description, asset.EntryDate, asset.IsActive, asset.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update activo: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrAssetNotFound
	}
	return nil
}

// List devuelve la página filtrada (ordenada por serie) y el total de coincidencias.
func (r *AssetRepo) List(ctx context.Context, filter repository.AssetFilter, limit, offset int) ([]*entity.Asset, int64, error) {
	where, args := buildAssetFilter(filter)

	var total int64
	countQuery := `SELECT count(*) FROM assets` + where
	if err := r.q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count activos: %w", err)
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT %s FROM assets%s ORDER BY serial_number LIMIT $%d OFFSET $%d`,
		assetColumns, where, len(args)-1, len(args))
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list activos: %w", err)
	}
	defer rows.Close()

	var list []*entity.Asset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan activo: %w", err)
		}
		list = append(list, a)
	}
	return list, total, rows.Err()
}

// buildAssetFilter arma la cláusula WHERE con placeholders posicionales.
func buildAssetFilter(f repository.AssetFilter) (string, []any) {
	var conds []string
	var args []any
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if !f.IncludeInactive {
		conds = append(conds, "is_active")
	}
	if f.CategoryID != "" {
		add("category_id = $%d", f.CategoryID)
	}
	if f.Condition != "" {
		add("condition = $%d", f.Condition)
	}
	if f.LocationKind != "" {
		add("location_kind = $%d", f.LocationKind)
	}
	if f.UnitID != "" {
		add("location_unit_id = $%d", f.UnitID)
	}
	if f.TextQuery != "" {
		args = append(args, "%"+f.TextQuery+"%")
		conds = append(conds, fmt.Sprintf(
			"(serial_number ILIKE $%d OR brand ILIKE $%d OR model ILIKE $%d)",
			len(args), len(args), len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// ListAllActive devuelve todos los activos activos ordenados por serie.
func (r *AssetRepo) ListAllActive(ctx context.Context) ([]*entity.Asset, error) {
	return r.listAll(ctx, `WHERE is_active`)
}

// ListAll devuelve todos los activos, incluidos los desactivados.
func (r *AssetRepo) ListAll(ctx context.Context) ([]*entity.Asset, error) {
	return r.listAll(ctx, ``)
}

func (r *AssetRepo) listAll(ctx context.Context, where string) ([]*entity.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets ` + where + ` ORDER BY serial_number`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list activos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Asset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("scan activo: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// UpdateLocation escribe la ubicación cacheada con compare-and-swap sobre la
// versión. Si la versión ya no coincide (otra transferencia ganó la carrera)
// devuelve domain.ErrConcurrentModification.
func (r *AssetRepo) UpdateLocation(ctx context.Context, id string, location entity.LocationRef, expectedVersion int64) error {
	query := `
		UPDATE assets SET location_kind = $2, location_unit_id = $3, specific_location = $4,
			version = version + 1, updated_at = now()
		WHERE id = $1 AND version = $5`
	kind, unitID, specific := locationColumns(location)
	cmd, err := r.q.Exec(ctx, query, id, kind, unitID, specific, expectedVersion)
	if err != nil {
		return fmt.Errorf("update ubicación: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		// Distinguir carrera perdida de activo inexistente.
		existing, err := r.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrAssetNotFound
		}
		return domain.ErrConcurrentModification
	}
	return nil
}

// CountActiveByCategory cuenta activos activos que referencian la categoría.
func (r *AssetRepo) CountActiveByCategory(ctx context.Context, categoryID string) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx,
		`SELECT count(*) FROM assets WHERE is_active AND category_id = $1`, categoryID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count activos por categoría: %w", err)
	}
	return n, nil
}

// CountActiveAtUnit cuenta activos activos cuya ubicación actual es la unidad.
func (r *AssetRepo) CountActiveAtUnit(ctx context.Context, unitID string) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx,
		`SELECT count(*) FROM assets WHERE is_active AND location_kind = $1 AND location_unit_id = $2`,
		entity.LocationKindUnit, unitID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count activos en unidad: %w", err)
	}
	return n, nil
}

func scanAsset(row pgx.Row) (*entity.Asset, error) {
	var a entity.Asset
	var kind, specific string
	var unitID *string
	err := row.Scan(
		&a.ID, &a.SerialNumber, &a.CategoryID, &a.Brand, &a.Model, &a.Condition,
		&a.Description, &a.EntryDate, &kind, &unitID, &specific, &a.Version,
		&a.IsActive, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	a.CurrentLocation = scanLocation(kind, unitID, specific)
	return &a, nil
}
