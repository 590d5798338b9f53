package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/custodia-api/internal/domain/entity"
	"github.com/jhoicas/custodia-api/internal/domain/repository"
)

var _ repository.TransferRepository = (*TransferRepo)(nil)

const transferColumns = `id, asset_id, direction, source_kind, source_unit_id, source_specific_location,
		target_kind, target_unit_id, specific_location, notes, processed_by, ts, created_at`

// TransferRepo implementación del ledger sobre PostgreSQL (usable con pool o tx).
// Solo anexa y lee: el ledger no expone UPDATE ni DELETE.
type TransferRepo struct {
	q Querier
}

// NewTransferRepository construye el adaptador del ledger. Pasar pool o tx (Querier).
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

// Create anexa una transferencia al ledger.
func (r *TransferRepo) Create(ctx context.Context, transfer *entity.Transfer) error {
	if transfer.ID == "" {
		transfer.ID = uuid.New().String()
	}
	query := `
		INSERT INTO transfers (id, asset_id, direction, source_kind, source_unit_id, source_specific_location,
			target_kind, target_unit_id, specific_location, notes, processed_by, ts, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	srcKind, srcUnitID, srcSpecific := locationColumns(transfer.Source)
	tgtKind, tgtUnitID, _ := locationColumns(transfer.Target)
	_, err := r.q.Exec(ctx, query,
		transfer.ID, transfer.AssetID, transfer.Direction,
		srcKind, srcUnitID, srcSpecific,
		tgtKind, tgtUnitID, transfer.SpecificLocation,
		transfer.Notes, transfer.ProcessedBy, transfer.Timestamp, transfer.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transferencia: %w", err)
	}
	return nil
}

// ListByAsset devuelve el historial completo del activo, más antiguo primero.
func (r *TransferRepo) ListByAsset(ctx context.Context, assetID string) ([]*entity.Transfer, error) {
	query := `SELECT ` + transferColumns + ` FROM transfers WHERE asset_id = $1 ORDER BY ts, created_at`
	rows, err := r.q.Query(ctx, query, assetID)
	if err != nil {
		return nil, fmt.Errorf("list transferencias del activo: %w", err)
	}
	defer rows.Close()
	return collectTransfers(rows)
}

// ListRecent devuelve las últimas transferencias del ledger, más reciente primero.
func (r *TransferRepo) ListRecent(ctx context.Context, limit int) ([]*entity.Transfer, error) {
	query := `SELECT ` + transferColumns + ` FROM transfers ORDER BY ts DESC, created_at DESC LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list transferencias recientes: %w", err)
	}
	defer rows.Close()
	return collectTransfers(rows)
}

// List devuelve una página de transferencias (más reciente primero) y el total;
// direction vacío no filtra.
func (r *TransferRepo) List(ctx context.Context, direction string, limit, offset int) ([]*entity.Transfer, int64, error) {
	var total int64
	err := r.q.QueryRow(ctx,
		`SELECT count(*) FROM transfers WHERE $1 = '' OR direction = $1`, direction,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count transferencias: %w", err)
	}

	query := `SELECT ` + transferColumns + `
		FROM transfers WHERE $1 = '' OR direction = $1
		ORDER BY ts DESC, created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, direction, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list transferencias: %w", err)
	}
	defer rows.Close()
	list, err := collectTransfers(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func collectTransfers(rows pgx.Rows) ([]*entity.Transfer, error) {
	var list []*entity.Transfer
	for rows.Next() {
		var t entity.Transfer
		var srcKind, srcSpecific, tgtKind string
		var srcUnitID, tgtUnitID *string
		err := rows.Scan(
			&t.ID, &t.AssetID, &t.Direction,
			&srcKind, &srcUnitID, &srcSpecific,
			&tgtKind, &tgtUnitID, &t.SpecificLocation,
			&t.Notes, &t.ProcessedBy, &t.Timestamp, &t.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan transferencia: %w", err)
		}
		t.Source = scanLocation(srcKind, srcUnitID, srcSpecific)
		t.Target = scanLocation(tgtKind, tgtUnitID, t.SpecificLocation)
		list = append(list, &t)
	}
	return list, rows.Err()
}
