package repository

import (
	"context"

	"github.com/jhoicas/custodia-api/internal/domain/entity"
)

// TransferRepository define el puerto de persistencia para el ledger de
// transferencias. Solo inserta y lee: el ledger es append-only por contrato
// y no expone Update ni Delete.
type TransferRepository interface {
	Create(ctx context.Context, transfer *entity.Transfer) error
	// ListByAsset devuelve el historial completo del activo, más antiguo primero.
	ListByAsset(ctx context.Context, assetID string) ([]*entity.Transfer, error)
	// ListRecent devuelve las últimas transferencias de todos los activos,
	// más reciente primero.
	ListRecent(ctx context.Context, limit int) ([]*entity.Transfer, error)
	// List devuelve una página de transferencias (más reciente primero) y el
	// total; direction vacío no filtra.
	List(ctx context.Context, direction string, limit, offset int) ([]*entity.Transfer, int64, error)
}
