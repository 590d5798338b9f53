package ledger

import (
	"context"

	"github.com/jhoicas/custodia-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el append al ledger y la
// actualización del cache de ubicación se publiquen juntos o no se publiquen.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		assetRepo repository.AssetRepository,
		transferRepo repository.TransferRepository,
	) error) error
}

// SummaryInvalidator invalida el cache del resumen agregado tras una mutación.
type SummaryInvalidator interface {
	Invalidate()
}
