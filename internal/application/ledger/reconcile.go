package ledger

import (
	"context"
	"fmt"

	"github.com/jhoicas/custodia-api/internal/domain/entity"
	domledger "github.com/jhoicas/custodia-api/internal/domain/ledger"
	"github.com/jhoicas/custodia-api/internal/domain/repository"
	"github.com/jhoicas/custodia-api/pkg/logger"
	"github.com/jhoicas/custodia-api/pkg/metrics"
)

// ReconcileUseCase recalcula el cache de ubicación de cada activo desde su
// historial y corrige las divergencias. Es la herramienta de reparación
// designada si cache y ledger alguna vez divergen, e idempotente: una segunda
// pasada inmediata no produce cambios.
type ReconcileUseCase struct {
	assetRepo    repository.AssetRepository
	transferRepo repository.TransferRepository
	log          *logger.Logger
}

// NewReconcileUseCase construye la rutina de reconciliación.
func NewReconcileUseCase(
	assetRepo repository.AssetRepository,
	transferRepo repository.TransferRepository,
	log *logger.Logger,
) *ReconcileUseCase {
	return &ReconcileUseCase{assetRepo: assetRepo, transferRepo: transferRepo, log: log}
}

// Run recorre todos los activos (incluidos los desactivados) y repara el
// cache donde difiera de la ubicación resuelta. Devuelve cuántos corrigió.
func (uc *ReconcileUseCase) Run(ctx context.Context) (int, error) {
	assets, err := uc.assetRepo.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("reconciliación: listar activos: %w", err)
	}

	repaired := 0
	for _, asset := range assets {
		history, err := uc.transferRepo.ListByAsset(ctx, asset.ID)
		if err != nil {
			return repaired, fmt.Errorf("reconciliación: historial de %s: %w", asset.ID, err)
		}
		resolved := domledger.Resolve(history)
		if sameLocation(asset.CurrentLocation, resolved) {
			continue
		}
		if err := uc.assetRepo.UpdateLocation(ctx, asset.ID, resolved, asset.Version); err != nil {
			return repaired, fmt.Errorf("reconciliación: reparar %s: %w", asset.ID, err)
		}
		repaired++
		metrics.ReconciledAssets.Inc()
		if uc.log != nil {
			uc.log.Warn().
				Str("asset_id", asset.ID).
				Str("serial", asset.SerialNumber).
				Str("cached_kind", asset.CurrentLocation.Kind).
				Str("resolved_kind", resolved.Kind).
				Msg("cache de ubicación divergente reparado")
		}
	}
	return repaired, nil
}

// sameLocation compara la igualdad completa del cache, incluida la ubicación
// específica: la reparación debe dejar el campo byte a byte igual al resuelto.
func sameLocation(a, b entity.LocationRef) bool {
	return a.Kind == b.Kind && a.UnitID == b.UnitID && a.SpecificLocation == b.SpecificLocation
}
