package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/custodia-api/internal/application/dto"
	"github.com/jhoicas/custodia-api/internal/domain"
	"github.com/jhoicas/custodia-api/internal/domain/entity"
	domledger "github.com/jhoicas/custodia-api/internal/domain/ledger"
	"github.com/jhoicas/custodia-api/internal/domain/repository"
	"github.com/jhoicas/custodia-api/pkg/metrics"
)

// RecordTransferUseCase asienta transferencias en el ledger de forma
// transaccional: resuelve la ubicación autoritativa desde el historial (no
// desde el cache), valida la transición y publica el append junto con la
// actualización del cache en una sola transacción.
//
// La serialización por activo es optimista: el UPDATE del cache compara la
// versión observada al leer. Si otra transferencia se adelantó, toda la
// transacción se revierte con domain.ErrConcurrentModification y el caller
// decide si reintenta (releyendo la ubicación fresca primero).
type RecordTransferUseCase struct {
	txRunner     TxRunner
	assetRepo    repository.AssetRepository
	unitRepo     repository.OrgUnitRepository
	transferRepo repository.TransferRepository
	invalidator  SummaryInvalidator
}

// NewRecordTransferUseCase construye el caso de uso.
func NewRecordTransferUseCase(
	txRunner TxRunner,
	assetRepo repository.AssetRepository,
	unitRepo repository.OrgUnitRepository,
	transferRepo repository.TransferRepository,
	invalidator SummaryInvalidator,
) *RecordTransferUseCase {
	return &RecordTransferUseCase{
		txRunner:     txRunner,
		assetRepo:    assetRepo,
		unitRepo:     unitRepo,
		transferRepo: transferRepo,
		invalidator:  invalidator,
	}
}

// TransferInput entrada para asentar una transferencia.
// Direction es opcional: si viene, debe coincidir con la derivada de
// (origen autoritativo, destino); si no, se deriva.
type TransferInput struct {
	AssetID          string
	Direction        string
	TargetKind       string
	TargetUnitID     string
	SpecificLocation string
	Notes            string
	ProcessedBy      string
}

// Record valida y asienta la transferencia. Todo o nada: un fallo en
// cualquier paso deja el ledger y el cache sin cambios.
func (uc *RecordTransferUseCase) Record(ctx context.Context, input TransferInput) (*entity.Transfer, error) {
	transfer, err := uc.record(ctx, input)
	if err != nil {
		metrics.TransferFailures.WithLabelValues(failureKind(err)).Inc()
		return nil, err
	}
	metrics.TransfersRecorded.Inc()
	if uc.invalidator != nil {
		uc.invalidator.Invalidate()
	}
	return transfer, nil
}

func (uc *RecordTransferUseCase) record(ctx context.Context, input TransferInput) (*entity.Transfer, error) {
	target, err := uc.buildTarget(ctx, input)
	if err != nil {
		return nil, err
	}

	asset, err := uc.assetRepo.GetByID(ctx, input.AssetID)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, domain.ErrAssetNotFound
	}

	// La fuente de verdad es el historial, no el campo cacheado.
	history, err := uc.transferRepo.ListByAsset(ctx, input.AssetID)
	if err != nil {
		return nil, err
	}
	source := domledger.Resolve(history)

	derived, err := domledger.DeriveDirection(source, target)
	if err != nil {
		return nil, err
	}
	if input.Direction != "" && input.Direction != derived {
		return nil, domain.ErrInvalidTransition
	}

	// Timestamp estrictamente creciente por activo: si el reloj no avanzó
	// respecto de la última transferencia, se corre un paso. El CAS sobre
	// la versión garantiza que el historial no creció desde la lectura, así
	// que el timestamp asentado siempre supera al anterior.
	now := time.Now()
	ts := now
	if len(history) > 0 {
		if last := history[len(history)-1].Timestamp; !ts.After(last) {
			ts = last.Add(time.Microsecond)
		}
	}

	recorded := &entity.Transfer{
		ID:               uuid.New().String(),
		AssetID:          input.AssetID,
		Direction:        derived,
		Source:           source,
		Target:           target,
		SpecificLocation: target.SpecificLocation,
		Notes:            input.Notes,
		ProcessedBy:      input.ProcessedBy,
		Timestamp:        ts,
		CreatedAt:        now,
	}

	// Append y actualización del cache en una sola transacción. El CAS
	// compara la versión observada al leer: si otra transferencia se
	// adelantó, la tx entera se revierte y el ledger queda sin cambios.
	err = uc.txRunner.Run(ctx, func(
		assetRepo repository.AssetRepository,
		transferRepo repository.TransferRepository,
	) error {
		if err := transferRepo.Create(ctx, recorded); err != nil {
			return err
		}
		return assetRepo.UpdateLocation(ctx, asset.ID, target, asset.Version)
	})
	if err != nil {
		return nil, err
	}
	return recorded, nil
}

// buildTarget arma el destino y valida su referencia de unidad.
func (uc *RecordTransferUseCase) buildTarget(ctx context.Context, input TransferInput) (entity.LocationRef, error) {
	switch input.TargetKind {
	case entity.LocationKindWarehouse:
		// La bodega central no lleva ubicación específica.
		return entity.Warehouse(), nil
	case entity.LocationKindUnit:
		if input.TargetUnitID == "" {
			return entity.LocationRef{}, domain.ErrInvalidInput
		}
		unit, err := uc.unitRepo.GetByID(ctx, input.TargetUnitID)
		if err != nil {
			return entity.LocationRef{}, err
		}
		if unit == nil || !unit.IsActive {
			return entity.LocationRef{}, domain.ErrUnknownUnit
		}
		return entity.AtUnit(input.TargetUnitID, input.SpecificLocation), nil
	default:
		return entity.LocationRef{}, domain.ErrInvalidInput
	}
}

// History devuelve el historial del activo, más antiguo primero; vacío si
// nunca se ha movido. domain.ErrAssetNotFound si el activo no existe.
func (uc *RecordTransferUseCase) History(ctx context.Context, assetID string) ([]dto.TransferResponse, error) {
	asset, err := uc.assetRepo.GetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, domain.ErrAssetNotFound
	}
	history, err := uc.transferRepo.ListByAsset(ctx, assetID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransferResponse, 0, len(history))
	for _, t := range history {
		items = append(items, dto.NewTransferResponse(t))
	}
	return items, nil
}

// List devuelve una página del ledger, más reciente primero, filtrable por dirección.
func (uc *RecordTransferUseCase) List(ctx context.Context, in dto.TransferFilterRequest) (*dto.TransferListResponse, error) {
	in.DefaultPage()
	list, total, err := uc.transferRepo.List(ctx, in.Direction, in.Limit, in.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransferResponse, 0, len(list))
	for _, t := range list {
		items = append(items, dto.NewTransferResponse(t))
	}
	return &dto.TransferListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: in.Page, Limit: in.Limit, Total: total},
	}, nil
}

// failureKind etiqueta Prometheus para una transferencia rechazada.
func failureKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrNoOpTransfer):
		return "no_op"
	case errors.Is(err, domain.ErrInvalidTransition):
		return "invalid_transition"
	case errors.Is(err, domain.ErrUnknownUnit):
		return "unknown_unit"
	case errors.Is(err, domain.ErrAssetNotFound):
		return "asset_not_found"
	case errors.Is(err, domain.ErrConcurrentModification):
		return "concurrent_modification"
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid_input"
	default:
		return "internal"
	}
}
