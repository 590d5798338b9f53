package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/custodia-api/internal/application/dto"
	"github.com/jhoicas/custodia-api/internal/domain"
	"github.com/jhoicas/custodia-api/internal/domain/entity"
	"github.com/jhoicas/custodia-api/internal/domain/repository"
)

// AssetUseCase casos de uso del registro de activos.
//
// La ubicación cacheada solo cambia por una transferencia exitosa
// (ledger.RecordTransferUseCase) o por la reconciliación; ninguna operación de
// este caso de uso la escribe.
type AssetUseCase struct {
	assetRepo    repository.AssetRepository
	categoryRepo repository.CategoryRepository
	invalidator  SummaryInvalidator
}

// NewAssetUseCase construye el caso de uso.
func NewAssetUseCase(
	assetRepo repository.AssetRepository,
	categoryRepo repository.CategoryRepository,
	invalidator SummaryInvalidator,
) *AssetUseCase {
	return &AssetUseCase{assetRepo: assetRepo, categoryRepo: categoryRepo, invalidator: invalidator}
}

// Create registra un activo nuevo en la bodega central.
// domain.ErrDuplicateSerial si la serie ya existe; domain.ErrUnknownCategory
// si la categoría no existe o está inactiva.
func (uc *AssetUseCase) Create(ctx context.Context, in dto.CreateAssetRequest) (*dto.AssetResponse, error) {
	if !entity.ValidCondition(in.Condition) {
		return nil, fmt.Errorf("%w: condición %q", domain.ErrInvalidInput, in.Condition)
	}
	category, err := uc.categoryRepo.GetByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil || !category.IsActive {
		return nil, domain.ErrUnknownCategory
	}

	now := time.Now()
	entryDate := now
	if in.EntryDate != nil {
		entryDate = *in.EntryDate
	}
	asset := &entity.Asset{
		ID:              uuid.New().String(),
		SerialNumber:    in.SerialNumber,
		CategoryID:      in.CategoryID,
		Brand:           in.Brand,
		Model:           in.Model,
		Condition:       in.Condition,
		Description:     in.Description,
		EntryDate:       entryDate,
		CurrentLocation: entity.Warehouse(),
		Version:         1,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.assetRepo.Create(ctx, asset); err != nil {
		return nil, err
	}
	uc.invalidate()
	resp := dto.NewAssetResponse(asset)
	resp.CategoryName = category.Name
	return &resp, nil
}

// GetByID obtiene un activo; (nil, nil) si no existe.
func (uc *AssetUseCase) GetByID(ctx context.Context, id string) (*dto.AssetResponse, error) {
	asset, err := uc.assetRepo.GetByID(ctx, id)
	if err != nil || asset == nil {
		return nil, err
	}
	resp := dto.NewAssetResponse(asset)
	return &resp, nil
}

// Update actualiza marca, modelo, condición, descripción o categoría.
// El número de serie y la ubicación quedan fuera por contrato.
func (uc *AssetUseCase) Update(ctx context.Context, id string, in dto.UpdateAssetRequest) (*dto.AssetResponse, error) {
	asset, err := uc.assetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, domain.ErrAssetNotFound
	}
	if in.CategoryID != nil {
		category, err := uc.categoryRepo.GetByID(ctx, *in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil || !category.IsActive {
			return nil, domain.ErrUnknownCategory
		}
		asset.CategoryID = *in.CategoryID
	}
	if in.Brand != nil {
		asset.Brand = *in.Brand
	}
	if in.Model != nil {
		asset.Model = *in.Model
	}
	if in.Condition != nil {
		if !entity.ValidCondition(*in.Condition) {
			return nil, fmt.Errorf("%w: condición %q", domain.ErrInvalidInput, *in.Condition)
		}
		asset.Condition = *in.Condition
	}
	if in.Description != nil {
		asset.Description = *in.Description
	}
	asset.UpdatedAt = time.Now()
	if err := uc.assetRepo.Update(ctx, asset); err != nil {
		return nil, err
	}
	uc.invalidate()
	resp := dto.NewAssetResponse(asset)
	return &resp, nil
}

// Deactivate oculta el activo de los listados por defecto. El ledger no se
// toca: el historial del activo sigue intacto y consultable.
func (uc *AssetUseCase) Deactivate(ctx context.Context, id string) error {
	asset, err := uc.assetRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if asset == nil {
		return domain.ErrAssetNotFound
	}
	asset.IsActive = false
	asset.UpdatedAt = time.Now()
	if err := uc.assetRepo.Update(ctx, asset); err != nil {
		return err
	}
	uc.invalidate()
	return nil
}

// List devuelve la página de activos que cumplen el filtro, con el total.
func (uc *AssetUseCase) List(ctx context.Context, in dto.AssetFilterRequest) (*dto.AssetListResponse, error) {
	in.DefaultPage()
	filter := repository.AssetFilter{
		CategoryID:      in.CategoryID,
		Condition:       in.Condition,
		LocationKind:    in.Location,
		UnitID:          in.UnitID,
		TextQuery:       in.Text,
		IncludeInactive: in.IncludeInactive,
	}
	list, total, err := uc.assetRepo.List(ctx, filter, in.Limit, in.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.AssetResponse, 0, len(list))
	for _, a := range list {
		items = append(items, dto.NewAssetResponse(a))
	}
	return &dto.AssetListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: in.Page, Limit: in.Limit, Total: total},
	}, nil
}

func (uc *AssetUseCase) invalidate() {
	if uc.invalidator != nil {
		uc.invalidator.Invalidate()
	}
}
