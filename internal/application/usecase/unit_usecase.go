package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/custodia-api/internal/application/dto"
	"github.com/jhoicas/custodia-api/internal/domain"
	"github.com/jhoicas/custodia-api/internal/domain/entity"
	"github.com/jhoicas/custodia-api/internal/domain/repository"
)

// OrgUnitUseCase casos de uso del catálogo de unidades organizacionales.
type OrgUnitUseCase struct {
	unitRepo    repository.OrgUnitRepository
	assetRepo   repository.AssetRepository
	invalidator SummaryInvalidator
}

// NewOrgUnitUseCase construye el caso de uso.
func NewOrgUnitUseCase(
	unitRepo repository.OrgUnitRepository,
	assetRepo repository.AssetRepository,
	invalidator SummaryInvalidator,
) *OrgUnitUseCase {
	return &OrgUnitUseCase{unitRepo: unitRepo, assetRepo: assetRepo, invalidator: invalidator}
}

// Create crea una unidad activa; domain.ErrDuplicateName si el nombre ya
// existe entre las activas.
func (uc *OrgUnitUseCase) Create(ctx context.Context, in dto.CreateCatalogEntryRequest) (*dto.CatalogEntryResponse, error) {
	now := time.Now()
	unit := &entity.OrgUnit{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.unitRepo.Create(ctx, unit); err != nil {
		return nil, err
	}
	uc.invalidate()
	return toCatalogResponse(unit.ID, unit.Name, unit.Description, unit.IsActive, unit.CreatedAt, unit.UpdatedAt), nil
}

// GetByID obtiene una unidad; (nil, nil) si no existe.
func (uc *OrgUnitUseCase) GetByID(ctx context.Context, id string) (*dto.CatalogEntryResponse, error) {
	unit, err := uc.unitRepo.GetByID(ctx, id)
	if err != nil || unit == nil {
		return nil, err
	}
	return toCatalogResponse(unit.ID, unit.Name, unit.Description, unit.IsActive, unit.CreatedAt, unit.UpdatedAt), nil
}

// Update edita nombre y descripción de una unidad existente.
func (uc *OrgUnitUseCase) Update(ctx context.Context, id string, in dto.UpdateCatalogEntryRequest) (*dto.CatalogEntryResponse, error) {
	unit, err := uc.unitRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		unit.Name = *in.Name
	}
	if in.Description != nil {
		unit.Description = *in.Description
	}
	unit.UpdatedAt = time.Now()
	if err := uc.unitRepo.Update(ctx, unit); err != nil {
		return nil, err
	}
	uc.invalidate()
	return toCatalogResponse(unit.ID, unit.Name, unit.Description, unit.IsActive, unit.CreatedAt, unit.UpdatedAt), nil
}

// Deactivate desactiva la unidad. Bloqueado con domain.ErrReferencedEntity
// mientras sea la ubicación actual de algún activo activo.
func (uc *OrgUnitUseCase) Deactivate(ctx context.Context, id string) error {
	unit, err := uc.unitRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if unit == nil {
		return domain.ErrNotFound
	}
	count, err := uc.assetRepo.CountActiveAtUnit(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrReferencedEntity
	}
	unit.IsActive = false
	unit.UpdatedAt = time.Now()
	if err := uc.unitRepo.Update(ctx, unit); err != nil {
		return err
	}
	uc.invalidate()
	return nil
}

// List lista las unidades activas (o todas con includeInactive).
func (uc *OrgUnitUseCase) List(ctx context.Context, includeInactive bool) ([]dto.CatalogEntryResponse, error) {
	list, err := uc.unitRepo.List(ctx, includeInactive)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CatalogEntryResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toCatalogResponse(u.ID, u.Name, u.Description, u.IsActive, u.CreatedAt, u.UpdatedAt))
	}
	return items, nil
}

func (uc *OrgUnitUseCase) invalidate() {
	if uc.invalidator != nil {
		uc.invalidator.Invalidate()
	}
}
