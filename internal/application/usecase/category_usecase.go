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

// SummaryInvalidator invalida el cache del resumen agregado tras una mutación.
type SummaryInvalidator interface {
	Invalidate()
}

// CategoryUseCase casos de uso del catálogo de categorías.
type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
	assetRepo    repository.AssetRepository
	invalidator  SummaryInvalidator
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(
	categoryRepo repository.CategoryRepository,
	assetRepo repository.AssetRepository,
	invalidator SummaryInvalidator,
) *CategoryUseCase {
	return &CategoryUseCase{categoryRepo: categoryRepo, assetRepo: assetRepo, invalidator: invalidator}
}

// Create crea una categoría activa; domain.ErrDuplicateName si el nombre ya
// existe entre las activas (comparación exacta, sensible a mayúsculas).
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCatalogEntryRequest) (*dto.CatalogEntryResponse, error) {
	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	uc.invalidate()
	return toCatalogResponse(category.ID, category.Name, category.Description, category.IsActive, category.CreatedAt, category.UpdatedAt), nil
}

// GetByID obtiene una categoría; (nil, nil) si no existe.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*dto.CatalogEntryResponse, error) {
	category, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil || category == nil {
		return nil, err
	}
	return toCatalogResponse(category.ID, category.Name, category.Description, category.IsActive, category.CreatedAt, category.UpdatedAt), nil
}

// Update edita nombre y descripción de una categoría existente.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.UpdateCatalogEntryRequest) (*dto.CatalogEntryResponse, error) {
	category, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		category.Name = *in.Name
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	category.UpdatedAt = time.Now()
	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	uc.invalidate()
	return toCatalogResponse(category.ID, category.Name, category.Description, category.IsActive, category.CreatedAt, category.UpdatedAt), nil
}

// Deactivate desactiva la categoría. Bloqueado con domain.ErrReferencedEntity
// mientras algún activo activo la referencie; nunca cascada.
func (uc *CategoryUseCase) Deactivate(ctx context.Context, id string) error {
	category, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	count, err := uc.assetRepo.CountActiveByCategory(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrReferencedEntity
	}
	category.IsActive = false
	category.UpdatedAt = time.Now()
	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return err
	}
	uc.invalidate()
	return nil
}

// List lista las categorías activas (o todas con includeInactive).
func (uc *CategoryUseCase) List(ctx context.Context, includeInactive bool) ([]dto.CatalogEntryResponse, error) {
	list, err := uc.categoryRepo.List(ctx, includeInactive)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CatalogEntryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCatalogResponse(c.ID, c.Name, c.Description, c.IsActive, c.CreatedAt, c.UpdatedAt))
	}
	return items, nil
}

func (uc *CategoryUseCase) invalidate() {
	if uc.invalidator != nil {
		uc.invalidator.Invalidate()
	}
}

func toCatalogResponse(id, name, description string, isActive bool, createdAt, updatedAt time.Time) *dto.CatalogEntryResponse {
	return &dto.CatalogEntryResponse{
		ID:          id,
		Name:        name,
		Description: description,
		IsActive:    isActive,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}
