// Package analytics contiene los casos de uso de agregación del dashboard:
// resumen por ubicación/condición/categoría/unidad y actividad reciente.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jhoicas/custodia-api/internal/application/dto"
	"github.com/jhoicas/custodia-api/internal/domain"
	"github.com/jhoicas/custodia-api/internal/domain/repository"
)

// DefaultRecentLimit tamaño del feed de actividad cuando el caller no pide otro.
const DefaultRecentLimit = 20

// DashboardUseCase calcula vistas derivadas sobre registro y ledger.
//
// Solo lectura: nunca muta registro ni ledger. El resumen se cachea y las
// mutaciones exitosas lo invalidan vía Invalidate(); entre invalidación y
// recálculo el lector puede observar un resumen anterior (consistencia
// eventual), pero nunca una transferencia sin su actualización de cache,
// porque ambas se publican en una sola transacción.
type DashboardUseCase struct {
	assetRepo    repository.AssetRepository
	transferRepo repository.TransferRepository
	categoryRepo repository.CategoryRepository
	unitRepo     repository.OrgUnitRepository

	mu     sync.Mutex
	cached *dto.DashboardSummaryDTO
	gen    uint64
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	assetRepo repository.AssetRepository,
	transferRepo repository.TransferRepository,
	categoryRepo repository.CategoryRepository,
	unitRepo repository.OrgUnitRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		assetRepo:    assetRepo,
		transferRepo: transferRepo,
		categoryRepo: categoryRepo,
		unitRepo:     unitRepo,
	}
}

// Invalidate descarta el resumen cacheado. Lo llaman los casos de uso de
// mutación tras cada transferencia exitosa o cambio de catálogo/registro.
// El contador de generación marca como obsoleto cualquier cálculo en vuelo:
// un Summary que leyó antes de esta invalidación no puede cachear su resultado.
func (uc *DashboardUseCase) Invalidate() {
	uc.mu.Lock()
	uc.cached = nil
	uc.gen++
	uc.mu.Unlock()
}

// Summary devuelve el resumen agregado sobre los activos activos.
// Garantiza count_in_warehouse + count_in_units == total_assets y orden
// determinista en los rankings (conteo desc, nombre asc).
func (uc *DashboardUseCase) Summary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	uc.mu.Lock()
	if uc.cached != nil {
		cached := uc.cached
		uc.mu.Unlock()
		return cached, nil
	}
	gen := uc.gen
	uc.mu.Unlock()

	summary, err := uc.computeSummary(ctx)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	// Si hubo una invalidación mientras calculábamos, el resultado ya no
	// refleja el estado actual: se devuelve pero no se cachea.
	if uc.gen == gen {
		uc.cached = summary
	}
	uc.mu.Unlock()
	return summary, nil
}

func (uc *DashboardUseCase) computeSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	assets, err := uc.assetRepo.ListAllActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: listar activos: %w", err)
	}
	categories, err := uc.categoryRepo.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("dashboard: listar categorías: %w", err)
	}
	units, err := uc.unitRepo.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("dashboard: listar unidades: %w", err)
	}

	categoryNames := make(map[string]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
	}
	unitNames := make(map[string]string, len(units))
	for _, u := range units {
		unitNames[u.ID] = u.Name
	}

	summary := &dto.DashboardSummaryDTO{
		ByCondition: make(map[string]int64),
		ByCategory:  []dto.NamedCountDTO{},
		ByUnit:      []dto.NamedCountDTO{},
	}
	byCategory := make(map[string]int64)
	byUnit := make(map[string]int64)

	for _, asset := range assets {
		summary.TotalAssets++
		if asset.CurrentLocation.IsWarehouse() {
			summary.CountInWarehouse++
		} else {
			summary.CountInUnits++
			byUnit[unitNames[asset.CurrentLocation.UnitID]]++
		}
		summary.ByCondition[asset.Condition]++
		byCategory[categoryNames[asset.CategoryID]]++
	}

	summary.ByCategory = sortedCounts(byCategory)
	summary.ByUnit = sortedCounts(byUnit)
	return summary, nil
}

// sortedCounts ordena por conteo descendente y nombre ascendente a igual conteo.
func sortedCounts(counts map[string]int64) []dto.NamedCountDTO {
	out := make([]dto.NamedCountDTO, 0, len(counts))
	for name, count := range counts {
		out = append(out, dto.NamedCountDTO{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// RecentTransfers devuelve las últimas transferencias de todos los activos,
// más reciente primero. domain.ErrInvalidLimit si limit <= 0; el valor por
// defecto lo aplica el caller cuando el límite no viene (DefaultRecentLimit).
func (uc *DashboardUseCase) RecentTransfers(ctx context.Context, limit int) ([]dto.TransferResponse, error) {
	if limit <= 0 {
		return nil, domain.ErrInvalidLimit
	}
	list, err := uc.transferRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("dashboard: transferencias recientes: %w", err)
	}
	items := make([]dto.TransferResponse, 0, len(list))
	for _, t := range list {
		items = append(items, dto.NewTransferResponse(t))
	}
	return items, nil
}
