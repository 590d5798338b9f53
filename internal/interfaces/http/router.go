package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/custodia-api/internal/application/analytics"
	"github.com/jhoicas/custodia-api/internal/application/ledger"
	"github.com/jhoicas/custodia-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC     *usecase.CategoryUseCase
	OrgUnitUC      *usecase.OrgUnitUseCase
	AssetUC        *usecase.AssetUseCase
	RecordTransfer *ledger.RecordTransferUseCase
	DashboardUC    *analytics.DashboardUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo: categorías y unidades organizacionales
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Deactivate)

	units := api.Group("/units")
	unitHandler := NewOrgUnitHandler(deps.OrgUnitUC)
	units.Post("/", unitHandler.Create)
	units.Get("/", unitHandler.List)
	units.Get("/:id", unitHandler.GetByID)
	units.Put("/:id", unitHandler.Update)
	units.Delete("/:id", unitHandler.Deactivate)

	// Activos
	assets := api.Group("/assets")
	assetHandler := NewAssetHandler(deps.AssetUC)
	transferHandler := NewTransferHandler(deps.RecordTransfer, deps.AssetUC)
	assets.Post("/", assetHandler.Create)
	assets.Get("/", assetHandler.List)
	assets.Get("/:id", assetHandler.GetByID)
	assets.Put("/:id", assetHandler.Update)
	assets.Delete("/:id", assetHandler.Deactivate)
	assets.Get("/:id/transfers", transferHandler.History)

	// Ledger de transferencias
	transfers := api.Group("/transfers")
	transfers.Post("/", transferHandler.Record)
	transfers.Get("/", transferHandler.List)

	// Dashboard
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)
	dashboard.Get("/recent-transfers", dashboardHandler.GetRecentTransfers)
}
