package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appanalytics "github.com/jhoicas/custodia-api/internal/application/analytics"
	appledger "github.com/jhoicas/custodia-api/internal/application/ledger"
	"github.com/jhoicas/custodia-api/internal/application/usecase"
	"github.com/jhoicas/custodia-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/custodia-api/internal/interfaces/http"
	"github.com/jhoicas/custodia-api/pkg/config"
	"github.com/jhoicas/custodia-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("esquema de base de datos")
	}

	categoryRepo := postgres.NewCategoryRepository(pool)
	unitRepo := postgres.NewOrgUnitRepository(pool)
	assetRepo := postgres.NewAssetRepository(pool)
	transferRepo := postgres.NewTransferRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	dashboardUC := appanalytics.NewDashboardUseCase(assetRepo, transferRepo, categoryRepo, unitRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, assetRepo, dashboardUC)
	unitUC := usecase.NewOrgUnitUseCase(unitRepo, assetRepo, dashboardUC)
	assetUC := usecase.NewAssetUseCase(assetRepo, categoryRepo, dashboardUC)
	recordTransferUC := appledger.NewRecordTransferUseCase(txRunner, assetRepo, unitRepo, transferRepo, dashboardUC)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Custodia API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoryUC:     categoryUC,
		OrgUnitUC:      unitUC,
		AssetUC:        assetUC,
		RecordTransfer: recordTransferUC,
		DashboardUC:    dashboardUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
