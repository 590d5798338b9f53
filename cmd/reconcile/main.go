// Comando de reconciliación: recorre todos los activos, recalcula la
// ubicación desde el ledger y repara cualquier cache desviado. Pensado para
// correrse por cron o a demanda tras una restauración.
package main

import (
	"context"
	"time"

	appledger "github.com/jhoicas/custodia-api/internal/application/ledger"
	"github.com/jhoicas/custodia-api/internal/infrastructure/postgres"
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	assetRepo := postgres.NewAssetRepository(pool)
	transferRepo := postgres.NewTransferRepository(pool)

	uc := appledger.NewReconcileUseCase(assetRepo, transferRepo, log)
	repaired, err := uc.Run(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("reconciliación")
	}
	log.Info().Int("reparados", repaired).Msg("reconciliación completada")
}
