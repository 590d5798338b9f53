// Package metrics expone los contadores Prometheus del ledger de custodia.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TransfersRecorded transferencias asentadas con éxito en el ledger.
	TransfersRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "custodia",
		Name:      "transfers_recorded_total",
		Help:      "Transferencias registradas en el ledger.",
	})

	// TransferFailures transferencias rechazadas, por tipo de error.
	TransferFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "custodia",
		Name:      "transfer_failures_total",
		Help:      "Transferencias rechazadas, etiquetadas por tipo de error.",
	}, []string{"kind"})

	// ReconciledAssets activos cuyo cache de ubicación corrigió la reconciliación.
	ReconciledAssets = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "custodia",
		Name:      "reconciled_assets_total",
		Help:      "Activos reparados por la rutina de reconciliación.",
	})
)
