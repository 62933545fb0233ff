package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Ledger metrics
	MovementsRecorded *prometheus.CounterVec
	MovementsReversed *prometheus.CounterVec
	MovementsDeleted  prometheus.Counter

	// Reconciliation metrics
	ImportRows        *prometheus.CounterVec
	ImportBatches     prometheus.Counter
	ExportedMovements prometheus.Counter

	// Database metrics
	DBErrors *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		MovementsRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inventory_movements_recorded_total",
				Help: "Total number of movements recorded by direction",
			},
			[]string{"direction"},
		),
		MovementsReversed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inventory_movements_reversed_total",
				Help: "Total number of undo/redo transitions",
			},
			[]string{"transition"},
		),
		MovementsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "inventory_movements_deleted_total",
			Help: "Total number of movements permanently deleted",
		}),

		ImportRows: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inventory_import_rows_total",
				Help: "Total number of import rows by result",
			},
			[]string{"result"},
		),
		ImportBatches: promauto.NewCounter(prometheus.CounterOpts{
			Name: "inventory_import_batches_total",
			Help: "Total number of import batches processed",
		}),
		ExportedMovements: promauto.NewCounter(prometheus.CounterOpts{
			Name: "inventory_exported_movements_total",
			Help: "Total number of movements exported",
		}),

		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inventory_db_errors_total",
				Help: "Total number of database errors by operation",
			},
			[]string{"operation"},
		),
	}
}
