package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TapsCredited = promauto.NewCounter(prometheus.CounterOpts{
		Name: "earnbit_taps_credited_total",
		Help: "Number of taps credited to coin accumulators.",
	})

	Conversions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "earnbit_coin_conversions_total",
		Help: "Number of 1000-coin to currency conversions.",
	})

	VersionConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "earnbit_version_conflicts_total",
		Help: "Number of optimistic-concurrency write conflicts.",
	})

	WithdrawalsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "earnbit_withdrawals_created_total",
		Help: "Number of withdrawal requests created.",
	})

	WithdrawalsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "earnbit_withdrawals_processed_total",
		Help: "Number of withdrawal requests processed by terminal status.",
	}, []string{"status"})
)
