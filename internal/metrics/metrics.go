// Package metrics holds the Prometheus collectors of the ingestion pipeline
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dao_indexer"

// Ingestion modes
const (
	ModeBackfill = "backfill"
	ModeLive     = "live"
)

// Range outcomes
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// Reasons a poll tick did no work
const (
	SkipBackfillPending = "backfill_pending"
	SkipInFlight        = "in_flight"
	SkipNoNewBlocks     = "no_new_blocks"
)

var (
	// CheckpointBlock is the last durably processed block
	CheckpointBlock = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "checkpoint_block",
			Help:      "Last block whose events are durably projected",
		},
	)

	// ChainTipBlock is the chain height observed by the last range
	ChainTipBlock = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "chain_tip_block",
			Help:      "Chain tip observed at the start of the last range",
		},
	)

	// EventsTotal counts projected events by kind and result status
	EventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Projected events",
		},
		[]string{"kind", "status"}, // status: applied, duplicate, failed
	)

	// RangesTotal counts processed block ranges
	RangesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ranges_total",
			Help:      "Processed block ranges",
		},
		[]string{"mode", "status"},
	)

	// RangeDuration is the wall time of one range from fetch to checkpoint write
	RangeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "range_duration_seconds",
			Help:      "Time to fetch, project and checkpoint one block range",
			Buckets:   []float64{0.05, 0.1, 0.5, 1, 2, 5, 10, 30, 60, 120},
		},
		[]string{"mode"},
	)

	// TicksSkippedTotal counts poll ticks that did no work
	TicksSkippedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticks_skipped_total",
			Help:      "Poll ticks that returned without ingesting",
		},
		[]string{"reason"},
	)

	// BackfillComplete is 1 once historical replay finished
	BackfillComplete = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "backfill_complete",
			Help:      "1 when backfill has completed, 0 otherwise",
		},
	)
)
