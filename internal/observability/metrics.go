// Package observability holds the Prometheus instruments for the sync
// collector. Metrics are registered on the default registry and exposed
// through /metrics.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	syncBatchesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "focusup",
		Subsystem: "activity",
		Name:      "sync_batches_total",
		Help:      "Activity sync batches received, labelled by outcome.",
	}, []string{"outcome"})

	syncedRecordsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "focusup",
		Subsystem: "activity",
		Name:      "synced_records_total",
		Help:      "Individual day records accepted by the sync collector.",
	})

	lastSyncGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "focusup",
		Subsystem: "activity",
		Name:      "last_sync_timestamp_seconds",
		Help:      "Unix timestamp of the most recent accepted sync batch.",
	})
)

func init() {
	prometheus.MustRegister(syncBatchesTotal, syncedRecordsTotal, lastSyncGauge)
}

// RecordSyncBatch counts one processed batch and, when accepted, advances
// the sync watermark.
func RecordSyncBatch(outcome string, records int, ts time.Time) {
	syncBatchesTotal.WithLabelValues(outcome).Inc()
	if outcome != "accepted" {
		return
	}
	syncedRecordsTotal.Add(float64(records))
	if !ts.IsZero() {
		lastSyncGauge.Set(float64(ts.Unix()))
	}
}
