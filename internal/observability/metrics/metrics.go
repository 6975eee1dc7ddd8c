package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricPrefix = "marketplace_"

const (
	ResultSuccess  = "success"
	ResultRejected = "rejected"
	ResultError    = "error"
)

var (
	registerOnce sync.Once

	settlementsTotal  *prometheus.CounterVec
	settlementLatency prometheus.Histogram
	settledKWh        prometheus.Counter

	offersCreated prometheus.Counter
	samplesTotal  *prometheus.CounterVec

	snapshotCache *prometheus.CounterVec
)

// Init registers marketplace metrics with the default registry. Safe to
// call more than once.
func Init() {
	registerOnce.Do(func() {
		settlementsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "settlements_total",
				Help: "Total settlement attempts by result",
			},
			[]string{"result"},
		)
		settlementLatency = prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "settlement_latency_seconds",
				Help:    "Settlement latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
		)
		settledKWh = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "settled_kwh_total",
				Help: "Total energy settled in kWh",
			},
		)
		offersCreated = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "offers_created_total",
				Help: "Total sell offers created",
			},
		)
		samplesTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "meter_samples_total",
				Help: "Total meter samples ingested by result",
			},
			[]string{"result"},
		)
		snapshotCache = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "snapshot_cache_total",
				Help: "Market snapshot cache lookups by outcome",
			},
			[]string{"outcome"},
		)

		prometheus.MustRegister(
			settlementsTotal,
			settlementLatency,
			settledKWh,
			offersCreated,
			samplesTotal,
			snapshotCache,
		)
	})
}

// ObserveSettlement records one settlement attempt.
func ObserveSettlement(result string, kwh float64, elapsed time.Duration) {
	if settlementsTotal == nil {
		return
	}
	settlementsTotal.WithLabelValues(result).Inc()
	settlementLatency.Observe(elapsed.Seconds())
	if result == ResultSuccess {
		settledKWh.Add(kwh)
	}
}

// IncOfferCreated records one successful offer creation.
func IncOfferCreated() {
	if offersCreated == nil {
		return
	}
	offersCreated.Inc()
}

// IncSample records one sample ingestion attempt.
func IncSample(result string) {
	if samplesTotal == nil {
		return
	}
	samplesTotal.WithLabelValues(result).Inc()
}

// IncSnapshotCache records a snapshot cache hit or miss.
func IncSnapshotCache(outcome string) {
	if snapshotCache == nil {
		return
	}
	snapshotCache.WithLabelValues(outcome).Inc()
}
