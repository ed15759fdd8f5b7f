package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "hospital_billing_"

	ResultSuccess = "success"
	ResultError   = "error"
	ResultEmpty   = "empty"
)

var (
	registerOnce sync.Once

	reportTotal   *prometheus.CounterVec
	reportLatency *prometheus.HistogramVec
	reportRecords prometheus.Histogram

	exportTotal   *prometheus.CounterVec
	exportLatency *prometheus.HistogramVec

	paymentTotal *prometheus.CounterVec

	cacheLookups *prometheus.CounterVec
)

// Init registers the collectors on the default registry. Safe to call more
// than once.
func Init() {
	registerOnce.Do(func() {
		reportTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "report_total",
				Help: "Total report pipeline runs by kind and result",
			},
			[]string{"kind", "result"},
		)
		reportLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "report_latency_seconds",
				Help:    "Report pipeline latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"kind", "result"},
		)
		reportRecords = prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "report_records",
				Help:    "Records returned per report after filtering",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
		)
		exportTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "export_total",
				Help: "Total exports by format and result",
			},
			[]string{"format", "result"},
		)
		exportLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "export_latency_seconds",
				Help:    "Export latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"format", "result"},
		)
		paymentTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "invoice_payments_total",
				Help: "Total invoice due settlements by result",
			},
			[]string{"result"},
		)
		cacheLookups = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "record_cache_lookups_total",
				Help: "Record cache lookups by outcome",
			},
			[]string{"outcome"},
		)

		prometheus.MustRegister(
			reportTotal,
			reportLatency,
			reportRecords,
			exportTotal,
			exportLatency,
			paymentTotal,
			cacheLookups,
		)
	})
}

// ObserveReport records one pipeline run. kind is list, totals or overview.
func ObserveReport(kind, result string, records int, duration time.Duration) {
	if kind == "" {
		kind = "unknown"
	}
	if result == "" {
		result = ResultSuccess
	}
	if reportTotal != nil {
		reportTotal.WithLabelValues(kind, result).Inc()
	}
	if reportLatency != nil {
		reportLatency.WithLabelValues(kind, result).Observe(duration.Seconds())
	}
	if reportRecords != nil && result == ResultSuccess {
		reportRecords.Observe(float64(records))
	}
}

// ObserveExport records export latency and result.
func ObserveExport(format, result string, duration time.Duration) {
	if format == "" {
		format = "unknown"
	}
	if result == "" {
		result = ResultSuccess
	}
	if exportTotal != nil {
		exportTotal.WithLabelValues(format, result).Inc()
	}
	if exportLatency != nil {
		exportLatency.WithLabelValues(format, result).Observe(duration.Seconds())
	}
}

func IncPayment(result string) {
	if result == "" {
		result = ResultSuccess
	}
	if paymentTotal != nil {
		paymentTotal.WithLabelValues(result).Inc()
	}
}

// IncCacheLookup counts a record cache hit or miss.
func IncCacheLookup(hit bool) {
	if cacheLookups == nil {
		return
	}
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	cacheLookups.WithLabelValues(outcome).Inc()
}
