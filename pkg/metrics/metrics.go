// Package metrics provides Prometheus instrumentation for raseguard operations.
// It exposes counters and histograms for fragment encode/decode and secret
// split/reconstruct operations, plus resource gauges for the CLI process.
package metrics

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	// Namespace is the Prometheus namespace for all raseguard metrics.
	Namespace = "raseguard"

	// Label names
	LabelOperation = "operation"
	LabelStatus    = "status"
	LabelErrorType = "error_type"

	// Status values
	StatusSuccess = "success"
	StatusError   = "error"

	// Operation names
	OpEncode       = "encode"
	OpDecode       = "decode"
	OpSplit        = "split"
	OpReconstruct  = "reconstruct"
	OpProtect      = "protect"
	OpRecover      = "recover"
)

var (
	// OperationsTotal tracks the total number of engine operations by type and status.
	OperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "operations_total",
			Help:      "Total number of FragmentCodec/ThresholdSecretSplitter operations by type and status",
		},
		[]string{LabelOperation, LabelStatus},
	)

	// OperationDuration tracks the duration of engine operations in seconds.
	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "operation_duration_seconds",
			Help:      "Duration of FragmentCodec/ThresholdSecretSplitter operations in seconds",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{LabelOperation},
	)

	// ErrorsTotal tracks the total number of errors by operation and error type.
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "errors_total",
			Help:      "Total number of errors by operation and error type",
		},
		[]string{LabelOperation, LabelErrorType},
	)

	// FragmentsErased tracks, per recover command run, how many of the k+m
	// fragment slots were missing at decode time.
	FragmentsErased = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "fragments_erased",
			Help:      "Number of erased fragment slots observed per decode call",
			Buckets:   prometheus.LinearBuckets(0, 1, 16),
		},
	)

	// SharesUsed tracks, per reconstruct call, how many shares were consumed.
	SharesUsed = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "shares_used",
			Help:      "Number of shares consumed per reconstruct call",
			Buckets:   prometheus.LinearBuckets(0, 1, 16),
		},
	)

	// Goroutines tracks the current number of goroutines in the process.
	Goroutines = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "goroutines",
			Help:      "Current number of goroutines",
		},
	)

	// MemoryAllocBytes tracks the current bytes of allocated heap objects.
	MemoryAllocBytes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "memory_alloc_bytes",
			Help:      "Current bytes of allocated heap objects",
		},
	)

	// MemorySysBytes tracks the total bytes of memory obtained from the OS.
	MemorySysBytes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "memory_sys_bytes",
			Help:      "Total bytes of memory obtained from the OS",
		},
	)

	// GCPauseTotalSeconds tracks the cumulative time spent in GC stop-the-world pauses.
	GCPauseTotalSeconds = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "gc_pause_total_seconds",
			Help:      "Cumulative time spent in GC stop-the-world pauses",
		},
	)

	// ServerUptime tracks process uptime in seconds since startup.
	ServerUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "process_uptime_seconds",
			Help:      "Process uptime in seconds since startup",
		},
	)

	// enabled tracks whether metrics collection is enabled.
	enabled atomic.Bool
)

func init() {
	enabled.Store(true)
}

// RecordOperation records an engine operation with its duration and status.
//
// Example:
//
//	start := time.Now()
//	_, err := codec.Encode(data)
//	duration := time.Since(start).Seconds()
//	if err != nil {
//	    RecordOperation(OpEncode, StatusError, duration)
//	} else {
//	    RecordOperation(OpEncode, StatusSuccess, duration)
//	}
func RecordOperation(operation, status string, duration float64) {
	if !enabled.Load() {
		return
	}
	OperationsTotal.WithLabelValues(operation, status).Inc()
	OperationDuration.WithLabelValues(operation).Observe(duration)
}

// RecordError records an error event with context about where it occurred.
func RecordError(operation, errorType string) {
	if !enabled.Load() {
		return
	}
	ErrorsTotal.WithLabelValues(operation, errorType).Inc()
}

// RecordErasures records the number of erased fragment slots seen by a decode call.
func RecordErasures(count int) {
	if !enabled.Load() {
		return
	}
	FragmentsErased.Observe(float64(count))
}

// RecordSharesUsed records the number of shares consumed by a reconstruct call.
func RecordSharesUsed(count int) {
	if !enabled.Load() {
		return
	}
	SharesUsed.Observe(float64(count))
}

// Enable enables metrics collection.
func Enable() {
	enabled.Store(true)
}

// Disable disables metrics collection. Useful for testing.
func Disable() {
	enabled.Store(false)
}

// IsEnabled returns whether metrics collection is currently enabled.
func IsEnabled() bool {
	return enabled.Load()
}
