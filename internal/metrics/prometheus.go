package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/soundlines/partita/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	splitDuration     prometheus.Histogram
	splitItems        prometheus.Histogram
	partitionCount    prometheus.Histogram
	artifactsAssigned prometheus.Counter
	diagnostics       *prometheus.CounterVec
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "partita" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "partita"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.splitDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "split",
			Name:      "duration_seconds",
			Help:      "Wall time of one min-max partition computation.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		})
		p.splitItems = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "split",
			Name:      "items",
			Help:      "Input sequence length per split.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		})
		p.partitionCount = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "split",
			Name:      "partitions",
			Help:      "Partitions produced per split.",
			Buckets:   prometheus.LinearBuckets(1, 1, 16),
		})
		p.artifactsAssigned = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "assign",
			Name:      "artifacts_total",
			Help:      "Total artifacts distributed across partitions.",
		})
		p.diagnostics = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "assign",
			Name:      "diagnostics_total",
			Help:      "Non-fatal assignment conditions by kind.",
		}, []string{"kind"})

		p.reg.MustRegister(
			p.splitDuration,
			p.splitItems,
			p.partitionCount,
			p.artifactsAssigned,
			p.diagnostics,
		)
	})
}

// RecordSplitDuration records the wall time and input size of one split.
func (p *PrometheusCollector) RecordSplitDuration(duration float64, items int) {
	p.ensureRegistered()
	p.splitDuration.Observe(duration)
	p.splitItems.Observe(float64(items))
}

// RecordPartitionCount records the number of partitions produced by a split.
func (p *PrometheusCollector) RecordPartitionCount(count int) {
	p.ensureRegistered()
	p.partitionCount.Observe(float64(count))
}

// RecordArtifactsAssigned adds to the distributed artifact counter.
func (p *PrometheusCollector) RecordArtifactsAssigned(count int) {
	p.ensureRegistered()
	p.artifactsAssigned.Add(float64(count))
}

// RecordDiagnostic increments the diagnostic counter for the given kind.
func (p *PrometheusCollector) RecordDiagnostic(kind string) {
	p.ensureRegistered()
	p.diagnostics.WithLabelValues(kind).Inc()
}
