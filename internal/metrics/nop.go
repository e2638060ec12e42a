// Package metrics provides metrics collector implementations for the Partita library.
package metrics

import "github.com/soundlines/partita/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external
// metrics collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordSplitDuration discards the split duration metric.
func (n *NopMetrics) RecordSplitDuration(_ /* duration */ float64, _ /* items */ int) {
	// No-op
}

// RecordPartitionCount discards the partition count metric.
func (n *NopMetrics) RecordPartitionCount(_ /* count */ int) {
	// No-op
}

// RecordArtifactsAssigned discards the assigned artifact counter.
func (n *NopMetrics) RecordArtifactsAssigned(_ /* count */ int) {
	// No-op
}

// RecordDiagnostic discards the diagnostic counter.
func (n *NopMetrics) RecordDiagnostic(_ /* kind */ string) {
	// No-op
}
