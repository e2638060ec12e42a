package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// The Planner may process transitions concurrently, so all methods must be
// safe for concurrent use.
type MetricsCollector interface {
	SplitMetrics
	AssignMetrics
}

// SplitMetrics defines metrics for partition optimizer runs.
type SplitMetrics interface {
	// RecordSplitDuration records the time taken by one min-max split.
	//
	// Parameters:
	//   - duration: Time taken in seconds
	//   - items: Number of input items
	RecordSplitDuration(duration float64, items int)

	// RecordPartitionCount records the number of partitions produced by a split.
	RecordPartitionCount(count int)
}

// AssignMetrics defines metrics for artifact assignment runs.
type AssignMetrics interface {
	// RecordArtifactsAssigned records the number of artifacts distributed in
	// one assignment.
	RecordArtifactsAssigned(count int)

	// RecordDiagnostic records a non-fatal assignment condition by kind
	// ("empty_pool", "size_mismatch").
	RecordDiagnostic(kind string)
}
