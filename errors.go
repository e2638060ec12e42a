package partita

import "github.com/soundlines/partita/types"

// Sentinel errors returned by the Planner. Aliased from the types package so
// errors.Is works regardless of which import path callers compare against.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrInvalidPartitionCount is returned when a non-positive partition
	// count reaches the optimizer.
	ErrInvalidPartitionCount = types.ErrInvalidPartitionCount

	// ErrItemSourceRequired is returned when the item source is nil.
	ErrItemSourceRequired = types.ErrItemSourceRequired

	// ErrArtifactPoolRequired is returned when the artifact pool is nil.
	ErrArtifactPoolRequired = types.ErrArtifactPoolRequired

	// ErrStoreRequired is returned when the persistence store is nil.
	ErrStoreRequired = types.ErrStoreRequired
)
