package types

import "errors"

// Sentinel errors for the Partita library.
//
// These errors provide type-safe error checking using errors.Is() and errors.As().
// Components use these sentinels for known error conditions and wrap external
// errors with context using fmt.Errorf("%s: %w", msg, err).

var (
	// ErrInvalidPartitionCount is returned when a non-positive partition count
	// is requested from the optimizer. This is the optimizer's only fatal
	// condition; all other inputs are handled as degenerate cases.
	ErrInvalidPartitionCount = errors.New("partition count must be positive")

	// ErrInvalidConfig is returned when the planner configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrItemSourceRequired is returned when the item source is nil.
	ErrItemSourceRequired = errors.New("item source is required")

	// ErrArtifactPoolRequired is returned when the artifact pool is nil.
	ErrArtifactPoolRequired = errors.New("artifact pool is required")

	// ErrStoreRequired is returned when the persistence store is nil.
	ErrStoreRequired = errors.New("store is required")
)
