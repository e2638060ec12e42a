package artifact

import (
	"context"
	"sort"

	"github.com/soundlines/partita/types"
)

// Static implements an artifact pool with fixed per-transition lists.
type Static struct {
	pools map[string][]string
}

var _ types.ArtifactPool = (*Static)(nil)

// NewStatic creates a static artifact pool.
//
// Lists are sorted lexically on construction so callers can supply them in
// any order.
//
// Parameters:
//   - pools: Map from transition to artifact identifiers
//
// Returns:
//   - *Static: Initialized pool
func NewStatic(pools map[string][]string) *Static {
	sorted := make(map[string][]string, len(pools))
	for transition, names := range pools {
		cp := make([]string, len(names))
		copy(cp, names)
		sort.Strings(cp)
		sorted[transition] = cp
	}

	return &Static{pools: sorted}
}

// ListArtifacts returns the fixed, sorted list for the transition (nil when
// the transition is unknown).
func (s *Static) ListArtifacts(_ context.Context, transition string) ([]string, error) {
	names := s.pools[transition]
	result := make([]string, len(names))
	copy(result, names)

	return result, nil
}
