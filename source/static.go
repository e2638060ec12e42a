package source

import (
	"context"
	"strconv"
	"sync"

	"github.com/soundlines/partita/types"
)

// Static implements an item source with fixed in-memory clusters and items.
type Static struct {
	mu       sync.RWMutex
	clusters []types.Cluster
	items    []types.Item
}

var _ types.ItemSource = (*Static)(nil)

// NewStatic creates a new static item source.
//
// The source serves a fixed item sequence sliced by cluster ID ranges.
// Useful for testing and for callers that already hold their records in
// memory.
//
// Parameters:
//   - clusters: Ordered cluster ranges
//   - items: Full ordered item sequence (IDs must be numeric strings for
//     range filtering, matching the CSV source behavior)
//
// Returns:
//   - *Static: Initialized static source
func NewStatic(clusters []types.Cluster, items []types.Item) *Static {
	return &Static{
		clusters: clusters,
		items:    items,
	}
}

// ListClusters returns the fixed cluster list.
func (s *Static) ListClusters(_ context.Context) ([]types.Cluster, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]types.Cluster, len(s.clusters))
	copy(result, s.clusters)

	return result, nil
}

// ListItems returns the items whose numeric IDs fall inside the cluster's
// [StartID, EndID] range, in original order.
func (s *Static) ListItems(_ context.Context, cluster types.Cluster) ([]types.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []types.Item
	for _, it := range s.items {
		id, err := strconv.Atoi(it.ID)
		if err != nil {
			continue
		}
		if id >= cluster.StartID && id <= cluster.EndID {
			result = append(result, it)
		}
	}

	return result, nil
}

// Update replaces the item sequence.
//
// Parameters:
//   - items: New full ordered item sequence
func (s *Static) Update(items []types.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = items
}
