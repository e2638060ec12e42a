package types

import (
	"encoding/binary"
	"strings"

	"github.com/zeebo/xxh3"
)

// Partition is one contiguous, non-empty group of the partitioned sequence.
//
// Partitions are the unit of artifact assignment. Each partition holds its
// member items in original sequence order together with the summed weight
// used for balancing and surplus routing.
type Partition struct {
	// Index is the 1-based position of this partition within its PartitionSet.
	Index int `json:"partition"`

	// Items are the member items in original sequence order.
	Items []Item `json:"items"`

	// TotalWeight is the sum of member item weights.
	TotalWeight int `json:"word_count"`
}

// ItemIDs returns the member item IDs in order.
func (p Partition) ItemIDs() []string {
	ids := make([]string, len(p.Items))
	for i, it := range p.Items {
		ids[i] = it.ID
	}

	return ids
}

// IDKey returns the canonical comma-joined identifier list for the partition.
// This matches the Sentence_IDs column format of the persisted summaries and
// is suitable as a stable, human-readable partition description.
//
// Returns:
//   - string: Comma-joined item IDs ("" if the partition is empty)
func (p Partition) IDKey() string {
	return strings.Join(p.ItemIDs(), ",")
}

// PartitionSet is the ordered result of partitioning one input sequence.
//
// Invariants (established by the split package, relied on by consumers):
//   - Partitions appear in ascending Index order starting at 1
//   - Concatenating all Items in order reproduces the input exactly
//   - No partition is empty
type PartitionSet []Partition

// TotalWeight returns the summed weight across all partitions.
func (s PartitionSet) TotalWeight() int {
	total := 0
	for _, p := range s {
		total += p.TotalWeight
	}

	return total
}

// MaxWeight returns the largest partition weight in the set, or 0 for an
// empty set. This is the quantity the min-max optimizer minimizes.
func (s PartitionSet) MaxWeight() int {
	maxW := 0
	for _, p := range s {
		if p.TotalWeight > maxW {
			maxW = p.TotalWeight
		}
	}

	return maxW
}

// Heaviest returns the index (position in s, not Partition.Index) of the
// partition with the strictly largest TotalWeight. Ties resolve to the first
// such partition in set order. Returns -1 for an empty set.
func (s PartitionSet) Heaviest() int {
	best := -1
	bestWeight := -1
	for i, p := range s {
		if p.TotalWeight > bestWeight {
			best = i
			bestWeight = p.TotalWeight
		}
	}

	return best
}

// Items returns the concatenation of all member items in partition order.
//
// For a valid set this reproduces the original input sequence.
func (s PartitionSet) Items() []Item {
	var items []Item
	for _, p := range s {
		items = append(items, p.Items...)
	}

	return items
}

// Fingerprint returns a stable 64-bit hash of the set's structure: partition
// boundaries, member IDs, and weights. Two runs over identical inputs produce
// identical fingerprints, which makes reproducibility checks and change
// detection in persisted outputs cheap.
//
// Returns:
//   - uint64: xxh3 hash of the canonical set encoding
func (s PartitionSet) Fingerprint() uint64 {
	var h uint64
	var buf [8]byte
	for _, p := range s {
		h = xxh3.HashStringSeed(p.IDKey(), h)
		binary.LittleEndian.PutUint64(buf[:], uint64(p.TotalWeight))
		h = xxh3.HashSeed(buf[:], h)
	}

	return h
}
