package assign

import "github.com/soundlines/partita/types"

// PerPartition is the nominal artifact quota per partition.
const PerPartition = 2

// Artifacts distributes the artifact pool across the partition set.
//
// The pool must be pre-sorted lexically by the caller; it is consumed front
// to back, PerPartition artifacts per partition in set order. An odd pool
// leaves one surplus artifact, which goes to the partition with the largest
// TotalWeight (the first such partition on ties). When the pool runs out
// early, later partitions receive fewer than their quota; when it is longer
// than the quotas can absorb, the remainder is appended to the final
// partition so that every artifact lands exactly once.
//
// Pool sizes outside {2m, 2m+1} are reported as a SizeMismatch diagnostic,
// an empty pool as EmptyPool with an empty assignment. Neither is an error.
//
// Parameters:
//   - set: Ordered partitions (may be empty)
//   - pool: Lexically sorted artifact identifiers
//
// Returns:
//   - types.Assignment: One entry per partition, in partition order
//   - types.Diagnostic: Non-fatal condition report (Kind == DiagNone when nominal)
func Artifacts(set types.PartitionSet, pool []string) (types.Assignment, types.Diagnostic) {
	m := len(set)
	expected := m * PerPartition
	diag := types.Diagnostic{Kind: types.DiagNone, Expected: expected, Actual: len(pool)}

	if len(pool) == 0 {
		diag.Kind = types.DiagEmptyPool
		return types.Assignment{}, diag
	}

	if m == 0 || (len(pool) != expected && len(pool) != expected+1) {
		diag.Kind = types.DiagSizeMismatch
	}

	// A single surplus artifact goes to the heaviest partition. Linear scan,
	// first on ties; the surplus rule is fixed policy, not a balancing pass.
	surplusIdx := -1
	if len(pool)%2 == 1 {
		surplusIdx = set.Heaviest()
	}

	assignment := make(types.Assignment, 0, m)
	next := 0
	for i, p := range set {
		quota := PerPartition
		if i == surplusIdx {
			quota++
		}

		var allocated []string
		for range quota {
			if next >= len(pool) {
				break
			}
			allocated = append(allocated, pool[next])
			next++
		}

		assignment = append(assignment, types.PartitionArtifacts{
			Partition: p.Index,
			ItemIDs:   p.IDKey(),
			NumItems:  len(p.Items),
			Weight:    p.TotalWeight,
			Artifacts: allocated,
		})
	}

	// An oversized pool (already flagged as SizeMismatch) drains onto the
	// last partition; no artifact is ever dropped.
	if next < len(pool) && m > 0 {
		last := &assignment[m-1]
		last.Artifacts = append(last.Artifacts, pool[next:]...)
	}

	return assignment, diag
}
