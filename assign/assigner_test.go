package assign

import (
	"fmt"
	"testing"

	"github.com/soundlines/partita/types"
	"github.com/stretchr/testify/require"
)

// setOf builds an indexed partition set with the given total weights; member
// items are synthesized to keep metadata consistent.
func setOf(weights ...int) types.PartitionSet {
	set := make(types.PartitionSet, len(weights))
	for i, w := range weights {
		set[i] = types.Partition{
			Index:       i + 1,
			Items:       []types.Item{{ID: fmt.Sprintf("%d", i+1), Weight: w}},
			TotalWeight: w,
		}
	}

	return set
}

// pool builds n artifact names in lexical order.
func pool(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("interp_%03d.mid", i)
	}

	return names
}

func collect(a types.Assignment) []string {
	var all []string
	for _, pa := range a {
		all = append(all, pa.Artifacts...)
	}

	return all
}

func TestArtifacts_NominalEvenPool(t *testing.T) {
	set := setOf(10, 20, 30)
	artifacts := pool(6)

	assignment, diag := Artifacts(set, artifacts)

	require.True(t, diag.OK())
	require.Len(t, assignment, 3)
	for i, pa := range assignment {
		require.Equal(t, i+1, pa.Partition)
		require.Len(t, pa.Artifacts, 2)
	}
	require.Equal(t, artifacts, collect(assignment), "pool order must be preserved")
}

func TestArtifacts_OddPoolSurplusToHeaviest(t *testing.T) {
	// m=3, 7 artifacts: the heaviest partition (index 2) gets 3, others 2.
	set := setOf(10, 45, 30)
	artifacts := pool(7)

	assignment, diag := Artifacts(set, artifacts)

	require.True(t, diag.OK(), "2m+1 is a valid pool size")
	require.Len(t, assignment, 3)
	require.Len(t, assignment[0].Artifacts, 2)
	require.Len(t, assignment[1].Artifacts, 3)
	require.Len(t, assignment[2].Artifacts, 2)
	require.Equal(t, artifacts, collect(assignment), "all 7 artifacts appear exactly once")
}

func TestArtifacts_SurplusTieBreaksToFirstPartition(t *testing.T) {
	// Equal weights: the surplus goes to the first partition in order.
	set := setOf(25, 25)
	artifacts := pool(5)

	assignment, diag := Artifacts(set, artifacts)

	require.True(t, diag.OK())
	require.Len(t, assignment[0].Artifacts, 3)
	require.Len(t, assignment[1].Artifacts, 2)
}

func TestArtifacts_EmptyPool(t *testing.T) {
	assignment, diag := Artifacts(setOf(5, 5), nil)

	require.Equal(t, types.DiagEmptyPool, diag.Kind)
	require.Empty(t, assignment)
}

func TestArtifacts_ShortPoolDegradesGracefully(t *testing.T) {
	// m=3 but only 3 artifacts: earlier partitions fill first, the last one
	// goes without. Diagnosed, not fatal.
	set := setOf(10, 20, 30)
	artifacts := pool(3)

	assignment, diag := Artifacts(set, artifacts)

	require.Equal(t, types.DiagSizeMismatch, diag.Kind)
	require.Equal(t, 6, diag.Expected)
	require.Equal(t, 3, diag.Actual)
	require.Len(t, assignment, 3)
	require.Len(t, assignment[0].Artifacts, 2)
	require.Len(t, assignment[1].Artifacts, 1)
	require.Empty(t, assignment[2].Artifacts, "pool exhausted before the last partition")
	require.Equal(t, artifacts, collect(assignment))
}

func TestArtifacts_OversizedPoolDrainsOntoLastPartition(t *testing.T) {
	set := setOf(10, 20)
	artifacts := pool(8)

	assignment, diag := Artifacts(set, artifacts)

	require.Equal(t, types.DiagSizeMismatch, diag.Kind)
	require.Len(t, assignment[0].Artifacts, 2)
	require.Len(t, assignment[1].Artifacts, 6, "excess artifacts land on the final partition")
	require.Equal(t, artifacts, collect(assignment))
}

func TestArtifacts_EmptyPartitionSet(t *testing.T) {
	assignment, diag := Artifacts(nil, pool(2))

	require.Equal(t, types.DiagSizeMismatch, diag.Kind)
	require.Empty(t, assignment)
}

func TestArtifacts_MetadataMatchesPartitions(t *testing.T) {
	set := types.PartitionSet{
		{
			Index:       1,
			Items:       []types.Item{{ID: "4", Weight: 6}, {ID: "5", Weight: 3}},
			TotalWeight: 9,
		},
		{
			Index:       2,
			Items:       []types.Item{{ID: "6", Weight: 12}},
			TotalWeight: 12,
		},
	}

	assignment, diag := Artifacts(set, pool(4))

	require.True(t, diag.OK())
	require.Equal(t, "4,5", assignment[0].ItemIDs)
	require.Equal(t, 2, assignment[0].NumItems)
	require.Equal(t, 9, assignment[0].Weight)
	require.Equal(t, "6", assignment[1].ItemIDs)
	require.Equal(t, 12, assignment[1].Weight)
}

func TestArtifacts_Deterministic(t *testing.T) {
	set := setOf(7, 7, 9)
	artifacts := pool(7)

	first, _ := Artifacts(set, artifacts)
	for range 10 {
		assignment, _ := Artifacts(set, artifacts)
		require.Equal(t, first, assignment)
		require.Equal(t, first.Fingerprint(), assignment.Fingerprint())
	}
}
