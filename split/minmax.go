package split

import (
	"fmt"
	"math"

	"github.com/soundlines/partita/types"
)

// MinMax partitions items into at most k contiguous, non-empty groups,
// minimizing the largest group's total weight.
//
// The input order is authoritative and never resorted; each returned
// partition is a contiguous slice of items, and concatenating all partitions
// in order reproduces the input exactly. When fewer items than partitions are
// available, the effective partition count is capped at len(items).
//
// Parameters:
//   - items: Ordered weighted items (may be empty)
//   - k: Requested partition count (must be positive)
//
// Returns:
//   - types.PartitionSet: min(k, len(items)) partitions in input order
//   - error: types.ErrInvalidPartitionCount when k <= 0, nil otherwise
//
// Example:
//
//	set, err := split.MinMax(items, 5)
//	if err != nil { /* handle bad k */ }
//	for _, p := range set {
//	    fmt.Println(p.Index, p.TotalWeight)
//	}
func MinMax(items []types.Item, k int) (types.PartitionSet, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: got %d", types.ErrInvalidPartitionCount, k)
	}

	n := len(items)
	if n == 0 {
		return types.PartitionSet{}, nil
	}
	if k > n {
		k = n
	}

	var bounds []int
	switch {
	case k == 1:
		bounds = []int{n}
	case k == n:
		bounds = make([]int, n)
		for i := range bounds {
			bounds[i] = i + 1
		}
	default:
		bounds = optimalBounds(items, k)
	}

	return buildSet(items, bounds), nil
}

// optimalBounds computes the k exclusive end indices of the optimal
// partitioning of items via dynamic programming over prefix sums.
// Requires 1 < k < len(items).
func optimalBounds(items []types.Item, k int) []int {
	n := len(items)

	// prefix[i] is the total weight of items[0:i].
	prefix := make([]int, n+1)
	for i, it := range items {
		prefix[i+1] = prefix[i] + it.Weight
	}

	// dp[i][j] is the minimal achievable maximum group sum when splitting the
	// first i items into j groups; splits[i][j] is the start index of the
	// last group in that optimum.
	dp := make([][]int, n+1)
	splits := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, k+1)
		splits[i] = make([]int, k+1)
		for j := range dp[i] {
			dp[i][j] = math.MaxInt
		}
	}
	dp[0][0] = 0

	for i := 1; i <= n; i++ {
		jmax := min(i, k)
		for j := 1; j <= jmax; j++ {
			for p := j - 1; p < i; p++ {
				lastSum := prefix[i] - prefix[p]
				candidate := dp[p][j-1]
				if lastSum > candidate {
					candidate = lastSum
				}
				// Strict < keeps the lowest split point on ties, which pins
				// the output for reproducibility.
				if candidate < dp[i][j] {
					dp[i][j] = candidate
					splits[i][j] = p
				}
			}
		}
	}

	// Backtrack from (n, k) to recover group end indices.
	bounds := make([]int, k)
	curr := n
	for j := k; j >= 1; j-- {
		bounds[j-1] = curr
		curr = splits[curr][j]
	}

	return bounds
}

// buildSet slices items at the given exclusive end indices into an indexed,
// weighted PartitionSet.
func buildSet(items []types.Item, bounds []int) types.PartitionSet {
	set := make(types.PartitionSet, 0, len(bounds))
	start := 0
	for i, end := range bounds {
		members := items[start:end]
		set = append(set, types.Partition{
			Index:       i + 1,
			Items:       members,
			TotalWeight: types.TotalWeight(members),
		})
		start = end
	}

	return set
}
