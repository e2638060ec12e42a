// Package split implements contiguous min-max partitioning of ordered,
// weighted item sequences.
//
// The core entry point is MinMax, an exact dynamic-programming solution to
// the linear partition problem: divide an ordered sequence into k contiguous,
// non-empty groups so that the largest group's total weight is as small as
// possible. Greedy heuristics can miss the optimum; the DP never does.
//
// # Algorithm Outline
//
//  1. Build a prefix-sum table over item weights for O(1) range sums S(p, i-1).
//  2. dp[i][j] = minimal achievable "maximum group sum" for the first i items
//     split into j groups, with dp[0][0] = 0 and
//     dp[i][j] = min over p in [j-1, i-1] of max(dp[p][j-1], S(p, i-1)).
//  3. Record the split point p chosen for each (i, j).
//  4. Backtrack from (n, k) to recover the group boundaries and slice the
//     original sequence accordingly.
//
// Ties between split points resolve to the lowest p (strict < update during
// the left-to-right scan), which keeps outputs reproducible run to run.
//
// Complexity: O(n²·k) time and O(n·k) space, fine for the tens-to-hundreds
// of items per cluster this library processes.
//
// Degenerate inputs are handled without error: an empty sequence yields an
// empty set, k == 1 yields one all-item partition, and k >= n yields n
// singleton partitions. The only fatal condition is k <= 0, reported as
// types.ErrInvalidPartitionCount.
package split
