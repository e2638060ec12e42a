// Package source provides item source implementations.
//
// An item source supplies the ordered, word-weighted records a Planner
// partitions. Two implementations are included:
//
//   - CSV: reads the clustered sentence dataset and cluster statistics
//     produced by the upstream prediction stage
//   - Static: fixed in-memory lists, for testing and embedding
//
// Custom sources can be implemented by satisfying the types.ItemSource
// interface.
package source
