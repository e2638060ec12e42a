// Package types provides core type definitions and interfaces for the Partita library.
//
// This package contains shared types that are used across multiple packages in the
// Partita library. By keeping these types in a separate package, we avoid import
// cycles between the main partita package and its internal implementations.
//
// Key types:
//   - Item: Ordered, word-weighted input record (typically one story sentence)
//   - Partition: Contiguous group of items with its summed weight
//   - PartitionSet: Ordered partitions covering one input sequence
//   - Assignment: Partition-to-artifact mapping for one transition
//   - Diagnostic: Non-fatal condition reported by the artifact assigner
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
