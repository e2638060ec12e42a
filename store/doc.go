// Package store persists partitioning and assignment results.
//
// The FS store writes the filesystem layout consumed by the downstream
// rendering tools:
//
//	<root>/<story>/cluster_<transition>/<story>_cluster_<id>_partitions.csv
//	<root>/<story>/<story>_summary.csv
//	<root>/<story>/<story>_midi_mapping.json
//
// Partition and summary files are CSV; the transition-to-artifact mapping is
// indented JSON keyed by transition.
package store
