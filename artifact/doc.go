// Package artifact provides artifact pool implementations.
//
// An artifact pool lists the generated files available for a cluster
// transition, lexically sorted, so the assigner can distribute them across
// partitions deterministically. The Dir pool reads MIDI interpolation
// directories laid out as <root>/<transition>/*.mid; a Static pool serves
// fixed lists for testing.
package artifact
