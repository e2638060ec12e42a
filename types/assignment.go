package types

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

// PartitionArtifacts records the artifacts allocated to a single partition,
// together with the partition metadata downstream renderers need. The JSON
// field names match the persisted mapping format consumed by the rendering
// tools.
type PartitionArtifacts struct {
	// Partition is the 1-based partition index within its set.
	Partition int `json:"partition"`

	// ItemIDs is the comma-joined member item ID list of the partition.
	ItemIDs string `json:"sentence_ids"`

	// NumItems is the partition's member count.
	NumItems int `json:"num_sentences"`

	// Weight is the partition's total weight.
	Weight int `json:"word_count"`

	// Artifacts are the allocated artifact identifiers in pool order.
	Artifacts []string `json:"midi_files"`
}

// Assignment is the complete partition-to-artifact mapping for one
// transition: one entry per partition, in partition order.
//
// Every artifact of the input pool appears in exactly one entry; entries at
// the tail may hold fewer artifacts than their quota when the pool ran short.
type Assignment []PartitionArtifacts

// ArtifactCount returns the total number of artifacts across all entries.
func (a Assignment) ArtifactCount() int {
	count := 0
	for _, pa := range a {
		count += len(pa.Artifacts)
	}

	return count
}

// Fingerprint returns a stable 64-bit hash over the assignment structure,
// mirroring PartitionSet.Fingerprint for reproducibility checks.
func (a Assignment) Fingerprint() uint64 {
	var h uint64
	var buf [8]byte
	for _, pa := range a {
		binary.LittleEndian.PutUint64(buf[:], uint64(pa.Partition))
		h = xxh3.HashSeed(buf[:], h)
		for _, artifact := range pa.Artifacts {
			h = xxh3.HashStringSeed(artifact, h)
		}
	}

	return h
}
