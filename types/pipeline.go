package types

import "context"

// Cluster identifies one contiguous sentence range of a story, as produced by
// the upstream clustering stage. Clusters are processed per transition (the
// segment between two adjacent clusters, e.g. "1to2").
type Cluster struct {
	// ID is the cluster identifier from the statistics dataset.
	ID string `json:"cluster" csv:"Cluster"`

	// StartID is the first member item ID (inclusive).
	StartID int `json:"start_id" csv:"Start_ID"`

	// EndID is the last member item ID (inclusive).
	EndID int `json:"end_id" csv:"End_ID"`
}

// SummaryRow is one line of the per-story partition summary: one row per
// partition across all processed transitions.
type SummaryRow struct {
	Cluster    string `csv:"Cluster"`
	Transition string `csv:"Transition"`
	Partition  int    `csv:"Partition"`
	NumItems   int    `csv:"Num_Sentences"`
	Weight     int    `csv:"Word_Count"`
	ItemIDs    string `csv:"Sentence_IDs"`
}

// ItemSource supplies ordered, weighted items for a story.
//
// Implementations can read various backends:
//   - CSV: clustered sentence datasets from the prediction stage
//   - Static: fixed list for testing
//
// Implementations must preserve the original item order; the partitioning
// core never resorts its input.
type ItemSource interface {
	// ListClusters returns the story's clusters in order.
	ListClusters(ctx context.Context) ([]Cluster, error)

	// ListItems returns the ordered items whose IDs fall inside the given
	// cluster's [StartID, EndID] range.
	ListItems(ctx context.Context, cluster Cluster) ([]Item, error)
}

// ArtifactPool lists the generated artifact identifiers available for a
// transition, sorted lexically ascending.
//
// A missing or empty backing location yields an empty slice, not an error;
// the assigner reports that as an EmptyPool diagnostic.
type ArtifactPool interface {
	// ListArtifacts returns the lexically sorted artifact identifiers for the
	// given transition.
	ListArtifacts(ctx context.Context, transition string) ([]string, error)
}

// Store persists partitioning and assignment results for downstream tools.
//
// Implementations must be safe for concurrent SavePartitions calls from
// independent transitions of the same story.
type Store interface {
	// SavePartitions persists one transition's partition rows.
	SavePartitions(ctx context.Context, story, transition string, cluster Cluster, set PartitionSet) error

	// SaveSummary persists the per-story partition summary.
	SaveSummary(ctx context.Context, story string, rows []SummaryRow) error

	// SaveMapping persists the nested transition-to-assignment mapping.
	SaveMapping(ctx context.Context, story string, mapping map[string]Assignment) error
}
