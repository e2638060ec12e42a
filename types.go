package partita

import "github.com/soundlines/partita/types"

// Re-export types from the types subpackage.
//
// This file provides a stable public API for the library's core types and
// interfaces. It uses type aliases to re-export definitions from the `types`
// subpackage, which contains the actual implementations.
//
// This pattern avoids import cycles: internal packages depend on `types`
// without depending on the root partita package, while users still get
// convenient `partita.Partition`, `partita.Assignment`, etc.
type (
	Item               = types.Item
	Partition          = types.Partition
	PartitionSet       = types.PartitionSet
	Assignment         = types.Assignment
	PartitionArtifacts = types.PartitionArtifacts
	Cluster            = types.Cluster
	SummaryRow         = types.SummaryRow
	Diagnostic         = types.Diagnostic
	DiagnosticKind     = types.DiagnosticKind
	Tokenizer          = types.Tokenizer
)

// Re-export interfaces from the types subpackage for convenience.
type (
	ItemSource       = types.ItemSource
	ArtifactPool     = types.ArtifactPool
	Store            = types.Store
	Logger           = types.Logger
	MetricsCollector = types.MetricsCollector
)

// Re-export diagnostic kinds from the types subpackage.
const (
	DiagNone         = types.DiagNone
	DiagEmptyPool    = types.DiagEmptyPool
	DiagSizeMismatch = types.DiagSizeMismatch
)

// WordCount is the default tokenizer: whitespace-delimited field count.
var WordCount = types.WordCount
