package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/soundlines/partita/types"
)

// FS persists results under a root directory in the layout downstream
// rendering tools expect. Safe for concurrent SavePartitions calls from
// independent transitions; each call writes a distinct file.
type FS struct {
	root string
}

var _ types.Store = (*FS)(nil)

// partitionRow is one line of a per-cluster partition CSV.
type partitionRow struct {
	Partition int    `csv:"Partition"`
	ID        string `csv:"ID"`
	Text      string `csv:"Text"`
	Valence   string `csv:"V_pred"`
	Arousal   string `csv:"A_pred"`
	Weight    int    `csv:"Word_Count"`
}

// NewFS creates a filesystem store rooted at root.
//
// Parameters:
//   - root: Output directory (created on demand)
//
// Returns:
//   - *FS: Initialized store
func NewFS(root string) *FS {
	return &FS{root: root}
}

// SavePartitions writes one transition's partition rows to
// <root>/<story>/cluster_<transition>/<story>_cluster_<id>_partitions.csv.
func (s *FS) SavePartitions(_ context.Context, story, transition string, cluster types.Cluster, set types.PartitionSet) error {
	dir := filepath.Join(s.root, story, "cluster_"+transition)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create partition directory: %w", err)
	}

	rows := make([]partitionRow, 0, len(set.Items()))
	for _, p := range set {
		for _, it := range p.Items {
			rows = append(rows, partitionRow{
				Partition: p.Index,
				ID:        it.ID,
				Text:      it.Text,
				Valence:   it.Valence,
				Arousal:   it.Arousal,
				Weight:    it.Weight,
			})
		}
	}

	path := filepath.Join(dir, fmt.Sprintf("%s_cluster_%s_partitions.csv", story, cluster.ID))

	return writeCSV(path, &rows)
}

// SaveSummary writes the per-story summary to <root>/<story>/<story>_summary.csv.
func (s *FS) SaveSummary(_ context.Context, story string, rows []types.SummaryRow) error {
	dir := filepath.Join(s.root, story)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create summary directory: %w", err)
	}

	path := filepath.Join(dir, story+"_summary.csv")

	return writeCSV(path, &rows)
}

// SaveMapping writes the nested transition-to-assignment mapping to
// <root>/<story>/<story>_midi_mapping.json as indented JSON.
func (s *FS) SaveMapping(_ context.Context, story string, mapping map[string]types.Assignment) error {
	dir := filepath.Join(s.root, story)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create mapping directory: %w", err)
	}

	data, err := json.MarshalIndent(mapping, "", "  ")
	if err != nil {
		return fmt.Errorf("encode mapping: %w", err)
	}

	path := filepath.Join(dir, story+"_midi_mapping.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write mapping: %w", err)
	}

	return nil
}

// writeCSV marshals rows to path via gocsv.
func writeCSV(path string, rows any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(rows, f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}
