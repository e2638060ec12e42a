package source

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/gocarina/gocsv"

	"github.com/soundlines/partita/types"
)

// CSV reads items and clusters from the CSV datasets of the upstream
// clustering stage: a statistics file (Cluster, Start_ID, End_ID) and a
// clustered sentence file (ID, text, V_pred, A_pred).
type CSV struct {
	statsPath     string
	clusteredPath string
	tokenizer     types.Tokenizer
}

var _ types.ItemSource = (*CSV)(nil)

// sentenceRow mirrors one clustered-sentence CSV record. Unknown columns in
// the file are ignored.
type sentenceRow struct {
	ID      string `csv:"ID"`
	Text    string `csv:"text"`
	Valence string `csv:"V_pred"`
	Arousal string `csv:"A_pred"`
}

// NewCSV creates a CSV item source.
//
// Parameters:
//   - statsPath: Path to the cluster statistics CSV
//   - clusteredPath: Path to the clustered sentences CSV
//   - tokenizer: Weight function (types.WordCount when nil)
//
// Returns:
//   - *CSV: Initialized source (files are read lazily, per call)
func NewCSV(statsPath, clusteredPath string, tokenizer types.Tokenizer) *CSV {
	if tokenizer == nil {
		tokenizer = types.WordCount
	}

	return &CSV{
		statsPath:     statsPath,
		clusteredPath: clusteredPath,
		tokenizer:     tokenizer,
	}
}

// ListClusters returns the story's clusters in statistics-file order.
func (c *CSV) ListClusters(_ context.Context) ([]types.Cluster, error) {
	f, err := os.Open(c.statsPath)
	if err != nil {
		return nil, fmt.Errorf("open cluster statistics: %w", err)
	}
	defer f.Close()

	var clusters []types.Cluster
	if err := gocsv.UnmarshalFile(f, &clusters); err != nil {
		return nil, fmt.Errorf("parse cluster statistics %s: %w", c.statsPath, err)
	}

	return clusters, nil
}

// ListItems returns the ordered items whose numeric IDs fall inside the
// cluster's [StartID, EndID] range, weighted by the configured tokenizer.
// File order is preserved; rows with non-numeric IDs are skipped.
func (c *CSV) ListItems(_ context.Context, cluster types.Cluster) ([]types.Item, error) {
	f, err := os.Open(c.clusteredPath)
	if err != nil {
		return nil, fmt.Errorf("open clustered sentences: %w", err)
	}
	defer f.Close()

	var rows []sentenceRow
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("parse clustered sentences %s: %w", c.clusteredPath, err)
	}

	var items []types.Item
	for _, row := range rows {
		id, err := strconv.Atoi(row.ID)
		if err != nil {
			continue
		}
		if id < cluster.StartID || id > cluster.EndID {
			continue
		}

		items = append(items, types.Item{
			ID:      row.ID,
			Text:    row.Text,
			Valence: row.Valence,
			Arousal: row.Arousal,
			Weight:  c.tokenizer(row.Text),
		})
	}

	return items, nil
}
