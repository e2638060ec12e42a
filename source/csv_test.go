package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/soundlines/partita/types"
	"github.com/stretchr/testify/require"
)

const statsCSV = `Cluster,Start_ID,End_ID
0,1,3
1,4,6
`

// The clustered file carries extra columns the source must ignore.
const clusteredCSV = `ID,text,V_pred,A_pred,cluster
1,The carnival arrived at dawn.,0.61,0.42,0
2,Nobody saw the wagons roll in.,0.22,0.38,0
3,By noon the field was a city.,0.55,0.51,0
4,She bought a paper lantern.,0.70,0.30,1
5,It glowed like a trapped moon.,0.81,0.44,1
6,The wind wanted it badly.,0.35,0.62,1
`

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestCSV_ListClusters(t *testing.T) {
	src := NewCSV(
		writeFixture(t, "statistics.csv", statsCSV),
		writeFixture(t, "clustered.csv", clusteredCSV),
		nil,
	)

	clusters, err := src.ListClusters(context.Background())

	require.NoError(t, err)
	require.Equal(t, []types.Cluster{
		{ID: "0", StartID: 1, EndID: 3},
		{ID: "1", StartID: 4, EndID: 6},
	}, clusters)
}

func TestCSV_ListClusters_MissingFile(t *testing.T) {
	src := NewCSV(filepath.Join(t.TempDir(), "nope.csv"), "unused.csv", nil)

	_, err := src.ListClusters(context.Background())

	require.Error(t, err)
}

func TestCSV_ListItems(t *testing.T) {
	src := NewCSV(
		writeFixture(t, "statistics.csv", statsCSV),
		writeFixture(t, "clustered.csv", clusteredCSV),
		nil,
	)

	items, err := src.ListItems(context.Background(), types.Cluster{ID: "1", StartID: 4, EndID: 6})

	require.NoError(t, err)
	require.Len(t, items, 3)
	require.Equal(t, "4", items[0].ID)
	require.Equal(t, "She bought a paper lantern.", items[0].Text)
	require.Equal(t, "0.70", items[0].Valence)
	require.Equal(t, "0.30", items[0].Arousal)
	require.Equal(t, 5, items[0].Weight, "default tokenizer counts words")
	require.Equal(t, "6", items[2].ID)
}

func TestCSV_ListItems_CustomTokenizer(t *testing.T) {
	chars := func(text string) int { return len(text) }
	src := NewCSV(
		writeFixture(t, "statistics.csv", statsCSV),
		writeFixture(t, "clustered.csv", clusteredCSV),
		chars,
	)

	items, err := src.ListItems(context.Background(), types.Cluster{ID: "0", StartID: 1, EndID: 1})

	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, len("The carnival arrived at dawn."), items[0].Weight)
}

func TestCSV_ListItems_EmptyRange(t *testing.T) {
	src := NewCSV(
		writeFixture(t, "statistics.csv", statsCSV),
		writeFixture(t, "clustered.csv", clusteredCSV),
		nil,
	)

	items, err := src.ListItems(context.Background(), types.Cluster{ID: "9", StartID: 100, EndID: 200})

	require.NoError(t, err)
	require.Empty(t, items)
}
