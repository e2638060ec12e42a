package source

import (
	"context"
	"testing"

	"github.com/soundlines/partita/types"
	"github.com/stretchr/testify/require"
)

func TestStatic_ListClusters(t *testing.T) {
	clusters := []types.Cluster{{ID: "0", StartID: 1, EndID: 2}}
	src := NewStatic(clusters, nil)

	got, err := src.ListClusters(context.Background())

	require.NoError(t, err)
	require.Equal(t, clusters, got)

	// The returned slice is a copy; mutating it must not affect the source.
	got[0].ID = "mutated"
	again, err := src.ListClusters(context.Background())
	require.NoError(t, err)
	require.Equal(t, "0", again[0].ID)
}

func TestStatic_ListItems(t *testing.T) {
	items := []types.Item{
		{ID: "1", Weight: 3},
		{ID: "2", Weight: 5},
		{ID: "3", Weight: 2},
	}
	src := NewStatic(nil, items)

	got, err := src.ListItems(context.Background(), types.Cluster{StartID: 2, EndID: 3})

	require.NoError(t, err)
	require.Equal(t, items[1:], got)
}

func TestStatic_Update(t *testing.T) {
	src := NewStatic(nil, []types.Item{{ID: "1", Weight: 1}})

	src.Update([]types.Item{{ID: "1", Weight: 9}, {ID: "2", Weight: 4}})

	got, err := src.ListItems(context.Background(), types.Cluster{StartID: 1, EndID: 9})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, 9, got[0].Weight)
}
