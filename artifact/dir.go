package artifact

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/soundlines/partita/types"
)

// DefaultExtension is the artifact filename extension the Dir pool selects.
const DefaultExtension = ".mid"

// Dir lists artifact files from per-transition subdirectories of a root
// directory.
//
// A missing transition directory yields an empty pool rather than an error:
// upstream generation may legitimately not have produced that transition yet,
// and the assigner reports the empty pool as a diagnostic.
type Dir struct {
	root string
	ext  string
}

var _ types.ArtifactPool = (*Dir)(nil)

// NewDir creates a directory-backed artifact pool.
//
// Parameters:
//   - root: Directory containing one subdirectory per transition
//   - ext: Filename extension filter (DefaultExtension when empty)
//
// Returns:
//   - *Dir: Initialized pool
//
// Example:
//
//	pool := artifact.NewDir("outputs/piano_melodies/carnival/2bar/interpolations", "")
//	files, err := pool.ListArtifacts(ctx, "1to2")
func NewDir(root, ext string) *Dir {
	if ext == "" {
		ext = DefaultExtension
	}

	return &Dir{root: root, ext: ext}
}

// ListArtifacts returns the matching filenames of the transition's directory,
// sorted lexically ascending.
func (d *Dir) ListArtifacts(_ context.Context, transition string) ([]string, error) {
	dir := filepath.Join(d.root, transition)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("list artifacts in %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), d.ext) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	return names, nil
}
