package parquet

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TFMV/snap2adj"
)

func buildGraph(t *testing.T, input string) *snap2adj.Graph {
	t.Helper()
	b, err := snap2adj.ParseSNAP(strings.NewReader(input))
	require.NoError(t, err)
	return b.Build()
}

func TestEdges_RoundTripWeighted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edges.parquet")

	g := buildGraph(t, "0 1\n0 2\n1 2\n3 0\n3 0\n")
	require.NoError(t, WriteEdges(path, g, true, DefaultConfig()))

	got, weighted, err := ReadEdges(path, DefaultConfig())
	require.NoError(t, err)
	assert.True(t, weighted)
	assert.Equal(t, g.Offsets, got.Offsets)
	assert.Equal(t, g.Edges, got.Edges)
}

func TestEdges_RoundTripUnweighted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edges.parquet")

	g := buildGraph(t, "2 0\n0 1\n")
	require.NoError(t, WriteEdges(path, g, false, DefaultConfig()))

	got, weighted, err := ReadEdges(path, DefaultConfig())
	require.NoError(t, err)
	assert.False(t, weighted)
	assert.Equal(t, g.Offsets, got.Offsets)
	assert.Equal(t, g.Edges, got.Edges)
}

func TestEdges_EmptyGraph(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edges.parquet")

	g := buildGraph(t, "# no edges\n")
	require.NoError(t, WriteEdges(path, g, true, DefaultConfig()))

	got, _, err := ReadEdges(path, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 0, got.NumEdges())
	// An edge table with no rows rebuilds to the single-vertex empty graph.
	assert.Equal(t, 1, got.NumVertices())
}

func TestWriteEdges_AtomicOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "edges.parquet")

	old := buildGraph(t, "0 1\n")
	require.NoError(t, WriteEdges(path, old, true, DefaultConfig()))

	// Replacing in place leaves exactly one file behind, no temp litter.
	g := buildGraph(t, "0 1\n0 2\n1 2\n")
	require.NoError(t, WriteEdges(path, g, true, DefaultConfig()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	got, _, err := ReadEdges(path, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, g.Offsets, got.Offsets)
	assert.Equal(t, g.Edges, got.Edges)
}

func TestWriteEdges_FailureLeavesTargetIntact(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "edges.parquet")

	// A directory at the destination makes the final rename fail; whatever
	// lives at the destination must survive untouched.
	require.NoError(t, os.Mkdir(path, 0o755))
	sentinel := filepath.Join(path, "keep.txt")
	require.NoError(t, os.WriteFile(sentinel, []byte("keep"), 0o644))

	g := buildGraph(t, "0 1\n")
	require.Error(t, WriteEdges(path, g, true, DefaultConfig()))

	data, err := os.ReadFile(sentinel)
	require.NoError(t, err)
	assert.Equal(t, "keep", string(data))
}

func TestEdges_MissingFile(t *testing.T) {
	_, _, err := ReadEdges(filepath.Join(t.TempDir(), "nope.parquet"), DefaultConfig())
	require.Error(t, err)
}
