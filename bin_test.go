package snap2adj

import (
	"bytes"
	"encoding/binary"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinary_RoundTrip(t *testing.T) {
	g := buildFromSNAP(t, "0 1\n0 2\n1 2\n3 0\n2 2\n")

	var buf bytes.Buffer
	require.NoError(t, WriteBinary(&buf, g))

	got, err := ReadBinary(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.Offsets, got.Offsets)
	assert.Equal(t, g.Edges, got.Edges)
}

func TestBinary_Layout(t *testing.T) {
	g := buildFromSNAP(t, "0 1\n1 0\n")

	var buf bytes.Buffer
	require.NoError(t, WriteBinary(&buf, g))

	raw := buf.Bytes()
	n := binary.LittleEndian.Uint64(raw[0:8])
	m := binary.LittleEndian.Uint64(raw[8:16])
	sizes := binary.LittleEndian.Uint64(raw[16:24])

	assert.Equal(t, uint64(2), n)
	assert.Equal(t, uint64(2), m)
	assert.Equal(t, uint64(len(raw)), sizes)

	// The trailing offset equals the edge count.
	lastOffset := binary.LittleEndian.Uint64(raw[24+8*n : 24+8*n+8])
	assert.Equal(t, m, lastOffset)
}

func TestReadBinary_SizeMismatch(t *testing.T) {
	g := buildFromSNAP(t, "0 1\n")

	var buf bytes.Buffer
	require.NoError(t, WriteBinary(&buf, g))

	raw := buf.Bytes()
	binary.LittleEndian.PutUint64(raw[16:24], 7) // corrupt the sizes word

	_, err := ReadBinary(bytes.NewReader(raw))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "size mismatch")
}

func TestWriteBinaryFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.bin")

	g := buildFromSNAP(t, "5 5\n")
	require.NoError(t, WriteBinaryFile(path, g))

	got, err := ReadBinaryFile(path)
	require.NoError(t, err)
	assert.Equal(t, 6, got.NumVertices())
	assert.Equal(t, []int{5}, got.Neighbors(5))
}
