package snap2adj

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/google/renameio"
)

// Binary CSR layout, little-endian:
//
//	n      uint64           number of vertices
//	m      uint64           number of edges
//	sizes  uint64           total byte size of the file, including the header
//	offsets (n+1)×uint64    prefix-sum offsets; offsets[n] == m
//	edges   m×uint32        flattened neighbor ids
const binHeaderBytes = 3 * 8

// WriteBinary serializes g in binary CSR form.
func WriteBinary(w io.Writer, g *Graph) error {
	n := uint64(g.NumVertices())
	m := uint64(g.NumEdges())
	sizes := uint64(binHeaderBytes) + (n+1)*8 + m*4

	bw := bufio.NewWriter(w)
	for _, v := range []uint64{n, m, sizes} {
		if err := binary.Write(bw, binary.LittleEndian, v); err != nil {
			return fmt.Errorf("failed to write binary header: %w", err)
		}
	}

	offsets := make([]uint64, n+1)
	for v, off := range g.Offsets {
		offsets[v] = uint64(off)
	}
	offsets[n] = m
	if err := binary.Write(bw, binary.LittleEndian, offsets); err != nil {
		return fmt.Errorf("failed to write offsets: %w", err)
	}

	edges := make([]uint32, m)
	for i, dst := range g.Edges {
		edges[i] = uint32(dst)
	}
	if err := binary.Write(bw, binary.LittleEndian, edges); err != nil {
		return fmt.Errorf("failed to write edges: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write binary graph: %w", err)
	}
	return nil
}

// WriteBinaryFile writes g to path in binary CSR form, atomically.
func WriteBinaryFile(path string, g *Graph) error {
	t, err := renameio.TempFile("", path)
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", path, err)
	}
	defer t.Cleanup()

	if err := WriteBinary(t, g); err != nil {
		return err
	}
	if err := t.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// ReadBinary parses a binary CSR graph from r. The sizes header word is
// validated against the expected byte count before any array is allocated.
func ReadBinary(r io.Reader) (*Graph, error) {
	br := bufio.NewReader(r)

	var n, m, sizes uint64
	for _, p := range []*uint64{&n, &m, &sizes} {
		if err := binary.Read(br, binary.LittleEndian, p); err != nil {
			return nil, fmt.Errorf("failed to read binary header: %w", err)
		}
	}
	expected := uint64(binHeaderBytes) + (n+1)*8 + m*4
	if sizes != expected {
		return nil, fmt.Errorf("binary size mismatch: got %d, expected %d", sizes, expected)
	}

	offsets := make([]uint64, n+1)
	if err := binary.Read(br, binary.LittleEndian, &offsets); err != nil {
		return nil, fmt.Errorf("failed to read offsets: %w", err)
	}
	if offsets[n] != m {
		return nil, fmt.Errorf("binary offset mismatch: offsets[%d]=%d, expected %d", n, offsets[n], m)
	}

	edges := make([]uint32, m)
	if err := binary.Read(br, binary.LittleEndian, &edges); err != nil {
		return nil, fmt.Errorf("failed to read edges: %w", err)
	}

	g := &Graph{
		Offsets: make([]int, n),
		Edges:   make([]int, m),
	}
	for v := uint64(0); v < n; v++ {
		g.Offsets[v] = int(offsets[v])
	}
	for i, dst := range edges {
		g.Edges[i] = int(dst)
	}
	return g, nil
}

// ReadBinaryFile parses the binary CSR graph at path.
func ReadBinaryFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	g, err := ReadBinary(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
