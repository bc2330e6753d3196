package snap2adj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/renameio"
)

// Header tags of the PBBS adjacency text format.
const (
	TagWeighted   = "WeightedAdjacencyGraph"
	TagUnweighted = "AdjacencyGraph"
)

// FormatError describes an invalid adjacency document.
type FormatError struct {
	Line int    // 1-based line number, 0 if not line-specific
	Msg  string // what was wrong
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("adjacency line %d: %s", e.Line, e.Msg)
	}
	return fmt.Sprintf("adjacency: %s", e.Msg)
}

// WriteAdjacency serializes g to w in PBBS adjacency text form: the header
// tag, the vertex count, the edge count, one offset per vertex, the
// flattened neighbor array in vertex-major order, and, if weighted, one
// literal "1" per edge. Every value is on its own newline-terminated line.
func WriteAdjacency(w io.Writer, g *Graph, weighted bool) error {
	bw := bufio.NewWriter(w)

	tag := TagUnweighted
	if weighted {
		tag = TagWeighted
	}
	bw.WriteString(tag)
	bw.WriteByte('\n')
	bw.WriteString(strconv.Itoa(g.NumVertices()))
	bw.WriteByte('\n')
	bw.WriteString(strconv.Itoa(g.NumEdges()))
	bw.WriteByte('\n')

	for _, off := range g.Offsets {
		bw.WriteString(strconv.Itoa(off))
		bw.WriteByte('\n')
	}
	for _, dst := range g.Edges {
		bw.WriteString(strconv.Itoa(dst))
		bw.WriteByte('\n')
	}
	if weighted {
		// Unit weight per edge, positionally aligned with the neighbor array.
		for range g.Edges {
			bw.WriteString("1\n")
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write adjacency graph: %w", err)
	}
	return nil
}

// WriteAdjacencyFile writes g to path atomically: the document is written
// to a temp file in the same directory and renamed over path only on
// success, so a partial output file is never observed.
func WriteAdjacencyFile(path string, g *Graph, weighted bool) error {
	t, err := renameio.TempFile("", path)
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", path, err)
	}
	defer t.Cleanup()

	if err := WriteAdjacency(t, g, weighted); err != nil {
		return err
	}
	if err := t.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// adjScanner reads one whitespace-trimmed value per line, tracking line
// numbers for error reporting.
type adjScanner struct {
	sc   *bufio.Scanner
	line int
}

func (s *adjScanner) next() (string, error) {
	for s.sc.Scan() {
		s.line++
		text := strings.TrimSpace(s.sc.Text())
		if text == "" {
			continue
		}
		return text, nil
	}
	if err := s.sc.Err(); err != nil {
		return "", fmt.Errorf("failed to read adjacency graph: %w", err)
	}
	return "", &FormatError{Line: s.line, Msg: "unexpected end of document"}
}

func (s *adjScanner) nextInt(what string) (int, error) {
	text, err := s.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(text)
	if err != nil {
		return 0, &FormatError{Line: s.line, Msg: fmt.Sprintf("%s: invalid integer %q", what, text)}
	}
	return v, nil
}

// ReadAdjacency parses a PBBS adjacency document from r. It returns the
// graph and whether the document carried the weighted header tag. The
// offset array is checked for monotonicity and bounds; weight values are
// required to be integers but are otherwise ignored, since this format
// only ever carries unit weights.
func ReadAdjacency(r io.Reader) (*Graph, bool, error) {
	s := &adjScanner{sc: bufio.NewScanner(r)}

	tag, err := s.next()
	if err != nil {
		return nil, false, err
	}
	var weighted bool
	switch tag {
	case TagWeighted:
		weighted = true
	case TagUnweighted:
		weighted = false
	default:
		return nil, false, &FormatError{Line: s.line, Msg: fmt.Sprintf("unknown header tag %q", tag)}
	}

	numVertices, err := s.nextInt("vertex count")
	if err != nil {
		return nil, false, err
	}
	if numVertices < 0 {
		return nil, false, &FormatError{Line: s.line, Msg: "negative vertex count"}
	}
	numEdges, err := s.nextInt("edge count")
	if err != nil {
		return nil, false, err
	}
	if numEdges < 0 {
		return nil, false, &FormatError{Line: s.line, Msg: "negative edge count"}
	}

	offsets := make([]int, numVertices)
	prev := 0
	for v := 0; v < numVertices; v++ {
		off, err := s.nextInt("offset")
		if err != nil {
			return nil, false, err
		}
		if v == 0 && off != 0 {
			return nil, false, &FormatError{Line: s.line, Msg: "first offset must be 0"}
		}
		if off < prev || off > numEdges {
			return nil, false, &FormatError{Line: s.line, Msg: fmt.Sprintf("offset %d out of order", off)}
		}
		offsets[v] = off
		prev = off
	}

	edges := make([]int, numEdges)
	for i := range edges {
		dst, err := s.nextInt("neighbor")
		if err != nil {
			return nil, false, err
		}
		edges[i] = dst
	}

	if weighted {
		for i := 0; i < numEdges; i++ {
			if _, err := s.nextInt("weight"); err != nil {
				return nil, false, err
			}
		}
	}
	return &Graph{Offsets: offsets, Edges: edges}, weighted, nil
}

// ReadAdjacencyFile parses the adjacency document at path.
func ReadAdjacencyFile(path string) (*Graph, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	g, weighted, err := ReadAdjacency(f)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", path, err)
	}
	return g, weighted, nil
}
