package snap2adj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseError describes a data line in a SNAP edge list whose source or
// destination token is not a valid vertex id.
type ParseError struct {
	Line  int    // 1-based line number in the input
	Token string // the offending token
	Err   error  // underlying conversion error, if any
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("line %d: bad vertex id %q: %v", e.Line, e.Token, e.Err)
	}
	return fmt.Sprintf("line %d: bad vertex id %q", e.Line, e.Token)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseSNAP reads a SNAP edge list from r and returns a Builder holding the
// aggregated edges. Blank lines and lines starting with '#' are skipped, as
// are data lines with fewer than two tokens. The first two whitespace-
// separated tokens of each remaining line are the source and destination
// vertex ids; extra tokens are ignored. A token that is not a non-negative
// base-10 integer aborts the parse with a *ParseError.
// maxLineBytes bounds a single input line; edge-list dumps sometimes carry
// very long header comments, well past bufio.Scanner's 64KiB default.
const maxLineBytes = 1024 * 1024

func ParseSNAP(r io.Reader) (*Builder, error) {
	b := NewBuilder()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		tok := strings.Fields(line)
		if len(tok) < 2 {
			// A lone token is not an edge; skip the line.
			continue
		}
		src, err := parseVertexID(tok[0], lineNo)
		if err != nil {
			return nil, err
		}
		dst, err := parseVertexID(tok[1], lineNo)
		if err != nil {
			return nil, err
		}
		b.AddEdge(src, dst)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read edge list: %w", err)
	}
	return b, nil
}

// ReadSNAPFile parses the SNAP edge list at path.
func ReadSNAPFile(path string) (*Builder, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	b, err := ParseSNAP(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

func parseVertexID(tok string, line int) (int, error) {
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, &ParseError{Line: line, Token: tok, Err: err}
	}
	if v < 0 {
		return 0, &ParseError{Line: line, Token: tok}
	}
	return v, nil
}
