// Package snap2adj converts directed graphs between the SNAP edge-list
// text format and the PBBS adjacency (compressed sparse row) format.
//
// The conversion pipeline is: parse an edge list, aggregate neighbors per
// source vertex, sort each neighbor list, compute prefix-sum offsets, and
// serialize. Everything is held in memory for the duration of a run.
package snap2adj

import (
	"sort"

	"github.com/viterin/vek/vek32"
)

// Graph is a directed graph in compressed sparse row form. Offsets has one
// entry per vertex; Offsets[v] is the index of v's first neighbor in Edges.
// The neighbors of v are Edges[Offsets[v]:Offsets[v+1]] (or Edges[Offsets[v]:]
// for the last vertex), sorted ascending with duplicates preserved.
type Graph struct {
	Offsets []int
	Edges   []int
}

// NumVertices returns the number of vertices in the graph.
func (g *Graph) NumVertices() int { return len(g.Offsets) }

// NumEdges returns the number of directed edges in the graph.
func (g *Graph) NumEdges() int { return len(g.Edges) }

// Neighbors returns the out-neighbors of vertex v as a sub-slice of Edges.
// The returned slice must not be modified.
func (g *Graph) Neighbors(v int) []int {
	end := len(g.Edges)
	if v+1 < len(g.Offsets) {
		end = g.Offsets[v+1]
	}
	return g.Edges[g.Offsets[v]:end]
}

// Degree returns the out-degree of vertex v.
func (g *Graph) Degree(v int) int { return len(g.Neighbors(v)) }

// DegreeStats summarizes the out-degree distribution of a graph.
type DegreeStats struct {
	Min  float32
	Max  float32
	Mean float32
}

// Stats computes out-degree statistics over all vertices.
func (g *Graph) Stats() DegreeStats {
	if g.NumVertices() == 0 {
		return DegreeStats{}
	}
	degrees := make([]float32, g.NumVertices())
	for v := range degrees {
		degrees[v] = float32(g.Degree(v))
	}
	return DegreeStats{
		Min:  vek32.Min(degrees),
		Max:  vek32.Max(degrees),
		Mean: vek32.Mean(degrees),
	}
}

// Builder accumulates directed edges and produces a Graph. Edges are kept
// in insertion order until Build, which sorts each neighbor list. Duplicate
// edges and self-loops are preserved.
type Builder struct {
	adj     [][]int
	maxNode int
	edges   int
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddEdge records a directed edge from src to dst. Both ids must be
// non-negative; the caller is expected to have validated them.
func (b *Builder) AddEdge(src, dst int) {
	for len(b.adj) <= src {
		b.adj = append(b.adj, nil)
	}
	b.adj[src] = append(b.adj[src], dst)
	if src > b.maxNode {
		b.maxNode = src
	}
	if dst > b.maxNode {
		b.maxNode = dst
	}
	b.edges++
}

// NumEdges returns the number of edges added so far.
func (b *Builder) NumEdges() int { return b.edges }

// MaxNode returns the largest vertex id seen so far, or 0 if no edges have
// been added. The vertex universe is [0, MaxNode()], so an empty builder
// still describes a single-vertex graph; Build preserves that boundary.
func (b *Builder) MaxNode() int { return b.maxNode }

// NumVertices returns the size of the vertex universe, MaxNode()+1.
func (b *Builder) NumVertices() int { return b.maxNode + 1 }

// Build sorts every neighbor list ascending, computes prefix-sum offsets
// over the full vertex universe, and returns the resulting Graph. Vertices
// that never appeared as a source get an empty neighbor slice.
func (b *Builder) Build() *Graph {
	n := b.NumVertices()
	offsets := make([]int, n)
	edges := make([]int, 0, b.edges)

	current := 0
	for v := 0; v < n; v++ {
		offsets[v] = current
		if v < len(b.adj) && len(b.adj[v]) > 0 {
			sort.Ints(b.adj[v])
			edges = append(edges, b.adj[v]...)
			current += len(b.adj[v])
		}
	}
	return &Graph{Offsets: offsets, Edges: edges}
}
