package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TFMV/snap2adj"
)

var infoFormat string

var infoCmd = &cobra.Command{
	Use:   "info <graph-file>",
	Short: "Print a summary of an adjacency graph file",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	infoCmd.Flags().StringVar(&infoFormat, "format", formatAdj, "input format: adj or bin")
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	path := args[0]

	var (
		g        *snap2adj.Graph
		weighted bool
		err      error
	)
	switch infoFormat {
	case formatAdj:
		g, weighted, err = snap2adj.ReadAdjacencyFile(path)
	case formatBin:
		g, err = snap2adj.ReadBinaryFile(path)
	default:
		err = fmt.Errorf("unknown input format %q", infoFormat)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Vertices: %d, Edges: %d, Weighted: %v\n", g.NumVertices(), g.NumEdges(), weighted)

	stats := g.Stats()
	fmt.Printf("Degree: min=%.0f max=%.0f mean=%.2f\n", stats.Min, stats.Max, stats.Mean)

	// Preview the first few vertices' neighbor slices.
	limit := 5
	if g.NumVertices() < limit {
		limit = g.NumVertices()
	}
	for v := 0; v < limit; v++ {
		neighbors := g.Neighbors(v)
		fmt.Printf("Vertex %3d has %2d neighbors: %v\n", v, len(neighbors), neighbors)
	}
	return nil
}
