// Command snap2adj converts a SNAP edge-list text file into an adjacency
// graph file (PBBS text, binary CSR, or a Parquet edge table).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/TFMV/snap2adj"
	"github.com/TFMV/snap2adj/parquet"
)

const (
	formatAdj     = "adj"
	formatBin     = "bin"
	formatParquet = "parquet"
)

var (
	noWeights bool
	format    string
)

var rootCmd = &cobra.Command{
	Use:   "snap2adj <input-file> <output-file>",
	Short: "Convert SNAP edge lists to adjacency graph files",
	Long: `snap2adj reads a SNAP edge list (one "src dst" pair per line, with
# comment lines) and writes the graph in an offset-based adjacency format.`,
	Args:          cobra.MinimumNArgs(2),
	SilenceErrors: true,
	RunE:          runConvert,
}

func init() {
	rootCmd.Flags().BoolVar(&noWeights, "no-weights", false, "omit the unit weight block and use the unweighted header tag")
	rootCmd.Flags().StringVar(&format, "format", formatAdj, "output format: adj, bin, or parquet")

	// Usage goes to stdout so a bare invocation prints it there.
	rootCmd.SetOut(os.Stdout)
}

func runConvert(cmd *cobra.Command, args []string) error {
	input, output := args[0], args[1]

	fmt.Printf("Reading %s...\n", input)
	b, err := snap2adj.ReadSNAPFile(input)
	if err != nil {
		return err
	}
	fmt.Printf("Vertices: %d, Edges: %d\n", b.NumVertices(), b.NumEdges())

	fmt.Println("Calculating offsets...")
	g := b.Build()

	fmt.Printf("Writing %s...\n", output)
	switch format {
	case formatAdj:
		err = snap2adj.WriteAdjacencyFile(output, g, !noWeights)
	case formatBin:
		err = snap2adj.WriteBinaryFile(output, g)
	case formatParquet:
		err = parquet.WriteEdges(output, g, !noWeights, parquet.DefaultConfig())
	default:
		err = fmt.Errorf("unknown output format %q", format)
	}
	if err != nil {
		return err
	}

	fmt.Println("Done!")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
