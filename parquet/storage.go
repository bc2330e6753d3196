// Package parquet exports a graph as a Parquet edge table: one row per
// directed edge in vertex-major order, columns src and dst (uint32) and,
// for weighted tables, a constant unit weight column (int32).
package parquet

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
)

// Config defines options for the Parquet edge table files.
type Config struct {
	// Compression codec to use (default: Snappy)
	Compression compress.Compression

	// Batch size for reading/writing (default: 64MB)
	BatchSize int64

	// Maximum row group length (default: 64MB)
	MaxRowGroupLength int64

	// Data page size (default: 1MB)
	DataPageSize int64

	// Whether to memory map files when reading
	MemoryMap bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Compression:       compress.Codecs.Snappy,
		BatchSize:         64 * 1024 * 1024, // 64MB
		MaxRowGroupLength: 64 * 1024 * 1024, // 64MB
		DataPageSize:      1 * 1024 * 1024,  // 1MB
		MemoryMap:         true,
	}
}

// EdgeSchema returns the Arrow schema for the edge table.
func EdgeSchema(weighted bool) *arrow.Schema {
	fields := []arrow.Field{
		{Name: "src", Type: arrow.PrimitiveTypes.Uint32},
		{Name: "dst", Type: arrow.PrimitiveTypes.Uint32},
	}
	if weighted {
		fields = append(fields, arrow.Field{Name: "weight", Type: arrow.PrimitiveTypes.Int32})
	}
	return arrow.NewSchema(fields, nil)
}

func (c Config) writerProperties(alloc memory.Allocator) *parquet.WriterProperties {
	return parquet.NewWriterProperties(
		parquet.WithCompression(c.Compression),
		parquet.WithBatchSize(c.BatchSize),
		parquet.WithAllocator(alloc),
		parquet.WithVersion(parquet.V2_LATEST),
		parquet.WithDataPageSize(c.DataPageSize),
		parquet.WithMaxRowGroupLength(c.MaxRowGroupLength),
		parquet.WithCreatedBy("snap2adj"),
	)
}

func (c Config) arrowWriterProperties() pqarrow.ArrowWriterProperties {
	return pqarrow.NewArrowWriterProperties(
		pqarrow.WithStoreSchema(),
	)
}

func (c Config) arrowReadProperties() pqarrow.ArrowReadProperties {
	return pqarrow.ArrowReadProperties{
		Parallel:  true,
		BatchSize: c.BatchSize,
	}
}
