package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lucasmehta/crdtlattice/compression"
)

func newCompressCmd() *cobra.Command {
	var algoName string
	var level int

	cmd := &cobra.Command{
		Use:   "compress <file>",
		Short: "Compress a file and report the ratio achieved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompress(args[0], algoName, level)
		},
	}
	cmd.Flags().StringVar(&algoName, "algorithm", "zstd", "compression algorithm: zstd, lz4, snappy")
	cmd.Flags().IntVar(&level, "level", 0, "compression level (zstd only; 0 means auto-estimate)")
	return cmd
}

func parseAlgorithm(name string) (compression.Algorithm, error) {
	switch name {
	case "zstd":
		return compression.Zstd, nil
	case "lz4":
		return compression.LZ4, nil
	case "snappy":
		return compression.Snappy, nil
	default:
		return 0, fmt.Errorf("unknown algorithm %q", name)
	}
}

func runCompress(path string, algoName string, level int) error {
	algo, err := parseAlgorithm(algoName)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	if level <= 0 {
		level = compression.EstimateOptimalLevel(data)
		slog.Info("estimated compression level", "level", level)
	}

	compressed, err := compression.Compress(data, algo, level)
	if err != nil {
		return fmt.Errorf("compressing %s: %w", path, err)
	}

	ratio := compression.CompressionRatio(len(data), len(compressed))
	slog.Info("compressed file", "path", path, "algorithm", algo.String(), "original_bytes", len(data), "compressed_bytes", len(compressed))
	fmt.Printf("%s: %d -> %d bytes (%.1f%% reduction)\n", algo, len(data), len(compressed), ratio*100)
	return nil
}
