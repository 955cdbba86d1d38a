// Command extract converts a .docx dealer price list into the JSON artifact
// served by the price list app, without running the server.
package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"pricelist/internal/artifact"
	"pricelist/internal/export"
	"pricelist/internal/parser"
	"pricelist/internal/port"
	"pricelist/internal/storage/local"
)

type options struct {
	outputPath string
	format     string
	pretty     bool
	stats      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "extract [price-list.docx]",
		Short: "Extract dealer prices from a .docx price list",
		Long: `extract reads the pricing tables of a .docx price list and writes the
product records (code, description, dealerPrice) as JSON, CSV or XLSX.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "json", "Output format: json, csv, xlsx")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "Print extraction statistics to stderr")
	return cmd
}

func run(cmd *cobra.Command, inputPath string, opts *options) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	products, stats, err := parser.ExtractProducts(data)
	if opts.stats && stats != nil {
		printStats(cmd.ErrOrStderr(), stats)
	}
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	var out bytes.Buffer
	switch opts.format {
	case "json":
		encoded, err := artifact.Encode(products, opts.pretty)
		if err != nil {
			return err
		}
		out.Write(encoded)
		out.WriteByte('\n')
	default:
		format, err := export.ParseFormat(opts.format)
		if err != nil {
			return err
		}
		if err := export.Write(&out, format, products); err != nil {
			return err
		}
	}

	if opts.outputPath == "" {
		_, err := cmd.OutOrStdout().Write(out.Bytes())
		return err
	}
	return writeFile(cmd.Context(), opts.outputPath, out.Bytes())
}

// writeFile replaces path atomically using the local object storage.
func writeFile(ctx context.Context, path string, data []byte) error {
	if ctx == nil {
		ctx = context.Background()
	}
	store, err := local.NewLocalStorage(filepath.Dir(path))
	if err != nil {
		return err
	}
	_, err = store.Upload(ctx, port.UploadInput{
		Key:  filepath.Base(path),
		Body: bytes.NewReader(data),
		Size: int64(len(data)),
	})
	if err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func printStats(w io.Writer, stats *parser.Stats) {
	fmt.Fprintf(w, "tables: %d, rows: %d, products: %d\n", stats.Tables, stats.Rows, stats.Products)

	reasons := make([]string, 0, len(stats.Skipped))
	for reason := range stats.Skipped {
		reasons = append(reasons, string(reason))
	}
	sort.Strings(reasons)
	for _, reason := range reasons {
		fmt.Fprintf(w, "  skipped %s: %d\n", reason, stats.Skipped[parser.SkipReason(reason)])
	}
}
