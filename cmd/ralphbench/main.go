package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"ralphbench/internal/model"
	"ralphbench/internal/parser"
	"ralphbench/internal/report"
	"ralphbench/internal/stats"
	"ralphbench/internal/store"
)

const defaultMetricsPath = ".ralph/state/metrics.json"

func newRootCmd() *cobra.Command {
	var (
		inputPath  string
		outputPath string
		formatFlag string
		colorFlag  string
	)

	cmd := &cobra.Command{
		Use:   "ralphbench",
		Short: "Summarize Ralph benchmark metrics logs",
		Long: "ralphbench reads a line-delimited JSON metrics log, aggregates latency,\n" +
			"token and utilization statistics, and renders a markdown report.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := loadRecords(cmd, inputPath)
			if err != nil {
				return err
			}

			opts := report.Options{
				OutputPath: outputPath,
				Format:     formatFlag,
				Color:      colorFlag,
				Out:        cmd.OutOrStdout(),
			}
			if f, ok := cmd.OutOrStdout().(*os.File); ok {
				opts.OutFile = f
			}
			return report.Run(stats.Aggregate(records), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&inputPath, "input", defaultMetricsPath, "path to the metrics log (JSONL file or directory of logs)")
	flags.StringVar(&outputPath, "output", "", "path to save the rendered report (default: print to stdout)")
	flags.StringVar(&formatFlag, "format", "markdown", "output format: markdown, plain, or json")
	flags.StringVar(&colorFlag, "color", "auto", "color terminal output: auto, always, or never")

	return cmd
}

// loadRecords resolves the input path to an ordered record sequence. A
// missing path is a soft condition: one diagnostic on stderr, an empty
// sequence, and the pipeline continues to "nothing to report".
func loadRecords(cmd *cobra.Command, path string) ([]model.Record, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: metrics file not found at %s\n", path)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stat metrics path: %w", err)
	}

	if !info.IsDir() {
		return parser.ParseFile(path)
	}

	paths, err := store.CollectMetricsFiles(path)
	if err != nil {
		return nil, err
	}
	var records []model.Record
	for _, p := range paths {
		parsed, err := parser.ParseFile(p)
		if err != nil {
			return nil, err
		}
		records = append(records, parsed...)
	}
	return records, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ralphbench: %v\n", err)
		os.Exit(1)
	}
}
