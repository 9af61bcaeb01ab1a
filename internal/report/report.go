// Package report renders a StatsSummary as a text document and emits it to
// stdout or a file.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"ralphbench/internal/model"
)

const timestampLayout = "2006-01-02 15:04:05"

const (
	formatMarkdown = "markdown"
	formatPlain    = "plain"
	formatJSON     = "json"
)

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
)

// Options defines the configurable parameters for emitting a report.
type Options struct {
	// OutputPath, when set, receives the rendered document instead of Out.
	OutputPath string
	// Format selects the rendering: "markdown" (default), "plain" or "json".
	Format string
	// Color is "auto", "always" or "never". Headings are colored only for
	// markdown printed to a terminal, never for file writes.
	Color string
	Out   io.Writer
	// OutFile backs Out when it is a real file; used for TTY detection.
	OutFile *os.File
}

// Run renders summary according to opts. A nil summary prints a single
// diagnostic and performs no further action.
func Run(summary *model.StatsSummary, opts Options) error {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	if summary == nil {
		fmt.Fprintln(opts.Out, "No statistics to report.") //nolint:errcheck
		return nil
	}

	lines, err := Render(summary, time.Now(), opts.Format)
	if err != nil {
		return err
	}

	if opts.OutputPath != "" {
		doc := strings.Join(lines, "\n") + "\n"
		if err := os.WriteFile(opts.OutputPath, []byte(doc), 0o644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Fprintf(opts.Out, "Report generated at %s\n", opts.OutputPath) //nolint:errcheck
		return nil
	}

	useColor := resolveColorChoice(opts) && normalizeFormat(opts.Format) == formatMarkdown
	return writeLines(opts.Out, lines, useColor)
}

// Render produces the report lines for summary. Output is deterministic for
// a fixed (summary, generatedAt, format) triple.
func Render(summary *model.StatsSummary, generatedAt time.Time, format string) ([]string, error) {
	switch normalizeFormat(format) {
	case formatMarkdown:
		return renderMarkdown(summary, generatedAt), nil
	case formatPlain:
		return renderPlain(summary, generatedAt), nil
	case formatJSON:
		return renderJSON(summary, generatedAt)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

func normalizeFormat(format string) string {
	format = strings.ToLower(format)
	if format == "" {
		return formatMarkdown
	}
	return format
}

func renderMarkdown(s *model.StatsSummary, generatedAt time.Time) []string {
	lines := []string{
		"# Ralph Performance Benchmark Report",
		"",
		"Generated on: " + generatedAt.Format(timestampLayout),
		"",
		"## Summary Metrics",
		fmt.Sprintf("- **Total Iterations:** %d", s.TotalIterations),
		fmt.Sprintf("- **Total Execution Time:** %.2fs", s.TotalLatency),
		fmt.Sprintf("- **Total Tokens (Est):** %d", s.TotalTokens),
		fmt.Sprintf("- **Average Latency/Iteration:** %.2fs", s.AvgLatency),
		fmt.Sprintf("- **Average Tokens/Iteration:** %.1f", s.AvgTokens),
		fmt.Sprintf("- **Max Lazy Streak:** %d", s.MaxLazyStreak),
		"",
		"## Utilization",
		"",
		"### Tools Used",
	}
	for _, tool := range s.Tools.Keys() {
		lines = append(lines, fmt.Sprintf("- %s: %d iterations", tool, s.Tools.Count(tool)))
	}
	lines = append(lines, "", "### Models Used")
	for _, name := range s.Models.Keys() {
		lines = append(lines, fmt.Sprintf("- %s: %d iterations", name, s.Models.Count(name)))
	}
	return lines
}

func renderPlain(s *model.StatsSummary, generatedAt time.Time) []string {
	lines := []string{
		"Ralph Performance Benchmark Report",
		"Generated on: " + generatedAt.Format(timestampLayout),
		"",
		fmt.Sprintf("Total iterations:   %d", s.TotalIterations),
		fmt.Sprintf("Total execution:    %.2fs", s.TotalLatency),
		fmt.Sprintf("Total tokens (est): %d", s.TotalTokens),
		fmt.Sprintf("Avg latency:        %.2fs", s.AvgLatency),
		fmt.Sprintf("Avg tokens:         %.1f", s.AvgTokens),
		fmt.Sprintf("Max lazy streak:    %d", s.MaxLazyStreak),
		"",
		"Tools used:",
	}
	for _, tool := range s.Tools.Keys() {
		lines = append(lines, fmt.Sprintf("  %s: %d", tool, s.Tools.Count(tool)))
	}
	lines = append(lines, "", "Models used:")
	for _, name := range s.Models.Keys() {
		lines = append(lines, fmt.Sprintf("  %s: %d", name, s.Models.Count(name)))
	}
	return lines
}

func renderJSON(s *model.StatsSummary, generatedAt time.Time) ([]string, error) {
	payload := struct {
		GeneratedAt string `json:"generated_at"`
		*model.StatsSummary
	}{generatedAt.Format(timestampLayout), s}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}
	return strings.Split(string(data), "\n"), nil
}

func resolveColorChoice(opts Options) bool {
	switch strings.ToLower(opts.Color) {
	case "always":
		return true
	case "never":
		return false
	}
	return opts.OutFile != nil && isatty.IsTerminal(opts.OutFile.Fd())
}

func writeLines(out io.Writer, lines []string, useColor bool) error {
	for _, line := range lines {
		if useColor && strings.HasPrefix(line, "#") {
			line = ansiBold + line + ansiReset
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}
