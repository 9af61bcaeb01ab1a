// Package parser reads line-delimited JSON metrics logs.
package parser

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"ralphbench/internal/model"
)

// ParseFile decodes every well-formed line of the metrics log at path, in
// file order. Blank lines and lines that fail to decode are skipped; the skip
// is the tolerance policy for legacy or corrupted entries, not an error.
func ParseFile(path string) ([]model.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open metrics log: %w", err)
	}
	defer file.Close()

	records, err := ParseReader(file)
	if err != nil {
		return records, fmt.Errorf("read metrics log %s: %w", path, err)
	}
	return records, nil
}

// ParseReader decodes records from r, one JSON object per line. Field types
// are not validated here; defaults are applied by Record accessors at
// aggregation time.
func ParseReader(r io.Reader) ([]model.Record, error) {
	scanner := newScanner(r)

	var records []model.Record
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var fields map[string]any
		if err := json.Unmarshal([]byte(line), &fields); err != nil {
			continue
		}
		records = append(records, model.NewRecord(fields))
	}
	if err := scanner.Err(); err != nil {
		return records, fmt.Errorf("scan metrics log: %w", err)
	}
	return records, nil
}

func newScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	// Metric lines are small, but oversized entries must not abort the scan.
	const maxCapacity = 1024 * 1024
	buf := make([]byte, 1024)
	scanner.Buffer(buf, maxCapacity)
	return scanner
}
