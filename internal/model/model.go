// Package model defines the value types shared across the pipeline.
package model

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Record is one decoded measurement event from the metrics log. The decoded
// fields stay untyped; accessors resolve each recognized key to a typed value
// with a documented default, so a missing or wrong-typed field never fails.
type Record struct {
	fields map[string]any
}

// NewRecord wraps a decoded JSON object.
func NewRecord(fields map[string]any) Record {
	return Record{fields: fields}
}

// Latency returns the iteration latency in seconds, or 0 when absent.
func (r Record) Latency() float64 {
	return r.number("latency")
}

// Tokens returns the estimated token count, or 0 when absent.
func (r Record) Tokens() int {
	return int(r.number("tokens"))
}

// LazyStreak returns the lazy-streak counter, or 0 when absent.
func (r Record) LazyStreak() int {
	return int(r.number("lazy_streak"))
}

// Tool returns the tool name, or "unknown" when absent.
func (r Record) Tool() string {
	return r.label("tool")
}

// Model returns the model name, or "unknown" when absent.
func (r Record) Model() string {
	return r.label("model")
}

func (r Record) number(key string) float64 {
	switch v := r.fields[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return 0
	}
}

func (r Record) label(key string) string {
	if s, ok := r.fields[key].(string); ok {
		return s
	}
	return "unknown"
}

// Histogram counts occurrences per category, preserving first-seen order.
// The zero value is ready to use.
type Histogram struct {
	keys   []string
	counts map[string]int
}

// Add increments the count for key, registering it on first sight.
func (h *Histogram) Add(key string) {
	if h.counts == nil {
		h.counts = make(map[string]int)
	}
	if _, seen := h.counts[key]; !seen {
		h.keys = append(h.keys, key)
	}
	h.counts[key]++
}

// Keys returns the categories in first-seen order.
func (h Histogram) Keys() []string {
	return h.keys
}

// Count returns the occurrences recorded for key.
func (h Histogram) Count(key string) int {
	return h.counts[key]
}

// Total returns the sum of all counts.
func (h Histogram) Total() int {
	total := 0
	for _, n := range h.counts {
		total += n
	}
	return total
}

// MarshalJSON renders the histogram as a JSON object with keys in first-seen
// order.
func (h Histogram) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range h.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(h.counts[key]))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// StatsSummary is the aggregated rollup of every record in one run. A nil
// summary signals "nothing to report".
type StatsSummary struct {
	TotalIterations int       `json:"total_iterations"`
	TotalLatency    float64   `json:"total_latency"`
	TotalTokens     int       `json:"total_tokens"`
	AvgLatency      float64   `json:"avg_latency"`
	AvgTokens       float64   `json:"avg_tokens"`
	MaxLazyStreak   int       `json:"max_lazy"`
	Tools           Histogram `json:"tools"`
	Models          Histogram `json:"models"`
}
