package model

import "testing"

func TestRecordDefaults(t *testing.T) {
	r := NewRecord(map[string]any{})

	if got := r.Latency(); got != 0 {
		t.Fatalf("Latency default: got %v", got)
	}
	if got := r.Tokens(); got != 0 {
		t.Fatalf("Tokens default: got %d", got)
	}
	if got := r.LazyStreak(); got != 0 {
		t.Fatalf("LazyStreak default: got %d", got)
	}
	if got := r.Tool(); got != "unknown" {
		t.Fatalf("Tool default: got %q", got)
	}
	if got := r.Model(); got != "unknown" {
		t.Fatalf("Model default: got %q", got)
	}
}

func TestRecordWrongTypedFields(t *testing.T) {
	r := NewRecord(map[string]any{
		"latency": "fast",
		"tokens":  "10",
		"tool":    42.0,
		"model":   nil,
	})

	if got := r.Latency(); got != 0 {
		t.Fatalf("wrong-typed latency should default to 0, got %v", got)
	}
	if got := r.Tokens(); got != 0 {
		t.Fatalf("wrong-typed tokens should default to 0, got %d", got)
	}
	if got := r.Tool(); got != "unknown" {
		t.Fatalf("wrong-typed tool should default to unknown, got %q", got)
	}
	if got := r.Model(); got != "unknown" {
		t.Fatalf("nil model should default to unknown, got %q", got)
	}
}

func TestRecordTypedFields(t *testing.T) {
	r := NewRecord(map[string]any{
		"latency":     2.5,
		"tokens":      15.0,
		"lazy_streak": 3.0,
		"tool":        "bash",
		"model":       "opus",
		"extra":       "ignored",
	})

	if got := r.Latency(); got != 2.5 {
		t.Fatalf("Latency: got %v", got)
	}
	if got := r.Tokens(); got != 15 {
		t.Fatalf("Tokens: got %d", got)
	}
	if got := r.LazyStreak(); got != 3 {
		t.Fatalf("LazyStreak: got %d", got)
	}
	if got := r.Tool(); got != "bash" {
		t.Fatalf("Tool: got %q", got)
	}
	if got := r.Model(); got != "opus" {
		t.Fatalf("Model: got %q", got)
	}
}

func TestHistogramFirstSeenOrder(t *testing.T) {
	var h Histogram
	h.Add("b")
	h.Add("a")
	h.Add("b")

	keys := h.Keys()
	if len(keys) != 2 || keys[0] != "b" || keys[1] != "a" {
		t.Fatalf("unexpected key order: %v", keys)
	}
	if got := h.Count("b"); got != 2 {
		t.Fatalf("Count(b): got %d", got)
	}
	if got := h.Count("a"); got != 1 {
		t.Fatalf("Count(a): got %d", got)
	}
	if got := h.Total(); got != 3 {
		t.Fatalf("Total: got %d", got)
	}
}

func TestHistogramMarshalJSONOrdered(t *testing.T) {
	var h Histogram
	h.Add("write")
	h.Add("read")
	h.Add("write")

	data, err := h.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON returned error: %v", err)
	}
	if got := string(data); got != `{"write":2,"read":1}` {
		t.Fatalf("unexpected JSON: %s", got)
	}
}

func TestHistogramZeroValue(t *testing.T) {
	var h Histogram
	if got := h.Total(); got != 0 {
		t.Fatalf("empty Total: got %d", got)
	}
	if keys := h.Keys(); len(keys) != 0 {
		t.Fatalf("empty Keys: got %v", keys)
	}
	data, err := h.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON returned error: %v", err)
	}
	if got := string(data); got != "{}" {
		t.Fatalf("empty JSON: got %s", got)
	}
}
