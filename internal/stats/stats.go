// Package stats aggregates parsed metric records into a single summary.
package stats

import (
	"github.com/samber/lo"

	"ralphbench/internal/model"
)

// Aggregate folds records into a StatsSummary. An empty input yields nil,
// the "nothing to report" marker. Every field access degrades to a default,
// so aggregation itself cannot fail.
func Aggregate(records []model.Record) *model.StatsSummary {
	if len(records) == 0 {
		return nil
	}

	count := len(records)
	totalLatency := lo.SumBy(records, model.Record.Latency)
	totalTokens := lo.SumBy(records, model.Record.Tokens)
	maxLazy := lo.Max(lo.Map(records, func(r model.Record, _ int) int {
		return r.LazyStreak()
	}))

	summary := &model.StatsSummary{
		TotalIterations: count,
		TotalLatency:    totalLatency,
		TotalTokens:     totalTokens,
		AvgLatency:      totalLatency / float64(count),
		AvgTokens:       float64(totalTokens) / float64(count),
		MaxLazyStreak:   maxLazy,
	}
	for _, r := range records {
		summary.Tools.Add(r.Tool())
		summary.Models.Add(r.Model())
	}
	return summary
}
