package core

import (
	"math"
	"sort"
	"time"
)

// Metrics aggregates statistics over one run's entries.
type Metrics struct {
	TotalExemplars  int           `json:"total_exemplars" yaml:"total_exemplars"`
	Identical       int           `json:"identical" yaml:"identical"`
	Changed         int           `json:"changed" yaml:"changed"`
	ConsistencyRate float64       `json:"consistency_rate" yaml:"consistency_rate"`
	TokenUsage      TokenUsage    `json:"token_usage" yaml:"token_usage"`
	AvgLatency      time.Duration `json:"avg_latency" yaml:"avg_latency"`
	P50Latency      time.Duration `json:"p50_latency" yaml:"p50_latency"`
	P95Latency      time.Duration `json:"p95_latency" yaml:"p95_latency"`
	P99Latency      time.Duration `json:"p99_latency" yaml:"p99_latency"`
}

// CalculateMetrics summarizes run entries.
func CalculateMetrics(entries []Entry) Metrics {
	if len(entries) == 0 {
		return Metrics{}
	}

	latencies := make([]time.Duration, 0, len(entries))
	var identical int
	var totalTokens TokenUsage

	for _, entry := range entries {
		latencies = append(latencies, entry.Response.Latency)
		if entry.Status == StatusIdentical {
			identical++
		}
		totalTokens.PromptTokens += entry.Response.TokenUsage.PromptTokens
		totalTokens.CompletionTokens += entry.Response.TokenUsage.CompletionTokens
		totalTokens.TotalTokens += entry.Response.TokenUsage.TotalTokens
	}

	return Metrics{
		TotalExemplars:  len(entries),
		Identical:       identical,
		Changed:         len(entries) - identical,
		ConsistencyRate: float64(identical) / float64(len(entries)),
		TokenUsage:      totalTokens,
		AvgLatency:      averageDuration(latencies),
		P50Latency:      percentileDuration(latencies, 0.50),
		P95Latency:      percentileDuration(latencies, 0.95),
		P99Latency:      percentileDuration(latencies, 0.99),
	}
}

func averageDuration(values []time.Duration) time.Duration {
	if len(values) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range values {
		sum += v
	}
	return time.Duration(int64(sum) / int64(len(values)))
}

func percentileDuration(values []time.Duration, p float64) time.Duration {
	if len(values) == 0 {
		return 0
	}
	copied := make([]time.Duration, len(values))
	copy(copied, values)
	sort.Slice(copied, func(i, j int) bool { return copied[i] < copied[j] })

	if p <= 0 {
		return copied[0]
	}
	if p >= 1 {
		return copied[len(copied)-1]
	}

	index := p * float64(len(copied)-1)
	lower := int(math.Floor(index))
	upper := int(math.Ceil(index))
	if lower == upper {
		return copied[lower]
	}
	weight := index - float64(lower)
	lowerVal := float64(copied[lower])
	upperVal := float64(copied[upper])
	return time.Duration(lowerVal*(1-weight) + upperVal*weight)
}
