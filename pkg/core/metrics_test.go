package core_test

import (
	"testing"
	"time"

	"exemplarcheck/pkg/core"

	"github.com/stretchr/testify/require"
)

func TestCalculateMetrics(t *testing.T) {
	entries := []core.Entry{
		{
			Status: core.StatusIdentical,
			Response: core.Response{
				Latency:    10 * time.Millisecond,
				TokenUsage: core.TokenUsage{PromptTokens: 100, CompletionTokens: 20, TotalTokens: 120},
			},
		},
		{
			Status: core.StatusChanged,
			Response: core.Response{
				Latency:    30 * time.Millisecond,
				TokenUsage: core.TokenUsage{PromptTokens: 100, CompletionTokens: 10, TotalTokens: 110},
			},
		},
	}

	m := core.CalculateMetrics(entries)
	require.Equal(t, 2, m.TotalExemplars)
	require.Equal(t, 1, m.Identical)
	require.Equal(t, 1, m.Changed)
	require.Equal(t, 0.5, m.ConsistencyRate)
	require.Equal(t, 230, m.TokenUsage.TotalTokens)
	require.Equal(t, 20*time.Millisecond, m.AvgLatency)
	require.Equal(t, 20*time.Millisecond, m.P50Latency)
}

func TestCalculateMetricsEmpty(t *testing.T) {
	m := core.CalculateMetrics(nil)
	require.Equal(t, 0, m.TotalExemplars)
	require.Equal(t, 0.0, m.ConsistencyRate)
}
