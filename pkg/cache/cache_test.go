package cache_test

import (
	"testing"
	"time"

	"exemplarcheck/pkg/cache"
	"exemplarcheck/pkg/core"

	"github.com/stretchr/testify/require"
)

func TestCacheRoundTrip(t *testing.T) {
	c, err := cache.New(t.TempDir(), time.Hour)
	require.NoError(t, err)

	opts := core.GenerateOptions{Temperature: 0.5, MaxTokens: 64}
	resp := core.Response{
		Content:    "Paris",
		TokenUsage: core.TokenUsage{TotalTokens: 12},
	}
	require.NoError(t, c.Set("mock", "capital of France?", opts, resp))

	got, ok := c.Get("mock", "capital of France?", opts)
	require.True(t, ok)
	require.Equal(t, resp, got)
}

func TestCacheMiss(t *testing.T) {
	c, err := cache.New(t.TempDir(), time.Hour)
	require.NoError(t, err)

	_, ok := c.Get("mock", "never stored", core.GenerateOptions{})
	require.False(t, ok)
}

func TestCacheKeyIncludesOptions(t *testing.T) {
	c, err := cache.New(t.TempDir(), time.Hour)
	require.NoError(t, err)

	require.NoError(t, c.Set("mock", "p", core.GenerateOptions{Temperature: 0.1}, core.Response{Content: "a"}))
	_, ok := c.Get("mock", "p", core.GenerateOptions{Temperature: 0.9})
	require.False(t, ok)
}

func TestCacheExpiry(t *testing.T) {
	c, err := cache.New(t.TempDir(), time.Nanosecond)
	require.NoError(t, err)

	require.NoError(t, c.Set("mock", "p", core.GenerateOptions{}, core.Response{Content: "a"}))
	time.Sleep(time.Millisecond)
	_, ok := c.Get("mock", "p", core.GenerateOptions{})
	require.False(t, ok)
}
