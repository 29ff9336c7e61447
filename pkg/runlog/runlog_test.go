package runlog_test

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"exemplarcheck/pkg/core"
	"exemplarcheck/pkg/runlog"

	"github.com/stretchr/testify/require"
)

func TestWriteAndRead(t *testing.T) {
	dir := t.TempDir()
	rec := runlog.Record{
		Task:  "singers.json",
		Mode:  "replay",
		Model: "mock",
		Entries: []core.Entry{
			{Question: "q?", Expected: "a", Actual: "a", Status: core.StatusIdentical},
		},
		Metrics:    core.Metrics{TotalExemplars: 1, Identical: 1, ConsistencyRate: 1},
		StartedAt:  time.Now().UTC().Truncate(time.Second),
		FinishedAt: time.Now().UTC().Truncate(time.Second),
	}

	path, err := runlog.Write(dir, rec)
	require.NoError(t, err)
	require.Equal(t, dir, filepath.Dir(path))

	name := filepath.Base(path)
	require.True(t, strings.HasSuffix(name, "_singersjson_replay_mock.json"))

	loaded, err := runlog.Read(path)
	require.NoError(t, err)
	require.Equal(t, rec, loaded)
}

func TestWriteRequiresDir(t *testing.T) {
	_, err := runlog.Write("", runlog.Record{})
	require.Error(t, err)
}

func TestFromReport(t *testing.T) {
	report := core.RunReport{
		Mode:      "ablation",
		ModelName: "gpt-4o-mini",
		Metrics:   core.Metrics{TotalExemplars: 3},
	}
	rec := runlog.FromReport("demo", report)
	require.Equal(t, "demo", rec.Task)
	require.Equal(t, "ablation", rec.Mode)
	require.Equal(t, "gpt-4o-mini", rec.Model)
	require.Equal(t, 3, rec.Metrics.TotalExemplars)
}
