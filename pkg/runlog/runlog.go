// Package runlog persists one JSON record per validation run so a set's
// consistency can be tracked across prompt edits.
package runlog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"exemplarcheck/pkg/core"
)

type Record struct {
	Task       string       `json:"task"`
	Mode       string       `json:"mode"`
	Model      string       `json:"model"`
	Entries    []core.Entry `json:"entries"`
	Metrics    core.Metrics `json:"metrics"`
	StartedAt  time.Time    `json:"started_at"`
	FinishedAt time.Time    `json:"finished_at"`
}

// FromReport wraps a run report as a log record. Task is a caller-chosen
// label, usually the exemplar file's base name.
func FromReport(task string, report core.RunReport) Record {
	return Record{
		Task:       task,
		Mode:       report.Mode,
		Model:      report.ModelName,
		Entries:    report.Entries,
		Metrics:    report.Metrics,
		StartedAt:  report.StartedAt,
		FinishedAt: report.FinishedAt,
	}
}

// Write stores the record under dir with a timestamped, sanitized
// filename and returns the path. The file lands via rename so a crashed
// run never leaves a half-written log behind.
func Write(dir string, rec Record) (string, error) {
	if dir == "" {
		return "", fmt.Errorf("runlog: dir is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, buildFileName(rec))
	tmp, err := os.CreateTemp(dir, "tmp-*.json")
	if err != nil {
		return "", err
	}
	encoder := json.NewEncoder(tmp)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(rec); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return path, nil
}

// Read loads a previously written record.
func Read(path string) (Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return Record{}, err
	}
	defer file.Close()

	var rec Record
	if err := json.NewDecoder(file).Decode(&rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func buildFileName(rec Record) string {
	timestamp := time.Now().Format("2006-01-02T15-04-05")
	task := sanitizeName(rec.Task)
	model := sanitizeName(rec.Model)
	mode := sanitizeName(rec.Mode)
	if task == "" {
		task = "run"
	}
	if model == "" {
		model = "model"
	}
	if mode == "" {
		mode = "replay"
	}
	return fmt.Sprintf("%s_%s_%s_%s.json", timestamp, task, mode, model)
}

func sanitizeName(input string) string {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			out = append(out, r)
		}
	}
	return string(out)
}
