package report

import (
	"fmt"
	"io"

	"exemplarcheck/pkg/core"
)

type MarkdownReporter struct {
	Writer io.Writer
}

func (r MarkdownReporter) Report(report core.RunReport) error {
	if _, err := fmt.Fprintf(r.Writer, "# Exemplar Consistency Report\n\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(r.Writer, "- Mode: %s\n- Model: %s\n\n", report.Mode, report.ModelName); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(r.Writer, "## Summary\n\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(r.Writer, "| Metric | Value |\n|---|---|\n"); err != nil {
		return err
	}
	lines := []struct {
		Name  string
		Value string
	}{
		{"Exemplars", fmt.Sprintf("%d", report.Metrics.TotalExemplars)},
		{"Identical", fmt.Sprintf("%d", report.Metrics.Identical)},
		{"Changed", fmt.Sprintf("%d", report.Metrics.Changed)},
		{"Consistency rate", fmt.Sprintf("%.2f", report.Metrics.ConsistencyRate)},
		{"Avg latency", report.Metrics.AvgLatency.String()},
	}
	for _, line := range lines {
		if _, err := fmt.Fprintf(r.Writer, "| %s | %s |\n", line.Name, line.Value); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(r.Writer, "\n## Exemplars\n\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(r.Writer, "| # | Question | Expected | Actual | Status |\n|---|---|---|---|---|\n"); err != nil {
		return err
	}
	for i, entry := range report.Entries {
		if _, err := fmt.Fprintf(
			r.Writer,
			"| %d | %s | %s | %s | %s |\n",
			i+1,
			escapePipe(entry.Question),
			escapePipe(entry.Expected),
			escapePipe(entry.Actual),
			entry.Status,
		); err != nil {
			return err
		}
	}
	return nil
}

func escapePipe(input string) string {
	if input == "" {
		return ""
	}
	out := make([]rune, 0, len(input))
	for _, r := range input {
		if r == '|' {
			out = append(out, '\\', r)
		} else if r == '\n' || r == '\r' {
			out = append(out, ' ')
		} else {
			out = append(out, r)
		}
	}
	return string(out)
}
