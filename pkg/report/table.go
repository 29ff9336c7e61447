package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"exemplarcheck/pkg/core"
)

type TableReporter struct {
	Writer io.Writer
}

func (r TableReporter) Report(report core.RunReport) error {
	summary := tablewriter.NewWriter(r.Writer)
	summary.Header([]string{"Metric", "Value"})
	summary.Append([]string{"Mode", report.Mode})
	summary.Append([]string{"Model", report.ModelName})
	summary.Append([]string{"Exemplars", fmt.Sprintf("%d", report.Metrics.TotalExemplars)})
	summary.Append([]string{"Identical", fmt.Sprintf("%d", report.Metrics.Identical)})
	summary.Append([]string{"Changed", fmt.Sprintf("%d", report.Metrics.Changed)})
	summary.Append([]string{"Consistency rate", fmt.Sprintf("%.2f", report.Metrics.ConsistencyRate)})
	summary.Append([]string{"Total tokens", fmt.Sprintf("%d", report.Metrics.TokenUsage.TotalTokens)})
	summary.Append([]string{"Avg latency", report.Metrics.AvgLatency.String()})
	summary.Append([]string{"P95 latency", report.Metrics.P95Latency.String()})
	summary.Render()

	entries := tablewriter.NewWriter(r.Writer)
	entries.Header([]string{"#", "Question", "Status"})
	for i, entry := range report.Entries {
		entries.Append([]string{fmt.Sprintf("%d", i+1), entry.Question, string(entry.Status)})
	}
	entries.Render()
	return nil
}
