package report

import "exemplarcheck/pkg/core"

// Reporter writes a run report.
type Reporter interface {
	Report(report core.RunReport) error
}

const (
	FormatDiff     = "diff"
	FormatTable    = "table"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)
