package report

import (
	"fmt"
	"io"

	"exemplarcheck/pkg/core"
	"exemplarcheck/pkg/validator"
)

// DiffReporter writes the canonical diff blocks, nothing else. This is
// the format meant for eyeballing and for piping into review tooling.
type DiffReporter struct {
	Writer io.Writer
}

func (r DiffReporter) Report(report core.RunReport) error {
	out := validator.RenderDiff(report.Entries)
	if out == "" {
		return nil
	}
	_, err := fmt.Fprintln(r.Writer, out)
	return err
}
