package report

import (
	"encoding/json"
	"io"

	"exemplarcheck/pkg/core"
)

type JSONReporter struct {
	Writer io.Writer
	Pretty bool
}

func (r JSONReporter) Report(report core.RunReport) error {
	encoder := json.NewEncoder(r.Writer)
	if r.Pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(report)
}
