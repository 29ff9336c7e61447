package validator

import (
	"strings"

	"exemplarcheck/pkg/core"
)

// RenderDiff renders entries as concatenated diff blocks. An entry whose
// answer was reproduced verbatim renders as two lines:
//
//	# Q: {question}
//	# (identical)
//
// and a changed one as three:
//
//	# Q: {question}
//	- {expected}
//	+ {actual}
//
// Blocks are joined by a blank line. Zero entries render as "".
func RenderDiff(entries []core.Entry) string {
	blocks := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Status == core.StatusIdentical {
			blocks = append(blocks, "# Q: "+entry.Question+"\n# (identical)")
			continue
		}
		blocks = append(blocks, "# Q: "+entry.Question+"\n- "+entry.Expected+"\n+ "+entry.Actual)
	}
	return strings.Join(blocks, "\n\n")
}
