package tests

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"exemplarcheck/pkg/core"
	"exemplarcheck/pkg/prompt"
	"exemplarcheck/pkg/runlog"
	"exemplarcheck/pkg/store"
	"exemplarcheck/pkg/validator"

	"github.com/stretchr/testify/require"
)

// lastQuestionModel answers the trailing "Q: ..." line of the prompt
// from a fixed table, simulating a model that reproduces its exemplars.
type lastQuestionModel struct {
	answers map[string]string
}

func (lastQuestionModel) Name() string {
	return "table"
}

func (m lastQuestionModel) Generate(_ context.Context, p string, _ core.GenerateOptions) (core.Response, error) {
	lines := strings.Split(p, "\n")
	question := strings.TrimPrefix(lines[len(lines)-1], "Q: ")
	if answer, ok := m.answers[question]; ok {
		return core.Response{Content: answer, TokenUsage: core.TokenUsage{TotalTokens: 10}}, nil
	}
	return core.Response{Content: "unknown"}, nil
}

func TestEndToEndCheckAndPromote(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "exemplars.jsonl")
	lines := `{"question": "capital of France?", "answer": "Paris"}
{"question": "capital of Japan?", "answer": "Kyoto"}`
	require.NoError(t, os.WriteFile(path, []byte(lines), 0o600))

	exemplars, err := store.Load(path)
	require.NoError(t, err)
	set, err := core.NewSet(exemplars)
	require.NoError(t, err)

	m := lastQuestionModel{answers: map[string]string{
		"capital of France?": "Paris",
		"capital of Japan?":  "Tokyo",
	}}
	v := validator.Validator{
		Exemplars: set.Items(),
		Spec:      prompt.DefaultSpec(),
		Model:     m,
	}

	report, err := v.Run(context.Background(), validator.ModeReplay)
	require.NoError(t, err)
	require.Equal(t, 2, report.Metrics.TotalExemplars)
	require.Equal(t, 1, report.Metrics.Identical)
	require.Equal(t, 1, report.Metrics.Changed)

	diff := validator.RenderDiff(report.Entries)
	require.Contains(t, diff, "# Q: capital of France?\n# (identical)")
	require.Contains(t, diff, "- Kyoto\n+ Tokyo")

	logPath, err := runlog.Write(filepath.Join(dir, "logs"), runlog.FromReport("exemplars.jsonl", report))
	require.NoError(t, err)
	logged, err := runlog.Read(logPath)
	require.NoError(t, err)
	require.Equal(t, "replay", logged.Mode)

	// Promote the model's answers to ground truth and re-check: the
	// promoted set must replay clean.
	promoted, err := v.ReplayExamples(context.Background())
	require.NoError(t, err)

	outPath := filepath.Join(dir, "promoted.jsonl")
	require.NoError(t, store.Save(outPath, promoted))

	reloaded, err := store.Load(outPath)
	require.NoError(t, err)

	v2 := validator.Validator{
		Exemplars: reloaded,
		Spec:      prompt.DefaultSpec(),
		Model:     m,
	}
	report2, err := v2.Run(context.Background(), validator.ModeReplay)
	require.NoError(t, err)
	require.Equal(t, 1.0, report2.Metrics.ConsistencyRate)
}

func TestEndToEndCustomKeysAndFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "exemplars.yaml")
	content := `- input: "2+2"
  output: "4"
- input: "3+3"
  output: "6"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	exemplars, err := store.Load(path)
	require.NoError(t, err)
	keys, err := core.ExtractKeys(exemplars)
	require.NoError(t, err)
	require.Equal(t, core.KeyPair{Question: "input", Answer: "output"}, keys)

	spec := prompt.Spec{
		ExampleTemplate: "Q: {{input}}\nA: {{output}}",
		Suffix:          "Q: {{problem}}",
		InputVariable:   "problem",
	}
	v := validator.Validator{
		Exemplars: exemplars,
		Spec:      spec,
		Model: lastQuestionModel{answers: map[string]string{
			"2+2": "4",
			"3+3": "6",
		}},
	}

	out, err := v.ReplayTest(context.Background())
	require.NoError(t, err)
	require.Equal(t, "# Q: 2+2\n# (identical)\n\n# Q: 3+3\n# (identical)", out)
}
