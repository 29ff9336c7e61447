package prompt

import (
	"strings"

	"exemplarcheck/pkg/core"
)

// Spec describes how a few-shot prompt is put together: an optional
// prefix, one template applied per exemplar, and a suffix carrying the
// input variable. Placeholders use the {{name}} form.
type Spec struct {
	Prefix          string `json:"prefix" yaml:"prefix" mapstructure:"prefix"`
	ExampleTemplate string `json:"example_template" yaml:"example_template" mapstructure:"example_template"`
	Suffix          string `json:"suffix" yaml:"suffix" mapstructure:"suffix"`
	InputVariable   string `json:"input_variable" yaml:"input_variable" mapstructure:"input_variable"`
}

// DefaultSpec is the conventional Q/A layout.
func DefaultSpec() Spec {
	return Spec{
		ExampleTemplate: "Q: {{question}}\nA: {{answer}}",
		Suffix:          "Q: {{input}}",
		InputVariable:   "input",
	}
}

func placeholder(name string) string {
	return "{{" + name + "}}"
}

// ArtifactPrefix derives the literal template text sitting between the
// question placeholder and the answer placeholder, e.g. "A: " for the
// template "Q: {{question}}\nA: {{answer}}". Models continuing the
// few-shot pattern tend to echo this span at the start of a completion,
// so the normalizer strips it back out. Returns "" when the template has
// no such span.
func (s Spec) ArtifactPrefix(keys core.KeyPair) string {
	_, after, found := strings.Cut(s.ExampleTemplate, placeholder(keys.Question))
	if !found {
		return ""
	}
	before, _, _ := strings.Cut(strings.TrimSpace(after), placeholder(keys.Answer))
	return before
}
