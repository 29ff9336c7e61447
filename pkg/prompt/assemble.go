package prompt

import (
	"fmt"
	"strings"

	"exemplarcheck/pkg/core"
)

const pieceSeparator = "\n\n"

// Prompt is an assembled few-shot prompt: a spec plus the exemplar list
// it will render. Assembly and rendering are pure string construction;
// nothing here touches the network.
type Prompt struct {
	spec      Spec
	exemplars []core.Exemplar
}

// Assemble builds the full prompt over all exemplars. The exemplar list
// is copied; the caller's slice is never retained or mutated.
func Assemble(spec Spec, exemplars []core.Exemplar) Prompt {
	items := make([]core.Exemplar, len(exemplars))
	copy(items, exemplars)
	return Prompt{spec: spec, exemplars: items}
}

// AssembleExcluding builds a variant prompt with the exemplar at index
// removed. The input list is left unmodified; the variant owns a fresh
// slice. Index is 0-based and only ever comes from internal iteration,
// so out-of-range is a programming error and panics.
func AssembleExcluding(spec Spec, exemplars []core.Exemplar, index int) Prompt {
	if index < 0 || index >= len(exemplars) {
		panic(fmt.Sprintf("prompt: exclude index %d out of range for %d exemplars", index, len(exemplars)))
	}
	items := make([]core.Exemplar, 0, len(exemplars)-1)
	items = append(items, exemplars[:index]...)
	items = append(items, exemplars[index+1:]...)
	return Prompt{spec: spec, exemplars: items}
}

// Exemplars returns the prompt's exemplar list.
func (p Prompt) Exemplars() []core.Exemplar {
	return p.exemplars
}

// Render produces the literal prompt text for one question: prefix,
// then each exemplar through the example template in list order, then
// the suffix with the question substituted for the input variable.
// Empty pieces are skipped.
func (p Prompt) Render(question string) string {
	pieces := make([]string, 0, len(p.exemplars)+2)
	if p.spec.Prefix != "" {
		pieces = append(pieces, p.spec.Prefix)
	}
	for _, ex := range p.exemplars {
		values := make(map[string]string, len(ex.Fields))
		for _, f := range ex.Fields {
			values[f.Key] = f.Value
		}
		pieces = append(pieces, applyTemplate(p.spec.ExampleTemplate, values))
	}
	inputVar := p.spec.InputVariable
	if inputVar == "" {
		inputVar = "input"
	}
	suffix := applyTemplate(p.spec.Suffix, map[string]string{inputVar: question})
	if suffix != "" {
		pieces = append(pieces, suffix)
	}
	return strings.Join(pieces, pieceSeparator)
}
