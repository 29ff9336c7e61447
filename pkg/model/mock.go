package model

import (
	"context"
	"sort"
	"strings"
	"time"

	"exemplarcheck/pkg/core"
)

// MockModel is a scripted model for tests and dry runs. Resolution
// order: Err if set, the first Answers rule whose key (a substring,
// checked in sorted key order for determinism) appears in the prompt,
// then ResponseText, then the prompt echoed back.
type MockModel struct {
	NameValue    string
	ResponseText string
	Answers      map[string]string
	Err          error
}

func (m MockModel) Name() string {
	if m.NameValue == "" {
		return "mock"
	}
	return m.NameValue
}

func (m MockModel) Generate(_ context.Context, prompt string, _ core.GenerateOptions) (core.Response, error) {
	if m.Err != nil {
		return core.Response{}, m.Err
	}
	start := time.Now()
	content := prompt
	if m.ResponseText != "" {
		content = m.ResponseText
	}
	if len(m.Answers) > 0 {
		keys := make([]string, 0, len(m.Answers))
		for k := range m.Answers {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if strings.Contains(prompt, k) {
				content = m.Answers[k]
				break
			}
		}
	}
	return core.Response{
		Content: content,
		Latency: time.Since(start),
	}, nil
}
