package validator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"exemplarcheck/pkg/core"
	"exemplarcheck/pkg/prompt"
)

// Mode selects which drive loop a run uses.
type Mode string

const (
	ModeReplay   Mode = "replay"
	ModeAblation Mode = "ablation"
)

// Validator checks an exemplar set for consistency against a live model.
// Replay re-asks each exemplar's question through the full prompt and
// diffs the answer; ablation removes each exemplar before asking its own
// question, which tells you whether that exemplar is load-bearing.
//
// The exemplar list and spec are read-only inputs; a run never mutates
// them. Execution is strictly sequential, one model call at a time, and
// a failure on exemplar k aborts entries k+1..n rather than skipping
// them silently.
type Validator struct {
	Exemplars []core.Exemplar
	Spec      prompt.Spec
	Model     core.Model
	Options   core.GenerateOptions

	// Limiter, when set, paces the run's model calls.
	Limiter core.RateLimiter

	// Progress, when set, is called after each exemplar completes.
	Progress func(completed, total int)
}

// ReplayTest replays every exemplar's question through the full prompt
// and returns the concatenated diff report.
func (v Validator) ReplayTest(ctx context.Context) (string, error) {
	entries, err := v.Replay(ctx)
	if err != nil {
		return "", err
	}
	return RenderDiff(entries), nil
}

// AblationTest asks each exemplar's question with that exemplar removed
// from the prompt and returns the concatenated diff report.
func (v Validator) AblationTest(ctx context.Context) (string, error) {
	entries, err := v.Ablation(ctx)
	if err != nil {
		return "", err
	}
	return RenderDiff(entries), nil
}

// Replay produces one structured entry per exemplar using the full,
// non-ablated prompt.
func (v Validator) Replay(ctx context.Context) ([]core.Entry, error) {
	return v.run(ctx, ModeReplay)
}

// Ablation produces one structured entry per exemplar, each asked
// against a prompt with that exemplar excluded.
func (v Validator) Ablation(ctx context.Context) ([]core.Entry, error) {
	return v.run(ctx, ModeAblation)
}

// ReplayExamples returns a fresh exemplar list in which each answer
// field has been replaced by the model's cleaned replay response.
// Question fields and any metadata fields are untouched. Supports
// promoting the model's current answers to ground truth.
func (v Validator) ReplayExamples(ctx context.Context) ([]core.Exemplar, error) {
	return v.examples(ctx, ModeReplay)
}

// AblationExamples is ReplayExamples over the ablation drive loop: each
// answer is regenerated with its own exemplar removed from the prompt.
func (v Validator) AblationExamples(ctx context.Context) ([]core.Exemplar, error) {
	return v.examples(ctx, ModeAblation)
}

// Run executes one replay or ablation pass and wraps the entries in a
// report with aggregate metrics.
func (v Validator) Run(ctx context.Context, mode Mode) (core.RunReport, error) {
	started := time.Now()
	entries, err := v.run(ctx, mode)
	if err != nil {
		return core.RunReport{}, err
	}
	modelName := ""
	if v.Model != nil {
		modelName = v.Model.Name()
	}
	return core.RunReport{
		Mode:       string(mode),
		ModelName:  modelName,
		Entries:    entries,
		Metrics:    core.CalculateMetrics(entries),
		StartedAt:  started,
		FinishedAt: time.Now(),
	}, nil
}

func (v Validator) run(ctx context.Context, mode Mode) ([]core.Entry, error) {
	keys, artifact, err := v.prepare()
	if err != nil {
		return nil, err
	}

	full := prompt.Assemble(v.Spec, v.Exemplars)
	entries := make([]core.Entry, 0, len(v.Exemplars))
	for i, ex := range v.Exemplars {
		question, _ := ex.Get(keys.Question)
		expectedRaw, _ := ex.Get(keys.Answer)
		expected := strings.TrimSpace(expectedRaw)

		p := full
		if mode == ModeAblation {
			p = prompt.AssembleExcluding(v.Spec, v.Exemplars, i)
		}

		start := time.Now()
		actual, resp, err := v.invoke(ctx, p, question, artifact)
		if err != nil {
			return nil, fmt.Errorf("validator: exemplar %d: %w", i, err)
		}

		status := core.StatusChanged
		if expected == strings.TrimSpace(actual) {
			status = core.StatusIdentical
		}
		entries = append(entries, core.Entry{
			Question: question,
			Expected: expected,
			Actual:   actual,
			Status:   status,
			Response: resp,
			Duration: time.Since(start),
		})
		if v.Progress != nil {
			v.Progress(i+1, len(v.Exemplars))
		}
	}
	return entries, nil
}

func (v Validator) examples(ctx context.Context, mode Mode) ([]core.Exemplar, error) {
	keys, artifact, err := v.prepare()
	if err != nil {
		return nil, err
	}

	full := prompt.Assemble(v.Spec, v.Exemplars)
	out := make([]core.Exemplar, 0, len(v.Exemplars))
	for i, ex := range v.Exemplars {
		question, _ := ex.Get(keys.Question)

		p := full
		if mode == ModeAblation {
			p = prompt.AssembleExcluding(v.Spec, v.Exemplars, i)
		}

		actual, _, err := v.invoke(ctx, p, question, artifact)
		if err != nil {
			return nil, fmt.Errorf("validator: exemplar %d: %w", i, err)
		}
		out = append(out, ex.WithValue(keys.Answer, actual))
		if v.Progress != nil {
			v.Progress(i+1, len(v.Exemplars))
		}
	}
	return out, nil
}

func (v Validator) prepare() (core.KeyPair, string, error) {
	if v.Model == nil {
		return core.KeyPair{}, "", fmt.Errorf("validator: model is required")
	}
	keys, err := core.ExtractKeys(v.Exemplars)
	if err != nil {
		return core.KeyPair{}, "", err
	}
	return keys, v.Spec.ArtifactPrefix(keys), nil
}

// invoke performs exactly one outbound model call: render, generate,
// clean. No retries and no caching live here; both belong to the model
// collaborator if anywhere.
func (v Validator) invoke(ctx context.Context, p prompt.Prompt, question, artifact string) (string, core.Response, error) {
	if v.Limiter != nil {
		if err := v.Limiter.Wait(ctx); err != nil {
			return "", core.Response{}, err
		}
	}
	resp, err := v.Model.Generate(ctx, p.Render(question), v.Options)
	if err != nil {
		return "", core.Response{}, err
	}
	return prompt.Clean(resp.Content, artifact), resp, nil
}
