// Package session holds the mutable state the tool boundary needs: the
// current prompt spec and the exemplars added so far. It replaces
// process-wide globals with an explicit object, so independent sessions
// can run side by side without interference. The validation core never
// sees a Session, only the exemplar snapshot and spec it hands out.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"exemplarcheck/pkg/core"
	"exemplarcheck/pkg/prompt"
	"exemplarcheck/pkg/validator"
)

// ErrNoPrompt is returned by operations that need a prompt before
// SetPrompt has been called.
var ErrNoPrompt = errors.New("session: no prompt configured")

type Session struct {
	mu        sync.Mutex
	spec      prompt.Spec
	hasSpec   bool
	createdAt time.Time
	exemplars []core.Exemplar
}

func New() *Session {
	return &Session{}
}

// SetPrompt stores a prompt spec, replacing any existing one. Exemplars
// are cleared; they belong to the prompt they were validated against.
func (s *Session) SetPrompt(spec prompt.Spec) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spec = spec
	s.hasSpec = true
	s.createdAt = time.Now()
	s.exemplars = nil
}

// AddExemplar appends a question/answer pair, stamped with a creation
// timestamp as a trailing metadata field.
func (s *Session) AddExemplar(question, answer string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasSpec {
		return ErrNoPrompt
	}
	ex := core.NewExemplar(question, answer)
	ex.Fields = append(ex.Fields, core.Field{
		Key:   "added_at",
		Value: time.Now().Format(time.RFC3339),
	})
	s.exemplars = append(s.exemplars, ex)
	return nil
}

// Spec returns the current prompt spec.
func (s *Session) Spec() (prompt.Spec, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasSpec {
		return prompt.Spec{}, ErrNoPrompt
	}
	return s.spec, nil
}

// Exemplars returns an independently owned snapshot of the session's
// exemplar list.
func (s *Session) Exemplars() []core.Exemplar {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Exemplar, len(s.exemplars))
	for i, ex := range s.exemplars {
		out[i] = ex.Clone()
	}
	return out
}

// Render assembles the current prompt over the session's exemplars and
// substitutes the question. Works with zero exemplars; the result is
// prefix and suffix only.
func (s *Session) Render(question string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasSpec {
		return "", ErrNoPrompt
	}
	return prompt.Assemble(s.spec, s.exemplars).Render(question), nil
}

// Query sends one question through the assembled prompt and returns the
// cleaned response. Artifact cleaning needs a key pair, so with zero
// exemplars the response is only whitespace-trimmed.
func (s *Session) Query(ctx context.Context, m core.Model, question string, opts core.GenerateOptions) (string, error) {
	rendered, err := s.Render(question)
	if err != nil {
		return "", err
	}
	resp, err := m.Generate(ctx, rendered, opts)
	if err != nil {
		return "", err
	}
	artifact := ""
	if keys, err := core.ExtractKeys(s.Exemplars()); err == nil {
		spec, _ := s.Spec()
		artifact = spec.ArtifactPrefix(keys)
	}
	return prompt.Clean(resp.Content, artifact), nil
}

// CheckExemplar replays a candidate pair through the current prompt with
// the candidate itself appended, returning the model's cleaned answer to
// the candidate's question. Callers compare it against the proposed
// answer before committing the pair with AddExemplar.
func (s *Session) CheckExemplar(ctx context.Context, m core.Model, question, answer string, opts core.GenerateOptions) (string, error) {
	s.mu.Lock()
	if !s.hasSpec {
		s.mu.Unlock()
		return "", ErrNoPrompt
	}
	spec := s.spec
	candidates := make([]core.Exemplar, 0, len(s.exemplars)+1)
	for _, ex := range s.exemplars {
		candidates = append(candidates, ex.Clone())
	}
	s.mu.Unlock()

	candidates = append(candidates, core.NewExemplar(question, answer))
	keys, err := core.ExtractKeys(candidates)
	if err != nil {
		return "", err
	}

	resp, err := m.Generate(ctx, prompt.Assemble(spec, candidates).Render(question), opts)
	if err != nil {
		return "", err
	}
	return prompt.Clean(resp.Content, spec.ArtifactPrefix(keys)), nil
}

// Validator builds a validator over a snapshot of the session state.
func (s *Session) Validator(m core.Model, opts core.GenerateOptions) (validator.Validator, error) {
	spec, err := s.Spec()
	if err != nil {
		return validator.Validator{}, err
	}
	return validator.Validator{
		Exemplars: s.Exemplars(),
		Spec:      spec,
		Model:     m,
		Options:   opts,
	}, nil
}

// Info returns a human-readable summary of the session.
func (s *Session) Info() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasSpec {
		return "No prompt configured yet."
	}

	var b strings.Builder
	b.WriteString("# Current Prompt\n\n")
	fmt.Fprintf(&b, "Created: %s\n", s.createdAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "Exemplar count: %d\n", len(s.exemplars))
	if len(s.exemplars) > 0 {
		b.WriteString("\n## Complete Prompt\n\n")
		b.WriteString(prompt.Assemble(s.spec, s.exemplars).Render(""))
		b.WriteString("\n")
	}
	return b.String()
}
