package session_test

import (
	"context"
	"strings"
	"testing"

	"exemplarcheck/pkg/core"
	"exemplarcheck/pkg/model"
	"exemplarcheck/pkg/prompt"
	"exemplarcheck/pkg/session"

	"github.com/stretchr/testify/require"
)

func TestAddExemplarRequiresPrompt(t *testing.T) {
	s := session.New()
	err := s.AddExemplar("q", "a")
	require.ErrorIs(t, err, session.ErrNoPrompt)
}

func TestSetPromptClearsExemplars(t *testing.T) {
	s := session.New()
	s.SetPrompt(prompt.DefaultSpec())
	require.NoError(t, s.AddExemplar("q", "a"))
	require.Len(t, s.Exemplars(), 1)

	s.SetPrompt(prompt.DefaultSpec())
	require.Empty(t, s.Exemplars())
}

func TestAddExemplarStampsMetadata(t *testing.T) {
	s := session.New()
	s.SetPrompt(prompt.DefaultSpec())
	require.NoError(t, s.AddExemplar("q", "a"))

	ex := s.Exemplars()[0]
	stamp, ok := ex.Get("added_at")
	require.True(t, ok)
	require.NotEmpty(t, stamp)

	keys, err := core.ExtractKeys([]core.Exemplar{ex})
	require.NoError(t, err)
	require.Equal(t, core.KeyPair{Question: "question", Answer: "answer"}, keys)
}

func TestRenderWithoutExemplars(t *testing.T) {
	s := session.New()
	s.SetPrompt(prompt.DefaultSpec())

	rendered, err := s.Render("anything?")
	require.NoError(t, err)
	require.Equal(t, "Q: anything?", rendered)
}

func TestQueryCleansResponse(t *testing.T) {
	s := session.New()
	s.SetPrompt(prompt.DefaultSpec())
	require.NoError(t, s.AddExemplar("capital of France?", "Paris"))

	answer, err := s.Query(context.Background(), model.MockModel{ResponseText: "A: Tokyo"},
		"capital of Japan?", core.GenerateOptions{})
	require.NoError(t, err)
	require.Equal(t, "Tokyo", answer)
}

func TestQueryWithoutExemplarsOnlyTrims(t *testing.T) {
	s := session.New()
	s.SetPrompt(prompt.DefaultSpec())

	answer, err := s.Query(context.Background(), model.MockModel{ResponseText: "  A: kept  "},
		"anything?", core.GenerateOptions{})
	require.NoError(t, err)
	require.Equal(t, "A: kept", answer)
}

func TestCheckExemplarDoesNotCommit(t *testing.T) {
	s := session.New()
	s.SetPrompt(prompt.DefaultSpec())
	require.NoError(t, s.AddExemplar("capital of France?", "Paris"))

	recorded := ""
	m, err := model.Adapt(func(_ context.Context, p string) (string, error) {
		recorded = p
		return "Rome", nil
	})
	require.NoError(t, err)

	answer, err := s.CheckExemplar(context.Background(), m, "capital of Italy?", "Rome", core.GenerateOptions{})
	require.NoError(t, err)
	require.Equal(t, "Rome", answer)

	// The candidate was part of the rendered prompt but was not added.
	require.True(t, strings.Contains(recorded, "Q: capital of Italy?\nA: Rome"))
	require.Len(t, s.Exemplars(), 1)
}

func TestValidatorSnapshot(t *testing.T) {
	s := session.New()
	s.SetPrompt(prompt.DefaultSpec())
	require.NoError(t, s.AddExemplar("q?", "a"))

	v, err := s.Validator(model.MockModel{ResponseText: "a"}, core.GenerateOptions{})
	require.NoError(t, err)

	report, err := v.ReplayTest(context.Background())
	require.NoError(t, err)
	require.Equal(t, "# Q: q?\n# (identical)", report)
}

func TestInfo(t *testing.T) {
	s := session.New()
	require.Equal(t, "No prompt configured yet.", s.Info())

	s.SetPrompt(prompt.DefaultSpec())
	require.NoError(t, s.AddExemplar("q?", "a"))
	info := s.Info()
	require.Contains(t, info, "Exemplar count: 1")
	require.Contains(t, info, "Q: q?\nA: a")
}
