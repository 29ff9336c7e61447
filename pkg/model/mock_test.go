package model_test

import (
	"context"
	"errors"
	"testing"

	"exemplarcheck/pkg/core"
	"exemplarcheck/pkg/model"

	"github.com/stretchr/testify/require"
)

func TestMockModelFixedResponse(t *testing.T) {
	m := model.MockModel{ResponseText: "always this"}
	resp, err := m.Generate(context.Background(), "anything", core.GenerateOptions{})
	require.NoError(t, err)
	require.Equal(t, "always this", resp.Content)
}

func TestMockModelAnswerRules(t *testing.T) {
	m := model.MockModel{
		ResponseText: "fallback",
		Answers: map[string]string{
			"capital of France": "Paris",
			"capital of Japan":  "Tokyo",
		},
	}

	resp, err := m.Generate(context.Background(), "Q: capital of Japan?", core.GenerateOptions{})
	require.NoError(t, err)
	require.Equal(t, "Tokyo", resp.Content)

	resp, err = m.Generate(context.Background(), "unmatched prompt", core.GenerateOptions{})
	require.NoError(t, err)
	require.Equal(t, "fallback", resp.Content)
}

func TestMockModelEchoesByDefault(t *testing.T) {
	m := model.MockModel{}
	resp, err := m.Generate(context.Background(), "echo me", core.GenerateOptions{})
	require.NoError(t, err)
	require.Equal(t, "echo me", resp.Content)
	require.Equal(t, "mock", m.Name())
}

func TestMockModelError(t *testing.T) {
	boom := errors.New("scripted failure")
	m := model.MockModel{Err: boom}
	_, err := m.Generate(context.Background(), "x", core.GenerateOptions{})
	require.ErrorIs(t, err, boom)
}
