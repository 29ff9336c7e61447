package model_test

import (
	"context"
	"errors"
	"testing"

	"exemplarcheck/pkg/core"
	"exemplarcheck/pkg/model"

	"github.com/stretchr/testify/require"
)

type fullResponder struct{}

func (fullResponder) Name() string {
	return "full"
}

func (fullResponder) Respond(_ context.Context, prompt string) (core.Response, error) {
	return core.Response{Content: "full:" + prompt}, nil
}

type textResponder struct{}

func (textResponder) Respond(_ context.Context, prompt string) (string, error) {
	return "text:" + prompt, nil
}

type predictor struct{}

func (predictor) Predict(_ context.Context, prompt string) (string, error) {
	return "predict:" + prompt, nil
}

type predictorAndResponder struct {
	textResponder
	predictor
}

func TestAdaptResponder(t *testing.T) {
	m, err := model.Adapt(fullResponder{})
	require.NoError(t, err)
	require.Equal(t, "full", m.Name())

	resp, err := m.Generate(context.Background(), "hi", core.GenerateOptions{})
	require.NoError(t, err)
	require.Equal(t, "full:hi", resp.Content)
}

func TestAdaptTextResponder(t *testing.T) {
	m, err := model.Adapt(textResponder{})
	require.NoError(t, err)
	require.Equal(t, "adapted", m.Name())

	resp, err := m.Generate(context.Background(), "hi", core.GenerateOptions{})
	require.NoError(t, err)
	require.Equal(t, "text:hi", resp.Content)
}

func TestAdaptPredictor(t *testing.T) {
	m, err := model.Adapt(predictor{})
	require.NoError(t, err)

	resp, err := m.Generate(context.Background(), "hi", core.GenerateOptions{})
	require.NoError(t, err)
	require.Equal(t, "predict:hi", resp.Content)
}

func TestAdaptFunc(t *testing.T) {
	m, err := model.Adapt(func(_ context.Context, prompt string) (string, error) {
		return "fn:" + prompt, nil
	})
	require.NoError(t, err)
	require.Equal(t, "func", m.Name())

	resp, err := m.Generate(context.Background(), "hi", core.GenerateOptions{})
	require.NoError(t, err)
	require.Equal(t, "fn:hi", resp.Content)
}

func TestAdaptResponseFunc(t *testing.T) {
	m, err := model.Adapt(func(_ context.Context, prompt string) (core.Response, error) {
		return core.Response{Content: "resp:" + prompt, TokenUsage: core.TokenUsage{TotalTokens: 7}}, nil
	})
	require.NoError(t, err)

	resp, err := m.Generate(context.Background(), "hi", core.GenerateOptions{})
	require.NoError(t, err)
	require.Equal(t, "resp:hi", resp.Content)
	require.Equal(t, 7, resp.TokenUsage.TotalTokens)
}

func TestAdaptModelPassthrough(t *testing.T) {
	mock := model.MockModel{NameValue: "native"}
	m, err := model.Adapt(mock)
	require.NoError(t, err)
	require.Equal(t, "native", m.Name())
}

func TestAdaptPrefersRespondOverPredict(t *testing.T) {
	m, err := model.Adapt(predictorAndResponder{})
	require.NoError(t, err)

	resp, err := m.Generate(context.Background(), "hi", core.GenerateOptions{})
	require.NoError(t, err)
	require.Equal(t, "text:hi", resp.Content)
}

func TestAdaptUnsupported(t *testing.T) {
	_, err := model.Adapt(42)
	require.ErrorIs(t, err, model.ErrUnsupportedInterface)
}

func TestAdaptPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	m, err := model.Adapt(func(_ context.Context, _ string) (string, error) {
		return "", boom
	})
	require.NoError(t, err)

	_, err = m.Generate(context.Background(), "hi", core.GenerateOptions{})
	require.ErrorIs(t, err, boom)
}
