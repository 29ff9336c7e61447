package model

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/responses"

	"exemplarcheck/pkg/core"
)

const defaultOpenAIModel = "gpt-4o-mini"

type OpenAIModel struct {
	Client openai.Client
	Model  string
	Retry  RetryConfig
}

func NewOpenAIModelFromEnv(modelName string) (*OpenAIModel, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, errors.New("openai: OPENAI_API_KEY is required")
	}
	if modelName == "" {
		modelName = defaultOpenAIModel
	}
	return &OpenAIModel{
		Client: openai.NewClient(option.WithAPIKey(apiKey)),
		Model:  modelName,
		Retry:  RetryConfig{Timeout: 30 * time.Second, MaxRetries: 2},
	}, nil
}

func (o OpenAIModel) Name() string {
	if o.Model == "" {
		return defaultOpenAIModel
	}
	return o.Model
}

func (o OpenAIModel) Generate(ctx context.Context, prompt string, opts core.GenerateOptions) (core.Response, error) {
	params := responses.ResponseNewParams{
		Model: openai.ChatModel(o.Name()),
		Input: responses.ResponseNewParamsInputUnion{
			OfString: openai.String(prompt),
		},
		Store: openai.Bool(false),
	}
	if opts.SystemPrompt != "" {
		params.Instructions = openai.String(opts.SystemPrompt)
	}
	if opts.Temperature > 0 {
		params.Temperature = openai.Float(float64(opts.Temperature))
	}
	if opts.MaxTokens > 0 {
		params.MaxOutputTokens = openai.Int(int64(opts.MaxTokens))
	}
	if opts.TopP > 0 {
		params.TopP = openai.Float(float64(opts.TopP))
	}

	resp, err := generateWithRetry(ctx, o.Retry.withDefaults(30*time.Second), func(ctx context.Context) (core.Response, error) {
		start := time.Now()
		result, err := o.Client.Responses.New(ctx, params)
		if err != nil {
			return core.Response{}, err
		}
		content := result.OutputText()
		if content == "" {
			return core.Response{}, fmt.Errorf("openai: empty response")
		}
		return core.Response{
			Content: content,
			TokenUsage: core.TokenUsage{
				PromptTokens:     int(result.Usage.InputTokens),
				CompletionTokens: int(result.Usage.OutputTokens),
				TotalTokens:      int(result.Usage.TotalTokens),
			},
			Latency: time.Since(start),
		}, nil
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return core.Response{}, err
		}
		return core.Response{}, fmt.Errorf("openai: request failed after retries: %w", err)
	}
	return resp, nil
}
