package model

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"exemplarcheck/pkg/core"
)

const defaultOllamaBaseURL = "http://localhost:11434/v1"
const defaultOllamaModel = "llama2"

// OllamaModel talks to a local Ollama server through its
// OpenAI-compatible endpoint.
type OllamaModel struct {
	Client  openai.Client
	Model   string
	BaseURL string
	Retry   RetryConfig
}

func NewOllamaModel(baseURL, modelName string) (*OllamaModel, error) {
	if baseURL == "" {
		baseURL = defaultOllamaBaseURL
	}
	if modelName == "" {
		modelName = defaultOllamaModel
	}
	opts := []option.RequestOption{
		option.WithBaseURL(baseURL),
		option.WithAPIKey("ollama"),
	}
	return &OllamaModel{
		Client:  openai.NewClient(opts...),
		Model:   modelName,
		BaseURL: baseURL,
		Retry:   RetryConfig{Timeout: 60 * time.Second, MaxRetries: 2},
	}, nil
}

func (o OllamaModel) Name() string {
	if o.Model == "" {
		return defaultOllamaModel
	}
	return o.Model
}

func (o OllamaModel) Generate(ctx context.Context, prompt string, opts core.GenerateOptions) (core.Response, error) {
	messages := []openai.ChatCompletionMessageParamUnion{}
	if opts.SystemPrompt != "" {
		messages = append(messages, openai.SystemMessage(opts.SystemPrompt))
	}
	messages = append(messages, openai.UserMessage(prompt))

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(o.Name()),
		Messages: messages,
	}
	if opts.Temperature > 0 {
		params.Temperature = openai.Float(float64(opts.Temperature))
	}
	if opts.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(opts.MaxTokens))
	}
	if opts.TopP > 0 {
		params.TopP = openai.Float(float64(opts.TopP))
	}

	resp, err := generateWithRetry(ctx, o.Retry.withDefaults(60*time.Second), func(ctx context.Context) (core.Response, error) {
		start := time.Now()
		completion, err := o.Client.Chat.Completions.New(ctx, params)
		if err != nil {
			return core.Response{}, err
		}
		if len(completion.Choices) == 0 {
			return core.Response{}, fmt.Errorf("ollama: empty response")
		}
		return core.Response{
			Content: completion.Choices[0].Message.Content,
			TokenUsage: core.TokenUsage{
				PromptTokens:     int(completion.Usage.PromptTokens),
				CompletionTokens: int(completion.Usage.CompletionTokens),
				TotalTokens:      int(completion.Usage.TotalTokens),
			},
			Latency: time.Since(start),
		}, nil
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return core.Response{}, err
		}
		return core.Response{}, fmt.Errorf("ollama: request failed after retries: %w", err)
	}
	return resp, nil
}
