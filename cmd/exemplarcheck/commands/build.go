package commands

import (
	"fmt"
	"io"
	"time"

	"exemplarcheck/pkg/cache"
	"exemplarcheck/pkg/core"
	"exemplarcheck/pkg/model"
	"exemplarcheck/pkg/prompt"
	"exemplarcheck/pkg/report"
)

func buildModel(provider, modelName, mockResponse string) (core.Model, error) {
	switch provider {
	case "mock":
		return model.MockModel{
			NameValue:    resolveString(modelName, "mock"),
			ResponseText: mockResponse,
		}, nil
	case "openai":
		m, err := model.NewOpenAIModelFromEnv(modelName)
		if err != nil {
			return nil, err
		}
		applyProviderConfig(&m.Retry, appConfig.OpenAI.TimeoutSeconds, appConfig.OpenAI.MaxRetries, appConfig.OpenAI.BackoffMillis)
		if appConfig.OpenAI.Model != "" && modelName == "" {
			m.Model = appConfig.OpenAI.Model
		}
		return m, nil
	case "anthropic":
		m, err := model.NewAnthropicModelFromEnv(modelName)
		if err != nil {
			return nil, err
		}
		cfg := appConfig.Anthropic
		applyProviderConfig(&m.Retry, cfg.TimeoutSeconds, cfg.MaxRetries, cfg.BackoffMillis)
		if cfg.Model != "" && modelName == "" {
			m.Model = cfg.Model
		}
		if cfg.MaxTokens > 0 {
			m.MaxTokens = cfg.MaxTokens
		}
		return m, nil
	case "gemini":
		m, err := model.NewGeminiModelFromEnv(modelName)
		if err != nil {
			return nil, err
		}
		applyProviderConfig(&m.Retry, appConfig.Gemini.TimeoutSeconds, appConfig.Gemini.MaxRetries, appConfig.Gemini.BackoffMillis)
		if appConfig.Gemini.Model != "" && modelName == "" {
			m.Model = appConfig.Gemini.Model
		}
		return m, nil
	case "ollama":
		return model.NewOllamaModel(appConfig.Ollama.BaseURL, resolveString(modelName, appConfig.Ollama.Model))
	default:
		return nil, fmt.Errorf("unknown provider: %s", provider)
	}
}

func applyProviderConfig(retry *model.RetryConfig, timeoutSeconds, maxRetries, backoffMillis int) {
	if timeoutSeconds > 0 {
		retry.Timeout = time.Duration(timeoutSeconds) * time.Second
	}
	if maxRetries > 0 {
		retry.MaxRetries = maxRetries
	}
	if backoffMillis > 0 {
		retry.Backoff = time.Duration(backoffMillis) * time.Millisecond
	}
}

func maybeCache(m core.Model, enabled bool) (core.Model, error) {
	if !enabled && !appConfig.Cache.Enabled {
		return m, nil
	}
	ttl := time.Duration(appConfig.Cache.TTLHours) * time.Hour
	c, err := cache.New(appConfig.Cache.Dir, ttl)
	if err != nil {
		return nil, err
	}
	return model.CachedModel{Model: m, Cache: c}, nil
}

func buildReporter(format string, writer io.Writer) (report.Reporter, error) {
	switch format {
	case report.FormatDiff:
		return report.DiffReporter{Writer: writer}, nil
	case report.FormatTable:
		return report.TableReporter{Writer: writer}, nil
	case report.FormatJSON:
		return report.JSONReporter{Writer: writer, Pretty: true}, nil
	case report.FormatMarkdown:
		return report.MarkdownReporter{Writer: writer}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

func resolvePromptSpec(prefix, exampleTemplate, suffix, inputVar string) prompt.Spec {
	spec := appConfig.Prompt
	if prefix != "" {
		spec.Prefix = prefix
	}
	if exampleTemplate != "" {
		spec.ExampleTemplate = exampleTemplate
	}
	if suffix != "" {
		spec.Suffix = suffix
	}
	if inputVar != "" {
		spec.InputVariable = inputVar
	}
	if spec.ExampleTemplate == "" && spec.Suffix == "" {
		defaults := prompt.DefaultSpec()
		defaults.Prefix = spec.Prefix
		return defaults
	}
	if spec.InputVariable == "" {
		spec.InputVariable = "input"
	}
	return spec
}
