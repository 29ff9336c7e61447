package commands

import (
	"errors"

	"github.com/spf13/viper"

	"exemplarcheck/pkg/prompt"
)

type Config struct {
	Exemplars string          `mapstructure:"exemplars"`
	Provider  string          `mapstructure:"provider"`
	Format    string          `mapstructure:"format"`
	Output    string          `mapstructure:"output"`
	LogDir    string          `mapstructure:"log_dir"`
	RPS       float64         `mapstructure:"rps"`
	Prompt    prompt.Spec     `mapstructure:"prompt"`
	Model     ModelConfig     `mapstructure:"model"`
	Cache     CacheConfig     `mapstructure:"cache"`
	OpenAI    ProviderConfig  `mapstructure:"openai"`
	Anthropic AnthropicConfig `mapstructure:"anthropic"`
	Gemini    ProviderConfig  `mapstructure:"gemini"`
	Ollama    OllamaConfig    `mapstructure:"ollama"`
}

type ModelConfig struct {
	Name         string `mapstructure:"name"`
	MockResponse string `mapstructure:"mock_response"`
}

type CacheConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Dir      string `mapstructure:"dir"`
	TTLHours int    `mapstructure:"ttl_hours"`
}

type ProviderConfig struct {
	Model          string `mapstructure:"model"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	MaxRetries     int    `mapstructure:"max_retries"`
	BackoffMillis  int    `mapstructure:"backoff_millis"`
}

type AnthropicConfig struct {
	Model          string `mapstructure:"model"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	MaxRetries     int    `mapstructure:"max_retries"`
	BackoffMillis  int    `mapstructure:"backoff_millis"`
	MaxTokens      int    `mapstructure:"max_tokens"`
}

type OllamaConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

func LoadConfig(path string) (Config, error) {
	cfg := Config{}
	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".exemplarcheck")
		v.AddConfigPath(".")
	}

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
