package core

import "time"

// Response is a model response plus basic telemetry.
type Response struct {
	Content    string        `json:"content" yaml:"content"`
	TokenUsage TokenUsage    `json:"token_usage" yaml:"token_usage"`
	Latency    time.Duration `json:"latency" yaml:"latency"`
}

// TokenUsage captures token accounting for a request.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens" yaml:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens" yaml:"completion_tokens"`
	TotalTokens      int `json:"total_tokens" yaml:"total_tokens"`
}

// GenerateOptions controls model generation behavior.
type GenerateOptions struct {
	Temperature  float32  `json:"temperature" yaml:"temperature"`
	MaxTokens    int      `json:"max_tokens" yaml:"max_tokens"`
	TopP         float32  `json:"top_p" yaml:"top_p"`
	Stop         []string `json:"stop" yaml:"stop"`
	SystemPrompt string   `json:"system_prompt,omitempty" yaml:"system_prompt,omitempty"`
}

// Status says whether the model reproduced an exemplar's stored answer.
type Status string

const (
	StatusIdentical Status = "identical"
	StatusChanged   Status = "changed"
)

// Entry is the outcome for one exemplar in a run: the question asked,
// the stored answer, and the cleaned answer the model actually gave.
type Entry struct {
	Question string        `json:"question" yaml:"question"`
	Expected string        `json:"expected" yaml:"expected"`
	Actual   string        `json:"actual" yaml:"actual"`
	Status   Status        `json:"status" yaml:"status"`
	Response Response      `json:"response" yaml:"response"`
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// RunReport summarizes one replay or ablation run.
type RunReport struct {
	Mode       string    `json:"mode" yaml:"mode"`
	ModelName  string    `json:"model_name" yaml:"model_name"`
	Entries    []Entry   `json:"entries" yaml:"entries"`
	Metrics    Metrics   `json:"metrics" yaml:"metrics"`
	StartedAt  time.Time `json:"started_at" yaml:"started_at"`
	FinishedAt time.Time `json:"finished_at" yaml:"finished_at"`
}
