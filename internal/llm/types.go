package llm

import (
	"context"

	"github.com/openai/openai-go"
)

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

type Message struct {
	Role    string
	Content string
}

func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// StructuredSchema declares the JSON shape a structured call must return.
type StructuredSchema struct {
	Name        string
	Description string
	Schema      map[string]any

	// Strict requires the provider to reject responses that do not conform
	// to Schema instead of returning them best-effort.
	Strict bool
}

type Usage struct {
	PromptTokens     int64
	CompletionTokens int64
	TotalTokens      int64
}

type Response struct {
	Content string
	Usage   Usage
}

type Option func(*Options)

type Options struct {
	Model       string
	MaxTokens   int64
	Temperature float64
	Tools       []openai.ChatCompletionToolParam
}

func WithModel(model string) Option {
	return func(o *Options) { o.Model = model }
}

func WithMaxTokens(n int64) Option {
	return func(o *Options) { o.MaxTokens = n }
}

func WithTools(tools ...openai.ChatCompletionToolParam) Option {
	return func(o *Options) { o.Tools = tools }
}

// Provider is the transport contract for hosted language models.
type Provider interface {
	// GenerateStructured asks the model for a JSON object conforming to
	// schema and returns the decoded mapping.
	GenerateStructured(ctx context.Context, messages []Message, schema StructuredSchema, opts ...Option) (map[string]any, error)

	// Generate runs a plain completion, optionally with tools attached.
	Generate(ctx context.Context, messages []Message, opts ...Option) (*Response, error)

	// SupportsWebGrounding reports whether generations may be grounded with
	// live web search results.
	SupportsWebGrounding() bool
}
