package generation

import (
	"context"
	"errors"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"

	"github.com/hyperjump/kotae/internal/models"
)

// LLMGenerator answers through a chat model served by Ollama or an
// OpenAI-compatible API.
type LLMGenerator struct {
	llm  llms.Model
	name string
	opts Options
}

// NewOllamaGenerator returns a generator backed by a running Ollama server.
func NewOllamaGenerator(serverURL, model string, opts Options) (*LLMGenerator, error) {
	llm, err := ollama.New(
		ollama.WithServerURL(serverURL),
		ollama.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("connect ollama: %w", err)
	}
	return &LLMGenerator{llm: llm, name: "ollama:" + model, opts: opts}, nil
}

// NewOpenAIGenerator returns a generator backed by an OpenAI-compatible API.
// baseURL may be empty for the default endpoint.
func NewOpenAIGenerator(baseURL, token, model string, opts Options) (*LLMGenerator, error) {
	clientOpts := []openai.Option{
		openai.WithToken(token),
		openai.WithModel(model),
	}
	if baseURL != "" {
		clientOpts = append(clientOpts, openai.WithBaseURL(baseURL))
	}
	llm, err := openai.New(clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("connect openai: %w", err)
	}
	return &LLMGenerator{llm: llm, name: "openai:" + model, opts: opts}, nil
}

// NewGeneratorForModel builds an LLMGenerator over a caller-supplied model.
// Used by tests to avoid network access.
func NewGeneratorForModel(model llms.Model, name string, opts Options) *LLMGenerator {
	return &LLMGenerator{llm: model, name: name, opts: opts}
}

// Generate sends the prompt as a single user message and returns the model's
// reply. The retrieved results are not used here; rendering sources is the
// caller's concern.
func (g *LLMGenerator) Generate(ctx context.Context, prompt string, _ []*models.SearchResult) (string, error) {
	messages := []llms.MessageContent{
		{
			Role:  schema.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextContent{Text: prompt}},
		},
	}
	resp, err := g.llm.GenerateContent(ctx, messages,
		llms.WithTemperature(g.opts.Temperature),
		llms.WithMaxTokens(g.opts.MaxTokens),
		llms.WithTopK(g.opts.TopK),
		llms.WithTopP(g.opts.TopP),
	)
	if err != nil {
		return "", fmt.Errorf("%s generate: %w", g.name, err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New(g.name + " generate: model returned no choices")
	}
	return resp.Choices[0].Content, nil
}

// Name identifies the backing service and model.
func (g *LLMGenerator) Name() string {
	return g.name
}
