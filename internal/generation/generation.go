// Package generation produces the final answer text from a grounded prompt,
// either through a language model or a template that shows the retrieved
// passages directly.
package generation

import (
	"context"

	"go.uber.org/zap"

	"github.com/hyperjump/kotae/internal/models"
)

// Generator turns an assembled prompt into answer text. The retrieved
// results are passed alongside the prompt so non-LLM generators can render
// the passages themselves.
type Generator interface {
	// Generate returns the answer text for the prompt. Blocking; honors ctx
	// cancellation where the backend supports it.
	Generate(ctx context.Context, prompt string, results []*models.SearchResult) (string, error)

	// Name identifies the generator for logging and answer metadata.
	Name() string
}

// Options control sampling for model-backed generators.
type Options struct {
	Temperature float64
	MaxTokens   int
	TopK        int
	TopP        float64
}

// DefaultOptions returns the sampling defaults used when configuration does
// not override them.
func DefaultOptions() Options {
	return Options{
		Temperature: 0.7,
		MaxTokens:   500,
		TopK:        40,
		TopP:        0.9,
	}
}

// FallbackGenerator tries a primary generator and, if it fails, answers with
// a secondary one instead of surfacing the error. Used to keep queries
// working when the model server goes away mid-session.
type FallbackGenerator struct {
	primary  Generator
	fallback Generator
	logger   *zap.Logger
}

// NewFallbackGenerator wraps primary with fallback.
func NewFallbackGenerator(primary, fallback Generator, logger *zap.Logger) *FallbackGenerator {
	return &FallbackGenerator{primary: primary, fallback: fallback, logger: logger}
}

// Generate answers with the primary generator, falling back on error.
func (g *FallbackGenerator) Generate(ctx context.Context, prompt string, results []*models.SearchResult) (string, error) {
	text, err := g.primary.Generate(ctx, prompt, results)
	if err == nil {
		return text, nil
	}
	g.logger.Warn("generation failed, using fallback",
		zap.String("generator", g.primary.Name()),
		zap.Error(err))
	return g.fallback.Generate(ctx, prompt, results)
}

// Name reports the primary generator's name.
func (g *FallbackGenerator) Name() string {
	return g.primary.Name()
}
