// Package rag wires retrieval, context assembly, and generation into the
// question-answering pipeline.
package rag

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hyperjump/kotae/internal/augment"
	"github.com/hyperjump/kotae/internal/embedding"
	"github.com/hyperjump/kotae/internal/generation"
	"github.com/hyperjump/kotae/internal/history"
	"github.com/hyperjump/kotae/internal/knowledge"
	"github.com/hyperjump/kotae/internal/models"
	"github.com/hyperjump/kotae/internal/retriever"
)

// Pipeline answers questions against the loaded document. It reads the
// current indices from the knowledge base on every request, so a reload
// between requests is picked up transparently.
type Pipeline struct {
	base      *knowledge.Base
	embedder  embedding.Embedder
	generator generation.Generator
	history   *history.Store // optional; when set, answers are recorded
	logger    *zap.Logger    // optional
}

// NewPipeline creates a pipeline over the given knowledge base. history and
// logger may be nil.
func NewPipeline(
	base *knowledge.Base,
	embedder embedding.Embedder,
	generator generation.Generator,
	store *history.Store,
	logger *zap.Logger,
) *Pipeline {
	return &Pipeline{
		base:      base,
		embedder:  embedder,
		generator: generator,
		history:   store,
		logger:    logger,
	}
}

// Search embeds the query and returns the nearest chunks.
func (p *Pipeline) Search(ctx context.Context, query *models.SearchQuery) (*models.SearchResponse, error) {
	start := time.Now()
	if err := query.Validate(); err != nil {
		return nil, err
	}
	vectors, err := p.base.Vectors()
	if err != nil {
		return nil, err
	}
	results, err := retriever.New(vectors, p.embedder).Search(ctx, query.Query, query.TopK)
	if err != nil {
		return nil, err
	}
	return &models.SearchResponse{
		Query:     query.Query,
		Results:   results,
		Total:     len(results),
		QueryTime: time.Since(start).Milliseconds(),
	}, nil
}

// Ask retrieves the chunks most relevant to the question, assembles the
// grounded prompt, and generates an answer. The answer is recorded in the
// history store when one is configured; a recording failure is logged but
// never fails the request.
func (p *Pipeline) Ask(ctx context.Context, query *models.AskQuery) (*models.Answer, error) {
	start := time.Now()
	if err := query.Validate(); err != nil {
		return nil, err
	}
	vectors, err := p.base.Vectors()
	if err != nil {
		return nil, err
	}
	results, err := retriever.New(vectors, p.embedder).Search(ctx, query.Question, query.TopK)
	if err != nil {
		return nil, err
	}

	prompt := augment.CreateContext(query.Question, results)
	text, err := p.generator.Generate(ctx, prompt, results)
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	answer := &models.Answer{
		ID:         uuid.New().String(),
		Question:   query.Question,
		Text:       text,
		Model:      p.generator.Name(),
		Sources:    results,
		DurationMS: time.Since(start).Milliseconds(),
		CreatedAt:  time.Now(),
	}
	if p.history != nil {
		if err := p.history.Record(ctx, answer); err != nil && p.logger != nil {
			p.logger.Warn("failed to record answer", zap.Error(err))
		}
	}
	return answer, nil
}

// Lookup runs a keyword search over the chunk index. When the term matches
// nothing, the spell checker proposes a correction built from the document's
// own vocabulary.
func (p *Pipeline) Lookup(ctx context.Context, query *models.LookupQuery) (*models.LookupResponse, error) {
	start := time.Now()
	if err := query.Validate(); err != nil {
		return nil, err
	}
	keywords, spell, err := p.base.Keywords()
	if err != nil {
		return nil, err
	}
	results, err := keywords.Search(ctx, query.Term, query.Limit)
	if err != nil {
		return nil, fmt.Errorf("keyword search failed: %w", err)
	}
	resp := &models.LookupResponse{
		Term:      query.Term,
		Results:   results,
		Total:     len(results),
		QueryTime: time.Since(start).Milliseconds(),
	}
	if len(resp.Results) == 0 {
		resp.Suggestion = spell.SuggestQuery(query.Term)
	}
	return resp, nil
}
