// Package retriever turns a natural-language query into ranked chunk matches
// by embedding the query and searching a vector index.
package retriever

import (
	"context"
	"fmt"

	"github.com/hyperjump/kotae/internal/embedding"
	"github.com/hyperjump/kotae/internal/models"
	"github.com/hyperjump/kotae/internal/vector"
	"github.com/hyperjump/kotae/pkg/utils"
)

// Retriever binds one vector index to one embedder. It holds no other state,
// so a single value is safe for concurrent queries, and constructing a fresh
// one per index snapshot is cheap.
type Retriever struct {
	index    *vector.Index
	embedder embedding.Embedder
}

// New returns a retriever over the given index and embedder.
func New(index *vector.Index, embedder embedding.Embedder) *Retriever {
	return &Retriever{index: index, embedder: embedder}
}

// Search embeds the query text, normalizes it the same way indexed vectors
// were normalized, and returns the topK nearest chunks. Embedding failures
// and index errors are returned to the caller, never masked.
func (r *Retriever) Search(ctx context.Context, query string, topK int) ([]*models.SearchResult, error) {
	vec, err := r.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	utils.NormalizeL2(vec)
	return r.index.Search(vec, topK)
}
