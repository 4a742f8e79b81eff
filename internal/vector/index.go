// Package vector provides a build-once, in-memory vector index with exact
// brute-force nearest-neighbor search over L2-normalized embeddings.
package vector

import (
	"errors"
	"fmt"
	"sort"

	"github.com/hyperjump/kotae/internal/models"
	"github.com/hyperjump/kotae/pkg/utils"
)

var (
	// ErrEmptyIndex reports a build with zero entries or a search against an
	// index that holds nothing.
	ErrEmptyIndex = errors.New("vector index is empty")
	// ErrDimensionMismatch reports vectors of inconsistent length.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")
	// ErrInvalidTopK reports a non-positive top-k.
	ErrInvalidTopK = errors.New("top_k must be positive")
)

// Entry pairs one chunk with its embedding vector. Entries are append-only
// during Build and never mutated afterwards.
type Entry struct {
	Chunk  models.Chunk
	Vector []float32
}

// Index stores normalized chunk vectors for exact nearest-neighbor search.
// An Index is immutable once Build returns, so concurrent Search calls need
// no locking. Content changes require building a fresh Index and swapping it
// in at the owner.
type Index struct {
	dimensions int
	chunks     []models.Chunk
	vectors    [][]float32
}

// Build constructs an Index from entries. All vectors must share one
// dimensionality, fixed by the first entry. Vectors are normalized into
// private copies; callers' slices are left untouched. At least one entry is
// required for the index to be searchable.
func Build(entries []Entry) (*Index, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("build index: %w", ErrEmptyIndex)
	}
	dims := len(entries[0].Vector)
	if dims == 0 {
		return nil, fmt.Errorf("build index: entry 0 has an empty vector")
	}
	idx := &Index{
		dimensions: dims,
		chunks:     make([]models.Chunk, len(entries)),
		vectors:    make([][]float32, len(entries)),
	}
	for i, e := range entries {
		if len(e.Vector) != dims {
			return nil, fmt.Errorf("build index: entry %d: %w: got %d, expected %d",
				i, ErrDimensionMismatch, len(e.Vector), dims)
		}
		idx.chunks[i] = e.Chunk
		idx.vectors[i] = utils.NormalizedL2(e.Vector)
	}
	return idx, nil
}

// Search scans every stored vector and returns the topK nearest entries,
// ascending by squared Euclidean distance; under the normalization invariant
// this ranks identically to cosine similarity. Equal distances are ordered by
// ascending ChunkIndex so results are reproducible. The query must already be
// L2-normalized and match the index dimensionality. topK larger than the
// entry count returns all entries ranked.
func (idx *Index) Search(query []float32, topK int) ([]*models.SearchResult, error) {
	if idx == nil || len(idx.vectors) == 0 {
		return nil, fmt.Errorf("search: %w", ErrEmptyIndex)
	}
	if topK <= 0 {
		return nil, fmt.Errorf("search: %w, got %d", ErrInvalidTopK, topK)
	}
	if len(query) != idx.dimensions {
		return nil, fmt.Errorf("search: query %w: got %d, expected %d",
			ErrDimensionMismatch, len(query), idx.dimensions)
	}

	type scored struct {
		pos      int
		distance float64
	}
	scores := make([]scored, len(idx.vectors))
	for i, vec := range idx.vectors {
		scores[i] = scored{pos: i, distance: SquaredDistance(query, vec)}
	}
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].distance != scores[j].distance {
			return scores[i].distance < scores[j].distance
		}
		return idx.chunks[scores[i].pos].ChunkIndex < idx.chunks[scores[j].pos].ChunkIndex
	})

	if topK > len(scores) {
		topK = len(scores)
	}
	results := make([]*models.SearchResult, topK)
	for i := 0; i < topK; i++ {
		chunk := idx.chunks[scores[i].pos]
		results[i] = &models.SearchResult{
			Chunk:      &chunk,
			Distance:   scores[i].distance,
			Similarity: Similarity(scores[i].distance),
			Rank:       i + 1,
		}
	}
	return results, nil
}

// Len returns the number of stored entries.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.chunks)
}

// Dimensions returns the vector dimensionality fixed at build time.
func (idx *Index) Dimensions() int {
	if idx == nil {
		return 0
	}
	return idx.dimensions
}
