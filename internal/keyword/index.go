// Package keyword provides exact-term lookup over a document's chunks, with
// spelling suggestions for terms the document does not contain.
package keyword

import (
	"context"
	"fmt"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"

	"github.com/hyperjump/kotae/internal/models"
)

// TermDictionary provides access to the indexed vocabulary for spell
// checking. This interface allows dependency injection for testing.
type TermDictionary interface {
	// GetAllTerms returns all unique terms in the index.
	GetAllTerms() ([]string, error)
	// GetTermFrequency returns the number of chunks containing a term.
	GetTermFrequency(term string) (int, error)
	// ContainsTerm checks if a term exists in the index.
	ContainsTerm(term string) (bool, error)
}

// Index is an in-memory keyword index over one document's chunks. The index
// lives only as long as the loaded document: rebuilds replace it wholesale,
// so there is no delete or update path.
type Index struct {
	index  bleve.Index
	chunks map[string]*models.Chunk
}

// BuildIndex indexes the chunks' text in memory. The chunks slice must not
// be mutated afterwards; results point into it.
func BuildIndex(chunks []models.Chunk) (*Index, error) {
	im := bleve.NewIndexMapping()
	chunkMapping := bleve.NewDocumentMapping()
	textFieldMapping := bleve.NewTextFieldMapping()
	// Standard analyzer (lowercase + tokenize, no stemming): lookup terms
	// must match words exactly as the document spells them, and stemming
	// would also corrupt the vocabulary the spell checker is built from.
	textFieldMapping.Analyzer = standard.Name
	chunkMapping.AddFieldMappingsAt("content", textFieldMapping)
	im.AddDocumentMapping("chunk", chunkMapping)
	im.DefaultType = "chunk"
	im.DefaultMapping = chunkMapping

	index, err := bleve.NewMemOnly(im)
	if err != nil {
		return nil, fmt.Errorf("create keyword index: %w", err)
	}

	byID := make(map[string]*models.Chunk, len(chunks))
	batch := index.NewBatch()
	for i := range chunks {
		chunk := &chunks[i]
		byID[chunk.ID] = chunk
		if err := batch.Index(chunk.ID, map[string]string{"content": chunk.Text}); err != nil {
			return nil, fmt.Errorf("index chunk %s: %w", chunk.ID, err)
		}
	}
	if err := index.Batch(batch); err != nil {
		return nil, fmt.Errorf("commit keyword index: %w", err)
	}
	return &Index{index: index, chunks: byID}, nil
}

// Search returns up to limit chunks matching the query terms, best score
// first.
func (idx *Index) Search(ctx context.Context, query string, limit int) ([]*models.LookupResult, error) {
	req := bleve.NewSearchRequest(bleve.NewMatchQuery(query))
	req.Size = limit
	res, err := idx.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("keyword search: %w", err)
	}
	out := make([]*models.LookupResult, 0, len(res.Hits))
	for _, hit := range res.Hits {
		chunk, ok := idx.chunks[hit.ID]
		if !ok {
			continue
		}
		out = append(out, &models.LookupResult{Chunk: chunk, Score: hit.Score})
	}
	return out, nil
}

// ChunkCount returns the number of indexed chunks.
func (idx *Index) ChunkCount() (uint64, error) {
	return idx.index.DocCount()
}

// GetAllTerms returns the indexed vocabulary, used to build the spelling
// dictionary.
func (idx *Index) GetAllTerms() ([]string, error) {
	dict, err := idx.index.FieldDict("content")
	if err != nil {
		return nil, fmt.Errorf("open term dictionary: %w", err)
	}
	defer dict.Close()

	var terms []string
	for {
		entry, err := dict.Next()
		if err != nil || entry == nil {
			break
		}
		terms = append(terms, entry.Term)
	}
	return terms, nil
}

// GetTermFrequency returns the number of chunks containing the given term.
func (idx *Index) GetTermFrequency(term string) (int, error) {
	req := bleve.NewSearchRequest(bleve.NewMatchQuery(term))
	req.Size = 0
	res, err := idx.index.Search(req)
	if err != nil {
		return 0, fmt.Errorf("term frequency: %w", err)
	}
	return int(res.Total), nil
}

// ContainsTerm checks if a term exists in the index.
func (idx *Index) ContainsTerm(term string) (bool, error) {
	freq, err := idx.GetTermFrequency(term)
	if err != nil {
		return false, err
	}
	return freq > 0, nil
}

// Close releases the index.
func (idx *Index) Close() error {
	return idx.index.Close()
}
