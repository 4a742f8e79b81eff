// Package knowledge builds and owns the in-memory retrieval state for a
// single document: its chunks, vector index, keyword index, and spell
// checker vocabulary. Loading a new document atomically replaces the
// previous state.
package knowledge

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/hyperjump/kotae/internal/chunker"
	"github.com/hyperjump/kotae/internal/embedding"
	"github.com/hyperjump/kotae/internal/extract"
	"github.com/hyperjump/kotae/internal/fileid"
	"github.com/hyperjump/kotae/internal/keyword"
	"github.com/hyperjump/kotae/internal/models"
	"github.com/hyperjump/kotae/internal/vector"
)

// ErrNotLoaded reports that no document has been loaded yet.
var ErrNotLoaded = errors.New("no document loaded")

// Base holds the retrieval state built from one document. All reads go
// through an immutable snapshot, so queries keep working against the old
// state while Load builds a replacement.
type Base struct {
	chunker   *chunker.Chunker
	embedder  embedding.Embedder
	extractor *extract.Extractor
	logger    *zap.Logger // optional; when set, logs load events

	mu   sync.RWMutex
	snap *snapshot
}

type snapshot struct {
	document *models.Document
	chunks   []models.Chunk
	vectors  *vector.Index
	keywords *keyword.Index
	spell    *keyword.SpellChecker
}

// Stats summarizes the loaded state for status reporting.
type Stats struct {
	Document   *models.Document `json:"document"`
	Chunks     int              `json:"chunks"`
	Dimensions int              `json:"dimensions"`
	Terms      int              `json:"terms"`
}

// New creates an empty knowledge base. extractor may be nil; when nil a
// default extractor is used. The chunking configuration is validated here so
// a bad overlap fails at startup rather than on first load.
func New(chunkSize, chunkOverlap int, embedder embedding.Embedder, extractor *extract.Extractor, logger *zap.Logger) (*Base, error) {
	ck, err := chunker.New(chunkSize, chunkOverlap)
	if err != nil {
		return nil, err
	}
	if extractor == nil {
		extractor = extract.NewExtractor()
	}
	return &Base{
		chunker:   ck,
		embedder:  embedder,
		extractor: extractor,
		logger:    logger,
	}, nil
}

// Load extracts, chunks, embeds, and indexes the document at path, then
// swaps the new state in. The document ID is derived from the absolute path
// so reloading the same file produces the same chunk IDs.
func (b *Base) Load(ctx context.Context, path string) (*models.Document, error) {
	start := time.Now()
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("absolute path: %w", err)
	}

	pages, err := b.extractor.Extract(absPath)
	if err != nil {
		return nil, fmt.Errorf("extract content: %w", err)
	}
	for i := range pages {
		pages[i].Text = Preprocess(pages[i].Text)
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("no extractable text in %s", absPath)
	}

	docID := fileid.DocID(absPath)
	chunks := b.chunker.CreateChunks(docID, pages)
	if len(chunks) == 0 {
		return nil, fmt.Errorf("no chunks produced from %s", absPath)
	}

	texts := make([]string, len(chunks))
	for i := range chunks {
		texts[i] = chunks[i].Text
	}
	embeddings, err := b.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embeddings: %w", err)
	}

	entries := make([]vector.Entry, len(chunks))
	for i := range chunks {
		chunks[i].Embedding = embeddings[i]
		entries[i] = vector.Entry{Chunk: chunks[i], Vector: embeddings[i]}
	}
	vectors, err := vector.Build(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to build vector index: %w", err)
	}

	keywords, err := keyword.BuildIndex(chunks)
	if err != nil {
		return nil, fmt.Errorf("failed to build keyword index: %w", err)
	}
	spell := keyword.NewSpellChecker(keywords)
	if err := spell.RefreshCache(); err != nil {
		_ = keywords.Close()
		return nil, fmt.Errorf("failed to build spell vocabulary: %w", err)
	}

	doc := &models.Document{
		ID:       docID,
		Path:     absPath,
		Pages:    len(pages),
		LoadedAt: time.Now(),
	}

	b.mu.Lock()
	old := b.snap
	b.snap = &snapshot{
		document: doc,
		chunks:   chunks,
		vectors:  vectors,
		keywords: keywords,
		spell:    spell,
	}
	b.mu.Unlock()
	if old != nil {
		_ = old.keywords.Close()
	}

	if b.logger != nil {
		b.logger.Info("document loaded",
			zap.String("path", absPath),
			zap.String("doc_id", docID),
			zap.Int("pages", len(pages)),
			zap.Int("chunks", len(chunks)),
			zap.Duration("took", time.Since(start)),
		)
	}
	return doc, nil
}

// Ready reports whether a document has been loaded.
func (b *Base) Ready() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.snap != nil
}

// Document returns the currently loaded document.
func (b *Base) Document() (*models.Document, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.snap == nil {
		return nil, ErrNotLoaded
	}
	return b.snap.document, nil
}

// Vectors returns the current vector index.
func (b *Base) Vectors() (*vector.Index, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.snap == nil {
		return nil, ErrNotLoaded
	}
	return b.snap.vectors, nil
}

// Keywords returns the current keyword index and its spell checker.
func (b *Base) Keywords() (*keyword.Index, *keyword.SpellChecker, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.snap == nil {
		return nil, nil, ErrNotLoaded
	}
	return b.snap.keywords, b.snap.spell, nil
}

// Stats reports the size of the loaded state.
func (b *Base) Stats() (*Stats, error) {
	b.mu.RLock()
	snap := b.snap
	b.mu.RUnlock()
	if snap == nil {
		return nil, ErrNotLoaded
	}
	terms, err := snap.keywords.GetAllTerms()
	if err != nil {
		return nil, fmt.Errorf("count terms: %w", err)
	}
	return &Stats{
		Document:   snap.document,
		Chunks:     len(snap.chunks),
		Dimensions: snap.vectors.Dimensions(),
		Terms:      len(terms),
	}, nil
}

// Close releases the keyword index. The base is unusable afterwards.
func (b *Base) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.snap == nil {
		return nil
	}
	err := b.snap.keywords.Close()
	b.snap = nil
	return err
}
