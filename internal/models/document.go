// Package models defines core data structures for pages, chunks, queries, and answers.
package models

import "time"

// Page holds the text of a single source page as produced by the extraction
// layer. Pages are numbered from 1 in source order; blank pages are skipped
// and never reach the chunker.
type Page struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

// Document describes the source file a knowledge base was built from.
type Document struct {
	ID       string    `json:"id"`
	Path     string    `json:"path"`
	Pages    int       `json:"pages"`
	LoadedAt time.Time `json:"loaded_at"`
}

// Chunk is the atomic retrieval unit: a contiguous span of sentences drawn
// from exactly one page. Consecutive chunks from the same page share the
// configured number of trailing sentences, except the first chunk of a page.
// ChunkIndex is zero-based and sequential across the whole document. Chunks
// are created once at knowledge-base build time and never mutated.
type Chunk struct {
	ID         string    `json:"id"`
	Text       string    `json:"text"`
	PageNumber int       `json:"page_number"`
	ChunkIndex int       `json:"chunk_index"`
	Embedding  []float32 `json:"-"`
}
