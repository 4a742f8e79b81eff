// Package chunker splits page text into overlapping, sentence-aware chunks.
package chunker

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/hyperjump/kotae/internal/models"
)

// ErrInvalidConfig reports an unusable size/overlap combination.
var ErrInvalidConfig = errors.New("invalid chunking configuration")

// Chunker splits pages into sentence-aligned chunks of roughly size runes,
// where consecutive chunks from the same page share the trailing overlap
// sentences of the previous chunk. Sentences are never truncated, so a chunk
// can exceed the budget when a single sentence or the carried overlap is
// already longer than size.
type Chunker struct {
	size    int
	overlap int
}

// New returns a Chunker. size is the chunk budget in runes (joined text
// including separating spaces); overlap is the number of trailing sentences
// carried into the next chunk. overlap must be smaller than size so a seeded
// chunk can still make progress.
func New(size, overlap int) (*Chunker, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: chunk size must be positive, got %d", ErrInvalidConfig, size)
	}
	if overlap < 0 {
		return nil, fmt.Errorf("%w: chunk overlap cannot be negative, got %d", ErrInvalidConfig, overlap)
	}
	if overlap >= size {
		return nil, fmt.Errorf("%w: chunk overlap %d must be smaller than chunk size %d", ErrInvalidConfig, overlap, size)
	}
	return &Chunker{size: size, overlap: overlap}, nil
}

// CreateChunks splits every page into chunks. Output order follows page
// order, then sentence order within the page; ChunkIndex is assigned
// sequentially across all pages. Pages with no sentences yield no chunks.
// Chunks never span a page boundary.
func (c *Chunker) CreateChunks(docID string, pages []models.Page) []models.Chunk {
	var chunks []models.Chunk
	for _, page := range pages {
		chunks = c.chunkPage(docID, page, chunks)
	}
	return chunks
}

// chunkPage appends the chunks of one page to chunks and returns the result.
func (c *Chunker) chunkPage(docID string, page models.Page, chunks []models.Chunk) []models.Chunk {
	sentences := SplitSentences(page.Text)
	if len(sentences) == 0 {
		return chunks
	}

	var current []string
	currentLen := 0

	emit := func() {
		chunks = append(chunks, models.Chunk{
			ID:         fmt.Sprintf("%s_chunk_%d", docID, len(chunks)),
			Text:       strings.Join(current, " "),
			PageNumber: page.Number,
			ChunkIndex: len(chunks),
		})
	}

	for _, sentence := range sentences {
		sentenceLen := utf8.RuneCountInString(sentence)
		if len(current) > 0 && currentLen+1+sentenceLen > c.size {
			emit()
			current = c.seed(current)
			currentLen = joinedLen(current)
		}
		if currentLen == 0 {
			currentLen = sentenceLen
		} else {
			currentLen += 1 + sentenceLen
		}
		current = append(current, sentence)
	}
	// The loop only emits right before consuming another sentence, so the
	// remainder always holds at least one sentence not present in the seed.
	emit()

	return chunks
}

// seed returns the trailing overlap sentences of the previous chunk, which
// open the next chunk. The first chunk of a page is never seeded because
// there is no previous chunk on that page.
func (c *Chunker) seed(previous []string) []string {
	n := c.overlap
	if n <= 0 {
		return nil
	}
	if n > len(previous) {
		n = len(previous)
	}
	out := make([]string, n)
	copy(out, previous[len(previous)-n:])
	return out
}

func joinedLen(sentences []string) int {
	if len(sentences) == 0 {
		return 0
	}
	total := len(sentences) - 1
	for _, s := range sentences {
		total += utf8.RuneCountInString(s)
	}
	return total
}
