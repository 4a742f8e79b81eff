// Package integration wires the retrieval layers together by hand, without
// the knowledge base, to verify they compose.
package integration

import (
	"context"
	"testing"

	"github.com/hyperjump/kotae/internal/chunker"
	"github.com/hyperjump/kotae/internal/embedding"
	"github.com/hyperjump/kotae/internal/keyword"
	"github.com/hyperjump/kotae/internal/models"
	"github.com/hyperjump/kotae/internal/retriever"
	"github.com/hyperjump/kotae/internal/vector"
)

func fixturePages() []models.Page {
	return []models.Page{
		{Number: 1, Text: "Mitochondria are the powerhouse of the cell. They convert nutrients into usable energy."},
		{Number: 2, Text: "Ribosomes assemble proteins from amino acids. They read instructions carried by messenger RNA."},
		{Number: 3, Text: "The cytoskeleton gives the cell its shape. Filaments and tubules also move cargo around."},
	}
}

func buildChunks(t *testing.T) []models.Chunk {
	t.Helper()
	ch, err := chunker.New(120, 1)
	if err != nil {
		t.Fatalf("chunker.New: %v", err)
	}
	chunks := ch.CreateChunks("doc:itest", fixturePages())
	if len(chunks) == 0 {
		t.Fatal("no chunks produced")
	}
	return chunks
}

func TestIntegration_ChunkEmbedRetrieve(t *testing.T) {
	ctx := context.Background()
	embedder := embedding.NewMockEmbedder(8)
	defer embedder.Close()

	chunks := buildChunks(t)
	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}
	vectors, err := embedder.EmbedBatch(ctx, texts)
	if err != nil {
		t.Fatalf("EmbedBatch: %v", err)
	}

	entries := make([]vector.Entry, len(chunks))
	for i := range chunks {
		chunks[i].Embedding = vectors[i]
		entries[i] = vector.Entry{Chunk: chunks[i], Vector: vectors[i]}
	}
	idx, err := vector.Build(entries)
	if err != nil {
		t.Fatalf("vector.Build: %v", err)
	}
	if idx.Len() != len(chunks) {
		t.Fatalf("index holds %d entries, want %d", idx.Len(), len(chunks))
	}

	r := retriever.New(idx, embedder)

	// Querying with a chunk's own text must return that chunk first; the
	// embedder is deterministic, so identical text gives identical vectors.
	results, err := r.Search(ctx, chunks[0].Text, 2)
	if err != nil {
		t.Fatalf("retrieve: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Chunk.ID != chunks[0].ID {
		t.Errorf("rank 1 chunk = %s, want %s", results[0].Chunk.ID, chunks[0].ID)
	}
	if results[0].Similarity < 0.999 {
		t.Errorf("rank 1 similarity = %f, want ~1", results[0].Similarity)
	}
	if results[0].Rank != 1 || results[1].Rank != 2 {
		t.Errorf("ranks = %d, %d; want 1, 2", results[0].Rank, results[1].Rank)
	}
	if results[1].Distance < results[0].Distance {
		t.Error("results not ordered by ascending distance")
	}
}

func TestIntegration_KeywordAndSpell(t *testing.T) {
	ctx := context.Background()
	chunks := buildChunks(t)

	idx, err := keyword.BuildIndex(chunks)
	if err != nil {
		t.Fatalf("keyword.BuildIndex: %v", err)
	}
	defer idx.Close()

	results, err := idx.Search(ctx, "ribosomes", 5)
	if err != nil {
		t.Fatalf("keyword search: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("indexed term not found")
	}
	if results[0].Chunk.PageNumber != 2 {
		t.Errorf("hit page = %d, want 2", results[0].Chunk.PageNumber)
	}

	spell := keyword.NewSpellChecker(idx)
	if err := spell.RefreshCache(); err != nil {
		t.Fatalf("RefreshCache: %v", err)
	}
	if got := spell.SuggestQuery("ribosomse"); got != "ribosomes" {
		t.Errorf("SuggestQuery(ribosomse) = %q, want ribosomes", got)
	}
}
