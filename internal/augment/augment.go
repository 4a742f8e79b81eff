// Package augment assembles retrieved chunks and the user's question into a
// single grounded prompt for the generation step.
package augment

import (
	"fmt"
	"strings"

	"github.com/hyperjump/kotae/internal/models"
)

// emptyContext is used when retrieval produced no results, so the model can
// say so instead of hallucinating an answer.
const emptyContext = "No relevant information was found in the document."

// CreateContext formats the retrieved results in rank order, each with its
// page number and relevance score, followed by the question and a fixed
// instruction. Output is deterministic for identical inputs.
func CreateContext(query string, results []*models.SearchResult) string {
	context := emptyContext
	if len(results) > 0 {
		parts := make([]string, len(results))
		for i, result := range results {
			parts[i] = fmt.Sprintf("[Page %d]\nRelevance: %.2f%%\n%s\n",
				result.Chunk.PageNumber,
				result.Similarity*100,
				result.Chunk.Text)
		}
		context = strings.Join(parts, "\n---\n")
	}

	return fmt.Sprintf("QUESTION: %s\n\nRELEVANT CONTEXT FROM PDF:\n%s\n\nINSTRUCTIONS: Answer the question using the context above.",
		query, context)
}
