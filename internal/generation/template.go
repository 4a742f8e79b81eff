package generation

import (
	"context"
	"fmt"
	"strings"

	"github.com/hyperjump/kotae/internal/models"
	"github.com/hyperjump/kotae/pkg/utils"
)

const separator = "======================================================================"

// TemplateGenerator renders retrieved passages directly instead of calling a
// model. It is the answer of last resort when no model backend is reachable,
// and it never fails.
type TemplateGenerator struct{}

// NewTemplateGenerator returns a template generator.
func NewTemplateGenerator() *TemplateGenerator {
	return &TemplateGenerator{}
}

// Generate formats the question and the retrieved passages with previews.
func (g *TemplateGenerator) Generate(_ context.Context, prompt string, results []*models.SearchResult) (string, error) {
	// The first prompt line carries the question.
	question := prompt
	if i := strings.IndexByte(prompt, '\n'); i >= 0 {
		question = prompt[:i]
	}

	var b strings.Builder
	b.WriteString(separator)
	b.WriteString("\nLLM mode disabled - showing retrieved context\n")
	b.WriteString(separator)
	b.WriteString("\n\n")
	b.WriteString(question)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Found %d relevant passages:\n\n", len(results))

	for i, result := range results {
		fmt.Fprintf(&b, "[%d] Page %d (Similarity: %.1f%%)\n%s\n\n",
			i+1,
			result.Chunk.PageNumber,
			result.Similarity*100,
			utils.Truncate(result.Chunk.Text, 300))
	}

	b.WriteString(separator)
	b.WriteString("\nTIP: Enable LLM mode for AI-generated answers\n")
	b.WriteString(separator)
	return b.String(), nil
}

// Name identifies the template generator.
func (g *TemplateGenerator) Name() string {
	return "template"
}
