// Package extract converts document files into ordered page texts.
package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hyperjump/kotae/internal/models"
)

// Extractor extracts page texts from document files.
type Extractor struct{}

// NewExtractor returns a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract reads the file at path and returns its pages in order. Page
// numbers are 1-based positions in the source document and pages with no
// text are dropped, so numbering can have gaps. PDF pages, spreadsheet
// sheets, and presentation slides each count as one page; plain text splits
// on form feeds. Unknown extensions are treated as plain text.
func (e *Extractor) Extract(path string) ([]models.Page, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".rtf" || ext == ".odt" {
		return extractCat(path)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return e.ExtractBytes(content, ext)
}

// ExtractBytes extracts pages from content based on the given extension.
// ext should include the leading dot (e.g. ".pdf"). RTF and ODT are only
// handled by Extract because their parser works from a file path.
func (e *Extractor) ExtractBytes(content []byte, ext string) ([]models.Page, error) {
	switch ext {
	case ".pdf":
		return extractPDF(content)
	case ".docx":
		return extractDOCX(content)
	case ".xlsx":
		return extractExcel(content)
	case ".pptx":
		return extractPPTX(content)
	case ".odp":
		return extractODP(content)
	case ".ods":
		return extractODS(content)
	case ".md", ".markdown":
		return extractMarkdown(content)
	case ".rtf", ".odt":
		return nil, fmt.Errorf("%s extraction needs a file path, use Extract", ext)
	default:
		return extractPlain(content)
	}
}

// pages builds Page values from per-page texts. Numbering follows the
// position in texts so cited page numbers match the source document even
// when blank pages are dropped.
func pages(texts []string) []models.Page {
	out := make([]models.Page, 0, len(texts))
	for i, text := range texts {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		out = append(out, models.Page{Number: i + 1, Text: text})
	}
	return out
}
