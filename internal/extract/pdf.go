package extract

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"

	"github.com/hyperjump/kotae/internal/models"
)

// extractPDF returns one entry per PDF page. Pages that fail to parse or
// hold no text become blank entries and are dropped by pages(), keeping the
// numbering of the remaining pages aligned with the document.
func extractPDF(content []byte) ([]models.Page, error) {
	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, fmt.Errorf("open PDF: %w", err)
	}
	numPages := r.NumPage()
	texts := make([]string, numPages)
	for i := 0; i < numPages; i++ {
		page := r.Page(i + 1)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("extract page %d: %w", i+1, err)
		}
		texts[i] = text
	}
	return pages(texts), nil
}
