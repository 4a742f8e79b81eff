package extract

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lu4p/cat"

	"github.com/hyperjump/kotae/internal/models"
)

// extractCat handles RTF and ODT through the cat library, which dispatches
// on the file extension. Neither format exposes page boundaries, so form
// feeds in the recovered text are the only page separators.
func extractCat(path string) ([]models.Page, error) {
	text, err := cat.File(path)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", strings.TrimPrefix(filepath.Ext(path), "."), err)
	}
	return pages(strings.Split(text, "\f")), nil
}
