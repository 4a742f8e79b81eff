package extract

import (
	"strings"
	"unicode/utf8"

	"github.com/hyperjump/kotae/internal/models"
)

// extractPlain treats content as UTF-8 text, replacing invalid sequences
// with the replacement character. Form feeds separate pages.
func extractPlain(content []byte) ([]models.Page, error) {
	text := string(content)
	if !utf8.Valid(content) {
		text = strings.ToValidUTF8(text, "�")
	}
	return pages(strings.Split(text, "\f")), nil
}
