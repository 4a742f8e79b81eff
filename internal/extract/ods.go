package extract

import (
	"archive/zip"
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/hyperjump/kotae/internal/models"
)

// odsContentPath is the path to the main content inside an .ods zip (OpenDocument Spreadsheet).
const odsContentPath = "content.xml"

// odsTable captures the body of each <table:table> element, one per sheet.
var odsTable = regexp.MustCompile(`(?s)<table:table[^>]*>(.*?)</table:table>`)

// odsTextTags match OpenDocument text elements in spreadsheet cells (with optional attributes).
var (
	odsTextP    = regexp.MustCompile(`<text:p[^>]*>([^<]*)</text:p>`)
	odsTextSpan = regexp.MustCompile(`<text:span[^>]*>([^<]*)</text:span>`)
)

// odsSheetText collects text:p and text:span content from one sheet's XML.
func odsSheetText(s string) string {
	var b strings.Builder
	appendMatches := func(parts [][]string) {
		for _, p := range parts {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strings.TrimSpace(p[1]))
		}
	}
	appendMatches(odsTextP.FindAllStringSubmatch(s, -1))
	appendMatches(odsTextSpan.FindAllStringSubmatch(s, -1))
	return b.String()
}

// extractODS extracts one page per sheet from .ods bytes. ODS is a ZIP
// containing content.xml (OpenDocument) where each sheet is a <table:table>
// element. Content with no table elements becomes a single page.
func extractODS(content []byte) ([]models.Page, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, fmt.Errorf("extract ODS: not a zip: %w", err)
	}
	var contentXML []byte
	for _, f := range zr.File {
		if f.Name != odsContentPath {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("extract ODS: open %s: %w", f.Name, err)
		}
		var buf bytes.Buffer
		if _, err := buf.ReadFrom(rc); err != nil {
			_ = rc.Close()
			return nil, fmt.Errorf("extract ODS: read %s: %w", f.Name, err)
		}
		_ = rc.Close()
		contentXML = buf.Bytes()
		break
	}
	if contentXML == nil {
		return nil, fmt.Errorf("extract ODS: %s not found", odsContentPath)
	}

	s := string(contentXML)
	sheets := odsTable.FindAllStringSubmatch(s, -1)
	if len(sheets) == 0 {
		return pages([]string{odsSheetText(s)}), nil
	}
	texts := make([]string, len(sheets))
	for i, sheet := range sheets {
		texts[i] = odsSheetText(sheet[1])
	}
	return pages(texts), nil
}
