package extract

import (
	"archive/zip"
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/hyperjump/kotae/internal/models"
)

// odpContentPath is the path to the main content inside an .odp zip (OpenDocument Presentation).
const odpContentPath = "content.xml"

// odpDrawPage captures the body of each <draw:page> element, one per slide.
var odpDrawPage = regexp.MustCompile(`(?s)<draw:page[^>]*>(.*?)</draw:page>`)

// odpTextTags match OpenDocument text elements (with optional attributes). We use separate patterns
// so opening and closing tags match (e.g. <text:p>...</text:p> only).
var (
	odpTextP    = regexp.MustCompile(`<text:p[^>]*>([^<]*)</text:p>`)
	odpTextSpan = regexp.MustCompile(`<text:span[^>]*>([^<]*)</text:span>`)
	odpTextH    = regexp.MustCompile(`<text:h[^>]*>([^<]*)</text:h>`)
)

// odpPageText collects text:p, text:span, and text:h content from one slide's XML.
func odpPageText(s string) string {
	var b strings.Builder
	appendMatches := func(parts [][]string) {
		for _, p := range parts {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strings.TrimSpace(p[1]))
		}
	}
	appendMatches(odpTextP.FindAllStringSubmatch(s, -1))
	appendMatches(odpTextSpan.FindAllStringSubmatch(s, -1))
	appendMatches(odpTextH.FindAllStringSubmatch(s, -1))
	return b.String()
}

// extractODP extracts one page per slide from .odp bytes. ODP is a ZIP
// containing content.xml (OpenDocument) where each slide is a <draw:page>
// element. Content with no draw:page elements becomes a single page.
func extractODP(content []byte) ([]models.Page, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, fmt.Errorf("extract ODP: not a zip: %w", err)
	}
	var contentXML []byte
	for _, f := range zr.File {
		if f.Name != odpContentPath {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("extract ODP: open %s: %w", f.Name, err)
		}
		var buf bytes.Buffer
		if _, err := buf.ReadFrom(rc); err != nil {
			_ = rc.Close()
			return nil, fmt.Errorf("extract ODP: read %s: %w", f.Name, err)
		}
		_ = rc.Close()
		contentXML = buf.Bytes()
		break
	}
	if contentXML == nil {
		return nil, fmt.Errorf("extract ODP: %s not found", odpContentPath)
	}

	s := string(contentXML)
	slides := odpDrawPage.FindAllStringSubmatch(s, -1)
	if len(slides) == 0 {
		return pages([]string{odpPageText(s)}), nil
	}
	texts := make([]string, len(slides))
	for i, slide := range slides {
		texts[i] = odpPageText(slide[1])
	}
	return pages(texts), nil
}
