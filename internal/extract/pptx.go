package extract

import (
	"archive/zip"
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/hyperjump/kotae/internal/models"
)

// pptxSlidePath captures the slide number from paths like ppt/slides/slide3.xml.
// Zip entry order is not slide order, so the number in the name is authoritative.
var pptxSlidePath = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

// atTag matches <a:t>text</a:t> or <a:t xml:space="preserve">text</a:t> (and any other attributes).
var atTag = regexp.MustCompile(`<a:t[^>]*>([^<]*)</a:t>`)

// extractPPTX extracts one page per slide from .pptx bytes. PPTX is a ZIP
// containing ppt/slides/slideN.xml (Office Open XML); all <a:t>...</a:t>
// text nodes in a slide form its page text.
func extractPPTX(content []byte) ([]models.Page, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, fmt.Errorf("extract PPTX: not a zip: %w", err)
	}

	slides := make(map[int]string)
	maxSlide := 0
	for _, f := range zr.File {
		m := pptxSlidePath.FindStringSubmatch(f.Name)
		if m == nil {
			continue
		}
		num, err := strconv.Atoi(m[1])
		if err != nil || num < 1 {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("extract PPTX: open %s: %w", f.Name, err)
		}
		var slideBuf bytes.Buffer
		if _, err := slideBuf.ReadFrom(rc); err != nil {
			_ = rc.Close()
			return nil, fmt.Errorf("extract PPTX: read %s: %w", f.Name, err)
		}
		_ = rc.Close()

		var b strings.Builder
		for _, p := range atTag.FindAllStringSubmatch(slideBuf.String(), -1) {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strings.TrimSpace(p[1]))
		}
		slides[num] = b.String()
		if num > maxSlide {
			maxSlide = num
		}
	}

	texts := make([]string, maxSlide)
	for num, text := range slides {
		texts[num-1] = text
	}
	return pages(texts), nil
}
