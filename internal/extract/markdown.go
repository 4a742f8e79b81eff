package extract

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"

	"github.com/hyperjump/kotae/internal/models"
)

// extractMarkdown parses markdown and walks the syntax tree collecting text
// content, so headings, emphasis markers, and link syntax do not pollute the
// extracted text. Markdown has no page concept; the whole document is one
// page.
func extractMarkdown(content []byte) ([]models.Page, error) {
	doc := goldmark.New().Parser().Parse(gmtext.NewReader(content))

	var b strings.Builder
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.Text:
			if entering {
				b.Write(node.Segment.Value(content))
				if node.SoftLineBreak() || node.HardLineBreak() {
					b.WriteByte('\n')
				}
			}
		case *ast.String:
			if entering {
				b.Write(node.Value)
			}
		case *ast.FencedCodeBlock:
			if entering {
				writeBlockLines(&b, content, node)
			} else {
				b.WriteString("\n\n")
			}
		case *ast.CodeBlock:
			if entering {
				writeBlockLines(&b, content, node)
			} else {
				b.WriteString("\n\n")
			}
		default:
			if !entering && n.Type() == ast.TypeBlock {
				b.WriteString("\n\n")
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}
	return pages([]string{b.String()}), nil
}

func writeBlockLines(b *strings.Builder, source []byte, n ast.Node) {
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(source))
	}
}
