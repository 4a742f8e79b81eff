package extract

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestExtractBytes_plain(t *testing.T) {
	e := NewExtractor()
	got, err := e.ExtractBytes([]byte("Hello world\nLine 2"), ".txt")
	if err != nil {
		t.Fatalf("ExtractBytes: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d pages, want 1", len(got))
	}
	if got[0].Number != 1 || got[0].Text != "Hello world\nLine 2" {
		t.Errorf("got page %d %q", got[0].Number, got[0].Text)
	}
}

func TestExtractBytes_plainFormFeedPages(t *testing.T) {
	e := NewExtractor()
	got, err := e.ExtractBytes([]byte("Page one.\fPage two.\f\fPage four."), ".txt")
	if err != nil {
		t.Fatalf("ExtractBytes: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d pages, want 3 (blank page dropped)", len(got))
	}
	wantNumbers := []int{1, 2, 4}
	wantTexts := []string{"Page one.", "Page two.", "Page four."}
	for i := range got {
		if got[i].Number != wantNumbers[i] || got[i].Text != wantTexts[i] {
			t.Errorf("page %d = {%d, %q}, want {%d, %q}",
				i, got[i].Number, got[i].Text, wantNumbers[i], wantTexts[i])
		}
	}
}

func TestExtractBytes_plainInvalidUTF8(t *testing.T) {
	e := NewExtractor()
	got, err := e.ExtractBytes([]byte("hello\x80world"), ".rst")
	if err != nil {
		t.Fatalf("ExtractBytes: %v", err)
	}
	if len(got) != 1 || got[0].Text != "hello�world" {
		t.Errorf("got %v", got)
	}
}

func TestExtractBytes_emptyContent(t *testing.T) {
	e := NewExtractor()
	got, err := e.ExtractBytes([]byte("   \n\t  "), ".txt")
	if err != nil {
		t.Fatalf("ExtractBytes: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("blank content should yield no pages, got %v", got)
	}
}

func TestExtractBytes_markdown(t *testing.T) {
	e := NewExtractor()
	src := "# Quarterly Report\n\nRevenue grew by **twelve** percent.\n\n- item one\n- item two\n"
	got, err := e.ExtractBytes([]byte(src), ".md")
	if err != nil {
		t.Fatalf("ExtractBytes: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d pages, want 1", len(got))
	}
	text := got[0].Text
	for _, want := range []string{"Quarterly Report", "Revenue grew by twelve percent.", "item one"} {
		if !strings.Contains(text, want) {
			t.Errorf("markdown text missing %q, got %q", want, text)
		}
	}
	for _, bad := range []string{"#", "**", "- item"} {
		if strings.Contains(text, bad) {
			t.Errorf("markdown syntax %q leaked into text %q", bad, text)
		}
	}
}

func TestExtractBytes_excel(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetCellValue("Sheet1", "A1", "Title")
	f.SetCellValue("Sheet1", "A2", "Value 1")
	f.SetCellValue("Sheet1", "B2", "Value 2")
	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	e := NewExtractor()
	got, err := e.ExtractBytes(buf.Bytes(), ".xlsx")
	if err != nil {
		t.Fatalf("ExtractBytes: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d pages, want 1", len(got))
	}
	if got[0].Text != "Title\nValue 1\tValue 2" {
		t.Errorf("got %q", got[0].Text)
	}
}

func TestExtractBytes_excelSheetsArePages(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetCellValue("Sheet1", "A1", "First sheet")
	if _, err := f.NewSheet("Details"); err != nil {
		t.Fatalf("NewSheet: %v", err)
	}
	f.SetCellValue("Details", "A1", "Second sheet")
	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	e := NewExtractor()
	got, err := e.ExtractBytes(buf.Bytes(), ".xlsx")
	if err != nil {
		t.Fatalf("ExtractBytes: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d pages, want 2", len(got))
	}
	if got[0].Number != 1 || got[0].Text != "First sheet" {
		t.Errorf("page 1 = {%d, %q}", got[0].Number, got[0].Text)
	}
	if got[1].Number != 2 || got[1].Text != "Second sheet" {
		t.Errorf("page 2 = {%d, %q}", got[1].Number, got[1].Text)
	}
}

func TestExtract_plainFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.txt")
	if err := os.WriteFile(path, []byte("File content"), 0600); err != nil {
		t.Fatal(err)
	}

	e := NewExtractor()
	got, err := e.Extract(path)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(got) != 1 || got[0].Text != "File content" {
		t.Errorf("got %v", got)
	}
}

func TestExtract_nonexistent(t *testing.T) {
	e := NewExtractor()
	if _, err := e.Extract("/nonexistent/path/file.txt"); err == nil {
		t.Error("expected error for nonexistent file")
	}
}

func TestExtractBytes_rtfNeedsPath(t *testing.T) {
	e := NewExtractor()
	if _, err := e.ExtractBytes([]byte(`{\rtf1 hi}`), ".rtf"); err == nil {
		t.Error("expected error: rtf extraction works from a path")
	}
}

func TestExtractBytes_unknownExtension(t *testing.T) {
	e := NewExtractor()
	got, err := e.ExtractBytes([]byte("raw content"), ".xyz")
	if err != nil {
		t.Fatalf("ExtractBytes: %v", err)
	}
	// Unknown extension falls back to plain
	if len(got) != 1 || got[0].Text != "raw content" {
		t.Errorf("got %v", got)
	}
}

// minimalDocx returns a minimal .docx zip bytes with word/document.xml holding the given body XML.
func minimalDocx(body string) []byte {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	fw, _ := w.Create("word/document.xml")
	_, _ = fw.Write([]byte(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` + body + `</w:body></w:document>`))
	_ = w.Close()
	return buf.Bytes()
}

func TestExtractBytes_docx(t *testing.T) {
	e := NewExtractor()
	content := minimalDocx(`<w:p><w:r><w:t>Searchable docx content</w:t></w:r></w:p>`)
	got, err := e.ExtractBytes(content, ".docx")
	if err != nil {
		t.Fatalf("ExtractBytes: %v", err)
	}
	if len(got) != 1 || got[0].Number != 1 || got[0].Text != "Searchable docx content" {
		t.Errorf("got %v", got)
	}
}

func TestExtractBytes_docxPageBreaks(t *testing.T) {
	e := NewExtractor()
	body := `<w:p><w:r><w:t>First page text</w:t></w:r></w:p>` +
		`<w:p><w:r><w:br w:type="page"/></w:r><w:r><w:t>Second page text</w:t></w:r></w:p>` +
		`<w:p><w:r><w:lastRenderedPageBreak/></w:r><w:r><w:t>Third page text</w:t></w:r></w:p>`
	got, err := e.ExtractBytes(minimalDocx(body), ".docx")
	if err != nil {
		t.Fatalf("ExtractBytes: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d pages, want 3", len(got))
	}
	wantTexts := []string{"First page text", "Second page text", "Third page text"}
	for i := range got {
		if got[i].Number != i+1 || got[i].Text != wantTexts[i] {
			t.Errorf("page %d = {%d, %q}, want {%d, %q}",
				i, got[i].Number, got[i].Text, i+1, wantTexts[i])
		}
	}
}

func TestExtractBytes_docxWithContentTypes(t *testing.T) {
	// Simulate a DOCX with word/document2.xml instead of word/document.xml.
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	ct, _ := w.Create("[Content_Types].xml")
	_, _ = ct.Write([]byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Override PartName="/word/document2.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`))
	fw, _ := w.Create("word/document2.xml")
	_, _ = fw.Write([]byte(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p><w:r><w:t>Content from document2</w:t></w:r></w:p></w:body></w:document>`))
	_ = w.Close()

	e := NewExtractor()
	got, err := e.ExtractBytes(buf.Bytes(), ".docx")
	if err != nil {
		t.Fatalf("ExtractBytes: %v", err)
	}
	if len(got) != 1 || got[0].Text != "Content from document2" {
		t.Errorf("got %v", got)
	}
}

// minimalPptx returns minimal .pptx zip bytes with the given slide files.
func minimalPptx(slides map[string]string) []byte {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, text := range slides {
		fw, _ := w.Create(name)
		_, _ = fw.Write([]byte(`<p:sld><p:cSld><p:spTree><p:sp><p:txBody><a:p><a:r><a:t>` + text + `</a:t></a:r></a:p></p:txBody></p:sp></p:spTree></p:cSld></p:sld>`))
	}
	_ = w.Close()
	return buf.Bytes()
}

func TestExtractBytes_pptxSlidesArePages(t *testing.T) {
	e := NewExtractor()
	content := minimalPptx(map[string]string{
		"ppt/slides/slide1.xml": "First slide",
		"ppt/slides/slide2.xml": "Second slide",
	})
	got, err := e.ExtractBytes(content, ".pptx")
	if err != nil {
		t.Fatalf("ExtractBytes: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d pages, want 2", len(got))
	}
	if got[0].Number != 1 || got[0].Text != "First slide" {
		t.Errorf("page 1 = {%d, %q}", got[0].Number, got[0].Text)
	}
	if got[1].Number != 2 || got[1].Text != "Second slide" {
		t.Errorf("page 2 = {%d, %q}", got[1].Number, got[1].Text)
	}
}

func TestExtractBytes_pptxSlideOrderIsNumeric(t *testing.T) {
	// slide10 sorts before slide2 lexically; the extractor must order by
	// slide number instead of zip entry order.
	e := NewExtractor()
	content := minimalPptx(map[string]string{
		"ppt/slides/slide10.xml": "Tenth slide",
		"ppt/slides/slide2.xml":  "Second slide",
	})
	got, err := e.ExtractBytes(content, ".pptx")
	if err != nil {
		t.Fatalf("ExtractBytes: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d pages, want 2", len(got))
	}
	if got[0].Number != 2 || got[0].Text != "Second slide" {
		t.Errorf("page[0] = {%d, %q}, want {2, Second slide}", got[0].Number, got[0].Text)
	}
	if got[1].Number != 10 || got[1].Text != "Tenth slide" {
		t.Errorf("page[1] = {%d, %q}, want {10, Tenth slide}", got[1].Number, got[1].Text)
	}
}

func TestExtractBytes_pptxEmpty(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	_, _ = w.Create("ppt/slides/other.xml")
	_, _ = w.Create("docProps/core.xml")
	_ = w.Close()
	e := NewExtractor()
	got, err := e.ExtractBytes(buf.Bytes(), ".pptx")
	if err != nil {
		t.Fatalf("ExtractBytes: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %v, want no pages", got)
	}
}

func TestExtract_pptxNotZip(t *testing.T) {
	e := NewExtractor()
	if _, err := e.ExtractBytes([]byte("not a zip"), ".pptx"); err == nil {
		t.Error("expected error for invalid pptx")
	}
}

// minimalOdf returns minimal OpenDocument zip bytes with the given content.xml.
func minimalOdf(contentXML string) []byte {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	fw, _ := w.Create("content.xml")
	_, _ = fw.Write([]byte(contentXML))
	_ = w.Close()
	return buf.Bytes()
}

func TestExtractBytes_odpSlidesArePages(t *testing.T) {
	contentXML := `<office:document><office:body>` +
		`<draw:page draw:name="page1"><text:h>Title slide</text:h></draw:page>` +
		`<draw:page draw:name="page2"><text:p>Body slide</text:p></draw:page>` +
		`</office:body></office:document>`
	e := NewExtractor()
	got, err := e.ExtractBytes(minimalOdf(contentXML), ".odp")
	if err != nil {
		t.Fatalf("ExtractBytes: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d pages, want 2", len(got))
	}
	if got[0].Number != 1 || got[0].Text != "Title slide" {
		t.Errorf("page 1 = {%d, %q}", got[0].Number, got[0].Text)
	}
	if got[1].Number != 2 || got[1].Text != "Body slide" {
		t.Errorf("page 2 = {%d, %q}", got[1].Number, got[1].Text)
	}
}

func TestExtractBytes_odpContentNotFound(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	_, _ = w.Create("other.xml")
	_ = w.Close()
	e := NewExtractor()
	if _, err := e.ExtractBytes(buf.Bytes(), ".odp"); err == nil {
		t.Error("expected error when content.xml missing")
	}
}

func TestExtractBytes_odsSheetsArePages(t *testing.T) {
	contentXML := `<office:document><office:body>` +
		`<table:table table:name="Data"><table:table-row><table:table-cell><text:p>Cell A</text:p></table:table-cell><table:table-cell><text:span>Cell B</text:span></table:table-cell></table:table-row></table:table>` +
		`<table:table table:name="Summary"><table:table-row><table:table-cell><text:p>Totals</text:p></table:table-cell></table:table-row></table:table>` +
		`</office:body></office:document>`
	e := NewExtractor()
	got, err := e.ExtractBytes(minimalOdf(contentXML), ".ods")
	if err != nil {
		t.Fatalf("ExtractBytes: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d pages, want 2", len(got))
	}
	if got[0].Text != "Cell A Cell B" {
		t.Errorf("sheet 1 text = %q", got[0].Text)
	}
	if got[1].Text != "Totals" {
		t.Errorf("sheet 2 text = %q", got[1].Text)
	}
}

func TestExtractBytes_odsContentNotFound(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	_, _ = w.Create("other.xml")
	_ = w.Close()
	e := NewExtractor()
	if _, err := e.ExtractBytes(buf.Bytes(), ".ods"); err == nil {
		t.Error("expected error when content.xml missing")
	}
}

func TestExtract_pptxFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.pptx")
	content := minimalPptx(map[string]string{"ppt/slides/slide1.xml": "Searchable from file"})
	if err := os.WriteFile(path, content, 0600); err != nil {
		t.Fatal(err)
	}
	e := NewExtractor()
	got, err := e.Extract(path)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(got) != 1 || got[0].Text != "Searchable from file" {
		t.Errorf("got %v", got)
	}
}
