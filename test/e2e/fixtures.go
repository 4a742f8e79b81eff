package e2e

import (
	"archive/zip"
	"bytes"

	"github.com/xuri/excelize/v2"
)

// SupportedFileExtensions lists the extensions exercised by the format
// round-trip test. PDF needs a real producer and is covered by the extract
// package's own fixtures; .odt and .rtf extract from a file path only.
var SupportedFileExtensions = []string{
	".txt", ".md",
	".docx", ".xlsx", ".pptx", ".odp", ".ods",
}

// FileBytes renders text as a minimal file of the given extension, just
// enough structure for the extractor to find the text again. The text must
// not contain characters needing XML escaping.
func FileBytes(ext, text string) ([]byte, error) {
	switch ext {
	case ".docx":
		return zipWithEntry("word/document.xml",
			`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p><w:r><w:t>`+text+`</w:t></w:r></w:p></w:body></w:document>`), nil
	case ".pptx":
		return zipWithEntry("ppt/slides/slide1.xml",
			`<p:sld xmlns:p="a" xmlns:a="b"><p:cSld><p:spTree><p:sp><p:txBody><a:p><a:r><a:t>`+text+`</a:t></a:r></a:p></p:txBody></p:sp></p:spTree></p:cSld></p:sld>`), nil
	case ".odp":
		return zipWithEntry("content.xml",
			`<office:document><office:body><draw:page><draw:text-box><text:p>`+text+`</text:p></draw:text-box></draw:page></office:body></office:document>`), nil
	case ".ods":
		return zipWithEntry("content.xml",
			`<office:document><office:body><table:table><table:table-row><table:table-cell><text:p>`+text+`</text:p></table:table-cell></table:table-row></table:table></office:body></office:document>`), nil
	case ".xlsx":
		f := excelize.NewFile()
		defer f.Close()
		if err := f.SetCellValue("Sheet1", "A1", text); err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if _, err := f.WriteTo(&buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return []byte(text), nil
	}
}

// zipWithEntry builds a single-entry zip archive, the shape shared by OOXML
// and OpenDocument containers.
func zipWithEntry(name, body string) []byte {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	fw, _ := w.Create(name)
	_, _ = fw.Write([]byte(body))
	_ = w.Close()
	return buf.Bytes()
}
