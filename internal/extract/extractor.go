// Package extract pulls plain text out of uploaded resume documents.
// Extraction never returns an error to callers; failures surface as a
// Result with OK unset so the analysis layer can decide what to do.
package extract

import (
	"bytes"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Result carries the extracted plain text plus the raw payload used for
// formatting inspection. OK reports whether the document parsed at all;
// a parsed document with no text is still OK.
type Result struct {
	Text string
	Raw  string
	OK   bool
}

// FromFile routes on the file extension: .pdf and .docx/.doc get real
// parsers, everything else is treated as UTF-8 text.
func FromFile(filename string, data []byte) Result {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return fromPDF(data)
	case ".docx", ".doc":
		return fromDocx(data)
	default:
		return fromPlainText(data)
	}
}

func fromPDF(data []byte) (result Result) {
	// The pdf library panics on some malformed documents.
	defer func() {
		if r := recover(); r != nil {
			result = Result{}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Result{}
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	// Raw bytes keep the PDF object markers that the formatting
	// inspector looks for.
	return Result{Text: sb.String(), Raw: string(data), OK: true}
}

var xmlTagPattern = regexp.MustCompile(`<[^>]+>`)

func fromDocx(data []byte) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			result = Result{}
		}
	}()

	reader, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Result{}
	}
	defer func() {
		if err := reader.Close(); err != nil {
			// Nothing useful to do; the content is already read.
			_ = err
		}
	}()

	content := reader.Editable().GetContent()
	text := docxPlainText(content)

	return Result{Text: text, Raw: text, OK: true}
}

// docxPlainText flattens word-processing XML into plain text, one line per
// paragraph.
func docxPlainText(content string) string {
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = xmlTagPattern.ReplaceAllString(content, "")
	return strings.TrimSpace(content)
}

func fromPlainText(data []byte) Result {
	text := strings.ToValidUTF8(string(data), "")
	return Result{Text: text, Raw: text, OK: true}
}
