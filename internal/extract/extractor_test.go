package extract

import (
	"strings"
	"testing"
)

func TestFromFilePlainText(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		data     []byte
		expected string
	}{
		{
			name:     "txt file",
			filename: "resume.txt",
			data:     []byte("John Doe\nEngineer"),
			expected: "John Doe\nEngineer",
		},
		{
			name:     "unknown extension treated as text",
			filename: "resume.md",
			data:     []byte("## Skills"),
			expected: "## Skills",
		},
		{
			name:     "no extension",
			filename: "resume",
			data:     []byte("plain"),
			expected: "plain",
		},
		{
			name:     "invalid utf8 stripped",
			filename: "resume.txt",
			data:     []byte{'o', 'k', 0xff, 0xfe, '!'},
			expected: "ok!",
		},
		{
			name:     "empty file",
			filename: "empty.txt",
			data:     nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FromFile(tt.filename, tt.data)

			if !result.OK {
				t.Fatal("plain text extraction should always succeed")
			}
			if result.Text != tt.expected {
				t.Errorf("Text = %q, want %q", result.Text, tt.expected)
			}
			if result.Raw != result.Text {
				t.Errorf("Raw = %q, want same as Text", result.Raw)
			}
		})
	}
}

func TestFromFileMalformedDocuments(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		data     []byte
	}{
		{name: "garbage pdf", filename: "resume.pdf", data: []byte("not a pdf at all")},
		{name: "empty pdf", filename: "resume.pdf", data: nil},
		{name: "garbage docx", filename: "resume.docx", data: []byte("not a zip archive")},
		{name: "garbage doc", filename: "resume.doc", data: []byte{0x00, 0x01, 0x02}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FromFile(tt.filename, tt.data)

			if result.OK {
				t.Error("malformed document reported OK")
			}
			if result.Text != "" || result.Raw != "" {
				t.Errorf("expected empty result, got Text=%q Raw=%q", result.Text, result.Raw)
			}
		})
	}
}

func TestDocxPlainText(t *testing.T) {
	content := `<w:body><w:p><w:r><w:t>First paragraph</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Second paragraph</w:t></w:r></w:p></w:body>`

	got := docxPlainText(content)

	if !strings.Contains(got, "First paragraph") || !strings.Contains(got, "Second paragraph") {
		t.Fatalf("paragraph text lost: %q", got)
	}
	if strings.Contains(got, "<") {
		t.Errorf("tags left behind: %q", got)
	}
	if !strings.Contains(got, "First paragraph\nSecond paragraph") {
		t.Errorf("paragraphs not newline separated: %q", got)
	}
}
