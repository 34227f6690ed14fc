package extract

import (
	"errors"
	"strings"
	"testing"
)

func TestForFile(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"report.pdf", "*extract.PDFExtractor"},
		{"readme.md", "*extract.MarkdownExtractor"},
		{"notes.markdown", "*extract.MarkdownExtractor"},
		{"page.html", "*extract.HTMLExtractor"},
		{"page.htm", "*extract.HTMLExtractor"},
		{"memo.docx", "*extract.DOCXExtractor"},
		{"rows.csv", "*extract.CSVExtractor"},
		{"plain.txt", "*extract.TextExtractor"},
		{"REPORT.PDF", "*extract.PDFExtractor"},
	}
	for _, tt := range tests {
		e, err := ForFile(tt.filename)
		if err != nil {
			t.Errorf("%s: unexpected error %v", tt.filename, err)
			continue
		}
		// The concrete type is part of the routing contract.
		if got := typeName(e); got != tt.want {
			t.Errorf("%s: got %s, want %s", tt.filename, got, tt.want)
		}
	}
}

func typeName(v interface{}) string {
	switch v.(type) {
	case *PDFExtractor:
		return "*extract.PDFExtractor"
	case *MarkdownExtractor:
		return "*extract.MarkdownExtractor"
	case *HTMLExtractor:
		return "*extract.HTMLExtractor"
	case *DOCXExtractor:
		return "*extract.DOCXExtractor"
	case *CSVExtractor:
		return "*extract.CSVExtractor"
	case *TextExtractor:
		return "*extract.TextExtractor"
	}
	return "unknown"
}

func TestForFile_Unsupported(t *testing.T) {
	_, err := ForFile("binary.exe")
	if err == nil {
		t.Fatal("expected error for unsupported extension")
	}
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
	var exErr *ExtractionError
	if !errors.As(err, &exErr) {
		t.Errorf("expected typed ExtractionError, got %T", err)
	}
}

func TestIsSupportedExtension(t *testing.T) {
	if !IsSupportedExtension("a.pdf") || !IsSupportedExtension("b.MD") {
		t.Error("expected pdf and md to be supported")
	}
	if IsSupportedExtension("c.exe") || IsSupportedExtension("noext") {
		t.Error("expected exe and extension-less names to be unsupported")
	}
}

func TestCSVExtractor_SingleTableSection(t *testing.T) {
	input := "name,role\nalice,admin\nbob,viewer\ncarol,editor\ndave,viewer\n"
	e := &CSVExtractor{}
	doc, err := e.Extract(strings.NewReader(input), "users.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(doc.Sections))
	}
	s := doc.Sections[0]
	if s.Heading != "users" || s.Level != 1 {
		t.Errorf("heading = %q level %d", s.Heading, s.Level)
	}
	if !strings.Contains(s.Body, "Headers: name, role") {
		t.Errorf("body = %q", s.Body)
	}
	if !s.HasTables() {
		t.Fatal("expected structured table")
	}
	table := s.Tables[0]
	if table.Rows != 4 || table.Columns != 2 {
		t.Errorf("table shape %dx%d", table.Rows, table.Columns)
	}
	if len(table.SampleRows) != 3 {
		t.Errorf("sample rows = %d", len(table.SampleRows))
	}
}

func TestCSVExtractor_EmptyFile(t *testing.T) {
	e := &CSVExtractor{}
	doc, err := e.Extract(strings.NewReader(""), "empty.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Sections) != 0 {
		t.Errorf("expected 0 sections, got %d", len(doc.Sections))
	}
}

func TestDocumentID_Stable(t *testing.T) {
	e := &TextExtractor{}
	a, _ := e.Extract(strings.NewReader("same content"), "a.txt")
	b, _ := e.Extract(strings.NewReader("same content"), "a.txt")
	c, _ := e.Extract(strings.NewReader("other content"), "a.txt")
	if a.ID != b.ID {
		t.Error("identical inputs should share an id")
	}
	if a.ID == c.ID {
		t.Error("different content should change the id")
	}
}
