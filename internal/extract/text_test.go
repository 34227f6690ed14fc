package extract

import (
	"strings"
	"testing"
)

func TestTextExtractor_ParagraphSections(t *testing.T) {
	input := "First paragraph line one.\nFirst paragraph line two.\n\nSecond paragraph.\n\nThird paragraph."
	e := &TextExtractor{}
	doc, err := e.Extract(strings.NewReader(input), "notes.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(doc.Sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(doc.Sections))
	}
	want := []string{
		"First paragraph line one.\nFirst paragraph line two.",
		"Second paragraph.",
		"Third paragraph.",
	}
	for i, w := range want {
		s := doc.Sections[i]
		if s.Body != w {
			t.Errorf("section %d: expected %q, got %q", i, w, s.Body)
		}
		if s.Level != 0 || s.Heading != "" {
			t.Errorf("section %d: expected body-only section", i)
		}
		if s.Position != i {
			t.Errorf("section %d: position %d", i, s.Position)
		}
	}
}

func TestTextExtractor_EmptyInput(t *testing.T) {
	e := &TextExtractor{}
	doc, err := e.Extract(strings.NewReader(""), "empty.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Sections) != 0 {
		t.Errorf("expected 0 sections for empty input, got %d", len(doc.Sections))
	}
	if doc.Filename != "empty.txt" {
		t.Errorf("filename = %q", doc.Filename)
	}
}

func TestTextExtractor_MultipleBlankLines(t *testing.T) {
	// Consecutive blank lines should not produce empty sections.
	input := "Para one.\n\n\n\nPara two."
	e := &TextExtractor{}
	doc, err := e.Extract(strings.NewReader(input), "gaps.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(doc.Sections))
	}
}

func TestTextExtractor_WhitespaceOnlyLines(t *testing.T) {
	input := "Para one.\n   \nPara two."
	e := &TextExtractor{}
	doc, err := e.Extract(strings.NewReader(input), "ws.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(doc.Sections))
	}
}
