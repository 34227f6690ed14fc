package extract

import (
	"strings"
	"testing"
)

func TestMarkdownExtractor_HeadingSections(t *testing.T) {
	input := `# Title

Intro text.

## Section A

Section A content.

### Subsection A1

Subsection A1 content.

## Section B

Section B content.
`
	e := &MarkdownExtractor{}
	doc, err := e.Extract(strings.NewReader(input), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(doc.Sections) != 4 {
		t.Fatalf("expected 4 sections, got %d", len(doc.Sections))
	}

	wantHeadings := []struct {
		heading string
		level   int
	}{
		{"Title", 1},
		{"Section A", 2},
		{"Subsection A1", 3},
		{"Section B", 2},
	}
	for i, w := range wantHeadings {
		s := doc.Sections[i]
		if s.Heading != w.heading || s.Level != w.level {
			t.Errorf("section %d: got (%q, %d), want (%q, %d)", i, s.Heading, s.Level, w.heading, w.level)
		}
		if s.Position != i {
			t.Errorf("section %d: position %d", i, s.Position)
		}
		if s.Document != "doc.md" {
			t.Errorf("section %d: document %q", i, s.Document)
		}
	}

	if !strings.Contains(doc.Sections[0].Body, "Intro text.") {
		t.Errorf("title section body = %q", doc.Sections[0].Body)
	}
	if !strings.Contains(doc.Sections[1].Body, "Section A content.") {
		t.Errorf("section A body = %q", doc.Sections[1].Body)
	}
}

func TestMarkdownExtractor_NoHeadings(t *testing.T) {
	input := `Just some plain text.

Another paragraph here.`

	e := &MarkdownExtractor{}
	doc, err := e.Extract(strings.NewReader(input), "plain.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// No headings: all text collects into a single body-only section.
	if len(doc.Sections) != 1 {
		t.Fatalf("expected 1 section for headingless markdown, got %d", len(doc.Sections))
	}
	s := doc.Sections[0]
	if s.Heading != "" || s.Level != 0 {
		t.Errorf("expected body-only section, got heading %q level %d", s.Heading, s.Level)
	}
	if !strings.Contains(s.Body, "Just some plain text.") || !strings.Contains(s.Body, "Another paragraph here.") {
		t.Errorf("body missing paragraphs: %q", s.Body)
	}
}

func TestMarkdownExtractor_CodeBlocksKeptInBody(t *testing.T) {
	input := "# API Reference\n\nSome intro.\n\n## Endpoints\n\nList of endpoints:\n\n```\nGET /api/users\nPOST /api/users\n```\n\nMore text after code.\n"

	e := &MarkdownExtractor{}
	doc, err := e.Extract(strings.NewReader(input), "api.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(doc.Sections))
	}
	endpoints := doc.Sections[1]
	if endpoints.Heading != "Endpoints" {
		t.Errorf("expected Endpoints heading, got %q", endpoints.Heading)
	}
	if !strings.Contains(endpoints.Body, "GET /api/users") {
		t.Errorf("expected code block content in body, got %q", endpoints.Body)
	}
	if !strings.Contains(endpoints.Body, "More text after code.") {
		t.Errorf("expected post-code text, got %q", endpoints.Body)
	}
}

func TestMarkdownExtractor_EmptyInput(t *testing.T) {
	e := &MarkdownExtractor{}
	doc, err := e.Extract(strings.NewReader(""), "empty.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Sections) != 0 {
		t.Errorf("expected 0 sections for empty input, got %d", len(doc.Sections))
	}
}
