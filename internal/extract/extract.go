// Package extract converts raw document bytes into ordered section
// lists for the ranking pipeline.
package extract

import (
	"errors"
	"fmt"
	"hash/fnv"
	"io"
	"path/filepath"
	"strings"

	"github.com/docrank/docrank/internal/section"
)

// Extractor converts one document into its ordered sections.
type Extractor interface {
	Extract(r io.Reader, filename string) (*section.Document, error)
}

// ExtractionError marks a malformed or unreadable source document.
type ExtractionError struct {
	Filename string
	Err      error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract %s: %v", e.Filename, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

func failed(filename string, err error) error {
	return &ExtractionError{Filename: filename, Err: err}
}

// ErrUnsupported is wrapped into the error returned for file types no
// extractor handles.
var ErrUnsupported = errors.New("unsupported file extension")

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".pdf":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".docx":     true,
	".csv":      true,
	".txt":      true,
}

// ForFile returns the appropriate extractor for a filename.
func ForFile(filename string) (Extractor, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return &PDFExtractor{}, nil
	case ".md", ".markdown":
		return &MarkdownExtractor{}, nil
	case ".html", ".htm":
		return &HTMLExtractor{}, nil
	case ".docx":
		return &DOCXExtractor{}, nil
	case ".csv":
		return &CSVExtractor{}, nil
	case ".txt":
		return &TextExtractor{}, nil
	default:
		return nil, failed(filename, fmt.Errorf("%w: %s", ErrUnsupported, ext))
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// builder accumulates flat sections in document order. Headings open a
// new section; text and tables attach to the open one, creating a
// body-only section when none is open.
type builder struct {
	filename string
	page     int
	sections []*section.Section
	current  *section.Section
	body     strings.Builder
}

func newBuilder(filename string) *builder {
	return &builder{filename: filename, page: 1}
}

func (b *builder) setPage(p int) { b.page = p }

func (b *builder) heading(text string, level int) {
	b.flush()
	b.current = &section.Section{
		Document: b.filename,
		Page:     b.page,
		Heading:  text,
		Level:    level,
	}
}

func (b *builder) text(t string) {
	t = strings.TrimSpace(t)
	if t == "" {
		return
	}
	if b.current == nil {
		b.current = &section.Section{Document: b.filename, Page: b.page}
	}
	if b.body.Len() > 0 {
		b.body.WriteString("\n\n")
	}
	b.body.WriteString(t)
}

func (b *builder) table(t section.Table) {
	if b.current == nil {
		b.current = &section.Section{Document: b.filename, Page: b.page}
	}
	b.current.Tables = append(b.current.Tables, t)
}

func (b *builder) flush() {
	if b.current == nil {
		return
	}
	b.current.Body = b.body.String()
	if b.current.Heading != "" || b.current.Body != "" || len(b.current.Tables) > 0 {
		b.current.Position = len(b.sections)
		b.sections = append(b.sections, b.current)
	}
	b.current = nil
	b.body.Reset()
}

func (b *builder) done() []*section.Section {
	b.flush()
	return b.sections
}

// newDocument assembles the document with a content-derived stable id.
func newDocument(filename string, sections []*section.Section) *section.Document {
	h := fnv.New64a()
	h.Write([]byte(filename))
	for _, s := range sections {
		h.Write([]byte(s.Text()))
	}
	return &section.Document{
		ID:       fmt.Sprintf("%016x", h.Sum64()),
		Filename: filename,
		Sections: sections,
	}
}
