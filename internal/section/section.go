package section

// Document is one extracted source document.
type Document struct {
	ID       string     // Stable identifier (content hash or caller-supplied)
	Filename string     // Original filename
	Sections []*Section // Extracted sections in document order
}

// Section is one coherent block of document content. Immutable once
// produced by extraction; the ranking pipeline only reads it.
type Section struct {
	Document string  // Source document filename
	Page     int     // 1-based page number (1 if the format has no pages)
	Heading  string  // Heading text (empty for body-only sections)
	Level    int     // Heading level 1..6, 0 = body with no heading
	Body     string  // Section body text
	Position int     // Sequential index within the source document
	Tables   []Table // Structured tables found inside this section
}

// Table is a structured table captured during extraction.
type Table struct {
	Rows       int        // Data row count (header excluded)
	Columns    int        // Column count
	Headers    []string   // Column headers (may be empty)
	SampleRows [][]string // First few data rows for previews
}

// WordCount returns the number of whitespace-separated words in the body.
func (s *Section) WordCount() int {
	n := 0
	inWord := false
	for _, r := range s.Body {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f' {
			inWord = false
			continue
		}
		if !inWord {
			n++
			inWord = true
		}
	}
	return n
}

// HasTables reports whether the section carries structured table data.
func (s *Section) HasTables() bool {
	return len(s.Tables) > 0
}

// Text returns heading and body joined for matching and embedding.
func (s *Section) Text() string {
	if s.Heading == "" {
		return s.Body
	}
	if s.Body == "" {
		return s.Heading
	}
	return s.Heading + "\n" + s.Body
}

// TableCount sums tables across all sections of a document.
func (d *Document) TableCount() int {
	n := 0
	for _, s := range d.Sections {
		n += len(s.Tables)
	}
	return n
}
