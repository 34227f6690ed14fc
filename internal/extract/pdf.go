package extract

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"strings"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/docrank/docrank/internal/section"
)

// PDFExtractor handles PDF files. It tries the Go library first,
// then falls back to pdftotext if enabled.
type PDFExtractor struct {
	FallbackPdftotext bool
}

// Heading candidates found in plain extracted text. Without font
// information, only lines matching a structural pattern qualify.
var (
	allCapsRe   = regexp.MustCompile(`^[A-Z][A-Z\s]{10,}$`)
	numberedRe  = regexp.MustCompile(`^\d+(\.\d+)*\.?\s+[A-Z]`)
	titleCaseRe = regexp.MustCompile(`^[A-Z][a-z]+(\s+[A-Z][a-z]+)*:?\s*$`)
)

func (e *PDFExtractor) Extract(r io.Reader, filename string) (*section.Document, error) {
	// ledongthuc/pdf requires a ReadSeeker+size, so we write to a temp file.
	tmp, err := os.CreateTemp("", "docrank-pdf-*.pdf")
	if err != nil {
		return nil, failed(filename, fmt.Errorf("create temp file: %w", err))
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, failed(filename, fmt.Errorf("write temp file: %w", err))
	}
	tmp.Close()

	text, err := pdfText(tmpPath)
	if err != nil && e.FallbackPdftotext {
		text, err = pdftotext(tmpPath)
	}
	if err != nil {
		return nil, failed(filename, fmt.Errorf("extract pdf text: %w", err))
	}

	b := newBuilder(filename)
	for i, page := range strings.Split(text, "\f") {
		b.setPage(i + 1)
		readPage(b, page)
	}
	return newDocument(filename, b.done()), nil
}

// readPage splits page text into heading and paragraph runs.
func readPage(b *builder, page string) {
	var para strings.Builder
	flushPara := func() {
		if para.Len() > 0 {
			b.text(para.String())
			para.Reset()
		}
	}
	for _, line := range strings.Split(page, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			flushPara()
			continue
		}
		if isHeadingLine(line) {
			flushPara()
			b.heading(strings.TrimRight(line, ":"), pdfHeadingLevel(line))
			continue
		}
		if para.Len() > 0 {
			para.WriteString(" ")
		}
		para.WriteString(line)
	}
	flushPara()
}

func isHeadingLine(line string) bool {
	if len(line) <= 5 || len(strings.Fields(line)) > 8 {
		return false
	}
	return allCapsRe.MatchString(line) ||
		numberedRe.MatchString(line) ||
		titleCaseRe.MatchString(line)
}

// pdfHeadingLevel infers nesting: dotted numbering depth when present,
// all-caps lines as top level, title case below.
func pdfHeadingLevel(line string) int {
	if numberedRe.MatchString(line) {
		prefix := strings.TrimSuffix(strings.Fields(line)[0], ".")
		depth := strings.Count(prefix, ".") + 1
		if depth > 6 {
			depth = 6
		}
		return depth
	}
	if allCapsRe.MatchString(line) {
		return 1
	}
	return 2
}

func pdfText(path string) (string, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var buf strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if i > 1 {
			buf.WriteString("\f") // Form feed as page separator.
		}
		buf.WriteString(text)
	}
	return buf.String(), nil
}

func pdftotext(path string) (string, error) {
	cmd := exec.Command("pdftotext", "-layout", path, "-")
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("pdftotext: %w", err)
	}
	return string(out), nil
}
