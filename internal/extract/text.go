package extract

import (
	"bufio"
	"io"
	"strings"

	"github.com/docrank/docrank/internal/section"
)

// TextExtractor handles plain text files. Each blank-line separated
// paragraph becomes a body-only section.
type TextExtractor struct{}

func (e *TextExtractor) Extract(r io.Reader, filename string) (*section.Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	b := newBuilder(filename)
	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			b.text(current.String())
			b.flush()
			current.Reset()
		}
	}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		if current.Len() > 0 {
			current.WriteString("\n")
		}
		current.WriteString(line)
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, failed(filename, err)
	}
	return newDocument(filename, b.done()), nil
}
