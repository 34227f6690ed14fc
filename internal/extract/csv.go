package extract

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/docrank/docrank/internal/section"
)

// CSVExtractor handles CSV files. The whole file becomes one section
// carrying a structured table.
type CSVExtractor struct{}

const csvBodyRows = 20

func (e *CSVExtractor) Extract(r io.Reader, filename string) (*section.Document, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, failed(filename, fmt.Errorf("parse csv: %w", err))
	}
	if len(records) == 0 {
		return newDocument(filename, nil), nil
	}

	// First row is headers.
	headers := records[0]
	dataRows := records[1:]

	var body strings.Builder
	body.WriteString("Headers: " + strings.Join(headers, ", "))
	for i, row := range dataRows {
		if i >= csvBodyRows {
			body.WriteString(fmt.Sprintf("\n... %d more rows", len(dataRows)-csvBodyRows))
			break
		}
		body.WriteString("\n")
		for j, cell := range row {
			if j > 0 {
				body.WriteString(", ")
			}
			if j < len(headers) {
				body.WriteString(headers[j] + ": " + cell)
			} else {
				body.WriteString(cell)
			}
		}
	}

	sample := dataRows
	if len(sample) > tableSampleRows {
		sample = sample[:tableSampleRows]
	}

	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	b := newBuilder(filename)
	b.heading(name, 1)
	b.text(body.String())
	b.table(section.Table{
		Rows:       len(dataRows),
		Columns:    len(headers),
		Headers:    headers,
		SampleRows: sample,
	})
	return newDocument(filename, b.done()), nil
}
