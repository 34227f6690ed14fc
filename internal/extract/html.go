package extract

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/docrank/docrank/internal/section"
)

// HTMLExtractor handles HTML files, capturing <table> elements as
// structured tables on the enclosing section.
type HTMLExtractor struct{}

const tableSampleRows = 3

func (e *HTMLExtractor) Extract(r io.Reader, filename string) (*section.Document, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, failed(filename, fmt.Errorf("parse html: %w", err))
	}

	b := newBuilder(filename)
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if level := headingLevel(n.Data); level > 0 {
				b.heading(textContent(n), level)
				return // Heading text already extracted.
			}
			switch n.Data {
			case "script", "style", "nav", "footer", "header":
				return
			case "table":
				b.table(htmlTable(n))
				return
			case "p", "li", "blockquote":
				b.text(textContent(n))
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	if body := findBody(doc); body != nil {
		walk(body)
	} else {
		walk(doc)
	}
	return newDocument(filename, b.done()), nil
}

func headingLevel(tag string) int {
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '0')
	}
	return 0
}

// htmlTable converts a <table> element into its structured form. A
// leading row of <th> cells becomes the header; remaining rows count as
// data with the first few kept as samples.
func htmlTable(n *html.Node) section.Table {
	var rows [][]string
	var headers []string

	var findRows func(*html.Node)
	findRows = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "tr" {
			var cells []string
			isHeader := false
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type != html.ElementNode {
					continue
				}
				switch c.Data {
				case "th":
					isHeader = true
					cells = append(cells, textContent(c))
				case "td":
					cells = append(cells, textContent(c))
				}
			}
			if isHeader && headers == nil {
				headers = cells
			} else if len(cells) > 0 {
				rows = append(rows, cells)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			findRows(c)
		}
	}
	findRows(n)

	columns := len(headers)
	for _, row := range rows {
		if len(row) > columns {
			columns = len(row)
		}
	}
	sample := rows
	if len(sample) > tableSampleRows {
		sample = sample[:tableSampleRows]
	}
	return section.Table{
		Rows:       len(rows),
		Columns:    columns,
		Headers:    headers,
		SampleRows: sample,
	}
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(buf.String())
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
