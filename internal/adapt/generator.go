package adapt

import (
	"fmt"
	"strings"

	"github.com/docrank/docrank/internal/persona"
	"github.com/docrank/docrank/internal/ranking"
	"github.com/docrank/docrank/internal/textnorm"
)

// Adapted is the persona-framed rewrite of one ranked section.
type Adapted struct {
	Title        string   // persona-adapted title (original when no template matched)
	TitleChanged bool     // false when the original heading was retained
	RefinedText  string   // bounded, artifact-normalized content summary
	Insights     []string // ordered, deduplicated actionable insights
}

// Generator produces persona-adapted titles, refined summaries, and
// actionable insights by rule-based rewriting. Same inputs always yield
// the same outputs.
type Generator struct {
	templates       *Templates
	maxPreviewWords int
	maxInsights     int
}

// NewGenerator creates a generator. templates may be nil to use the
// built-in tables; non-positive limits fall back to defaults.
func NewGenerator(templates *Templates, maxPreviewWords, maxInsights int) *Generator {
	if templates == nil {
		templates = DefaultTemplates()
	}
	if maxPreviewWords <= 0 {
		maxPreviewWords = 60
	}
	if maxInsights <= 0 {
		maxInsights = 3
	}
	return &Generator{
		templates:       templates,
		maxPreviewWords: maxPreviewWords,
		maxInsights:     maxInsights,
	}
}

// Adapt rewrites one ranked section for the persona.
func (g *Generator) Adapt(r ranking.RankedSection, pc *persona.Context) Adapted {
	title, changed := g.adaptTitle(r.Section.Heading, pc.Domain)
	return Adapted{
		Title:        title,
		TitleChanged: changed,
		RefinedText:  g.refine(r.Section.Body),
		Insights:     g.insights(r.Section.Heading, r.Section.Body, pc),
	}
}

// Preview returns the bounded content preview used for every ranked
// section, artifact-normalized and word-truncated.
func (g *Generator) Preview(body string) string {
	return textnorm.TruncateWords(textnorm.Normalize(body), g.maxPreviewWords)
}

// adaptTitle rewrites the heading through the template table for the
// domain. No match returns the heading unchanged, flagged unmodified so
// callers can decide whether to display both.
func (g *Generator) adaptTitle(heading string, domain persona.Domain) (string, bool) {
	if heading == "" {
		return "", false
	}
	lower := strings.ToLower(heading)
	for _, rule := range g.templates.titles[domain] {
		for _, topic := range rule.topics {
			if strings.Contains(lower, topic) {
				return fmt.Sprintf(rule.template, heading), true
			}
		}
	}
	return heading, false
}

// refine builds the content summary from the leading sentences of the
// normalized body, bounded by the preview word budget.
func (g *Generator) refine(body string) string {
	normalized := textnorm.Normalize(body)
	if normalized == "" {
		return ""
	}

	var out strings.Builder
	words := 0
	for _, sentence := range textnorm.Sentences(normalized) {
		n := len(strings.Fields(sentence))
		if words > 0 && words+n > g.maxPreviewWords {
			break
		}
		if out.Len() > 0 {
			out.WriteString(" ")
		}
		out.WriteString(sentence)
		words += n
		if words >= g.maxPreviewWords {
			break
		}
	}
	return textnorm.TruncateWords(out.String(), g.maxPreviewWords)
}

// insights matches the section text against the domain insight table,
// deduplicating while preserving first-occurrence order. No match at all
// synthesizes a generic fallback from the heading.
func (g *Generator) insights(heading, body string, pc *persona.Context) []string {
	text := strings.ToLower(heading + " " + body)

	var out []string
	seen := make(map[string]bool)
	add := func(insight string) {
		if !seen[insight] && len(out) < g.maxInsights {
			seen[insight] = true
			out = append(out, insight)
		}
	}

	for _, rule := range g.templates.insights[pc.Domain] {
		if strings.Contains(text, rule.trigger) {
			add(rule.insight)
		}
	}

	if len(out) == 0 {
		subject := strings.TrimSpace(heading)
		if subject == "" {
			subject = "this section"
		}
		out = append(out, fmt.Sprintf("Review %s for relevant details", subject))
	}
	return out
}
