package ranking

import (
	"strings"
	"unicode"

	"github.com/docrank/docrank/internal/embedding"
	"github.com/docrank/docrank/internal/persona"
	"github.com/docrank/docrank/internal/section"
)

// Breakdown holds the four normalized sub-scores and their weighted
// fusion. Every field is in [0,1]. Never mutated after computation.
type Breakdown struct {
	Semantic float64 `json:"semantic_similarity"`
	Keyword  float64 `json:"keyword_match"`
	Heading  float64 `json:"heading_weight"`
	Quality  float64 `json:"content_quality"`
	Total    float64 `json:"total_score"`
}

// Score computes the breakdown for one section against one persona
// context. sectionVec is the section's text embedding; pass nil in
// degraded mode or when the embed call failed for this section. A section
// with no text at all scores zero across the board.
func Score(sec *section.Section, pc *persona.Context, sectionVec []float64, w Weights) Breakdown {
	if strings.TrimSpace(sec.Text()) == "" {
		return Breakdown{}
	}

	b := Breakdown{
		Semantic: semanticScore(sectionVec, pc.Embedding),
		Keyword:  keywordScore(sec, pc),
		Heading:  headingScore(sec),
		Quality:  qualityScore(sec),
	}
	b.Total = w.Semantic*b.Semantic + w.Keyword*b.Keyword + w.Heading*b.Heading + w.Quality*b.Quality
	return b
}

// semanticScore rescales cosine similarity from [-1,1] to [0,1].
// Missing or zero-norm vectors score 0 so embedding failures rank low
// instead of aborting the run.
func semanticScore(sectionVec, contextVec []float64) float64 {
	if len(sectionVec) == 0 || len(contextVec) == 0 {
		return 0
	}
	if isZero(sectionVec) || isZero(contextVec) {
		return 0
	}
	return clamp01((embedding.Cosine(sectionVec, contextVec) + 1) / 2)
}

func isZero(v []float64) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}

// keywordScore sums the context weights of every keyword found in the
// section text (case-insensitive substring match), normalized by the
// maximum possible weight sum for the context and capped at 1.
func keywordScore(sec *section.Section, pc *persona.Context) float64 {
	if pc.Weight <= 0 || len(pc.Keywords) == 0 {
		return 0
	}
	text := strings.ToLower(sec.Text())
	matched := 0.0
	for kw, weight := range pc.Keywords {
		if strings.Contains(text, kw) {
			matched += weight
		}
	}
	return clamp01(matched / pc.Weight)
}

// Heading level bases. Level 0 is body text with no heading.
var levelBases = [...]float64{0.15, 1.0, 0.8, 0.6, 0.5, 0.45, 0.4}

const (
	positionPenaltyMax  = 0.1
	positionPenaltySpan = 40.0
)

// headingScore is monotone in heading level and document position:
// level-1 headings beat level-3, and early sections edge out equivalent
// sections deep in the document. Body-only sections get a fixed low
// baseline with no position adjustment.
func headingScore(sec *section.Section) float64 {
	level := sec.Level
	if level < 0 || level >= len(levelBases) {
		level = len(levelBases) - 1
	}
	base := levelBases[level]
	if sec.Level == 0 {
		return base
	}

	frac := float64(sec.Position) / positionPenaltySpan
	if frac > 1 {
		frac = 1
	}
	return clamp01(base - positionPenaltyMax*frac)
}

// Word-count band rewarded by qualityScore. Very short and very long
// sections are penalized relative to this target range.
const (
	qualityTargetMin = 50
	qualityTargetMax = 500
)

func qualityScore(sec *section.Section) float64 {
	words := sec.WordCount()

	score := 0.0
	switch {
	case words >= qualityTargetMin && words <= qualityTargetMax:
		score = 0.5
	case (words >= 20 && words < qualityTargetMin) || (words > qualityTargetMax && words <= 1000):
		score = 0.3
	case words > 1000:
		score = 0.2
	case words > 0:
		score = 0.1
	}

	if denseNonProse(sec.Body) {
		score -= 0.2
	}
	if sec.HasTables() {
		score += 0.2
	}
	if hasStructuredMarkers(sec.Body) {
		score += 0.1
	}
	return clamp01(score)
}

// denseNonProse flags all-caps runs and table-only listings that slipped
// through extraction as section bodies.
func denseNonProse(body string) bool {
	var upper, lower int
	for _, r := range body {
		switch {
		case unicode.IsUpper(r):
			upper++
		case unicode.IsLower(r):
			lower++
		}
	}
	letters := upper + lower
	if letters < 20 {
		return false
	}
	return float64(upper)/float64(letters) > 0.5
}

func hasStructuredMarkers(body string) bool {
	return strings.Contains(body, "• ") ||
		strings.Contains(body, "\n- ") ||
		strings.Contains(body, "1. ") ||
		strings.Contains(body, "\n* ")
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
