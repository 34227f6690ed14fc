package textnorm

import (
	"regexp"
	"strings"
)

// Common PDF extraction artifacts.
var (
	hyphenBreakRe  = regexp.MustCompile(`(\w)-\s+(\w)`)
	spacePunctRe   = regexp.MustCompile(`\s+([,.;:!?])`)
	missingSpaceRe = regexp.MustCompile(`([.!?])([A-Z])`)
	whitespaceRe   = regexp.MustCompile(`\s+`)
)

// Ligatures left behind by PDF text extraction.
var ligatures = strings.NewReplacer(
	"ﬀ", "ff",
	"ﬁ", "fi",
	"ﬂ", "fl",
	"ﬃ", "ffi",
	"ﬄ", "ffl",
	"’", "'",
	"‘", "'",
	"“", "\"",
	"”", "\"",
)

// Normalize strips extraction artifacts: dangling hyphenation, ligature
// leftovers, doubled whitespace, spaces swallowed around punctuation.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	text = ligatures.Replace(text)
	text = hyphenBreakRe.ReplaceAllString(text, "$1$2")
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = spacePunctRe.ReplaceAllString(text, "$1")
	text = missingSpaceRe.ReplaceAllString(text, "$1 $2")
	text = collapseRepeats(text)
	return strings.TrimSpace(text)
}

// collapseRepeats shrinks runs of 4+ identical characters (decorative
// header rules like "-----" or "=====") down to two.
func collapseRepeats(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	var last rune = -1
	run := 0
	for _, r := range text {
		if r == last {
			run++
		} else {
			last = r
			run = 1
		}
		if run <= 2 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Sentences does basic sentence splitting on terminal punctuation
// followed by a space.
func Sentences(text string) []string {
	var sentences []string
	var current strings.Builder

	for i, r := range text {
		current.WriteRune(r)
		if (r == '.' || r == '!' || r == '?') && i+1 < len(text) && text[i+1] == ' ' {
			s := strings.TrimSpace(current.String())
			if s != "" {
				sentences = append(sentences, s)
			}
			current.Reset()
		}
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// TruncateWords returns the first maxWords words of text, appending an
// ellipsis when anything was cut.
func TruncateWords(text string, maxWords int) string {
	if maxWords <= 0 {
		return ""
	}
	words := strings.Fields(text)
	if len(words) <= maxWords {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:maxWords], " ") + "..."
}
