package textnorm

import (
	"regexp"
	"strings"
)

var tokenRe = regexp.MustCompile(`[a-z0-9]+(?:'[a-z]+)?`)

// Tokenize lowercases text and returns alphanumeric tokens with
// stop words removed.
func Tokenize(text string) []string {
	lower := strings.ToLower(text)
	raw := tokenRe.FindAllString(lower, -1)
	if len(raw) == 0 {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, t := range raw {
		if IsStopWord(t) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// IsStopWord reports whether the token is in the standard stop-word set.
func IsStopWord(token string) bool {
	_, ok := stopwords[token]
	return ok
}

var stopwords = func() map[string]struct{} {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "for",
		"to", "of", "in", "on", "at", "by", "with", "as", "is", "are",
		"was", "were", "be", "been", "being", "it", "this", "that", "these",
		"those", "from", "up", "down", "over", "under", "again", "further",
		"than", "so", "such", "into", "about", "between", "through",
		"during", "before", "after", "above", "below", "out", "off", "own",
		"same", "too", "very", "can", "will", "just", "should", "now",
		"have", "has", "had", "do", "does", "did", "would", "could", "may",
		"might", "must", "i", "you", "he", "she", "we", "they", "me",
		"him", "her", "us", "them", "my", "your", "his", "its", "our",
		"their", "not", "no", "nor", "all", "any", "each", "few", "more",
		"most", "other", "some", "only", "both", "when", "where", "why",
		"how", "what", "which", "who", "whom",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}()
