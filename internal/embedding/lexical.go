package embedding

import (
	"context"
	"hash/fnv"
	"math"

	"github.com/docrank/docrank/internal/textnorm"
)

// DefaultDimension is the vector size of the lexical embedder.
const DefaultDimension = 256

// Lexical is a deterministic, dependency-free embedder: a hashed
// bag-of-words with sublinear term-frequency weighting, L2-normalized.
// It is the built-in fallback when no remote embedding service is
// configured, and doubles as a fixture-friendly provider in tests.
type Lexical struct {
	dim int
}

// NewLexical creates a lexical embedder. A non-positive dimension falls
// back to DefaultDimension.
func NewLexical(dim int) *Lexical {
	if dim <= 0 {
		dim = DefaultDimension
	}
	return &Lexical{dim: dim}
}

// Dimension returns the vector length produced by Embed.
func (l *Lexical) Dimension() int { return l.dim }

// Embed vectorizes each text independently. It never fails: empty or
// stopword-only texts produce the zero vector.
func (l *Lexical) Embed(_ context.Context, texts []string) ([][]float64, error) {
	out := make([][]float64, len(texts))
	for i, text := range texts {
		out[i] = l.embedOne(text)
	}
	return out, nil
}

func (l *Lexical) embedOne(text string) []float64 {
	vec := make([]float64, l.dim)
	tokens := textnorm.Tokenize(text)
	if len(tokens) == 0 {
		return vec
	}

	tf := make(map[uint32]int, len(tokens))
	prev := ""
	for _, tok := range tokens {
		tf[l.bucket(tok)]++
		// Bigrams keep some word order so "employee onboarding" and
		// "onboarding employee forms" do not collapse to one point.
		if prev != "" {
			tf[l.bucket(prev+" "+tok)]++
		}
		prev = tok
	}

	for bucket, count := range tf {
		vec[bucket] = 1 + math.Log(float64(count))
	}

	norm := 0.0
	for _, v := range vec {
		norm += v * v
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

func (l *Lexical) bucket(token string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(token))
	return h.Sum32() % uint32(l.dim)
}
