package persona

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/docrank/docrank/internal/embedding"
	"github.com/docrank/docrank/internal/textnorm"
)

// Job-description tokens weigh less than persona-category keywords so the
// declared role dominates over task phrasing.
const jobTokenWeight = 0.4

// ErrEmptyInput reports a blank persona or job string.
var ErrEmptyInput = errors.New("persona and job must be non-empty")

// Context is the derived, immutable per-run representation of a persona
// doing a job. All scoring reads it concurrently; nothing mutates it.
type Context struct {
	Persona  string
	Job      string
	Domain   Domain
	Keywords map[string]float64 // lowercase token/phrase -> weight
	Weight   float64            // sum of all keyword weights (normalization cap)

	Embedding []float64 // combined "persona doing job" vector, nil when degraded
	Degraded  bool      // true when the embedding provider was unavailable
}

// Builder turns free-text persona and job strings into a Context.
type Builder struct {
	provider embedding.Provider
	lexicon  *Lexicon
}

// NewBuilder creates a context builder. provider may be nil, in which case
// every built context is degraded (lexical-only scoring).
func NewBuilder(provider embedding.Provider, lexicon *Lexicon) *Builder {
	if lexicon == nil {
		lexicon = DefaultLexicon()
	}
	return &Builder{provider: provider, lexicon: lexicon}
}

// Build validates inputs, classifies the persona domain, assembles the
// weighted keyword set, and embeds "{persona}. Task: {job}". An unavailable
// embedding provider degrades the context instead of failing the build;
// empty inputs fail with ErrEmptyInput before any provider call.
func (b *Builder) Build(ctx context.Context, personaText, job string) (*Context, error) {
	personaText = strings.TrimSpace(personaText)
	job = strings.TrimSpace(job)
	if personaText == "" || job == "" {
		return nil, ErrEmptyInput
	}

	domain := Classify(personaText, b.lexicon)

	keywords := make(map[string]float64)
	for kw, w := range b.lexicon.DomainKeywords(domain) {
		keywords[kw] = w
	}
	if domain != DomainGeneric {
		// General-importance words still matter, below category weight.
		for kw, w := range b.lexicon.GenericKeywords() {
			if _, ok := keywords[kw]; !ok {
				keywords[kw] = w * jobTokenWeight
			}
		}
	}
	for _, tok := range textnorm.Tokenize(job) {
		if len(tok) < 3 {
			continue
		}
		if existing, ok := keywords[tok]; !ok || existing < jobTokenWeight {
			keywords[tok] = jobTokenWeight
		}
	}

	total := 0.0
	for _, w := range keywords {
		total += w
	}

	pc := &Context{
		Persona:  personaText,
		Job:      job,
		Domain:   domain,
		Keywords: keywords,
		Weight:   total,
	}

	if b.provider == nil {
		pc.Degraded = true
		return pc, nil
	}

	combined := fmt.Sprintf("%s. Task: %s", personaText, job)
	vectors, err := b.provider.Embed(ctx, []string{combined})
	if err != nil {
		if errors.Is(err, embedding.ErrUnavailable) {
			pc.Degraded = true
			return pc, nil
		}
		return nil, fmt.Errorf("embed persona context: %w", err)
	}
	if len(vectors) != 1 {
		return nil, fmt.Errorf("embed persona context: got %d vectors", len(vectors))
	}
	pc.Embedding = vectors[0]
	return pc, nil
}
