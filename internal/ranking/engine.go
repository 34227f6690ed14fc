package ranking

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/docrank/docrank/internal/embedding"
	"github.com/docrank/docrank/internal/persona"
	"github.com/docrank/docrank/internal/section"
)

// RankedSection pairs a section with its score breakdown and assigned
// rank (1 = most relevant). AdaptedTitle and Preview are filled in by the
// adaptive text generator after ranking.
type RankedSection struct {
	Section *section.Section
	Scores  Breakdown
	Rank    int

	AdaptedTitle string
	TitleAdapted bool
	Preview      string
}

// Two totals closer than this are considered tied and fall through to the
// secondary keys, avoiding floating-point order instability.
const tieEpsilon = 1e-9

// Engine orchestrates scoring across all sections and produces a totally
// ordered ranking with deterministic tie-breaking.
type Engine struct {
	provider      embedding.Provider
	weights       Weights
	workers       int
	maxEmbedWords int
	log           *slog.Logger
}

// Options tune the engine. Zero values fall back to defaults.
type Options struct {
	Workers       int // concurrent scoring goroutines (default 8)
	MaxEmbedWords int // body words included in the section embedding (default 120)
}

// NewEngine creates a ranking engine. provider may be nil: every run then
// scores without semantic similarity (degraded mode).
func NewEngine(provider embedding.Provider, weights Weights, opts Options, log *slog.Logger) *Engine {
	if opts.Workers <= 0 {
		opts.Workers = 8
	}
	if opts.MaxEmbedWords <= 0 {
		opts.MaxEmbedWords = 120
	}
	if log == nil {
		log = slog.Default()
	}
	return &Engine{
		provider:      provider,
		weights:       weights,
		workers:       opts.Workers,
		maxEmbedWords: opts.MaxEmbedWords,
		log:           log,
	}
}

// Rank scores every section against the context, sorts descending by
// total score with deterministic tie-breaking, and assigns contiguous
// ranks 1..N. The ranking is total: nothing is filtered, truncation to
// top-K is the reporting layer's concern. The returned flag reports
// whether the run degraded to lexical-only scoring.
func (e *Engine) Rank(ctx context.Context, sections []*section.Section, pc *persona.Context) ([]RankedSection, bool) {
	if len(sections) == 0 {
		return []RankedSection{}, pc.Degraded
	}

	vectors, degraded := e.embedSections(ctx, sections, pc)

	weights := e.weights
	if degraded {
		weights = e.weights.WithoutSemantic()
	}

	// Scoring is embarrassingly parallel: each call reads only the shared
	// context and its own section. Results land at fixed indexes, so no
	// locking is needed and the output order is deterministic.
	ranked := make([]RankedSection, len(sections))
	var wg sync.WaitGroup
	sem := make(chan struct{}, e.workers)
	for i, sec := range sections {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, sec *section.Section) {
			defer wg.Done()
			defer func() { <-sem }()
			var vec []float64
			if vectors != nil {
				vec = vectors[i]
			}
			ranked[i] = RankedSection{
				Section: sec,
				Scores:  Score(sec, pc, vec, weights),
			}
		}(i, sec)
	}
	wg.Wait()

	// Join barrier reached: sort and assign ranks sequentially.
	order := make([]int, len(ranked))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		ra, rb := ranked[order[a]].Scores, ranked[order[b]].Scores
		if math.Abs(ra.Total-rb.Total) > tieEpsilon {
			return ra.Total > rb.Total
		}
		if math.Abs(ra.Semantic-rb.Semantic) > tieEpsilon {
			return ra.Semantic > rb.Semantic
		}
		// Earlier content wins: original input position is unique.
		return order[a] < order[b]
	})

	out := make([]RankedSection, len(order))
	for rank, idx := range order {
		out[rank] = ranked[idx]
		out[rank].Rank = rank + 1
	}
	return out, degraded
}

// embedSections batches every section text into one provider call.
// Any provider failure degrades the run to lexical-only scoring rather
// than aborting it.
func (e *Engine) embedSections(ctx context.Context, sections []*section.Section, pc *persona.Context) ([][]float64, bool) {
	if pc.Degraded || e.provider == nil || len(pc.Embedding) == 0 {
		return nil, true
	}

	texts := make([]string, len(sections))
	for i, sec := range sections {
		texts[i] = e.embedText(sec)
	}
	vectors, err := e.provider.Embed(ctx, texts)
	if err != nil || len(vectors) != len(sections) {
		e.log.Warn("section embedding failed, degrading to lexical scoring", "error", err)
		return nil, true
	}
	return vectors, false
}

// embedText bounds embedding cost to the heading plus the first few
// body words.
func (e *Engine) embedText(sec *section.Section) string {
	words := strings.Fields(sec.Body)
	if len(words) > e.maxEmbedWords {
		words = words[:e.maxEmbedWords]
	}
	body := strings.Join(words, " ")
	if sec.Heading == "" {
		return body
	}
	return sec.Heading + "\n" + body
}
