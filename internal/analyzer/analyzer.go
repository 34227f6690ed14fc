// Package analyzer wires persona context building, ranking, adaptive
// rewriting, and report assembly into the single Analyze entry point
// used by the HTTP handlers and the CLI.
package analyzer

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/docrank/docrank/internal/adapt"
	"github.com/docrank/docrank/internal/embedding"
	"github.com/docrank/docrank/internal/persona"
	"github.com/docrank/docrank/internal/ranking"
	"github.com/docrank/docrank/internal/report"
	"github.com/docrank/docrank/internal/section"
)

// Config tunes one analyzer instance.
type Config struct {
	Weights         ranking.Weights
	TopK            int // sections receiving subsection analysis (default 5)
	MaxPreviewWords int // content preview and refined text word budget (default 60)
	MaxInsights     int // actionable insights per subsection (default 3)
	Workers         int // concurrent scoring goroutines
	MaxEmbedWords   int // body words included in section embeddings
}

// DefaultConfig returns the standard analyzer configuration.
func DefaultConfig() Config {
	return Config{
		Weights:         ranking.DefaultWeights(),
		TopK:            5,
		MaxPreviewWords: 60,
		MaxInsights:     3,
	}
}

// Analyzer runs persona-driven relevance analysis over extracted
// documents. Safe for concurrent use.
type Analyzer struct {
	cfg       Config
	builder   *persona.Builder
	engine    *ranking.Engine
	generator *adapt.Generator
	assembler *report.Assembler
	log       *slog.Logger
	now       func() time.Time
}

// New creates an analyzer. provider may be nil; every run then degrades
// to lexical-only scoring.
func New(cfg Config, provider embedding.Provider, log *slog.Logger) (*Analyzer, error) {
	if err := cfg.Weights.Validate(); err != nil {
		return nil, invalidInput("scoring weights: " + err.Error())
	}
	if cfg.TopK <= 0 {
		cfg.TopK = 5
	}
	if cfg.MaxPreviewWords <= 0 {
		cfg.MaxPreviewWords = 60
	}
	if cfg.MaxInsights <= 0 {
		cfg.MaxInsights = 3
	}
	if log == nil {
		log = slog.Default()
	}
	return &Analyzer{
		cfg:     cfg,
		builder: persona.NewBuilder(provider, nil),
		engine: ranking.NewEngine(provider, cfg.Weights, ranking.Options{
			Workers:       cfg.Workers,
			MaxEmbedWords: cfg.MaxEmbedWords,
		}, log),
		generator: adapt.NewGenerator(nil, cfg.MaxPreviewWords, cfg.MaxInsights),
		assembler: report.NewAssembler(cfg.TopK),
		log:       log,
		now:       time.Now,
	}, nil
}

// WithOverrides returns a derived analyzer with per-request limits.
// Non-positive values keep the receiver's configuration. The receiver
// is not modified.
func (a *Analyzer) WithOverrides(topK, maxPreviewWords int) *Analyzer {
	if topK <= 0 && maxPreviewWords <= 0 {
		return a
	}
	derived := *a
	if topK > 0 {
		derived.cfg.TopK = topK
		derived.assembler = report.NewAssembler(topK)
	}
	if maxPreviewWords > 0 {
		derived.cfg.MaxPreviewWords = maxPreviewWords
		derived.generator = adapt.NewGenerator(nil, maxPreviewWords, derived.cfg.MaxInsights)
	}
	return &derived
}

// Analyze ranks every section of docs against the persona and job and
// returns the assembled report. The caller receives either a complete
// report or a single structured error, never both.
func (a *Analyzer) Analyze(ctx context.Context, docs []section.Document, personaText, job string) (*report.AnalysisReport, error) {
	start := a.now()

	if len(docs) == 0 {
		return nil, invalidInput("no documents provided")
	}

	pc, err := a.builder.Build(ctx, personaText, job)
	if err != nil {
		if errors.Is(err, persona.ErrEmptyInput) {
			return nil, invalidInput(err.Error())
		}
		return nil, internalErr("build persona context", err)
	}

	var sections []*section.Section
	meta := report.Metadata{
		Persona:        pc.Persona,
		Job:            pc.Job,
		InputDocuments: make([]string, 0, len(docs)),
		TotalDocuments: len(docs),
		TopK:           a.cfg.TopK,
	}
	for _, doc := range docs {
		meta.InputDocuments = append(meta.InputDocuments, doc.Filename)
		meta.TotalSections += len(doc.Sections)
		meta.TotalTables += doc.TableCount()
		sections = append(sections, doc.Sections...)
	}

	ranked, degraded := a.engine.Rank(ctx, sections, pc)
	meta.DegradedMode = degraded

	extracted := make([]report.ExtractedSection, len(ranked))
	var subsections []report.SubsectionAnalysis
	for i := range ranked {
		adapted := a.generator.Adapt(ranked[i], pc)
		ranked[i].AdaptedTitle = adapted.Title
		ranked[i].TitleAdapted = adapted.TitleChanged
		ranked[i].Preview = a.generator.Preview(ranked[i].Section.Body)
		extracted[i] = report.ExtractedFrom(ranked[i])

		if ranked[i].Rank <= a.cfg.TopK {
			subsections = append(subsections, report.SubsectionAnalysis{
				Document:             ranked[i].Section.Document,
				PageNumber:           ranked[i].Section.Page,
				OriginalSectionTitle: ranked[i].Section.Heading,
				PersonaAdaptedTitle:  adapted.Title,
				ImportanceRank:       ranked[i].Rank,
				RefinedText:          adapted.RefinedText,
				ActionableInsights:   adapted.Insights,
				TableIntegration:     report.TablesFrom(ranked[i].Section),
			})
		}
	}

	meta.ProcessingTimeMS = a.now().Sub(start).Milliseconds()
	meta.Timestamp = a.now().UTC().Format(time.RFC3339)

	rep, err := a.assembler.Assemble(extracted, subsections, meta)
	if err != nil {
		return nil, internalErr("assemble report", err)
	}

	a.log.Info("analysis complete",
		"documents", meta.TotalDocuments,
		"sections", meta.TotalSections,
		"degraded", degraded,
		"elapsed_ms", meta.ProcessingTimeMS)
	return rep, nil
}
