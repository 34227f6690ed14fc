// Command docrank runs a persona-driven relevance analysis over local
// documents and writes the report as JSON, without an HTTP server.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/docrank/docrank/internal/analyzer"
	"github.com/docrank/docrank/internal/config"
	"github.com/docrank/docrank/internal/embedding"
	"github.com/docrank/docrank/internal/extract"
	"github.com/docrank/docrank/internal/ranking"
	"github.com/docrank/docrank/internal/section"
)

func main() {
	var (
		inputDir = flag.String("input", "", "directory of documents to analyze")
		output   = flag.String("output", "report.json", "output report path (- for stdout)")
		persona  = flag.String("persona", "", "user persona, e.g. \"HR Professional\"")
		job      = flag.String("job", "", "job to be done, e.g. \"Streamline onboarding\"")
		topK     = flag.Int("top-k", 5, "sections receiving deep analysis")
		quiet    = flag.Bool("quiet", false, "suppress progress logging")
	)
	flag.Parse()

	if *inputDir == "" || *persona == "" || *job == "" {
		fmt.Fprintln(os.Stderr, "usage: docrank -input DIR -persona PERSONA -job JOB [-output FILE] [-top-k N]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *quiet {
		level = slog.LevelError
	}
	log := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := config.Load()

	docs, err := extractDir(*inputDir, cfg.PDFFallbackPdftotext, log)
	if err != nil {
		log.Error("extraction failed", "error", err)
		os.Exit(1)
	}
	if len(docs) == 0 {
		log.Error("no supported documents found", "dir", *inputDir)
		os.Exit(1)
	}

	var provider embedding.Provider
	if cfg.EmbedServiceURL != "" {
		provider = embedding.NewClient(cfg.EmbedServiceURL, cfg.EmbedAPIKey, nil)
	} else {
		provider = embedding.NewLexical(cfg.EmbedDimension)
	}

	a, err := analyzer.New(analyzer.Config{
		Weights: ranking.Weights{
			Semantic: cfg.WeightSemantic,
			Keyword:  cfg.WeightKeyword,
			Heading:  cfg.WeightHeading,
			Quality:  cfg.WeightQuality,
		},
		TopK:            *topK,
		MaxPreviewWords: cfg.MaxPreviewWords,
		MaxInsights:     cfg.MaxInsights,
	}, provider, log)
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	rep, err := a.Analyze(context.Background(), docs, *persona, *job)
	if err != nil {
		log.Error("analysis failed", "error", err, "kind", analyzer.KindOf(err))
		os.Exit(1)
	}

	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		log.Error("encode report", "error", err)
		os.Exit(1)
	}
	if *output == "-" {
		fmt.Println(string(data))
		return
	}
	if err := os.WriteFile(*output, append(data, '\n'), 0o644); err != nil {
		log.Error("write report", "error", err)
		os.Exit(1)
	}
	log.Info("report written", "path", *output,
		"sections", len(rep.ExtractedSections), "degraded", rep.Metadata.DegradedMode)
}

// extractDir extracts every supported file directly inside dir, in
// stable name order.
func extractDir(dir string, pdfFallback bool, log *slog.Logger) ([]section.Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && extract.IsSupportedExtension(e.Name()) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	docs := make([]section.Document, 0, len(names))
	for _, name := range names {
		ex, err := extract.ForFile(name)
		if err != nil {
			return nil, err
		}
		if pdfEx, ok := ex.(*extract.PDFExtractor); ok {
			pdfEx.FallbackPdftotext = pdfFallback
		}
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		doc, err := ex.Extract(f, name)
		f.Close()
		if err != nil {
			return nil, err
		}
		log.Info("extracted", "file", name, "sections", len(doc.Sections))
		docs = append(docs, *doc)
	}
	return docs, nil
}
