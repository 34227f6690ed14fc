package pipeline

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/docrank/docrank/internal/analyzer"
	"github.com/docrank/docrank/internal/extract"
	"github.com/docrank/docrank/internal/section"
)

// Worker processes a single analysis job.
type Worker struct {
	analyzer    *analyzer.Analyzer
	log         *slog.Logger
	pdfFallback bool
}

func NewWorker(a *analyzer.Analyzer, log *slog.Logger, pdfFallback bool) *Worker {
	return &Worker{analyzer: a, log: log, pdfFallback: pdfFallback}
}

// Process runs extraction and analysis for a job. A malformed document
// fails the whole job; analysis degradation does not.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID)

	job.SetStatus(StatusExtracting, "extracting documents")
	files := job.Files()
	docs := make([]section.Document, 0, len(files))
	for _, f := range files {
		doc, err := w.extractFile(f)
		if err != nil {
			log.Error("extraction failed", "filename", f.Name, "error", err)
			job.AddError(err.Error())
			job.SetStatus(StatusFailed, "extracting")
			return
		}
		job.IncrDocumentsExtracted(len(doc.Sections))
		docs = append(docs, *doc)
	}
	log.Info("extraction complete", "documents", len(docs))

	job.SetStatus(StatusAnalyzing, "ranking sections")
	rep, err := w.analyzer.Analyze(ctx, docs, job.Persona, job.JobText)
	if err != nil {
		log.Error("analysis failed", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "analyzing")
		return
	}

	job.SetResult(rep)
	job.SetStatus(StatusCompleted, "done")
	log.Info("job complete", "sections", len(rep.ExtractedSections), "degraded", rep.Metadata.DegradedMode)
}

func (w *Worker) extractFile(f File) (*section.Document, error) {
	ex, err := extract.ForFile(f.Name)
	if err != nil {
		return nil, err
	}
	if pdfEx, ok := ex.(*extract.PDFExtractor); ok {
		pdfEx.FallbackPdftotext = w.pdfFallback
	}
	return ex.Extract(bytes.NewReader(f.Data), f.Name)
}
