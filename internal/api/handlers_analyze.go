package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/docrank/docrank/internal/analyzer"
	"github.com/docrank/docrank/internal/extract"
	"github.com/docrank/docrank/internal/pipeline"
	"github.com/docrank/docrank/internal/section"
)

// handleAnalyze runs an analysis synchronously and returns the report.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	files, persona, job, ok := s.parseAnalyzeForm(w, r)
	if !ok {
		return
	}

	a := s.analyzer
	topK, ok := optionalIntField(w, r, "top_k")
	if !ok {
		return
	}
	previewWords, ok := optionalIntField(w, r, "max_preview_words")
	if !ok {
		return
	}
	a = a.WithOverrides(topK, previewWords)

	docs, err := s.extractDocs(files)
	if err != nil {
		jsonError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	rep, err := a.Analyze(r.Context(), docs, persona, job)
	if err != nil {
		s.writeAnalyzerError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rep)
}

// handleAnalyzeAsync queues an analysis job and returns a poll URL.
func (s *Server) handleAnalyzeAsync(w http.ResponseWriter, r *http.Request) {
	files, persona, job, ok := s.parseAnalyzeForm(w, r)
	if !ok {
		return
	}

	j := pipeline.NewJob(persona, job, files)
	if err := s.orchestrator.Submit(j); err != nil {
		jsonError(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]any{
		"job_id":   j.ID,
		"status":   j.Status,
		"poll_url": fmt.Sprintf("/api/analyze/%s/status", j.ID),
	})
}

func (s *Server) handleAnalyzeStatus(w http.ResponseWriter, r *http.Request) {
	job := s.orchestrator.GetJob(chi.URLParam(r, "jobID"))
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(job.Snapshot())
}

func (s *Server) handleAnalyzeReport(w http.ResponseWriter, r *http.Request) {
	job := s.orchestrator.GetJob(chi.URLParam(r, "jobID"))
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}
	rep := job.Result()
	if rep == nil {
		snap := job.Snapshot()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]any{
			"error":  "report not ready",
			"status": snap.Status,
			"phase":  snap.Phase,
		})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rep)
}

// parseAnalyzeForm validates the multipart upload shared by the sync and
// async analyze endpoints. It writes the error response itself.
func (s *Server) parseAnalyzeForm(w http.ResponseWriter, r *http.Request) ([]pipeline.File, string, string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes*10+10*1024*1024)

	if err := r.ParseMultipartForm(64 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return nil, "", "", false
	}
	defer r.MultipartForm.RemoveAll()

	persona := strings.TrimSpace(r.FormValue("persona"))
	job := strings.TrimSpace(r.FormValue("job"))
	if persona == "" || job == "" {
		jsonError(w, "persona and job are required", http.StatusBadRequest)
		return nil, "", "", false
	}

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		jsonError(w, "at least one file is required", http.StatusBadRequest)
		return nil, "", "", false
	}

	files := make([]pipeline.File, 0, len(headers))
	for _, fh := range headers {
		filename := sanitizeFilename(fh.Filename)
		if !extract.IsSupportedExtension(filename) {
			jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
			return nil, "", "", false
		}
		f, err := fh.Open()
		if err != nil {
			jsonError(w, fmt.Sprintf("failed to open %s", filename), http.StatusBadRequest)
			return nil, "", "", false
		}
		data, err := io.ReadAll(io.LimitReader(f, s.cfg.MaxUploadBytes+1))
		f.Close()
		if err != nil {
			jsonError(w, fmt.Sprintf("failed to read %s", filename), http.StatusBadRequest)
			return nil, "", "", false
		}
		if int64(len(data)) > s.cfg.MaxUploadBytes {
			jsonError(w, fmt.Sprintf("%s exceeds max size (%d bytes)", filename, s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
			return nil, "", "", false
		}
		files = append(files, pipeline.File{Name: filename, Data: data})
	}
	return files, persona, job, true
}

func (s *Server) extractDocs(files []pipeline.File) ([]section.Document, error) {
	docs := make([]section.Document, 0, len(files))
	for _, f := range files {
		ex, err := extract.ForFile(f.Name)
		if err != nil {
			return nil, err
		}
		if pdfEx, ok := ex.(*extract.PDFExtractor); ok {
			pdfEx.FallbackPdftotext = s.cfg.PDFFallbackPdftotext
		}
		doc, err := ex.Extract(bytes.NewReader(f.Data), f.Name)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *doc)
	}
	return docs, nil
}

func (s *Server) writeAnalyzerError(w http.ResponseWriter, err error) {
	var aerr *analyzer.Error
	code := http.StatusInternalServerError
	kind := analyzer.KindInternal
	if errors.As(err, &aerr) {
		kind = aerr.Kind
		switch aerr.Kind {
		case analyzer.KindInvalidInput:
			code = http.StatusBadRequest
		case analyzer.KindExtraction:
			code = http.StatusUnprocessableEntity
		}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{
		"error": err.Error(),
		"kind":  string(kind),
	})
}

// optionalIntField reads a positive integer form value. Absent fields
// return 0; malformed or non-positive values write a 400 and report
// false.
func optionalIntField(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := strings.TrimSpace(r.FormValue(name))
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		jsonError(w, name+" must be a positive integer", http.StatusBadRequest)
		return 0, false
	}
	return n, true
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
