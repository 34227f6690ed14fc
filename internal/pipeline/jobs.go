// Package pipeline runs asynchronous analysis jobs: uploaded documents
// are extracted and analyzed by a bounded worker pool, with job state
// queryable until TTL eviction.
package pipeline

import (
	"sync"
	"time"

	"github.com/docrank/docrank/internal/report"
)

// JobStatus represents the state of an analysis job.
type JobStatus string

const (
	StatusQueued     JobStatus = "queued"
	StatusExtracting JobStatus = "extracting"
	StatusAnalyzing  JobStatus = "analyzing"
	StatusCompleted  JobStatus = "completed"
	StatusFailed     JobStatus = "failed"
)

// File is one uploaded document held until the job runs.
type File struct {
	Name string
	Data []byte
}

// Job tracks the state of a single analysis run.
type Job struct {
	mu sync.Mutex

	ID      string    `json:"job_id"`
	Status  JobStatus `json:"status"`
	Phase   string    `json:"phase"`
	Persona string    `json:"persona"`
	JobText string    `json:"job_to_be_done"`

	Progress Progress `json:"progress"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Internal: not serialized.
	files  []File
	result *report.AnalysisReport
	errors []string
}

// Progress tracks extraction and analysis progress.
type Progress struct {
	TotalDocuments     int      `json:"total_documents"`
	DocumentsExtracted int      `json:"documents_extracted"`
	TotalSections      int      `json:"total_sections"`
	Errors             []string `json:"errors"`
}

// NewJob creates a queued job holding the uploaded files.
func NewJob(persona, jobText string, files []File) *Job {
	now := time.Now()
	return &Job{
		ID:        generateULID(),
		Status:    StatusQueued,
		Phase:     "queued",
		Persona:   persona,
		JobText:   jobText,
		Progress:  Progress{TotalDocuments: len(files)},
		CreatedAt: now,
		UpdatedAt: now,
		files:     files,
	}
}

// SetStatus updates job status atomically.
func (j *Job) SetStatus(status JobStatus, phase string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = status
	j.Phase = phase
	j.UpdatedAt = time.Now()
}

// AddError records an error.
func (j *Job) AddError(err string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.errors = append(j.errors, err)
	j.Progress.Errors = j.errors
	j.UpdatedAt = time.Now()
}

// IncrDocumentsExtracted atomically bumps the extraction counter.
func (j *Job) IncrDocumentsExtracted(sections int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Progress.DocumentsExtracted++
	j.Progress.TotalSections += sections
	j.UpdatedAt = time.Now()
}

// Files returns the uploaded documents.
func (j *Job) Files() []File {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.files
}

// SetResult attaches the completed report and releases the raw uploads.
func (j *Job) SetResult(r *report.AnalysisReport) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.result = r
	j.files = nil
	j.UpdatedAt = time.Now()
}

// Result returns the completed report, nil until the job finishes.
func (j *Job) Result() *report.AnalysisReport {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.result
}

// JobSnapshot is a read-only, JSON-safe copy of job state.
type JobSnapshot struct {
	ID       string    `json:"job_id"`
	Status   JobStatus `json:"status"`
	Phase    string    `json:"phase"`
	Persona  string    `json:"persona"`
	JobText  string    `json:"job_to_be_done"`
	Progress Progress  `json:"progress"`
}

// Snapshot returns a JSON-safe copy of the job state.
func (j *Job) Snapshot() JobSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	errs := j.Progress.Errors
	if errs == nil {
		errs = []string{}
	}
	return JobSnapshot{
		ID:      j.ID,
		Status:  j.Status,
		Phase:   j.Phase,
		Persona: j.Persona,
		JobText: j.JobText,
		Progress: Progress{
			TotalDocuments:     j.Progress.TotalDocuments,
			DocumentsExtracted: j.Progress.DocumentsExtracted,
			TotalSections:      j.Progress.TotalSections,
			Errors:             errs,
		},
	}
}

// JobStore is a thread-safe in-memory job registry with TTL eviction.
type JobStore struct {
	mu   sync.Mutex
	jobs map[string]*Job
	ttl  time.Duration
}

func NewJobStore(ttl time.Duration) *JobStore {
	return &JobStore{
		jobs: make(map[string]*Job),
		ttl:  ttl,
	}
}

func (s *JobStore) Put(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

func (s *JobStore) Get(id string) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[id]
}

// Cleanup removes expired jobs.
func (s *JobStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, job := range s.jobs {
		if now.Sub(job.UpdatedAt) > s.ttl {
			delete(s.jobs, id)
		}
	}
}
