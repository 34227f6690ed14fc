package pipeline

import (
	"testing"
	"time"

	"github.com/docrank/docrank/internal/report"
)

func TestNewJob_Defaults(t *testing.T) {
	files := []File{{Name: "a.pdf", Data: []byte("x")}, {Name: "b.md", Data: []byte("y")}}
	job := NewJob("HR Professional", "Streamline onboarding", files)

	if job.ID == "" || len(job.ID) != 26 {
		t.Errorf("expected 26-char job id, got %q", job.ID)
	}
	if job.Status != StatusQueued || job.Phase != "queued" {
		t.Errorf("expected queued job, got %s/%s", job.Status, job.Phase)
	}
	if job.Progress.TotalDocuments != 2 {
		t.Errorf("expected 2 total documents, got %d", job.Progress.TotalDocuments)
	}
	if len(job.Files()) != 2 {
		t.Errorf("expected files retained until completion")
	}
}

func TestJob_StateTransitions(t *testing.T) {
	job := NewJob("p", "j", nil)

	transitions := []struct {
		status JobStatus
		phase  string
	}{
		{StatusExtracting, "extracting documents"},
		{StatusAnalyzing, "ranking sections"},
		{StatusCompleted, "done"},
	}

	for _, tr := range transitions {
		before := job.UpdatedAt
		// Small sleep to ensure time difference is detectable.
		time.Sleep(time.Millisecond)
		job.SetStatus(tr.status, tr.phase)

		if job.Status != tr.status {
			t.Errorf("expected status %q, got %q", tr.status, job.Status)
		}
		if job.Phase != tr.phase {
			t.Errorf("expected phase %q, got %q", tr.phase, job.Phase)
		}
		if !job.UpdatedAt.After(before) {
			t.Errorf("expected UpdatedAt to advance after SetStatus(%q)", tr.status)
		}
	}
}

func TestJob_AddError(t *testing.T) {
	job := NewJob("p", "j", nil)
	job.AddError("extract a.pdf failed")
	job.AddError("extract b.pdf failed")

	snap := job.Snapshot()
	if len(snap.Progress.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(snap.Progress.Errors))
	}
	if snap.Progress.Errors[0] != "extract a.pdf failed" {
		t.Errorf("expected first error preserved, got %q", snap.Progress.Errors[0])
	}
}

func TestJob_IncrDocumentsExtracted(t *testing.T) {
	job := NewJob("p", "j", nil)
	job.IncrDocumentsExtracted(4)
	job.IncrDocumentsExtracted(7)

	snap := job.Snapshot()
	if snap.Progress.DocumentsExtracted != 2 {
		t.Errorf("expected 2 documents extracted, got %d", snap.Progress.DocumentsExtracted)
	}
	if snap.Progress.TotalSections != 11 {
		t.Errorf("expected 11 total sections, got %d", snap.Progress.TotalSections)
	}
}

func TestJob_SetResultReleasesFiles(t *testing.T) {
	job := NewJob("p", "j", []File{{Name: "a.txt", Data: []byte("payload")}})
	if job.Result() != nil {
		t.Fatal("expected nil result before completion")
	}

	rep := &report.AnalysisReport{}
	job.SetResult(rep)

	if job.Result() != rep {
		t.Error("expected attached report")
	}
	if job.Files() != nil {
		t.Error("expected uploads released after completion")
	}
}

func TestJob_SnapshotErrorsNotNil(t *testing.T) {
	// Snapshot should always return non-nil errors slice.
	job := NewJob("p", "j", nil)
	snap := job.Snapshot()
	if snap.Progress.Errors == nil {
		t.Error("expected non-nil errors slice in snapshot")
	}
	if len(snap.Progress.Errors) != 0 {
		t.Errorf("expected empty errors, got %d", len(snap.Progress.Errors))
	}
}

func TestJobStore_PutGet(t *testing.T) {
	store := NewJobStore(time.Hour)
	job := NewJob("p", "j", nil)
	store.Put(job)

	got := store.Get(job.ID)
	if got == nil {
		t.Fatal("expected to get job back")
	}
	if got.ID != job.ID {
		t.Errorf("expected ID %q, got %q", job.ID, got.ID)
	}
}

func TestJobStore_GetMissing(t *testing.T) {
	store := NewJobStore(time.Hour)
	if store.Get("nonexistent") != nil {
		t.Error("expected nil for missing job")
	}
}

func TestJobStore_TTLCleanup(t *testing.T) {
	store := NewJobStore(50 * time.Millisecond)

	expired := NewJob("p", "j", nil)
	store.Put(expired)

	// Wait for the TTL to pass.
	time.Sleep(100 * time.Millisecond)

	fresh := NewJob("p", "j", nil)
	store.Put(fresh)

	store.Cleanup()

	if store.Get(expired.ID) != nil {
		t.Error("expected expired job to be cleaned up")
	}
	if store.Get(fresh.ID) == nil {
		t.Error("expected fresh job to survive cleanup")
	}
}

func TestJobStore_CleanupEmpty(t *testing.T) {
	store := NewJobStore(time.Hour)
	// Should not panic on empty store.
	store.Cleanup()
}

func TestGenerateULID_UniqueAndOrdered(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := generateULID()
		if len(id) != 26 {
			t.Fatalf("expected 26-char ulid, got %q", id)
		}
		if seen[id] {
			t.Fatalf("duplicate ulid %q", id)
		}
		seen[id] = true
	}
}
