package embedding

import (
	"testing"
	"time"
)

func TestStats_EmptySnapshot(t *testing.T) {
	s := NewStats(time.Hour)
	snap := s.Snapshot()
	if snap.Count != 0 || snap.AvgMs != 0 {
		t.Errorf("expected zero snapshot, got %+v", snap)
	}
}

func TestStats_Aggregates(t *testing.T) {
	s := NewStats(time.Hour)
	for _, ms := range []int64{10, 20, 30, 40, 50} {
		s.Record(ms)
	}
	snap := s.Snapshot()
	if snap.Count != 5 {
		t.Fatalf("count = %d", snap.Count)
	}
	if snap.MinMs != 10 || snap.MaxMs != 50 {
		t.Errorf("min/max = %d/%d", snap.MinMs, snap.MaxMs)
	}
	if snap.AvgMs != 30 {
		t.Errorf("avg = %v", snap.AvgMs)
	}
	if snap.P50Ms != 30 {
		t.Errorf("p50 = %v", snap.P50Ms)
	}
	if snap.P95Ms < 40 || snap.P95Ms > 50 {
		t.Errorf("p95 = %v", snap.P95Ms)
	}
	if snap.P99Ms < snap.P95Ms || snap.P99Ms > 50 {
		t.Errorf("p99 = %v", snap.P99Ms)
	}
}

func TestStats_NegativeDurationClamped(t *testing.T) {
	s := NewStats(time.Hour)
	s.Record(-5)
	snap := s.Snapshot()
	if snap.MinMs != 0 {
		t.Errorf("expected negative duration clamped to 0, got %d", snap.MinMs)
	}
}

func TestStats_WindowEviction(t *testing.T) {
	s := NewStats(30 * time.Millisecond)
	s.Record(100)
	time.Sleep(60 * time.Millisecond)
	s.Record(200)

	snap := s.Snapshot()
	if snap.Count != 1 {
		t.Fatalf("expected 1 sample after eviction, got %d", snap.Count)
	}
	if snap.MinMs != 200 {
		t.Errorf("expected only recent sample, got min %d", snap.MinMs)
	}
}
