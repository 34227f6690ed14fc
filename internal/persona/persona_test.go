package persona

import (
	"context"
	"errors"
	"testing"

	"github.com/docrank/docrank/internal/embedding"
)

func TestClassify(t *testing.T) {
	lex := DefaultLexicon()
	tests := []struct {
		persona string
		want    Domain
	}{
		{"HR Professional", DomainHR},
		{"Human Resources generalist", DomainHR},
		{"Undergraduate student preparing for finals", DomainStudent},
		{"Senior Data Analyst", DomainAnalyst},
		{"PhD researcher in biology", DomainResearcher},
		{"Management consultant", DomainConsultant},
		{"Backend developer", DomainDeveloper},
		{"Project manager coordinating teams", DomainManager},
		{"Astronaut", DomainGeneric},
		{"", DomainGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.persona, func(t *testing.T) {
			got := Classify(tt.persona, lex)
			if got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.persona, got, tt.want)
			}
		})
	}
}

func TestBuild_EmptyInputs(t *testing.T) {
	b := NewBuilder(embedding.NewLexical(0), nil)
	for _, pair := range [][2]string{{"", "job"}, {"persona", ""}, {"  ", "job"}, {"", ""}} {
		if _, err := b.Build(context.Background(), pair[0], pair[1]); !errors.Is(err, ErrEmptyInput) {
			t.Errorf("Build(%q, %q): expected ErrEmptyInput, got %v", pair[0], pair[1], err)
		}
	}
}

// countingProvider fails every call and records whether it was reached.
type countingProvider struct {
	calls int
}

func (p *countingProvider) Embed(_ context.Context, texts []string) ([][]float64, error) {
	p.calls++
	return nil, embedding.ErrUnavailable
}

func TestBuild_EmptyInputSkipsProvider(t *testing.T) {
	p := &countingProvider{}
	b := NewBuilder(p, nil)
	if _, err := b.Build(context.Background(), "", "job"); err == nil {
		t.Fatal("expected error")
	}
	if p.calls != 0 {
		t.Errorf("provider called %d times before validation", p.calls)
	}
}

func TestBuild_DegradesWhenProviderUnavailable(t *testing.T) {
	b := NewBuilder(&countingProvider{}, nil)
	pc, err := b.Build(context.Background(), "HR Professional", "Streamline onboarding")
	if err != nil {
		t.Fatalf("expected degraded context, got error: %v", err)
	}
	if !pc.Degraded {
		t.Error("expected Degraded=true")
	}
	if pc.Embedding != nil {
		t.Error("expected nil embedding in degraded mode")
	}
}

func TestBuild_KeywordWeights(t *testing.T) {
	b := NewBuilder(embedding.NewLexical(0), nil)
	pc, err := b.Build(context.Background(), "HR Professional", "Streamline employee onboarding paperwork")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if pc.Domain != DomainHR {
		t.Fatalf("expected HR domain, got %v", pc.Domain)
	}
	// Category keyword carries full weight.
	if w := pc.Keywords["onboarding"]; w != 1.0 {
		t.Errorf("onboarding weight = %v, want 1.0", w)
	}
	// Job-only token carries the smaller weight.
	if w := pc.Keywords["paperwork"]; w != jobTokenWeight {
		t.Errorf("paperwork weight = %v, want %v", w, jobTokenWeight)
	}
	if pc.Weight <= 0 {
		t.Error("expected positive total weight")
	}
	if pc.Embedding == nil {
		t.Error("expected embedding vector")
	}
}

func TestBuild_GenericFallbackKeywords(t *testing.T) {
	b := NewBuilder(embedding.NewLexical(0), nil)
	pc, err := b.Build(context.Background(), "Astronaut", "Explore space habitats")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if pc.Domain != DomainGeneric {
		t.Fatalf("expected generic domain, got %v", pc.Domain)
	}
	if _, ok := pc.Keywords["summary"]; !ok {
		t.Error("expected generic importance words present")
	}
}

func TestBuild_Deterministic(t *testing.T) {
	b := NewBuilder(embedding.NewLexical(0), nil)
	a, _ := b.Build(context.Background(), "Data Analyst", "Analyze revenue trends")
	c, _ := b.Build(context.Background(), "Data Analyst", "Analyze revenue trends")
	if a.Domain != c.Domain || len(a.Keywords) != len(c.Keywords) || a.Weight != c.Weight {
		t.Error("contexts differ for identical inputs")
	}
	for k, v := range a.Keywords {
		if c.Keywords[k] != v {
			t.Errorf("keyword %q weight differs", k)
		}
	}
}
