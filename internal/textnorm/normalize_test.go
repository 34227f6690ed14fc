package textnorm

import (
	"strings"
	"testing"
)

func TestNormalize_HyphenBreaks(t *testing.T) {
	got := Normalize("the onboard- ing process")
	if got != "the onboarding process" {
		t.Errorf("expected hyphen break joined, got %q", got)
	}
}

func TestNormalize_Ligatures(t *testing.T) {
	got := Normalize("eﬃcient workﬂow")
	if got != "efficient workflow" {
		t.Errorf("expected ligatures expanded, got %q", got)
	}
}

func TestNormalize_Whitespace(t *testing.T) {
	got := Normalize("too   many\n\n spaces .Next")
	if got != "too many spaces. Next" {
		t.Errorf("got %q", got)
	}
}

func TestNormalize_DecorativeRuns(t *testing.T) {
	got := Normalize("Title =========== End")
	if strings.Contains(got, "===") {
		t.Errorf("expected repeated run collapsed, got %q", got)
	}
}

func TestNormalize_Empty(t *testing.T) {
	if got := Normalize(""); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
}

func TestSentences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"basic", "First one. Second one. Third!", 3},
		{"no terminal", "only a fragment", 1},
		{"empty", "", 0},
		{"abbrev-free question", "Is it done? Yes. Good", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sentences(tt.in)
			if len(got) != tt.want {
				t.Errorf("expected %d sentences, got %d: %v", tt.want, len(got), got)
			}
		})
	}
}

func TestTruncateWords(t *testing.T) {
	got := TruncateWords("one two three four five", 3)
	if got != "one two three..." {
		t.Errorf("got %q", got)
	}
	got = TruncateWords("one two", 5)
	if got != "one two" {
		t.Errorf("expected untouched text, got %q", got)
	}
	if TruncateWords("anything", 0) != "" {
		t.Error("expected empty for zero budget")
	}
}

func TestTokenize(t *testing.T) {
	got := Tokenize("Streamline the Employee Onboarding process, v2!")
	want := []string{"streamline", "employee", "onboarding", "process", "v2"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}
