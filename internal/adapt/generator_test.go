package adapt

import (
	"context"
	"strings"
	"testing"

	"github.com/docrank/docrank/internal/embedding"
	"github.com/docrank/docrank/internal/persona"
	"github.com/docrank/docrank/internal/ranking"
	"github.com/docrank/docrank/internal/section"
)

func buildContext(t *testing.T, personaText, job string) *persona.Context {
	t.Helper()
	b := persona.NewBuilder(embedding.NewLexical(0), nil)
	pc, err := b.Build(context.Background(), personaText, job)
	if err != nil {
		t.Fatalf("build context: %v", err)
	}
	return pc
}

func rankedWith(heading, body string) ranking.RankedSection {
	return ranking.RankedSection{
		Section: &section.Section{
			Document: "doc.pdf",
			Page:     1,
			Heading:  heading,
			Level:    1,
			Body:     body,
		},
		Rank: 1,
	}
}

func TestAdapt_TitleRewrittenForHRDomain(t *testing.T) {
	g := NewGenerator(nil, 60, 3)
	pc := buildContext(t, "HR Professional", "Streamline employee onboarding")

	a := g.Adapt(rankedWith("New Employee Onboarding", "Complete the forms."), pc)
	if !a.TitleChanged {
		t.Fatal("expected title rewrite for onboarding heading")
	}
	if !strings.Contains(a.Title, "New Employee Onboarding") {
		t.Errorf("adapted title should embed the original heading, got %q", a.Title)
	}
	if a.Title == "New Employee Onboarding" {
		t.Error("adapted title should differ from original")
	}
}

func TestAdapt_UnmatchedTitleRetained(t *testing.T) {
	g := NewGenerator(nil, 60, 3)
	pc := buildContext(t, "HR Professional", "Streamline employee onboarding")

	a := g.Adapt(rankedWith("Colophon", "Typeset notes."), pc)
	if a.TitleChanged {
		t.Error("expected no rewrite for unmatched heading")
	}
	if a.Title != "Colophon" {
		t.Errorf("expected original heading retained, got %q", a.Title)
	}
}

func TestAdapt_RefinedTextBounded(t *testing.T) {
	g := NewGenerator(nil, 20, 3)
	pc := buildContext(t, "Data Analyst", "Review trends")

	body := strings.Repeat("This sentence has exactly six words. ", 30)
	a := g.Adapt(rankedWith("Trends", body), pc)
	if n := len(strings.Fields(a.RefinedText)); n > 21 { // +1 for ellipsis word
		t.Errorf("refined text has %d words, budget 20", n)
	}
	if a.RefinedText == "" {
		t.Error("expected non-empty refined text")
	}
}

func TestAdapt_RefinedTextNormalizesArtifacts(t *testing.T) {
	g := NewGenerator(nil, 40, 3)
	pc := buildContext(t, "Data Analyst", "Review trends")

	a := g.Adapt(rankedWith("Trends", "The work- ﬂow has   doubled  spaces."), pc)
	if strings.Contains(a.RefinedText, "work- ") || strings.Contains(a.RefinedText, "ﬂ") {
		t.Errorf("expected artifacts stripped, got %q", a.RefinedText)
	}
}

func TestAdapt_InsightsMatchedAndDeduplicated(t *testing.T) {
	g := NewGenerator(nil, 60, 3)
	pc := buildContext(t, "HR Professional", "Streamline employee onboarding")

	body := "Every form must be signed. The form process covers each employee and every form revision."
	a := g.Adapt(rankedWith("Forms", body), pc)
	if len(a.Insights) == 0 {
		t.Fatal("expected insights")
	}
	seen := make(map[string]bool)
	for _, in := range a.Insights {
		if seen[in] {
			t.Errorf("duplicate insight %q", in)
		}
		seen[in] = true
	}
	if len(a.Insights) > 3 {
		t.Errorf("expected at most 3 insights, got %d", len(a.Insights))
	}
}

func TestAdapt_GenericFallbackInsight(t *testing.T) {
	g := NewGenerator(nil, 60, 3)
	pc := buildContext(t, "HR Professional", "Streamline employee onboarding")

	a := g.Adapt(rankedWith("Colophon", "Nothing relevant lives in here."), pc)
	if len(a.Insights) != 1 {
		t.Fatalf("expected single fallback insight, got %v", a.Insights)
	}
	if a.Insights[0] != "Review Colophon for relevant details" {
		t.Errorf("unexpected fallback: %q", a.Insights[0])
	}
}

func TestAdapt_Deterministic(t *testing.T) {
	g := NewGenerator(nil, 60, 3)
	pc := buildContext(t, "Student", "Prepare for the final exam")
	r := rankedWith("Core Concepts", "The exam covers each concept with one example per definition.")

	first := g.Adapt(r, pc)
	for i := 0; i < 5; i++ {
		again := g.Adapt(r, pc)
		if first.Title != again.Title || first.RefinedText != again.RefinedText {
			t.Fatal("adapt output differs across runs")
		}
		if len(first.Insights) != len(again.Insights) {
			t.Fatal("insight count differs across runs")
		}
		for j := range first.Insights {
			if first.Insights[j] != again.Insights[j] {
				t.Fatal("insight order differs across runs")
			}
		}
	}
}

func TestPreview_TruncatesAndNormalizes(t *testing.T) {
	g := NewGenerator(nil, 5, 3)
	got := g.Preview("one  two   three four five six seven")
	if got != "one two three four five..." {
		t.Errorf("got %q", got)
	}
}
