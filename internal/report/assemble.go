package report

import "fmt"

// Assembler merges ranking output and per-section deep analysis into a
// final report. It performs no scoring or rewriting of its own.
type Assembler struct {
	topK int
}

// NewAssembler creates an assembler. topK bounds how many subsection
// analyses a report may carry; non-positive values default to 5.
func NewAssembler(topK int) *Assembler {
	if topK <= 0 {
		topK = 5
	}
	return &Assembler{topK: topK}
}

// TopK reports how many leading ranks qualify for subsection analysis.
func (a *Assembler) TopK() int { return a.topK }

// Assemble builds the report. ranked must already be in rank order.
// Subsections must reference distinct ranks within the leading topK, in
// ascending rank order; anything else is a caller bug and returns an
// error rather than a partial report.
func (a *Assembler) Assemble(ranked []ExtractedSection, subsections []SubsectionAnalysis, meta Metadata) (*AnalysisReport, error) {
	for i, es := range ranked {
		if es.ImportanceRank != i+1 {
			return nil, fmt.Errorf("assemble: rank %d at index %d, want %d", es.ImportanceRank, i, i+1)
		}
	}

	limit := a.topK
	if limit > len(ranked) {
		limit = len(ranked)
	}
	if len(subsections) > limit {
		return nil, fmt.Errorf("assemble: %d subsections exceed top-%d window", len(subsections), limit)
	}
	prev := 0
	for _, sub := range subsections {
		if sub.ImportanceRank <= prev {
			return nil, fmt.Errorf("assemble: subsection rank %d out of order or duplicated", sub.ImportanceRank)
		}
		if sub.ImportanceRank > limit {
			return nil, fmt.Errorf("assemble: subsection rank %d outside top-%d window", sub.ImportanceRank, limit)
		}
		prev = sub.ImportanceRank
	}

	if ranked == nil {
		ranked = []ExtractedSection{}
	}
	if subsections == nil {
		subsections = []SubsectionAnalysis{}
	}
	return &AnalysisReport{
		Metadata:           meta,
		ExtractedSections:  ranked,
		SubsectionAnalysis: subsections,
	}, nil
}
