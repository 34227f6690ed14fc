// Package report holds the terminal output model of an analysis run and
// the assembler that builds it from ranking and adaptation results.
package report

import (
	"github.com/docrank/docrank/internal/ranking"
	"github.com/docrank/docrank/internal/section"
)

// Metadata summarizes one analysis run.
type Metadata struct {
	Persona          string   `json:"persona"`
	Job              string   `json:"job_to_be_done"`
	InputDocuments   []string `json:"input_documents"`
	TotalDocuments   int      `json:"total_documents"`
	TotalSections    int      `json:"total_sections"`
	TotalTables      int      `json:"total_tables"`
	TopK             int      `json:"top_k"`
	DegradedMode     bool     `json:"degraded_mode"`
	ProcessingTimeMS int64    `json:"processing_time_ms"`
	Timestamp        string   `json:"timestamp"`
}

// ExtractedSection is one ranked section in the report, in rank order.
type ExtractedSection struct {
	Document             string            `json:"document"`
	PageNumber           int               `json:"page_number"`
	OriginalSectionTitle string            `json:"original_section_title"`
	PersonaAdaptedTitle  string            `json:"persona_adapted_title"`
	ImportanceRank       int               `json:"importance_rank"`
	RelevanceScores      ranking.Breakdown `json:"relevance_scores"`
	WordCount            int               `json:"word_count"`
	HasTables            bool              `json:"has_tables"`
	ContentPreview       string            `json:"content_preview"`
}

// TableDetail is the structured preview of a single captured table.
type TableDetail struct {
	Rows       int        `json:"rows"`
	Columns    int        `json:"columns"`
	Headers    []string   `json:"headers,omitempty"`
	SampleRows [][]string `json:"sample_rows,omitempty"`
}

// TableIntegration aggregates the tables captured inside one section.
type TableIntegration struct {
	TableCount   int           `json:"table_count"`
	TotalRows    int           `json:"total_rows"`
	TotalColumns int           `json:"total_columns"`
	TableDetails []TableDetail `json:"table_details"`
}

// SubsectionAnalysis is the deep-dive record for a top-ranked section.
type SubsectionAnalysis struct {
	Document             string            `json:"document"`
	PageNumber           int               `json:"page_number"`
	OriginalSectionTitle string            `json:"original_section_title"`
	PersonaAdaptedTitle  string            `json:"persona_adapted_title"`
	ImportanceRank       int               `json:"importance_rank"`
	RefinedText          string            `json:"refined_text"`
	ActionableInsights   []string          `json:"actionable_insights"`
	TableIntegration     *TableIntegration `json:"table_integration,omitempty"`
}

// AnalysisReport is the complete result of one run. Assembled once,
// never mutated afterwards.
type AnalysisReport struct {
	Metadata           Metadata             `json:"metadata"`
	ExtractedSections  []ExtractedSection   `json:"extracted_sections"`
	SubsectionAnalysis []SubsectionAnalysis `json:"subsection_analysis"`
}

// ExtractedFrom converts one ranked section into its report row.
func ExtractedFrom(r ranking.RankedSection) ExtractedSection {
	return ExtractedSection{
		Document:             r.Section.Document,
		PageNumber:           r.Section.Page,
		OriginalSectionTitle: r.Section.Heading,
		PersonaAdaptedTitle:  r.AdaptedTitle,
		ImportanceRank:       r.Rank,
		RelevanceScores:      r.Scores,
		WordCount:            r.Section.WordCount(),
		HasTables:            r.Section.HasTables(),
		ContentPreview:       r.Preview,
	}
}

// TablesFrom builds the table-integration detail for a section, or nil
// when the section carries no tables.
func TablesFrom(sec *section.Section) *TableIntegration {
	if len(sec.Tables) == 0 {
		return nil
	}
	ti := &TableIntegration{
		TableCount:   len(sec.Tables),
		TableDetails: make([]TableDetail, 0, len(sec.Tables)),
	}
	for _, t := range sec.Tables {
		ti.TotalRows += t.Rows
		ti.TotalColumns += t.Columns
		ti.TableDetails = append(ti.TableDetails, TableDetail{
			Rows:       t.Rows,
			Columns:    t.Columns,
			Headers:    t.Headers,
			SampleRows: t.SampleRows,
		})
	}
	return ti
}
