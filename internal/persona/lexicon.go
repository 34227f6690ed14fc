package persona

// Lexicon is the process-wide, read-only keyword configuration: per-domain
// weighted keyword lists plus aliases used for classification. Construct it
// once at startup and pass it explicitly; it is never mutated afterwards.
type Lexicon struct {
	aliases  map[Domain][]string
	keywords map[Domain]map[string]float64
	generic  map[string]float64
}

// DomainKeywords returns the weighted keyword set for a domain. Generic
// importance words are returned for DomainGeneric or unknown domains.
func (l *Lexicon) DomainKeywords(d Domain) map[string]float64 {
	if kws, ok := l.keywords[d]; ok {
		return kws
	}
	return l.generic
}

// GenericKeywords returns the small set of general-importance words used
// when no persona category matches.
func (l *Lexicon) GenericKeywords() map[string]float64 {
	return l.generic
}

// DefaultLexicon builds the built-in persona keyword configuration.
func DefaultLexicon() *Lexicon {
	weighted := func(words ...string) map[string]float64 {
		m := make(map[string]float64, len(words))
		for _, w := range words {
			m[w] = 1.0
		}
		return m
	}

	return &Lexicon{
		aliases: map[Domain][]string{
			DomainHR:         {"hr", "human resources", "people operations", "recruiter"},
			DomainStudent:    {"student", "learner", "undergraduate", "graduate"},
			DomainAnalyst:    {"analyst", "analytics"},
			DomainResearcher: {"researcher", "scientist", "phd", "postdoc"},
			DomainConsultant: {"consultant", "advisor", "advisory"},
			DomainDeveloper:  {"developer", "engineer", "programmer"},
			DomainManager:    {"manager", "director", "supervisor", "lead"},
		},
		keywords: map[Domain]map[string]float64{
			DomainHR: weighted(
				"onboarding", "compliance", "forms", "employee", "hiring",
				"recruitment", "benefits", "payroll", "performance", "policies",
				"training", "documentation", "workflow", "process", "staff",
				"personnel", "signature",
			),
			DomainStudent: weighted(
				"study", "exam", "course", "learning", "education", "assignment",
				"grade", "curriculum", "syllabus", "lecture", "tutorial",
				"academic", "knowledge", "concept", "theory", "practical",
				"skill", "understanding",
			),
			DomainAnalyst: weighted(
				"data", "analysis", "trend", "insight", "metric", "report",
				"dashboard", "visualization", "statistics", "model",
				"prediction", "pattern", "investment", "market", "roi", "kpi",
				"forecast",
			),
			DomainResearcher: weighted(
				"research", "methodology", "hypothesis", "experiment",
				"literature", "citation", "dataset", "findings", "results",
				"publication", "peer", "review", "benchmark", "evaluation",
			),
			DomainConsultant: weighted(
				"client", "engagement", "recommendation", "strategy",
				"assessment", "deliverable", "stakeholder", "roadmap",
				"best practice", "benchmark", "proposal", "implementation",
			),
			DomainDeveloper: weighted(
				"code", "programming", "api", "framework", "database",
				"application", "software", "integration", "testing",
				"deployment", "architecture", "implementation", "technical",
			),
			DomainManager: weighted(
				"strategy", "planning", "execution", "team", "leadership",
				"decision", "project", "goal", "objective", "budget",
				"resource", "stakeholder", "coordination", "oversight",
			),
		},
		generic: map[string]float64{
			"summary":        1.0,
			"overview":       1.0,
			"key":            1.0,
			"important":      1.0,
			"result":         1.0,
			"recommendation": 1.0,
		},
	}
}
