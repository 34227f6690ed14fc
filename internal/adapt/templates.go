package adapt

import "github.com/docrank/docrank/internal/persona"

// titleRule rewrites a heading when one of its topic keywords appears in
// the original heading text. Template contains a single %s for the
// original heading.
type titleRule struct {
	topics   []string
	template string
}

// insightRule emits an imperative insight when its trigger keyword
// appears in the section text.
type insightRule struct {
	trigger string
	insight string
}

// Templates is the process-wide, read-only phrase-template configuration
// for persona-adaptive rewriting. Build it once at startup and pass it
// explicitly; it is never mutated afterwards.
type Templates struct {
	titles   map[persona.Domain][]titleRule
	insights map[persona.Domain][]insightRule
}

// DefaultTemplates builds the built-in phrase-template tables.
func DefaultTemplates() *Templates {
	return &Templates{
		titles: map[persona.Domain][]titleRule{
			persona.DomainHR: {
				{topics: []string{"onboarding", "setup", "orientation"}, template: "Streamlined Onboarding Workflow: %s"},
				{topics: []string{"form", "document", "signature"}, template: "Digital Form Management: %s"},
				{topics: []string{"policy", "policies", "compliance"}, template: "Compliance-Ready Guide: %s"},
				{topics: []string{"benefit", "payroll"}, template: "Employee Lifecycle Reference: %s"},
			},
			persona.DomainStudent: {
				{topics: []string{"exam", "test", "assessment"}, template: "Exam Preparation Focus: %s"},
				{topics: []string{"concept", "theory", "introduction", "overview"}, template: "Key Concepts to Study: %s"},
				{topics: []string{"example", "exercise", "practice"}, template: "Practice Material: %s"},
			},
			persona.DomainAnalyst: {
				{topics: []string{"trend", "market", "growth"}, template: "Market Trend Insights: %s"},
				{topics: []string{"data", "metric", "statistic", "result"}, template: "Data-Driven View: %s"},
				{topics: []string{"investment", "revenue", "financial"}, template: "Investment Analysis: %s"},
			},
			persona.DomainResearcher: {
				{topics: []string{"method", "methodology", "approach"}, template: "Methodology Review: %s"},
				{topics: []string{"result", "finding", "evaluation"}, template: "Findings Summary: %s"},
				{topics: []string{"related", "literature", "background"}, template: "Literature Context: %s"},
			},
			persona.DomainConsultant: {
				{topics: []string{"recommendation", "strategy", "roadmap"}, template: "Strategic Recommendations: %s"},
				{topics: []string{"process", "implementation", "workflow"}, template: "Implementation Playbook: %s"},
			},
			persona.DomainDeveloper: {
				{topics: []string{"api", "integration", "interface"}, template: "Integration Reference: %s"},
				{topics: []string{"architecture", "design", "implementation"}, template: "Technical Design Notes: %s"},
				{topics: []string{"deployment", "configuration", "setup"}, template: "Deployment Guide: %s"},
			},
			persona.DomainManager: {
				{topics: []string{"strategy", "plan", "planning"}, template: "Strategic Planning View: %s"},
				{topics: []string{"budget", "resource", "cost"}, template: "Resource Allocation: %s"},
				{topics: []string{"team", "organization"}, template: "Team Leadership Brief: %s"},
			},
		},
		insights: map[persona.Domain][]insightRule{
			persona.DomainHR: {
				{trigger: "form", insight: "Implement digital form templates with e-signature support"},
				{trigger: "onboarding", insight: "Build an onboarding checklist covering every required document"},
				{trigger: "process", insight: "Identify workflow bottlenecks and automation opportunities"},
				{trigger: "employee", insight: "Review employee-facing steps for clarity and adoption"},
				{trigger: "compliance", insight: "Verify data collection satisfies privacy regulations"},
			},
			persona.DomainStudent: {
				{trigger: "exam", insight: "Create focused study notes highlighting key concepts"},
				{trigger: "concept", insight: "Break complex concepts into smaller learning units"},
				{trigger: "example", insight: "Work through the examples before attempting exercises"},
				{trigger: "definition", insight: "Memorize the definitions introduced in this section"},
			},
			persona.DomainAnalyst: {
				{trigger: "data", insight: "Build dashboards tracking the key indicators mentioned here"},
				{trigger: "trend", insight: "Use the trend figures as a baseline for forecasting"},
				{trigger: "metric", insight: "Establish baseline metrics for comparative analysis"},
				{trigger: "table", insight: "Extract the tabular data for automated processing"},
			},
			persona.DomainResearcher: {
				{trigger: "method", insight: "Compare this methodology against your experimental design"},
				{trigger: "result", insight: "Cross-check reported results against the cited datasets"},
				{trigger: "citation", insight: "Follow the citations for primary-source verification"},
			},
			persona.DomainConsultant: {
				{trigger: "recommendation", insight: "Map the recommendations onto the client roadmap"},
				{trigger: "cost", insight: "Quantify cost implications before presenting options"},
				{trigger: "process", insight: "Benchmark the described process against industry practice"},
			},
			persona.DomainDeveloper: {
				{trigger: "api", insight: "Prototype against the documented interface early"},
				{trigger: "configuration", insight: "Capture the configuration steps as reproducible scripts"},
				{trigger: "architecture", insight: "Validate the architecture against current system constraints"},
			},
			persona.DomainManager: {
				{trigger: "budget", insight: "Flag budget line items that need stakeholder sign-off"},
				{trigger: "team", insight: "Assign owners for each responsibility listed here"},
				{trigger: "plan", insight: "Fold these milestones into the project plan"},
			},
		},
	}
}
