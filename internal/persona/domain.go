package persona

import "strings"

// Domain is the closed classification of a persona, used for keyword
// weighting and template lookup. Unmatched personas map to DomainGeneric.
type Domain int

const (
	DomainGeneric Domain = iota
	DomainHR
	DomainStudent
	DomainAnalyst
	DomainResearcher
	DomainConsultant
	DomainDeveloper
	DomainManager
)

var domainNames = map[Domain]string{
	DomainGeneric:    "generic",
	DomainHR:         "hr",
	DomainStudent:    "student",
	DomainAnalyst:    "analyst",
	DomainResearcher: "researcher",
	DomainConsultant: "consultant",
	DomainDeveloper:  "developer",
	DomainManager:    "manager",
}

func (d Domain) String() string {
	if name, ok := domainNames[d]; ok {
		return name
	}
	return "generic"
}

// Classify picks the domain whose alias or keyword set best matches the
// persona string. Matching is case-insensitive token/substring overlap.
// Ties resolve to the lower-numbered domain so classification stays
// deterministic; no match at all yields DomainGeneric.
func Classify(personaText string, lex *Lexicon) Domain {
	lower := strings.ToLower(personaText)

	best := DomainGeneric
	bestScore := 0
	for _, d := range orderedDomains {
		score := 0
		for _, alias := range lex.aliases[d] {
			if strings.Contains(lower, alias) {
				score += 3
			}
		}
		for kw := range lex.keywords[d] {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore {
			best = d
			bestScore = score
		}
	}
	return best
}

var orderedDomains = []Domain{
	DomainHR,
	DomainStudent,
	DomainAnalyst,
	DomainResearcher,
	DomainConsultant,
	DomainDeveloper,
	DomainManager,
}
