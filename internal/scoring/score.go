package scoring

import (
	"sort"
	"strings"

	"orca-backend/internal/snapshots"
)

// Component statuses.
const (
	StatusComplete  = "complete"
	StatusExcellent = "excellent"
	StatusGood      = "good"
	StatusPartial   = "partial"
	StatusMinimal   = "minimal"
	StatusMissing   = "missing"
)

// Component is one weighted slice of the completion score.
type Component struct {
	Score  int    `json:"score"`
	Status string `json:"status"`
}

// CRUDComponent is the CRUD-coverage slice; Types lists the distinct CRUD
// types found, sorted, so consumers can name what is missing.
type CRUDComponent struct {
	Score  int      `json:"score"`
	Status string   `json:"status"`
	Types  []string `json:"types"`
}

// Components is the fixed, fully populated score breakdown. Every field is
// always present, so consumers never probe for missing keys.
type Components struct {
	Definition     Component     `json:"definition"`
	CoreAttributes Component     `json:"coreAttributes"`
	PrimaryActions Component     `json:"primaryActions"`
	CRUDCoverage   CRUDComponent `json:"crudCoverage"`
}

// CompletionScore is the weighted completeness verdict for one object.
// TotalScore is always the exact sum of the four component scores.
type CompletionScore struct {
	TotalScore int        `json:"totalScore"`
	Grade      string     `json:"grade"`
	Components Components `json:"components"`
}

// Score computes the completion score for one snapshot. Pure and
// deterministic: the same snapshot always yields the same score.
func Score(cfg Config, snap snapshots.ObjectSnapshot) CompletionScore {
	snap = snap.Normalize()

	components := Components{
		Definition:     scoreDefinition(cfg, snap.Definition),
		CoreAttributes: scoreCoreAttributes(cfg, len(snap.CoreAttributes)),
		PrimaryActions: scorePrimaryActions(cfg, len(snap.PrimaryActions)),
		CRUDCoverage:   scoreCRUDCoverage(cfg, snap.AllActions),
	}

	total := components.Definition.Score +
		components.CoreAttributes.Score +
		components.PrimaryActions.Score +
		components.CRUDCoverage.Score

	return CompletionScore{
		TotalScore: total,
		Grade:      Grade(total),
		Components: components,
	}
}

// Grade maps a total score onto a letter grade.
func Grade(total int) string {
	switch {
	case total >= 90:
		return "A"
	case total >= 80:
		return "B"
	case total >= 70:
		return "C"
	case total >= 60:
		return "D"
	default:
		return "F"
	}
}

func scoreDefinition(cfg Config, definition string) Component {
	length := trimmedLength(definition)
	switch {
	case length >= cfg.DefinitionFullLength:
		return Component{Score: cfg.DefinitionWeight, Status: StatusComplete}
	case length >= cfg.DefinitionPartialLength:
		return Component{Score: cfg.DefinitionWeight / 2, Status: StatusPartial}
	default:
		return Component{Score: 0, Status: StatusMissing}
	}
}

func scoreCoreAttributes(cfg Config, count int) Component {
	switch {
	case count >= 4:
		return Component{Score: cfg.CoreAttributesWeight, Status: StatusExcellent}
	case count >= 2:
		return Component{Score: 20, Status: StatusGood}
	case count >= 1:
		return Component{Score: 10, Status: StatusMinimal}
	default:
		return Component{Score: 0, Status: StatusMissing}
	}
}

func scorePrimaryActions(cfg Config, count int) Component {
	switch {
	case count >= 3:
		return Component{Score: cfg.PrimaryActionsWeight, Status: StatusExcellent}
	case count >= 2:
		return Component{Score: 20, Status: StatusGood}
	case count >= 1:
		return Component{Score: 15, Status: StatusMinimal}
	default:
		return Component{Score: 0, Status: StatusMissing}
	}
}

// scoreCRUDCoverage counts every distinct crud_type value present, "none"
// included, matching the established product behavior.
func scoreCRUDCoverage(cfg Config, actions []snapshots.ActionSnapshot) CRUDComponent {
	seen := make(map[string]bool, 5)
	for _, action := range actions {
		seen[string(action.CRUDType)] = true
	}
	types := make([]string, 0, len(seen))
	for t := range seen {
		types = append(types, t)
	}
	sort.Strings(types)

	raw := len(types) * cfg.CRUDTypePoints
	if len(actions) > 0 {
		raw++
	}
	score := raw
	if score > cfg.CRUDCoverageWeight {
		score = cfg.CRUDCoverageWeight
	}

	status := StatusMissing
	switch {
	case score >= cfg.CRUDCoverageWeight:
		status = StatusComplete
	case score > 0:
		status = StatusPartial
	}

	return CRUDComponent{Score: score, Status: status, Types: types}
}

func trimmedLength(s string) int {
	return len([]rune(strings.TrimSpace(s)))
}
