package recommendations

import (
	"fmt"
	"strings"

	"orca-backend/internal/scoring"
)

// crudGapScore is the CRUD-coverage component score below which a missing
// CRUD-operations recommendation is considered.
const crudGapScore = 15

// Generate turns a completion score and warning set into an ordered list of
// action items. The first entry is always the score-tier recommendation;
// warning-derived entries follow in the warning generator's fixed order; a
// missing-CRUD entry closes the list when coverage is thin. Deterministic for
// identical input.
func Generate(score scoring.CompletionScore, warnings []scoring.Warning) []Recommendation {
	out := make([]Recommendation, 0, len(warnings)+2)
	out = append(out, tierRecommendation(score.TotalScore))

	present := make(map[scoring.WarningType]bool, len(warnings))
	for _, w := range warnings {
		present[w.Type] = true
	}
	for _, typ := range warningOrder {
		if !present[typ] {
			continue
		}
		out = append(out, warningRecommendations[typ])
	}

	if score.Components.CRUDCoverage.Score < crudGapScore {
		if rec, ok := missingCRUDRecommendation(score.Components.CRUDCoverage.Types); ok {
			out = append(out, rec)
		}
	}

	return out
}

// missingCRUDRecommendation names the CRUD operations absent from the
// object's actions. Nothing is emitted when all four are covered.
func missingCRUDRecommendation(presentTypes []string) (Recommendation, bool) {
	covered := make(map[string]bool, len(presentTypes))
	for _, t := range presentTypes {
		covered[strings.ToLower(strings.TrimSpace(t))] = true
	}

	missing := make([]string, 0, len(allCRUDTypes))
	for _, t := range allCRUDTypes {
		if !covered[t] {
			missing = append(missing, strings.ToUpper(t))
		}
	}
	if len(missing) == 0 {
		return Recommendation{}, false
	}

	return Recommendation{
		Priority: PriorityMedium,
		Title:    "Cover missing CRUD operations",
		Action:   fmt.Sprintf("Consider adding actions for missing CRUD operations: %s.", strings.Join(missing, ", ")),
	}, true
}
