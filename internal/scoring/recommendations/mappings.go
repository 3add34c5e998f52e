package recommendations

import "orca-backend/internal/scoring"

// tierRecommendation is the score-band lead recommendation; exactly one is
// always emitted first.
func tierRecommendation(total int) Recommendation {
	switch {
	case total < 60:
		return Recommendation{
			Priority: PriorityHigh,
			Title:    "Close critical completeness gaps",
			Action:   "This object has significant gaps that will impact UI generation quality. Focus on the highest-impact improvements first.",
		}
	case total < 80:
		return Recommendation{
			Priority: PriorityMedium,
			Title:    "Good progress",
			Action:   "A few improvements will significantly enhance preview quality.",
		}
	default:
		return Recommendation{
			Priority: PriorityLow,
			Title:    "Ready for UI generation",
			Action:   "This object is well-prepared for high-quality UI generation.",
		}
	}
}

// warningRecommendations maps each warning type onto its targeted action
// item. Keyed lookups keep the rule set reviewable in one place.
var warningRecommendations = map[scoring.WarningType]Recommendation{
	scoring.WarningMissingDefinition: {
		Priority: PriorityHigh,
		Title:    "Add a definition",
		Action:   "Add a clear, comprehensive definition describing what this object represents and its role in your system.",
	},
	scoring.WarningInsufficientCoreAttributes: {
		Priority: PriorityMedium,
		Title:    "Mark core attributes",
		Action:   "Identify and mark 3-5 key attributes as 'core' - these are the most important pieces of information users need to see about this object.",
	},
	scoring.WarningNoPrimaryActions: {
		Priority: PriorityHigh,
		Title:    "Mark primary actions",
		Action:   "Mark the most common user actions as 'primary' to highlight key functionality in generated interfaces.",
	},
	scoring.WarningNoReadAction: {
		Priority: PriorityMedium,
		Title:    "Add a read action",
		Action:   "Add a read action describing how users can view details about this object (e.g., 'View Profile', 'See Details').",
	},
}

// warningOrder fixes the emission order of warning-derived recommendations to
// match the warning generator's own order.
var warningOrder = []scoring.WarningType{
	scoring.WarningMissingDefinition,
	scoring.WarningInsufficientCoreAttributes,
	scoring.WarningNoPrimaryActions,
	scoring.WarningNoReadAction,
}

// allCRUDTypes is the canonical order used when naming missing CRUD
// operations.
var allCRUDTypes = []string{"create", "read", "update", "delete"}
