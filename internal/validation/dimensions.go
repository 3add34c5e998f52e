package validation

import (
	"math"

	"orca-backend/internal/snapshots"
)

// DimensionName identifies one axis of project-wide completeness.
type DimensionName string

const (
	DimensionObjects        DimensionName = "objects"
	DimensionAttributes     DimensionName = "attributes"
	DimensionActions        DimensionName = "actions"
	DimensionRelationships  DimensionName = "relationships"
	DimensionPrioritization DimensionName = "prioritization"
)

// Dimension statuses.
const (
	StatusComplete   = "complete"
	StatusIncomplete = "incomplete"
)

// Fixed per-object targets for dimension completion percentages.
const (
	targetCoreAttributesPerObject = 3
	targetPrimaryActionsPerObject = 1
	targetRelationshipsPerObject  = 2
)

// DimensionScore is the completeness verdict for one dimension.
type DimensionScore struct {
	Total                int     `json:"total"`
	CompletionPercentage float64 `json:"completionPercentage"`
	Status               string  `json:"status"`
}

// AnalyzeDimensions computes per-dimension completion from project-wide
// counts. A dimension is complete only when its percentage reaches 100% of
// its target; the objects dimension requires every object to have a
// definition, and prioritization requires any assignment to exist.
func AnalyzeDimensions(counts snapshots.DimensionCounts) map[DimensionName]DimensionScore {
	objects := counts.Objects

	objectsPct := percentage(counts.ObjectsWithDefinition, objects)
	attributesPct := percentage(counts.CoreAttributes, objects*targetCoreAttributesPerObject)
	actionsPct := percentage(counts.PrimaryActions, objects*targetPrimaryActionsPerObject)
	relationshipsPct := percentage(counts.Relationships, objects*targetRelationshipsPerObject)

	prioritizable := objects + counts.Actions + counts.Attributes
	prioritizationPct := percentage(counts.PrioritizedItems, prioritizable)

	return map[DimensionName]DimensionScore{
		DimensionObjects: {
			Total:                objects,
			CompletionPercentage: objectsPct,
			Status:               completeIf(objects > 0 && counts.ObjectsWithDefinition == objects),
		},
		DimensionAttributes: {
			Total:                counts.Attributes,
			CompletionPercentage: attributesPct,
			Status:               completeIf(attributesPct >= 100),
		},
		DimensionActions: {
			Total:                counts.Actions,
			CompletionPercentage: actionsPct,
			Status:               completeIf(actionsPct >= 100),
		},
		DimensionRelationships: {
			Total:                counts.Relationships,
			CompletionPercentage: relationshipsPct,
			Status:               completeIf(relationshipsPct >= 100),
		},
		DimensionPrioritization: {
			Total:                counts.PrioritizedItems,
			CompletionPercentage: prioritizationPct,
			Status:               completeIf(counts.PrioritizedItems > 0),
		},
	}
}

func percentage(have, target int) float64 {
	if target <= 0 {
		return 0
	}
	return math.Round(float64(have)/float64(target)*1000) / 10
}

func completeIf(complete bool) string {
	if complete {
		return StatusComplete
	}
	return StatusIncomplete
}
