package validation

import (
	"fmt"

	"orca-backend/internal/snapshots"
)

// GapItem points at one object with a specific missing element.
type GapItem struct {
	ObjectID       string `json:"objectId"`
	ObjectName     string `json:"objectName"`
	Issue          string `json:"issue"`
	Recommendation string `json:"recommendation"`
}

// GapCategories buckets missing elements across the project.
type GapCategories struct {
	MissingDefinitions     []GapItem `json:"missingDefinitions"`
	InsufficientAttributes []GapItem `json:"insufficientAttributes"`
	MissingActions         []GapItem `json:"missingActions"`
	IsolatedObjects        []GapItem `json:"isolatedObjects"`
}

// GapSummary counts the entries per category.
type GapSummary struct {
	MissingDefinitions     int `json:"missingDefinitions"`
	InsufficientAttributes int `json:"insufficientAttributes"`
	MissingActions         int `json:"missingActions"`
	IsolatedObjects        int `json:"isolatedObjects"`
}

// GapReport is the project-wide gap analysis.
type GapReport struct {
	ProjectID      string        `json:"projectId"`
	PriorityFilter string        `json:"priorityFilter,omitempty"`
	Summary        GapSummary    `json:"gapSummary"`
	Gaps           GapCategories `json:"gaps"`
	TotalGaps      int           `json:"totalGaps"`
}

func buildGapReport(projectID string, phase snapshots.PriorityPhase, snaps []snapshots.ObjectSnapshot, cfg gapThresholds) GapReport {
	report := GapReport{
		ProjectID:      projectID,
		PriorityFilter: string(phase),
		Gaps: GapCategories{
			MissingDefinitions:     []GapItem{},
			InsufficientAttributes: []GapItem{},
			MissingActions:         []GapItem{},
			IsolatedObjects:        []GapItem{},
		},
	}

	for _, snap := range snaps {
		snap = snap.Normalize()

		if trimmedRuneLength(snap.Definition) < cfg.definitionMinimum {
			report.Gaps.MissingDefinitions = append(report.Gaps.MissingDefinitions, GapItem{
				ObjectID:       snap.ID,
				ObjectName:     snap.Name,
				Issue:          "Definition missing or too short",
				Recommendation: "Add clear description of object purpose",
			})
		}
		if len(snap.CoreAttributes) < cfg.coreAttributesMinimum {
			report.Gaps.InsufficientAttributes = append(report.Gaps.InsufficientAttributes, GapItem{
				ObjectID:       snap.ID,
				ObjectName:     snap.Name,
				Issue:          fmt.Sprintf("Only %d core attributes marked", len(snap.CoreAttributes)),
				Recommendation: "Mark 3-5 key attributes as core",
			})
		}
		if len(snap.PrimaryActions) == 0 {
			report.Gaps.MissingActions = append(report.Gaps.MissingActions, GapItem{
				ObjectID:       snap.ID,
				ObjectName:     snap.Name,
				Issue:          "No primary actions defined",
				Recommendation: "Define key user actions for this object",
			})
		}
		if snap.RelationshipCount == 0 {
			report.Gaps.IsolatedObjects = append(report.Gaps.IsolatedObjects, GapItem{
				ObjectID:       snap.ID,
				ObjectName:     snap.Name,
				Issue:          "Object has no relationships",
				Recommendation: "Define how this object relates to others",
			})
		}
	}

	report.Summary = GapSummary{
		MissingDefinitions:     len(report.Gaps.MissingDefinitions),
		InsufficientAttributes: len(report.Gaps.InsufficientAttributes),
		MissingActions:         len(report.Gaps.MissingActions),
		IsolatedObjects:        len(report.Gaps.IsolatedObjects),
	}
	report.TotalGaps = report.Summary.MissingDefinitions +
		report.Summary.InsufficientAttributes +
		report.Summary.MissingActions +
		report.Summary.IsolatedObjects
	return report
}

type gapThresholds struct {
	definitionMinimum     int
	coreAttributesMinimum int
}
