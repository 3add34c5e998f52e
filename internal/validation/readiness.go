package validation

import (
	"fmt"
	"math"
)

// Readiness thresholds for development handoff.
const (
	minOverallCompletion     = 60.0
	minObjectsReadyFraction  = 0.8
	minCriticalDimensionPct  = 50.0
	severeObjectScore        = 30
	blockingDimensionPct     = 30.0
	severeObjectsFractionMax = 0.5
)

// criticalDimensions must each reach the minimum completion percentage before
// a project can be exported.
var criticalDimensions = []DimensionName{
	DimensionObjects,
	DimensionAttributes,
	DimensionActions,
}

// ObjectValidation is the per-object completeness summary used in project
// aggregation.
type ObjectValidation struct {
	ObjectID        string `json:"objectId"`
	ObjectName      string `json:"objectName"`
	CompletionScore int    `json:"completionScore"`
	CompletionGrade string `json:"completionGrade"`
	WarningsCount   int    `json:"warningsCount"`
	ExportReady     bool   `json:"exportReady"`
}

// ExportReadiness is the project-level handoff verdict.
type ExportReadiness struct {
	Ready                      bool     `json:"ready"`
	OverallCompletion          float64  `json:"overallCompletion"`
	MinCompletionThreshold     float64  `json:"minCompletionThreshold"`
	ObjectsReady               int      `json:"objectsReady"`
	ObjectsReadyPercentage     float64  `json:"objectsReadyPercentage"`
	MinObjectsReadyThreshold   float64  `json:"minObjectsReadyThreshold"`
	CriticalDimensionsComplete bool     `json:"criticalDimensionsComplete"`
	BlockingIssues             []string `json:"blockingIssues"`
}

// AssessReadiness combines overall completion, per-object readiness, and
// critical-dimension coverage into a single ready/not-ready verdict. Ready is
// true only when all three conditions hold at once.
func AssessReadiness(overallCompletion float64, dimensions map[DimensionName]DimensionScore, objects []ObjectValidation) ExportReadiness {
	objectsReady := 0
	for _, obj := range objects {
		if obj.ExportReady {
			objectsReady++
		}
	}
	readyFraction := 0.0
	if len(objects) > 0 {
		readyFraction = float64(objectsReady) / float64(len(objects))
	}

	criticalComplete := true
	for _, dim := range criticalDimensions {
		if dimensions[dim].CompletionPercentage < minCriticalDimensionPct {
			criticalComplete = false
			break
		}
	}

	ready := overallCompletion >= minOverallCompletion &&
		readyFraction >= minObjectsReadyFraction &&
		criticalComplete

	return ExportReadiness{
		Ready:                      ready,
		OverallCompletion:          overallCompletion,
		MinCompletionThreshold:     minOverallCompletion,
		ObjectsReady:               objectsReady,
		ObjectsReadyPercentage:     math.Round(readyFraction*1000) / 10,
		MinObjectsReadyThreshold:   minObjectsReadyFraction * 100,
		CriticalDimensionsComplete: criticalComplete,
		BlockingIssues:             blockingIssues(dimensions, objects),
	}
}

// blockingIssues collects a human-readable entry per failing condition
// category; several can co-occur.
func blockingIssues(dimensions map[DimensionName]DimensionScore, objects []ObjectValidation) []string {
	issues := []string{}

	if dimensions[DimensionObjects].CompletionPercentage < blockingDimensionPct {
		issues = append(issues, "Too many objects lack proper definitions")
	}
	if dimensions[DimensionActions].CompletionPercentage < blockingDimensionPct {
		issues = append(issues, "Insufficient primary actions defined")
	}

	severe := 0
	for _, obj := range objects {
		if obj.CompletionScore < severeObjectScore {
			severe++
		}
	}
	if len(objects) > 0 && float64(severe) > float64(len(objects))*severeObjectsFractionMax {
		issues = append(issues, "More than 50% of objects are severely incomplete")
	}

	ready := 0
	for _, obj := range objects {
		if obj.ExportReady {
			ready++
		}
	}
	if len(objects) > 0 && float64(ready)/float64(len(objects)) < minObjectsReadyFraction {
		issues = append(issues, fmt.Sprintf("Only %d of %d objects are ready for export (need %.0f%%)",
			ready, len(objects), minObjectsReadyFraction*100))
	}

	return issues
}
