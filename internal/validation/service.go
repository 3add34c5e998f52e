package validation

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"orca-backend/internal/scoring"
	"orca-backend/internal/scoring/recommendations"
	"orca-backend/internal/snapshots"
)

const lowScoreThreshold = 40

// ProjectRecommendation is an actionable project-level improvement item.
type ProjectRecommendation struct {
	Type        string                   `json:"type"`
	Priority    recommendations.Priority `json:"priority"`
	Title       string                   `json:"title"`
	Description string                   `json:"description"`
	Action      string                   `json:"action"`
}

// RulesSummary reports the thresholds and weights currently in force.
type RulesSummary struct {
	CompletionThresholds struct {
		DefinitionMinimum      int `json:"definitionMinimum"`
		CoreAttributesMinimum  int `json:"coreAttributesMinimum"`
		PrimaryActionsMinimum  int `json:"primaryActionsMinimum"`
		ExportReadinessMinimum int `json:"exportReadinessMinimum"`
	} `json:"completionThresholds"`
	ScoringWeights struct {
		Definition     int `json:"definition"`
		CoreAttributes int `json:"coreAttributes"`
		PrimaryActions int `json:"primaryActions"`
		CRUDCoverage   int `json:"crudCoverage"`
	} `json:"scoringWeights"`
	Configurable bool `json:"configurable"`
}

// ProjectSummary is the full project validation result.
type ProjectSummary struct {
	ProjectID              string                           `json:"projectId"`
	ValidationTimestamp    time.Time                        `json:"validationTimestamp"`
	OverallCompletion      float64                          `json:"overallCompletion"`
	ExportReady            bool                             `json:"exportReady"`
	ExportReadinessDetails ExportReadiness                  `json:"exportReadinessDetails"`
	DimensionScores        map[DimensionName]DimensionScore `json:"dimensionScores"`
	ObjectCount            int                              `json:"objectCount"`
	ObjectValidations      []ObjectValidation               `json:"objectValidations"`
	Recommendations        []ProjectRecommendation          `json:"recommendations"`
	ValidationRules        RulesSummary                     `json:"validationRules"`
}

// ObjectDetails is the per-object validation result with full breakdown.
type ObjectDetails struct {
	ObjectValidation
	CompletionBreakdown scoring.CompletionScore           `json:"completionBreakdown"`
	Warnings            []scoring.Warning                 `json:"warnings"`
	Recommendations     []recommendations.Recommendation `json:"recommendations"`
}

// Service computes project-wide validation over the snapshot assembler
// boundary.
type Service struct {
	Snapshots snapshots.Repo
	Cfg       scoring.Config
}

// ProjectSummary validates every object in the project and aggregates the
// results into dimension scores, recommendations, and an export-readiness
// verdict.
func (s *Service) ProjectSummary(ctx context.Context, projectID string) (ProjectSummary, error) {
	snaps, err := s.Snapshots.ListObjects(ctx, projectID, "")
	if err != nil {
		return ProjectSummary{}, err
	}
	if len(snaps) == 0 {
		return s.emptySummary(projectID), nil
	}

	objectValidations := make([]ObjectValidation, 0, len(snaps))
	totalScore := 0
	for _, snap := range snaps {
		validation := s.validateOne(snap)
		objectValidations = append(objectValidations, validation)
		totalScore += validation.CompletionScore
	}
	overall := math.Round(float64(totalScore)/float64(len(snaps))*10) / 10

	counts, err := s.Snapshots.DimensionCounts(ctx, projectID)
	if err != nil {
		return ProjectSummary{}, err
	}
	dimensions := AnalyzeDimensions(counts)
	readiness := AssessReadiness(overall, dimensions, objectValidations)

	return ProjectSummary{
		ProjectID:              projectID,
		ValidationTimestamp:    time.Now().UTC(),
		OverallCompletion:      overall,
		ExportReady:            readiness.Ready,
		ExportReadinessDetails: readiness,
		DimensionScores:        dimensions,
		ObjectCount:            len(snaps),
		ObjectValidations:      objectValidations,
		Recommendations:        projectRecommendations(objectValidations, dimensions),
		ValidationRules:        s.rulesSummary(),
	}, nil
}

// ObjectDetails validates one object with a complete breakdown. Returns the
// assembler's ErrNotFound unchanged when the object cannot be resolved.
func (s *Service) ObjectDetails(ctx context.Context, projectID, objectID string) (ObjectDetails, error) {
	snap, err := s.Snapshots.GetObject(ctx, projectID, objectID)
	if err != nil {
		return ObjectDetails{}, err
	}

	score := scoring.Score(s.Cfg, snap)
	warnings := scoring.Warnings(s.Cfg, snap)
	return ObjectDetails{
		ObjectValidation:    s.validateOne(snap),
		CompletionBreakdown: score,
		Warnings:            warnings,
		Recommendations:     recommendations.Generate(score, warnings),
	}, nil
}

// Gaps reports missing elements across the project, optionally filtered by
// priority phase.
func (s *Service) Gaps(ctx context.Context, projectID string, phase snapshots.PriorityPhase) (GapReport, error) {
	snaps, err := s.Snapshots.ListObjects(ctx, projectID, phase)
	if err != nil {
		return GapReport{}, err
	}
	return buildGapReport(projectID, phase, snaps, gapThresholds{
		definitionMinimum:     s.Cfg.DefinitionPartialLength,
		coreAttributesMinimum: s.Cfg.CoreAttributesMinimum,
	}), nil
}

func (s *Service) validateOne(snap snapshots.ObjectSnapshot) ObjectValidation {
	score := scoring.Score(s.Cfg, snap)
	warnings := scoring.Warnings(s.Cfg, snap)
	return ObjectValidation{
		ObjectID:        snap.ID,
		ObjectName:      snap.Name,
		CompletionScore: score.TotalScore,
		CompletionGrade: score.Grade,
		WarningsCount:   len(warnings),
		ExportReady:     score.TotalScore >= s.Cfg.ExportReadyScore,
	}
}

func projectRecommendations(objects []ObjectValidation, dimensions map[DimensionName]DimensionScore) []ProjectRecommendation {
	recs := []ProjectRecommendation{}

	lowScoring := 0
	for _, obj := range objects {
		if obj.CompletionScore < lowScoreThreshold {
			lowScoring++
		}
	}
	if float64(lowScoring) > float64(len(objects))*0.3 {
		recs = append(recs, ProjectRecommendation{
			Type:        "objects",
			Priority:    recommendations.PriorityHigh,
			Title:       "Improve Object Definitions",
			Description: fmt.Sprintf("%d objects need better definitions and core attributes", lowScoring),
			Action:      "Focus on completing definitions and marking core attributes",
		})
	}

	for _, name := range dimensionOrder {
		dim := dimensions[name]
		if dim.CompletionPercentage >= 50 {
			continue
		}
		title := titleCase(string(name))
		recs = append(recs, ProjectRecommendation{
			Type:        string(name),
			Priority:    recommendations.PriorityMedium,
			Title:       fmt.Sprintf("Improve %s Coverage", title),
			Description: fmt.Sprintf("%s dimension is only %.1f%% complete", title, dim.CompletionPercentage),
			Action:      fmt.Sprintf("Add more %s to reach minimum viable coverage", name),
		})
	}

	return recs
}

// dimensionOrder fixes recommendation emission order for determinism; map
// iteration order would leak into API responses otherwise.
var dimensionOrder = []DimensionName{
	DimensionObjects,
	DimensionAttributes,
	DimensionActions,
	DimensionRelationships,
	DimensionPrioritization,
}

func (s *Service) emptySummary(projectID string) ProjectSummary {
	summary := ProjectSummary{
		ProjectID:           projectID,
		ValidationTimestamp: time.Now().UTC(),
		OverallCompletion:   0,
		ExportReady:         false,
		ExportReadinessDetails: ExportReadiness{
			Ready:                    false,
			MinCompletionThreshold:   minOverallCompletion,
			MinObjectsReadyThreshold: minObjectsReadyFraction * 100,
			BlockingIssues:           []string{"No objects defined in project"},
		},
		DimensionScores:   map[DimensionName]DimensionScore{},
		ObjectCount:       0,
		ObjectValidations: []ObjectValidation{},
		Recommendations: []ProjectRecommendation{{
			Type:        "project",
			Priority:    recommendations.PriorityHigh,
			Title:       "Add Objects to Project",
			Description: "Project has no objects defined",
			Action:      "Start by adding your first domain object",
		}},
		ValidationRules: s.rulesSummary(),
	}
	return summary
}

func (s *Service) rulesSummary() RulesSummary {
	var rules RulesSummary
	rules.CompletionThresholds.DefinitionMinimum = s.Cfg.DefinitionPartialLength
	rules.CompletionThresholds.CoreAttributesMinimum = s.Cfg.CoreAttributesMinimum
	rules.CompletionThresholds.PrimaryActionsMinimum = 1
	rules.CompletionThresholds.ExportReadinessMinimum = s.Cfg.ExportReadyScore
	rules.ScoringWeights.Definition = s.Cfg.DefinitionWeight
	rules.ScoringWeights.CoreAttributes = s.Cfg.CoreAttributesWeight
	rules.ScoringWeights.PrimaryActions = s.Cfg.PrimaryActionsWeight
	rules.ScoringWeights.CRUDCoverage = s.Cfg.CRUDCoverageWeight
	rules.Configurable = true
	return rules
}

func trimmedRuneLength(s string) int {
	return len([]rune(strings.TrimSpace(s)))
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
