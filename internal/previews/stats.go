package previews

import (
	"context"
	"math"

	"orca-backend/internal/snapshots"
)

// ComponentAverages is the per-component mean across a batch. Fixed fields so
// every consumer sees all four components.
type ComponentAverages struct {
	Definition     float64 `json:"definition"`
	CoreAttributes float64 `json:"coreAttributes"`
	PrimaryActions float64 `json:"primaryActions"`
	CRUDCoverage   float64 `json:"crudCoverage"`
}

// ScoreRange is the min/max total score in a batch.
type ScoreRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// CompletionStats aggregates completion scoring across a project.
type CompletionStats struct {
	TotalObjects      int               `json:"totalObjects"`
	AverageScore      float64           `json:"averageScore"`
	GradeDistribution map[string]int    `json:"gradeDistribution"`
	ComponentAverages ComponentAverages `json:"componentAverages"`
	ScoreRange        ScoreRange        `json:"scoreRange"`
}

// CompletionStats computes aggregate statistics for the project's objects,
// optionally filtered by priority phase. Failed batch entries are excluded
// from every aggregate.
func (s *Service) CompletionStats(ctx context.Context, projectID string, phase snapshots.PriorityPhase) (CompletionStats, error) {
	results, err := s.ProjectPreviews(ctx, projectID, phase)
	if err != nil {
		return CompletionStats{}, err
	}
	return aggregateStats(results), nil
}

func aggregateStats(results []ObjectPreviews) CompletionStats {
	stats := CompletionStats{
		GradeDistribution: map[string]int{},
	}

	var (
		scored    int
		totalSum  int
		defSum    int
		coreSum   int
		actionSum int
		crudSum   int
	)
	for _, r := range results {
		if r.Failed() {
			continue
		}
		score := r.CompletionScore
		if scored == 0 {
			stats.ScoreRange.Min = score.TotalScore
			stats.ScoreRange.Max = score.TotalScore
		} else {
			if score.TotalScore < stats.ScoreRange.Min {
				stats.ScoreRange.Min = score.TotalScore
			}
			if score.TotalScore > stats.ScoreRange.Max {
				stats.ScoreRange.Max = score.TotalScore
			}
		}
		scored++
		totalSum += score.TotalScore
		defSum += score.Components.Definition.Score
		coreSum += score.Components.CoreAttributes.Score
		actionSum += score.Components.PrimaryActions.Score
		crudSum += score.Components.CRUDCoverage.Score
		stats.GradeDistribution[score.Grade]++
	}

	stats.TotalObjects = len(results)
	if scored == 0 {
		return stats
	}

	n := float64(scored)
	stats.AverageScore = round1(float64(totalSum) / n)
	stats.ComponentAverages = ComponentAverages{
		Definition:     round1(float64(defSum) / n),
		CoreAttributes: round1(float64(coreSum) / n),
		PrimaryActions: round1(float64(actionSum) / n),
		CRUDCoverage:   round1(float64(crudSum) / n),
	}
	return stats
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
