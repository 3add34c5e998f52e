package validation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"orca-backend/internal/scoring"
	"orca-backend/internal/snapshots"
)

func strptr(s string) *string { return &s }

func completeObject(id, name string) snapshots.ObjectSnapshot {
	return snapshots.ObjectSnapshot{
		ID:         id,
		Name:       name,
		Definition: "A fully described domain object used in project planning.",
		AllAttributes: []snapshots.AttributeSnapshot{
			{Name: "Title", DataType: snapshots.DataTypeText, Value: strptr("x"), IsCore: true},
			{Name: "Status", DataType: snapshots.DataTypeText, IsCore: true},
			{Name: "Owner", DataType: snapshots.DataTypeReference, IsCore: true},
			{Name: "Due Date", DataType: snapshots.DataTypeDate, IsCore: true},
		},
		AllActions: []snapshots.ActionSnapshot{
			{Description: "Create " + name, CRUDType: snapshots.CRUDCreate, IsPrimary: true},
			{Description: "View " + name, CRUDType: snapshots.CRUDRead, IsPrimary: true},
			{Description: "Update " + name, CRUDType: snapshots.CRUDUpdate, IsPrimary: true},
			{Description: "Delete " + name, CRUDType: snapshots.CRUDDelete},
		},
		RelationshipCount: 2,
		PriorityPhase:     snapshots.PhaseNow,
	}
}

func newTestService(repo snapshots.Repo) *Service {
	return &Service{Snapshots: repo, Cfg: scoring.DefaultConfig()}
}

func TestProjectSummaryHealthyProject(t *testing.T) {
	repo := snapshots.NewMemoryRepo()
	repo.PutObject("proj-1", completeObject("obj-1", "Task"))
	repo.PutObject("proj-1", completeObject("obj-2", "Comment"))
	repo.SetProjectTotals("proj-1", 4, 3)
	svc := newTestService(repo)

	summary, err := svc.ProjectSummary(context.Background(), "proj-1")
	if err != nil {
		t.Fatalf("ProjectSummary: %v", err)
	}

	if summary.ObjectCount != 2 {
		t.Errorf("ObjectCount = %d", summary.ObjectCount)
	}
	if summary.OverallCompletion != 100 {
		t.Errorf("OverallCompletion = %.1f, want 100", summary.OverallCompletion)
	}
	if !summary.ExportReady {
		t.Errorf("ExportReady = false: %+v", summary.ExportReadinessDetails)
	}
	if len(summary.DimensionScores) != 5 {
		t.Errorf("DimensionScores has %d entries, want 5", len(summary.DimensionScores))
	}
	if summary.ValidationTimestamp.IsZero() {
		t.Error("ValidationTimestamp not set")
	}
	if summary.ValidationRules.ScoringWeights.Definition != 20 {
		t.Errorf("rules weights = %+v", summary.ValidationRules.ScoringWeights)
	}
	// Object validations follow list order (by name).
	if summary.ObjectValidations[0].ObjectName != "Comment" {
		t.Errorf("first validation = %q", summary.ObjectValidations[0].ObjectName)
	}
	if summary.ObjectValidations[0].CompletionGrade != "A" {
		t.Errorf("grade = %q", summary.ObjectValidations[0].CompletionGrade)
	}
}

func TestProjectSummaryEmptyProject(t *testing.T) {
	svc := newTestService(snapshots.NewMemoryRepo())

	summary, err := svc.ProjectSummary(context.Background(), "proj-empty")
	if err != nil {
		t.Fatalf("ProjectSummary: %v", err)
	}

	if summary.ExportReady || summary.OverallCompletion != 0 {
		t.Errorf("summary = %+v", summary)
	}
	if len(summary.ExportReadinessDetails.BlockingIssues) != 1 ||
		summary.ExportReadinessDetails.BlockingIssues[0] != "No objects defined in project" {
		t.Errorf("BlockingIssues = %v", summary.ExportReadinessDetails.BlockingIssues)
	}
	if len(summary.Recommendations) != 1 || summary.Recommendations[0].Title != "Add Objects to Project" {
		t.Errorf("Recommendations = %+v", summary.Recommendations)
	}
	if summary.ObjectValidations == nil {
		t.Error("ObjectValidations is nil, want empty slice")
	}
}

func TestProjectSummaryLowScoringRecommendation(t *testing.T) {
	repo := snapshots.NewMemoryRepo()
	// Two near-empty objects out of three is over the 30% trigger.
	repo.PutObject("proj-1", completeObject("obj-1", "Task"))
	repo.PutObject("proj-1", snapshots.ObjectSnapshot{ID: "obj-2", Name: "Stub A"})
	repo.PutObject("proj-1", snapshots.ObjectSnapshot{ID: "obj-3", Name: "Stub B"})
	svc := newTestService(repo)

	summary, err := svc.ProjectSummary(context.Background(), "proj-1")
	if err != nil {
		t.Fatalf("ProjectSummary: %v", err)
	}

	if len(summary.Recommendations) == 0 {
		t.Fatal("no recommendations")
	}
	first := summary.Recommendations[0]
	if first.Title != "Improve Object Definitions" {
		t.Errorf("first recommendation = %+v", first)
	}
	if !strings.Contains(first.Description, "2 objects") {
		t.Errorf("Description = %q, want low-scoring count", first.Description)
	}
}

func TestProjectSummaryDimensionRecommendationsOrdered(t *testing.T) {
	repo := snapshots.NewMemoryRepo()
	repo.PutObject("proj-1", snapshots.ObjectSnapshot{ID: "obj-1", Name: "Stub"})
	svc := newTestService(repo)

	summary, err := svc.ProjectSummary(context.Background(), "proj-1")
	if err != nil {
		t.Fatalf("ProjectSummary: %v", err)
	}

	// Every dimension is under 50%, so after the low-scoring lead the
	// dimension recommendations follow in canonical order.
	var dimRecs []ProjectRecommendation
	for _, rec := range summary.Recommendations {
		if rec.Type != "objects" || rec.Title != "Improve Object Definitions" {
			dimRecs = append(dimRecs, rec)
		}
	}
	wantTypes := []string{"objects", "attributes", "actions", "relationships", "prioritization"}
	if len(dimRecs) != len(wantTypes) {
		t.Fatalf("dimension recs = %+v, want %d entries", dimRecs, len(wantTypes))
	}
	for i, typ := range wantTypes {
		if dimRecs[i].Type != typ {
			t.Errorf("rec[%d].Type = %q, want %q", i, dimRecs[i].Type, typ)
		}
	}
	if dimRecs[1].Title != "Improve Attributes Coverage" {
		t.Errorf("attributes rec title = %q", dimRecs[1].Title)
	}
}

func TestObjectDetails(t *testing.T) {
	repo := snapshots.NewMemoryRepo()
	repo.PutObject("proj-1", snapshots.ObjectSnapshot{ID: "obj-1", Name: "Stub"})
	svc := newTestService(repo)

	details, err := svc.ObjectDetails(context.Background(), "proj-1", "obj-1")
	if err != nil {
		t.Fatalf("ObjectDetails: %v", err)
	}
	if details.ObjectID != "obj-1" || details.CompletionScore != 0 {
		t.Errorf("details = %+v", details.ObjectValidation)
	}
	if details.ExportReady {
		t.Error("empty object marked export ready")
	}
	if details.CompletionBreakdown.Grade != "F" {
		t.Errorf("breakdown grade = %q", details.CompletionBreakdown.Grade)
	}
	if details.WarningsCount != len(details.Warnings) {
		t.Errorf("WarningsCount = %d, warnings = %d", details.WarningsCount, len(details.Warnings))
	}
	if len(details.Recommendations) == 0 {
		t.Error("no recommendations")
	}
}

func TestObjectDetailsNotFound(t *testing.T) {
	svc := newTestService(snapshots.NewMemoryRepo())

	_, err := svc.ObjectDetails(context.Background(), "proj-1", "obj-x")
	if !errors.Is(err, snapshots.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestGapsUsesPhaseFilter(t *testing.T) {
	repo := snapshots.NewMemoryRepo()
	repo.PutObject("proj-1", snapshots.ObjectSnapshot{ID: "obj-1", Name: "Stub", PriorityPhase: snapshots.PhaseLater})
	repo.PutObject("proj-1", completeObject("obj-2", "Task"))
	svc := newTestService(repo)

	report, err := svc.Gaps(context.Background(), "proj-1", snapshots.PhaseLater)
	if err != nil {
		t.Fatalf("Gaps: %v", err)
	}
	if report.PriorityFilter != "later" {
		t.Errorf("PriorityFilter = %q", report.PriorityFilter)
	}
	if report.Summary.MissingDefinitions != 1 {
		t.Errorf("Summary = %+v, want only the later-phase stub counted", report.Summary)
	}
}

func TestExportReadyThresholdPerObject(t *testing.T) {
	svc := newTestService(snapshots.NewMemoryRepo())

	// 60 is the default per-object readiness floor.
	snap := completeObject("obj-1", "Task")
	snap.AllActions = snap.AllActions[:1]
	snap.PrimaryActions = nil // rederive: one primary action
	snap.CoreAttributes = nil

	validation := svc.validateOne(snap)
	if validation.CompletionScore < 60 && validation.ExportReady {
		t.Errorf("ExportReady = true at score %d", validation.CompletionScore)
	}
	if validation.CompletionScore >= 60 && !validation.ExportReady {
		t.Errorf("ExportReady = false at score %d", validation.CompletionScore)
	}
}
