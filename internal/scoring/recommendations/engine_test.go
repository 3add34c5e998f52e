package recommendations

import (
	"strings"
	"testing"

	"orca-backend/internal/scoring"
)

func scoreWithTotal(total, crudScore int, crudTypes []string) scoring.CompletionScore {
	return scoring.CompletionScore{
		TotalScore: total,
		Grade:      scoring.Grade(total),
		Components: scoring.Components{
			CRUDCoverage: scoring.CRUDComponent{Score: crudScore, Types: crudTypes},
		},
	}
}

func TestGenerateTierRecommendationFirst(t *testing.T) {
	cases := []struct {
		total    int
		priority Priority
		title    string
	}{
		{0, PriorityHigh, "Close critical completeness gaps"},
		{59, PriorityHigh, "Close critical completeness gaps"},
		{60, PriorityMedium, "Good progress"},
		{79, PriorityMedium, "Good progress"},
		{80, PriorityLow, "Ready for UI generation"},
		{100, PriorityLow, "Ready for UI generation"},
	}
	for _, tc := range cases {
		got := Generate(scoreWithTotal(tc.total, 25, []string{"create", "read", "update", "delete"}), nil)
		if len(got) == 0 {
			t.Fatalf("total %d: no recommendations", tc.total)
		}
		if got[0].Priority != tc.priority || got[0].Title != tc.title {
			t.Errorf("total %d: first rec = %q/%q, want %q/%q",
				tc.total, got[0].Priority, got[0].Title, tc.priority, tc.title)
		}
	}
}

func TestGenerateWarningRecommendationsFollowWarningOrder(t *testing.T) {
	// Warnings deliberately out of canonical order; output order is fixed.
	warnings := []scoring.Warning{
		{Type: scoring.WarningNoPrimaryActions},
		{Type: scoring.WarningMissingDefinition},
	}
	got := Generate(scoreWithTotal(40, 25, []string{"create", "read", "update", "delete"}), warnings)

	if len(got) != 3 {
		t.Fatalf("got %d recommendations, want 3: %+v", len(got), got)
	}
	if got[1].Title != "Add a definition" {
		t.Errorf("rec[1].Title = %q, want definition first", got[1].Title)
	}
	if got[2].Title != "Mark primary actions" {
		t.Errorf("rec[2].Title = %q, want primary actions second", got[2].Title)
	}
}

func TestGenerateMissingCRUDRecommendation(t *testing.T) {
	got := Generate(scoreWithTotal(50, 13, []string{"create", "read"}), nil)

	last := got[len(got)-1]
	if last.Title != "Cover missing CRUD operations" {
		t.Fatalf("last rec = %+v, want missing CRUD recommendation", last)
	}
	if last.Priority != PriorityMedium {
		t.Errorf("Priority = %q, want medium", last.Priority)
	}
	if !strings.Contains(last.Action, "UPDATE, DELETE") {
		t.Errorf("Action = %q, want missing types named in order", last.Action)
	}
	if strings.Contains(last.Action, "CREATE") || strings.Contains(last.Action, "READ") {
		t.Errorf("Action = %q, names covered types", last.Action)
	}
}

func TestGenerateNoCRUDRecommendationAtThreshold(t *testing.T) {
	// Score exactly at the gap threshold does not trigger the CRUD entry.
	got := Generate(scoreWithTotal(50, crudGapScore, []string{"create", "read"}), nil)
	for _, rec := range got {
		if rec.Title == "Cover missing CRUD operations" {
			t.Fatalf("unexpected CRUD recommendation at threshold score: %+v", got)
		}
	}
}

func TestGenerateNoCRUDRecommendationWhenAllCovered(t *testing.T) {
	// Low component score but nothing actually missing (e.g. cap edge cases).
	got := Generate(scoreWithTotal(50, 10, []string{"create", "delete", "read", "update"}), nil)
	for _, rec := range got {
		if rec.Title == "Cover missing CRUD operations" {
			t.Fatalf("unexpected CRUD recommendation with full coverage: %+v", got)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	warnings := []scoring.Warning{
		{Type: scoring.WarningMissingDefinition},
		{Type: scoring.WarningInsufficientCoreAttributes},
		{Type: scoring.WarningNoPrimaryActions},
		{Type: scoring.WarningNoReadAction},
	}
	score := scoreWithTotal(20, 7, []string{"none"})

	first := Generate(score, warnings)
	for i := 0; i < 5; i++ {
		again := Generate(score, warnings)
		if len(again) != len(first) {
			t.Fatalf("run %d: length %d, want %d", i, len(again), len(first))
		}
		for j := range first {
			if again[j] != first[j] {
				t.Fatalf("run %d: rec[%d] = %+v, want %+v", i, j, again[j], first[j])
			}
		}
	}
}
