package snapshots

import "testing"

func TestParsePhase(t *testing.T) {
	cases := []struct {
		raw  string
		want PriorityPhase
		ok   bool
	}{
		{"now", PhaseNow, true},
		{"NEXT", PhaseNext, true},
		{"  later ", PhaseLater, true},
		{"Unassigned", PhaseUnassigned, true},
		{"", "", false},
		{"someday", "", false},
	}
	for _, tc := range cases {
		got, err := ParsePhase(tc.raw)
		if tc.ok && (err != nil || got != tc.want) {
			t.Errorf("ParsePhase(%q) = %q, %v; want %q", tc.raw, got, err, tc.want)
		}
		if !tc.ok && err == nil {
			t.Errorf("ParsePhase(%q) succeeded, want error", tc.raw)
		}
	}
}

func TestNormalizeFillsAbsentCollections(t *testing.T) {
	got := ObjectSnapshot{ID: "obj-1", Name: "Task"}.Normalize()

	if got.AllAttributes == nil || got.AllActions == nil {
		t.Error("full collections still nil")
	}
	if got.CoreAttributes == nil || got.PrimaryActions == nil {
		t.Error("derived collections still nil")
	}
	if got.PriorityPhase != PhaseUnassigned {
		t.Errorf("PriorityPhase = %q, want unassigned", got.PriorityPhase)
	}
}

func TestNormalizeDerivesFromFlags(t *testing.T) {
	snap := ObjectSnapshot{
		ID:   "obj-1",
		Name: "Task",
		AllAttributes: []AttributeSnapshot{
			{Name: "Title", IsCore: true},
			{Name: "Notes"},
			{Name: "Status", IsCore: true},
		},
		AllActions: []ActionSnapshot{
			{Description: "View", CRUDType: CRUDRead, IsPrimary: true},
			{Description: "Delete", CRUDType: CRUDDelete},
		},
	}

	got := snap.Normalize()
	if len(got.CoreAttributes) != 2 {
		t.Errorf("CoreAttributes = %d, want 2", len(got.CoreAttributes))
	}
	if len(got.PrimaryActions) != 1 || got.PrimaryActions[0].Description != "View" {
		t.Errorf("PrimaryActions = %+v", got.PrimaryActions)
	}
}

func TestNormalizeKeepsExplicitEmptySlices(t *testing.T) {
	snap := ObjectSnapshot{
		ID:             "obj-1",
		Name:           "Task",
		CoreAttributes: []AttributeSnapshot{},
		PrimaryActions: []ActionSnapshot{},
		AllAttributes: []AttributeSnapshot{
			{Name: "Title", IsCore: true},
		},
		AllActions: []ActionSnapshot{
			{Description: "View", IsPrimary: true},
		},
	}

	// Explicit empties are an assembler statement, not an absence.
	got := snap.Normalize()
	if len(got.CoreAttributes) != 0 || len(got.PrimaryActions) != 0 {
		t.Fatalf("explicit empty slices were re-derived: %+v", got)
	}
}

func TestNormalizeClampsNegativeRelationshipCount(t *testing.T) {
	got := ObjectSnapshot{ID: "obj-1", RelationshipCount: -3}.Normalize()
	if got.RelationshipCount != 0 {
		t.Fatalf("RelationshipCount = %d, want 0", got.RelationshipCount)
	}
}
