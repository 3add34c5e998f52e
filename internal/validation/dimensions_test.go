package validation

import (
	"testing"

	"orca-backend/internal/snapshots"
)

func TestAnalyzeDimensionsFullProject(t *testing.T) {
	counts := snapshots.DimensionCounts{
		Objects:               4,
		ObjectsWithDefinition: 4,
		Attributes:            20,
		CoreAttributes:        12, // target is 3 per object
		Actions:               10,
		PrimaryActions:        4, // target is 1 per object
		Relationships:         8, // target is 2 per object
		PrioritizedItems:      6,
	}

	dims := AnalyzeDimensions(counts)

	for _, name := range []DimensionName{
		DimensionObjects, DimensionAttributes, DimensionActions,
		DimensionRelationships, DimensionPrioritization,
	} {
		dim, ok := dims[name]
		if !ok {
			t.Fatalf("dimension %s missing", name)
		}
		if dim.Status != StatusComplete {
			t.Errorf("%s status = %q, want complete (%.1f%%)", name, dim.Status, dim.CompletionPercentage)
		}
	}
	if dims[DimensionAttributes].CompletionPercentage != 100 {
		t.Errorf("attributes pct = %.1f", dims[DimensionAttributes].CompletionPercentage)
	}
}

func TestAnalyzeDimensionsPartialCoverage(t *testing.T) {
	counts := snapshots.DimensionCounts{
		Objects:               4,
		ObjectsWithDefinition: 3,
		Attributes:            8,
		CoreAttributes:        6,
		Actions:               3,
		PrimaryActions:        2,
		Relationships:         2,
		PrioritizedItems:      0,
	}

	dims := AnalyzeDimensions(counts)

	if got := dims[DimensionObjects]; got.Status != StatusIncomplete || got.CompletionPercentage != 75 {
		t.Errorf("objects = %+v", got)
	}
	if got := dims[DimensionAttributes]; got.CompletionPercentage != 50 {
		t.Errorf("attributes pct = %.1f, want 50", got.CompletionPercentage)
	}
	if got := dims[DimensionActions]; got.CompletionPercentage != 50 {
		t.Errorf("actions pct = %.1f, want 50", got.CompletionPercentage)
	}
	if got := dims[DimensionRelationships]; got.CompletionPercentage != 25 {
		t.Errorf("relationships pct = %.1f, want 25", got.CompletionPercentage)
	}
	if got := dims[DimensionPrioritization]; got.Status != StatusIncomplete || got.CompletionPercentage != 0 {
		t.Errorf("prioritization = %+v", got)
	}
}

func TestAnalyzeDimensionsEmptyProject(t *testing.T) {
	dims := AnalyzeDimensions(snapshots.DimensionCounts{})

	for name, dim := range dims {
		if dim.CompletionPercentage != 0 {
			t.Errorf("%s pct = %.1f, want 0", name, dim.CompletionPercentage)
		}
		if dim.Status != StatusIncomplete {
			t.Errorf("%s status = %q, want incomplete", name, dim.Status)
		}
	}
}

func TestAnalyzeDimensionsPrioritizationCompleteOnAnyAssignment(t *testing.T) {
	counts := snapshots.DimensionCounts{
		Objects:          3,
		Attributes:       6,
		Actions:          3,
		PrioritizedItems: 1,
	}

	dims := AnalyzeDimensions(counts)
	if dims[DimensionPrioritization].Status != StatusComplete {
		t.Fatalf("prioritization = %+v, any assignment should complete it", dims[DimensionPrioritization])
	}
}

func TestPercentageRoundsToOneDecimal(t *testing.T) {
	// 1 of 3 objects defined is 33.3 after rounding.
	counts := snapshots.DimensionCounts{Objects: 3, ObjectsWithDefinition: 1}
	dims := AnalyzeDimensions(counts)
	if got := dims[DimensionObjects].CompletionPercentage; got != 33.3 {
		t.Fatalf("objects pct = %v, want 33.3", got)
	}
}
