package snapshots

import (
	"context"
	"errors"
	"testing"
)

func seedRepo() *MemoryRepo {
	repo := NewMemoryRepo()
	repo.PutObject("proj-1", ObjectSnapshot{
		ID:         "obj-b",
		Name:       "Task",
		Definition: "A unit of work with an owner and a due date.",
		AllAttributes: []AttributeSnapshot{
			{Name: "Title", IsCore: true},
			{Name: "Notes"},
		},
		AllActions: []ActionSnapshot{
			{Description: "Create task", CRUDType: CRUDCreate, IsPrimary: true},
		},
		PriorityPhase: PhaseNow,
	})
	repo.PutObject("proj-1", ObjectSnapshot{
		ID:            "obj-a",
		Name:          "Comment",
		PriorityPhase: PhaseNext,
	})
	repo.SetProjectTotals("proj-1", 3, 2)
	return repo
}

func TestMemoryRepoGetObject(t *testing.T) {
	repo := seedRepo()

	snap, err := repo.GetObject(context.Background(), "proj-1", "obj-b")
	if err != nil {
		t.Fatalf("GetObject: %v", err)
	}
	if snap.Name != "Task" {
		t.Errorf("Name = %q", snap.Name)
	}
	// Stored snapshots are normalized on write.
	if len(snap.CoreAttributes) != 1 || len(snap.PrimaryActions) != 1 {
		t.Errorf("derived slices not populated: %+v", snap)
	}

	if _, err := repo.GetObject(context.Background(), "proj-1", "obj-x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing object err = %v, want ErrNotFound", err)
	}
	if _, err := repo.GetObject(context.Background(), "proj-2", "obj-b"); !errors.Is(err, ErrNotFound) {
		t.Errorf("wrong project err = %v, want ErrNotFound", err)
	}
}

func TestMemoryRepoPutObjectReplaces(t *testing.T) {
	repo := seedRepo()
	repo.PutObject("proj-1", ObjectSnapshot{ID: "obj-a", Name: "Comment v2"})

	snaps, err := repo.ListObjects(context.Background(), "proj-1", "")
	if err != nil {
		t.Fatalf("ListObjects: %v", err)
	}
	if len(snaps) != 2 {
		t.Fatalf("len = %d, want 2 after replace", len(snaps))
	}
	snap, err := repo.GetObject(context.Background(), "proj-1", "obj-a")
	if err != nil {
		t.Fatalf("GetObject: %v", err)
	}
	if snap.Name != "Comment v2" {
		t.Errorf("Name = %q, want replaced value", snap.Name)
	}
}

func TestMemoryRepoListObjectsSortedByName(t *testing.T) {
	repo := seedRepo()

	snaps, err := repo.ListObjects(context.Background(), "proj-1", "")
	if err != nil {
		t.Fatalf("ListObjects: %v", err)
	}
	if len(snaps) != 2 || snaps[0].Name != "Comment" || snaps[1].Name != "Task" {
		t.Fatalf("order wrong: %+v", snaps)
	}
}

func TestMemoryRepoListObjectsPhaseFilter(t *testing.T) {
	repo := seedRepo()

	snaps, err := repo.ListObjects(context.Background(), "proj-1", PhaseNext)
	if err != nil {
		t.Fatalf("ListObjects: %v", err)
	}
	if len(snaps) != 1 || snaps[0].ID != "obj-a" {
		t.Fatalf("filtered result = %+v", snaps)
	}

	snaps, err = repo.ListObjects(context.Background(), "proj-1", PhaseLater)
	if err != nil {
		t.Fatalf("ListObjects: %v", err)
	}
	if len(snaps) != 0 {
		t.Fatalf("later phase result = %+v, want empty", snaps)
	}
}

func TestMemoryRepoDimensionCountsDefinitionFloor(t *testing.T) {
	repo := NewMemoryRepo()
	repo.PutObject("proj-1", ObjectSnapshot{ID: "obj-1", Name: "Task", Definition: "ten chars!"})
	repo.PutObject("proj-1", ObjectSnapshot{ID: "obj-2", Name: "Note", Definition: "too short"})

	counts, err := repo.DimensionCounts(context.Background(), "proj-1")
	if err != nil {
		t.Fatalf("DimensionCounts: %v", err)
	}
	// A trimmed definition of exactly ten characters counts as defined,
	// matching the warning rule's floor.
	if counts.ObjectsWithDefinition != 1 {
		t.Errorf("ObjectsWithDefinition = %d, want 1", counts.ObjectsWithDefinition)
	}
}

func TestMemoryRepoListObjectsUnassignedFilter(t *testing.T) {
	repo := seedRepo()
	// No phase on write, normalized to unassigned.
	repo.PutObject("proj-1", ObjectSnapshot{ID: "obj-c", Name: "Attachment"})

	snaps, err := repo.ListObjects(context.Background(), "proj-1", PhaseUnassigned)
	if err != nil {
		t.Fatalf("ListObjects: %v", err)
	}
	if len(snaps) != 1 || snaps[0].ID != "obj-c" {
		t.Fatalf("unassigned result = %+v, want only obj-c", snaps)
	}
	if snaps[0].PriorityPhase != PhaseUnassigned {
		t.Errorf("PriorityPhase = %q", snaps[0].PriorityPhase)
	}
}

func TestMemoryRepoDimensionCounts(t *testing.T) {
	repo := seedRepo()

	counts, err := repo.DimensionCounts(context.Background(), "proj-1")
	if err != nil {
		t.Fatalf("DimensionCounts: %v", err)
	}
	want := DimensionCounts{
		Objects:               2,
		ObjectsWithDefinition: 1,
		Attributes:            2,
		CoreAttributes:        1,
		Actions:               1,
		PrimaryActions:        1,
		Relationships:         3,
		PrioritizedItems:      2,
	}
	if counts != want {
		t.Fatalf("counts = %+v, want %+v", counts, want)
	}
}

func TestMemoryRepoCancelledContext(t *testing.T) {
	repo := seedRepo()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := repo.ListObjects(ctx, "proj-1", ""); err == nil {
		t.Error("ListObjects ignored cancelled context")
	}
	if _, err := repo.GetObject(ctx, "proj-1", "obj-a"); err == nil {
		t.Error("GetObject ignored cancelled context")
	}
}
