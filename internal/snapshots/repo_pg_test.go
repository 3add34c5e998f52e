package snapshots

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func expectSnapshotQueries(mock sqlmock.Sqlmock) {
	mock.ExpectQuery("FROM objects").
		WithArgs("obj-1", "proj-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "definition"}).
			AddRow("obj-1", "Task", "A unit of work with an owner."))

	mock.ExpectQuery("FROM attributes").
		WithArgs("obj-1").
		WillReturnRows(sqlmock.NewRows([]string{"name", "data_type", "value", "is_core"}).
			AddRow("Title", "text", "Ship release", true).
			AddRow("Notes", "text", nil, false))

	mock.ExpectQuery("FROM actions").
		WithArgs("obj-1").
		WillReturnRows(sqlmock.NewRows([]string{"description", "crud_type", "is_primary", "business_value"}).
			AddRow("Create task", "create", true, nil).
			AddRow("View task", "read", false, "find work quickly"))

	mock.ExpectQuery("FROM relationships").
		WithArgs("obj-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	mock.ExpectQuery("FROM prioritizations").
		WithArgs("proj-1", "obj-1").
		WillReturnRows(sqlmock.NewRows([]string{"priority_phase"}).AddRow("now"))
}

func TestPGRepoGetObject(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	expectSnapshotQueries(mock)

	repo := &PGRepo{DB: db}
	snap, err := repo.GetObject(context.Background(), "proj-1", "obj-1")
	if err != nil {
		t.Fatalf("GetObject: %v", err)
	}

	if snap.Name != "Task" || snap.Definition == "" {
		t.Errorf("header fields = %q/%q", snap.Name, snap.Definition)
	}
	if len(snap.AllAttributes) != 2 || len(snap.CoreAttributes) != 1 {
		t.Errorf("attributes = %d all, %d core", len(snap.AllAttributes), len(snap.CoreAttributes))
	}
	if snap.AllAttributes[1].Value != nil {
		t.Errorf("null value not mapped to nil: %v", snap.AllAttributes[1].Value)
	}
	if len(snap.AllActions) != 2 || len(snap.PrimaryActions) != 1 {
		t.Errorf("actions = %d all, %d primary", len(snap.AllActions), len(snap.PrimaryActions))
	}
	if snap.AllActions[1].BusinessValue == nil || *snap.AllActions[1].BusinessValue != "find work quickly" {
		t.Errorf("business value not mapped: %+v", snap.AllActions[1])
	}
	if snap.RelationshipCount != 2 {
		t.Errorf("RelationshipCount = %d", snap.RelationshipCount)
	}
	if snap.PriorityPhase != PhaseNow {
		t.Errorf("PriorityPhase = %q", snap.PriorityPhase)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPGRepoGetObjectNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM objects").
		WithArgs("obj-x", "proj-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "definition"}))

	repo := &PGRepo{DB: db}
	if _, err := repo.GetObject(context.Background(), "proj-1", "obj-x"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestPGRepoGetObjectUnassignedPhase(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM objects").
		WithArgs("obj-1", "proj-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "definition"}).
			AddRow("obj-1", "Task", ""))
	mock.ExpectQuery("FROM attributes").
		WillReturnRows(sqlmock.NewRows([]string{"name", "data_type", "value", "is_core"}))
	mock.ExpectQuery("FROM actions").
		WillReturnRows(sqlmock.NewRows([]string{"description", "crud_type", "is_primary", "business_value"}))
	mock.ExpectQuery("FROM relationships").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("FROM prioritizations").
		WillReturnRows(sqlmock.NewRows([]string{"priority_phase"}))

	repo := &PGRepo{DB: db}
	snap, err := repo.GetObject(context.Background(), "proj-1", "obj-1")
	if err != nil {
		t.Fatalf("GetObject: %v", err)
	}
	if snap.PriorityPhase != PhaseUnassigned {
		t.Errorf("PriorityPhase = %q, want unassigned", snap.PriorityPhase)
	}
	if snap.AllAttributes == nil || snap.AllActions == nil {
		t.Error("collections not normalized to empty slices")
	}
}

func TestPGRepoDimensionCounts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	cols := []string{"c1", "c2", "c3", "c4", "c5", "c6", "c7", "c8"}
	mock.ExpectQuery("SELECT").
		WithArgs("proj-1").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(5, 4, 12, 9, 8, 5, 6, 11))

	repo := &PGRepo{DB: db}
	counts, err := repo.DimensionCounts(context.Background(), "proj-1")
	if err != nil {
		t.Fatalf("DimensionCounts: %v", err)
	}
	want := DimensionCounts{
		Objects:               5,
		ObjectsWithDefinition: 4,
		Attributes:            12,
		CoreAttributes:        9,
		Actions:               8,
		PrimaryActions:        5,
		Relationships:         6,
		PrioritizedItems:      11,
	}
	if counts != want {
		t.Fatalf("counts = %+v, want %+v", counts, want)
	}
}

func TestPGRepoListObjectsPhaseJoin(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("JOIN prioritizations").
		WithArgs("proj-1", "now").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("obj-1"))
	expectSnapshotQueries(mock)

	repo := &PGRepo{DB: db}
	snaps, err := repo.ListObjects(context.Background(), "proj-1", PhaseNow)
	if err != nil {
		t.Fatalf("ListObjects: %v", err)
	}
	if len(snaps) != 1 || snaps[0].ID != "obj-1" {
		t.Fatalf("snaps = %+v", snaps)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPGRepoListObjectsUnassignedFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	// Only one argument: unassigned filters in SQL, not via a phase
	// parameter.
	mock.ExpectQuery("LEFT JOIN prioritizations").
		WithArgs("proj-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("obj-1"))

	mock.ExpectQuery("FROM objects").
		WithArgs("obj-1", "proj-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "definition"}).
			AddRow("obj-1", "Attachment", ""))
	mock.ExpectQuery("FROM attributes").
		WithArgs("obj-1").
		WillReturnRows(sqlmock.NewRows([]string{"name", "data_type", "value", "is_core"}))
	mock.ExpectQuery("FROM actions").
		WithArgs("obj-1").
		WillReturnRows(sqlmock.NewRows([]string{"description", "crud_type", "is_primary", "business_value"}))
	mock.ExpectQuery("FROM relationships").
		WithArgs("obj-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("FROM prioritizations").
		WithArgs("proj-1", "obj-1").
		WillReturnRows(sqlmock.NewRows([]string{"priority_phase"}))

	repo := &PGRepo{DB: db}
	snaps, err := repo.ListObjects(context.Background(), "proj-1", PhaseUnassigned)
	if err != nil {
		t.Fatalf("ListObjects: %v", err)
	}
	if len(snaps) != 1 || snaps[0].ID != "obj-1" {
		t.Fatalf("snaps = %+v", snaps)
	}
	if snaps[0].PriorityPhase != PhaseUnassigned {
		t.Errorf("PriorityPhase = %q", snaps[0].PriorityPhase)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
