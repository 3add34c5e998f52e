package snapshots

import "context"

// DimensionCounts holds project-wide totals used by dimension analysis.
type DimensionCounts struct {
	Objects               int
	ObjectsWithDefinition int
	Attributes            int
	CoreAttributes        int
	Actions               int
	PrimaryActions        int
	Relationships         int
	PrioritizedItems      int
}

// Repo assembles object snapshots from the persistence layer. Implementations
// must return ErrNotFound when an object or project cannot be resolved and
// must normalize absent collections rather than failing.
type Repo interface {
	// GetObject assembles one snapshot for the given object.
	GetObject(ctx context.Context, projectID, objectID string) (ObjectSnapshot, error)
	// ListObjects assembles snapshots for every object in the project,
	// ordered by object name. A non-empty phase restricts the result to
	// objects prioritized into that phase; the unassigned phase matches
	// objects with no prioritization at all.
	ListObjects(ctx context.Context, projectID string, phase PriorityPhase) ([]ObjectSnapshot, error)
	// DimensionCounts returns project-wide totals for dimension analysis.
	DimensionCounts(ctx context.Context, projectID string) (DimensionCounts, error)
}
