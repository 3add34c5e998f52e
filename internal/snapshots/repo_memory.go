package snapshots

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory Repo used when no database is configured and in
// tests.
type MemoryRepo struct {
	mu            sync.RWMutex
	objects       map[string][]ObjectSnapshot // projectID -> snapshots
	relationships map[string]int              // projectID -> total relationship rows
	prioritized   map[string]int              // projectID -> prioritization rows
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		objects:       make(map[string][]ObjectSnapshot),
		relationships: make(map[string]int),
		prioritized:   make(map[string]int),
	}
}

// PutObject stores or replaces a snapshot for a project.
func (r *MemoryRepo) PutObject(projectID string, snap ObjectSnapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	snaps := r.objects[projectID]
	for i := range snaps {
		if snaps[i].ID == snap.ID {
			snaps[i] = snap.Normalize()
			r.objects[projectID] = snaps
			return
		}
	}
	r.objects[projectID] = append(snaps, snap.Normalize())
}

// SetProjectTotals records project-wide relationship and prioritization totals.
func (r *MemoryRepo) SetProjectTotals(projectID string, relationships, prioritized int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.relationships[projectID] = relationships
	r.prioritized[projectID] = prioritized
}

// GetObject assembles one snapshot for the given object.
func (r *MemoryRepo) GetObject(ctx context.Context, projectID, objectID string) (ObjectSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return ObjectSnapshot{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, snap := range r.objects[projectID] {
		if snap.ID == objectID {
			return snap, nil
		}
	}
	return ObjectSnapshot{}, ErrNotFound
}

// ListObjects returns the project's snapshots ordered by object name.
func (r *MemoryRepo) ListObjects(ctx context.Context, projectID string, phase PriorityPhase) ([]ObjectSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ObjectSnapshot, 0, len(r.objects[projectID]))
	for _, snap := range r.objects[projectID] {
		if phase != "" && snap.PriorityPhase != phase {
			continue
		}
		out = append(out, snap)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// DimensionCounts derives project-wide totals from the stored snapshots.
func (r *MemoryRepo) DimensionCounts(ctx context.Context, projectID string) (DimensionCounts, error) {
	if err := ctx.Err(); err != nil {
		return DimensionCounts{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var c DimensionCounts
	for _, snap := range r.objects[projectID] {
		c.Objects++
		if definedLength(snap.Definition) >= 10 {
			c.ObjectsWithDefinition++
		}
		c.Attributes += len(snap.AllAttributes)
		c.CoreAttributes += len(snap.CoreAttributes)
		c.Actions += len(snap.AllActions)
		c.PrimaryActions += len(snap.PrimaryActions)
	}
	c.Relationships = r.relationships[projectID]
	c.PrioritizedItems = r.prioritized[projectID]
	return c, nil
}

var _ Repo = (*MemoryRepo)(nil)
