package projects

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory Repo for local development and tests.
type MemoryRepo struct {
	mu       sync.RWMutex
	projects map[string]Project
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{projects: make(map[string]Project)}
}

// Put stores or replaces a project.
func (r *MemoryRepo) Put(p Project) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.projects[p.ID] = p
}

func (r *MemoryRepo) GetByID(_ context.Context, id string) (Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.projects[id]
	if !ok {
		return Project{}, ErrNotFound
	}
	return p, nil
}
