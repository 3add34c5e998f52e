package export

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is an in-memory Repo for local development and tests.
type MemoryRepo struct {
	mu   sync.RWMutex
	jobs map[string]Job
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{jobs: make(map[string]Job)}
}

func (r *MemoryRepo) Create(_ context.Context, job Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[job.ID] = job
	return nil
}

func (r *MemoryRepo) GetByID(_ context.Context, id string) (Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	job, ok := r.jobs[id]
	if !ok {
		return Job{}, ErrNotFound
	}
	return job, nil
}

func (r *MemoryRepo) SetStatus(_ context.Context, id, status string) error {
	return r.update(id, func(job *Job) {
		job.Status = status
	})
}

func (r *MemoryRepo) SetCompleted(_ context.Context, id, storageKey string) error {
	return r.update(id, func(job *Job) {
		job.Status = StatusCompleted
		job.StorageKey = storageKey
	})
}

func (r *MemoryRepo) SetFailed(_ context.Context, id, errorMessage string) error {
	return r.update(id, func(job *Job) {
		job.Status = StatusFailed
		job.ErrorMessage = errorMessage
	})
}

func (r *MemoryRepo) update(id string, mutate func(*Job)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return ErrNotFound
	}
	mutate(&job)
	job.UpdatedAt = time.Now().UTC()
	r.jobs[id] = job
	return nil
}
