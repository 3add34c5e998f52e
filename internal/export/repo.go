package export

import (
	"context"
	"errors"
)

// ErrNotFound is returned when an export job does not exist.
var ErrNotFound = errors.New("not found")

// Repo stores export jobs.
type Repo interface {
	Create(ctx context.Context, job Job) error
	GetByID(ctx context.Context, id string) (Job, error)
	SetStatus(ctx context.Context, id, status string) error
	SetCompleted(ctx context.Context, id, storageKey string) error
	SetFailed(ctx context.Context, id, errorMessage string) error
}
