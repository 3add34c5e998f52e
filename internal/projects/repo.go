package projects

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a project does not exist.
var ErrNotFound = errors.New("not found")

// Repo provides read access to projects.
type Repo interface {
	GetByID(ctx context.Context, id string) (Project, error)
}
