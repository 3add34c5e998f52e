package projects

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo reads projects from Postgres.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (Project, error) {
	const query = `
SELECT id, title, COALESCE(description, ''), created_at
FROM projects
WHERE id = $1
LIMIT 1`
	var p Project
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Title, &p.Description, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Project{}, ErrNotFound
	}
	if err != nil {
		return Project{}, err
	}
	return p, nil
}
