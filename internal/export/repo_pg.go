package export

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo stores export jobs in Postgres.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, job Job) error {
	const query = `
INSERT INTO export_jobs (id, project_id, requested_by, priority_filter, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.DB.ExecContext(ctx, query,
		job.ID, job.ProjectID, job.RequestedBy, job.PriorityFilter, job.Status, job.CreatedAt, job.UpdatedAt)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (Job, error) {
	const query = `
SELECT id, project_id, requested_by, COALESCE(priority_filter, ''), status,
       COALESCE(storage_key, ''), COALESCE(error_message, ''), created_at, updated_at
FROM export_jobs
WHERE id = $1
LIMIT 1`
	var job Job
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&job.ID, &job.ProjectID, &job.RequestedBy, &job.PriorityFilter, &job.Status,
		&job.StorageKey, &job.ErrorMessage, &job.CreatedAt, &job.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Job{}, ErrNotFound
	}
	if err != nil {
		return Job{}, err
	}
	return job, nil
}

func (r *PGRepo) SetStatus(ctx context.Context, id, status string) error {
	const query = `UPDATE export_jobs SET status = $2, updated_at = NOW() WHERE id = $1`
	return r.exec(ctx, query, id, status)
}

func (r *PGRepo) SetCompleted(ctx context.Context, id, storageKey string) error {
	const query = `
UPDATE export_jobs SET status = $2, storage_key = $3, updated_at = NOW() WHERE id = $1`
	return r.exec(ctx, query, id, StatusCompleted, storageKey)
}

func (r *PGRepo) SetFailed(ctx context.Context, id, errorMessage string) error {
	const query = `
UPDATE export_jobs SET status = $2, error_message = $3, updated_at = NOW() WHERE id = $1`
	return r.exec(ctx, query, id, StatusFailed, errorMessage)
}

func (r *PGRepo) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
