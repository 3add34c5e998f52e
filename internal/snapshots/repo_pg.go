package snapshots

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo assembles snapshots from Postgres.
type PGRepo struct {
	DB *sql.DB
}

// GetObject assembles one snapshot for the given object.
func (r *PGRepo) GetObject(ctx context.Context, projectID, objectID string) (ObjectSnapshot, error) {
	const query = `
SELECT id, name, COALESCE(definition, '')
FROM objects
WHERE id = $1 AND project_id = $2
LIMIT 1`
	var snap ObjectSnapshot
	err := r.DB.QueryRowContext(ctx, query, objectID, projectID).Scan(&snap.ID, &snap.Name, &snap.Definition)
	if errors.Is(err, sql.ErrNoRows) {
		return ObjectSnapshot{}, ErrNotFound
	}
	if err != nil {
		return ObjectSnapshot{}, err
	}

	if err := r.loadAttributes(ctx, &snap); err != nil {
		return ObjectSnapshot{}, err
	}
	if err := r.loadActions(ctx, &snap); err != nil {
		return ObjectSnapshot{}, err
	}
	if err := r.loadRelationshipCount(ctx, &snap); err != nil {
		return ObjectSnapshot{}, err
	}
	if err := r.loadPhase(ctx, projectID, &snap); err != nil {
		return ObjectSnapshot{}, err
	}

	return snap.Normalize(), nil
}

// ListObjects assembles snapshots for every object in the project, ordered by
// object name, optionally restricted to one priority phase.
func (r *PGRepo) ListObjects(ctx context.Context, projectID string, phase PriorityPhase) ([]ObjectSnapshot, error) {
	query := `
SELECT id FROM objects
WHERE project_id = $1
ORDER BY name, id`
	args := []any{projectID}
	switch {
	case phase == PhaseUnassigned:
		// Unassigned covers objects with no prioritization row at all as
		// well as ones explicitly parked in the unassigned phase.
		query = `
SELECT o.id FROM objects o
LEFT JOIN prioritizations p ON p.item_id = o.id AND p.item_type = 'object'
WHERE o.project_id = $1 AND (p.priority_phase IS NULL OR p.priority_phase = 'unassigned')
ORDER BY o.name, o.id`
	case phase != "":
		query = `
SELECT o.id FROM objects o
JOIN prioritizations p ON p.item_id = o.id AND p.item_type = 'object' AND p.priority_phase = $2
WHERE o.project_id = $1
ORDER BY o.name, o.id`
		args = append(args, string(phase))
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]ObjectSnapshot, 0, len(ids))
	for _, id := range ids {
		snap, err := r.GetObject(ctx, projectID, id)
		if err != nil {
			return nil, err
		}
		out = append(out, snap)
	}
	return out, nil
}

// DimensionCounts returns project-wide totals for dimension analysis.
func (r *PGRepo) DimensionCounts(ctx context.Context, projectID string) (DimensionCounts, error) {
	const query = `
SELECT
	(SELECT COUNT(*) FROM objects WHERE project_id = $1),
	(SELECT COUNT(*) FROM objects WHERE project_id = $1 AND definition IS NOT NULL AND LENGTH(TRIM(definition)) >= 10),
	(SELECT COUNT(*) FROM attributes a JOIN objects o ON o.id = a.object_id WHERE o.project_id = $1),
	(SELECT COUNT(*) FROM attributes a JOIN objects o ON o.id = a.object_id WHERE o.project_id = $1 AND a.is_core),
	(SELECT COUNT(*) FROM actions a JOIN objects o ON o.id = a.object_id WHERE o.project_id = $1),
	(SELECT COUNT(*) FROM actions a JOIN objects o ON o.id = a.object_id WHERE o.project_id = $1 AND a.is_primary),
	(SELECT COUNT(*) FROM relationships WHERE project_id = $1),
	(SELECT COUNT(*) FROM prioritizations WHERE project_id = $1)`
	var c DimensionCounts
	err := r.DB.QueryRowContext(ctx, query, projectID).Scan(
		&c.Objects,
		&c.ObjectsWithDefinition,
		&c.Attributes,
		&c.CoreAttributes,
		&c.Actions,
		&c.PrimaryActions,
		&c.Relationships,
		&c.PrioritizedItems,
	)
	if err != nil {
		return DimensionCounts{}, err
	}
	return c, nil
}

func (r *PGRepo) loadAttributes(ctx context.Context, snap *ObjectSnapshot) error {
	const query = `
SELECT name, data_type, value, is_core
FROM attributes
WHERE object_id = $1
ORDER BY display_order, name`
	rows, err := r.DB.QueryContext(ctx, query, snap.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var attr AttributeSnapshot
		var value sql.NullString
		var dataType string
		if err := rows.Scan(&attr.Name, &dataType, &value, &attr.IsCore); err != nil {
			return err
		}
		attr.DataType = DataType(dataType)
		if value.Valid {
			attr.Value = &value.String
		}
		snap.AllAttributes = append(snap.AllAttributes, attr)
		if attr.IsCore {
			snap.CoreAttributes = append(snap.CoreAttributes, attr)
		}
	}
	return rows.Err()
}

func (r *PGRepo) loadActions(ctx context.Context, snap *ObjectSnapshot) error {
	const query = `
SELECT description, crud_type, is_primary, business_value
FROM actions
WHERE object_id = $1
ORDER BY display_order, description`
	rows, err := r.DB.QueryContext(ctx, query, snap.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var action ActionSnapshot
		var crudType string
		var businessValue sql.NullString
		if err := rows.Scan(&action.Description, &crudType, &action.IsPrimary, &businessValue); err != nil {
			return err
		}
		action.CRUDType = CRUDType(crudType)
		if businessValue.Valid {
			action.BusinessValue = &businessValue.String
		}
		snap.AllActions = append(snap.AllActions, action)
		if action.IsPrimary {
			snap.PrimaryActions = append(snap.PrimaryActions, action)
		}
	}
	return rows.Err()
}

func (r *PGRepo) loadRelationshipCount(ctx context.Context, snap *ObjectSnapshot) error {
	const query = `
SELECT COUNT(*) FROM relationships
WHERE source_object_id = $1 OR target_object_id = $1`
	return r.DB.QueryRowContext(ctx, query, snap.ID).Scan(&snap.RelationshipCount)
}

func (r *PGRepo) loadPhase(ctx context.Context, projectID string, snap *ObjectSnapshot) error {
	const query = `
SELECT priority_phase FROM prioritizations
WHERE project_id = $1 AND item_type = 'object' AND item_id = $2
LIMIT 1`
	var phase string
	err := r.DB.QueryRowContext(ctx, query, projectID, snap.ID).Scan(&phase)
	if errors.Is(err, sql.ErrNoRows) {
		snap.PriorityPhase = PhaseUnassigned
		return nil
	}
	if err != nil {
		return err
	}
	if parsed, perr := ParsePhase(phase); perr == nil {
		snap.PriorityPhase = parsed
	} else {
		snap.PriorityPhase = PhaseUnassigned
	}
	return nil
}

var _ Repo = (*PGRepo)(nil)
