package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/activity-hub/student-activity-hub/internal/domain/activity"
	"github.com/activity-hub/student-activity-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// ACTIVITY REPOSITORY IMPLEMENTATION
// ══════════════════════════════════════════════════════════════════════════════

// ActivityRepository implements activity.Repository for PostgreSQL.
type ActivityRepository struct {
	conn *Connection
}

// NewActivityRepository creates a new ActivityRepository.
func NewActivityRepository(conn *Connection) *ActivityRepository {
	return &ActivityRepository{conn: conn}
}

const activityColumns = `id, title, description, location, start_date, end_date,
	points, max_participants, status, created_by_id, created_at`

// Create creates a new activity.
func (r *ActivityRepository) Create(ctx context.Context, a *activity.Activity) error {
	query := `
		INSERT INTO activities (title, description, location, start_date, end_date,
			points, max_participants, status, created_by_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	err := r.conn.QueryRow(ctx, query,
		a.Title,
		a.Description,
		a.Location,
		a.StartDate,
		a.EndDate,
		a.Points,
		a.MaxParticipants,
		string(a.Status),
		a.CreatedByID,
		a.CreatedAt,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("failed to create activity: %w", err)
	}
	return nil
}

// GetByID returns an activity by ID.
func (r *ActivityRepository) GetByID(ctx context.Context, id int64) (*activity.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE id = $1`
	return r.scanActivity(r.conn.QueryRow(ctx, query, id))
}

// List returns activities matching the filter, newest first.
func (r *ActivityRepository) List(ctx context.Context, filter activity.Filter) ([]*activity.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities
		WHERE ($1::text IS NULL OR status = $1)
		  AND ($2::bigint IS NULL OR created_by_id = $2)
		ORDER BY created_at DESC`

	var status *string
	if filter.Status != nil {
		s := string(*filter.Status)
		status = &s
	}

	rows, err := r.conn.Query(ctx, query, status, filter.CreatedByID)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	var out []*activity.Activity
	for rows.Next() {
		a, err := r.scanActivity(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Update applies a patch and returns the updated row.
func (r *ActivityRepository) Update(ctx context.Context, id int64, patch activity.Patch) (*activity.Activity, error) {
	query := `
		UPDATE activities SET
			title            = COALESCE($2, title),
			description      = COALESCE($3, description),
			location         = COALESCE($4, location),
			start_date       = COALESCE($5, start_date),
			end_date         = COALESCE($6, end_date),
			points           = COALESCE($7, points),
			max_participants = COALESCE($8, max_participants),
			status           = COALESCE($9, status)
		WHERE id = $1
		RETURNING ` + activityColumns

	var status *string
	if patch.Status != nil {
		s := string(*patch.Status)
		status = &s
	}

	return r.scanActivity(r.conn.QueryRow(ctx, query, id,
		patch.Title, patch.Description, patch.Location,
		patch.StartDate, patch.EndDate, patch.Points,
		patch.MaxParticipants, status))
}

// Delete removes an activity. Registrations and complaints cascade.
func (r *ActivityRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.conn.Exec(ctx, `DELETE FROM activities WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete activity: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ActivityRepository) scanActivity(row pgx.Row) (*activity.Activity, error) {
	var (
		a      activity.Activity
		status string
	)
	err := row.Scan(&a.ID, &a.Title, &a.Description, &a.Location, &a.StartDate,
		&a.EndDate, &a.Points, &a.MaxParticipants, &status, &a.CreatedByID, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.NewDomainError("activity", "Get", shared.ErrNotFound, "activity not found")
		}
		return nil, fmt.Errorf("failed to scan activity: %w", err)
	}
	a.Status = activity.Status(status)
	return &a, nil
}
