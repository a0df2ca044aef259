package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/activity-hub/student-activity-hub/internal/domain/registration"
	"github.com/activity-hub/student-activity-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// REGISTRATION REPOSITORY IMPLEMENTATION
// The unique index on (user_id, activity_id) turns concurrent duplicate
// submissions into a Conflict from exactly one of the racers.
// ══════════════════════════════════════════════════════════════════════════════

// RegistrationRepository implements registration.Repository for PostgreSQL.
type RegistrationRepository struct {
	conn *Connection
}

// NewRegistrationRepository creates a new RegistrationRepository.
func NewRegistrationRepository(conn *Connection) *RegistrationRepository {
	return &RegistrationRepository{conn: conn}
}

const registrationColumns = `id, user_id, activity_id, status, points_awarded, created_at, updated_at`

// Create creates a new registration.
func (r *RegistrationRepository) Create(ctx context.Context, reg *registration.Registration) error {
	query := `
		INSERT INTO registrations (user_id, activity_id, status, points_awarded, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.conn.QueryRow(ctx, query,
		reg.UserID,
		reg.ActivityID,
		string(reg.Status),
		reg.PointsAwarded,
		reg.CreatedAt,
	).Scan(&reg.ID)
	if err != nil {
		if IsUniqueViolation(err) {
			return shared.NewDomainError("registration", "Create", shared.ErrConflict, "you have already registered for this activity")
		}
		if IsForeignKeyViolation(err) {
			return shared.NewDomainError("registration", "Create", shared.ErrNotFound, "activity not found")
		}
		return fmt.Errorf("failed to create registration: %w", err)
	}
	return nil
}

// GetByID returns a registration by ID.
func (r *RegistrationRepository) GetByID(ctx context.Context, id int64) (*registration.Registration, error) {
	query := `SELECT ` + registrationColumns + ` FROM registrations WHERE id = $1`
	return r.scanRegistration(r.conn.QueryRow(ctx, query, id))
}

// List returns registrations matching the filter, newest first.
func (r *RegistrationRepository) List(ctx context.Context, filter registration.Filter) ([]*registration.Registration, error) {
	query := `SELECT ` + registrationColumns + ` FROM registrations
		WHERE ($1::bigint IS NULL OR user_id = $1)
		  AND ($2::bigint IS NULL OR activity_id = $2)
		  AND ($3::text IS NULL OR status = $3)
		ORDER BY created_at DESC`

	rows, err := r.conn.Query(ctx, query, filter.UserID, filter.ActivityID, statusArg(filter.Status))
	if err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}
	defer rows.Close()

	var out []*registration.Registration
	for rows.Next() {
		reg, err := r.scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, reg)
	}
	return out, rows.Err()
}

// Count returns the number of registrations matching the filter.
func (r *RegistrationRepository) Count(ctx context.Context, filter registration.Filter) (int, error) {
	query := `SELECT COUNT(*) FROM registrations
		WHERE ($1::bigint IS NULL OR user_id = $1)
		  AND ($2::bigint IS NULL OR activity_id = $2)
		  AND ($3::text IS NULL OR status = $3)`

	var count int
	err := r.conn.QueryRow(ctx, query, filter.UserID, filter.ActivityID, statusArg(filter.Status)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count registrations: %w", err)
	}
	return count, nil
}

// Update applies a patch, stamps updated_at, and returns the updated row.
func (r *RegistrationRepository) Update(ctx context.Context, id int64, patch registration.Patch) (*registration.Registration, error) {
	query := `
		UPDATE registrations SET
			status         = COALESCE($2, status),
			points_awarded = COALESCE($3, points_awarded),
			updated_at     = NOW()
		WHERE id = $1
		RETURNING ` + registrationColumns

	var status *string
	if patch.Status != nil {
		s := string(*patch.Status)
		status = &s
	}

	return r.scanRegistration(r.conn.QueryRow(ctx, query, id, status, patch.PointsAwarded))
}

// Delete removes a registration. Returns false if no row was deleted.
func (r *RegistrationRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.conn.Exec(ctx, `DELETE FROM registrations WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete registration: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *RegistrationRepository) scanRegistration(row pgx.Row) (*registration.Registration, error) {
	var (
		reg    registration.Registration
		status string
	)
	err := row.Scan(&reg.ID, &reg.UserID, &reg.ActivityID, &status,
		&reg.PointsAwarded, &reg.CreatedAt, &reg.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.NewDomainError("registration", "Get", shared.ErrNotFound, "registration not found")
		}
		return nil, fmt.Errorf("failed to scan registration: %w", err)
	}
	reg.Status = registration.Status(status)
	return &reg, nil
}

func statusArg(s *registration.Status) *string {
	if s == nil {
		return nil
	}
	v := string(*s)
	return &v
}
