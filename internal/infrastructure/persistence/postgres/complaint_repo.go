package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/activity-hub/student-activity-hub/internal/domain/complaint"
	"github.com/activity-hub/student-activity-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// COMPLAINT REPOSITORY IMPLEMENTATION
// ══════════════════════════════════════════════════════════════════════════════

// ComplaintRepository implements complaint.Repository for PostgreSQL.
type ComplaintRepository struct {
	conn *Connection
}

// NewComplaintRepository creates a new ComplaintRepository.
func NewComplaintRepository(conn *Connection) *ComplaintRepository {
	return &ComplaintRepository{conn: conn}
}

const complaintColumns = `id, user_id, activity_id, description, status, response, created_at, updated_at`

// Create creates a new complaint.
func (r *ComplaintRepository) Create(ctx context.Context, c *complaint.Complaint) error {
	query := `
		INSERT INTO complaints (user_id, activity_id, description, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.conn.QueryRow(ctx, query,
		c.UserID,
		c.ActivityID,
		c.Description,
		string(c.Status),
		c.CreatedAt,
	).Scan(&c.ID)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return shared.NewDomainError("complaint", "Create", shared.ErrNotFound, "activity not found")
		}
		return fmt.Errorf("failed to create complaint: %w", err)
	}
	return nil
}

// GetByID returns a complaint by ID.
func (r *ComplaintRepository) GetByID(ctx context.Context, id int64) (*complaint.Complaint, error) {
	query := `SELECT ` + complaintColumns + ` FROM complaints WHERE id = $1`
	return r.scanComplaint(r.conn.QueryRow(ctx, query, id))
}

// List returns complaints matching the filter, newest first.
func (r *ComplaintRepository) List(ctx context.Context, filter complaint.Filter) ([]*complaint.Complaint, error) {
	query := `SELECT ` + complaintColumns + ` FROM complaints
		WHERE ($1::bigint IS NULL OR user_id = $1)
		  AND ($2::bigint IS NULL OR activity_id = $2)
		  AND ($3::text IS NULL OR status = $3)
		ORDER BY created_at DESC`

	var status *string
	if filter.Status != nil {
		s := string(*filter.Status)
		status = &s
	}

	rows, err := r.conn.Query(ctx, query, filter.UserID, filter.ActivityID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}
	defer rows.Close()

	var out []*complaint.Complaint
	for rows.Next() {
		c, err := r.scanComplaint(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Update applies a patch, stamps updated_at, and returns the updated row.
func (r *ComplaintRepository) Update(ctx context.Context, id int64, patch complaint.Patch) (*complaint.Complaint, error) {
	query := `
		UPDATE complaints SET
			status     = COALESCE($2, status),
			response   = COALESCE($3, response),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + complaintColumns

	var status *string
	if patch.Status != nil {
		s := string(*patch.Status)
		status = &s
	}

	return r.scanComplaint(r.conn.QueryRow(ctx, query, id, status, patch.Response))
}

func (r *ComplaintRepository) scanComplaint(row pgx.Row) (*complaint.Complaint, error) {
	var (
		c      complaint.Complaint
		status string
	)
	err := row.Scan(&c.ID, &c.UserID, &c.ActivityID, &c.Description, &status,
		&c.Response, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.NewDomainError("complaint", "Get", shared.ErrNotFound, "complaint not found")
		}
		return nil, fmt.Errorf("failed to scan complaint: %w", err)
	}
	c.Status = complaint.Status(status)
	return &c, nil
}
