package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/activity-hub/student-activity-hub/internal/domain/shared"
	"github.com/activity-hub/student-activity-hub/internal/domain/user"
)

// ══════════════════════════════════════════════════════════════════════════════
// USER REPOSITORY IMPLEMENTATION
// ══════════════════════════════════════════════════════════════════════════════

// UserRepository implements user.Repository for PostgreSQL.
type UserRepository struct {
	conn *Connection
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(conn *Connection) *UserRepository {
	return &UserRepository{conn: conn}
}

const userColumns = `id, username, password, full_name, email, role, student_id, org_name`

// Create creates a new user.
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (username, password, full_name, email, role, student_id, org_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.conn.QueryRow(ctx, query,
		u.Username,
		u.Password,
		u.FullName,
		u.Email,
		string(u.Role),
		nullableString(u.StudentID),
		nullableString(u.OrgName),
	).Scan(&u.ID)
	if err != nil {
		if IsUniqueViolation(err) {
			return shared.NewDomainError("user", "Create", shared.ErrConflict, "username already exists")
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByID returns a user by internal ID.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(r.conn.QueryRow(ctx, query, id))
}

// GetByUsername returns a user by unique username.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return r.scanUser(r.conn.QueryRow(ctx, query, username))
}

// Update applies a patch and returns the updated row.
func (r *UserRepository) Update(ctx context.Context, id int64, patch user.Patch) (*user.User, error) {
	query := `
		UPDATE users SET
			full_name = COALESCE($2, full_name),
			email     = COALESCE($3, email),
			password  = COALESCE($4, password),
			org_name  = COALESCE($5, org_name)
		WHERE id = $1
		RETURNING ` + userColumns

	return r.scanUser(r.conn.QueryRow(ctx, query, id,
		patch.FullName, patch.Email, patch.Password, patch.OrgName))
}

func (r *UserRepository) scanUser(row pgx.Row) (*user.User, error) {
	var (
		u         user.User
		role      string
		studentID *string
		orgName   *string
	)
	err := row.Scan(&u.ID, &u.Username, &u.Password, &u.FullName, &u.Email, &role, &studentID, &orgName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.NewDomainError("user", "Get", shared.ErrNotFound, "user not found")
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	u.Role = user.Role(role)
	if studentID != nil {
		u.StudentID = *studentID
	}
	if orgName != nil {
		u.OrgName = *orgName
	}
	return &u, nil
}

// nullableString maps "" to NULL so optional columns stay NULL instead of
// holding empty strings.
func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
