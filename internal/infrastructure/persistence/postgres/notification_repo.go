package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/activity-hub/student-activity-hub/internal/domain/notification"
	"github.com/activity-hub/student-activity-hub/internal/domain/shared"
)

// NotificationRepository implements notification.Repository for PostgreSQL.
type NotificationRepository struct {
	conn *Connection
}

// NewNotificationRepository creates a new NotificationRepository.
func NewNotificationRepository(conn *Connection) *NotificationRepository {
	return &NotificationRepository{conn: conn}
}

const notificationColumns = `id, user_id, title, message, type, reference_id, is_read, created_at`

// Create creates a new notification.
func (r *NotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO notifications (user_id, title, message, type, reference_id, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.conn.QueryRow(ctx, query,
		n.UserID,
		n.Title,
		n.Message,
		string(n.Type),
		n.ReferenceID,
		n.IsRead,
		n.CreatedAt,
	).Scan(&n.ID)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// ListByUser returns all notifications addressed to a user, newest first.
func (r *NotificationRepository) ListByUser(ctx context.Context, userID int64) ([]*notification.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.conn.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var out []*notification.Notification
	for rows.Next() {
		n, err := r.scanNotification(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// MarkAsRead flips is_read and returns the updated row.
func (r *NotificationRepository) MarkAsRead(ctx context.Context, id int64) (*notification.Notification, error) {
	query := `UPDATE notifications SET is_read = TRUE WHERE id = $1 RETURNING ` + notificationColumns
	return r.scanNotification(r.conn.QueryRow(ctx, query, id))
}

func (r *NotificationRepository) scanNotification(row pgx.Row) (*notification.Notification, error) {
	var (
		n   notification.Notification
		typ string
	)
	err := row.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &typ, &n.ReferenceID, &n.IsRead, &n.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.NewDomainError("notification", "Get", shared.ErrNotFound, "notification not found")
		}
		return nil, fmt.Errorf("failed to scan notification: %w", err)
	}
	n.Type = notification.Type(typ)
	return &n, nil
}
