package notification

import "context"

// Repository defines persistence operations for notifications.
type Repository interface {
	// ListByUser returns all notifications addressed to a user, newest first.
	ListByUser(ctx context.Context, userID int64) ([]*Notification, error)

	// Create persists a new notification and assigns its ID.
	Create(ctx context.Context, n *Notification) error

	// MarkAsRead flips IsRead and returns the updated row.
	// Returns shared.ErrNotFound if no such notification exists.
	MarkAsRead(ctx context.Context, id int64) (*Notification, error)
}
