package command

import (
	"context"

	"github.com/activity-hub/student-activity-hub/internal/domain/notification"
)

// MarkNotificationReadCommand flips a notification's read flag.
//
// There is deliberately no recipient check: the reference behavior lets any
// authenticated user acknowledge any notification id, and the ids are not
// enumerable through the API. Recorded as an open decision in DESIGN.md.
type MarkNotificationReadCommand struct {
	NotificationID int64
}

// MarkNotificationReadHandler handles MarkNotificationReadCommand.
type MarkNotificationReadHandler struct {
	notificationRepo notification.Repository
}

// NewMarkNotificationReadHandler creates a new MarkNotificationReadHandler.
func NewMarkNotificationReadHandler(notificationRepo notification.Repository) *MarkNotificationReadHandler {
	return &MarkNotificationReadHandler{notificationRepo: notificationRepo}
}

// Handle executes the mark notification read command.
func (h *MarkNotificationReadHandler) Handle(ctx context.Context, cmd MarkNotificationReadCommand) (*notification.Notification, error) {
	return h.notificationRepo.MarkAsRead(ctx, cmd.NotificationID)
}
