package query

import (
	"context"

	"github.com/activity-hub/student-activity-hub/internal/domain/notification"
	"github.com/activity-hub/student-activity-hub/internal/domain/user"
)

// ListNotificationsQuery lists the actor's notifications, newest first.
type ListNotificationsQuery struct {
	Actor user.Actor
}

// ListNotificationsHandler handles ListNotificationsQuery.
type ListNotificationsHandler struct {
	notificationRepo notification.Repository
}

// NewListNotificationsHandler creates a new ListNotificationsHandler.
func NewListNotificationsHandler(notificationRepo notification.Repository) *ListNotificationsHandler {
	return &ListNotificationsHandler{notificationRepo: notificationRepo}
}

// Handle executes the list notifications query.
func (h *ListNotificationsHandler) Handle(ctx context.Context, q ListNotificationsQuery) ([]*notification.Notification, error) {
	return h.notificationRepo.ListByUser(ctx, q.Actor.ID)
}
