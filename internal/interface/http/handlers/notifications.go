package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/activity-hub/student-activity-hub/internal/application/command"
	"github.com/activity-hub/student-activity-hub/internal/application/query"
)

// NotificationHandler serves the /api/notifications endpoints.
type NotificationHandler struct {
	markRead          *command.MarkNotificationReadHandler
	listNotifications *query.ListNotificationsHandler

	logger *zap.Logger
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(
	markRead *command.MarkNotificationReadHandler,
	listNotifications *query.ListNotificationsHandler,
	logger *zap.Logger,
) *NotificationHandler {
	return &NotificationHandler{
		markRead:          markRead,
		listNotifications: listNotifications,
		logger:            logger,
	}
}

// List returns the caller's notifications, newest first.
// GET /api/notifications
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, _ := ActorFromContext(r.Context())

	notifications, err := h.listNotifications.Handle(r.Context(), query.ListNotificationsQuery{Actor: actor})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toNotificationResponses(notifications))
}

// MarkRead marks a notification as read.
// PUT /api/notifications/{id}/read
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	n, err := h.markRead.Handle(r.Context(), command.MarkNotificationReadCommand{NotificationID: id})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toNotificationResponse(n))
}
