package command

import (
	"context"
	"strings"
	"time"

	"github.com/activity-hub/student-activity-hub/internal/domain/activity"
	"github.com/activity-hub/student-activity-hub/internal/domain/complaint"
	"github.com/activity-hub/student-activity-hub/internal/domain/notification"
	"github.com/activity-hub/student-activity-hub/internal/domain/shared"
	"github.com/activity-hub/student-activity-hub/internal/domain/user"
)

// ══════════════════════════════════════════════════════════════════════════════
// CREATE COMPLAINT COMMAND
// A student files an appeal about an activity. The student does not have to
// hold a registration for it; the client pre-filters eligible activities and
// the server keeps the original loose contract (see DESIGN.md).
// ══════════════════════════════════════════════════════════════════════════════

// CreateComplaintCommand files a complaint about an activity.
type CreateComplaintCommand struct {
	Actor       user.Actor
	ActivityID  int64
	Description string
}

// CreateComplaintResult carries the created complaint and the outcome of the
// side-effect notification write.
type CreateComplaintResult struct {
	Complaint       *complaint.Complaint
	Notification    *notification.Notification
	NotificationErr error
}

// CreateComplaintHandler handles CreateComplaintCommand.
type CreateComplaintHandler struct {
	activityRepo     activity.Repository
	complaintRepo    complaint.Repository
	notificationRepo notification.Repository
}

// NewCreateComplaintHandler creates a new CreateComplaintHandler.
func NewCreateComplaintHandler(
	activityRepo activity.Repository,
	complaintRepo complaint.Repository,
	notificationRepo notification.Repository,
) *CreateComplaintHandler {
	return &CreateComplaintHandler{
		activityRepo:     activityRepo,
		complaintRepo:    complaintRepo,
		notificationRepo: notificationRepo,
	}
}

// Handle executes the create complaint command.
func (h *CreateComplaintHandler) Handle(ctx context.Context, cmd CreateComplaintCommand) (*CreateComplaintResult, error) {
	if !cmd.Actor.IsStudent() {
		return nil, shared.NewDomainError("complaint", "Create", shared.ErrForbidden, "only students can file complaints")
	}
	if strings.TrimSpace(cmd.Description) == "" {
		return nil, shared.NewDomainError("complaint", "Create", shared.ErrValidation, "description is required")
	}

	act, err := h.activityRepo.GetByID(ctx, cmd.ActivityID)
	if err != nil {
		return nil, err
	}

	comp := &complaint.Complaint{
		UserID:      cmd.Actor.ID,
		ActivityID:  cmd.ActivityID,
		Description: cmd.Description,
		Status:      complaint.StatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	if err := comp.Validate(); err != nil {
		return nil, err
	}
	if err := h.complaintRepo.Create(ctx, comp); err != nil {
		return nil, err
	}

	result := &CreateComplaintResult{Complaint: comp}

	notif := notification.ForComplaintCreated(act.CreatedByID, comp.ID, act.Title)
	if err := h.notificationRepo.Create(ctx, notif); err != nil {
		result.NotificationErr = err
	} else {
		result.Notification = notif
	}

	return result, nil
}
