package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/activity-hub/student-activity-hub/internal/domain/activity"
	"github.com/activity-hub/student-activity-hub/internal/domain/complaint"
	"github.com/activity-hub/student-activity-hub/internal/domain/notification"
	"github.com/activity-hub/student-activity-hub/internal/domain/shared"
	"github.com/activity-hub/student-activity-hub/internal/domain/user"
)

// ══════════════════════════════════════════════════════════════════════════════
// RESPOND COMPLAINT COMMAND
// The owning organization answers a complaint; a non-empty response text is
// required with every status change. The complainant is notified with the
// new status embedded verbatim.
// ══════════════════════════════════════════════════════════════════════════════

// RespondComplaintCommand updates a complaint's status and response.
type RespondComplaintCommand struct {
	Actor       user.Actor
	ComplaintID int64
	Status      complaint.Status
	Response    string
}

// RespondComplaintResult carries the updated complaint and the outcome of the
// side-effect notification write.
type RespondComplaintResult struct {
	Complaint       *complaint.Complaint
	Notification    *notification.Notification
	NotificationErr error
}

// RespondComplaintHandler handles RespondComplaintCommand.
type RespondComplaintHandler struct {
	activityRepo     activity.Repository
	complaintRepo    complaint.Repository
	notificationRepo notification.Repository
}

// NewRespondComplaintHandler creates a new RespondComplaintHandler.
func NewRespondComplaintHandler(
	activityRepo activity.Repository,
	complaintRepo complaint.Repository,
	notificationRepo notification.Repository,
) *RespondComplaintHandler {
	return &RespondComplaintHandler{
		activityRepo:     activityRepo,
		complaintRepo:    complaintRepo,
		notificationRepo: notificationRepo,
	}
}

// Handle executes the respond complaint command.
func (h *RespondComplaintHandler) Handle(ctx context.Context, cmd RespondComplaintCommand) (*RespondComplaintResult, error) {
	if !cmd.Actor.IsOrganization() {
		return nil, shared.NewDomainError("complaint", "Update", shared.ErrForbidden, "only organizations can respond to complaints")
	}
	if !cmd.Status.IsValid() {
		return nil, shared.NewDomainError("complaint", "Update", shared.ErrValidation, "unknown complaint status")
	}
	if strings.TrimSpace(cmd.Response) == "" {
		return nil, shared.NewDomainError("complaint", "Update", shared.ErrValidation, "response is required")
	}

	comp, err := h.complaintRepo.GetByID(ctx, cmd.ComplaintID)
	if err != nil {
		return nil, err
	}

	act, err := h.activityRepo.GetByID(ctx, comp.ActivityID)
	if err != nil || !act.IsOwnedBy(cmd.Actor.ID) {
		return nil, shared.NewDomainError("complaint", "Update", shared.ErrForbidden, "you can only respond to complaints for your own activities")
	}

	updated, err := h.complaintRepo.Update(ctx, cmd.ComplaintID, complaint.Patch{
		Status:   &cmd.Status,
		Response: &cmd.Response,
	})
	if err != nil {
		return nil, fmt.Errorf("respond_complaint: failed to persist update: %w", err)
	}

	result := &RespondComplaintResult{Complaint: updated}

	notif := notification.ForComplaintAnswered(comp.UserID, comp.ID, act.Title, cmd.Status)
	if err := h.notificationRepo.Create(ctx, notif); err != nil {
		result.NotificationErr = err
	} else {
		result.Notification = notif
	}

	return result, nil
}
