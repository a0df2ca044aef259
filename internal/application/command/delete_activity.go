package command

import (
	"context"
	"fmt"

	"github.com/activity-hub/student-activity-hub/internal/domain/activity"
	"github.com/activity-hub/student-activity-hub/internal/domain/shared"
	"github.com/activity-hub/student-activity-hub/internal/domain/user"
)

// DeleteActivityCommand removes an activity owned by the actor.
type DeleteActivityCommand struct {
	Actor      user.Actor
	ActivityID int64
}

// DeleteActivityHandler handles DeleteActivityCommand.
type DeleteActivityHandler struct {
	activityRepo activity.Repository
}

// NewDeleteActivityHandler creates a new DeleteActivityHandler.
func NewDeleteActivityHandler(activityRepo activity.Repository) *DeleteActivityHandler {
	return &DeleteActivityHandler{activityRepo: activityRepo}
}

// Handle executes the delete activity command.
func (h *DeleteActivityHandler) Handle(ctx context.Context, cmd DeleteActivityCommand) error {
	if !cmd.Actor.IsOrganization() {
		return shared.NewDomainError("activity", "Delete", shared.ErrForbidden, "only organizations can delete activities")
	}

	act, err := h.activityRepo.GetByID(ctx, cmd.ActivityID)
	if err != nil {
		return err
	}
	if !act.IsOwnedBy(cmd.Actor.ID) {
		return shared.NewDomainError("activity", "Delete", shared.ErrForbidden, "you can only delete your own activities")
	}

	deleted, err := h.activityRepo.Delete(ctx, cmd.ActivityID)
	if err != nil {
		return fmt.Errorf("delete_activity: failed to delete: %w", err)
	}
	if !deleted {
		return shared.NewDomainError("activity", "Delete", shared.ErrNotFound, "activity already removed")
	}
	return nil
}
