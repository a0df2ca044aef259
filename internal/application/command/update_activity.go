package command

import (
	"context"
	"fmt"

	"github.com/activity-hub/student-activity-hub/internal/domain/activity"
	"github.com/activity-hub/student-activity-hub/internal/domain/shared"
	"github.com/activity-hub/student-activity-hub/internal/domain/user"
)

// ══════════════════════════════════════════════════════════════════════════════
// UPDATE ACTIVITY COMMAND
// Ownership check first: an organization may only touch its own activities.
// ══════════════════════════════════════════════════════════════════════════════

// UpdateActivityCommand contains a partial update for an activity.
type UpdateActivityCommand struct {
	Actor      user.Actor
	ActivityID int64
	Patch      activity.Patch
}

// UpdateActivityHandler handles UpdateActivityCommand.
type UpdateActivityHandler struct {
	activityRepo activity.Repository
}

// NewUpdateActivityHandler creates a new UpdateActivityHandler.
func NewUpdateActivityHandler(activityRepo activity.Repository) *UpdateActivityHandler {
	return &UpdateActivityHandler{activityRepo: activityRepo}
}

// Handle executes the update activity command.
func (h *UpdateActivityHandler) Handle(ctx context.Context, cmd UpdateActivityCommand) (*activity.Activity, error) {
	if !cmd.Actor.IsOrganization() {
		return nil, shared.NewDomainError("activity", "Update", shared.ErrForbidden, "only organizations can update activities")
	}

	act, err := h.activityRepo.GetByID(ctx, cmd.ActivityID)
	if err != nil {
		return nil, err
	}
	if !act.IsOwnedBy(cmd.Actor.ID) {
		return nil, shared.NewDomainError("activity", "Update", shared.ErrForbidden, "you can only update your own activities")
	}

	if err := validateActivityPatch(act, cmd.Patch); err != nil {
		return nil, err
	}

	updated, err := h.activityRepo.Update(ctx, cmd.ActivityID, cmd.Patch)
	if err != nil {
		return nil, fmt.Errorf("update_activity: failed to persist update: %w", err)
	}
	return updated, nil
}

// validateActivityPatch checks the patched fields against the entity
// invariants, including the cross-field date ordering when only one side of
// the window changes.
func validateActivityPatch(current *activity.Activity, patch activity.Patch) error {
	merged := *current
	if patch.Title != nil {
		merged.Title = *patch.Title
	}
	if patch.Description != nil {
		merged.Description = *patch.Description
	}
	if patch.Location != nil {
		merged.Location = *patch.Location
	}
	if patch.StartDate != nil {
		merged.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		merged.EndDate = *patch.EndDate
	}
	if patch.Points != nil {
		merged.Points = *patch.Points
	}
	if patch.MaxParticipants != nil {
		merged.MaxParticipants = patch.MaxParticipants
	}
	if patch.Status != nil {
		merged.Status = *patch.Status
	}
	return merged.Validate()
}
