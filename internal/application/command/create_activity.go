// Package command contains write operations (CQRS - Commands). Every handler
// validates the acting user, the target entity state, and the input before a
// single repository write, and derives at most one side-effect notification.
package command

import (
	"context"
	"fmt"
	"time"

	"github.com/activity-hub/student-activity-hub/internal/domain/activity"
	"github.com/activity-hub/student-activity-hub/internal/domain/shared"
	"github.com/activity-hub/student-activity-hub/internal/domain/user"
)

// ══════════════════════════════════════════════════════════════════════════════
// CREATE ACTIVITY COMMAND
// Only organization accounts create activities; the creator becomes the owner
// of every registration and complaint attached to it later.
// ══════════════════════════════════════════════════════════════════════════════

// CreateActivityCommand contains the data for a new activity.
type CreateActivityCommand struct {
	// Actor is the authenticated caller.
	Actor user.Actor

	Title           string
	Description     string
	Location        string
	StartDate       time.Time
	EndDate         time.Time
	Points          int
	MaxParticipants *int

	// Status is optional; empty defaults to draft.
	Status activity.Status
}

// CreateActivityHandler handles CreateActivityCommand.
type CreateActivityHandler struct {
	activityRepo activity.Repository
}

// NewCreateActivityHandler creates a new CreateActivityHandler.
func NewCreateActivityHandler(activityRepo activity.Repository) *CreateActivityHandler {
	return &CreateActivityHandler{activityRepo: activityRepo}
}

// Handle executes the create activity command.
func (h *CreateActivityHandler) Handle(ctx context.Context, cmd CreateActivityCommand) (*activity.Activity, error) {
	if !cmd.Actor.IsOrganization() {
		return nil, shared.NewDomainError("activity", "Create", shared.ErrForbidden, "only organizations can create activities")
	}

	status := cmd.Status
	if status == "" {
		status = activity.StatusDraft
	}

	act := &activity.Activity{
		Title:           cmd.Title,
		Description:     cmd.Description,
		Location:        cmd.Location,
		StartDate:       cmd.StartDate,
		EndDate:         cmd.EndDate,
		Points:          cmd.Points,
		MaxParticipants: cmd.MaxParticipants,
		Status:          status,
		CreatedByID:     cmd.Actor.ID,
		CreatedAt:       time.Now().UTC(),
	}
	if err := act.Validate(); err != nil {
		return nil, err
	}

	if err := h.activityRepo.Create(ctx, act); err != nil {
		return nil, fmt.Errorf("create_activity: failed to persist activity: %w", err)
	}

	return act, nil
}
