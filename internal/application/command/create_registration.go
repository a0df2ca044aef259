package command

import (
	"context"
	"fmt"
	"time"

	"github.com/activity-hub/student-activity-hub/internal/domain/activity"
	"github.com/activity-hub/student-activity-hub/internal/domain/notification"
	"github.com/activity-hub/student-activity-hub/internal/domain/registration"
	"github.com/activity-hub/student-activity-hub/internal/domain/shared"
	"github.com/activity-hub/student-activity-hub/internal/domain/user"
)

// ══════════════════════════════════════════════════════════════════════════════
// CREATE REGISTRATION COMMAND
// Precondition order matches the reference flow: activity exists, no duplicate
// registration, activity open, capacity available. The duplicate check here is
// advisory only - the unique index on (user_id, activity_id) is what holds
// under concurrent submissions.
// ══════════════════════════════════════════════════════════════════════════════

// CreateRegistrationCommand registers the acting student for an activity.
type CreateRegistrationCommand struct {
	Actor      user.Actor
	ActivityID int64
}

// CreateRegistrationResult carries the created registration and the outcome
// of the side-effect notification write.
type CreateRegistrationResult struct {
	Registration *registration.Registration

	// Notification is the payload emitted to the activity owner; nil only if
	// the write failed.
	Notification *notification.Notification

	// NotificationErr records a failed notification write. The primary
	// mutation is never rolled back for it; callers may log it.
	NotificationErr error
}

// CreateRegistrationHandler handles CreateRegistrationCommand.
type CreateRegistrationHandler struct {
	activityRepo     activity.Repository
	registrationRepo registration.Repository
	notificationRepo notification.Repository
}

// NewCreateRegistrationHandler creates a new CreateRegistrationHandler.
func NewCreateRegistrationHandler(
	activityRepo activity.Repository,
	registrationRepo registration.Repository,
	notificationRepo notification.Repository,
) *CreateRegistrationHandler {
	return &CreateRegistrationHandler{
		activityRepo:     activityRepo,
		registrationRepo: registrationRepo,
		notificationRepo: notificationRepo,
	}
}

// Handle executes the create registration command.
func (h *CreateRegistrationHandler) Handle(ctx context.Context, cmd CreateRegistrationCommand) (*CreateRegistrationResult, error) {
	if !cmd.Actor.IsStudent() {
		return nil, shared.NewDomainError("registration", "Create", shared.ErrForbidden, "only students can register for activities")
	}

	act, err := h.activityRepo.GetByID(ctx, cmd.ActivityID)
	if err != nil {
		return nil, err
	}

	existing, err := h.registrationRepo.List(ctx, registration.Filter{
		UserID:     &cmd.Actor.ID,
		ActivityID: &cmd.ActivityID,
	})
	if err != nil {
		return nil, fmt.Errorf("create_registration: duplicate check failed: %w", err)
	}
	if len(existing) > 0 {
		return nil, shared.NewDomainError("registration", "Create", shared.ErrConflict, "you have already registered for this activity")
	}

	if !act.Status.AcceptsRegistrations() {
		return nil, shared.NewDomainError("registration", "Create", shared.ErrInvalidState, "this activity is not open for registration")
	}

	if act.MaxParticipants != nil {
		count, err := h.registrationRepo.Count(ctx, registration.Filter{ActivityID: &cmd.ActivityID})
		if err != nil {
			return nil, fmt.Errorf("create_registration: capacity check failed: %w", err)
		}
		if !act.HasCapacity(count) {
			return nil, shared.NewDomainError("registration", "Create", shared.ErrCapacityExceeded, "this activity is already full")
		}
	}

	reg := &registration.Registration{
		UserID:     cmd.Actor.ID,
		ActivityID: cmd.ActivityID,
		Status:     registration.StatusPending,
		CreatedAt:  time.Now().UTC(),
	}
	if err := h.registrationRepo.Create(ctx, reg); err != nil {
		return nil, err
	}

	result := &CreateRegistrationResult{Registration: reg}

	// Best-effort side effect: a failure here must not undo the registration.
	notif := notification.ForRegistrationCreated(act.CreatedByID, reg.ID, act.Title)
	if err := h.notificationRepo.Create(ctx, notif); err != nil {
		result.NotificationErr = err
	} else {
		result.Notification = notif
	}

	return result, nil
}
