package command

import (
	"context"
	"fmt"

	"github.com/activity-hub/student-activity-hub/internal/domain/notification"
	"github.com/activity-hub/student-activity-hub/internal/domain/registration"
	"github.com/activity-hub/student-activity-hub/internal/domain/shared"
	"github.com/activity-hub/student-activity-hub/internal/domain/user"

	"github.com/activity-hub/student-activity-hub/internal/domain/activity"
)

// ══════════════════════════════════════════════════════════════════════════════
// REVIEW REGISTRATION COMMAND
// The owning organization moves a registration to any of the four statuses.
// No transition graph is enforced - any-to-any is allowed, matching the
// observed reference behavior (see DESIGN.md).
// ══════════════════════════════════════════════════════════════════════════════

// SummaryInvalidator drops a student's cached points summary after a
// registration changes. Implemented by the redis summary cache.
type SummaryInvalidator interface {
	Invalidate(ctx context.Context, userID int64) error
}

// ReviewRegistrationCommand updates a registration's status and, for
// completions, the awarded points.
type ReviewRegistrationCommand struct {
	Actor          user.Actor
	RegistrationID int64
	Status         registration.Status

	// PointsAwarded is optional; when nil on a completion, the notification
	// message falls back to the activity's default points.
	PointsAwarded *int
}

// ReviewRegistrationResult carries the updated registration and the outcome
// of the side-effect notification write.
type ReviewRegistrationResult struct {
	Registration    *registration.Registration
	Notification    *notification.Notification
	NotificationErr error
}

// ReviewRegistrationHandler handles ReviewRegistrationCommand.
type ReviewRegistrationHandler struct {
	activityRepo     activity.Repository
	registrationRepo registration.Repository
	notificationRepo notification.Repository
	summaryCache     SummaryInvalidator
}

// NewReviewRegistrationHandler creates a new ReviewRegistrationHandler.
// summaryCache may be nil when caching is disabled.
func NewReviewRegistrationHandler(
	activityRepo activity.Repository,
	registrationRepo registration.Repository,
	notificationRepo notification.Repository,
	summaryCache SummaryInvalidator,
) *ReviewRegistrationHandler {
	return &ReviewRegistrationHandler{
		activityRepo:     activityRepo,
		registrationRepo: registrationRepo,
		notificationRepo: notificationRepo,
		summaryCache:     summaryCache,
	}
}

// Handle executes the review registration command.
func (h *ReviewRegistrationHandler) Handle(ctx context.Context, cmd ReviewRegistrationCommand) (*ReviewRegistrationResult, error) {
	if !cmd.Actor.IsOrganization() {
		return nil, shared.NewDomainError("registration", "Update", shared.ErrForbidden, "only organizations can review registrations")
	}
	if !cmd.Status.IsValid() {
		return nil, shared.NewDomainError("registration", "Update", shared.ErrValidation, "unknown registration status")
	}

	reg, err := h.registrationRepo.GetByID(ctx, cmd.RegistrationID)
	if err != nil {
		return nil, err
	}

	act, err := h.activityRepo.GetByID(ctx, reg.ActivityID)
	if err != nil || !act.IsOwnedBy(cmd.Actor.ID) {
		return nil, shared.NewDomainError("registration", "Update", shared.ErrForbidden, "you can only update registrations for your own activities")
	}

	updated, err := h.registrationRepo.Update(ctx, cmd.RegistrationID, registration.Patch{
		Status:        &cmd.Status,
		PointsAwarded: cmd.PointsAwarded,
	})
	if err != nil {
		return nil, fmt.Errorf("review_registration: failed to persist update: %w", err)
	}

	if h.summaryCache != nil {
		// The student's cached summary is stale after any review outcome.
		_ = h.summaryCache.Invalidate(ctx, reg.UserID)
	}

	result := &ReviewRegistrationResult{Registration: updated}

	points := act.Points
	if cmd.PointsAwarded != nil {
		points = *cmd.PointsAwarded
	}
	notif := notification.ForRegistrationReviewed(reg.UserID, reg.ID, act.Title, cmd.Status, points)
	if notif == nil {
		// Moving back to pending carries no message.
		return result, nil
	}
	if err := h.notificationRepo.Create(ctx, notif); err != nil {
		result.NotificationErr = err
	} else {
		result.Notification = notif
	}

	return result, nil
}
