// Package activity contains the domain model for organization-run activities
// that students can register for and earn training points from.
package activity

import (
	"strings"
	"time"

	"github.com/activity-hub/student-activity-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// STATUS
// ══════════════════════════════════════════════════════════════════════════════

// Status defines the lifecycle state of an activity. Transitions are
// caller-driven: the owning organization moves an activity between states,
// there is no clock-based automation.
type Status string

const (
	// StatusDraft - created but not yet visible for registration.
	StatusDraft Status = "draft"

	// StatusOpen - accepting registrations.
	StatusOpen Status = "open"

	// StatusClosed - registration window ended.
	StatusClosed Status = "closed"

	// StatusCompleted - activity took place; points can be awarded.
	StatusCompleted Status = "completed"
)

// IsValid checks that the status is one of the known values.
func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusOpen, StatusClosed, StatusCompleted:
		return true
	default:
		return false
	}
}

// AcceptsRegistrations reports whether students may register right now.
func (s Status) AcceptsRegistrations() bool {
	return s == StatusOpen
}

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: ACTIVITY
// ══════════════════════════════════════════════════════════════════════════════

// Activity is an event created by an organization. Only its creator may
// mutate it or the registrations and complaints attached to it.
type Activity struct {
	// ID - internal unique identifier (serial).
	ID int64

	// Title - short activity name, used in notification messages.
	Title string

	// Description - full description.
	Description string

	// Location - where the activity takes place.
	Location string

	// StartDate / EndDate - scheduled time window. EndDate must be after StartDate.
	StartDate time.Time
	EndDate   time.Time

	// Points - training points rewarded on completion. Positive.
	Points int

	// MaxParticipants - optional registration cap. Nil means unbounded.
	MaxParticipants *int

	// Status - current lifecycle state.
	Status Status

	// CreatedByID - id of the owning organization user.
	CreatedByID int64

	// CreatedAt - when the activity was created.
	CreatedAt time.Time
}

// IsOwnedBy reports whether the given user owns this activity.
func (a *Activity) IsOwnedBy(userID int64) bool {
	return a.CreatedByID == userID
}

// HasCapacity reports whether one more registration fits under the cap.
// An activity without MaxParticipants always has capacity.
func (a *Activity) HasCapacity(currentRegistrations int) bool {
	if a.MaxParticipants == nil {
		return true
	}
	return currentRegistrations < *a.MaxParticipants
}

// Validate checks the invariants of an activity record.
func (a *Activity) Validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return shared.NewDomainError("activity", "Validate", shared.ErrValidation, "title is required")
	}
	if strings.TrimSpace(a.Description) == "" {
		return shared.NewDomainError("activity", "Validate", shared.ErrValidation, "description is required")
	}
	if strings.TrimSpace(a.Location) == "" {
		return shared.NewDomainError("activity", "Validate", shared.ErrValidation, "location is required")
	}
	if a.StartDate.IsZero() || a.EndDate.IsZero() {
		return shared.NewDomainError("activity", "Validate", shared.ErrValidation, "start and end dates are required")
	}
	if !a.EndDate.After(a.StartDate) {
		return shared.NewDomainError("activity", "Validate", shared.ErrValidation, "end date must be after start date")
	}
	if a.Points <= 0 {
		return shared.NewDomainError("activity", "Validate", shared.ErrValidation, "points must be positive")
	}
	if a.MaxParticipants != nil && *a.MaxParticipants <= 0 {
		return shared.NewDomainError("activity", "Validate", shared.ErrValidation, "max participants must be positive when set")
	}
	if !a.Status.IsValid() {
		return shared.NewDomainError("activity", "Validate", shared.ErrValidation, "unknown activity status")
	}
	return nil
}
