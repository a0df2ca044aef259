// Package registration contains the domain model for a student's request to
// participate in an activity, subject to organization approval.
package registration

import (
	"time"
)

// Status defines the review state of a registration.
//
// The owning organization may move a registration to any status at any time;
// there is deliberately no directed transition graph here. That permissiveness
// mirrors the observed production behavior and is covered by tests.
type Status string

const (
	// StatusPending - awaiting organization review.
	StatusPending Status = "pending"

	// StatusApproved - accepted by the organization.
	StatusApproved Status = "approved"

	// StatusRejected - declined by the organization.
	StatusRejected Status = "rejected"

	// StatusCompleted - student attended; points have been awarded.
	StatusCompleted Status = "completed"
)

// IsValid checks that the status is one of the known values.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCompleted:
		return true
	default:
		return false
	}
}

// Registration links a student to an activity. At most one registration may
// exist per (UserID, ActivityID) pair; the storage layer enforces this with
// a unique index, which is what makes the duplicate check race-safe.
type Registration struct {
	// ID - internal unique identifier (serial).
	ID int64

	// UserID - the registering student.
	UserID int64

	// ActivityID - the target activity.
	ActivityID int64

	// Status - current review state.
	Status Status

	// PointsAwarded - points granted when the registration is completed.
	// Nil until then; once set it is never re-awarded.
	PointsAwarded *int

	// CreatedAt - when the student registered.
	CreatedAt time.Time

	// UpdatedAt - when the organization last changed the status.
	// Nil until the first status update; drives monthly points bucketing.
	UpdatedAt *time.Time
}

// IsCompleted reports whether points have been (or can be) counted for this
// registration.
func (r *Registration) IsCompleted() bool {
	return r.Status == StatusCompleted
}
