// Package complaint contains the domain model for student appeals about
// point awards or activity outcomes.
package complaint

import (
	"strings"
	"time"

	"github.com/activity-hub/student-activity-hub/internal/domain/shared"
)

// Status defines the handling state of a complaint.
type Status string

const (
	// StatusPending - awaiting an organization response.
	StatusPending Status = "pending"

	// StatusResolved - acknowledged and settled in the student's favor.
	StatusResolved Status = "resolved"

	// StatusRejected - declined by the organization.
	StatusRejected Status = "rejected"
)

// IsValid checks that the status is one of the known values.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusResolved, StatusRejected:
		return true
	default:
		return false
	}
}

// Complaint is a student's appeal regarding an activity. Only the
// organization that owns the referenced activity may answer it.
//
// Creation does not require the student to hold a registration for the
// activity; eligible activities are filtered client-side only. Preserved
// as the original contract, see DESIGN.md.
type Complaint struct {
	// ID - internal unique identifier (serial).
	ID int64

	// UserID - the complaining student.
	UserID int64

	// ActivityID - the activity the complaint is about.
	ActivityID int64

	// Description - the student's appeal text.
	Description string

	// Status - current handling state.
	Status Status

	// Response - the organization's answer. Nil until answered.
	Response *string

	// CreatedAt - when the complaint was filed.
	CreatedAt time.Time

	// UpdatedAt - when the organization last changed it. Nil until then.
	UpdatedAt *time.Time
}

// Validate checks the invariants of a complaint record.
func (c *Complaint) Validate() error {
	if strings.TrimSpace(c.Description) == "" {
		return shared.NewDomainError("complaint", "Validate", shared.ErrValidation, "description is required")
	}
	if !c.Status.IsValid() {
		return shared.NewDomainError("complaint", "Validate", shared.ErrValidation, "unknown complaint status")
	}
	return nil
}
