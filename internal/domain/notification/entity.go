// Package notification contains the notification model and the trigger rules
// that derive notifications from registration and complaint state changes.
package notification

import (
	"strings"
	"time"

	"github.com/activity-hub/student-activity-hub/internal/domain/shared"
)

// Type classifies what kind of event a notification refers to.
type Type string

const (
	// TypeActivity - about an activity itself.
	TypeActivity Type = "activity"

	// TypeRegistration - about a registration or its review outcome.
	TypeRegistration Type = "registration"

	// TypeComplaint - about a complaint or its response.
	TypeComplaint Type = "complaint"

	// TypeSystem - administrative messages.
	TypeSystem Type = "system"
)

// IsValid checks that the type is one of the known values.
func (t Type) IsValid() bool {
	switch t {
	case TypeActivity, TypeRegistration, TypeComplaint, TypeSystem:
		return true
	default:
		return false
	}
}

// Notification is a persisted message addressed to a single user. Rows are
// created exclusively as side effects of registration and complaint
// transitions; the only mutation afterwards is flipping IsRead.
type Notification struct {
	// ID - internal unique identifier (serial).
	ID int64

	// UserID - the recipient.
	UserID int64

	// Title - short heading shown in the notification list.
	Title string

	// Message - full text, already rendered from the trigger template.
	Message string

	// Type - event classification.
	Type Type

	// ReferenceID - id of the entity that triggered this notification.
	// Nil for system messages.
	ReferenceID *int64

	// IsRead - whether the recipient has opened it.
	IsRead bool

	// CreatedAt - when the notification was emitted.
	CreatedAt time.Time
}

// Validate checks the invariants of a notification record.
func (n *Notification) Validate() error {
	if n.UserID == 0 {
		return shared.NewDomainError("notification", "Validate", shared.ErrValidation, "recipient is required")
	}
	if strings.TrimSpace(n.Title) == "" || strings.TrimSpace(n.Message) == "" {
		return shared.NewDomainError("notification", "Validate", shared.ErrValidation, "title and message are required")
	}
	if !n.Type.IsValid() {
		return shared.NewDomainError("notification", "Validate", shared.ErrValidation, "unknown notification type")
	}
	return nil
}
