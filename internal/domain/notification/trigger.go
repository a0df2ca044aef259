package notification

import (
	"fmt"

	"github.com/activity-hub/student-activity-hub/internal/domain/complaint"
	"github.com/activity-hub/student-activity-hub/internal/domain/registration"
)

// ══════════════════════════════════════════════════════════════════════════════
// TRIGGERS
// Each successful state transition maps to zero or one notification payload.
// These are pure functions; persistence (and the best-effort nature of the
// write) lives with the caller.
//
// Triggers are NOT idempotent: repeating the same transition yields a fresh
// payload each time, so duplicated updates produce duplicated notifications.
// Known limitation carried over from the reference behavior, asserted by
// tests rather than silently fixed.
// ══════════════════════════════════════════════════════════════════════════════

// ForRegistrationCreated notifies the activity owner that a student
// registered.
func ForRegistrationCreated(ownerID, registrationID int64, activityTitle string) *Notification {
	return &Notification{
		UserID:      ownerID,
		Title:       "New Registration",
		Message:     fmt.Sprintf("A student has registered for %q", activityTitle),
		Type:        TypeRegistration,
		ReferenceID: &registrationID,
	}
}

// ForRegistrationReviewed notifies the registrant about a status change.
// Returns nil for transitions that carry no message (moving back to pending).
//
// pointsAwarded is the value set with the transition; when the organization
// omits it, callers pass the activity's default points so the completed
// message still names a number.
func ForRegistrationReviewed(studentID, registrationID int64, activityTitle string, status registration.Status, pointsAwarded int) *Notification {
	var message string
	switch status {
	case registration.StatusApproved:
		message = fmt.Sprintf("Your registration for %q has been approved", activityTitle)
	case registration.StatusRejected:
		message = fmt.Sprintf("Your registration for %q has been rejected", activityTitle)
	case registration.StatusCompleted:
		message = fmt.Sprintf("You have been awarded %d points for %q", pointsAwarded, activityTitle)
	default:
		return nil
	}

	return &Notification{
		UserID:      studentID,
		Title:       "Registration Update",
		Message:     message,
		Type:        TypeRegistration,
		ReferenceID: &registrationID,
	}
}

// ForComplaintCreated notifies the activity owner that a complaint was filed.
func ForComplaintCreated(ownerID, complaintID int64, activityTitle string) *Notification {
	return &Notification{
		UserID:      ownerID,
		Title:       "New Complaint",
		Message:     fmt.Sprintf("A student has filed a complaint about %q", activityTitle),
		Type:        TypeComplaint,
		ReferenceID: &complaintID,
	}
}

// ForComplaintAnswered notifies the complainant, embedding the new status
// verbatim in the message.
func ForComplaintAnswered(studentID, complaintID int64, activityTitle string, status complaint.Status) *Notification {
	return &Notification{
		UserID:      studentID,
		Title:       "Complaint Response",
		Message:     fmt.Sprintf("Your complaint about %q has been %s", activityTitle, status),
		Type:        TypeComplaint,
		ReferenceID: &complaintID,
	}
}
