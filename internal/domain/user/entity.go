// Package user contains the account model shared by students and
// organization admins. Pure business rules - no external dependencies.
package user

import (
	"strings"

	"github.com/activity-hub/student-activity-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// ROLE
// ══════════════════════════════════════════════════════════════════════════════

// Role defines the account kind. Every authorization decision in the
// application branches on this tag, never on raw strings.
type Role string

const (
	// RoleStudent - a student who registers for activities and earns points.
	RoleStudent Role = "student"

	// RoleOrganization - an organization admin who runs activities.
	RoleOrganization Role = "organization"
)

// IsValid checks that the role is one of the known values.
func (r Role) IsValid() bool {
	return r == RoleStudent || r == RoleOrganization
}

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// ══════════════════════════════════════════════════════════════════════════════
// ACTOR
// ══════════════════════════════════════════════════════════════════════════════

// Actor identifies the authenticated caller of a command or query.
// Handlers receive it explicitly per call; there is no ambient session state
// inside the rules layer.
type Actor struct {
	ID   int64
	Role Role
}

// IsStudent reports whether the actor is a student account.
func (a Actor) IsStudent() bool {
	return a.Role == RoleStudent
}

// IsOrganization reports whether the actor is an organization account.
func (a Actor) IsOrganization() bool {
	return a.Role == RoleOrganization
}

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: USER
// ══════════════════════════════════════════════════════════════════════════════

// User is a single account row. The Password field always holds an opaque
// credential hash, never the plaintext.
type User struct {
	// ID - internal unique identifier (serial).
	ID int64

	// Username - unique login name.
	Username string

	// Password - bcrypt hash of the password.
	Password string

	// FullName - display name.
	FullName string

	// Email - contact email.
	Email string

	// Role - student or organization.
	Role Role

	// StudentID - institutional student number; set only for students.
	StudentID string

	// OrgName - organization display name; set only for organizations.
	OrgName string
}

// Actor returns the authorization identity of this user.
func (u *User) Actor() Actor {
	return Actor{ID: u.ID, Role: u.Role}
}

// Sanitized returns a copy with the credential hash removed, safe for
// serialization back to clients.
func (u *User) Sanitized() User {
	clone := *u
	clone.Password = ""
	return clone
}

// Validate checks the invariants of a user record.
func (u *User) Validate() error {
	if strings.TrimSpace(u.Username) == "" {
		return shared.NewDomainError("user", "Validate", shared.ErrValidation, "username is required")
	}
	if strings.TrimSpace(u.FullName) == "" {
		return shared.NewDomainError("user", "Validate", shared.ErrValidation, "full name is required")
	}
	if strings.TrimSpace(u.Email) == "" {
		return shared.NewDomainError("user", "Validate", shared.ErrValidation, "email is required")
	}
	if !u.Role.IsValid() {
		return shared.NewDomainError("user", "Validate", shared.ErrValidation, "role must be student or organization")
	}
	if u.Role == RoleStudent && strings.TrimSpace(u.StudentID) == "" {
		return shared.NewDomainError("user", "Validate", shared.ErrValidation, "student accounts require a student id")
	}
	if u.Role == RoleOrganization && strings.TrimSpace(u.OrgName) == "" {
		return shared.NewDomainError("user", "Validate", shared.ErrValidation, "organization accounts require an organization name")
	}
	return nil
}
