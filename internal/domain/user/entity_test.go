package user

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/activity-hub/student-activity-hub/internal/domain/shared"
)

func validStudent() User {
	return User{
		Username:  "student1",
		Password:  "$2a$10$hash",
		FullName:  "Nguyen Van A",
		Email:     "a@example.edu",
		Role:      RoleStudent,
		StudentID: "SV001",
	}
}

func TestUserValidate_Student(t *testing.T) {
	u := validStudent()
	assert.NoError(t, u.Validate())

	u = validStudent()
	u.StudentID = ""
	assert.True(t, shared.IsValidation(u.Validate()))

	u = validStudent()
	u.Username = "  "
	assert.True(t, shared.IsValidation(u.Validate()))

	u = validStudent()
	u.Role = "admin"
	assert.True(t, shared.IsValidation(u.Validate()))
}

func TestUserValidate_Organization(t *testing.T) {
	u := validStudent()
	u.Role = RoleOrganization
	u.StudentID = ""

	// Organizations need an org name, not a student id.
	assert.True(t, shared.IsValidation(u.Validate()))

	u.OrgName = "Youth Union"
	assert.NoError(t, u.Validate())
}

func TestSanitizedStripsPassword(t *testing.T) {
	u := validStudent()
	clean := u.Sanitized()

	assert.Empty(t, clean.Password)
	assert.Equal(t, u.Username, clean.Username)
	// Original is untouched.
	assert.NotEmpty(t, u.Password)
}

func TestActorRoleChecks(t *testing.T) {
	student := Actor{ID: 1, Role: RoleStudent}
	org := Actor{ID: 2, Role: RoleOrganization}

	assert.True(t, student.IsStudent())
	assert.False(t, student.IsOrganization())
	assert.True(t, org.IsOrganization())
	assert.False(t, org.IsStudent())
}
