package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/activity-hub/student-activity-hub/internal/domain/activity"
	"github.com/activity-hub/student-activity-hub/internal/domain/complaint"
	"github.com/activity-hub/student-activity-hub/internal/domain/registration"
	"github.com/activity-hub/student-activity-hub/internal/domain/shared"
	"github.com/activity-hub/student-activity-hub/internal/domain/user"
)

// Fixture: org 10 owns activities 1 and 2, org 20 owns activity 3.
// Students 1 and 2 registered across them.
func scopingFixture() (*fakeActivityRepo, *fakeRegistrationRepo, *fakeComplaintRepo) {
	activityRepo := &fakeActivityRepo{activities: []*activity.Activity{
		{ID: 1, Title: "Cleanup", CreatedByID: 10, Status: activity.StatusOpen},
		{ID: 2, Title: "Donation", CreatedByID: 10, Status: activity.StatusOpen},
		{ID: 3, Title: "Marathon", CreatedByID: 20, Status: activity.StatusOpen},
	}}
	registrationRepo := &fakeRegistrationRepo{registrations: []*registration.Registration{
		{ID: 1, UserID: 1, ActivityID: 1, Status: registration.StatusPending},
		{ID: 2, UserID: 1, ActivityID: 3, Status: registration.StatusPending},
		{ID: 3, UserID: 2, ActivityID: 2, Status: registration.StatusPending},
	}}
	complaintRepo := &fakeComplaintRepo{complaints: []*complaint.Complaint{
		{ID: 1, UserID: 1, ActivityID: 1, Description: "issue", Status: complaint.StatusPending},
		{ID: 2, UserID: 2, ActivityID: 3, Description: "issue", Status: complaint.StatusPending},
	}}
	return activityRepo, registrationRepo, complaintRepo
}

func TestListRegistrations_StudentSeesOwnOnly(t *testing.T) {
	activityRepo, registrationRepo, _ := scopingFixture()
	h := NewListRegistrationsHandler(activityRepo, registrationRepo)

	regs, err := h.Handle(context.Background(), ListRegistrationsQuery{
		Actor: user.Actor{ID: 1, Role: user.RoleStudent},
	})

	require.NoError(t, err)
	require.Len(t, regs, 2)
	for _, reg := range regs {
		assert.Equal(t, int64(1), reg.UserID)
	}
}

func TestListRegistrations_OrgFansOutOverOwnedActivities(t *testing.T) {
	activityRepo, registrationRepo, _ := scopingFixture()
	h := NewListRegistrationsHandler(activityRepo, registrationRepo)

	regs, err := h.Handle(context.Background(), ListRegistrationsQuery{
		Actor: user.Actor{ID: 10, Role: user.RoleOrganization},
	})

	require.NoError(t, err)
	require.Len(t, regs, 2)
	for _, reg := range regs {
		assert.Contains(t, []int64{1, 2}, reg.ActivityID)
	}
}

func TestListRegistrations_OrgWithOwnedActivityFilter(t *testing.T) {
	activityRepo, registrationRepo, _ := scopingFixture()
	h := NewListRegistrationsHandler(activityRepo, registrationRepo)

	activityID := int64(1)
	regs, err := h.Handle(context.Background(), ListRegistrationsQuery{
		Actor:      user.Actor{ID: 10, Role: user.RoleOrganization},
		ActivityID: &activityID,
	})

	require.NoError(t, err)
	require.Len(t, regs, 1)
	assert.Equal(t, int64(1), regs[0].ActivityID)
}

func TestListRegistrations_OrgCannotFilterForeignActivity(t *testing.T) {
	activityRepo, registrationRepo, _ := scopingFixture()
	h := NewListRegistrationsHandler(activityRepo, registrationRepo)

	foreign := int64(3)
	_, err := h.Handle(context.Background(), ListRegistrationsQuery{
		Actor:      user.Actor{ID: 10, Role: user.RoleOrganization},
		ActivityID: &foreign,
	})

	assert.True(t, shared.IsForbidden(err))
}

func TestListRegistrations_OrgMissingActivityFilterForbidden(t *testing.T) {
	// An activityId that does not exist reads as Forbidden, not NotFound.
	activityRepo, registrationRepo, _ := scopingFixture()
	h := NewListRegistrationsHandler(activityRepo, registrationRepo)

	missing := int64(404)
	_, err := h.Handle(context.Background(), ListRegistrationsQuery{
		Actor:      user.Actor{ID: 10, Role: user.RoleOrganization},
		ActivityID: &missing,
	})

	assert.True(t, shared.IsForbidden(err))
}

func TestListRegistrations_OrgWithoutActivities(t *testing.T) {
	h := NewListRegistrationsHandler(&fakeActivityRepo{}, &fakeRegistrationRepo{})

	regs, err := h.Handle(context.Background(), ListRegistrationsQuery{
		Actor: user.Actor{ID: 50, Role: user.RoleOrganization},
	})

	require.NoError(t, err)
	assert.Empty(t, regs)
}

func TestListComplaints_StudentSeesOwnOnly(t *testing.T) {
	activityRepo, _, complaintRepo := scopingFixture()
	h := NewListComplaintsHandler(activityRepo, complaintRepo)

	complaints, err := h.Handle(context.Background(), ListComplaintsQuery{
		Actor: user.Actor{ID: 2, Role: user.RoleStudent},
	})

	require.NoError(t, err)
	require.Len(t, complaints, 1)
	assert.Equal(t, int64(2), complaints[0].UserID)
}

func TestListComplaints_OrgSeesComplaintsAboutOwnedActivities(t *testing.T) {
	activityRepo, _, complaintRepo := scopingFixture()
	h := NewListComplaintsHandler(activityRepo, complaintRepo)

	complaints, err := h.Handle(context.Background(), ListComplaintsQuery{
		Actor: user.Actor{ID: 10, Role: user.RoleOrganization},
	})

	require.NoError(t, err)
	require.Len(t, complaints, 1)
	assert.Equal(t, int64(1), complaints[0].ActivityID)
}

func TestListActivities_StatusFilter(t *testing.T) {
	activityRepo := &fakeActivityRepo{activities: []*activity.Activity{
		{ID: 1, Status: activity.StatusOpen},
		{ID: 2, Status: activity.StatusDraft},
		{ID: 3, Status: activity.StatusOpen},
	}}
	h := NewListActivitiesHandler(activityRepo)

	open := activity.StatusOpen
	activities, err := h.Handle(context.Background(), ListActivitiesQuery{Status: &open})

	require.NoError(t, err)
	require.Len(t, activities, 2)
	// Newest first.
	assert.Equal(t, int64(3), activities[0].ID)
	assert.Equal(t, int64(1), activities[1].ID)
}
