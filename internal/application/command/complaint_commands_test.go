package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/activity-hub/student-activity-hub/internal/domain/activity"
	"github.com/activity-hub/student-activity-hub/internal/domain/complaint"
	"github.com/activity-hub/student-activity-hub/internal/domain/shared"
)

func TestCreateComplaint_Success(t *testing.T) {
	activityRepo := newFakeActivityRepo()
	complaintRepo := newFakeComplaintRepo()
	notificationRepo := newFakeNotificationRepo()
	act := seedActivity(t, activityRepo, 10, activity.StatusOpen, nil)

	h := NewCreateComplaintHandler(activityRepo, complaintRepo, notificationRepo)
	result, err := h.Handle(context.Background(), CreateComplaintCommand{
		Actor:       studentActor(1),
		ActivityID:  act.ID,
		Description: "Points were never awarded",
	})

	require.NoError(t, err)
	assert.Equal(t, complaint.StatusPending, result.Complaint.Status)
	assert.Nil(t, result.Complaint.Response)

	require.NotNil(t, result.Notification)
	assert.Equal(t, int64(10), result.Notification.UserID)
	assert.Equal(t, "New Complaint", result.Notification.Title)
	assert.Equal(t, `A student has filed a complaint about "Beach Cleanup"`, result.Notification.Message)
}

func TestCreateComplaint_WithoutRegistration(t *testing.T) {
	// Filing a complaint does not require a registration for the activity.
	activityRepo := newFakeActivityRepo()
	act := seedActivity(t, activityRepo, 10, activity.StatusDraft, nil)

	h := NewCreateComplaintHandler(activityRepo, newFakeComplaintRepo(), newFakeNotificationRepo())
	result, err := h.Handle(context.Background(), CreateComplaintCommand{
		Actor:       studentActor(7),
		ActivityID:  act.ID,
		Description: "Never got to participate",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), result.Complaint.UserID)
}

func TestCreateComplaint_EmptyDescription(t *testing.T) {
	activityRepo := newFakeActivityRepo()
	act := seedActivity(t, activityRepo, 10, activity.StatusOpen, nil)

	h := NewCreateComplaintHandler(activityRepo, newFakeComplaintRepo(), newFakeNotificationRepo())
	_, err := h.Handle(context.Background(), CreateComplaintCommand{
		Actor:       studentActor(1),
		ActivityID:  act.ID,
		Description: "   ",
	})

	assert.True(t, shared.IsValidation(err))
}

func TestCreateComplaint_ActivityNotFound(t *testing.T) {
	h := NewCreateComplaintHandler(newFakeActivityRepo(), newFakeComplaintRepo(), newFakeNotificationRepo())
	_, err := h.Handle(context.Background(), CreateComplaintCommand{
		Actor:       studentActor(1),
		ActivityID:  404,
		Description: "Missing activity",
	})

	assert.True(t, shared.IsNotFound(err))
}

func TestCreateComplaint_OrganizationForbidden(t *testing.T) {
	activityRepo := newFakeActivityRepo()
	act := seedActivity(t, activityRepo, 10, activity.StatusOpen, nil)

	h := NewCreateComplaintHandler(activityRepo, newFakeComplaintRepo(), newFakeNotificationRepo())
	_, err := h.Handle(context.Background(), CreateComplaintCommand{
		Actor:       orgActor(10),
		ActivityID:  act.ID,
		Description: "Orgs cannot complain",
	})

	assert.True(t, shared.IsForbidden(err))
}

func seedComplaint(t *testing.T, activityRepo *fakeActivityRepo, complaintRepo *fakeComplaintRepo, ownerID int64) *complaint.Complaint {
	t.Helper()
	act := seedActivity(t, activityRepo, ownerID, activity.StatusOpen, nil)
	h := NewCreateComplaintHandler(activityRepo, complaintRepo, newFakeNotificationRepo())
	result, err := h.Handle(context.Background(), CreateComplaintCommand{
		Actor:       studentActor(1),
		ActivityID:  act.ID,
		Description: "Points were never awarded",
	})
	require.NoError(t, err)
	return result.Complaint
}

func TestRespondComplaint_Resolve(t *testing.T) {
	activityRepo := newFakeActivityRepo()
	complaintRepo := newFakeComplaintRepo()
	notificationRepo := newFakeNotificationRepo()
	comp := seedComplaint(t, activityRepo, complaintRepo, 10)

	h := NewRespondComplaintHandler(activityRepo, complaintRepo, notificationRepo)
	result, err := h.Handle(context.Background(), RespondComplaintCommand{
		Actor:       orgActor(10),
		ComplaintID: comp.ID,
		Status:      complaint.StatusResolved,
		Response:    "Points have been added",
	})

	require.NoError(t, err)
	assert.Equal(t, complaint.StatusResolved, result.Complaint.Status)
	require.NotNil(t, result.Complaint.Response)
	assert.Equal(t, "Points have been added", *result.Complaint.Response)
	assert.NotNil(t, result.Complaint.UpdatedAt)

	require.NotNil(t, result.Notification)
	assert.Equal(t, int64(1), result.Notification.UserID)
	assert.Equal(t, "Complaint Response", result.Notification.Title)
	assert.Equal(t, `Your complaint about "Beach Cleanup" has been resolved`, result.Notification.Message)
}

func TestRespondComplaint_NonOwnerForbidden(t *testing.T) {
	activityRepo := newFakeActivityRepo()
	complaintRepo := newFakeComplaintRepo()
	comp := seedComplaint(t, activityRepo, complaintRepo, 10)

	h := NewRespondComplaintHandler(activityRepo, complaintRepo, newFakeNotificationRepo())
	_, err := h.Handle(context.Background(), RespondComplaintCommand{
		Actor:       orgActor(99),
		ComplaintID: comp.ID,
		Status:      complaint.StatusResolved,
		Response:    "Not yours to resolve",
	})

	assert.True(t, shared.IsForbidden(err))
}

func TestRespondComplaint_EmptyResponse(t *testing.T) {
	activityRepo := newFakeActivityRepo()
	complaintRepo := newFakeComplaintRepo()
	comp := seedComplaint(t, activityRepo, complaintRepo, 10)

	h := NewRespondComplaintHandler(activityRepo, complaintRepo, newFakeNotificationRepo())
	_, err := h.Handle(context.Background(), RespondComplaintCommand{
		Actor:       orgActor(10),
		ComplaintID: comp.ID,
		Status:      complaint.StatusResolved,
		Response:    "",
	})

	assert.True(t, shared.IsValidation(err))
}

func TestRespondComplaint_UnknownStatus(t *testing.T) {
	activityRepo := newFakeActivityRepo()
	complaintRepo := newFakeComplaintRepo()
	comp := seedComplaint(t, activityRepo, complaintRepo, 10)

	h := NewRespondComplaintHandler(activityRepo, complaintRepo, newFakeNotificationRepo())
	_, err := h.Handle(context.Background(), RespondComplaintCommand{
		Actor:       orgActor(10),
		ComplaintID: comp.ID,
		Status:      complaint.Status("escalated"),
		Response:    "Unknown status",
	})

	assert.True(t, shared.IsValidation(err))
}

func TestRespondComplaint_RepeatedResponseDuplicatesNotification(t *testing.T) {
	activityRepo := newFakeActivityRepo()
	complaintRepo := newFakeComplaintRepo()
	notificationRepo := newFakeNotificationRepo()
	comp := seedComplaint(t, activityRepo, complaintRepo, 10)

	h := NewRespondComplaintHandler(activityRepo, complaintRepo, notificationRepo)
	for i := 0; i < 2; i++ {
		_, err := h.Handle(context.Background(), RespondComplaintCommand{
			Actor:       orgActor(10),
			ComplaintID: comp.ID,
			Status:      complaint.StatusRejected,
			Response:    "No grounds for the complaint",
		})
		require.NoError(t, err)
	}

	notifications, err := notificationRepo.ListByUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, notifications, 2)
}
