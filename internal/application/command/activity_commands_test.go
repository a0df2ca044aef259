package command

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/activity-hub/student-activity-hub/internal/domain/activity"
	"github.com/activity-hub/student-activity-hub/internal/domain/shared"
)

func validCreateActivityCommand(actorID int64) CreateActivityCommand {
	return CreateActivityCommand{
		Actor:       orgActor(actorID),
		Title:       "Blood Donation Drive",
		Description: "Campus blood donation event",
		Location:    "Main hall",
		StartDate:   time.Now().Add(24 * time.Hour),
		EndDate:     time.Now().Add(30 * time.Hour),
		Points:      15,
	}
}

func TestCreateActivity_DefaultsToDraft(t *testing.T) {
	repo := newFakeActivityRepo()
	h := NewCreateActivityHandler(repo)

	act, err := h.Handle(context.Background(), validCreateActivityCommand(10))

	require.NoError(t, err)
	assert.Equal(t, activity.StatusDraft, act.Status)
	assert.Equal(t, int64(10), act.CreatedByID)
	assert.NotZero(t, act.ID)
}

func TestCreateActivity_ExplicitStatus(t *testing.T) {
	repo := newFakeActivityRepo()
	h := NewCreateActivityHandler(repo)

	cmd := validCreateActivityCommand(10)
	cmd.Status = activity.StatusOpen
	act, err := h.Handle(context.Background(), cmd)

	require.NoError(t, err)
	assert.Equal(t, activity.StatusOpen, act.Status)
}

func TestCreateActivity_StudentForbidden(t *testing.T) {
	h := NewCreateActivityHandler(newFakeActivityRepo())

	cmd := validCreateActivityCommand(10)
	cmd.Actor = studentActor(1)
	_, err := h.Handle(context.Background(), cmd)

	assert.True(t, shared.IsForbidden(err))
}

func TestCreateActivity_InvalidDates(t *testing.T) {
	h := NewCreateActivityHandler(newFakeActivityRepo())

	cmd := validCreateActivityCommand(10)
	cmd.EndDate = cmd.StartDate.Add(-time.Hour)
	_, err := h.Handle(context.Background(), cmd)

	assert.True(t, shared.IsValidation(err))
}

func TestCreateActivity_NonPositivePoints(t *testing.T) {
	h := NewCreateActivityHandler(newFakeActivityRepo())

	cmd := validCreateActivityCommand(10)
	cmd.Points = 0
	_, err := h.Handle(context.Background(), cmd)

	assert.True(t, shared.IsValidation(err))
}

func TestUpdateActivity_OwnerCanPatch(t *testing.T) {
	repo := newFakeActivityRepo()
	act := seedActivity(t, repo, 10, activity.StatusDraft, nil)
	h := NewUpdateActivityHandler(repo)

	title := "Beach Cleanup 2.0"
	open := activity.StatusOpen
	updated, err := h.Handle(context.Background(), UpdateActivityCommand{
		Actor:      orgActor(10),
		ActivityID: act.ID,
		Patch:      activity.Patch{Title: &title, Status: &open},
	})

	require.NoError(t, err)
	assert.Equal(t, "Beach Cleanup 2.0", updated.Title)
	assert.Equal(t, activity.StatusOpen, updated.Status)
	// Untouched fields survive.
	assert.Equal(t, act.Points, updated.Points)
}

func TestUpdateActivity_NonOwnerForbidden(t *testing.T) {
	repo := newFakeActivityRepo()
	act := seedActivity(t, repo, 10, activity.StatusDraft, nil)
	h := NewUpdateActivityHandler(repo)

	title := "Hijacked"
	_, err := h.Handle(context.Background(), UpdateActivityCommand{
		Actor:      orgActor(99),
		ActivityID: act.ID,
		Patch:      activity.Patch{Title: &title},
	})

	assert.True(t, shared.IsForbidden(err))
}

func TestUpdateActivity_PatchBreakingDateOrder(t *testing.T) {
	repo := newFakeActivityRepo()
	act := seedActivity(t, repo, 10, activity.StatusDraft, nil)
	h := NewUpdateActivityHandler(repo)

	// Moving EndDate before the existing StartDate must fail even though the
	// patch alone looks harmless.
	badEnd := act.StartDate.Add(-time.Hour)
	_, err := h.Handle(context.Background(), UpdateActivityCommand{
		Actor:      orgActor(10),
		ActivityID: act.ID,
		Patch:      activity.Patch{EndDate: &badEnd},
	})

	assert.True(t, shared.IsValidation(err))
}

func TestDeleteActivity_Owner(t *testing.T) {
	repo := newFakeActivityRepo()
	act := seedActivity(t, repo, 10, activity.StatusDraft, nil)
	h := NewDeleteActivityHandler(repo)

	err := h.Handle(context.Background(), DeleteActivityCommand{Actor: orgActor(10), ActivityID: act.ID})
	require.NoError(t, err)

	_, err = repo.GetByID(context.Background(), act.ID)
	assert.True(t, shared.IsNotFound(err))
}

func TestDeleteActivity_NonOwnerForbidden(t *testing.T) {
	repo := newFakeActivityRepo()
	act := seedActivity(t, repo, 10, activity.StatusDraft, nil)
	h := NewDeleteActivityHandler(repo)

	err := h.Handle(context.Background(), DeleteActivityCommand{Actor: orgActor(99), ActivityID: act.ID})
	assert.True(t, shared.IsForbidden(err))
}

func TestDeleteActivity_NotFound(t *testing.T) {
	h := NewDeleteActivityHandler(newFakeActivityRepo())

	err := h.Handle(context.Background(), DeleteActivityCommand{Actor: orgActor(10), ActivityID: 404})
	assert.True(t, shared.IsNotFound(err))
}
