package query

import (
	"context"

	"github.com/activity-hub/student-activity-hub/internal/domain/activity"
)

// ListActivitiesQuery lists activities, optionally narrowed by status or
// owner. Activities are public: no actor required.
type ListActivitiesQuery struct {
	Status      *activity.Status
	CreatedByID *int64
}

// ListActivitiesHandler handles ListActivitiesQuery.
type ListActivitiesHandler struct {
	activityRepo activity.Repository
}

// NewListActivitiesHandler creates a new ListActivitiesHandler.
func NewListActivitiesHandler(activityRepo activity.Repository) *ListActivitiesHandler {
	return &ListActivitiesHandler{activityRepo: activityRepo}
}

// Handle executes the list activities query, newest first.
func (h *ListActivitiesHandler) Handle(ctx context.Context, q ListActivitiesQuery) ([]*activity.Activity, error) {
	return h.activityRepo.List(ctx, activity.Filter{
		Status:      q.Status,
		CreatedByID: q.CreatedByID,
	})
}

// GetActivityQuery fetches a single activity by id.
type GetActivityQuery struct {
	ActivityID int64
}

// GetActivityHandler handles GetActivityQuery.
type GetActivityHandler struct {
	activityRepo activity.Repository
}

// NewGetActivityHandler creates a new GetActivityHandler.
func NewGetActivityHandler(activityRepo activity.Repository) *GetActivityHandler {
	return &GetActivityHandler{activityRepo: activityRepo}
}

// Handle executes the get activity query.
func (h *GetActivityHandler) Handle(ctx context.Context, q GetActivityQuery) (*activity.Activity, error) {
	return h.activityRepo.GetByID(ctx, q.ActivityID)
}
