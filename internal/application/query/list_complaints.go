package query

import (
	"context"
	"fmt"

	"github.com/activity-hub/student-activity-hub/internal/domain/activity"
	"github.com/activity-hub/student-activity-hub/internal/domain/complaint"
	"github.com/activity-hub/student-activity-hub/internal/domain/user"
)

// ListComplaintsQuery lists complaints visible to the actor: a student's own
// filings, or everything attached to an organization's activities. The
// organization path uses the same per-activity fan-out as registrations.
type ListComplaintsQuery struct {
	Actor user.Actor
}

// ListComplaintsHandler handles ListComplaintsQuery.
type ListComplaintsHandler struct {
	activityRepo  activity.Repository
	complaintRepo complaint.Repository
}

// NewListComplaintsHandler creates a new ListComplaintsHandler.
func NewListComplaintsHandler(activityRepo activity.Repository, complaintRepo complaint.Repository) *ListComplaintsHandler {
	return &ListComplaintsHandler{activityRepo: activityRepo, complaintRepo: complaintRepo}
}

// Handle executes the list complaints query.
func (h *ListComplaintsHandler) Handle(ctx context.Context, q ListComplaintsQuery) ([]*complaint.Complaint, error) {
	if q.Actor.IsStudent() {
		return h.complaintRepo.List(ctx, complaint.Filter{UserID: &q.Actor.ID})
	}

	owned, err := h.activityRepo.List(ctx, activity.Filter{CreatedByID: &q.Actor.ID})
	if err != nil {
		return nil, fmt.Errorf("list_complaints: failed to list owned activities: %w", err)
	}

	all := make([]*complaint.Complaint, 0)
	for _, act := range owned {
		comps, err := h.complaintRepo.List(ctx, complaint.Filter{ActivityID: &act.ID})
		if err != nil {
			return nil, fmt.Errorf("list_complaints: failed to list for activity %d: %w", act.ID, err)
		}
		all = append(all, comps...)
	}
	return all, nil
}
