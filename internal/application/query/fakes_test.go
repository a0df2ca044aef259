package query

import (
	"context"
	"sort"

	"github.com/activity-hub/student-activity-hub/internal/domain/activity"
	"github.com/activity-hub/student-activity-hub/internal/domain/complaint"
	"github.com/activity-hub/student-activity-hub/internal/domain/notification"
	"github.com/activity-hub/student-activity-hub/internal/domain/registration"
	"github.com/activity-hub/student-activity-hub/internal/domain/shared"
)

// Read-side fakes: seeded slices with the same filter semantics as the
// postgres repositories, newest first.

type fakeActivityRepo struct {
	activities []*activity.Activity
}

func (r *fakeActivityRepo) List(_ context.Context, filter activity.Filter) ([]*activity.Activity, error) {
	var out []*activity.Activity
	for _, a := range r.activities {
		if filter.Status != nil && a.Status != *filter.Status {
			continue
		}
		if filter.CreatedByID != nil && a.CreatedByID != *filter.CreatedByID {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeActivityRepo) GetByID(_ context.Context, id int64) (*activity.Activity, error) {
	for _, a := range r.activities {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, shared.NewDomainError("activity", "GetByID", shared.ErrNotFound, "activity not found")
}

func (r *fakeActivityRepo) Create(_ context.Context, a *activity.Activity) error {
	r.activities = append(r.activities, a)
	return nil
}

func (r *fakeActivityRepo) Update(_ context.Context, id int64, _ activity.Patch) (*activity.Activity, error) {
	return r.GetByID(context.Background(), id)
}

func (r *fakeActivityRepo) Delete(_ context.Context, _ int64) (bool, error) {
	return false, nil
}

type fakeRegistrationRepo struct {
	registrations []*registration.Registration
}

func (r *fakeRegistrationRepo) matches(reg *registration.Registration, filter registration.Filter) bool {
	if filter.UserID != nil && reg.UserID != *filter.UserID {
		return false
	}
	if filter.ActivityID != nil && reg.ActivityID != *filter.ActivityID {
		return false
	}
	if filter.Status != nil && reg.Status != *filter.Status {
		return false
	}
	return true
}

func (r *fakeRegistrationRepo) List(_ context.Context, filter registration.Filter) ([]*registration.Registration, error) {
	var out []*registration.Registration
	for _, reg := range r.registrations {
		if r.matches(reg, filter) {
			out = append(out, reg)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeRegistrationRepo) GetByID(_ context.Context, id int64) (*registration.Registration, error) {
	for _, reg := range r.registrations {
		if reg.ID == id {
			return reg, nil
		}
	}
	return nil, shared.NewDomainError("registration", "GetByID", shared.ErrNotFound, "registration not found")
}

func (r *fakeRegistrationRepo) Count(_ context.Context, filter registration.Filter) (int, error) {
	count := 0
	for _, reg := range r.registrations {
		if r.matches(reg, filter) {
			count++
		}
	}
	return count, nil
}

func (r *fakeRegistrationRepo) Create(_ context.Context, reg *registration.Registration) error {
	r.registrations = append(r.registrations, reg)
	return nil
}

func (r *fakeRegistrationRepo) Update(_ context.Context, id int64, _ registration.Patch) (*registration.Registration, error) {
	return r.GetByID(context.Background(), id)
}

func (r *fakeRegistrationRepo) Delete(_ context.Context, _ int64) (bool, error) {
	return false, nil
}

type fakeComplaintRepo struct {
	complaints []*complaint.Complaint
}

func (r *fakeComplaintRepo) List(_ context.Context, filter complaint.Filter) ([]*complaint.Complaint, error) {
	var out []*complaint.Complaint
	for _, c := range r.complaints {
		if filter.UserID != nil && c.UserID != *filter.UserID {
			continue
		}
		if filter.ActivityID != nil && c.ActivityID != *filter.ActivityID {
			continue
		}
		if filter.Status != nil && c.Status != *filter.Status {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeComplaintRepo) GetByID(_ context.Context, id int64) (*complaint.Complaint, error) {
	for _, c := range r.complaints {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, shared.NewDomainError("complaint", "GetByID", shared.ErrNotFound, "complaint not found")
}

func (r *fakeComplaintRepo) Create(_ context.Context, c *complaint.Complaint) error {
	r.complaints = append(r.complaints, c)
	return nil
}

func (r *fakeComplaintRepo) Update(_ context.Context, id int64, _ complaint.Patch) (*complaint.Complaint, error) {
	return r.GetByID(context.Background(), id)
}

type fakeNotificationRepo struct {
	notifications []*notification.Notification
}

func (r *fakeNotificationRepo) ListByUser(_ context.Context, userID int64) ([]*notification.Notification, error) {
	var out []*notification.Notification
	for _, n := range r.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeNotificationRepo) Create(_ context.Context, n *notification.Notification) error {
	r.notifications = append(r.notifications, n)
	return nil
}

func (r *fakeNotificationRepo) MarkAsRead(_ context.Context, id int64) (*notification.Notification, error) {
	for _, n := range r.notifications {
		if n.ID == id {
			n.IsRead = true
			return n, nil
		}
	}
	return nil, shared.NewDomainError("notification", "MarkAsRead", shared.ErrNotFound, "notification not found")
}

// fakeSummaryCache records cache traffic for the cache-aside tests.
type fakeSummaryCache struct {
	entries map[int64]*PointsSummary
	gets    int
	sets    int
}

func newFakeSummaryCache() *fakeSummaryCache {
	return &fakeSummaryCache{entries: make(map[int64]*PointsSummary)}
}

func (c *fakeSummaryCache) Get(_ context.Context, userID int64) (*PointsSummary, error) {
	c.gets++
	return c.entries[userID], nil
}

func (c *fakeSummaryCache) Set(_ context.Context, userID int64, summary *PointsSummary) error {
	c.sets++
	c.entries[userID] = summary
	return nil
}

func (c *fakeSummaryCache) Invalidate(_ context.Context, userID int64) error {
	delete(c.entries, userID)
	return nil
}
