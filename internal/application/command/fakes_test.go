package command

import (
	"context"
	"sort"
	"time"

	"github.com/activity-hub/student-activity-hub/internal/domain/activity"
	"github.com/activity-hub/student-activity-hub/internal/domain/complaint"
	"github.com/activity-hub/student-activity-hub/internal/domain/notification"
	"github.com/activity-hub/student-activity-hub/internal/domain/registration"
	"github.com/activity-hub/student-activity-hub/internal/domain/shared"
	"github.com/activity-hub/student-activity-hub/internal/domain/user"
)

// In-memory repository fakes shared by the command tests. They reproduce the
// storage contracts the handlers rely on: NotFound on missing rows, Conflict
// on duplicate keys, newest-first listing, UpdatedAt stamping.

// ─────────────────────────────────────────────────────────────────────────────
// users
// ─────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	nextID int64
	users  map[int64]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*user.User)}
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, shared.NewDomainError("user", "GetByID", shared.ErrNotFound, "user not found")
	}
	clone := *u
	return &clone, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*user.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, shared.NewDomainError("user", "GetByUsername", shared.ErrNotFound, "user not found")
}

func (r *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return shared.NewDomainError("user", "Create", shared.ErrConflict, "username already taken")
		}
	}
	r.nextID++
	u.ID = r.nextID
	clone := *u
	r.users[u.ID] = &clone
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, id int64, patch user.Patch) (*user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, shared.NewDomainError("user", "Update", shared.ErrNotFound, "user not found")
	}
	if patch.FullName != nil {
		u.FullName = *patch.FullName
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.Password != nil {
		u.Password = *patch.Password
	}
	if patch.OrgName != nil {
		u.OrgName = *patch.OrgName
	}
	clone := *u
	return &clone, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// activities
// ─────────────────────────────────────────────────────────────────────────────

type fakeActivityRepo struct {
	nextID     int64
	activities map[int64]*activity.Activity
}

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{activities: make(map[int64]*activity.Activity)}
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
		clone := *a
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeActivityRepo) GetByID(_ context.Context, id int64) (*activity.Activity, error) {
	a, ok := r.activities[id]
	if !ok {
		return nil, shared.NewDomainError("activity", "GetByID", shared.ErrNotFound, "activity not found")
	}
	clone := *a
	return &clone, nil
}

func (r *fakeActivityRepo) Create(_ context.Context, a *activity.Activity) error {
	r.nextID++
	a.ID = r.nextID
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	clone := *a
	r.activities[a.ID] = &clone
	return nil
}

func (r *fakeActivityRepo) Update(_ context.Context, id int64, patch activity.Patch) (*activity.Activity, error) {
	a, ok := r.activities[id]
	if !ok {
		return nil, shared.NewDomainError("activity", "Update", shared.ErrNotFound, "activity not found")
	}
	if patch.Title != nil {
		a.Title = *patch.Title
	}
	if patch.Description != nil {
		a.Description = *patch.Description
	}
	if patch.Location != nil {
		a.Location = *patch.Location
	}
	if patch.StartDate != nil {
		a.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		a.EndDate = *patch.EndDate
	}
	if patch.Points != nil {
		a.Points = *patch.Points
	}
	if patch.MaxParticipants != nil {
		a.MaxParticipants = patch.MaxParticipants
	}
	if patch.Status != nil {
		a.Status = *patch.Status
	}
	clone := *a
	return &clone, nil
}

func (r *fakeActivityRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.activities[id]; !ok {
		return false, nil
	}
	delete(r.activities, id)
	return true, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// registrations
// ─────────────────────────────────────────────────────────────────────────────

type fakeRegistrationRepo struct {
	nextID        int64
	registrations map[int64]*registration.Registration
}

func newFakeRegistrationRepo() *fakeRegistrationRepo {
	return &fakeRegistrationRepo{registrations: make(map[int64]*registration.Registration)}
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
			clone := *reg
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeRegistrationRepo) GetByID(_ context.Context, id int64) (*registration.Registration, error) {
	reg, ok := r.registrations[id]
	if !ok {
		return nil, shared.NewDomainError("registration", "GetByID", shared.ErrNotFound, "registration not found")
	}
	clone := *reg
	return &clone, nil
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
	for _, existing := range r.registrations {
		if existing.UserID == reg.UserID && existing.ActivityID == reg.ActivityID {
			return shared.NewDomainError("registration", "Create", shared.ErrConflict, "already registered for this activity")
		}
	}
	r.nextID++
	reg.ID = r.nextID
	if reg.CreatedAt.IsZero() {
		reg.CreatedAt = time.Now()
	}
	clone := *reg
	r.registrations[reg.ID] = &clone
	return nil
}

func (r *fakeRegistrationRepo) Update(_ context.Context, id int64, patch registration.Patch) (*registration.Registration, error) {
	reg, ok := r.registrations[id]
	if !ok {
		return nil, shared.NewDomainError("registration", "Update", shared.ErrNotFound, "registration not found")
	}
	if patch.Status != nil {
		reg.Status = *patch.Status
	}
	if patch.PointsAwarded != nil {
		reg.PointsAwarded = patch.PointsAwarded
	}
	now := time.Now()
	reg.UpdatedAt = &now
	clone := *reg
	return &clone, nil
}

func (r *fakeRegistrationRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.registrations[id]; !ok {
		return false, nil
	}
	delete(r.registrations, id)
	return true, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// complaints
// ─────────────────────────────────────────────────────────────────────────────

type fakeComplaintRepo struct {
	nextID     int64
	complaints map[int64]*complaint.Complaint
}

func newFakeComplaintRepo() *fakeComplaintRepo {
	return &fakeComplaintRepo{complaints: make(map[int64]*complaint.Complaint)}
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
		clone := *c
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeComplaintRepo) GetByID(_ context.Context, id int64) (*complaint.Complaint, error) {
	c, ok := r.complaints[id]
	if !ok {
		return nil, shared.NewDomainError("complaint", "GetByID", shared.ErrNotFound, "complaint not found")
	}
	clone := *c
	return &clone, nil
}

func (r *fakeComplaintRepo) Create(_ context.Context, c *complaint.Complaint) error {
	r.nextID++
	c.ID = r.nextID
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	clone := *c
	r.complaints[c.ID] = &clone
	return nil
}

func (r *fakeComplaintRepo) Update(_ context.Context, id int64, patch complaint.Patch) (*complaint.Complaint, error) {
	c, ok := r.complaints[id]
	if !ok {
		return nil, shared.NewDomainError("complaint", "Update", shared.ErrNotFound, "complaint not found")
	}
	if patch.Status != nil {
		c.Status = *patch.Status
	}
	if patch.Response != nil {
		c.Response = patch.Response
	}
	now := time.Now()
	c.UpdatedAt = &now
	clone := *c
	return &clone, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// notifications
// ─────────────────────────────────────────────────────────────────────────────

type fakeNotificationRepo struct {
	nextID        int64
	notifications []*notification.Notification

	// createErr makes Create fail, for best-effort delivery tests.
	createErr error
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{}
}

func (r *fakeNotificationRepo) ListByUser(_ context.Context, userID int64) ([]*notification.Notification, error) {
	var out []*notification.Notification
	for _, n := range r.notifications {
		if n.UserID == userID {
			clone := *n
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeNotificationRepo) Create(_ context.Context, n *notification.Notification) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	n.ID = r.nextID
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	clone := *n
	r.notifications = append(r.notifications, &clone)
	return nil
}

func (r *fakeNotificationRepo) MarkAsRead(_ context.Context, id int64) (*notification.Notification, error) {
	for _, n := range r.notifications {
		if n.ID == id {
			n.IsRead = true
			clone := *n
			return &clone, nil
		}
	}
	return nil, shared.NewDomainError("notification", "MarkAsRead", shared.ErrNotFound, "notification not found")
}

// ─────────────────────────────────────────────────────────────────────────────
// summary invalidation
// ─────────────────────────────────────────────────────────────────────────────

type fakeInvalidator struct {
	invalidated []int64
}

func (f *fakeInvalidator) Invalidate(_ context.Context, userID int64) error {
	f.invalidated = append(f.invalidated, userID)
	return nil
}
