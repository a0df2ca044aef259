package activity

import (
	"context"
	"time"
)

// Filter enumerates the exact-match predicates supported when listing
// activities. Nil fields are ignored. Listing always orders by creation
// time, most recent first.
type Filter struct {
	Status      *Status
	CreatedByID *int64
}

// Patch describes a partial activity update. Nil fields are left untouched.
type Patch struct {
	Title           *string
	Description     *string
	Location        *string
	StartDate       *time.Time
	EndDate         *time.Time
	Points          *int
	MaxParticipants *int
	Status          *Status
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Location == nil &&
		p.StartDate == nil && p.EndDate == nil && p.Points == nil &&
		p.MaxParticipants == nil && p.Status == nil
}

// Repository defines persistence operations for activities.
type Repository interface {
	// List returns activities matching the filter, newest first.
	List(ctx context.Context, filter Filter) ([]*Activity, error)

	// GetByID returns an activity by ID.
	// Returns shared.ErrNotFound if no such activity exists.
	GetByID(ctx context.Context, id int64) (*Activity, error)

	// Create persists a new activity and assigns its ID.
	Create(ctx context.Context, a *Activity) error

	// Update applies the given patch and returns the updated row.
	Update(ctx context.Context, id int64, patch Patch) (*Activity, error)

	// Delete removes an activity. Returns false if no row was deleted.
	Delete(ctx context.Context, id int64) (bool, error)
}
