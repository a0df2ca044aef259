package registration

import "context"

// Filter enumerates the exact-match predicates supported when listing
// registrations. Nil fields are ignored. Listing orders by creation time,
// most recent first.
type Filter struct {
	UserID     *int64
	ActivityID *int64
	Status     *Status
}

// Patch describes a partial registration update. Status changes always stamp
// UpdatedAt at the storage layer.
type Patch struct {
	Status        *Status
	PointsAwarded *int
}

// Repository defines persistence operations for registrations.
type Repository interface {
	// List returns registrations matching the filter, newest first.
	List(ctx context.Context, filter Filter) ([]*Registration, error)

	// GetByID returns a registration by ID.
	// Returns shared.ErrNotFound if no such registration exists.
	GetByID(ctx context.Context, id int64) (*Registration, error)

	// Count returns the number of registrations matching the filter.
	Count(ctx context.Context, filter Filter) (int, error)

	// Create persists a new registration and assigns its ID.
	// Returns shared.ErrConflict if a registration for the same
	// (UserID, ActivityID) pair already exists; a unique index backs this
	// so concurrent duplicate submissions cannot both succeed.
	Create(ctx context.Context, r *Registration) error

	// Update applies the patch, stamps UpdatedAt, and returns the updated row.
	Update(ctx context.Context, id int64, patch Patch) (*Registration, error)

	// Delete removes a registration. Returns false if no row was deleted.
	Delete(ctx context.Context, id int64) (bool, error)
}
