package complaint

import "context"

// Filter enumerates the exact-match predicates supported when listing
// complaints. Nil fields are ignored. Listing orders by creation time,
// most recent first.
type Filter struct {
	UserID     *int64
	ActivityID *int64
	Status     *Status
}

// Patch describes a complaint update. Status changes always stamp UpdatedAt
// at the storage layer.
type Patch struct {
	Status   *Status
	Response *string
}

// Repository defines persistence operations for complaints.
type Repository interface {
	// List returns complaints matching the filter, newest first.
	List(ctx context.Context, filter Filter) ([]*Complaint, error)

	// GetByID returns a complaint by ID.
	// Returns shared.ErrNotFound if no such complaint exists.
	GetByID(ctx context.Context, id int64) (*Complaint, error)

	// Create persists a new complaint and assigns its ID.
	Create(ctx context.Context, c *Complaint) error

	// Update applies the patch, stamps UpdatedAt, and returns the updated row.
	Update(ctx context.Context, id int64, patch Patch) (*Complaint, error)
}
