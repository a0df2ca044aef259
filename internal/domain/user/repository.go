package user

import "context"

// Repository defines persistence operations for user accounts.
type Repository interface {
	// GetByID returns a user by internal ID.
	// Returns shared.ErrNotFound if no such user exists.
	GetByID(ctx context.Context, id int64) (*User, error)

	// GetByUsername returns a user by unique username.
	// Returns shared.ErrNotFound if no such user exists.
	GetByUsername(ctx context.Context, username string) (*User, error)

	// Create persists a new user and assigns its ID.
	// Returns shared.ErrConflict if the username is already taken.
	Create(ctx context.Context, u *User) error

	// Update applies the given patch to an existing user.
	Update(ctx context.Context, id int64, patch Patch) (*User, error)
}

// Patch describes a partial user update. Nil fields are left untouched.
// Fields are enumerated explicitly rather than taken from an arbitrary
// key/value map, so only these columns can ever be written.
type Patch struct {
	FullName *string
	Email    *string
	Password *string
	OrgName  *string
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.FullName == nil && p.Email == nil && p.Password == nil && p.OrgName == nil
}
