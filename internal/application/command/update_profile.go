package command

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/activity-hub/student-activity-hub/internal/domain/shared"
	"github.com/activity-hub/student-activity-hub/internal/domain/user"
)

// ══════════════════════════════════════════════════════════════════════════════
// UPDATE PROFILE / CHANGE PASSWORD COMMANDS
// Users may only ever mutate their own account; there is no admin path.
// ══════════════════════════════════════════════════════════════════════════════

// UpdateProfileCommand updates the actor's own profile fields.
type UpdateProfileCommand struct {
	Actor    user.Actor
	FullName *string
	Email    *string
	OrgName  *string
}

// UpdateProfileHandler handles UpdateProfileCommand.
type UpdateProfileHandler struct {
	userRepo user.Repository
}

// NewUpdateProfileHandler creates a new UpdateProfileHandler.
func NewUpdateProfileHandler(userRepo user.Repository) *UpdateProfileHandler {
	return &UpdateProfileHandler{userRepo: userRepo}
}

// Handle executes the update profile command.
func (h *UpdateProfileHandler) Handle(ctx context.Context, cmd UpdateProfileCommand) (*user.User, error) {
	if cmd.FullName != nil && strings.TrimSpace(*cmd.FullName) == "" {
		return nil, shared.NewDomainError("user", "UpdateProfile", shared.ErrValidation, "full name cannot be empty")
	}
	if cmd.Email != nil && strings.TrimSpace(*cmd.Email) == "" {
		return nil, shared.NewDomainError("user", "UpdateProfile", shared.ErrValidation, "email cannot be empty")
	}
	if cmd.OrgName != nil && cmd.Actor.Role != user.RoleOrganization {
		return nil, shared.NewDomainError("user", "UpdateProfile", shared.ErrForbidden, "only organizations have an organization name")
	}

	patch := user.Patch{FullName: cmd.FullName, Email: cmd.Email, OrgName: cmd.OrgName}
	if patch.IsEmpty() {
		return nil, shared.NewDomainError("user", "UpdateProfile", shared.ErrValidation, "nothing to update")
	}

	updated, err := h.userRepo.Update(ctx, cmd.Actor.ID, patch)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ChangePasswordCommand replaces the actor's password after verifying the
// current one.
type ChangePasswordCommand struct {
	Actor           user.Actor
	CurrentPassword string
	NewPassword     string
}

// ChangePasswordHandler handles ChangePasswordCommand.
type ChangePasswordHandler struct {
	userRepo user.Repository
}

// NewChangePasswordHandler creates a new ChangePasswordHandler.
func NewChangePasswordHandler(userRepo user.Repository) *ChangePasswordHandler {
	return &ChangePasswordHandler{userRepo: userRepo}
}

// Handle executes the change password command.
func (h *ChangePasswordHandler) Handle(ctx context.Context, cmd ChangePasswordCommand) error {
	if len(cmd.NewPassword) < 6 {
		return shared.NewDomainError("user", "ChangePassword", shared.ErrValidation, "password must be at least 6 characters")
	}

	u, err := h.userRepo.GetByID(ctx, cmd.Actor.ID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(cmd.CurrentPassword)) != nil {
		return shared.NewDomainError("user", "ChangePassword", shared.ErrForbidden, "current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("change_password: failed to hash password: %w", err)
	}
	hashed := string(hash)

	if _, err := h.userRepo.Update(ctx, cmd.Actor.ID, user.Patch{Password: &hashed}); err != nil {
		return err
	}
	return nil
}
