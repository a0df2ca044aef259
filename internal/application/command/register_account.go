package command

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/activity-hub/student-activity-hub/internal/domain/shared"
	"github.com/activity-hub/student-activity-hub/internal/domain/user"
)

// ══════════════════════════════════════════════════════════════════════════════
// REGISTER ACCOUNT COMMAND
// Creates a student or organization account. The plaintext password never
// leaves this handler; only the bcrypt hash is stored.
// ══════════════════════════════════════════════════════════════════════════════

// RegisterAccountCommand contains the data for a new account.
type RegisterAccountCommand struct {
	Username  string
	Password  string
	FullName  string
	Email     string
	Role      user.Role
	StudentID string
	OrgName   string
}

// RegisterAccountHandler handles RegisterAccountCommand.
type RegisterAccountHandler struct {
	userRepo user.Repository
}

// NewRegisterAccountHandler creates a new RegisterAccountHandler.
func NewRegisterAccountHandler(userRepo user.Repository) *RegisterAccountHandler {
	return &RegisterAccountHandler{userRepo: userRepo}
}

// Handle executes the register account command.
func (h *RegisterAccountHandler) Handle(ctx context.Context, cmd RegisterAccountCommand) (*user.User, error) {
	if len(cmd.Password) < 6 {
		return nil, shared.NewDomainError("user", "Register", shared.ErrValidation, "password must be at least 6 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("register_account: failed to hash password: %w", err)
	}

	u := &user.User{
		Username:  cmd.Username,
		Password:  string(hash),
		FullName:  cmd.FullName,
		Email:     cmd.Email,
		Role:      cmd.Role,
		StudentID: cmd.StudentID,
		OrgName:   cmd.OrgName,
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}

	if err := h.userRepo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
