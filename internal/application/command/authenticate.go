package command

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/activity-hub/student-activity-hub/internal/domain/shared"
	"github.com/activity-hub/student-activity-hub/internal/domain/user"
)

// AuthenticateCommand verifies a username/password pair.
type AuthenticateCommand struct {
	Username string
	Password string
}

// AuthenticateHandler handles AuthenticateCommand.
type AuthenticateHandler struct {
	userRepo user.Repository
}

// NewAuthenticateHandler creates a new AuthenticateHandler.
func NewAuthenticateHandler(userRepo user.Repository) *AuthenticateHandler {
	return &AuthenticateHandler{userRepo: userRepo}
}

// Handle checks credentials and returns the matching user. Unknown usernames
// and wrong passwords report the same Forbidden error so the response does
// not leak which accounts exist.
func (h *AuthenticateHandler) Handle(ctx context.Context, cmd AuthenticateCommand) (*user.User, error) {
	badCredentials := shared.NewDomainError("user", "Authenticate", shared.ErrForbidden, "invalid username or password")

	u, err := h.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		if shared.IsNotFound(err) {
			return nil, badCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(cmd.Password)) != nil {
		return nil, badCredentials
	}
	return u, nil
}
