package query

import (
	"context"

	"github.com/activity-hub/student-activity-hub/internal/domain/user"
)

// GetUserQuery fetches one account by id.
type GetUserQuery struct {
	UserID int64
}

// GetUserHandler handles GetUserQuery.
type GetUserHandler struct {
	userRepo user.Repository
}

// NewGetUserHandler creates a new GetUserHandler.
func NewGetUserHandler(userRepo user.Repository) *GetUserHandler {
	return &GetUserHandler{userRepo: userRepo}
}

// Handle executes the get user query.
func (h *GetUserHandler) Handle(ctx context.Context, q GetUserQuery) (*user.User, error) {
	return h.userRepo.GetByID(ctx, q.UserID)
}
