package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/activity-hub/student-activity-hub/internal/application/command"
	"github.com/activity-hub/student-activity-hub/internal/application/query"
	"github.com/activity-hub/student-activity-hub/internal/domain/user"
)

// ══════════════════════════════════════════════════════════════════════════════
// AUTH HANDLER
// Register, login, logout, current-user, and self-service profile updates.
// ══════════════════════════════════════════════════════════════════════════════

// AuthHandler serves the authentication and account endpoints.
type AuthHandler struct {
	registerAccount *command.RegisterAccountHandler
	authenticate    *command.AuthenticateHandler
	updateProfile   *command.UpdateProfileHandler
	changePassword  *command.ChangePasswordHandler
	getUser         *query.GetUserHandler

	auth       *SessionAuth
	sessionTTL time.Duration
	logger     *zap.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(
	registerAccount *command.RegisterAccountHandler,
	authenticate *command.AuthenticateHandler,
	updateProfile *command.UpdateProfileHandler,
	changePassword *command.ChangePasswordHandler,
	getUser *query.GetUserHandler,
	auth *SessionAuth,
	sessionTTL time.Duration,
	logger *zap.Logger,
) *AuthHandler {
	return &AuthHandler{
		registerAccount: registerAccount,
		authenticate:    authenticate,
		updateProfile:   updateProfile,
		changePassword:  changePassword,
		getUser:         getUser,
		auth:            auth,
		sessionTTL:      sessionTTL,
		logger:          logger,
	}
}

type registerRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=64"`
	Password  string `json:"password" validate:"required,min=6"`
	FullName  string `json:"fullName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Role      string `json:"role" validate:"required,oneof=student organization"`
	StudentID string `json:"studentId"`
	OrgName   string `json:"orgName"`
}

// Register creates an account and opens a session for it.
// POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeValid(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	u, err := h.registerAccount.Handle(r.Context(), command.RegisterAccountCommand{
		Username:  req.Username,
		Password:  req.Password,
		FullName:  req.FullName,
		Email:     req.Email,
		Role:      user.Role(req.Role),
		StudentID: req.StudentID,
		OrgName:   req.OrgName,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	if err := h.openSession(w, r, u); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, toUserResponse(u))
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login verifies credentials and opens a session.
// POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeValid(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	u, err := h.authenticate.Handle(r.Context(), command.AuthenticateCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	if err := h.openSession(w, r, u); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// Logout destroys the current session.
// POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(h.auth.CookieName()); err == nil && cookie.Value != "" {
		if err := h.auth.store.Delete(r.Context(), cookie.Value); err != nil {
			h.logger.Warn("failed to delete session", zap.Error(err))
		}
	}
	h.auth.ClearCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// CurrentUser returns the account behind the session.
// GET /api/auth/user
func (h *AuthHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	actor, _ := ActorFromContext(r.Context())

	u, err := h.getUser.Handle(r.Context(), query.GetUserQuery{UserID: actor.ID})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

type updateProfileRequest struct {
	FullName *string `json:"fullName" validate:"omitempty,min=1"`
	Email    *string `json:"email" validate:"omitempty,email"`
	OrgName  *string `json:"orgName" validate:"omitempty,min=1"`
}

// UpdateProfile updates the caller's own profile fields.
// PUT /api/user
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	actor, _ := ActorFromContext(r.Context())

	var req updateProfileRequest
	if err := decodeValid(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	u, err := h.updateProfile.Handle(r.Context(), command.UpdateProfileCommand{
		Actor:    actor,
		FullName: req.FullName,
		Email:    req.Email,
		OrgName:  req.OrgName,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

// ChangePassword replaces the caller's password.
// PUT /api/user/password
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	actor, _ := ActorFromContext(r.Context())

	var req changePasswordRequest
	if err := decodeValid(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	err := h.changePassword.Handle(r.Context(), command.ChangePasswordCommand{
		Actor:           actor,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// openSession creates a session for u and sets the cookie.
func (h *AuthHandler) openSession(w http.ResponseWriter, r *http.Request, u *user.User) error {
	token, err := h.auth.store.Create(r.Context(), u.Actor())
	if err != nil {
		return err
	}
	h.auth.SetCookie(w, token, h.sessionTTL)
	return nil
}
