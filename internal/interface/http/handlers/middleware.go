package handlers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/activity-hub/student-activity-hub/internal/domain/user"
)

// ══════════════════════════════════════════════════════════════════════════════
// SESSION AUTHENTICATION
// ══════════════════════════════════════════════════════════════════════════════

// SessionStore persists login sessions keyed by an opaque cookie token.
// Implemented by the Redis store, with an in-memory fallback for development.
type SessionStore interface {
	Create(ctx context.Context, actor user.Actor) (string, error)
	Resolve(ctx context.Context, token string) (user.Actor, error)
	Delete(ctx context.Context, token string) error
}

type contextKey string

const actorContextKey contextKey = "actor"

// ActorFromContext returns the authenticated actor attached by SessionAuth.
func ActorFromContext(ctx context.Context) (user.Actor, bool) {
	actor, ok := ctx.Value(actorContextKey).(user.Actor)
	return actor, ok
}

// SessionAuth provides cookie-based session middleware.
type SessionAuth struct {
	store      SessionStore
	cookieName string
	secure     bool
}

// NewSessionAuth creates a new SessionAuth.
func NewSessionAuth(store SessionStore, cookieName string, secure bool) *SessionAuth {
	return &SessionAuth{store: store, cookieName: cookieName, secure: secure}
}

// CookieName returns the session cookie name.
func (a *SessionAuth) CookieName() string {
	return a.cookieName
}

// SetCookie attaches a session cookie to the response.
func (a *SessionAuth) SetCookie(w http.ResponseWriter, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     a.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   a.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie.
func (a *SessionAuth) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     a.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   a.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// RequireAuth resolves the session cookie to an actor and attaches it to the
// request context. Requests without a valid session get 401.
func (a *SessionAuth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(a.cookieName)
		if err != nil || cookie.Value == "" {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Message: "Authentication required"})
			return
		}

		actor, err := a.store.Resolve(r.Context(), cookie.Value)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Message: "Authentication required"})
			return
		}

		ctx := context.WithValue(r.Context(), actorContextKey, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole rejects authenticated actors whose role does not match.
// Must run after RequireAuth.
func (a *SessionAuth) RequireRole(role user.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := ActorFromContext(r.Context())
			if !ok {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Message: "Authentication required"})
				return
			}
			if actor.Role != role {
				writeJSON(w, http.StatusForbidden, errorResponse{Message: "Forbidden"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// REQUEST LOGGING
// ══════════════════════════════════════════════════════════════════════════════

// statusRecorder captures the response status for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// RequestLogger logs one line per request with method, path, status, and
// duration.
func RequestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", rec.status),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
