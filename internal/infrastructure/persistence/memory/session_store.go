// Package memory provides in-process fallbacks for the persistence layer,
// used when Redis is not configured. Suitable for development and tests;
// sessions do not survive a restart.
package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/activity-hub/student-activity-hub/internal/domain/user"
)

// ErrSessionNotFound indicates an unknown or expired session token.
var ErrSessionNotFound = errors.New("memory: session not found")

type sessionEntry struct {
	actor     user.Actor
	expiresAt time.Time
}

// SessionStore keeps login sessions in process memory with a sliding TTL.
type SessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]sessionEntry
}

// NewSessionStore creates a new SessionStore.
func NewSessionStore(ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionStore{
		ttl:      ttl,
		sessions: make(map[string]sessionEntry),
	}
}

// Create stores a new session for the given identity and returns its token.
func (s *SessionStore) Create(_ context.Context, actor user.Actor) (string, error) {
	token := uuid.New().String()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = sessionEntry{actor: actor, expiresAt: time.Now().Add(s.ttl)}
	return token, nil
}

// Resolve maps a token back to its identity and refreshes the TTL.
func (s *SessionStore) Resolve(_ context.Context, token string) (user.Actor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[token]
	if !ok {
		return user.Actor{}, ErrSessionNotFound
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.sessions, token)
		return user.Actor{}, ErrSessionNotFound
	}

	entry.expiresAt = time.Now().Add(s.ttl)
	s.sessions[token] = entry
	return entry.actor, nil
}

// Delete removes a session (logout). Deleting an unknown token is not an error.
func (s *SessionStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
