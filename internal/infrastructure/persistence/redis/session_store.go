package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/activity-hub/student-activity-hub/internal/domain/user"
)

// ErrSessionNotFound indicates an unknown or expired session token.
var ErrSessionNotFound = errors.New("redis: session not found")

// sessionRecord is the stored form of an authenticated identity.
type sessionRecord struct {
	UserID int64     `json:"user_id"`
	Role   user.Role `json:"role"`
}

// SessionStore keeps login sessions in Redis with a sliding TTL. Tokens are
// random UUIDs; nothing about the user is derivable from the cookie value.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a new SessionStore.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionStore{client: client, ttl: ttl}
}

func sessionKey(token string) string {
	return "session:" + token
}

// Create stores a new session for the given identity and returns its token.
func (s *SessionStore) Create(ctx context.Context, actor user.Actor) (string, error) {
	token := uuid.New().String()

	data, err := json.Marshal(sessionRecord{UserID: actor.ID, Role: actor.Role})
	if err != nil {
		return "", fmt.Errorf("redis: failed to marshal session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(token), data, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("redis: failed to store session: %w", err)
	}
	return token, nil
}

// Resolve maps a token back to its identity and refreshes the TTL.
func (s *SessionStore) Resolve(ctx context.Context, token string) (user.Actor, error) {
	data, err := s.client.GetEx(ctx, sessionKey(token), s.ttl).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return user.Actor{}, ErrSessionNotFound
		}
		return user.Actor{}, fmt.Errorf("redis: failed to load session: %w", err)
	}

	var rec sessionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return user.Actor{}, fmt.Errorf("redis: failed to unmarshal session: %w", err)
	}
	return user.Actor{ID: rec.UserID, Role: rec.Role}, nil
}

// Delete removes a session (logout). Deleting an unknown token is not an error.
func (s *SessionStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("redis: failed to delete session: %w", err)
	}
	return nil
}
