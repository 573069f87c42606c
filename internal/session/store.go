package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"eshop/internal/model"
)

const sessionKeyPrefix = "session:"

// Session is the explicit server-side state handed to handlers. One session
// record may carry both identities at once: the static access-policy login
// (PolicyUser/PolicyRole) and the directory-user login (User). Logout
// invalidates the whole record.
type Session struct {
	ID         string            `json:"id"`
	PolicyUser string            `json:"policy_user,omitempty"`
	PolicyRole string            `json:"policy_role,omitempty"`
	UserID     uint              `json:"user_id,omitempty"`
	Username   string            `json:"username,omitempty"`
	UserRole   string            `json:"user_role,omitempty"`
	User       *model.PublicUser `json:"user,omitempty"`
}

// LoggedIn reports whether a directory user is bound to the session.
func (s *Session) LoggedIn() bool {
	return s != nil && s.User != nil
}

// Backend is the storage needed by the Store; satisfied by cache.Client.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Store keeps sessions in Redis as TTL-bounded JSON payloads.
type Store struct {
	backend Backend
	ttl     time.Duration
}

// NewStore creates a session store with the given idle TTL.
func NewStore(backend Backend, ttl time.Duration) *Store {
	return &Store{backend: backend, ttl: ttl}
}

// Save persists the session, assigning an ID on first write, and refreshes
// the TTL.
func (s *Store) Save(ctx context.Context, sess *Session) error {
	if sess.ID == "" {
		sess.ID = uuid.New().String()
	}
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return s.backend.Set(ctx, sessionKeyPrefix+sess.ID, payload, s.ttl)
}

// Get loads a session by ID, returning nil when absent or expired.
func (s *Store) Get(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, nil
	}
	data, err := s.backend.Get(ctx, sessionKeyPrefix+id)
	if err != nil || data == nil {
		return nil, nil
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &sess, nil
}

// Destroy invalidates all state bound to the session.
func (s *Store) Destroy(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	return s.backend.Delete(ctx, sessionKeyPrefix+id)
}
