package memory

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/choremarket/chore-api/internal/api/metrics"
	"github.com/choremarket/chore-api/internal/core/domain"
)

const tokenBytes = 32 // 256 bits of entropy per token

// SessionStore maps opaque bearer tokens to authenticated identities. With a
// zero TTL sessions never expire, matching the reference behaviour; with a
// positive TTL expired tokens are rejected lazily on Resolve and reclaimed by
// the janitor sweep.
type SessionStore struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]domain.Session
}

// NewSessionStore creates a SessionStore. ttl <= 0 disables expiry.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{ttl: ttl, sessions: make(map[string]domain.Session)}
}

func (s *SessionStore) Issue(_ context.Context, accountID, role string) (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	token := hex.EncodeToString(buf)

	session := domain.Session{Token: token, AccountID: accountID, Role: role}
	if s.ttl > 0 {
		session.ExpiresAt = time.Now().UTC().Add(s.ttl)
	}

	s.mu.Lock()
	s.sessions[token] = session
	s.mu.Unlock()

	metrics.SessionsActive.Inc()
	return token, nil
}

func (s *SessionStore) Resolve(_ context.Context, token string) (*domain.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok || session.Expired(time.Now().UTC()) {
		return nil, domain.ErrUnauthenticated
	}
	return &session, nil
}

func (s *SessionStore) Revoke(_ context.Context, token string) error {
	s.mu.Lock()
	_, existed := s.sessions[token]
	delete(s.sessions, token)
	s.mu.Unlock()

	if existed {
		metrics.SessionsActive.Dec()
	}
	return nil
}

// Janitor periodically removes expired sessions until ctx is cancelled.
// Pointless (and a no-op) when the store was built without a TTL.
func (s *SessionStore) Janitor(ctx context.Context, interval time.Duration) {
	if s.ttl <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(time.Now().UTC())
		}
	}
}

func (s *SessionStore) sweep(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for token, session := range s.sessions {
		if session.Expired(now) {
			delete(s.sessions, token)
			metrics.SessionsActive.Dec()
		}
	}
}
