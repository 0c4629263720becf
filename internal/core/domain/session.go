package domain

import (
	"errors"
	"time"
)

var ErrUnauthenticated = errors.New("unauthenticated")

// Session maps an opaque bearer token to an authenticated identity.
// A zero ExpiresAt means the session never expires.
type Session struct {
	Token     string
	AccountID string
	Role      string
	ExpiresAt time.Time
}

// Expired reports whether the session has passed its expiry at the given time.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
