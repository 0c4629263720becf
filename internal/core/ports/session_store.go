package ports

import (
	"context"

	"github.com/choremarket/chore-api/internal/core/domain"
)

// SessionStore maps opaque bearer tokens to authenticated identities.
// Tokens must be unguessable: at least 128 bits of cryptographic randomness.
type SessionStore interface {
	Issue(ctx context.Context, accountID, role string) (string, error)
	// Resolve returns the session for token, or domain.ErrUnauthenticated when
	// the token is unknown or expired.
	Resolve(ctx context.Context, token string) (*domain.Session, error)
	// Revoke removes the session. Idempotent: revoking twice is not an error.
	Revoke(ctx context.Context, token string) error
}
