package ports

import (
	"context"

	"github.com/choremarket/chore-api/internal/core/domain"
)

// RegisterInput carries all data needed to create a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	Address  string
	Location *domain.Coordinate
}

// AccountService defines registration and session use-cases.
type AccountService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.Account, error)
	// Login verifies credentials for the given role and issues a session
	// token. Unknown email and wrong password are indistinguishable to the
	// caller: both fail with domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password, role string) (string, *domain.Account, error)
	// Logout revokes the session token. Revoking an unknown token is a no-op.
	Logout(ctx context.Context, token string) error
}
