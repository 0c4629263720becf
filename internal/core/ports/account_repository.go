package ports

import (
	"context"

	"github.com/choremarket/chore-api/internal/core/domain"
)

// AccountRepository defines persistence operations for accounts.
// Uniqueness is per (email, role): the same email may exist once as a
// requester and once as a provider.
type AccountRepository interface {
	// Create stores a new account. Returns domain.ErrDuplicateAccount when an
	// account with the same email and role already exists.
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByEmailAndRole(ctx context.Context, email, role string) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
}
