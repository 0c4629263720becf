package ports

import (
	"context"

	"github.com/choremarket/chore-api/internal/core/domain"
)

// ChoreRepository defines persistence operations for chores, keyed by id.
type ChoreRepository interface {
	Insert(ctx context.Context, chore *domain.Chore) error
	FindByID(ctx context.Context, id string) (*domain.Chore, error)
	// ListByRequester returns all chores owned by requesterID in insertion order.
	ListByRequester(ctx context.Context, requesterID string) ([]*domain.Chore, error)
	// ListByStatus returns all chores in the given status in insertion order.
	ListByStatus(ctx context.Context, status domain.ChoreStatus) ([]*domain.Chore, error)
	// Transition atomically advances the chore from one status to the next.
	// The guard and the write happen under the same critical section, so
	// concurrent callers racing on the same chore see at most one winner;
	// losers get domain.ErrInvalidTransition. When to is StatusAssigned,
	// providerID is recorded as the assignee.
	Transition(ctx context.Context, id string, from, to domain.ChoreStatus, providerID string) (*domain.Chore, error)
}
