package ports

import (
	"context"

	"github.com/choremarket/chore-api/internal/core/domain"
)

// CreateChoreInput carries all data needed to post a new chore.
type CreateChoreInput struct {
	RequesterID   string
	Title         string
	Description   string
	PaymentAmount float64
	Location      *domain.Coordinate
}

// ListAvailableInput selects paid chores visible to a provider. When Near is
// nil, all paid chores are returned. RadiusKm of zero means the configured
// default radius.
type ListAvailableInput struct {
	Near     *domain.Coordinate
	RadiusKm float64
}

// ChoreService defines the chore lifecycle use-cases.
type ChoreService interface {
	Create(ctx context.Context, input CreateChoreInput) (*domain.Chore, error)
	// MarkPaid confirms payment for a pending chore. Only the owning
	// requester may call it.
	MarkPaid(ctx context.Context, choreID, callerID string) (*domain.Chore, error)
	// Claim assigns a paid chore to the provider. At most one concurrent
	// claim succeeds; losers fail with domain.ErrInvalidTransition.
	Claim(ctx context.Context, choreID, providerID string) (*domain.Chore, error)
	// MarkComplete finishes an assigned chore. Only the assigned provider may
	// call it.
	MarkComplete(ctx context.Context, choreID, callerID string) (*domain.Chore, error)
	ListForRequester(ctx context.Context, requesterID string) ([]*domain.Chore, error)
	ListAvailable(ctx context.Context, input ListAvailableInput) ([]*domain.Chore, error)
}
