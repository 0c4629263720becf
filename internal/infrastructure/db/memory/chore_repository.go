package memory

import (
	"context"
	"sync"
	"time"

	"github.com/choremarket/chore-api/internal/core/domain"
)

// ChoreRepository stores chores keyed by id for O(1) lookup. An insertion-order
// id slice keeps listings deterministic. All mutations run under the write
// lock, so a status transition's guard and write are a single atomic step.
type ChoreRepository struct {
	mu     sync.RWMutex
	chores map[string]*domain.Chore
	order  []string
}

func NewChoreRepository() *ChoreRepository {
	return &ChoreRepository{chores: make(map[string]*domain.Chore)}
}

func (r *ChoreRepository) Insert(_ context.Context, chore *domain.Chore) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := cloneChore(chore)
	r.chores[clone.ID] = clone
	r.order = append(r.order, clone.ID)
	return nil
}

func (r *ChoreRepository) FindByID(_ context.Context, id string) (*domain.Chore, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	chore, ok := r.chores[id]
	if !ok {
		return nil, domain.ErrChoreNotFound
	}
	return cloneChore(chore), nil
}

func (r *ChoreRepository) ListByRequester(_ context.Context, requesterID string) ([]*domain.Chore, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Chore, 0)
	for _, id := range r.order {
		if chore := r.chores[id]; chore.RequesterID == requesterID {
			out = append(out, cloneChore(chore))
		}
	}
	return out, nil
}

func (r *ChoreRepository) ListByStatus(_ context.Context, status domain.ChoreStatus) ([]*domain.Chore, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Chore, 0)
	for _, id := range r.order {
		if chore := r.chores[id]; chore.Status == status {
			out = append(out, cloneChore(chore))
		}
	}
	return out, nil
}

// Transition advances the chore from one status to the next. The status guard
// and the write share the critical section: when N callers race the same
// paid→assigned transition, the first to take the lock wins and the rest see
// ErrInvalidTransition.
func (r *ChoreRepository) Transition(_ context.Context, id string, from, to domain.ChoreStatus, providerID string) (*domain.Chore, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	chore, ok := r.chores[id]
	if !ok {
		return nil, domain.ErrChoreNotFound
	}
	if chore.Status != from || !from.CanTransitionTo(to) {
		return nil, domain.ErrInvalidTransition
	}

	chore.Status = to
	if to == domain.StatusAssigned {
		chore.AssignedProviderID = providerID
	}
	chore.UpdatedAt = time.Now().UTC()
	return cloneChore(chore), nil
}

func cloneChore(c *domain.Chore) *domain.Chore {
	clone := *c
	if c.Location != nil {
		loc := *c.Location
		clone.Location = &loc
	}
	return &clone
}
