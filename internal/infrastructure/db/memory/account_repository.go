// Package memory holds the in-memory registries backing the API. State lives
// in process and is lost on restart; this is a documented limitation of the
// system, not an accident. Every registry guards its maps with a mutex and
// returns clones, so callers never share memory with stored entities.
package memory

import (
	"context"
	"sync"

	"github.com/choremarket/chore-api/internal/core/domain"
)

type accountKey struct {
	email string
	role  string
}

// AccountRepository stores accounts keyed by id, with a (email, role)
// uniqueness index. The same email may register once per role.
type AccountRepository struct {
	mu      sync.RWMutex
	byID    map[string]*domain.Account
	byEmail map[accountKey]string // (email, role) → id
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		byID:    make(map[string]*domain.Account),
		byEmail: make(map[accountKey]string),
	}
}

func (r *AccountRepository) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	key := accountKey{email: account.Email, role: account.Role}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[key]; exists {
		return nil, domain.ErrDuplicateAccount
	}

	clone := cloneAccount(account)
	r.byID[clone.ID] = clone
	r.byEmail[key] = clone.ID
	return cloneAccount(clone), nil
}

func (r *AccountRepository) FindByEmailAndRole(_ context.Context, email, role string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[accountKey{email: email, role: role}]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return cloneAccount(r.byID[id]), nil
}

func (r *AccountRepository) FindByID(_ context.Context, id string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return cloneAccount(account), nil
}

func cloneAccount(a *domain.Account) *domain.Account {
	clone := *a
	if a.Location != nil {
		loc := *a.Location
		clone.Location = &loc
	}
	return &clone
}
