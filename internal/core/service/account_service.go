package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/choremarket/chore-api/internal/api/metrics"
	"github.com/choremarket/chore-api/internal/core/domain"
	"github.com/choremarket/chore-api/internal/core/ports"
)

// AccountService implements registration, login, and logout.
type AccountService struct {
	repo     ports.AccountRepository
	sessions ports.SessionStore
	logger   zerolog.Logger
}

func NewAccountService(repo ports.AccountRepository, sessions ports.SessionStore, logger zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, sessions: sessions, logger: logger}
}

func (s *AccountService) Register(ctx context.Context, input ports.RegisterInput) (*domain.Account, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if !domain.ValidRole(input.Role) {
		return nil, domain.ErrInvalidInput
	}

	// Hashing happens before any registry access: bcrypt is deliberately slow
	// and must not run inside a store critical section.
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         input.Role,
		Address:      input.Address,
		Location:     input.Location,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, account)
	if err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues(created.Role).Inc()
	s.logger.Info().Str("account_id", created.ID).Str("role", created.Role).Msg("account registered")
	return created, nil
}

// Login verifies credentials and issues an opaque session token. Unknown
// email and wrong password both fail with ErrInvalidCredentials so the caller
// cannot tell which occurred.
func (s *AccountService) Login(ctx context.Context, email, password, role string) (string, *domain.Account, error) {
	if email == "" || password == "" || !domain.ValidRole(role) {
		return "", nil, domain.ErrInvalidCredentials
	}

	account, err := s.repo.FindByEmailAndRole(ctx, email, role)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.sessions.Issue(ctx, account.ID, account.Role)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("account_id", account.ID).Str("role", account.Role).Msg("login")
	return token, account, nil
}

func (s *AccountService) Logout(ctx context.Context, token string) error {
	return s.sessions.Revoke(ctx, token)
}
