package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/choremarket/chore-api/internal/core/domain"
	"github.com/choremarket/chore-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stubs
// ---------------------------------------------------------------------------

type stubAccountRepo struct {
	byEmailRole map[string]*domain.Account
	byID        map[string]*domain.Account
	createErr   error // if set, Create returns this error
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{
		byEmailRole: make(map[string]*domain.Account),
		byID:        make(map[string]*domain.Account),
	}
}

func emailRoleKey(email, role string) string {
	return email + "|" + role
}

func (r *stubAccountRepo) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	key := emailRoleKey(account.Email, account.Role)
	if _, exists := r.byEmailRole[key]; exists {
		return nil, domain.ErrDuplicateAccount
	}
	clone := *account
	r.byEmailRole[key] = &clone
	r.byID[account.ID] = &clone
	return &clone, nil
}

func (r *stubAccountRepo) FindByEmailAndRole(_ context.Context, email, role string) (*domain.Account, error) {
	a, ok := r.byEmailRole[emailRoleKey(email, role)]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubAccountRepo) FindByID(_ context.Context, id string) (*domain.Account, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	clone := *a
	return &clone, nil
}

type stubSessionStore struct {
	issued  map[string]domain.Session
	revoked []string
	counter int
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{issued: make(map[string]domain.Session)}
}

func (s *stubSessionStore) Issue(_ context.Context, accountID, role string) (string, error) {
	s.counter++
	token := fmt.Sprintf("token-%d", s.counter)
	s.issued[token] = domain.Session{Token: token, AccountID: accountID, Role: role}
	return token, nil
}

func (s *stubSessionStore) Resolve(_ context.Context, token string) (*domain.Session, error) {
	session, ok := s.issued[token]
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	return &session, nil
}

func (s *stubSessionStore) Revoke(_ context.Context, token string) error {
	delete(s.issued, token)
	s.revoked = append(s.revoked, token)
	return nil
}

var discardLogger = zerolog.Nop()

func validRegisterInput(role string) ports.RegisterInput {
	return ports.RegisterInput{
		Name:     "Ana Torres",
		Email:    "ana@example.com",
		Password: "hunter2hunter2",
		Role:     role,
		Address:  "Av. Insurgentes 100",
	}
}

// ---------------------------------------------------------------------------
// Register tests
// ---------------------------------------------------------------------------

func TestAccountService_Register_Success(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo, newStubSessionStore(), discardLogger)

	account, err := svc.Register(context.Background(), validRegisterInput(domain.RoleRequester))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if account.ID == "" {
		t.Error("account must get an id")
	}
	if account.Role != domain.RoleRequester {
		t.Errorf("expected role %q, got %q", domain.RoleRequester, account.Role)
	}
	if account.CreatedAt.IsZero() {
		t.Error("CreatedAt must not be zero")
	}
}

func TestAccountService_Register_HashesPassword(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo, newStubSessionStore(), discardLogger)

	account, err := svc.Register(context.Background(), validRegisterInput(domain.RoleProvider))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored := repo.byEmailRole[emailRoleKey(account.Email, account.Role)]
	if stored.PasswordHash == "hunter2hunter2" {
		t.Fatal("password must not be stored in the clear")
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter2hunter2")) != nil {
		t.Error("stored hash must verify against the original password")
	}
}

func TestAccountService_Register_RejectsMissingFields(t *testing.T) {
	svc := NewAccountService(newStubAccountRepo(), newStubSessionStore(), discardLogger)

	cases := []struct {
		name   string
		mutate func(*ports.RegisterInput)
	}{
		{"empty name", func(i *ports.RegisterInput) { i.Name = "" }},
		{"empty email", func(i *ports.RegisterInput) { i.Email = "" }},
		{"empty password", func(i *ports.RegisterInput) { i.Password = "" }},
		{"unknown role", func(i *ports.RegisterInput) { i.Role = "admin" }},
		{"empty role", func(i *ports.RegisterInput) { i.Role = "" }},
	}

	for _, tc := range cases {
		input := validRegisterInput(domain.RoleRequester)
		tc.mutate(&input)

		if _, err := svc.Register(context.Background(), input); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}
}

func TestAccountService_Register_DuplicateEmailAndRole(t *testing.T) {
	svc := NewAccountService(newStubAccountRepo(), newStubSessionStore(), discardLogger)

	if _, err := svc.Register(context.Background(), validRegisterInput(domain.RoleRequester)); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}

	_, err := svc.Register(context.Background(), validRegisterInput(domain.RoleRequester))
	if !errors.Is(err, domain.ErrDuplicateAccount) {
		t.Errorf("expected ErrDuplicateAccount, got %v", err)
	}
}

func TestAccountService_Register_SameEmailDifferentRole(t *testing.T) {
	svc := NewAccountService(newStubAccountRepo(), newStubSessionStore(), discardLogger)

	if _, err := svc.Register(context.Background(), validRegisterInput(domain.RoleRequester)); err != nil {
		t.Fatalf("requester registration failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), validRegisterInput(domain.RoleProvider)); err != nil {
		t.Errorf("same email must be allowed once per role, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Login tests
// ---------------------------------------------------------------------------

func TestAccountService_Login_Success(t *testing.T) {
	repo := newStubAccountRepo()
	sessions := newStubSessionStore()
	svc := NewAccountService(repo, sessions, discardLogger)

	registered, err := svc.Register(context.Background(), validRegisterInput(domain.RoleProvider))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, account, err := svc.Login(context.Background(), "ana@example.com", "hunter2hunter2", domain.RoleProvider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("expected a session token")
	}
	if account.ID != registered.ID {
		t.Errorf("expected account %q, got %q", registered.ID, account.ID)
	}

	session, err := sessions.Resolve(context.Background(), token)
	if err != nil {
		t.Fatalf("issued token must resolve: %v", err)
	}
	if session.AccountID != registered.ID || session.Role != domain.RoleProvider {
		t.Errorf("session carries wrong identity: %+v", session)
	}
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	svc := NewAccountService(newStubAccountRepo(), newStubSessionStore(), discardLogger)
	_, _ = svc.Register(context.Background(), validRegisterInput(domain.RoleRequester))

	_, _, err := svc.Login(context.Background(), "ana@example.com", "wrong-password", domain.RoleRequester)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAccountService_Login_UnknownEmailIndistinguishableFromWrongPassword(t *testing.T) {
	svc := NewAccountService(newStubAccountRepo(), newStubSessionStore(), discardLogger)
	_, _ = svc.Register(context.Background(), validRegisterInput(domain.RoleRequester))

	_, _, unknownErr := svc.Login(context.Background(), "ghost@example.com", "hunter2hunter2", domain.RoleRequester)
	_, _, wrongErr := svc.Login(context.Background(), "ana@example.com", "wrong-password", domain.RoleRequester)

	if !errors.Is(unknownErr, domain.ErrInvalidCredentials) || !errors.Is(wrongErr, domain.ErrInvalidCredentials) {
		t.Errorf("both failures must be ErrInvalidCredentials, got %v and %v", unknownErr, wrongErr)
	}
}

func TestAccountService_Login_RoleScoped(t *testing.T) {
	svc := NewAccountService(newStubAccountRepo(), newStubSessionStore(), discardLogger)
	_, _ = svc.Register(context.Background(), validRegisterInput(domain.RoleRequester))

	// Registered as requester, logging in as provider must fail.
	_, _, err := svc.Login(context.Background(), "ana@example.com", "hunter2hunter2", domain.RoleProvider)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for wrong role, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Logout tests
// ---------------------------------------------------------------------------

func TestAccountService_Logout_RevokesSession(t *testing.T) {
	sessions := newStubSessionStore()
	svc := NewAccountService(newStubAccountRepo(), sessions, discardLogger)
	_, _ = svc.Register(context.Background(), validRegisterInput(domain.RoleRequester))

	token, _, err := svc.Login(context.Background(), "ana@example.com", "hunter2hunter2", domain.RoleRequester)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := svc.Logout(context.Background(), token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, err := sessions.Resolve(context.Background(), token); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Errorf("revoked token must not resolve, got %v", err)
	}
}

func TestAccountService_Logout_UnknownTokenIsNoop(t *testing.T) {
	svc := NewAccountService(newStubAccountRepo(), newStubSessionStore(), discardLogger)

	if err := svc.Logout(context.Background(), "never-issued"); err != nil {
		t.Errorf("revoking an unknown token must not error, got %v", err)
	}
}
