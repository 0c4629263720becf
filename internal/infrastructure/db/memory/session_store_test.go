package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/choremarket/chore-api/internal/core/domain"
)

func TestSessionStore_IssueAndResolve(t *testing.T) {
	store := NewSessionStore(0)

	token, err := store.Issue(context.Background(), "acc_1", domain.RoleRequester)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	// 32 random bytes hex-encoded.
	if len(token) != 64 {
		t.Errorf("expected a 64-char token, got %d chars", len(token))
	}

	session, err := store.Resolve(context.Background(), token)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if session.AccountID != "acc_1" || session.Role != domain.RoleRequester {
		t.Errorf("session carries wrong identity: %+v", session)
	}
}

func TestSessionStore_TokensAreUnique(t *testing.T) {
	store := NewSessionStore(0)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := store.Issue(context.Background(), "acc_1", domain.RoleRequester)
		if err != nil {
			t.Fatalf("issue: %v", err)
		}
		if seen[token] {
			t.Fatal("issued a duplicate token")
		}
		seen[token] = true
	}
}

func TestSessionStore_ResolveUnknownToken(t *testing.T) {
	store := NewSessionStore(0)

	if _, err := store.Resolve(context.Background(), "never-issued"); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Errorf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestSessionStore_Revoke(t *testing.T) {
	store := NewSessionStore(0)
	token, _ := store.Issue(context.Background(), "acc_1", domain.RoleRequester)

	if err := store.Revoke(context.Background(), token); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if _, err := store.Resolve(context.Background(), token); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Errorf("revoked token must not resolve, got %v", err)
	}
}

func TestSessionStore_RevokeIsIdempotent(t *testing.T) {
	store := NewSessionStore(0)
	token, _ := store.Issue(context.Background(), "acc_1", domain.RoleRequester)

	if err := store.Revoke(context.Background(), token); err != nil {
		t.Fatalf("first revoke: %v", err)
	}
	if err := store.Revoke(context.Background(), token); err != nil {
		t.Errorf("second revoke must be a no-op, got %v", err)
	}
	if err := store.Revoke(context.Background(), "never-issued"); err != nil {
		t.Errorf("revoking an unknown token must be a no-op, got %v", err)
	}
}

func TestSessionStore_ZeroTTLNeverExpires(t *testing.T) {
	store := NewSessionStore(0)
	token, _ := store.Issue(context.Background(), "acc_1", domain.RoleRequester)

	session, err := store.Resolve(context.Background(), token)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !session.ExpiresAt.IsZero() {
		t.Error("zero TTL sessions must carry no expiry")
	}
}

func TestSessionStore_ExpiredTokenRejected(t *testing.T) {
	store := NewSessionStore(time.Nanosecond)
	token, _ := store.Issue(context.Background(), "acc_1", domain.RoleRequester)

	time.Sleep(5 * time.Millisecond)

	if _, err := store.Resolve(context.Background(), token); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Errorf("expired token must not resolve, got %v", err)
	}
}

func TestSessionStore_SweepRemovesExpired(t *testing.T) {
	store := NewSessionStore(time.Nanosecond)
	_, _ = store.Issue(context.Background(), "acc_1", domain.RoleRequester)
	_, _ = store.Issue(context.Background(), "acc_2", domain.RoleProvider)

	store.sweep(time.Now().UTC().Add(time.Second))

	store.mu.RLock()
	remaining := len(store.sessions)
	store.mu.RUnlock()
	if remaining != 0 {
		t.Errorf("sweep must reclaim expired sessions, %d left", remaining)
	}
}
