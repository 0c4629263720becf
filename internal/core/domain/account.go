package domain

import (
	"errors"
	"time"
)

const (
	RoleRequester = "requester"
	RoleProvider  = "provider"
)

// ValidRole reports whether role is one of the recognized account roles.
func ValidRole(role string) bool {
	return role == RoleRequester || role == RoleProvider
}

var ErrDuplicateAccount = errors.New("account already exists")
var ErrAccountNotFound = errors.New("account not found")
var ErrInvalidCredentials = errors.New("invalid credentials")

// Account models a registered actor. The same email may exist once per role;
// requesters and providers are disjoint identity pools.
type Account struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Role         string      `json:"role"`
	Address      string      `json:"address,omitempty"`
	Location     *Coordinate `json:"location,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
}
