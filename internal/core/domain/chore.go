package domain

import (
	"errors"
	"time"
)

// ChoreStatus represents the lifecycle state of a chore.
type ChoreStatus string

const (
	StatusPending   ChoreStatus = "pending"
	StatusPaid      ChoreStatus = "paid"
	StatusAssigned  ChoreStatus = "assigned"
	StatusCompleted ChoreStatus = "completed"
)

// validTransitions defines the allowed state machine transitions.
// The lifecycle only moves forward: pending → paid → assigned → completed.
var validTransitions = map[ChoreStatus][]ChoreStatus{
	StatusPending:  {StatusPaid},
	StatusPaid:     {StatusAssigned},
	StatusAssigned: {StatusCompleted},
}

var ErrInvalidInput = errors.New("invalid input")
var ErrInvalidTransition = errors.New("invalid status transition")
var ErrChoreNotFound = errors.New("chore not found")
var ErrForbidden = errors.New("access forbidden")

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s ChoreStatus) CanTransitionTo(next ChoreStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Coordinate represents a geographic point in decimal degrees (WGS84).
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Chore is the core aggregate root: a short paid task posted by a requester,
// claimed and performed by a provider.
type Chore struct {
	ID                 string      `json:"id"`
	Title              string      `json:"title"`
	Description        string      `json:"description"`
	PaymentAmount      float64     `json:"payment_amount"`
	RequesterID        string      `json:"requester_id"`
	AssignedProviderID string      `json:"assigned_provider_id,omitempty"`
	Location           *Coordinate `json:"location,omitempty"`
	Status             ChoreStatus `json:"status"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
}
