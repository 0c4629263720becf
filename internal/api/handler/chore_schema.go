package handler

import (
	"time"

	"github.com/choremarket/chore-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type locationRequest struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lon float64 `json:"lon" validate:"min=-180,max=180"`
}

type createChoreRequest struct {
	Title         string           `json:"title"          validate:"required"`
	Description   string           `json:"description"    validate:"required"`
	PaymentAmount float64          `json:"payment_amount" validate:"required,gt=0"`
	Location      *locationRequest `json:"location,omitempty"`
}

// Response-only types owned by the transport layer.
// These are intentionally separate from domain types so the JSON contract is
// not coupled to internal changes.

type locationResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type choreResponse struct {
	ID                 string            `json:"id"`
	Title              string            `json:"title"`
	Description        string            `json:"description"`
	PaymentAmount      float64           `json:"payment_amount"`
	RequesterID        string            `json:"requester_id"`
	AssignedProviderID string            `json:"assigned_provider_id,omitempty"`
	Location           *locationResponse `json:"location,omitempty"`
	Status             string            `json:"status"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

func toChoreResponse(c *domain.Chore) choreResponse {
	resp := choreResponse{
		ID:                 c.ID,
		Title:              c.Title,
		Description:        c.Description,
		PaymentAmount:      c.PaymentAmount,
		RequesterID:        c.RequesterID,
		AssignedProviderID: c.AssignedProviderID,
		Status:             string(c.Status),
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
	if c.Location != nil {
		resp.Location = &locationResponse{Lat: c.Location.Lat, Lon: c.Location.Lon}
	}
	return resp
}

func toChoreResponses(chores []*domain.Chore) []choreResponse {
	out := make([]choreResponse, 0, len(chores))
	for _, c := range chores {
		out = append(out, toChoreResponse(c))
	}
	return out
}
