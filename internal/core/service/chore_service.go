package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/choremarket/chore-api/internal/api/metrics"
	"github.com/choremarket/chore-api/internal/core/domain"
	"github.com/choremarket/chore-api/internal/core/geo"
	"github.com/choremarket/chore-api/internal/core/ports"
)

// ChoreService implements the chore lifecycle use-cases on top of the chore
// registry. Transition atomicity lives in the repository; this layer owns
// input validation, ownership rules, and proximity filtering.
type ChoreService struct {
	repo            ports.ChoreRepository
	defaultRadiusKm float64
	logger          zerolog.Logger
}

func NewChoreService(repo ports.ChoreRepository, defaultRadiusKm float64, logger zerolog.Logger) *ChoreService {
	if defaultRadiusKm <= 0 {
		defaultRadiusKm = 10
	}
	return &ChoreService{repo: repo, defaultRadiusKm: defaultRadiusKm, logger: logger}
}

func (s *ChoreService) Create(ctx context.Context, input ports.CreateChoreInput) (*domain.Chore, error) {
	if input.Title == "" || input.Description == "" || input.PaymentAmount <= 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	chore := &domain.Chore{
		ID:            uuid.NewString(),
		Title:         input.Title,
		Description:   input.Description,
		PaymentAmount: input.PaymentAmount,
		RequesterID:   input.RequesterID,
		Location:      input.Location,
		Status:        domain.StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Insert(ctx, chore); err != nil {
		s.logger.Error().Err(err).Msg("failed to create chore")
		return nil, err
	}

	metrics.ChoresCreatedTotal.Inc()
	s.logger.Info().Str("chore_id", chore.ID).Str("requester_id", chore.RequesterID).Msg("chore created")
	return chore, nil
}

// MarkPaid confirms payment for a pending chore owned by callerID.
func (s *ChoreService) MarkPaid(ctx context.Context, choreID, callerID string) (*domain.Chore, error) {
	chore, err := s.repo.FindByID(ctx, choreID)
	if err != nil {
		return nil, err
	}
	if chore.RequesterID != callerID {
		return nil, domain.ErrForbidden
	}

	updated, err := s.repo.Transition(ctx, choreID, domain.StatusPending, domain.StatusPaid, "")
	if err != nil {
		return nil, err
	}

	metrics.ChoreTransitionsTotal.WithLabelValues(string(domain.StatusPaid)).Inc()
	s.logger.Info().Str("chore_id", choreID).Msg("payment confirmed")
	return updated, nil
}

// Claim assigns a paid chore to providerID. The paid→assigned transition is a
// compare-and-swap in the registry, so when several providers race on the
// same chore exactly one wins; the rest fail with ErrInvalidTransition, the
// same error a late claimer sees.
func (s *ChoreService) Claim(ctx context.Context, choreID, providerID string) (*domain.Chore, error) {
	updated, err := s.repo.Transition(ctx, choreID, domain.StatusPaid, domain.StatusAssigned, providerID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTransition) {
			metrics.ClaimRejectionsTotal.Inc()
		}
		return nil, err
	}

	metrics.ChoreTransitionsTotal.WithLabelValues(string(domain.StatusAssigned)).Inc()
	s.logger.Info().Str("chore_id", choreID).Str("provider_id", providerID).Msg("chore claimed")
	return updated, nil
}

// MarkComplete finishes an assigned chore. Only the assigned provider may
// complete it; the ownership check runs before the state check so a wrong
// caller always gets ErrForbidden regardless of chore status.
func (s *ChoreService) MarkComplete(ctx context.Context, choreID, callerID string) (*domain.Chore, error) {
	chore, err := s.repo.FindByID(ctx, choreID)
	if err != nil {
		return nil, err
	}
	if chore.AssignedProviderID == "" || chore.AssignedProviderID != callerID {
		return nil, domain.ErrForbidden
	}

	updated, err := s.repo.Transition(ctx, choreID, domain.StatusAssigned, domain.StatusCompleted, "")
	if err != nil {
		return nil, err
	}

	// Payment release to the provider would go here; settlement is out of scope.

	metrics.ChoreTransitionsTotal.WithLabelValues(string(domain.StatusCompleted)).Inc()
	s.logger.Info().Str("chore_id", choreID).Str("provider_id", callerID).Msg("chore completed")
	return updated, nil
}

func (s *ChoreService) ListForRequester(ctx context.Context, requesterID string) ([]*domain.Chore, error) {
	return s.repo.ListByRequester(ctx, requesterID)
}

// ListAvailable returns paid chores, optionally restricted to those within a
// radius of the provider's location. Chores without coordinates are always
// included.
func (s *ChoreService) ListAvailable(ctx context.Context, input ports.ListAvailableInput) ([]*domain.Chore, error) {
	chores, err := s.repo.ListByStatus(ctx, domain.StatusPaid)
	if err != nil {
		return nil, err
	}
	if input.Near == nil {
		return chores, nil
	}

	radius := input.RadiusKm
	if radius <= 0 {
		radius = s.defaultRadiusKm
	}
	filter := geo.NewRadiusFilter(*input.Near, radius)

	visible := make([]*domain.Chore, 0, len(chores))
	for _, chore := range chores {
		if chore.Location == nil || filter.Contains(*chore.Location) {
			visible = append(visible, chore)
		}
	}
	return visible, nil
}
