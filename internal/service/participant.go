package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/repo"
)

// ParticipantService implements read and confirmation operations on
// participants. It holds the trips repo to verify the parent trip exists
// before listing.
type ParticipantService struct {
	trips        repo.TripRepo
	participants repo.ParticipantRepo
}

// NewParticipantService constructs a ParticipantService backed by the provided repos.
func NewParticipantService(trips repo.TripRepo, participants repo.ParticipantRepo) *ParticipantService {
	return &ParticipantService{trips: trips, participants: participants}
}

// GetByID returns a single participant.
// Returns domain.ErrNotFound if it does not exist.
func (s *ParticipantService) GetByID(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	p, err := s.participants.GetByID(ctx, id)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.GetByID: %w", err)
	}
	return p, nil
}

// Confirm marks the participant as attending. Idempotent.
// Returns domain.ErrNotFound if the participant does not exist.
func (s *ParticipantService) Confirm(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	p, err := s.participants.Confirm(ctx, id)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.Confirm: %w", err)
	}
	return p, nil
}

// ListByTripID returns the trip's participants, owner first.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *ParticipantService) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.ParticipantService.ListByTripID: %w", err)
	}
	ps, err := s.participants.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ParticipantService.ListByTripID: %w", err)
	}
	if ps == nil {
		return []domain.Participant{}, nil
	}
	return ps, nil
}
