package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/repo"
)

// ActivityService implements business logic for Activity operations.
type ActivityService struct {
	trips      repo.TripRepo
	activities repo.ActivityRepo
}

// NewActivityService constructs an ActivityService backed by the provided repos.
func NewActivityService(trips repo.TripRepo, activities repo.ActivityRepo) *ActivityService {
	return &ActivityService{trips: trips, activities: activities}
}

// Create verifies the parent trip exists, validates the activity against the
// trip's schedule, then persists it.
// Returns domain.ErrNotFound if the trip does not exist.
// Returns domain.ErrValidation if the title is blank or occurs_at falls outside the trip.
func (s *ActivityService) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	trip, err := s.trips.GetByID(ctx, a.TripID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}

	a.Title = strings.TrimSpace(a.Title)
	if a.Title == "" {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", domain.Invalid("title", "title is required"))
	}
	if !trip.Interval().Contains(a.OccursAt) {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w",
			domain.Invalid("occurs_at", "occurs_at must be within the trip dates"))
	}

	created, err := s.activities.Create(ctx, a)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	return created, nil
}

// ListByTripID returns all activities for a trip ordered by occurs_at ascending.
// Always returns a non-nil slice so callers can safely range over it.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *ActivityService) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.ActivityService.ListByTripID: %w", err)
	}
	activities, err := s.activities.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.ListByTripID: %w", err)
	}
	if activities == nil {
		return []domain.Activity{}, nil
	}
	return activities, nil
}
