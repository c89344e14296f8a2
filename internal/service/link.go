package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/repo"
)

// LinkService implements business logic for Link operations.
type LinkService struct {
	trips repo.TripRepo
	links repo.LinkRepo
}

// NewLinkService constructs a LinkService backed by the provided repos.
func NewLinkService(trips repo.TripRepo, links repo.LinkRepo) *LinkService {
	return &LinkService{trips: trips, links: links}
}

// Create verifies the parent trip exists, validates the link, then persists it.
// Returns domain.ErrNotFound if the trip does not exist.
// Returns domain.ErrValidation if the title is blank or the URL is not absolute http(s).
func (s *LinkService) Create(ctx context.Context, l domain.Link) (domain.Link, error) {
	if _, err := s.trips.GetByID(ctx, l.TripID); err != nil {
		return domain.Link{}, fmt.Errorf("service.LinkService.Create: %w", err)
	}

	l.Title = strings.TrimSpace(l.Title)
	l.URL = strings.TrimSpace(l.URL)
	if err := validateLink(l); err != nil {
		return domain.Link{}, fmt.Errorf("service.LinkService.Create: %w", err)
	}

	created, err := s.links.Create(ctx, l)
	if err != nil {
		return domain.Link{}, fmt.Errorf("service.LinkService.Create: %w", err)
	}
	return created, nil
}

// ListByTripID returns all links for a trip.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *LinkService) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.LinkService.ListByTripID: %w", err)
	}
	links, err := s.links.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.LinkService.ListByTripID: %w", err)
	}
	if links == nil {
		return []domain.Link{}, nil
	}
	return links, nil
}

func validateLink(l domain.Link) error {
	if l.Title == "" {
		return domain.Invalid("title", "title is required")
	}
	u, err := url.Parse(l.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return domain.Invalid("url", "url must be an absolute http or https URL")
	}
	return nil
}
