// Package service contains the business logic for the Trip Planner API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here: services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/repo"
)

// NewTrip is the input for TripService.Create.
type NewTrip struct {
	Destination    string
	StartsAt       time.Time
	EndsAt         time.Time
	OwnerName      string
	OwnerEmail     string
	EmailsToInvite []string
}

// TripService implements the trip lifecycle: creation with its participant
// list, schedule updates, confirmation and invitations.
type TripService struct {
	tx           repo.Transactor
	trips        repo.TripRepo
	participants repo.ParticipantRepo
	notify       *Notifier
	now          func() time.Time
}

// NewTripService constructs a TripService. now may be nil, in which case the
// wall clock is used.
func NewTripService(tx repo.Transactor, trips repo.TripRepo, participants repo.ParticipantRepo, notify *Notifier, now func() time.Time) *TripService {
	if now == nil {
		now = time.Now
	}
	return &TripService{tx: tx, trips: trips, participants: participants, notify: notify, now: now}
}

// Create validates the trip, then atomically stores it together with its owner
// (confirmed) and one unconfirmed participant per invited address. The owner is
// then emailed a link to confirm the trip.
// Returns domain.ErrValidation if the destination or schedule is invalid.
func (s *TripService) Create(ctx context.Context, in NewTrip) (domain.Trip, error) {
	if err := s.validateSchedule(in.Destination, domain.Interval{Start: in.StartsAt, End: in.EndsAt}); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}

	var (
		trip  domain.Trip
		owner domain.Participant
	)
	err := s.tx.InTx(ctx, func(r repo.Repos) error {
		created, err := r.Trips.Create(ctx, domain.Trip{
			Destination: strings.TrimSpace(in.Destination),
			StartsAt:    in.StartsAt,
			EndsAt:      in.EndsAt,
		})
		if err != nil {
			return err
		}

		ps := []domain.Participant{domain.NewOwner(in.OwnerName, in.OwnerEmail)}
		for _, email := range inviteeEmails(in.OwnerEmail, in.EmailsToInvite) {
			ps = append(ps, domain.NewInvitee(created.ID, email))
		}
		saved, err := r.Participants.CreateMany(ctx, created.ID, ps)
		if err != nil {
			return err
		}

		trip, owner = created, saved[0]
		return nil
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}

	// Failures are logged by the notifier; the trip stays created.
	_ = s.notify.TripCreated(ctx, trip, owner)
	return trip, nil
}

// GetByID returns a single trip by ID.
// Returns domain.ErrNotFound if it does not exist.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return trip, nil
}

// Update overwrites the destination and schedule of an existing trip.
// The same rules as Create apply. is_confirmed is left untouched.
// Returns domain.ErrNotFound before validating if the trip does not exist.
func (s *TripService) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if _, err := s.trips.GetByID(ctx, trip.ID); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	if err := s.validateSchedule(trip.Destination, trip.Interval()); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}

	trip.Destination = strings.TrimSpace(trip.Destination)
	updated, err := s.trips.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return updated, nil
}

// Confirm marks the trip confirmed and emails every non-owner participant a
// personal confirmation link. Confirming an already confirmed trip is a no-op:
// nothing is written and no email is sent, so the returned report is empty.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *TripService) Confirm(ctx context.Context, id uuid.UUID) (domain.DeliveryReport, error) {
	var (
		trip         domain.Trip
		transitioned bool
		invitees     []domain.Participant
	)
	// A failed listing rolls the confirmation back so a retry still sends.
	err := s.tx.InTx(ctx, func(r repo.Repos) error {
		var err error
		trip, transitioned, err = r.Trips.Confirm(ctx, id)
		if err != nil || !transitioned {
			return err
		}
		participants, err := r.Participants.ListByTripID(ctx, id)
		if err != nil {
			return err
		}
		for _, p := range participants {
			if !p.IsOwner {
				invitees = append(invitees, p)
			}
		}
		return nil
	})
	if err != nil {
		return domain.DeliveryReport{}, fmt.Errorf("service.TripService.Confirm: %w", err)
	}
	if !transitioned {
		return domain.DeliveryReport{}, nil
	}

	// The confirmation is already stored; sends outlive a client disconnect.
	return s.notify.InviteAll(context.WithoutCancel(ctx), trip, invitees), nil
}

// Invite adds a new unconfirmed participant to the trip and emails them a
// confirmation link.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *TripService) Invite(ctx context.Context, tripID uuid.UUID, email string) (domain.Participant, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.TripService.Invite: %w", err)
	}

	p, err := s.participants.Create(ctx, domain.NewInvitee(trip.ID, strings.TrimSpace(email)))
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.TripService.Invite: %w", err)
	}

	// Failures are logged by the notifier; the participant stays invited.
	_ = s.notify.Invite(ctx, trip, p)
	return p, nil
}

// validateSchedule enforces the rules shared by Create and Update.
func (s *TripService) validateSchedule(destination string, interval domain.Interval) error {
	if err := domain.ValidateDestination(destination); err != nil {
		return err
	}
	return interval.Validate(s.now())
}

// inviteeEmails trims and de-duplicates the invite list, case-insensitively,
// and drops the owner's own address.
func inviteeEmails(ownerEmail string, emails []string) []string {
	seen := map[string]bool{strings.ToLower(strings.TrimSpace(ownerEmail)): true}
	out := make([]string, 0, len(emails))
	for _, e := range emails {
		e = strings.TrimSpace(e)
		key := strings.ToLower(e)
		if e == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, e)
	}
	return out
}
