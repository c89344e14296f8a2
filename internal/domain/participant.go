package domain

import (
	"time"

	"github.com/google/uuid"
)

// Participant is a person attached to a trip.
// Every trip has exactly one owner, created already confirmed.
// Invited participants start unconfirmed and have no name until they supply one.
type Participant struct {
	ID          uuid.UUID
	TripID      uuid.UUID
	Name        *string
	Email       string
	IsOwner     bool
	IsConfirmed bool
	CreatedAt   time.Time
}

// NewOwner returns the owner participant for a trip being created.
func NewOwner(name, email string) Participant {
	return Participant{Name: &name, Email: email, IsOwner: true, IsConfirmed: true}
}

// NewInvitee returns an unconfirmed, non-owner participant for email.
func NewInvitee(tripID uuid.UUID, email string) Participant {
	return Participant{TripID: tripID, Email: email}
}
