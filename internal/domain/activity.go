package domain

import (
	"time"

	"github.com/google/uuid"
)

// Activity is something planned to happen at a point in time during a trip.
type Activity struct {
	ID        uuid.UUID
	TripID    uuid.UUID
	Title     string
	OccursAt  time.Time
	CreatedAt time.Time
}
