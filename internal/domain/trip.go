// Package domain contains the core data types for the Trip Planner application.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (repo, service, handler).
package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MinDestinationLength is the shortest destination name a trip may have.
const MinDestinationLength = 4

// Trip is the top-level aggregate. Participants, activities and links all
// belong to exactly one trip.
type Trip struct {
	ID          uuid.UUID
	Destination string
	StartsAt    time.Time
	EndsAt      time.Time
	IsConfirmed bool
	CreatedAt   time.Time
}

// Interval returns the trip's scheduled period.
func (t Trip) Interval() Interval {
	return Interval{Start: t.StartsAt, End: t.EndsAt}
}

// Interval is the period a trip covers.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Validate checks that the interval is a valid trip interval at instant now:
// it must not start in the past and must start strictly before it ends.
// Each violated rule yields its own message.
func (i Interval) Validate(now time.Time) error {
	if i.Start.Before(now) {
		return Invalid("start_at", "start_at must not be in the past")
	}
	if !i.Start.Before(i.End) {
		return Invalid("end_at", "end_at must be after start_at")
	}
	return nil
}

// Contains reports whether t lies within the interval, bounds included.
func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && !t.After(i.End)
}

// ValidateDestination enforces the minimum destination length.
// Surrounding whitespace does not count towards the length.
func ValidateDestination(destination string) error {
	if utf8.RuneCountInString(strings.TrimSpace(destination)) < MinDestinationLength {
		return Invalid("destination", "destination must be at least %d characters", MinDestinationLength)
	}
	return nil
}
