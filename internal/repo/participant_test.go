package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/domain"
)

func TestParticipantRepo_CreateMany(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	trip := mustCreateTrip(t, r)

	input := []domain.Participant{
		domain.NewOwner("Ana", "ana@example.com"),
		domain.NewInvitee(trip.ID, "bia@example.com"),
	}

	got, err := r.Participants.CreateMany(ctx, trip.ID, input)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "ana@example.com", got[0].Email)
	assert.True(t, got[0].IsOwner)
	assert.True(t, got[0].IsConfirmed)
	require.NotNil(t, got[0].Name)
	assert.Equal(t, "Ana", *got[0].Name)
	assert.Equal(t, "bia@example.com", got[1].Email)
	assert.False(t, got[1].IsOwner)
	assert.False(t, got[1].IsConfirmed)
	assert.Nil(t, got[1].Name)
	for _, p := range got {
		assert.Equal(t, trip.ID, p.TripID)
	}
}

func TestParticipantRepo_CreateMany_Empty(t *testing.T) {
	r := newTestRepos(t)

	got, err := r.Participants.CreateMany(context.Background(), uuid.New(), nil)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParticipantRepo_Create_UnknownTrip(t *testing.T) {
	r := newTestRepos(t)

	_, err := r.Participants.Create(context.Background(), domain.NewInvitee(uuid.New(), "x@example.com"))

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestParticipantRepo_ListByTripID_OwnerFirst(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	trip := mustCreateTrip(t, r)

	_, err := r.Participants.Create(ctx, domain.NewInvitee(trip.ID, "early@example.com"))
	require.NoError(t, err)
	owner := domain.NewOwner("Owner", "owner@example.com")
	owner.TripID = trip.ID
	_, err = r.Participants.Create(ctx, owner)
	require.NoError(t, err)

	got, err := r.Participants.ListByTripID(ctx, trip.ID)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "owner@example.com", got[0].Email)
	assert.Equal(t, "early@example.com", got[1].Email)
}

func TestParticipantRepo_Confirm(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	trip := mustCreateTrip(t, r)

	p, err := r.Participants.Create(ctx, domain.NewInvitee(trip.ID, "bia@example.com"))
	require.NoError(t, err)

	got, err := r.Participants.Confirm(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, got.IsConfirmed)

	again, err := r.Participants.Confirm(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, again.IsConfirmed)
}

func TestParticipantRepo_Confirm_NotFound(t *testing.T) {
	r := newTestRepos(t)

	_, err := r.Participants.Confirm(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestParticipantRepo_GetByID_NotFound(t *testing.T) {
	r := newTestRepos(t)

	_, err := r.Participants.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
