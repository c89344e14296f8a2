package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/service"
)

func echoLinkRepo() *mockLinkRepo {
	return &mockLinkRepo{create: func(_ context.Context, l domain.Link) (domain.Link, error) {
		l.ID = uuid.New()
		return l, nil
	}}
}

func TestLinkService_Create_OK(t *testing.T) {
	trip := storedTrip()
	svc := service.NewLinkService(tripRepoWith(trip), echoLinkRepo())

	got, err := svc.Create(context.Background(), domain.Link{TripID: trip.ID, Title: "Hotel", URL: " https://hotel.example.com/42 "})

	require.NoError(t, err)
	assert.Equal(t, "https://hotel.example.com/42", got.URL)
}

func TestLinkService_Create_Invalid(t *testing.T) {
	trip := storedTrip()
	svc := service.NewLinkService(tripRepoWith(trip), echoLinkRepo())

	for _, l := range []domain.Link{
		{TripID: trip.ID, Title: "", URL: "https://hotel.example.com"},
		{TripID: trip.ID, Title: "Hotel", URL: "hotel.example.com"},
		{TripID: trip.ID, Title: "Hotel", URL: "ftp://hotel.example.com"},
		{TripID: trip.ID, Title: "Hotel", URL: "https://"},
	} {
		_, err := svc.Create(context.Background(), l)
		assert.ErrorIs(t, err, domain.ErrValidation, "link %+v", l)
	}
}

func TestLinkService_Create_TripNotFound(t *testing.T) {
	svc := service.NewLinkService(tripRepoWith(storedTrip()), echoLinkRepo())

	_, err := svc.Create(context.Background(), domain.Link{TripID: uuid.New(), Title: "Hotel", URL: "https://x.example.com"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLinkService_ListByTripID_TripNotFound(t *testing.T) {
	svc := service.NewLinkService(tripRepoWith(storedTrip()), &mockLinkRepo{})

	_, err := svc.ListByTripID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLinkService_ListByTripID(t *testing.T) {
	trip := storedTrip()
	want := []domain.Link{{ID: uuid.New(), TripID: trip.ID, Title: "Map", URL: "https://maps.example.com"}}
	svc := service.NewLinkService(tripRepoWith(trip), &mockLinkRepo{
		listByTripID: func(context.Context, uuid.UUID) ([]domain.Link, error) { return want, nil },
	})

	got, err := svc.ListByTripID(context.Background(), trip.ID)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}
