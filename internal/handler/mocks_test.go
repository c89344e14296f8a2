package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/handler"
	"github.com/pkordes/trip-planner/internal/service"
)

// mockTripServicer is a test double for handler.TripServicer.
// Set only the method fields your test needs.
type mockTripServicer struct {
	create  func(ctx context.Context, in service.NewTrip) (domain.Trip, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	update  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	confirm func(ctx context.Context, id uuid.UUID) (domain.DeliveryReport, error)
	invite  func(ctx context.Context, tripID uuid.UUID, email string) (domain.Participant, error)
}

func (m *mockTripServicer) Create(ctx context.Context, in service.NewTrip) (domain.Trip, error) {
	return m.create(ctx, in)
}
func (m *mockTripServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripServicer) Update(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	return m.update(ctx, t)
}
func (m *mockTripServicer) Confirm(ctx context.Context, id uuid.UUID) (domain.DeliveryReport, error) {
	return m.confirm(ctx, id)
}
func (m *mockTripServicer) Invite(ctx context.Context, tripID uuid.UUID, email string) (domain.Participant, error) {
	return m.invite(ctx, tripID, email)
}

// compile-time check: mockTripServicer must satisfy handler.TripServicer.
var _ handler.TripServicer = (*mockTripServicer)(nil)

type mockParticipantServicer struct {
	getByID      func(ctx context.Context, id uuid.UUID) (domain.Participant, error)
	confirm      func(ctx context.Context, id uuid.UUID) (domain.Participant, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)
}

func (m *mockParticipantServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	return m.getByID(ctx, id)
}
func (m *mockParticipantServicer) Confirm(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	return m.confirm(ctx, id)
}
func (m *mockParticipantServicer) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	return m.listByTripID(ctx, tripID)
}

var _ handler.ParticipantServicer = (*mockParticipantServicer)(nil)

type mockActivityServicer struct {
	create       func(ctx context.Context, a domain.Activity) (domain.Activity, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error)
}

func (m *mockActivityServicer) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	return m.create(ctx, a)
}
func (m *mockActivityServicer) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	return m.listByTripID(ctx, tripID)
}

var _ handler.ActivityServicer = (*mockActivityServicer)(nil)

type mockLinkServicer struct {
	create       func(ctx context.Context, l domain.Link) (domain.Link, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error)
}

func (m *mockLinkServicer) Create(ctx context.Context, l domain.Link) (domain.Link, error) {
	return m.create(ctx, l)
}
func (m *mockLinkServicer) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error) {
	return m.listByTripID(ctx, tripID)
}

var _ handler.LinkServicer = (*mockLinkServicer)(nil)

// ---- helpers ---------------------------------------------------------------

const webBaseURL = "http://web.test"

// services groups the mocks a test wires into the router. Nil entries are
// replaced by empty mocks, which panic if a test reaches them unexpectedly.
type services struct {
	trips        *mockTripServicer
	participants *mockParticipantServicer
	activities   *mockActivityServicer
	links        *mockLinkServicer
}

// newHTTPHandler wires a Server with the given mocks into the chi router.
// This mirrors how main.go wires it in production.
func newHTTPHandler(s services) http.Handler {
	if s.trips == nil {
		s.trips = &mockTripServicer{}
	}
	if s.participants == nil {
		s.participants = &mockParticipantServicer{}
	}
	if s.activities == nil {
		s.activities = &mockActivityServicer{}
	}
	if s.links == nil {
		s.links = &mockLinkServicer{}
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return handler.NewServer(s.trips, s.participants, s.activities, s.links, webBaseURL, log).Routes()
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(h http.Handler, method, path string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) handler.ErrorDetail {
	t.Helper()
	var resp handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp.Error
}
