package service_test

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/repo"
	"github.com/pkordes/trip-planner/internal/service"
)

// mockTripRepo is a hand-written test double for repo.TripRepo.
// Each method is a function field; set only the ones your test needs.
type mockTripRepo struct {
	create  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	update  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	confirm func(ctx context.Context, id uuid.UUID) (domain.Trip, bool, error)
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}
func (m *mockTripRepo) Confirm(ctx context.Context, id uuid.UUID) (domain.Trip, bool, error) {
	return m.confirm(ctx, id)
}

var _ repo.TripRepo = (*mockTripRepo)(nil)

type mockParticipantRepo struct {
	create       func(ctx context.Context, p domain.Participant) (domain.Participant, error)
	createMany   func(ctx context.Context, tripID uuid.UUID, ps []domain.Participant) ([]domain.Participant, error)
	getByID      func(ctx context.Context, id uuid.UUID) (domain.Participant, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)
	confirm      func(ctx context.Context, id uuid.UUID) (domain.Participant, error)
}

func (m *mockParticipantRepo) Create(ctx context.Context, p domain.Participant) (domain.Participant, error) {
	return m.create(ctx, p)
}
func (m *mockParticipantRepo) CreateMany(ctx context.Context, tripID uuid.UUID, ps []domain.Participant) ([]domain.Participant, error) {
	return m.createMany(ctx, tripID, ps)
}
func (m *mockParticipantRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	return m.getByID(ctx, id)
}
func (m *mockParticipantRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockParticipantRepo) Confirm(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	return m.confirm(ctx, id)
}

var _ repo.ParticipantRepo = (*mockParticipantRepo)(nil)

type mockActivityRepo struct {
	create       func(ctx context.Context, a domain.Activity) (domain.Activity, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error)
}

func (m *mockActivityRepo) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	return m.create(ctx, a)
}
func (m *mockActivityRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	return m.listByTripID(ctx, tripID)
}

var _ repo.ActivityRepo = (*mockActivityRepo)(nil)

type mockLinkRepo struct {
	create       func(ctx context.Context, l domain.Link) (domain.Link, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error)
}

func (m *mockLinkRepo) Create(ctx context.Context, l domain.Link) (domain.Link, error) {
	return m.create(ctx, l)
}
func (m *mockLinkRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error) {
	return m.listByTripID(ctx, tripID)
}

var _ repo.LinkRepo = (*mockLinkRepo)(nil)

// fakeTx runs the unit of work directly against the given repos.
// rolledBack records whether fn returned an error.
type fakeTx struct {
	repos      repo.Repos
	calls      int
	rolledBack bool
}

func (f *fakeTx) InTx(_ context.Context, fn func(repo.Repos) error) error {
	f.calls++
	err := fn(f.repos)
	f.rolledBack = err != nil
	return err
}

var _ repo.Transactor = (*fakeTx)(nil)

// recordingMailer captures every sent email. failFor makes sends to the
// listed addresses fail. Safe for concurrent use.
type recordingMailer struct {
	mu      sync.Mutex
	sent    []domain.Email
	failFor map[string]error
}

func (m *recordingMailer) Send(_ context.Context, e domain.Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.failFor[e.ToAddress]; ok {
		return err
	}
	m.sent = append(m.sent, e)
	return nil
}

func (m *recordingMailer) addresses() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.sent))
	for i, e := range m.sent {
		out[i] = e.ToAddress
	}
	return out
}

var _ service.Mailer = (*recordingMailer)(nil)
