package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/trip-planner/internal/domain"
)

// ParticipantRepo defines the persistence operations for Participants.
type ParticipantRepo interface {
	// Create inserts a single participant and returns the persisted record.
	// Returns domain.ErrNotFound if the referenced trip does not exist.
	Create(ctx context.Context, p domain.Participant) (domain.Participant, error)

	// CreateMany inserts all participants for tripID in one round trip and
	// returns them in input order with their generated fields populated.
	CreateMany(ctx context.Context, tripID uuid.UUID, ps []domain.Participant) ([]domain.Participant, error)

	// GetByID retrieves a participant by primary key.
	// Returns domain.ErrNotFound if no participant with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Participant, error)

	// ListByTripID returns the trip's participants, owner first, then by creation time.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)

	// Confirm sets is_confirmed for the participant and returns the updated record.
	// Confirming an already confirmed participant is not an error.
	// Returns domain.ErrNotFound if no participant with that ID exists.
	Confirm(ctx context.Context, id uuid.UUID) (domain.Participant, error)
}

// pgParticipantRepo is the Postgres implementation of ParticipantRepo.
type pgParticipantRepo struct {
	db db
}

// NewParticipantRepo constructs a ParticipantRepo backed by the provided db connection.
func NewParticipantRepo(db db) ParticipantRepo {
	return &pgParticipantRepo{db: db}
}

const participantColumns = `id, trip_id, name, email, is_owner, is_confirmed, created_at`

const insertParticipant = `
	INSERT INTO participants (trip_id, name, email, is_owner, is_confirmed)
	VALUES (@trip_id, @name, @email, @is_owner, @is_confirmed)
	RETURNING ` + participantColumns

func participantArgs(tripID uuid.UUID, p domain.Participant) pgx.NamedArgs {
	return pgx.NamedArgs{
		"trip_id":      tripID,
		"name":         p.Name, // nil becomes NULL
		"email":        p.Email,
		"is_owner":     p.IsOwner,
		"is_confirmed": p.IsConfirmed,
	}
}

func (r *pgParticipantRepo) Create(ctx context.Context, p domain.Participant) (domain.Participant, error) {
	result, err := scanParticipant(r.db.QueryRow(ctx, insertParticipant, participantArgs(p.TripID, p)))
	if err != nil {
		return domain.Participant{}, fmt.Errorf("repo.ParticipantRepo.Create: %w", err)
	}
	return result, nil
}

// CreateMany queues one INSERT per participant on a pgx.Batch.
func (r *pgParticipantRepo) CreateMany(ctx context.Context, tripID uuid.UUID, ps []domain.Participant) ([]domain.Participant, error) {
	if len(ps) == 0 {
		return []domain.Participant{}, nil
	}

	batch := &pgx.Batch{}
	for _, p := range ps {
		batch.Queue(insertParticipant, participantArgs(tripID, p))
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	out := make([]domain.Participant, 0, len(ps))
	for range ps {
		p, err := scanParticipant(results.QueryRow())
		if err != nil {
			return nil, fmt.Errorf("repo.ParticipantRepo.CreateMany: %w", err)
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *pgParticipantRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	const q = `SELECT ` + participantColumns + ` FROM participants WHERE id = @id`

	result, err := scanParticipant(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Participant{}, fmt.Errorf("repo.ParticipantRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgParticipantRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	const q = `
		SELECT ` + participantColumns + `
		FROM participants
		WHERE trip_id = @trip_id
		ORDER BY is_owner DESC, created_at, email`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.ParticipantRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	participants := []domain.Participant{}
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ParticipantRepo.ListByTripID: scan: %w", err)
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ParticipantRepo.ListByTripID: rows: %w", err)
	}
	return participants, nil
}

func (r *pgParticipantRepo) Confirm(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	const q = `
		UPDATE participants
		SET is_confirmed = true
		WHERE id = @id
		RETURNING ` + participantColumns

	result, err := scanParticipant(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Participant{}, fmt.Errorf("repo.ParticipantRepo.Confirm: %w", err)
	}
	return result, nil
}

// scanParticipant maps a single database row into a domain.Participant.
// A NULL name becomes a nil pointer.
func scanParticipant(s scanner) (domain.Participant, error) {
	var (
		p      domain.Participant
		id     pgtype.UUID
		tripID pgtype.UUID
		name   pgtype.Text
	)

	err := s.Scan(&id, &tripID, &name, &p.Email, &p.IsOwner, &p.IsConfirmed, &p.CreatedAt)
	if err != nil {
		return domain.Participant{}, mapErr(err)
	}

	p.ID = uuid.UUID(id.Bytes)
	p.TripID = uuid.UUID(tripID.Bytes)
	if name.Valid {
		n := name.String
		p.Name = &n
	}
	return p, nil
}
