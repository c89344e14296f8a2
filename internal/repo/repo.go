// Package repo contains all database access logic for the Trip Planner API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pkordes/trip-planner/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// beginner is a db that can also open a transaction. pgx.Tx satisfies it too
// (Begin starts a savepoint), so a Store can be nested inside a test transaction.
type beginner interface {
	db
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Repos bundles every repository bound to the same connection or transaction.
type Repos struct {
	Trips        TripRepo
	Participants ParticipantRepo
	Activities   ActivityRepo
	Links        LinkRepo
}

// NewRepos binds all repositories to db.
func NewRepos(db db) Repos {
	return Repos{
		Trips:        NewTripRepo(db),
		Participants: NewParticipantRepo(db),
		Activities:   NewActivityRepo(db),
		Links:        NewLinkRepo(db),
	}
}

// Transactor runs a unit of work inside a single database transaction.
// The service layer depends on this interface so it can be faked in unit tests.
type Transactor interface {
	// InTx calls fn with repositories bound to a fresh transaction.
	// The transaction commits if fn returns nil and rolls back otherwise.
	InTx(ctx context.Context, fn func(Repos) error) error
}

// Store exposes pool-bound repositories plus transactional execution.
type Store struct {
	Repos
	db beginner
}

// NewStore constructs a Store. In production pass *pgxpool.Pool.
func NewStore(db beginner) *Store {
	return &Store{Repos: NewRepos(db), db: db}
}

// InTx implements Transactor using pgx.BeginFunc.
func (s *Store) InTx(ctx context.Context, fn func(Repos) error) error {
	return pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		return fn(NewRepos(tx))
	})
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scan helpers to
// be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// foreignKeyViolation is the Postgres SQLSTATE for a missing referenced row.
const foreignKeyViolation = "23503"

// mapErr translates driver errors into domain errors.
// A missing row and an insert referencing a missing trip both become ErrNotFound.
func mapErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		return domain.ErrNotFound
	}
	return err
}
