// Package handler implements the HTTP handlers for the Trip Planner API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, trip.go, etc.) but all share the same Server struct so
// they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/service"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, in service.NewTrip) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Confirm(ctx context.Context, id uuid.UUID) (domain.DeliveryReport, error)
	Invite(ctx context.Context, tripID uuid.UUID, email string) (domain.Participant, error)
}

// ParticipantServicer defines the participant operations the handlers depend on.
type ParticipantServicer interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Participant, error)
	Confirm(ctx context.Context, id uuid.UUID) (domain.Participant, error)
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)
}

// ActivityServicer defines the activity operations the handlers depend on.
type ActivityServicer interface {
	Create(ctx context.Context, a domain.Activity) (domain.Activity, error)
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error)
}

// LinkServicer defines the link operations the handlers depend on.
type LinkServicer interface {
	Create(ctx context.Context, l domain.Link) (domain.Link, error)
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error)
}

// Server holds the services every handler needs.
type Server struct {
	trips        TripServicer
	participants ParticipantServicer
	activities   ActivityServicer
	links        LinkServicer
	webBaseURL   string
	log          *slog.Logger
}

// NewServer constructs the Server with all its dependencies. webBaseURL is
// where confirmation links send the browser once the confirmation is stored.
func NewServer(trips TripServicer, participants ParticipantServicer, activities ActivityServicer, links LinkServicer, webBaseURL string, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		trips:        trips,
		participants: participants,
		activities:   activities,
		links:        links,
		webBaseURL:   webBaseURL,
		log:          log,
	}
}

// Routes returns the API router. writeMW wraps every route that creates or
// changes data (POST and PUT), e.g. a rate limiter.
func (s *Server) Routes(writeMW ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody("not_found", "route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody("method_not_allowed", "method not allowed"))
	})

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/trips", func(r chi.Router) {
		r.With(writeMW...).Post("/", s.CreateTrip)
		r.Route("/{tripId}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.With(writeMW...).Put("/", s.UpdateTrip)
			r.Get("/confirm", s.ConfirmTrip)
			r.Get("/participants", s.ListParticipants)
			r.With(writeMW...).Post("/invites", s.CreateInvite)
			r.Get("/activities", s.ListActivities)
			r.With(writeMW...).Post("/activities", s.CreateActivity)
			r.Get("/links", s.ListLinks)
			r.With(writeMW...).Post("/links", s.CreateLink)
		})
	})

	r.Route("/participants/{participantId}", func(r chi.Router) {
		r.Get("/", s.GetParticipant)
		r.Get("/confirm", s.ConfirmParticipant)
	})

	return r
}
