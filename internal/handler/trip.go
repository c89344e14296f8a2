package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/service"
)

type createTripRequest struct {
	Destination    string    `json:"destination" validate:"required,min=4"`
	StartAt        time.Time `json:"start_at" validate:"required"`
	EndAt          time.Time `json:"end_at" validate:"required"`
	OwnerName      string    `json:"owner_name" validate:"required"`
	OwnerEmail     string    `json:"owner_email" validate:"required,email"`
	EmailsToInvite []string  `json:"emails_to_invite" validate:"dive,email"`
}

type updateTripRequest struct {
	Destination string    `json:"destination" validate:"required,min=4"`
	StartAt     time.Time `json:"start_at" validate:"required"`
	EndAt       time.Time `json:"end_at" validate:"required"`
}

type inviteRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// TripResponse is the public representation of a trip.
type TripResponse struct {
	ID          uuid.UUID `json:"id"`
	Destination string    `json:"destination"`
	StartAt     time.Time `json:"start_at"`
	EndAt       time.Time `json:"end_at"`
	IsConfirmed bool      `json:"is_confirmed"`
}

type tripIDResponse struct {
	TripID uuid.UUID `json:"tripId"`
}

type tripResponse struct {
	Trip TripResponse `json:"trip"`
}

type participantIDResponse struct {
	ParticipantID uuid.UUID `json:"participantId"`
}

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req createTripRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondErr(w, r, err, "")
		return
	}

	trip, err := s.trips.Create(r.Context(), service.NewTrip{
		Destination:    req.Destination,
		StartsAt:       req.StartAt,
		EndsAt:         req.EndAt,
		OwnerName:      req.OwnerName,
		OwnerEmail:     req.OwnerEmail,
		EmailsToInvite: req.EmailsToInvite,
	})
	if err != nil {
		s.respondErr(w, r, err, "")
		return
	}

	writeJSON(w, http.StatusCreated, tripIDResponse{TripID: trip.ID})
}

// GetTrip handles GET /trips/{tripId}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "tripId")
	if err != nil {
		s.respondErr(w, r, err, "")
		return
	}

	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		s.respondErr(w, r, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusOK, tripResponse{Trip: tripToResponse(trip)})
}

// UpdateTrip handles PUT /trips/{tripId}.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "tripId")
	if err != nil {
		s.respondErr(w, r, err, "")
		return
	}
	var req updateTripRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondErr(w, r, err, "")
		return
	}

	updated, err := s.trips.Update(r.Context(), domain.Trip{
		ID:          id,
		Destination: req.Destination,
		StartsAt:    req.StartAt,
		EndsAt:      req.EndAt,
	})
	if err != nil {
		s.respondErr(w, r, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusOK, tripIDResponse{TripID: updated.ID})
}

// ConfirmTrip handles GET /trips/{tripId}/confirm. It is the target of the
// link in the owner's email, so it answers with a redirect to the web client.
// Confirming an already confirmed trip redirects without sending anything.
func (s *Server) ConfirmTrip(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "tripId")
	if err != nil {
		s.respondErr(w, r, err, "")
		return
	}

	if _, err := s.trips.Confirm(r.Context(), id); err != nil {
		s.respondErr(w, r, err, "trip not found")
		return
	}

	s.redirectToTrip(w, r, id)
}

// CreateInvite handles POST /trips/{tripId}/invites.
func (s *Server) CreateInvite(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripId")
	if err != nil {
		s.respondErr(w, r, err, "")
		return
	}
	var req inviteRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondErr(w, r, err, "")
		return
	}

	p, err := s.trips.Invite(r.Context(), tripID, req.Email)
	if err != nil {
		s.respondErr(w, r, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusCreated, participantIDResponse{ParticipantID: p.ID})
}

func (s *Server) redirectToTrip(w http.ResponseWriter, r *http.Request, tripID uuid.UUID) {
	http.Redirect(w, r, s.webBaseURL+"/trips/"+tripID.String(), http.StatusSeeOther)
}

func tripToResponse(t domain.Trip) TripResponse {
	return TripResponse{
		ID:          t.ID,
		Destination: t.Destination,
		StartAt:     t.StartsAt,
		EndAt:       t.EndsAt,
		IsConfirmed: t.IsConfirmed,
	}
}
