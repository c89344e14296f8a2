package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
)

// ParticipantResponse is the public representation of a participant.
type ParticipantResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        *string   `json:"name"`
	Email       string    `json:"email"`
	IsConfirmed bool      `json:"is_confirmed"`
}

// TripParticipantResponse adds the owner flag for the trip's participant list.
type TripParticipantResponse struct {
	ParticipantResponse
	IsOwner bool `json:"is_owner"`
}

type participantResponse struct {
	Participant ParticipantResponse `json:"participant"`
}

type participantsResponse struct {
	Participants []TripParticipantResponse `json:"participants"`
}

// GetParticipant handles GET /participants/{participantId}.
func (s *Server) GetParticipant(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "participantId")
	if err != nil {
		s.respondErr(w, r, err, "")
		return
	}

	p, err := s.participants.GetByID(r.Context(), id)
	if err != nil {
		s.respondErr(w, r, err, "participant not found")
		return
	}

	writeJSON(w, http.StatusOK, participantResponse{Participant: participantToResponse(p)})
}

// ConfirmParticipant handles GET /participants/{participantId}/confirm, the
// target of the link in an invitation email.
func (s *Server) ConfirmParticipant(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "participantId")
	if err != nil {
		s.respondErr(w, r, err, "")
		return
	}

	p, err := s.participants.Confirm(r.Context(), id)
	if err != nil {
		s.respondErr(w, r, err, "participant not found")
		return
	}

	s.redirectToTrip(w, r, p.TripID)
}

// ListParticipants handles GET /trips/{tripId}/participants.
func (s *Server) ListParticipants(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripId")
	if err != nil {
		s.respondErr(w, r, err, "")
		return
	}

	ps, err := s.participants.ListByTripID(r.Context(), tripID)
	if err != nil {
		s.respondErr(w, r, err, "trip not found")
		return
	}

	out := make([]TripParticipantResponse, len(ps))
	for i, p := range ps {
		out[i] = TripParticipantResponse{ParticipantResponse: participantToResponse(p), IsOwner: p.IsOwner}
	}
	writeJSON(w, http.StatusOK, participantsResponse{Participants: out})
}

func participantToResponse(p domain.Participant) ParticipantResponse {
	return ParticipantResponse{ID: p.ID, Name: p.Name, Email: p.Email, IsConfirmed: p.IsConfirmed}
}
