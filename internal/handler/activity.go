package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
)

type createActivityRequest struct {
	Title    string    `json:"title" validate:"required"`
	OccursAt time.Time `json:"occurs_at" validate:"required"`
}

// ActivityResponse is the public representation of an activity.
type ActivityResponse struct {
	ID       uuid.UUID `json:"id"`
	TripID   uuid.UUID `json:"trip_id"`
	Title    string    `json:"title"`
	OccursAt time.Time `json:"occurs_at"`
}

type activitiesResponse struct {
	Activities []ActivityResponse `json:"activities"`
}

type activityIDResponse struct {
	ActivityID uuid.UUID `json:"activityId"`
}

// ListActivities handles GET /trips/{tripId}/activities.
// Activities are ordered by occurs_at ascending.
func (s *Server) ListActivities(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripId")
	if err != nil {
		s.respondErr(w, r, err, "")
		return
	}

	activities, err := s.activities.ListByTripID(r.Context(), tripID)
	if err != nil {
		s.respondErr(w, r, err, "trip not found")
		return
	}

	out := make([]ActivityResponse, len(activities))
	for i, a := range activities {
		out[i] = ActivityResponse{ID: a.ID, TripID: a.TripID, Title: a.Title, OccursAt: a.OccursAt}
	}
	writeJSON(w, http.StatusOK, activitiesResponse{Activities: out})
}

// CreateActivity handles POST /trips/{tripId}/activities.
func (s *Server) CreateActivity(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripId")
	if err != nil {
		s.respondErr(w, r, err, "")
		return
	}
	var req createActivityRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondErr(w, r, err, "")
		return
	}

	a, err := s.activities.Create(r.Context(), domain.Activity{TripID: tripID, Title: req.Title, OccursAt: req.OccursAt})
	if err != nil {
		s.respondErr(w, r, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusCreated, activityIDResponse{ActivityID: a.ID})
}
