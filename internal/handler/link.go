package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
)

type createLinkRequest struct {
	Title string `json:"title" validate:"required"`
	URL   string `json:"url" validate:"required,http_url"`
}

// LinkResponse is the public representation of a link.
type LinkResponse struct {
	ID     uuid.UUID `json:"id"`
	TripID uuid.UUID `json:"trip_id"`
	Title  string    `json:"title"`
	URL    string    `json:"url"`
}

type linksResponse struct {
	Links []LinkResponse `json:"links"`
}

type linkIDResponse struct {
	LinkID uuid.UUID `json:"linkId"`
}

// ListLinks handles GET /trips/{tripId}/links.
func (s *Server) ListLinks(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripId")
	if err != nil {
		s.respondErr(w, r, err, "")
		return
	}

	links, err := s.links.ListByTripID(r.Context(), tripID)
	if err != nil {
		s.respondErr(w, r, err, "trip not found")
		return
	}

	out := make([]LinkResponse, len(links))
	for i, l := range links {
		out[i] = LinkResponse{ID: l.ID, TripID: l.TripID, Title: l.Title, URL: l.URL}
	}
	writeJSON(w, http.StatusOK, linksResponse{Links: out})
}

// CreateLink handles POST /trips/{tripId}/links.
func (s *Server) CreateLink(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripId")
	if err != nil {
		s.respondErr(w, r, err, "")
		return
	}
	var req createLinkRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondErr(w, r, err, "")
		return
	}

	l, err := s.links.Create(r.Context(), domain.Link{TripID: tripID, Title: req.Title, URL: req.URL})
	if err != nil {
		s.respondErr(w, r, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusCreated, linkIDResponse{LinkID: l.ID})
}
