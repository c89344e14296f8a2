package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/domain"
)

func TestGetParticipant_200(t *testing.T) {
	name := "Bea"
	p := domain.Participant{ID: uuid.New(), TripID: uuid.New(), Name: &name, Email: "b@x.com", IsConfirmed: true}
	svc := &mockParticipantServicer{
		getByID: func(context.Context, uuid.UUID) (domain.Participant, error) { return p, nil },
	}

	rec := do(newHTTPHandler(services{participants: svc}), http.MethodGet, "/participants/"+p.ID.String(), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, map[string]any{
		"id":           p.ID.String(),
		"name":         "Bea",
		"email":        "b@x.com",
		"is_confirmed": true,
	}, resp["participant"])
}

func TestGetParticipant_200_NullName(t *testing.T) {
	p := domain.Participant{ID: uuid.New(), Email: "b@x.com"}
	svc := &mockParticipantServicer{
		getByID: func(context.Context, uuid.UUID) (domain.Participant, error) { return p, nil },
	}

	rec := do(newHTTPHandler(services{participants: svc}), http.MethodGet, "/participants/"+p.ID.String(), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":null`)
}

func TestGetParticipant_404(t *testing.T) {
	svc := &mockParticipantServicer{
		getByID: func(context.Context, uuid.UUID) (domain.Participant, error) {
			return domain.Participant{}, domain.ErrNotFound
		},
	}

	rec := do(newHTTPHandler(services{participants: svc}), http.MethodGet, "/participants/"+uuid.NewString(), nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "participant not found", decodeError(t, rec).Message)
}

func TestGetParticipant_400_InvalidID(t *testing.T) {
	rec := do(newHTTPHandler(services{}), http.MethodGet, "/participants/123", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConfirmParticipant_303(t *testing.T) {
	p := domain.Participant{ID: uuid.New(), TripID: uuid.New(), Email: "b@x.com", IsConfirmed: true}
	svc := &mockParticipantServicer{
		confirm: func(_ context.Context, id uuid.UUID) (domain.Participant, error) {
			assert.Equal(t, p.ID, id)
			return p, nil
		},
	}

	rec := do(newHTTPHandler(services{participants: svc}), http.MethodGet, "/participants/"+p.ID.String()+"/confirm", nil)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, webBaseURL+"/trips/"+p.TripID.String(), rec.Header().Get("Location"))
}

func TestConfirmParticipant_404(t *testing.T) {
	svc := &mockParticipantServicer{
		confirm: func(context.Context, uuid.UUID) (domain.Participant, error) {
			return domain.Participant{}, domain.ErrNotFound
		},
	}

	rec := do(newHTTPHandler(services{participants: svc}), http.MethodGet, "/participants/"+uuid.NewString()+"/confirm", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListParticipants_200(t *testing.T) {
	tripID := uuid.New()
	owner := domain.NewOwner("Ana", "a@x.com")
	owner.ID, owner.TripID = uuid.New(), tripID
	invitee := domain.NewInvitee(tripID, "b@x.com")
	invitee.ID = uuid.New()
	svc := &mockParticipantServicer{
		listByTripID: func(context.Context, uuid.UUID) ([]domain.Participant, error) {
			return []domain.Participant{owner, invitee}, nil
		},
	}

	rec := do(newHTTPHandler(services{participants: svc}), http.MethodGet, "/trips/"+tripID.String()+"/participants", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Participants []struct {
			Email       string `json:"email"`
			IsOwner     bool   `json:"is_owner"`
			IsConfirmed bool   `json:"is_confirmed"`
		} `json:"participants"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Participants, 2)
	assert.True(t, resp.Participants[0].IsOwner)
	assert.True(t, resp.Participants[0].IsConfirmed)
	assert.Equal(t, "b@x.com", resp.Participants[1].Email)
	assert.False(t, resp.Participants[1].IsConfirmed)
}

func TestListParticipants_404(t *testing.T) {
	svc := &mockParticipantServicer{
		listByTripID: func(context.Context, uuid.UUID) ([]domain.Participant, error) {
			return nil, domain.ErrNotFound
		},
	}

	rec := do(newHTTPHandler(services{participants: svc}), http.MethodGet, "/trips/"+uuid.NewString()+"/participants", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "trip not found", decodeError(t, rec).Message)
}
