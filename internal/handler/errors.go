package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pkordes/trip-planner/internal/domain"
)

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail is a machine-readable code plus a human-readable message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func errorBody(code, message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: code, Message: message}}
}

// requestError is a request rejected before reaching the service layer
// (malformed body, bad path id, oversized body).
type requestError struct {
	status  int
	message string
}

func (e *requestError) Error() string { return e.message }

func badRequest(message string) error {
	return &requestError{status: http.StatusBadRequest, message: message}
}

// writeJSON encodes v with the given status. Encoding errors are ignored:
// the status line is already on the wire.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// respondErr maps err to a status code and error body. notFound is the
// message used when err wraps domain.ErrNotFound, because the handler is the
// layer that knows what was being looked up. Unexpected errors are logged and
// reported with a generic message.
func (s *Server) respondErr(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	var reqErr *requestError
	var valErr *domain.ValidationError

	switch {
	case errors.As(err, &reqErr):
		code := "bad_request"
		if reqErr.status == http.StatusRequestEntityTooLarge {
			code = "payload_too_large"
		}
		writeJSON(w, reqErr.status, errorBody(code, reqErr.message))
	case errors.As(err, &valErr):
		writeJSON(w, http.StatusUnprocessableEntity, errorBody("validation_error", valErr.Message))
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusUnprocessableEntity, errorBody("validation_error", err.Error()))
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody("not_found", notFound))
	default:
		s.log.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", chimiddleware.GetReqID(r.Context()),
			"error", err,
		)
		writeJSON(w, http.StatusInternalServerError, errorBody("internal_error", "internal server error"))
	}
}
