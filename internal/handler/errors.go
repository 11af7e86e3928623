package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/chasingSublimity/Traveler/internal/auth"
	"github.com/chasingSublimity/Traveler/internal/domain"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// messageBody is used where only a message is meaningful (unmatched routes).
type messageBody struct {
	Message string `json:"message"`
}

// errBadRequest marks a request rejected before reaching the service layer
// (malformed body or parameters).
var errBadRequest = errors.New("bad request")

func badRequest(message string) error {
	return &requestError{message: message}
}

type requestError struct{ message string }

func (e *requestError) Error() string { return errBadRequest.Error() + ": " + e.message }
func (e *requestError) Unwrap() error { return errBadRequest }

// writeError maps err onto a status code and writes the JSON error body.
// Unrecognised errors are logged and reported as a generic 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		writeJSON(w, http.StatusRequestEntityTooLarge, errorBody{"payload_too_large", "request body too large"})
	case errors.Is(err, errBadRequest):
		writeJSON(w, http.StatusBadRequest, errorBody{"bad_request", detail(err, errBadRequest)})
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusUnprocessableEntity, errorBody{"validation_error", detail(err, domain.ErrValidation)})
	case errors.Is(err, domain.ErrReferential):
		writeJSON(w, http.StatusUnprocessableEntity, errorBody{"referential_error", detail(err, domain.ErrReferential)})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{"not_found", detail(err, domain.ErrNotFound)})
	case errors.Is(err, domain.ErrConflict):
		writeJSON(w, http.StatusConflict, errorBody{"conflict", detail(err, domain.ErrConflict)})
	case errors.Is(err, domain.ErrUnauthenticated):
		w.Header().Set("WWW-Authenticate", `Basic realm="`+auth.Realm+`", charset="UTF-8"`)
		writeJSON(w, http.StatusUnauthorized, errorBody{"unauthenticated", auth.Reason(err)})
	case errors.Is(err, domain.ErrUpstream):
		slog.WarnContext(r.Context(), "upstream failure", "error", err)
		writeJSON(w, http.StatusBadGateway, errorBody{"upstream_error", "upstream service unavailable"})
	default:
		slog.ErrorContext(r.Context(), "unhandled error", "method", r.Method, "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{"internal_error", "Internal server error"})
	}
}

// detail extracts the human-readable part that follows sentinel in err.
// e.g. "service.TripService.Create: validation error: origin is required"
// → "origin is required". Without a detail the sentinel text is returned.
func detail(err, sentinel error) string {
	msg := err.Error()
	marker := sentinel.Error() + ": "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return sentinel.Error()
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("encoding response failed", "error", err)
	}
}
