package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shunichi-ikebuchi/property-backoffice/internal/store"
	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
)

// ErrorResponse represents an API error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// writeJSONError writes a JSON error response.
func writeJSONError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error:   code,
		Message: message,
	})
}

// writeJSON writes v as a JSON response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeStoreError maps store errors onto responses. notFound is the
// message for a missing record, failure the message for anything
// unexpected.
func writeStoreError(w http.ResponseWriter, r *http.Request, err error, notFound, failure string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeJSONError(w, http.StatusNotFound, "not_found", notFound)
	case errors.Is(err, store.ErrInvalidReference):
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", err.Error())
	case errors.Is(err, models.ErrValidation):
		writeJSONError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		slog.ErrorContext(r.Context(), failure, "error", err, "path", r.URL.Path)
		writeJSONError(w, http.StatusInternalServerError, "server_error", failure)
	}
}

// validator is implemented by every create/update request.
type validator interface {
	Validate() error
}

// decodeRequest decodes and validates a JSON body, writing a 400 response
// on failure.
func decodeRequest(w http.ResponseWriter, r *http.Request, req validator) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", fmt.Sprintf("Invalid request body: %v", err))
		return false
	}
	if err := req.Validate(); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return false
	}
	return true
}

// urlID parses a numeric URL parameter, writing a 400 response on failure.
func urlID(w http.ResponseWriter, r *http.Request, name, label string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "Invalid "+label)
		return 0, false
	}
	return id, true
}

// queryInt parses an optional integer query parameter; absent means 0.
func queryInt(r *http.Request, name string) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, v)
	}
	return n, nil
}

// queryPeriod parses the optional year/month/day filter, writing a 400
// response on failure.
func queryPeriod(w http.ResponseWriter, r *http.Request) (models.Period, bool) {
	var p models.Period
	var err error
	for _, f := range []struct {
		name string
		dst  *int
	}{{"year", &p.Year}, {"month", &p.Month}, {"day", &p.Day}} {
		if *f.dst, err = queryInt(r, f.name); err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid_parameter", err.Error())
			return p, false
		}
	}
	if err := p.Validate(); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", err.Error())
		return p, false
	}
	return p, true
}
