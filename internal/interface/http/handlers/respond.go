// Package handlers contains the REST API handlers, request payloads, and the
// HTTP middleware for Student Activity Hub.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/activity-hub/student-activity-hub/internal/domain/shared"
)

// validate is the shared request payload validator.
var validate = validator.New()

// errorResponse is the JSON body for all error replies.
type errorResponse struct {
	Message string `json:"message"`
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// writeError maps a typed domain error to an HTTP status and JSON body.
// NotFound maps to 404, Forbidden to 403, the remaining taxonomy kinds to
// 400, and anything untyped to 500 with a generic message.
func writeError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	var status int
	switch {
	case shared.IsNotFound(err):
		status = http.StatusNotFound
	case shared.IsForbidden(err):
		status = http.StatusForbidden
	case shared.IsValidation(err), shared.IsConflict(err),
		shared.IsInvalidState(err), shared.IsCapacityExceeded(err):
		status = http.StatusBadRequest
	default:
		logger.Error("internal error",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "Internal server error"})
		return
	}

	writeJSON(w, status, errorResponse{Message: domainMessage(err)})
}

// domainMessage extracts the human-readable message from a DomainError chain.
func domainMessage(err error) string {
	var derr *shared.DomainError
	if errors.As(err, &derr) && derr.Message != "" {
		return derr.Message
	}
	return err.Error()
}

// decodeValid decodes the request body into dst and runs struct validation.
func decodeValid(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	if err := validate.Struct(dst); err != nil {
		return err
	}
	return nil
}

// writeBadRequest replies 400 with the given message.
func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Message: message})
}

// urlID parses the {id} URL parameter.
func urlID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}
