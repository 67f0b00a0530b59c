package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/task-api/internal/api/shared"
	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/redact"
)

// getPathID extracts an integer task ID from the URL path parameters.
//
// Returns:
//   - (id, nil): The parsed ID if valid
//   - (0, error): A validation error wrapping domain.ErrInvalidID if the parameter
//     is missing or not a base-10 64-bit integer
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(paramName, "is required", domain.ErrInvalidID)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil {
		return 0, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}

// handlePathID extracts the task ID and writes a 400 response if it is invalid.
// The boolean result reports whether the caller may continue.
func handlePathID(w http.ResponseWriter, r *http.Request, log *slog.Logger) (int64, bool) {
	id, err := getPathID(r, "id")
	if err != nil {
		log.Warn("invalid task id", slog.String("value", chi.URLParam(r, "id")))
		HandleAPIError(w, r, err, "")
		return 0, false
	}
	return id, true
}

// decodeTaskRequest parses and validates a TaskRequest body, writing a 400
// response on failure. The boolean result reports whether the caller may continue.
func decodeTaskRequest(w http.ResponseWriter, r *http.Request, log *slog.Logger) (TaskRequest, bool) {
	var req TaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return req, false
	}

	if err := shared.ValidateRequest(&req); err != nil {
		log.Warn("validation error", slog.String("error", redact.Error(err)))
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return req, false
	}

	return req, true
}
