package quiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Akshansingh/EDTECHPCM/internal/catalog"
	httperrors "github.com/Akshansingh/EDTECHPCM/pkg/http/errors"
)

// HTTPHandlers provides REST endpoints for quiz sessions.
type HTTPHandlers struct {
	service *Service
	logger  zerolog.Logger
}

// NewHTTPHandlers creates HTTP handlers for session endpoints.
func NewHTTPHandlers(service *Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		service: service,
		logger:  logger.With().Str("component", "quiz_http").Logger(),
	}
}

// Register mounts the session routes on mux.
func (h *HTTPHandlers) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/sessions", h.StartSession)
	mux.HandleFunc("GET /v1/sessions/{id}", h.GetSession)
	mux.HandleFunc("POST /v1/sessions/{id}/events", h.ApplyEvent)
	mux.HandleFunc("DELETE /v1/sessions/{id}", h.CloseSession)
}

// EventResponse is returned by the events endpoint.
type EventResponse struct {
	Accepted bool `json:"accepted"`
	Session  View `json:"session"`
}

// StartSession handles POST /v1/sessions
func (h *HTTPHandlers) StartSession(w http.ResponseWriter, r *http.Request) {
	var req StartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "Invalid JSON payload")
		return
	}

	sess, err := h.service.Start(r.Context(), req)
	if err != nil {
		h.respondStartError(w, err)
		return
	}
	httperrors.RespondJSON(w, http.StatusCreated, sess.View())
}

// GetSession handles GET /v1/sessions/{id}
func (h *HTTPHandlers) GetSession(w http.ResponseWriter, r *http.Request) {
	id, ok := parseSessionID(w, r)
	if !ok {
		return
	}
	sess, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.respondSessionError(w, id, err)
		return
	}
	httperrors.RespondJSON(w, http.StatusOK, sess.View())
}

// ApplyEvent handles POST /v1/sessions/{id}/events
func (h *HTTPHandlers) ApplyEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := parseSessionID(w, r)
	if !ok {
		return
	}
	var event Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "Invalid JSON payload")
		return
	}
	if err := event.Validate(); err != nil {
		httperrors.RespondValidationError(w, httperrors.ErrCodeInvalidEvent, err.Error(), "type")
		return
	}

	sess, accepted, err := h.service.Apply(r.Context(), id, event)
	if err != nil {
		h.respondSessionError(w, id, err)
		return
	}
	httperrors.RespondJSON(w, http.StatusOK, EventResponse{Accepted: accepted, Session: sess.View()})
}

// CloseSession handles DELETE /v1/sessions/{id}
func (h *HTTPHandlers) CloseSession(w http.ResponseWriter, r *http.Request) {
	id, ok := parseSessionID(w, r)
	if !ok {
		return
	}
	if err := h.service.Close(r.Context(), id); err != nil {
		h.respondSessionError(w, id, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func parseSessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httperrors.RespondValidationError(w, httperrors.ErrCodeInvalidRequest, "Invalid session id", "id")
		return uuid.Nil, false
	}
	return id, true
}

func (h *HTTPHandlers) respondStartError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrMissingTarget):
		httperrors.RespondValidationError(w, httperrors.ErrCodeMissingField, err.Error(), "subject")
	case errors.Is(err, catalog.ErrUnknownSubject):
		httperrors.RespondValidationError(w, httperrors.ErrCodeUnknownSubject, err.Error(), "subject")
	case errors.Is(err, catalog.ErrQuizNotFound):
		httperrors.RespondNotFound(w, httperrors.ErrCodeQuizNotFound, err.Error())
	default:
		h.logger.Error().Err(err).Msg("failed to start session")
		httperrors.RespondError(w, http.StatusInternalServerError, httperrors.ErrCodeSessionStartFailed, "Failed to start session")
	}
}

func (h *HTTPHandlers) respondSessionError(w http.ResponseWriter, id uuid.UUID, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		httperrors.RespondNotFound(w, httperrors.ErrCodeSessionNotFound, "Session not found")
	case errors.Is(err, ErrUnknownEvent):
		httperrors.RespondValidationError(w, httperrors.ErrCodeInvalidEvent, err.Error(), "type")
	case errors.Is(err, ErrConcurrentUpdate):
		h.logger.Warn().Str("session_id", id.String()).Msg("session update conflict")
		httperrors.RespondErrorWithDetails(w, http.StatusConflict, httperrors.ErrCodeSessionConflict, "Session was modified concurrently, retry the event", map[string]interface{}{
			"session_id": id.String(),
			"retryable":  true,
		})
	default:
		h.logger.Error().Err(err).Str("session_id", id.String()).Msg("session operation failed")
		httperrors.RespondError(w, http.StatusInternalServerError, httperrors.ErrCodeSessionUpdateFailed, "Failed to update session")
	}
}
