package chat

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	httperrors "github.com/Akshansingh/EDTECHPCM/pkg/http/errors"
)

// HTTPHandler exposes the chat proxy.
type HTTPHandler struct {
	service *Service
	logger  zerolog.Logger
}

// NewHTTPHandler constructs the chat HTTP handler.
func NewHTTPHandler(service *Service, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		service: service,
		logger:  logger.With().Str("component", "chat_http").Logger(),
	}
}

// Register mounts the chat routes on mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/chat", h.HandleChat)
	mux.HandleFunc("GET /v1/chat/status", h.HandleStatus)
}

// ChatRequest is the POST /v1/chat body.
type ChatRequest struct {
	Messages []Message `json:"messages"`
}

// ChatResponse carries the assistant reply or the apology.
type ChatResponse struct {
	Message string `json:"message"`
	Status  Status `json:"status"`
}

// HandleChat handles POST /v1/chat
func (h *HTTPHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "Invalid JSON payload")
		return
	}

	call, err := h.service.Start(r.Context(), req.Messages)
	switch {
	case errors.Is(err, ErrInvalidHistory):
		httperrors.RespondValidationError(w, httperrors.ErrCodeInvalidHistory, err.Error(), "messages")
		return
	case errors.Is(err, ErrNotConfigured):
		httperrors.RespondServiceUnavailable(w, httperrors.ErrCodeChatNotConfigured, "Chat assistant is not configured")
		return
	case err != nil:
		httperrors.RespondInternalError(w, "Failed to start chat request")
		return
	}

	result, err := call.Wait(r.Context())
	if err != nil {
		// Client went away; nothing useful can be written.
		h.logger.Debug().Err(err).Msg("chat client disconnected")
		return
	}
	status := http.StatusOK
	if result.Status == StatusFailed {
		status = http.StatusBadGateway
	}
	httperrors.RespondJSON(w, status, ChatResponse{Message: result.Message, Status: result.Status})
}

// HandleStatus handles GET /v1/chat/status
func (h *HTTPHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	httperrors.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"enabled":  h.service.Enabled(),
		"provider": h.service.ProviderName(),
		"model":    h.service.ModelID(),
		"greeting": Greeting,
	})
}
