package quiz

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/Akshansingh/EDTECHPCM/internal/catalog"
	"github.com/Akshansingh/EDTECHPCM/internal/server"
	httperrors "github.com/Akshansingh/EDTECHPCM/pkg/http/errors"
	ws "github.com/Akshansingh/EDTECHPCM/pkg/http/ws"
)

// WSHandler runs a quiz session over a WebSocket. The session lives only as
// long as the connection and is never stored.
type WSHandler struct {
	service *Service
	logger  zerolog.Logger
}

// NewWSHandler creates the WebSocket quiz handler.
func NewWSHandler(service *Service, logger zerolog.Logger) *WSHandler {
	return &WSHandler{
		service: service,
		logger:  logger.With().Str("component", "quiz_ws").Logger(),
	}
}

// Register mounts the WebSocket route on mux.
func (h *WSHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /ws/quiz", h.HandleWebSocket)
}

// HandleWebSocket handles GET /ws/quiz?subject=&topic= or ?quiz_id=
func (h *WSHandler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sess, err := h.service.NewSession(StartRequest{
		Subject: q.Get("subject"),
		Topic:   q.Get("topic"),
		QuizID:  q.Get("quiz_id"),
	})
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrQuizNotFound):
			httperrors.RespondNotFound(w, httperrors.ErrCodeQuizNotFound, err.Error())
		case errors.Is(err, catalog.ErrUnknownSubject):
			httperrors.RespondValidationError(w, httperrors.ErrCodeUnknownSubject, err.Error(), "subject")
		default:
			httperrors.RespondValidationError(w, httperrors.ErrCodeMissingField, err.Error(), "subject")
		}
		return
	}

	conn, err := server.WSUpgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	h.service.Started(sess)
	h.HandleConnection(conn, sess)
}

// HandleConnection pumps events for sess until the peer disconnects.
func (h *WSHandler) HandleConnection(conn *websocket.Conn, sess *Session) {
	logger := h.logger.With().Str("session_id", sess.ID.String()).Logger()
	wsConn := ws.NewConnection(conn, logger)
	go wsConn.WritePump()

	if err := h.sendState(wsConn, sess, ""); err != nil {
		logger.Warn().Err(err).Msg("initial state send failed")
	}

	// ReadPump calls back sequentially, so each event completes before the
	// next is read.
	wsConn.ReadPump(func(msg ws.Message) error {
		return h.handleMessage(wsConn, sess, msg)
	})

	wsConn.Close()
	logger.Debug().Msg("quiz connection closed")
}

func (h *WSHandler) handleMessage(conn *ws.Connection, sess *Session, msg ws.Message) error {
	var event Event
	switch msg.Type {
	case ws.TypePing:
		return send(conn, ws.TypePong, nil, msg.RequestID)
	case ws.TypeSelectAnswer:
		var p ws.SelectAnswerPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return sendError(conn, httperrors.ErrCodeInvalidPayload, "Invalid select_answer payload", msg.RequestID)
		}
		event = SelectAnswer(p.Question, p.Option)
	case ws.TypeNext:
		event = Next()
	case ws.TypePrev:
		event = Prev()
	case ws.TypeToggleExplanation:
		event = ToggleExplanation()
	case ws.TypeReset:
		event = Reset()
	default:
		return sendError(conn, httperrors.ErrCodeUnknownMessageType, fmt.Sprintf("Unknown message type: %s", msg.Type), msg.RequestID)
	}

	if !h.service.Step(sess, event) {
		return sendError(conn, httperrors.ErrCodeEventRejected, fmt.Sprintf("%s not allowed in current state", event.Type), msg.RequestID)
	}
	return h.sendState(conn, sess, msg.RequestID)
}

func (h *WSHandler) sendState(conn *ws.Connection, sess *Session, requestID string) error {
	return send(conn, ws.TypeSessionState, sess.View(), requestID)
}

func sendError(conn *ws.Connection, code, message, requestID string) error {
	return send(conn, ws.TypeError, ws.ErrorPayload{Code: code, Message: message}, requestID)
}

func send(conn *ws.Connection, msgType string, payload interface{}, requestID string) error {
	msg, err := ws.NewMessage(msgType, payload, requestID)
	if err != nil {
		return fmt.Errorf("encode %s: %w", msgType, err)
	}
	return conn.Send(msg)
}
