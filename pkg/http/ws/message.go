package ws

import "encoding/json"

// MessageType constants for WebSocket protocol.
const (
	// Client -> Server
	TypeSelectAnswer      = "select_answer"
	TypeNext              = "next"
	TypePrev              = "prev"
	TypeToggleExplanation = "toggle_explanation"
	TypeReset             = "reset"
	TypePing              = "ping"

	// Server -> Client
	TypeSessionState = "session_state"
	TypeError        = "error"
	TypePong         = "pong"
)

// Message wraps all WebSocket payloads with type and optional request ID.
type Message struct {
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	RequestID string          `json:"request_id,omitempty"`
}

// NewMessage encodes payload into a Message. A nil payload is omitted.
func NewMessage(msgType string, payload interface{}, requestID string) (Message, error) {
	msg := Message{Type: msgType, RequestID: requestID}
	if payload == nil {
		return msg, nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	msg.Payload = raw
	return msg, nil
}

// Client Messages (incoming)

type SelectAnswerPayload struct {
	Question int `json:"question"`
	Option   int `json:"option"`
}

// Server Messages (outgoing)

type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
