package errors

// Error codes for standardized error responses
const (
	// Validation errors
	ErrCodeInvalidRequest = "invalid_request"
	ErrCodeMissingField   = "missing_field"
	ErrCodeUnknownSubject = "unknown_subject"
	ErrCodeInvalidEvent   = "invalid_event"
	ErrCodeInvalidHistory = "invalid_history"

	// Resource errors
	ErrCodeSessionNotFound = "session_not_found"
	ErrCodeQuizNotFound    = "quiz_not_found"

	// Session errors
	ErrCodeSessionStartFailed  = "session_start_failed"
	ErrCodeSessionUpdateFailed = "session_update_failed"
	ErrCodeSessionConflict     = "session_conflict"

	// Chat errors
	ErrCodeChatNotConfigured = "chat_not_configured"

	// WebSocket errors
	ErrCodeInvalidPayload     = "invalid_payload"
	ErrCodeUnknownMessageType = "unknown_message_type"
	ErrCodeEventRejected      = "event_rejected"

	// Server errors
	ErrCodeInternalError = "internal_error"
	ErrCodeUpstreamError = "upstream_error"
)
