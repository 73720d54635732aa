package chat

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httperrors "github.com/Akshansingh/EDTECHPCM/pkg/http/errors"
)

func newChatMux(provider Provider) *http.ServeMux {
	cfg := testChatConfig()
	if provider == nil {
		cfg.Provider = ProviderNone
	}
	mux := http.NewServeMux()
	NewHTTPHandler(NewService(provider, cfg, nil, zerolog.Nop()), zerolog.Nop()).Register(mux)
	return mux
}

func postChat(t *testing.T, mux http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestHandleChatSuccess(t *testing.T) {
	mux := newChatMux(NewMockProvider(MockResponse{Text: "Sets are collections."}))
	rec := postChat(t, mux, `{"messages":[{"role":"user","content":"What is a set?"}]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, ChatResponse{Message: "Sets are collections.", Status: StatusSucceeded}, resp)
}

func TestHandleChatUpstreamFailure(t *testing.T) {
	mux := newChatMux(NewMockProvider(MockResponse{Err: errors.New("down")}))
	rec := postChat(t, mux, `{"messages":[{"role":"user","content":"hi"}]}`)

	require.Equal(t, http.StatusBadGateway, rec.Code)
	var resp ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, Apology, resp.Message)
	assert.Equal(t, StatusFailed, resp.Status)
}

func TestHandleChatRejectsBadInput(t *testing.T) {
	mux := newChatMux(NewMockProvider())

	tests := []struct {
		name string
		body string
		code string
	}{
		{name: "bad json", body: `{`, code: httperrors.ErrCodeInvalidRequest},
		{name: "empty history", body: `{"messages":[]}`, code: httperrors.ErrCodeInvalidHistory},
		{name: "ends with assistant", body: `{"messages":[{"role":"assistant","content":"hello"}]}`, code: httperrors.ErrCodeInvalidHistory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postChat(t, mux, tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			var resp httperrors.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.code, resp.Error)
		})
	}
}

func TestHandleChatNotConfigured(t *testing.T) {
	mux := newChatMux(nil)
	rec := postChat(t, mux, `{"messages":[{"role":"user","content":"hi"}]}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), httperrors.ErrCodeChatNotConfigured)
}

func TestHandleStatus(t *testing.T) {
	mux := newChatMux(NewMockProvider())
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/chat/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["enabled"])
	assert.Equal(t, "mock", body["provider"])
	assert.Equal(t, "mock", body["model"])
	assert.Equal(t, Greeting, body["greeting"])
}

