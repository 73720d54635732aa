package quiz

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ws "github.com/Akshansingh/EDTECHPCM/pkg/http/ws"
)

func dialQuiz(t *testing.T, query url.Values) (*websocket.Conn, *fakeRecorder) {
	t.Helper()
	svc, rec := newTestService(t)
	mux := http.NewServeMux()
	NewWSHandler(svc, zerolog.Nop()).Register(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	u := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/quiz?" + query.Encode()
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn, rec
}

func readMessage(t *testing.T, conn *websocket.Conn) ws.Message {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg ws.Message
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func readState(t *testing.T, conn *websocket.Conn) View {
	t.Helper()
	msg := readMessage(t, conn)
	require.Equal(t, ws.TypeSessionState, msg.Type, string(msg.Payload))
	var v View
	require.NoError(t, json.Unmarshal(msg.Payload, &v))
	return v
}

func sendMessage(t *testing.T, conn *websocket.Conn, msgType string, payload interface{}, requestID string) {
	t.Helper()
	msg, err := ws.NewMessage(msgType, payload, requestID)
	require.NoError(t, err)
	require.NoError(t, conn.WriteJSON(msg))
}

func TestWSQuizRoundTrip(t *testing.T) {
	conn, rec := dialQuiz(t, url.Values{"subject": {"physics"}, "topic": {"Newton's First Law of Motion"}})

	v := readState(t, conn)
	assert.Equal(t, 3, v.QuestionCount)
	rec.mu.Lock()
	assert.Equal(t, []string{"physics/topic"}, rec.started)
	rec.mu.Unlock()
	assert.Equal(t, "exact", string(v.Outcome))

	for i, answer := range []int{0, 2, 1} {
		sendMessage(t, conn, ws.TypeSelectAnswer, ws.SelectAnswerPayload{Question: i, Option: answer}, "")
		readState(t, conn)
		sendMessage(t, conn, ws.TypeNext, nil, "")
		v = readState(t, conn)
	}
	assert.True(t, v.ShowResults)
	require.NotNil(t, v.Score)
	assert.Equal(t, 3, *v.Score)

	sendMessage(t, conn, ws.TypeReset, nil, "r1")
	msg := readMessage(t, conn)
	assert.Equal(t, "r1", msg.RequestID)
	var reset View
	require.NoError(t, json.Unmarshal(msg.Payload, &reset))
	assert.False(t, reset.ShowResults)
	assert.Equal(t, 0, reset.Answered)
}

func TestWSRejectedAndUnknownMessages(t *testing.T) {
	conn, _ := dialQuiz(t, url.Values{"quiz_id": {"chemistry-periodic-table"}})
	readState(t, conn)

	sendMessage(t, conn, ws.TypeNext, nil, "n1")
	msg := readMessage(t, conn)
	assert.Equal(t, ws.TypeError, msg.Type)
	assert.Equal(t, "n1", msg.RequestID)
	var e ws.ErrorPayload
	require.NoError(t, json.Unmarshal(msg.Payload, &e))
	assert.Equal(t, "event_rejected", e.Code)

	sendMessage(t, conn, "teleport", nil, "")
	msg = readMessage(t, conn)
	require.NoError(t, json.Unmarshal(msg.Payload, &e))
	assert.Equal(t, "unknown_message_type", e.Code)

	sendMessage(t, conn, ws.TypePing, nil, "p")
	assert.Equal(t, ws.TypePong, readMessage(t, conn).Type)
}

func TestWSRejectsBadQueryBeforeUpgrade(t *testing.T) {
	svc, recorder := newTestService(t)
	mux := http.NewServeMux()
	NewWSHandler(svc, zerolog.Nop()).Register(mux)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ws/quiz?subject=biology", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ws/quiz?quiz_id=nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// A plain GET passes validation but fails the upgrade.
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ws/quiz?subject=math&topic=Sets", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, recorder.started)
}
