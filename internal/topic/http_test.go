package topic

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akshansingh/EDTECHPCM/internal/catalog"
)

func newTestMux() *http.ServeMux {
	mux := http.NewServeMux()
	NewHTTPHandler(NewResolver(catalog.Default()), zerolog.Nop()).Register(mux)
	return mux
}

func doGet(t *testing.T, mux http.Handler, target string) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestListTopics(t *testing.T) {
	rec, body := doGet(t, newTestMux(), "/v1/topics")
	require.Equal(t, http.StatusOK, rec.Code)

	var topics []string
	require.NoError(t, json.Unmarshal(body["topics"], &topics))
	assert.Len(t, topics, 18)
	assert.Equal(t, "Newton's First Law of Motion", topics[0])
}

func TestListDocumentsFuzzy(t *testing.T) {
	rec, body := doGet(t, newTestMux(), "/v1/subjects/chemistry/documents?topic=periodic+table+basics")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.JSONEq(t, `"fuzzy"`, string(body["outcome"]))
	assert.JSONEq(t, `"Periodic Table"`, string(body["matched_topic"]))

	var docs []catalog.Document
	require.NoError(t, json.Unmarshal(body["documents"], &docs))
	assert.Len(t, docs, 3)
	assert.Equal(t, "chemistry-periodic-table-2022", docs[0].ID)
}

func TestListDocumentsUnknownSubject(t *testing.T) {
	rec, body := doGet(t, newTestMux(), "/v1/subjects/biology/documents?topic=cells")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `"unknown_subject"`, string(body["error"]))
}

func TestListQuizzes(t *testing.T) {
	rec, body := doGet(t, newTestMux(), "/v1/quizzes?subject=physics&topic=thermo")
	require.Equal(t, http.StatusOK, rec.Code)

	var quizzes []map[string]interface{}
	require.NoError(t, json.Unmarshal(body["quizzes"], &quizzes))
	require.Len(t, quizzes, 1)
	assert.Equal(t, "physics-thermodynamics-basics", quizzes[0]["id"])
	assert.NotContains(t, quizzes[0], "questions")
}

func TestListQuizzesEmptyIsArray(t *testing.T) {
	rec, body := doGet(t, newTestMux(), "/v1/quizzes?subject=math&topic=geometry")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(body["quizzes"]))
}

func TestListQuizzesRequiresSubject(t *testing.T) {
	rec, body := doGet(t, newTestMux(), "/v1/quizzes")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `"missing_field"`, string(body["error"]))
}
