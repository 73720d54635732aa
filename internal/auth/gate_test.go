package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akshansingh/EDTECHPCM/internal/config"
)

func testGate() *Gate {
	return NewGate(config.Auth{
		LoginPath:         "/login",
		ProtectedPrefixes: []string{"/profile", "/my-courses", "/settings/"},
		SessionCookies:    []string{"next-auth.session-token", "__Secure-next-auth.session-token"},
	}, zerolog.Nop())
}

func gatedMux(g *Gate) http.Handler {
	mux := http.NewServeMux()
	g.Register(mux)
	mux.HandleFunc("GET /profile/edit", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("GET /topics", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return g.Middleware(mux)
}

func TestGateRedirectsWithoutSession(t *testing.T) {
	h := gatedMux(testGate())

	for _, path := range []string{"/profile", "/profile/edit", "/my-courses", "/settings"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, "/login", rec.Header().Get("Location"))
		})
	}
}

func TestGateAllowsSessionCookie(t *testing.T) {
	h := gatedMux(testGate())

	for _, cookie := range []string{"next-auth.session-token", "__Secure-next-auth.session-token"} {
		t.Run(cookie, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/profile", nil)
			req.AddCookie(&http.Cookie{Name: cookie, Value: "opaque"})
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "profile", body["page"])
		})
	}
}

func TestGateAcceptsEmptySessionCookie(t *testing.T) {
	h := gatedMux(testGate())

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set("Cookie", "next-auth.session-token=")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGateIgnoresOtherCookiesAndPaths(t *testing.T) {
	g := testGate()
	h := gatedMux(g)

	req := httptest.NewRequest(http.MethodGet, "/settings", nil)
	req.AddCookie(&http.Cookie{Name: "theme", Value: "dark"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusFound, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/topics", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	assert.False(t, g.Protected("/profiles"))
	assert.True(t, g.Protected("/settings/notifications"))
}

func TestErrorRedirect(t *testing.T) {
	h := gatedMux(testGate())

	tests := []struct {
		query string
		want  string
	}{
		{query: "?error=AccessDenied", want: "/auth/error?error=AccessDenied"},
		{query: "", want: "/auth/error?error=unknown"},
		{query: "?error=a%20b", want: "/auth/error?error=a+b"},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/auth/error"+tt.query, nil))
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, tt.want, rec.Header().Get("Location"))
	}
}
