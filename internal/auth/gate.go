package auth

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Akshansingh/EDTECHPCM/internal/config"
	httperrors "github.com/Akshansingh/EDTECHPCM/pkg/http/errors"
)

// accountPages are served as placeholders behind the gate.
var accountPages = []string{"profile", "my-courses", "settings"}

// Gate redirects anonymous visitors away from account pages. It only checks
// that a session cookie is present; the identity provider owns validation.
type Gate struct {
	loginPath string
	prefixes  []string
	cookies   []string
	logger    zerolog.Logger
}

// NewGate builds a gate from configuration.
func NewGate(cfg config.Auth, logger zerolog.Logger) *Gate {
	return &Gate{
		loginPath: cfg.LoginPath,
		prefixes:  cfg.ProtectedPrefixes,
		cookies:   cfg.SessionCookies,
		logger:    logger.With().Str("component", "auth_gate").Logger(),
	}
}

// Middleware wraps next, redirecting protected requests without a session
// cookie to the login page.
func (g *Gate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if g.Protected(r.URL.Path) && !g.HasSession(r) {
			g.logger.Debug().Str("path", r.URL.Path).Msg("no session cookie, redirecting to login")
			http.Redirect(w, r, g.loginPath, http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Protected reports whether path falls under a protected prefix. Prefixes
// match whole path segments, so /profile guards /profile/edit but not
// /profiles.
func (g *Gate) Protected(path string) bool {
	for _, prefix := range g.prefixes {
		prefix = strings.TrimSuffix(prefix, "/")
		if prefix == "" {
			continue
		}
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}

// HasSession reports whether r carries any configured session cookie. An
// empty value still counts as present.
func (g *Gate) HasSession(r *http.Request) bool {
	for _, name := range g.cookies {
		if _, err := r.Cookie(name); err == nil {
			return true
		}
	}
	return false
}

// Register mounts the auth error redirect and the account placeholders.
func (g *Gate) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/auth/error", g.HandleErrorRedirect)
	for _, page := range accountPages {
		mux.HandleFunc("GET /"+page, placeholder(page))
	}
}

// HandleErrorRedirect forwards identity-provider errors to the error page.
func (g *Gate) HandleErrorRedirect(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("error")
	if code == "" {
		code = "unknown"
	}
	target := "/auth/error?" + url.Values{"error": {code}}.Encode()
	http.Redirect(w, r, target, http.StatusFound)
}

func placeholder(page string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httperrors.RespondJSON(w, http.StatusOK, map[string]string{"page": page})
	}
}
