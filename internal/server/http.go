package server

import (
	"context"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/Akshansingh/EDTECHPCM/internal/config"
	"github.com/Akshansingh/EDTECHPCM/internal/logging"
	httperrors "github.com/Akshansingh/EDTECHPCM/pkg/http/errors"
)

// WSUpgrader handles WebSocket upgrades for the quiz transport.
var WSUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Registrar mounts a feature's routes.
type Registrar interface {
	Register(mux *http.ServeMux)
}

// Deps are the shared pieces the base routes need. Redis may be nil when
// sessions are kept in memory.
type Deps struct {
	Redis      *redis.Client
	Metrics    http.Handler
	Middleware []func(http.Handler) http.Handler
}

// NewHTTPServer wires base routes (health, metrics, ping) plus every
// registrar, wrapped in request logging and CORS.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, deps Deps, registrars ...Registrar) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		httperrors.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	if deps.Metrics != nil {
		mux.Handle("GET /metrics", deps.Metrics)
	}

	mux.HandleFunc("GET /v1/ping", func(w http.ResponseWriter, r *http.Request) {
		log := logging.FromContext(r.Context())
		if err := pingDependencies(r.Context(), deps.Redis); err != nil {
			log.Error().Err(err).Msg("dependency ping failed")
			httperrors.RespondError(w, http.StatusBadGateway, httperrors.ErrCodeUpstreamError, "upstream error")
			return
		}
		httperrors.RespondJSON(w, http.StatusOK, map[string]interface{}{
			"pong":  true,
			"redis": deps.Redis != nil,
		})
	})

	for _, reg := range registrars {
		reg.Register(mux)
	}

	var handler http.Handler = mux
	for i := len(deps.Middleware) - 1; i >= 0; i-- {
		handler = deps.Middleware[i](handler)
	}
	handler = CORS(cfg.CORS)(handler)
	handler = RequestLogger(logger)(handler)

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: handler,
	}
}

func pingDependencies(ctx context.Context, redis *redis.Client) error {
	if redis == nil {
		return nil
	}
	return redis.Ping(ctx).Err()
}
