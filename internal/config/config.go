package config

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/caarlos0/env/v10"
)

// Session store backends.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// App holds core runtime configuration shared across services.
type App struct {
	Name                    string        `env:"APP_NAME" envDefault:"edu-portal"`
	Env                     string        `env:"APP_ENV" envDefault:"development"`
	HTTPAddr                string        `env:"HTTP_ADDR" envDefault:"0.0.0.0:8080"`
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_SECONDS" envDefault:"20s"`

	Catalog  Catalog
	Sessions Sessions
	Redis    Redis
	Chat     Chat
	Auth     Auth
	CORS     CORS
}

// Catalog points at an optional YAML catalog; empty means the built-in one.
type Catalog struct {
	Path string `env:"CATALOG_PATH" envDefault:""`
}

// Sessions governs where quiz sessions live and how long.
type Sessions struct {
	Store         string        `env:"SESSION_STORE" envDefault:"memory"`
	TTL           time.Duration `env:"SESSION_TTL" envDefault:"2h"`
	SweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"1m"`
}

// Redis holds cache + session store configuration.
type Redis struct {
	Addr     string `env:"REDIS_ADDR" envDefault:""`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	PoolSize int    `env:"REDIS_POOL_SIZE" envDefault:"20"`
}

// Chat configures the assistant proxy and its upstream model.
type Chat struct {
	Provider   string        `env:"CHAT_PROVIDER" envDefault:"gemini"`
	Timeout    time.Duration `env:"CHAT_TIMEOUT" envDefault:"15s"`
	MaxTokens  int           `env:"CHAT_MAX_TOKENS" envDefault:"1024"`
	MaxHistory int           `env:"CHAT_MAX_HISTORY" envDefault:"20"`

	GeminiAPIKey    string `env:"GEMINI_API_KEY" envDefault:""`
	GeminiModel     string `env:"GEMINI_MODEL" envDefault:"gemini-flash"`
	OpenAIAPIKey    string `env:"OPENAI_API_KEY" envDefault:""`
	OpenAIModel     string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	OpenAIBaseURL   string `env:"OPENAI_BASE_URL" envDefault:""`
	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY" envDefault:""`
	AnthropicModel  string `env:"ANTHROPIC_MODEL" envDefault:"claude-haiku"`
}

// Auth configures the session-cookie gate in front of account pages.
type Auth struct {
	LoginPath         string   `env:"AUTH_LOGIN_PATH" envDefault:"/login"`
	ProtectedPrefixes []string `env:"AUTH_PROTECTED_PREFIXES" envSeparator:"," envDefault:"/profile,/my-courses,/settings"`
	SessionCookies    []string `env:"AUTH_SESSION_COOKIES" envSeparator:"," envDefault:"next-auth.session-token,__Secure-next-auth.session-token"`
}

// CORS holds Cross-Origin Resource Sharing configuration.
type CORS struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://127.0.0.1:3000"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS" envSeparator:"," envDefault:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS" envSeparator:"," envDefault:"Content-Type"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS" envDefault:"true"`
	MaxAge           int      `env:"CORS_MAX_AGE" envDefault:"3600"`
}

// Load parses environment variables into App config.
func Load(ctx context.Context) (*App, error) {
	cfg := &App{}
	if err := env.ParseWithOptions(cfg, env.Options{RequiredIfNoDef: true}); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints env tags cannot express.
func (c *App) Validate() error {
	switch c.Sessions.Store {
	case StoreMemory:
	case StoreRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("REDIS_ADDR must be configured when SESSION_STORE=redis")
		}
	default:
		return fmt.Errorf("unknown SESSION_STORE %q", c.Sessions.Store)
	}
	if c.Sessions.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.Chat.MaxHistory <= 0 {
		return fmt.Errorf("CHAT_MAX_HISTORY must be positive")
	}
	if c.CORS.AllowCredentials && slices.Contains(c.CORS.AllowedOrigins, "*") {
		return fmt.Errorf("CORS_ALLOWED_ORIGINS cannot contain * when CORS_ALLOW_CREDENTIALS=true")
	}
	return nil
}
