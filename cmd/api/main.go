package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Akshansingh/EDTECHPCM/internal/app"
	"github.com/Akshansingh/EDTECHPCM/internal/config"
)

const defaultEnvFile = "configs/.env"

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger()

	if os.Getenv("APP_ENV") != "production" {
		envFile := defaultEnvFile
		if custom := os.Getenv("APP_ENV_FILE"); custom != "" {
			envFile = custom
		}
		if err := godotenv.Load(envFile); err != nil {
			log.Warn().Err(err).Str("file", envFile).Msg("env file not loaded, using process environment")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	log.Info().
		Str("env", cfg.Env).
		Str("session_store", cfg.Sessions.Store).
		Str("chat_provider", cfg.Chat.Provider).
		Bool("custom_catalog", cfg.Catalog.Path != "").
		Msg("configuration loaded")

	appCtx := context.Background()
	instance, err := app.New(appCtx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build app")
	}

	if err := instance.Run(appCtx); err != nil {
		log.Fatal().Err(err).Msg("runtime error")
	}
}
