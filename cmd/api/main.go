package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/abhinav14kr/capi-relay/internal/capi"
	"github.com/abhinav14kr/capi-relay/internal/config"
	"github.com/abhinav14kr/capi-relay/internal/httpserver"
)

// main boots the relay: config → logger → Graph API client → HTTP server.
func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	// Load runtime config from environment (PORT, FB_ACCESS_TOKEN).
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	client := capi.NewClient(cfg, logger)
	router := httpserver.NewRouter(cfg, client, logger)

	logger.Info().
		Str("port", cfg.Port).
		Str("pixel_id", config.PixelID).
		Str("api_version", config.APIVersion).
		Msg("capi relay started")

	if cfg.TokenConfigured() {
		logger.Info().Str("access_token_preview", cfg.TokenPreview()).Msg("access token configured")
	} else {
		logger.Warn().Msg("FB_ACCESS_TOKEN not set; events will fail until it is configured")
	}

	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}
