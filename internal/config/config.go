package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Compiled-in constants. The pixel and API version are part of the deployed
// contract with the browser client and change only with a new release.
const (
	PixelID    = "733939589457690"
	APIVersion = "v21.0"
	GraphHost  = "https://graph.facebook.com"
)

// AllowedOrigins is the CORS allow-list: the GitHub Pages frontend plus
// local development servers.
var AllowedOrigins = []string{
	"https://abhinav14kr.github.io",
	"http://localhost:3000",
	"http://localhost:8080",
	"http://127.0.0.1:5500",
}

// Config contains runtime configuration required by the service.
// It is loaded once at startup and never mutated afterwards.
type Config struct {
	Port        string `koanf:"port" validate:"required,numeric"`
	AccessToken string `koanf:"fb_access_token"`
}

// Load reads configuration from environment variables (PORT, FB_ACCESS_TOKEN).
// A local .env file is honored when present. A missing access token is not a
// boot failure: the service starts and reports the problem per request, so
// operators can use the diagnostic endpoints to see what is wrong.
func Load() (Config, error) {
	// Best effort: absent .env is the normal case in production.
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", strings.ToLower), nil); err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}

	cfg := Config{}
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.Port = strings.TrimSpace(cfg.Port)
	if cfg.Port == "" {
		cfg.Port = "3000"
	}
	cfg.AccessToken = strings.TrimSpace(cfg.AccessToken)

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// TokenConfigured reports whether an access token is available for event
// submission.
func (c Config) TokenConfigured() bool {
	return c.AccessToken != ""
}

// TokenPreview returns a redacted form of the access token safe for
// diagnostics and logs: at most the first 10 characters followed by an
// ellipsis, or "NOT SET" when no token is configured.
func (c Config) TokenPreview() string {
	if c.AccessToken == "" {
		return "NOT SET"
	}
	if len(c.AccessToken) <= 10 {
		return c.AccessToken + "..."
	}
	return c.AccessToken[:10] + "..."
}

// EventsURL returns the Graph API events endpoint without the access token
// query parameter. Safe to log and to expose on the diagnostic endpoint.
func (c Config) EventsURL() string {
	return fmt.Sprintf("%s/%s/%s/events", GraphHost, APIVersion, PixelID)
}
