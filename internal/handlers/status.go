package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/abhinav14kr/capi-relay/internal/config"
)

// RegisterStatusRoutes registers the two read-only endpoints.
//
// GET /         — health check with process identity
// GET /api/test — configuration diagnostic; reveals a short token prefix,
// intended for operators rather than untrusted callers
func RegisterStatusRoutes(r gin.IRoutes, cfg config.Config, log zerolog.Logger) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":                  "CAPI Backend is running",
			"pixel_id":                config.PixelID,
			"api_version":             config.APIVersion,
			"access_token_configured": cfg.TokenConfigured(),
			"message":                 "POST to /api/event to send events",
			"endpoints": gin.H{
				"health": "GET /",
				"test":   "GET /api/test",
				"event":  "POST /api/event",
			},
		})
	})

	r.GET("/api/test", func(c *gin.Context) {
		log.Info().
			Str("pixel_id", config.PixelID).
			Str("api_version", config.APIVersion).
			Bool("access_token_configured", cfg.TokenConfigured()).
			Str("access_token_preview", cfg.TokenPreview()).
			Msg("configuration test")

		c.JSON(http.StatusOK, gin.H{
			"status":                  "Configuration Check",
			"pixel_id":                config.PixelID,
			"api_version":             config.APIVersion,
			"access_token_configured": cfg.TokenConfigured(),
			"access_token_preview":    cfg.TokenPreview(),
			"graph_api_url":           cfg.EventsURL(),
			"cors_origins":            config.AllowedOrigins,
		})
	})
}
