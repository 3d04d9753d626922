package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/abhinav14kr/capi-relay/internal/capi"
	"github.com/abhinav14kr/capi-relay/internal/config"
	"github.com/abhinav14kr/capi-relay/internal/models"
	"github.com/abhinav14kr/capi-relay/internal/payload"
)

// RegisterEventRoutes registers the relay endpoint.
//
// POST /api/event
//   - 500 when the access token is not configured (operator problem)
//   - 400 when the body is not JSON or eventName is missing (caller problem)
//   - 200 whenever the upstream responded, accepted or rejected; the body's
//     success field carries the verdict, not the local status code
//   - 500 when the upstream could not be reached at all
func RegisterEventRoutes(r gin.IRoutes, cfg config.Config, sender capi.Sender, log zerolog.Logger) {
	r.POST("/api/event", func(c *gin.Context) {
		// Token check comes first: without it nothing downstream can
		// work, so the upstream is never contacted.
		if !cfg.TokenConfigured() {
			log.Error().Msg("FB_ACCESS_TOKEN not set, rejecting event")
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Access token not configured on server",
				"hint":    "Set FB_ACCESS_TOKEN environment variable",
			})
			return
		}

		var req models.IncomingEvent
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "invalid JSON payload",
			})
			return
		}

		// Required field per contract.
		if req.EventName == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "eventName is required",
			})
			return
		}

		clientIP := payload.ClientIP(c.GetHeader("X-Forwarded-For"), c.Request.RemoteAddr)
		body, eventID, eventTime := payload.Assemble(req, clientIP, c.Request.UserAgent(), time.Now())

		log.Info().
			Str("event_name", req.EventName).
			Str("event_id", eventID).
			Int64("event_time", eventTime).
			Str("client_ip", clientIP).
			Str("source_url", req.EventSourceURL).
			Msg("relaying event")

		res, err := sender.Send(c.Request.Context(), body)
		if err != nil {
			log.Error().Err(err).Str("event_id", eventID).Msg("graph api unreachable")
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   err.Error(),
				"hint":    "Network error calling Facebook API",
			})
			return
		}

		// A rejection is still a completed exchange: local 200, verdict
		// in the body. Callers depend on this.
		c.JSON(http.StatusOK, models.EventResponse{
			Success:   res.Delivered(),
			EventID:   eventID,
			EventTime: eventTime,
			Result:    res.Body,
		})
	})
}
