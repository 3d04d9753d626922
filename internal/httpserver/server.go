package httpserver

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/abhinav14kr/capi-relay/internal/capi"
	"github.com/abhinav14kr/capi-relay/internal/config"
	"github.com/abhinav14kr/capi-relay/internal/handlers"
)

// NewRouter wires the three routes behind the browser CORS policy.
// Public: GET / (health), GET /api/test (diagnostics)
// Relay:  POST /api/event
func NewRouter(cfg config.Config, sender capi.Sender, log zerolog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())

	// Only the known frontend origins may call from a browser.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.AllowedOrigins,
		AllowMethods:     []string{"POST", "GET", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: true,
	}))

	handlers.RegisterStatusRoutes(r, cfg, log)
	handlers.RegisterEventRoutes(r, cfg, sender, log)

	return r
}
