package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/abhinav14kr/capi-relay/internal/config"
	"github.com/abhinav14kr/capi-relay/internal/handlers"
)

func newStatusRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers.RegisterStatusRoutes(r, cfg, zerolog.Nop())
	return r
}

func getJSON(t *testing.T, r *gin.Engine, path string) (int, map[string]interface{}) {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w.Code, decodeBody(t, w)
}

// The health check always succeeds and names the available endpoints.
func TestHealth_ReportsIdentity(t *testing.T) {
	code, body := getJSON(t, newStatusRouter(config.Config{AccessToken: "tok"}), "/")

	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if body["pixel_id"] != config.PixelID {
		t.Fatalf("pixel_id = %v", body["pixel_id"])
	}
	if body["api_version"] != config.APIVersion {
		t.Fatalf("api_version = %v", body["api_version"])
	}
	if body["access_token_configured"] != true {
		t.Fatal("access_token_configured must be true")
	}
	endpoints, _ := body["endpoints"].(map[string]interface{})
	if endpoints["event"] != "POST /api/event" {
		t.Fatalf("endpoints = %v", body["endpoints"])
	}
}

// Health still succeeds without a token; it only reports the fact.
func TestHealth_TokenAbsent(t *testing.T) {
	code, body := getJSON(t, newStatusRouter(config.Config{}), "/")

	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if body["access_token_configured"] != false {
		t.Fatal("access_token_configured must be false")
	}
}

// The diagnostic endpoint reveals at most a 10-character token prefix and a
// token-free Graph URL.
func TestConfigTest_RedactsToken(t *testing.T) {
	token := "EAAlongsecrettokenvaluethatmustnotleak"
	code, body := getJSON(t, newStatusRouter(config.Config{AccessToken: token}), "/api/test")

	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}

	preview, _ := body["access_token_preview"].(string)
	if preview != token[:10]+"..." {
		t.Fatalf("access_token_preview = %q", preview)
	}
	if strings.Contains(preview, token[:11]) {
		t.Fatal("preview reveals more than 10 token characters")
	}

	graphURL, _ := body["graph_api_url"].(string)
	if strings.Contains(graphURL, token) {
		t.Fatal("graph_api_url must not contain the token")
	}
	if graphURL == "" {
		t.Fatal("graph_api_url missing")
	}
}

// Without a token the preview is an explicit marker, not an empty string.
func TestConfigTest_TokenNotSet(t *testing.T) {
	_, body := getJSON(t, newStatusRouter(config.Config{}), "/api/test")

	if body["access_token_preview"] != "NOT SET" {
		t.Fatalf("access_token_preview = %v, want NOT SET", body["access_token_preview"])
	}
	if body["access_token_configured"] != false {
		t.Fatal("access_token_configured must be false")
	}
}

// The diagnostic response lists the CORS allow-list for frontend debugging.
func TestConfigTest_CORSOrigins(t *testing.T) {
	_, body := getJSON(t, newStatusRouter(config.Config{}), "/api/test")

	origins, _ := body["cors_origins"].([]interface{})
	if len(origins) != len(config.AllowedOrigins) {
		t.Fatalf("cors_origins = %v", body["cors_origins"])
	}
}
