// Package capi talks to the Meta Conversions API events endpoint.
package capi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/abhinav14kr/capi-relay/internal/config"
	"github.com/abhinav14kr/capi-relay/internal/models"
)

// Result is the outcome of an upstream call that produced an HTTP response,
// accepted or rejected. A transport-level failure is reported as an error
// from Send instead, so the handler's three terminal states map directly
// onto (Result, nil) with Delivered() true/false, and (_, err).
type Result struct {
	StatusCode int
	// Body is the upstream response decoded as-is; it is relayed to the
	// caller verbatim. Contains events_received on success or an
	// error{code,message,type} object on rejection.
	Body map[string]interface{}
}

// Delivered reports whether the upstream accepted the event.
func (r Result) Delivered() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Sender is the upstream collaborator seam. Handlers depend on it so tests
// can substitute a stub and count invocations.
type Sender interface {
	Send(ctx context.Context, payload models.EventPayload) (Result, error)
}

// Client sends event payloads to the Graph API.
type Client struct {
	cfg        config.Config
	httpClient *http.Client
	log        zerolog.Logger

	baseURL string
}

// NewClient builds a Graph API client. The underlying http.Client keeps its
// zero Timeout: a slow upstream holds the request open until the transport
// gives up. Known limitation, matches current production behavior.
func NewClient(cfg config.Config, log zerolog.Logger) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{},
		log:        log.With().Str("component", "capi").Logger(),
		baseURL:    config.GraphHost,
	}
}

// Send POSTs the payload to the events endpoint and returns the upstream
// response regardless of its status code. Exactly one attempt; no retries.
// The access token travels only in the query string and is never logged.
func (c *Client) Send(ctx context.Context, payload models.EventPayload) (Result, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Result{}, fmt.Errorf("marshal payload: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s/%s/events?access_token=%s",
		c.baseURL, config.APIVersion, config.PixelID, url.QueryEscape(c.cfg.AccessToken))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.Info().Str("url", c.cfg.EventsURL()).Msg("calling graph api")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("read response: %w", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		// An unparsable body means we have nothing to relay; treat it
		// like not having received a response at all.
		return Result{}, fmt.Errorf("decode response: %w", err)
	}

	res := Result{StatusCode: resp.StatusCode, Body: decoded}
	c.logOutcome(res)
	return res, nil
}

// logOutcome surfaces the upstream verdict for operators.
func (c *Client) logOutcome(res Result) {
	if res.Delivered() {
		ev := c.log.Info().Int("status", res.StatusCode)
		if n, ok := res.Body["events_received"]; ok {
			ev = ev.Interface("events_received", n)
		}
		ev.Msg("event accepted by graph api")
		return
	}

	ev := c.log.Warn().Int("status", res.StatusCode)
	if errObj, ok := res.Body["error"].(map[string]interface{}); ok {
		ev = ev.
			Interface("error_code", errObj["code"]).
			Interface("error_type", errObj["type"]).
			Interface("error_message", errObj["message"])
	}
	ev.Msg("event rejected by graph api")
}
