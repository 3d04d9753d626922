// Package payload assembles the outbound Graph API event from a validated
// incoming request and connection metadata.
package payload

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhinav14kr/capi-relay/internal/hashing"
	"github.com/abhinav14kr/capi-relay/internal/models"
)

// actionSource is fixed: every event this relay forwards originated on a
// website.
const actionSource = "website"

// Assemble builds the single-event payload for one incoming request.
// Returns the payload plus the event id and event time echoed back to the
// caller in the local response.
//
// Event id precedence:
//  1. caller-supplied eventId, used verbatim (upstream dedup key)
//  2. generated "<eventName>_<unixSeconds>_<random suffix>" — a dedup hint,
//     not a security token, so a short uuid prefix is enough
func Assemble(ev models.IncomingEvent, clientIP, headerUserAgent string, now time.Time) (models.EventPayload, string, int64) {
	eventTime := now.Unix()

	eventID := ev.EventID
	if eventID == "" {
		eventID = fmt.Sprintf("%s_%d_%s", ev.EventName, eventTime, uuid.NewString()[:8])
	}

	userData := models.HashedUserData{
		ClientIPAddress: clientIP,
		ClientUserAgent: ev.ClientUserAgent,
	}
	if userData.ClientUserAgent == "" {
		userData.ClientUserAgent = headerUserAgent
	}

	// Hashed fields attach only when the source survived normalization.
	if h := hashing.Identity(ev.UserData.Email); h != "" {
		userData.Email = []string{h}
	}
	if h := hashing.Phone(ev.UserData.Phone); h != "" {
		userData.Phone = []string{h}
	}
	if h := hashing.Identity(ev.UserData.FirstName); h != "" {
		userData.FirstName = []string{h}
	}
	if h := hashing.Identity(ev.UserData.LastName); h != "" {
		userData.LastName = []string{h}
	}

	// Platform identifiers pass through unhashed.
	userData.FBC = ev.UserData.FBC
	userData.FBP = ev.UserData.FBP

	customData := ev.EventData
	if customData == nil {
		customData = map[string]interface{}{}
	}

	return models.EventPayload{
		Data: []models.ServerEvent{{
			EventName:      ev.EventName,
			EventTime:      eventTime,
			EventID:        eventID,
			EventSourceURL: ev.EventSourceURL,
			ActionSource:   actionSource,
			UserData:       userData,
			CustomData:     customData,
		}},
	}, eventID, eventTime
}

// ClientIP resolves the caller's address for upstream matching:
// first hop of X-Forwarded-For, else the transport peer address, else
// "unknown". The chosen value is trimmed.
func ClientIP(forwardedFor, remoteAddr string) string {
	if forwardedFor != "" {
		first := strings.TrimSpace(strings.Split(forwardedFor, ",")[0])
		if first != "" {
			return first
		}
	}
	if host, _, err := net.SplitHostPort(remoteAddr); err == nil && host != "" {
		return host
	}
	if addr := strings.TrimSpace(remoteAddr); addr != "" {
		return addr
	}
	return "unknown"
}
