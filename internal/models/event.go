package models

// IncomingEvent is the POST /api/event payload as the browser client sends
// it. Only eventName is required; everything else has a server-side default.
type IncomingEvent struct {
	EventName       string                 `json:"eventName"`
	EventData       map[string]interface{} `json:"eventData,omitempty"`
	UserData        UserData               `json:"userData,omitempty"`
	EventSourceURL  string                 `json:"eventSourceUrl,omitempty"`
	ClientUserAgent string                 `json:"clientUserAgent,omitempty"`
	EventID         string                 `json:"eventId,omitempty"`
}

// UserData carries the raw identity fields supplied by the client.
// email/phone/firstName/lastName are hashed before leaving the process;
// fbc/fbp are platform-issued identifiers forwarded as-is.
type UserData struct {
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	FBC       string `json:"fbc,omitempty"`
	FBP       string `json:"fbp,omitempty"`
}

// HashedUserData is the user_data block of an outbound event. The hashed
// fields use the Graph API's abbreviated names and single-digest lists;
// omitempty keeps a field off the wire unless its source survived
// normalization.
type HashedUserData struct {
	Email           []string `json:"em,omitempty"`
	Phone           []string `json:"ph,omitempty"`
	FirstName       []string `json:"fn,omitempty"`
	LastName        []string `json:"ln,omitempty"`
	FBC             string   `json:"fbc,omitempty"`
	FBP             string   `json:"fbp,omitempty"`
	ClientIPAddress string   `json:"client_ip_address"`
	ClientUserAgent string   `json:"client_user_agent,omitempty"`
}

// ServerEvent is one event in the Graph API batch shape.
type ServerEvent struct {
	EventName      string                 `json:"event_name"`
	EventTime      int64                  `json:"event_time"`
	EventID        string                 `json:"event_id"`
	EventSourceURL string                 `json:"event_source_url,omitempty"`
	ActionSource   string                 `json:"action_source"`
	UserData       HashedUserData         `json:"user_data"`
	CustomData     map[string]interface{} `json:"custom_data"`
}

// EventPayload is the Graph API request body. The endpoint accepts batches;
// this relay always sends exactly one event per call.
type EventPayload struct {
	Data []ServerEvent `json:"data"`
}

// EventResponse is returned by POST /api/event when the upstream call
// completed (any status). Success mirrors whether the Graph API accepted
// the event; Result carries its response body verbatim.
type EventResponse struct {
	Success   bool                   `json:"success"`
	EventID   string                 `json:"eventId"`
	EventTime int64                  `json:"eventTime"`
	Result    map[string]interface{} `json:"result"`
}
