package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/ArjunBora/Eduzo/internal/logging"
)

// EventLogger posts usage events to the analytics service. It is the one
// deliberately silent failure path in the client: a lost event must never
// disrupt the user flow, so errors only reach the developer log at Warn.
type EventLogger struct {
	baseURL    string
	httpClient *http.Client
	log        logging.Logger
}

func NewEventLogger(baseURL string, httpClient *http.Client, log logging.Logger) *EventLogger {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &EventLogger{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: httpClient,
		log:        log,
	}
}

type eventPayload struct {
	EventType string         `json:"event_type"`
	UserID    string         `json:"user_id"`
	Metadata  map[string]any `json:"metadata"`
}

// Log fires one analytics event. userID falls back to "guest" when empty.
// Each event carries a client-generated event_id so the service can
// de-duplicate.
func (l *EventLogger) Log(ctx context.Context, eventType, userID string, metadata map[string]any) {
	if userID == "" {
		userID = "guest"
	}
	if metadata == nil {
		metadata = map[string]any{}
	}
	metadata["event_id"] = uuid.NewString()

	payload, err := json.Marshal(eventPayload{EventType: eventType, UserID: userID, Metadata: metadata})
	if err != nil {
		l.log.Warn(ctx, "failed to encode analytics event", "event_type", eventType, "error", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.baseURL+"/api/analytics/event", bytes.NewReader(payload))
	if err != nil {
		l.log.Warn(ctx, "failed to create analytics request", "event_type", eventType, "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := l.httpClient.Do(req)
	if err != nil {
		l.log.Warn(ctx, "failed to log analytics event", "event_type", eventType, "error", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		l.log.Warn(ctx, "analytics event rejected", "event_type", eventType, "status", resp.StatusCode)
	}
}
