package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventLoginSucceeded EventType = "login_succeeded"
	EventESIMActivated  EventType = "esim_activated"
	EventESIMSuspended  EventType = "esim_suspended"
	EventFallbackServed EventType = "fallback_served"
)

// Event represents an audit event emitted by services.
type Event struct {
	ID           string      `json:"id"`
	Type         EventType   `json:"type"`
	SubscriberID string      `json:"subscriber_id,omitempty"`
	Timestamp    time.Time   `json:"timestamp"`
	Payload      interface{} `json:"payload,omitempty"`
}

// LoginSucceededPayload payload.
type LoginSucceededPayload struct {
	Username string `json:"username"`
}

// ESIMActionPayload payload for activation/suspension events.
type ESIMActionPayload struct {
	Action string `json:"action"`
	Origin string `json:"origin"`
}

// FallbackServedPayload payload.
type FallbackServedPayload struct {
	Route  string `json:"route"`
	Reason string `json:"reason"`
}
