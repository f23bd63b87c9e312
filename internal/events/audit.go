package events

import (
	"context"

	"go.uber.org/zap"
)

// RegisterAuditLogger subscribes a zap-backed listener to every event type so
// logins, lifecycle actions and degraded-mode fallbacks leave an audit trail.
func RegisterAuditLogger(d Dispatcher, logger *zap.Logger) {
	handler := func(_ context.Context, event Event) error {
		logger.Info("audit event",
			zap.String("event_id", event.ID),
			zap.String("type", string(event.Type)),
			zap.String("subscriber_id", event.SubscriberID),
			zap.Time("timestamp", event.Timestamp),
			zap.Any("payload", event.Payload),
		)
		return nil
	}

	for _, eventType := range []EventType{
		EventLoginSucceeded,
		EventESIMActivated,
		EventESIMSuspended,
		EventFallbackServed,
	} {
		d.Subscribe(eventType, handler)
	}
}
