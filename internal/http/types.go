package http

import (
	"context"
	"net/http"
)

// Pinger reports whether the database is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// PickHandler records a single MessagePack-encoded pick event.
type PickHandler interface {
	HandlePickEvent(ctx context.Context, data []byte) error
}

type Server struct {
	DB             Pinger
	Picks          PickHandler
	MetricsHandler http.Handler
	PushRateLimit  int
	Router         *http.ServeMux
}

// pushEnvelope is the body Pub/Sub sends to push subscriptions.
type pushEnvelope struct {
	Subscription string `json:"subscription"`
	Message      struct {
		ID   string `json:"messageId"`
		Data string `json:"data"` // base64-encoded MessagePack payload
	} `json:"message"`
}
