package processor

import (
	"errors"

	"github.com/mauv0809/matchup-stats/internal/metrics"
	"github.com/mauv0809/matchup-stats/internal/pubsub"
)

// ErrInvalidPickEvent marks an event that can never be recorded.
var ErrInvalidPickEvent = errors.New("invalid pick event")

// Processor records picks that arrive as Pub/Sub events.
type Processor struct {
	store   Store
	pubsub  pubsub.PubSubClient
	metrics metrics.Metrics
}
