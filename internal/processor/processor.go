package processor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/matchup-stats/internal/metrics"
	"github.com/mauv0809/matchup-stats/internal/pubsub"
	"github.com/mauv0809/matchup-stats/internal/stats"
)

// New creates a new Processor.
func New(store Store, metrics metrics.Metrics, pubsub pubsub.PubSubClient) *Processor {
	return &Processor{
		store:   store,
		pubsub:  pubsub,
		metrics: metrics,
	}
}

// Run consumes pick events from the subscription until ctx is cancelled.
func (p *Processor) Run(ctx context.Context, subscription string) error {
	log.Info("Starting pick event processing...", "subscription", subscription)
	err := p.pubsub.Receive(ctx, subscription, p.handle)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info("Pick event processing stopped.")
	return nil
}

// handle acknowledges events that can never succeed and leaves store failures
// for redelivery.
func (p *Processor) handle(ctx context.Context, data []byte) error {
	err := p.HandlePickEvent(ctx, data)
	if errors.Is(err, ErrInvalidPickEvent) {
		log.Warn("Dropping pick event", "error", err)
		return nil
	}
	return err
}

// HandlePickEvent decodes one MessagePack-encoded pick event and records it.
func (p *Processor) HandlePickEvent(ctx context.Context, data []byte) error {
	var event pubsub.PickEvent
	if err := p.pubsub.ProcessMessage(data, &event); err != nil {
		p.metrics.IncPickEventsFailed()
		return fmt.Errorf("%w: %v", ErrInvalidPickEvent, err)
	}
	if err := validate(event); err != nil {
		p.metrics.IncPickEventsFailed()
		return err
	}

	teams := stats.TeamPair{TeamA: event.TeamA, TeamB: event.TeamB}
	if err := p.store.RecordPick(ctx, teams, event.PlayerName, event.PlayerID); err != nil {
		p.metrics.IncPickEventsFailed()
		log.Error("Failed to record pick", "error", err, "matchup", teams.Key(), "player", event.PlayerName)
		return err
	}
	log.Debug("Recorded pick event", "matchup", teams.Key(), "player", event.PlayerName)
	return nil
}

func validate(event pubsub.PickEvent) error {
	var missing []string
	if strings.TrimSpace(event.TeamA) == "" {
		missing = append(missing, "team_a")
	}
	if strings.TrimSpace(event.TeamB) == "" {
		missing = append(missing, "team_b")
	}
	if strings.TrimSpace(event.PlayerName) == "" {
		missing = append(missing, "player_name")
	}
	if event.PlayerID == "" {
		missing = append(missing, "player_id")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidPickEvent, strings.Join(missing, ", "))
	}
	return nil
}
