package processor

import (
	"context"

	"github.com/mauv0809/matchup-stats/internal/stats"
)

// Store defines the database operations required by the processor.
type Store interface {
	RecordPick(ctx context.Context, teams stats.TeamPair, playerName, playerID string) error
}
