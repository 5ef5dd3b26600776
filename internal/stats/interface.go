package stats

import "context"

// StatsStore defines the interface for reading and writing matchup pick statistics
// and shared grids.
type StatsStore interface {
	// RecordPick counts one pick of a player for the given matchup.
	RecordPick(ctx context.Context, teams TeamPair, playerName, playerID string) error

	// RarityScore returns the pick's share of the matchup's picks in percent, or 100 when it was never picked.
	RarityScore(ctx context.Context, teams TeamPair, playerName, playerID string) (float64, error)

	// TopPlayer returns the most picked player of a matchup, or nil when there is none to show.
	TopPlayer(ctx context.Context, teams TeamPair) (*TopPlayer, error)

	// GetMatchup returns the stored matchup document, or nil when it does not exist.
	GetMatchup(ctx context.Context, teams TeamPair) (*Matchup, error)

	// SetPlayerName overwrites the display name of an existing player entry.
	SetPlayerName(ctx context.Context, teamCombination, playerName, playerID string) error

	// ShareGrid persists a grid and returns its share id.
	ShareGrid(ctx context.Context, grid [][]string) (string, error)

	// GetSharedGrid returns a shared grid, or an empty grid for an unknown id.
	GetSharedGrid(ctx context.Context, id string) ([][]string, error)
}
