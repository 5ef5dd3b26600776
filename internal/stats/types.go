package stats

import (
	"database/sql"

	"github.com/mauv0809/matchup-stats/internal/metrics"
	"github.com/mauv0809/matchup-stats/internal/roster"
)

// store handles all database operations for matchup statistics.
type store struct {
	db       *sql.DB
	pictures roster.PictureLookup
	metrics  metrics.Metrics
}

// TeamPair is an unordered pair of team names.
type TeamPair struct {
	TeamA string `json:"team_a" msgpack:"team_a"`
	TeamB string `json:"team_b" msgpack:"team_b"`
}

// Key returns the canonical matchup key of the pair.
func (p TeamPair) Key() string {
	return NormalizeTeamPair(p.TeamA, p.TeamB)
}

// Matchup is the aggregate pick document of one team pair.
type Matchup struct {
	TeamCombination string                 `json:"team_combination"`
	TotalPicks      int64                  `json:"total_picks"`
	Players         map[string]PlayerEntry `json:"players"`
}

// PlayerEntry holds the counters of one player within a matchup. Nil fields
// were never written.
type PlayerEntry struct {
	PickFrequency    *int64  `json:"pick_frequency,omitempty"`
	UnNormalizedName *string `json:"un_normalized_name,omitempty"`
}

// TopPlayer is the most picked player of a matchup.
type TopPlayer struct {
	Name        string  `json:"name"`
	Picture     string  `json:"picture"`
	RarityScore float64 `json:"rarity_score"`
}
