package stats

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/matchup-stats/internal/metrics"
	"github.com/mauv0809/matchup-stats/internal/roster"
)

// unseenScore is the rarity of a pick nobody has made yet.
const unseenScore = 100

// New creates a new StatsStore.
func New(db *sql.DB, pictures roster.PictureLookup, m metrics.Metrics) StatsStore {
	return &store{
		db:       db,
		pictures: pictures,
		metrics:  m,
	}
}

// Ensure store implements the StatsStore interface.
var _ StatsStore = (*store)(nil)

// RecordPick creates the matchup and player entry on first use and increments
// both counters otherwise. Both upserts run in one transaction, so concurrent
// first picks of a matchup still produce a single document.
func (s *store) RecordPick(ctx context.Context, teams TeamPair, playerName, playerID string) error {
	defer s.observe("record_pick", time.Now())

	matchup := teams.Key()
	player := NormalizePlayer(playerName, playerID)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin pick transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO matchups (team_combination, total_picks) VALUES (?, 1)
		ON CONFLICT(team_combination) DO UPDATE SET total_picks = total_picks + 1;
	`, matchup)
	if err != nil {
		return fmt.Errorf("failed to increment matchup %s: %w", matchup, err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO matchup_players (team_combination, player_key, pick_frequency, un_normalized_name)
		VALUES (?, ?, 1, ?)
		ON CONFLICT(team_combination, player_key) DO UPDATE SET
			pick_frequency = COALESCE(pick_frequency, 0) + 1,
			un_normalized_name = excluded.un_normalized_name;
	`, matchup, player, playerName)
	if err != nil {
		return fmt.Errorf("failed to increment player %s in matchup %s: %w", player, matchup, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit pick: %w", err)
	}

	s.metrics.IncPicksRecorded()
	log.Debug("Recorded pick", "matchup", matchup, "player", player)
	return nil
}

// RarityScore returns 100 for a pick that was never recorded. Otherwise it is
// the player's share of the matchup's picks in percent.
func (s *store) RarityScore(ctx context.Context, teams TeamPair, playerName, playerID string) (float64, error) {
	defer s.observe("rarity_score", time.Now())
	s.metrics.IncRarityLookups()

	matchup := teams.Key()
	player := NormalizePlayer(playerName, playerID)

	var total int64
	var frequency sql.NullInt64
	err := s.db.QueryRowContext(ctx, `
		SELECT m.total_picks, p.pick_frequency
		FROM matchups m
		JOIN matchup_players p ON p.team_combination = m.team_combination
		WHERE m.team_combination = ? AND p.player_key = ?
	`, matchup, player).Scan(&total, &frequency)
	if errors.Is(err, sql.ErrNoRows) {
		return unseenScore, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get pick counts for %s in %s: %w", player, matchup, err)
	}
	if !frequency.Valid || total <= 0 {
		log.Warn("Player entry has no usable pick counts", "matchup", matchup, "player", player)
		return unseenScore, nil
	}
	return rarity(frequency.Int64, total), nil
}

// rarity rounds the pick share to two decimals, then drops the decimals of
// anything above 1%. Only rare picks keep their fractional part.
// Rounding goes through strconv so exact halves round to even, as 0.625 -> 0.62.
func rarity(frequency, total int64) float64 {
	share := float64(frequency) / float64(total) * 100
	score, err := strconv.ParseFloat(strconv.FormatFloat(share, 'f', 2, 64), 64)
	if err != nil {
		return share
	}
	if score > 1 {
		return math.Trunc(score)
	}
	return score
}

// TopPlayer picks the player with the highest pick frequency. An entry without
// a frequency counts as -1, and ties go to the player picked first.
func (s *store) TopPlayer(ctx context.Context, teams TeamPair) (*TopPlayer, error) {
	defer s.observe("top_player", time.Now())

	matchup := teams.Key()
	rows, err := s.db.QueryContext(ctx, `
		SELECT player_key, pick_frequency, un_normalized_name
		FROM matchup_players
		WHERE team_combination = ?
		ORDER BY rowid
	`, matchup)
	if err != nil {
		return nil, fmt.Errorf("failed to get players of %s: %w", matchup, err)
	}
	defer rows.Close()

	var (
		found    bool
		bestKey  string
		bestName sql.NullString
		bestFreq int64
	)
	for rows.Next() {
		var key string
		var frequency sql.NullInt64
		var name sql.NullString
		if err := rows.Scan(&key, &frequency, &name); err != nil {
			return nil, fmt.Errorf("failed to scan player of %s: %w", matchup, err)
		}
		freq := int64(-1)
		if frequency.Valid {
			freq = frequency.Int64
		}
		if !found || freq > bestFreq {
			found, bestKey, bestName, bestFreq = true, key, name, freq
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read players of %s: %w", matchup, err)
	}
	// Close before RarityScore: a local database only has one connection.
	rows.Close()

	if !found {
		log.Debug("No top player, matchup has no picks", "matchup", matchup)
		return nil, nil
	}
	if !bestName.Valid {
		log.Debug("Top player has no display name", "matchup", matchup, "player", bestKey)
		return nil, nil
	}

	id := playerIDSuffix(bestKey)
	score, err := s.RarityScore(ctx, teams, bestName.String, id)
	if err != nil {
		return nil, err
	}
	return &TopPlayer{
		Name:        bestName.String,
		Picture:     s.pictures.GetPlayerPicture(id),
		RarityScore: score,
	}, nil
}

// GetMatchup reassembles the matchup document of a team pair.
func (s *store) GetMatchup(ctx context.Context, teams TeamPair) (*Matchup, error) {
	defer s.observe("get_matchup", time.Now())

	matchup := Matchup{
		TeamCombination: teams.Key(),
		Players:         make(map[string]PlayerEntry),
	}
	err := s.db.QueryRowContext(ctx,
		"SELECT total_picks FROM matchups WHERE team_combination = ?", matchup.TeamCombination,
	).Scan(&matchup.TotalPicks)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get matchup %s: %w", matchup.TeamCombination, err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT player_key, pick_frequency, un_normalized_name
		FROM matchup_players
		WHERE team_combination = ?
	`, matchup.TeamCombination)
	if err != nil {
		return nil, fmt.Errorf("failed to get players of %s: %w", matchup.TeamCombination, err)
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var frequency sql.NullInt64
		var name sql.NullString
		if err := rows.Scan(&key, &frequency, &name); err != nil {
			return nil, fmt.Errorf("failed to scan player of %s: %w", matchup.TeamCombination, err)
		}
		var entry PlayerEntry
		if frequency.Valid {
			entry.PickFrequency = &frequency.Int64
		}
		if name.Valid {
			entry.UnNormalizedName = &name.String
		}
		matchup.Players[key] = entry
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read players of %s: %w", matchup.TeamCombination, err)
	}
	return &matchup, nil
}

// SetPlayerName updates the display name of a player already recorded under
// the canonical teamCombination key. Counters are left untouched and unknown
// players are ignored.
func (s *store) SetPlayerName(ctx context.Context, teamCombination, playerName, playerID string) error {
	defer s.observe("set_player_name", time.Now())

	player := NormalizePlayer(playerName, playerID)
	res, err := s.db.ExecContext(ctx, `
		UPDATE matchup_players SET un_normalized_name = ?
		WHERE team_combination = ? AND player_key = ?
	`, playerName, teamCombination, player)
	if err != nil {
		return fmt.Errorf("failed to set name of %s in %s: %w", player, teamCombination, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		log.Debug("No player entry to rename", "matchup", teamCombination, "player", player)
	}
	return nil
}

func (s *store) observe(operation string, start time.Time) {
	s.metrics.ObserveStoreDuration(operation, time.Since(start).Seconds())
}
