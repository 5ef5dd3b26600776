package stats

import (
	"slices"
	"strings"

	"github.com/mauv0809/matchup-stats/internal/roster"
)

const playerIDSuffixLen = 6

// NormalizeTeamPair builds the canonical matchup key: both names lowercased and
// stripped of spaces, concatenated, with the characters sorted. The argument
// order does not matter.
func NormalizeTeamPair(teamA, teamB string) string {
	combined := []rune(squash(teamA) + squash(teamB))
	slices.Sort(combined)
	return string(combined)
}

// NormalizePlayer builds the player key: the lowercased name without spaces or
// periods, followed by the id verbatim.
func NormalizePlayer(name, id string) string {
	return strings.ReplaceAll(squash(name), ".", "") + id
}

// UnnormalizeTeamNames finds the roster pair whose canonical key equals key.
// Pairs are tried in roster order, outer index first.
func UnnormalizeTeamNames(key string) (string, string, bool) {
	teams := roster.Teams()
	for i, team1 := range teams {
		for _, team2 := range teams[i+1:] {
			if NormalizeTeamPair(team1, team2) == key {
				return team1, team2, true
			}
		}
	}
	return "", "", false
}

func squash(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "")
}

// playerIDSuffix recovers the id suffix appended by NormalizePlayer.
func playerIDSuffix(playerKey string) string {
	runes := []rune(playerKey)
	if len(runes) <= playerIDSuffixLen {
		return playerKey
	}
	return string(runes[len(runes)-playerIDSuffixLen:])
}
