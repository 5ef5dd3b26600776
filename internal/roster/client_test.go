package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPlayerPicture(t *testing.T) {
	lookup := NewLookup("https://img.example.com/people/%s/headshot")
	assert.Equal(t, "https://img.example.com/people/592450/headshot", lookup.GetPlayerPicture("592450"))
}

func TestGetPlayerPicture_TemplateWithoutPlaceholder(t *testing.T) {
	lookup := NewLookup("https://img.example.com/people/")
	assert.Equal(t, "https://img.example.com/people/592450", lookup.GetPlayerPicture("592450"))
}

func TestTeams(t *testing.T) {
	teams := Teams()
	assert.Len(t, teams, 30)
	assert.Equal(t, "Baltimore Orioles", teams[0])
	assert.Equal(t, "San Francisco Giants", teams[29])

	seen := make(map[string]bool)
	for _, team := range teams {
		assert.False(t, seen[team], "duplicate team %s", team)
		seen[team] = true
	}
}

func TestTeams_ReturnsCopy(t *testing.T) {
	teams := Teams()
	teams[0] = "Brooklyn Dodgers"

	assert.Equal(t, "Baltimore Orioles", Teams()[0])
}
