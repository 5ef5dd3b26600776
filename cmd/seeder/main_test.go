package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateFlags(t *testing.T) {
	tests := []struct {
		name      string
		picks     int
		players   int
		perSecond int
		wantErr   string
	}{
		{"defaults", 10000, 12, 0, ""},
		{"no picks is fine", 0, 1, 5, ""},
		{"zero players", 100, 0, 0, "-players"},
		{"negative players", 100, -3, 0, "-players"},
		{"negative picks", -1, 12, 0, "-picks"},
		{"negative rate", 100, 12, -1, "-rate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFlags(tt.picks, tt.players, tt.perSecond)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
