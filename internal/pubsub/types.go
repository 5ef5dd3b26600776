package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client *pubsub.Client
}

// PickEvent is a single guess submitted by the game, published for
// asynchronous recording.
type PickEvent struct {
	TeamA      string `msgpack:"team_a"`
	TeamB      string `msgpack:"team_b"`
	PlayerName string `msgpack:"player_name"`
	PlayerID   string `msgpack:"player_id"`
}
