package roster

// PictureLookup maps a player's id suffix to a picture reference.
// This allows for mock implementations to be used in tests.
type PictureLookup interface {
	GetPlayerPicture(id string) string
}
