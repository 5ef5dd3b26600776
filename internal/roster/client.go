package roster

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// HeadshotLookup builds picture URLs from a template containing a single %s
// placeholder for the player id.
type HeadshotLookup struct {
	URLTemplate string
}

// Ensure HeadshotLookup implements the PictureLookup interface.
var _ PictureLookup = (*HeadshotLookup)(nil)

// NewLookup creates a picture lookup. A template without a placeholder gets
// the id appended as a trailing path segment.
func NewLookup(urlTemplate string) PictureLookup {
	if !strings.Contains(urlTemplate, "%s") {
		urlTemplate = strings.TrimSuffix(urlTemplate, "/") + "/%s"
	}
	return &HeadshotLookup{URLTemplate: urlTemplate}
}

// GetPlayerPicture returns the picture reference for the given id suffix.
func (l *HeadshotLookup) GetPlayerPicture(id string) string {
	picture := fmt.Sprintf(l.URLTemplate, id)
	log.Debug("Resolved player picture", "id", id, "picture", picture)
	return picture
}
