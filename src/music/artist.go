package music

import (
	"fmt"
	"strings"
)

// VariousArtistsName is the standard name for compilation albums
const VariousArtistsName = "Various Artists"

// Artist represents a music artist as reported by a source.
type Artist struct {
	ID   string
	Name string
	// Image URLs from external sources
	ImageSmall string
	ImageLarge string
}

// Validate validates the artist fields.
func (a *Artist) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("artist name cannot be empty")
	}
	if len(a.Name) > 500 {
		return fmt.Errorf("artist name cannot exceed 500 characters")
	}
	return nil
}

// ArtistRole represents the role of an artist on a track or album
type ArtistRole struct {
	Artist *Artist
	Role   string // main, featured, remixer, etc.
}
