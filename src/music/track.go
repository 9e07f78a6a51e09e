package music

import (
	"fmt"
	"strings"
)

// Track represents a single canonical track returned by an aggregate
// operation. Tracks are never merged across sources; Source records the
// provider that reported it.
type Track struct {
	ID              string
	Title           string
	Artists         []ArtistRole
	AlbumTitle      string
	AlbumID         string
	Duration        int // seconds
	ExplicitContent bool
	PreviewURL      string // URL for 30-second preview
	Source          string // provider type that reported this track
}

// Validate validates the track fields.
func (t *Track) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("track title cannot be empty")
	}
	if len(t.Title) > 500 {
		return fmt.Errorf("title cannot exceed 500 characters, got %d: title -> %s", len(t.Title), t.Title)
	}
	if len(t.Artists) == 0 {
		return fmt.Errorf("track must have at least one artist: title -> %s", t.Title)
	}
	for i, artistRole := range t.Artists {
		if artistRole.Artist == nil {
			return fmt.Errorf("track artist at index %d cannot be nil", i)
		}
		if err := artistRole.Artist.Validate(); err != nil {
			return fmt.Errorf("invalid artist in track: %w", err)
		}
	}
	if t.PreviewURL != "" && len(t.PreviewURL) > 500 {
		return fmt.Errorf("preview URL cannot exceed 500 characters, got %d", len(t.PreviewURL))
	}
	return nil
}

// LeadArtist returns the name of the first credited artist, or an empty
// string when the track carries no artist credits.
func (t *Track) LeadArtist() string {
	if len(t.Artists) == 0 || t.Artists[0].Artist == nil {
		return ""
	}
	return t.Artists[0].Artist.Name
}
