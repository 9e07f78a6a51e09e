package music

import (
	"fmt"
	"strings"
)

// Playlist represents a collection of tracks owned by a single source.
// Playlists are never merged across sources.
type Playlist struct {
	ID          string
	Name        string
	Description string
	TrackCount  int
	ArtworkURL  string
	Source      string // provider type that owns this playlist
}

// Validate validates the playlist fields.
func (p *Playlist) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("playlist name cannot be empty")
	}
	if len(p.Name) > 200 {
		return fmt.Errorf("playlist name cannot exceed 200 characters, got %d: name -> %s", len(p.Name), p.Name)
	}
	if len(p.Description) > 1000 {
		return fmt.Errorf("playlist description cannot exceed 1000 characters, got %d", len(p.Description))
	}
	return nil
}

// Pretty returns a formatted string representation of the playlist for logging/debugging.
func (p *Playlist) Pretty() string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("%-12s : %s\n", "ID", p.ID))
	builder.WriteString(fmt.Sprintf("%-12s : %s\n", "Name", p.Name))
	if p.Description != "" {
		builder.WriteString(fmt.Sprintf("%-12s : %s\n", "Description", p.Description))
	}
	builder.WriteString(fmt.Sprintf("%-12s : %s\n", "Source", p.Source))
	builder.WriteString(fmt.Sprintf("%-12s : %d\n", "Tracks", p.TrackCount))
	return builder.String()
}
