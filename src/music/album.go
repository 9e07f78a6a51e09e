package music

import (
	"fmt"
	"strings"
)

type AlbumType string

const (
	AlbumTypeAlbum       AlbumType = "album"
	AlbumTypeCompilation AlbumType = "compilation"
	AlbumTypeSoundtrack  AlbumType = "soundtrack"
	AlbumTypeEP          AlbumType = "ep"
	AlbumTypeSingle      AlbumType = "single"
)

// SourceID anchors a record to the provider-local identity it was reported
// under: the provider type plus that provider's own id for the record.
type SourceID struct {
	Source string
	ID     string
}

// Album represents a canonical album. After release matching a single album
// may be backed by several providers, so identity is the SourceIDs list
// rather than one provider+id pair; ID is a convenience handle equal to the
// first source's local id.
type Album struct {
	ID         string
	Title      string
	Type       AlbumType
	Artists    []ArtistRole
	Year       int // 0 when unknown
	Genres     []string
	ArtworkURL string
	TrackCount int
	SourceIDs  []SourceID
}

// Validate validates the album fields.
func (a *Album) Validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return fmt.Errorf("album title cannot be empty")
	}
	if len(a.Title) > 500 {
		return fmt.Errorf("album title cannot exceed 500 characters")
	}
	if len(a.Artists) == 0 {
		return fmt.Errorf("album must have at least one artist")
	}
	for _, artistRole := range a.Artists {
		if artistRole.Artist == nil {
			return fmt.Errorf("album artist cannot be nil")
		}
		if err := artistRole.Artist.Validate(); err != nil {
			return fmt.Errorf("invalid artist in album: %w", err)
		}
	}
	for _, g := range a.Genres {
		if len(g) > 100 {
			return fmt.Errorf("genre cannot exceed 100 characters")
		}
	}
	return nil
}

// LeadArtist returns the name of the first credited artist, or an empty
// string when the album carries no artist credits.
func (a *Album) LeadArtist() string {
	if len(a.Artists) == 0 || a.Artists[0].Artist == nil {
		return ""
	}
	return a.Artists[0].Artist.Name
}

// AlbumTracks pairs an album with its full track listing, as returned by a
// source's album lookup.
type AlbumTracks struct {
	Album  Album
	Tracks []Track
}
