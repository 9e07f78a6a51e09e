// Package demo provides a built-in source with a small canned catalog so
// the engine can run end to end in demo mode, without any external client.
package demo

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/unisonfm/unison/src/features/sources"
	"github.com/unisonfm/unison/src/music"
)

// Source is the demo catalog. It implements every capability.
type Source struct {
	albums    []music.Album
	tracks    []music.Track
	playlists []music.Playlist
	// playlist id -> track ids
	playlistTracks map[string][]string
}

// New creates the demo source with its canned catalog.
func New() *Source {
	s := &Source{}
	s.seed()
	return s
}

// Type implements sources.Source.
func (s *Source) Type() string { return "demo" }

// Name implements sources.Source.
func (s *Source) Name() string { return "Demo Catalog" }

// Search returns the canned tracks and albums whose title or artist
// contains the query, case-insensitively.
func (s *Source) Search(ctx context.Context, query string) (sources.SearchResult, error) {
	q := strings.ToLower(query)
	var res sources.SearchResult
	for _, t := range s.tracks {
		if strings.Contains(strings.ToLower(t.Title), q) ||
			strings.Contains(strings.ToLower(t.LeadArtist()), q) {
			res.Tracks = append(res.Tracks, t)
		}
	}
	for _, a := range s.albums {
		if strings.Contains(strings.ToLower(a.Title), q) ||
			strings.Contains(strings.ToLower(a.LeadArtist()), q) {
			res.Albums = append(res.Albums, a)
		}
	}
	return res, nil
}

// ListPlaylists returns the canned playlists.
func (s *Source) ListPlaylists(ctx context.Context) ([]music.Playlist, error) {
	return append([]music.Playlist(nil), s.playlists...), nil
}

// GetPlaylistTracks returns the tracks of a canned playlist.
func (s *Source) GetPlaylistTracks(ctx context.Context, playlistID string) ([]music.Track, error) {
	ids, ok := s.playlistTracks[playlistID]
	if !ok {
		return nil, fmt.Errorf("playlist %s not found", playlistID)
	}
	var tracks []music.Track
	for _, id := range ids {
		for _, t := range s.tracks {
			if t.ID == id {
				tracks = append(tracks, t)
			}
		}
	}
	return tracks, nil
}

// GetStreamURL returns a fake stream URL with a one-time token.
func (s *Source) GetStreamURL(ctx context.Context, trackID string) (string, error) {
	for _, t := range s.tracks {
		if t.ID == trackID {
			return fmt.Sprintf("https://stream.demo.local/%s?token=%s", trackID, uuid.New().String()), nil
		}
	}
	return "", fmt.Errorf("track %s not found", trackID)
}

// GetAlbumTracks returns a canned album with its track listing.
func (s *Source) GetAlbumTracks(ctx context.Context, albumID string) (music.AlbumTracks, error) {
	for _, a := range s.albums {
		if a.ID == albumID {
			var tracks []music.Track
			for _, t := range s.tracks {
				if t.AlbumID == albumID {
					tracks = append(tracks, t)
				}
			}
			return music.AlbumTracks{Album: a, Tracks: tracks}, nil
		}
	}
	return music.AlbumTracks{}, fmt.Errorf("album %s not found", albumID)
}

func (s *Source) seed() {
	mj := &music.Artist{ID: "demo-artist-1", Name: "Michael Jackson"}
	beatles := &music.Artist{ID: "demo-artist-2", Name: "The Beatles"}

	s.albums = []music.Album{
		{
			ID:         "demo-album-1",
			Title:      "Thriller",
			Type:       music.AlbumTypeAlbum,
			Artists:    []music.ArtistRole{{Artist: mj, Role: "main"}},
			Year:       1982,
			Genres:     []string{"Pop"},
			ArtworkURL: "https://img.demo.local/thriller.jpg",
			TrackCount: 2,
		},
		{
			ID:         "demo-album-2",
			Title:      "Abbey Road",
			Type:       music.AlbumTypeAlbum,
			Artists:    []music.ArtistRole{{Artist: beatles, Role: "main"}},
			Year:       1969,
			Genres:     []string{"Rock"},
			ArtworkURL: "https://img.demo.local/abbey-road.jpg",
			TrackCount: 2,
		},
	}

	s.tracks = []music.Track{
		{
			ID:         "demo-track-1",
			Title:      "Billie Jean",
			Artists:    []music.ArtistRole{{Artist: mj, Role: "main"}},
			AlbumTitle: "Thriller",
			AlbumID:    "demo-album-1",
			Duration:   294,
			Source:     "demo",
		},
		{
			ID:         "demo-track-2",
			Title:      "Beat It",
			Artists:    []music.ArtistRole{{Artist: mj, Role: "main"}},
			AlbumTitle: "Thriller",
			AlbumID:    "demo-album-1",
			Duration:   258,
			Source:     "demo",
		},
		{
			ID:         "demo-track-3",
			Title:      "Come Together",
			Artists:    []music.ArtistRole{{Artist: beatles, Role: "main"}},
			AlbumTitle: "Abbey Road",
			AlbumID:    "demo-album-2",
			Duration:   259,
			Source:     "demo",
		},
		{
			ID:         "demo-track-4",
			Title:      "Here Comes the Sun",
			Artists:    []music.ArtistRole{{Artist: beatles, Role: "main"}},
			AlbumTitle: "Abbey Road",
			AlbumID:    "demo-album-2",
			Duration:   185,
			Source:     "demo",
		},
	}

	s.playlists = []music.Playlist{
		{
			ID:          "demo-playlist-1",
			Name:        "Classics",
			Description: "A little of everything",
			TrackCount:  2,
			Source:      "demo",
		},
	}
	s.playlistTracks = map[string][]string{
		"demo-playlist-1": {"demo-track-1", "demo-track-3"},
	}
}
