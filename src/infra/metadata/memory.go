// Package metadata provides metadata-only catalogs: sources that know
// about releases but cannot stream or list playlists.
package metadata

import (
	"context"
	"strings"

	"github.com/unisonfm/unison/src/music"
)

// MemorySource is an in-memory metadata catalog backed by a fixed release
// list. Real deployments wire HTTP-backed catalogs here; the engine only
// sees the release search capability either way.
type MemorySource struct {
	typ      string
	name     string
	releases []music.Release
}

// NewMemorySource creates a metadata catalog with the given identity and
// releases. Releases missing an id anchor get one synthesized from the
// catalog's own type so the matcher invariant always holds.
func NewMemorySource(typ, name string, releases []music.Release) *MemorySource {
	for i := range releases {
		if len(releases[i].IDs) == 0 {
			releases[i].IDs = []music.SourceID{{Source: typ, ID: releases[i].Title}}
		}
	}
	return &MemorySource{typ: typ, name: name, releases: releases}
}

// Type implements sources.Source.
func (s *MemorySource) Type() string { return s.typ }

// Name implements sources.Source.
func (s *MemorySource) Name() string { return s.name }

// SearchReleases returns up to limit releases whose title or artist
// contains the query, case-insensitively.
func (s *MemorySource) SearchReleases(ctx context.Context, query string, limit int) ([]music.Release, error) {
	q := strings.ToLower(query)
	var out []music.Release
	for _, r := range s.releases {
		if limit > 0 && len(out) >= limit {
			break
		}
		if strings.Contains(strings.ToLower(r.Title), q) ||
			strings.Contains(strings.ToLower(r.LeadArtist()), q) {
			out = append(out, r)
		}
	}
	return out, nil
}

// NewDemoMusicBrainz creates a canned MusicBrainz-flavoured catalog whose
// releases overlap the demo catalog, so demo mode exercises the merge
// path: same albums under reissue titles, richer genres, canonical
// artwork.
func NewDemoMusicBrainz() *MemorySource {
	return NewMemorySource("musicbrainz", "MusicBrainz (demo)", []music.Release{
		{
			Title:      "Thriller",
			Artists:    []music.ReleaseArtist{{Name: "Michael Jackson"}},
			Type:       music.AlbumTypeAlbum,
			Year:       1982,
			IDs:        []music.SourceID{{Source: "musicbrainz", ID: "mbz-release-1"}},
			Confidence: 0.9,
			Genres:     []string{"Pop", "Funk"},
			ArtworkURL: "https://coverart.demo.local/mbz-release-1.jpg",
		},
		{
			Title:      "Abbey Road (Remastered)",
			Artists:    []music.ReleaseArtist{{Name: "The Beatles"}},
			Type:       music.AlbumTypeAlbum,
			Year:       2009,
			IDs:        []music.SourceID{{Source: "musicbrainz", ID: "mbz-release-2"}},
			Confidence: 0.9,
			Genres:     []string{"Rock", "Pop Rock"},
			ArtworkURL: "https://coverart.demo.local/mbz-release-2.jpg",
		},
		{
			Title:      "Off the Wall",
			Artists:    []music.ReleaseArtist{{Name: "Michael Jackson"}},
			Type:       music.AlbumTypeAlbum,
			Year:       1979,
			IDs:        []music.SourceID{{Source: "musicbrainz", ID: "mbz-release-3"}},
			Confidence: 0.9,
			Genres:     []string{"Disco", "Funk"},
			ArtworkURL: "https://coverart.demo.local/mbz-release-3.jpg",
		},
	})
}
