package metadata

import (
	"context"
	"testing"

	"github.com/unisonfm/unison/src/music"
)

func TestMemorySource_SearchReleases(t *testing.T) {
	s := NewMemorySource("musicbrainz", "MusicBrainz", []music.Release{
		{Title: "Abbey Road", Artists: []music.ReleaseArtist{{Name: "The Beatles"}}},
		{Title: "Revolver", Artists: []music.ReleaseArtist{{Name: "The Beatles"}}},
		{Title: "Thriller", Artists: []music.ReleaseArtist{{Name: "Michael Jackson"}}},
	})

	got, err := s.SearchReleases(context.Background(), "beatles", 10)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 releases matching by artist, got %d", len(got))
	}
	for _, r := range got {
		if len(r.IDs) == 0 {
			t.Errorf("expected a synthesized source id for %q", r.Title)
		}
		if r.IDs[0].Source != "musicbrainz" {
			t.Errorf("expected synthesized id to carry the catalog type, got %+v", r.IDs[0])
		}
	}
}

func TestMemorySource_SearchReleasesRespectsLimit(t *testing.T) {
	s := NewMemorySource("musicbrainz", "MusicBrainz", []music.Release{
		{Title: "Abbey Road", Artists: []music.ReleaseArtist{{Name: "The Beatles"}}},
		{Title: "Revolver", Artists: []music.ReleaseArtist{{Name: "The Beatles"}}},
	})

	got, err := s.SearchReleases(context.Background(), "beatles", 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 1 {
		t.Errorf("expected the limit to cap results, got %d", len(got))
	}
}
