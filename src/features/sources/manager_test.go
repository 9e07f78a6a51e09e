package sources

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/unisonfm/unison/src/music"
)

// stubSource is a fully capable in-memory source for manager tests.
type stubSource struct {
	typ string

	searchRes SearchResult
	searchErr error
	// delay before any call returns, to exercise ordering under latency
	delay time.Duration

	playlists      []music.Playlist
	playlistsErr   error
	playlistTracks map[string][]music.Track

	streamURL   string
	streamErr   error
	albumTracks music.AlbumTracks
	albumErr    error
}

func (s *stubSource) Type() string { return s.typ }
func (s *stubSource) Name() string { return s.typ }

func (s *stubSource) Search(ctx context.Context, query string) (SearchResult, error) {
	time.Sleep(s.delay)
	return s.searchRes, s.searchErr
}

func (s *stubSource) ListPlaylists(ctx context.Context) ([]music.Playlist, error) {
	time.Sleep(s.delay)
	return s.playlists, s.playlistsErr
}

func (s *stubSource) GetPlaylistTracks(ctx context.Context, playlistID string) ([]music.Track, error) {
	return s.playlistTracks[playlistID], nil
}

func (s *stubSource) GetStreamURL(ctx context.Context, trackID string) (string, error) {
	return s.streamURL, s.streamErr
}

func (s *stubSource) GetAlbumTracks(ctx context.Context, albumID string) (music.AlbumTracks, error) {
	return s.albumTracks, s.albumErr
}

// stubMetadata is an in-memory metadata catalog for manager tests.
type stubMetadata struct {
	typ      string
	releases []music.Release
	err      error
}

func (s *stubMetadata) Type() string { return s.typ }
func (s *stubMetadata) Name() string { return s.typ }

func (s *stubMetadata) SearchReleases(ctx context.Context, query string, limit int) ([]music.Release, error) {
	if s.err != nil {
		return nil, s.err
	}
	if limit > 0 && len(s.releases) > limit {
		return s.releases[:limit], nil
	}
	return s.releases, nil
}

func track(id, title, artist, source string) music.Track {
	return music.Track{
		ID:      id,
		Title:   title,
		Artists: []music.ArtistRole{{Artist: &music.Artist{Name: artist}, Role: "main"}},
		Source:  source,
	}
}

func album(id, title, artist string, year int) music.Album {
	return music.Album{
		ID:      id,
		Title:   title,
		Artists: []music.ArtistRole{{Artist: &music.Artist{Name: artist}, Role: "main"}},
		Year:    year,
	}
}

func TestManager_GetSource(t *testing.T) {
	a := &stubSource{typ: "deezer"}
	b := &stubSource{typ: "tidal"}
	m := NewManager([]Source{a, b}, nil)

	got, ok := m.GetSource("tidal")
	if !ok || got.Type() != "tidal" {
		t.Errorf("expected tidal source, got %v (ok=%v)", got, ok)
	}
	if _, ok := m.GetSource("spotify"); ok {
		t.Error("expected lookup miss for unregistered source")
	}

	all := m.GetAllSources()
	if len(all) != 2 || all[0].Type() != "deezer" || all[1].Type() != "tidal" {
		t.Errorf("expected registration order preserved, got %v", all)
	}
}

func TestSearchAll_FaultIsolation(t *testing.T) {
	failing := &stubSource{typ: "broken", searchErr: errors.New("upstream 503")}
	working := &stubSource{typ: "deezer", searchRes: SearchResult{
		Tracks: []music.Track{track("t1", "Billie Jean", "Michael Jackson", "deezer")},
		Albums: []music.Album{album("a1", "Thriller", "Michael Jackson", 1982)},
	}}
	m := NewManager([]Source{failing, working}, nil)

	res := m.SearchAll(context.Background(), "thriller")
	if len(res.Tracks) != 1 {
		t.Errorf("expected 1 track from the surviving source, got %d", len(res.Tracks))
	}
	if len(res.Albums) != 1 {
		t.Errorf("expected 1 album from the surviving source, got %d", len(res.Albums))
	}
}

func TestSearchAll_FastPathReturnsRawAlbums(t *testing.T) {
	original := album("a1", "Thriller", "Michael Jackson", 1982)
	s := &stubSource{typ: "deezer", searchRes: SearchResult{Albums: []music.Album{original}}}
	m := NewManager([]Source{s}, nil)

	res := m.SearchAll(context.Background(), "thriller")
	if len(res.Albums) != 1 {
		t.Fatalf("expected 1 album, got %d", len(res.Albums))
	}
	if !reflect.DeepEqual(res.Albums[0], original) {
		t.Errorf("fast path must return the provider's album untouched: %+v", res.Albums[0])
	}
}

func TestSearchAll_TracksKeepRegistrationOrder(t *testing.T) {
	slow := &stubSource{typ: "first", delay: 30 * time.Millisecond, searchRes: SearchResult{
		Tracks: []music.Track{track("t1", "One", "A", "first")},
	}}
	fast := &stubSource{typ: "second", searchRes: SearchResult{
		Tracks: []music.Track{track("t2", "Two", "B", "second")},
	}}
	m := NewManager([]Source{slow, fast}, nil)

	res := m.SearchAll(context.Background(), "o")
	if len(res.Tracks) != 2 {
		t.Fatalf("expected 2 tracks, got %d", len(res.Tracks))
	}
	if res.Tracks[0].ID != "t1" || res.Tracks[1].ID != "t2" {
		t.Errorf("expected registration order regardless of latency, got %s, %s", res.Tracks[0].ID, res.Tracks[1].ID)
	}
}

func TestSearchAll_MergesMetadataReleases(t *testing.T) {
	primary := &stubSource{typ: "deezer", searchRes: SearchResult{
		Albums: []music.Album{album("dz-1", "Abbey Road", "The Beatles", 1969)},
	}}
	meta := &stubMetadata{typ: "musicbrainz", releases: []music.Release{
		{
			Title:      "Abbey Road (Remastered)",
			Artists:    []music.ReleaseArtist{{Name: "The Beatles"}},
			Year:       2009,
			IDs:        []music.SourceID{{Source: "musicbrainz", ID: "mbz-1"}},
			Confidence: 0.9,
			Genres:     []string{"Rock"},
			ArtworkURL: "https://coverart.example/mbz-1.jpg",
		},
	}}
	m := NewManager([]Source{primary}, []MetadataSource{meta})

	res := m.SearchAll(context.Background(), "abbey road")
	if len(res.Albums) != 1 {
		t.Fatalf("expected a single merged album, got %d", len(res.Albums))
	}
	merged := res.Albums[0]
	if merged.ID != "dz-1" {
		t.Errorf("expected the primary source's id to lead, got %q", merged.ID)
	}
	if len(merged.SourceIDs) != 2 {
		t.Errorf("expected 2 source ids after merge, got %v", merged.SourceIDs)
	}
	if merged.Year != 1969 {
		t.Errorf("expected the primary album's year to stick, got %d", merged.Year)
	}
	if merged.ArtworkURL != "https://coverart.example/mbz-1.jpg" {
		t.Errorf("expected preferred metadata artwork, got %q", merged.ArtworkURL)
	}
	if len(merged.Genres) != 1 || merged.Genres[0] != "Rock" {
		t.Errorf("expected genres enriched from metadata, got %v", merged.Genres)
	}
}

func TestSearchAll_MetadataFaultDegradesGracefully(t *testing.T) {
	primary := &stubSource{typ: "deezer", searchRes: SearchResult{
		Albums: []music.Album{album("dz-1", "Abbey Road", "The Beatles", 1969)},
	}}
	meta := &stubMetadata{typ: "musicbrainz", err: errors.New("rate limited")}
	m := NewManager([]Source{primary}, []MetadataSource{meta})

	res := m.SearchAll(context.Background(), "abbey road")
	if len(res.Albums) != 1 {
		t.Fatalf("expected the primary album to survive, got %d albums", len(res.Albums))
	}
	if len(res.Albums[0].SourceIDs) != 1 {
		t.Errorf("expected a single source id, got %v", res.Albums[0].SourceIDs)
	}
}

func TestListAllPlaylists_OrderAndIsolation(t *testing.T) {
	slow := &stubSource{typ: "first", delay: 30 * time.Millisecond, playlists: []music.Playlist{
		{ID: "p1", Name: "Morning", Source: "first"},
	}}
	failing := &stubSource{typ: "second", playlistsErr: errors.New("token expired")}
	fast := &stubSource{typ: "third", playlists: []music.Playlist{
		{ID: "p2", Name: "Evening", Source: "third"},
	}}
	m := NewManager([]Source{slow, failing, fast}, nil)

	playlists := m.ListAllPlaylists(context.Background())
	if len(playlists) != 2 {
		t.Fatalf("expected 2 playlists, got %d", len(playlists))
	}
	if playlists[0].ID != "p1" || playlists[1].ID != "p2" {
		t.Errorf("expected registration order, got %s, %s", playlists[0].ID, playlists[1].ID)
	}
}

func TestGetStreamURL_Errors(t *testing.T) {
	m := NewManager([]Source{&bareSource{typ: "metadata-only"}}, nil)

	if _, err := m.GetStreamURL(context.Background(), "unknown", "t1"); err == nil {
		t.Error("expected an error for an unregistered source")
	}

	_, err := m.GetStreamURL(context.Background(), "metadata-only", "t1")
	var capErr *CapabilityError
	if !errors.As(err, &capErr) {
		t.Fatalf("expected a capability error, got %v", err)
	}
	if capErr.Source != "metadata-only" || capErr.Capability != CapabilityStreamURL {
		t.Errorf("unexpected capability error: %+v", capErr)
	}
}

func TestGetAlbumTracks_PropagatesSourceError(t *testing.T) {
	sentinel := errors.New("album gone")
	s := &stubSource{typ: "deezer", albumErr: sentinel}
	m := NewManager([]Source{s}, nil)

	_, err := m.GetAlbumTracks(context.Background(), "deezer", "a1")
	if !errors.Is(err, sentinel) {
		t.Errorf("expected the source's error unchanged, got %v", err)
	}
}

func TestGetPlaylistTracks_Delegates(t *testing.T) {
	s := &stubSource{typ: "deezer", playlistTracks: map[string][]music.Track{
		"p1": {track("t1", "One", "A", "deezer")},
	}}
	m := NewManager([]Source{s}, nil)

	tracks, err := m.GetPlaylistTracks(context.Background(), "deezer", "p1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(tracks) != 1 || tracks[0].ID != "t1" {
		t.Errorf("unexpected tracks: %v", tracks)
	}
}
