package sources

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/unisonfm/unison/src/features/metrics"
	"github.com/unisonfm/unison/src/music"
)

// defaultReleaseSearchLimit is how many releases each metadata catalog is
// asked for per aggregate search.
const defaultReleaseSearchLimit = 10

// Manager holds the registered sources and exposes the aggregate
// operations over them. The registry is immutable after construction, so
// lookups need no locking and output ordering is always registration
// order, never completion order.
type Manager struct {
	sources      []Source
	metadata     []MetadataSource
	matcherCfg   MatcherConfig
	releaseLimit int
}

// Option configures a Manager.
type Option func(*Manager)

// WithSimilarityThreshold sets the matcher's merge threshold.
func WithSimilarityThreshold(t float64) Option {
	return func(m *Manager) { m.matcherCfg.SimilarityThreshold = t }
}

// WithArtworkPriority sets the artwork source preference order, best first.
func WithArtworkPriority(priority []string) Option {
	return func(m *Manager) { m.matcherCfg.ArtworkPriority = priority }
}

// WithReleaseSearchLimit caps how many releases each metadata catalog is
// asked for per search.
func WithReleaseSearchLimit(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.releaseLimit = n
		}
	}
}

// NewManager creates a Manager over the given primary sources and
// metadata-only catalogs. Both lists keep their order; it determines the
// ordering of every aggregate result.
func NewManager(srcs []Source, metadata []MetadataSource, opts ...Option) *Manager {
	m := &Manager{
		sources:      append([]Source(nil), srcs...),
		metadata:     append([]MetadataSource(nil), metadata...),
		releaseLimit: defaultReleaseSearchLimit,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// GetSource returns the registered source with the given type key.
func (m *Manager) GetSource(sourceType string) (Source, bool) {
	for _, s := range m.sources {
		if s.Type() == sourceType {
			return s, true
		}
	}
	return nil, false
}

// GetAllSources returns the registered sources in registration order.
func (m *Manager) GetAllSources() []Source {
	return append([]Source(nil), m.sources...)
}

// GetMetadataSources returns the registered metadata catalogs in
// registration order.
func (m *Manager) GetMetadataSources() []MetadataSource {
	return append([]MetadataSource(nil), m.metadata...)
}

// ListAllPlaylists fans out to every playlist-capable source concurrently
// and concatenates the results in registration order; a slow source never
// reorders the output. A faulted source contributes nothing: its failure
// is logged and counted, not propagated.
func (m *Manager) ListAllPlaylists(ctx context.Context) []music.Playlist {
	capable := make([]Source, 0, len(m.sources))
	for _, s := range m.sources {
		if CanListPlaylists(s) {
			capable = append(capable, s)
		}
	}

	results := make([][]music.Playlist, len(capable))
	var wg sync.WaitGroup
	for i, s := range capable {
		wg.Add(1)
		go func(i int, s Source) {
			defer wg.Done()
			playlists, err := s.(PlaylistSource).ListPlaylists(ctx)
			if err != nil {
				slog.Warn("Playlist listing failed, skipping source", "source", s.Type(), "error", err)
				metrics.FanoutFaults.WithLabelValues(s.Type(), "list_playlists").Inc()
				return
			}
			results[i] = playlists
		}(i, s)
	}
	wg.Wait()

	var all []music.Playlist
	for _, r := range results {
		all = append(all, r...)
	}
	return all
}

// GetPlaylistTracks returns the tracks of one source's playlist. Unlike
// the aggregate operations the caller named a single source, so its error
// is propagated unchanged.
func (m *Manager) GetPlaylistTracks(ctx context.Context, sourceType, playlistID string) ([]music.Track, error) {
	s, ok := m.GetSource(sourceType)
	if !ok {
		return nil, fmt.Errorf("source %s not found", sourceType)
	}
	ps, ok := s.(PlaylistSource)
	if !ok {
		return nil, &CapabilityError{Source: sourceType, Capability: CapabilityPlaylists}
	}
	return ps.GetPlaylistTracks(ctx, playlistID)
}

// GetStreamURL resolves a track to a playable URL via the named source.
func (m *Manager) GetStreamURL(ctx context.Context, sourceType, trackID string) (string, error) {
	s, ok := m.GetSource(sourceType)
	if !ok {
		return "", fmt.Errorf("source %s not found", sourceType)
	}
	sr, ok := s.(StreamResolver)
	if !ok {
		return "", &CapabilityError{Source: sourceType, Capability: CapabilityStreamURL}
	}
	return sr.GetStreamURL(ctx, trackID)
}

// GetAlbumTracks returns an album and its track listing from the named source.
func (m *Manager) GetAlbumTracks(ctx context.Context, sourceType, albumID string) (music.AlbumTracks, error) {
	s, ok := m.GetSource(sourceType)
	if !ok {
		return music.AlbumTracks{}, fmt.Errorf("source %s not found", sourceType)
	}
	al, ok := s.(AlbumTrackLister)
	if !ok {
		return music.AlbumTracks{}, &CapabilityError{Source: sourceType, Capability: CapabilityAlbumTracks}
	}
	return al.GetAlbumTracks(ctx, albumID)
}

// SearchAll runs the query against every search-capable primary source and
// every metadata catalog concurrently. Each call settles independently:
// one source's failure never cancels its siblings or the aggregate, it
// just contributes nothing. Tracks are concatenated per registration
// order and never deduplicated. Albums are deduplicated through a fresh
// Matcher whenever metadata catalogs are registered; primary albums are
// fed first so they form the canonical base entries that metadata
// releases enrich, never the reverse.
func (m *Manager) SearchAll(ctx context.Context, query string) SearchResult {
	metrics.SearchesTotal.Inc()

	searchable := make([]Source, 0, len(m.sources))
	for _, s := range m.sources {
		if CanSearch(s) {
			searchable = append(searchable, s)
		}
	}

	primary := make([]SearchResult, len(searchable))
	releases := make([][]music.Release, len(m.metadata))

	var wg sync.WaitGroup
	for i, s := range searchable {
		wg.Add(1)
		go func(i int, s Source) {
			defer wg.Done()
			res, err := s.(Searcher).Search(ctx, query)
			if err != nil {
				slog.Warn("Search failed, skipping source", "source", s.Type(), "error", err)
				metrics.FanoutFaults.WithLabelValues(s.Type(), "search").Inc()
				return
			}
			primary[i] = res
		}(i, s)
	}
	for i, ms := range m.metadata {
		wg.Add(1)
		go func(i int, ms MetadataSource) {
			defer wg.Done()
			rs, err := ms.SearchReleases(ctx, query, m.releaseLimit)
			if err != nil {
				slog.Warn("Release search failed, skipping source", "source", ms.Type(), "error", err)
				metrics.FanoutFaults.WithLabelValues(ms.Type(), "search_releases").Inc()
				return
			}
			releases[i] = rs
		}(i, ms)
	}
	wg.Wait()

	var out SearchResult
	for _, res := range primary {
		out.Tracks = append(out.Tracks, res.Tracks...)
	}

	// With no metadata catalogs registered there is nothing to merge
	// against, so the raw albums pass through untouched.
	if len(m.metadata) == 0 {
		for _, res := range primary {
			out.Albums = append(out.Albums, res.Albums...)
		}
		return out
	}

	matcher := NewMatcher(m.matcherCfg)
	for i, res := range primary {
		for _, album := range res.Albums {
			matcher.AddOrMerge(normalizeAlbum(album, searchable[i].Type()))
		}
	}
	for i, rs := range releases {
		for _, r := range rs {
			if err := r.Validate(); err != nil {
				slog.Warn("Dropping malformed release", "source", m.metadata[i].Type(), "error", err)
				continue
			}
			matcher.AddOrMerge(r)
		}
	}

	merged := matcher.GetAll()
	stats := matcher.GetStats()
	slog.Debug("Release matching completed",
		"query", query,
		"entries", stats.NewEntries,
		"exact_matches", stats.ExactMatches,
		"fuzzy_matches", stats.FuzzyMatches,
	)

	for _, r := range merged {
		out.Albums = append(out.Albums, albumFromRelease(r))
	}
	return out
}

// normalizeAlbum reduces a primary source's album to the release shape the
// matcher operates on. The reporting source's id becomes the release's
// identity anchor and confidence is 1.0: the primary catalog is trusted
// about its own records.
func normalizeAlbum(album music.Album, sourceType string) music.Release {
	var artists []music.ReleaseArtist
	if lead := album.LeadArtist(); lead != "" {
		ra := music.ReleaseArtist{Name: lead}
		if id := album.Artists[0].Artist.ID; id != "" {
			ra.IDs = []music.SourceID{{Source: sourceType, ID: id}}
		}
		artists = append(artists, ra)
	}
	typ := album.Type
	if typ == "" {
		typ = music.AlbumTypeAlbum
	}
	return music.Release{
		Title:      album.Title,
		Artists:    artists,
		Type:       typ,
		Year:       album.Year,
		IDs:        []music.SourceID{{Source: sourceType, ID: album.ID}},
		Confidence: 1.0,
		Genres:     album.Genres,
		ArtworkURL: album.ArtworkURL,
	}
}

// albumFromRelease converts a merged canonical release back to the public
// album shape: the first id's local id becomes the album's own id and the
// first credited artist becomes the lead artist, while SourceIDs keeps the
// full multi-source identity.
func albumFromRelease(r music.Release) music.Album {
	album := music.Album{
		Title:      r.Title,
		Type:       r.Type,
		Year:       r.Year,
		Genres:     r.Genres,
		ArtworkURL: r.ArtworkURL,
		SourceIDs:  r.IDs,
	}
	if len(r.IDs) > 0 {
		album.ID = r.IDs[0].ID
	}
	if len(r.Artists) > 0 {
		artist := &music.Artist{Name: r.Artists[0].Name}
		if len(r.Artists[0].IDs) > 0 {
			artist.ID = r.Artists[0].IDs[0].ID
		}
		album.Artists = []music.ArtistRole{{Artist: artist, Role: "main"}}
	}
	return album
}
