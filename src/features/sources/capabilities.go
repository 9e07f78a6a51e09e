package sources

import (
	"context"
	"fmt"

	"github.com/unisonfm/unison/src/music"
)

// Source is the identity every registered provider carries. Providers
// additionally satisfy zero or more of the capability interfaces below;
// none of them are required. Variance between providers (some stream, some
// only know metadata) is modelled as capability presence checked at
// runtime, not as a hierarchy.
type Source interface {
	// Type returns the stable key the source is registered and looked up
	// under, e.g. "deezer".
	Type() string
	// Name returns the human-readable display name.
	Name() string
}

// SearchResult is what a search-capable source returns for a query.
type SearchResult struct {
	Tracks []music.Track
	Albums []music.Album
}

// Searcher is the track/album search capability.
type Searcher interface {
	Search(ctx context.Context, query string) (SearchResult, error)
}

// PlaylistLister lists the playlists a source knows about.
type PlaylistLister interface {
	ListPlaylists(ctx context.Context) ([]music.Playlist, error)
}

// PlaylistTrackLister resolves a playlist's track listing.
type PlaylistTrackLister interface {
	GetPlaylistTracks(ctx context.Context, playlistID string) ([]music.Track, error)
}

// PlaylistSource is the playlist capability. Listing and track resolution
// only make sense together, so a source offering just one of the two is
// not playlist-capable.
type PlaylistSource interface {
	PlaylistLister
	PlaylistTrackLister
}

// StreamResolver resolves a track id to a playable stream URL.
type StreamResolver interface {
	GetStreamURL(ctx context.Context, trackID string) (string, error)
}

// AlbumTrackLister resolves an album id to the album and its tracks.
type AlbumTrackLister interface {
	GetAlbumTracks(ctx context.Context, albumID string) (music.AlbumTracks, error)
}

// ReleaseSearcher is the metadata-only release search capability.
type ReleaseSearcher interface {
	SearchReleases(ctx context.Context, query string, limit int) ([]music.Release, error)
}

// MetadataSource is a metadata-only catalog: identity plus release search.
// Metadata sources are never used for streaming or playlists.
type MetadataSource interface {
	Source
	ReleaseSearcher
}

// Capability names an optional source operation, used in capability errors.
type Capability string

const (
	CapabilitySearch        Capability = "search"
	CapabilityPlaylists     Capability = "playlists"
	CapabilityStreamURL     Capability = "stream URL resolution"
	CapabilityAlbumTracks   Capability = "album tracks"
	CapabilityReleaseSearch Capability = "release search"
)

// CanSearch reports whether the source supports track/album search.
func CanSearch(s Source) bool {
	_, ok := s.(Searcher)
	return ok
}

// CanListPlaylists reports whether the source supports playlists. Both
// ListPlaylists and GetPlaylistTracks must be present; a partial
// implementation is treated as not playlist-capable.
func CanListPlaylists(s Source) bool {
	_, ok := s.(PlaylistSource)
	return ok
}

// CanResolveStreams reports whether the source can resolve stream URLs.
func CanResolveStreams(s Source) bool {
	_, ok := s.(StreamResolver)
	return ok
}

// CanGetAlbumTracks reports whether the source can list album tracks.
func CanGetAlbumTracks(s Source) bool {
	_, ok := s.(AlbumTrackLister)
	return ok
}

// CanSearchReleases reports whether the source supports metadata release search.
func CanSearchReleases(s Source) bool {
	_, ok := s.(ReleaseSearcher)
	return ok
}

// CapabilityError reports that a caller invoked an operation a source does
// not support. It is never retried; the source simply cannot serve it.
type CapabilityError struct {
	Source     string
	Capability Capability
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("source %s does not support %s", e.Source, e.Capability)
}
