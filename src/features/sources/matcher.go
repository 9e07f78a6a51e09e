package sources

import (
	"github.com/unisonfm/unison/src/features/metrics"
	"github.com/unisonfm/unison/src/music"
)

// DefaultSimilarityThreshold is the minimum similarity score at which two
// releases are considered the same album.
const DefaultSimilarityThreshold = 0.85

// DefaultArtworkPriority ranks source types by artwork quality, best
// first. MusicBrainz cover art tends to be canonical, so the metadata
// catalogs sit above the streaming ones. Source types not in the list rank
// below every listed one.
var DefaultArtworkPriority = []string{"musicbrainz", "discogs", "deezer"}

// MatcherConfig tunes a Matcher. Zero values mean the package defaults.
type MatcherConfig struct {
	SimilarityThreshold float64
	ArtworkPriority     []string
}

// MatchStats counts matcher decisions, for observability and tests.
type MatchStats struct {
	NewEntries   int
	ExactMatches int
	FuzzyMatches int
}

// entry is an accumulated canonical release plus the source that set its
// current artwork, needed to enforce the artwork preference order.
type entry struct {
	release       music.Release
	artworkSource string
}

// Matcher accumulates release records from different sources into
// canonical entries, merging records that describe the same album. It is
// order-dependent and not safe for concurrent use; construct one per
// aggregate query and discard it.
type Matcher struct {
	threshold   float64
	artworkRank map[string]int
	entries     []*entry
	stats       MatchStats
}

// NewMatcher creates a Matcher with the given configuration.
func NewMatcher(cfg MatcherConfig) *Matcher {
	threshold := cfg.SimilarityThreshold
	if threshold <= 0 {
		threshold = DefaultSimilarityThreshold
	}
	priority := cfg.ArtworkPriority
	if len(priority) == 0 {
		priority = DefaultArtworkPriority
	}
	rank := make(map[string]int, len(priority))
	for i, typ := range priority {
		if _, ok := rank[typ]; !ok {
			rank[typ] = i
		}
	}
	return &Matcher{threshold: threshold, artworkRank: rank}
}

// AddOrMerge feeds one release into the matcher. The release's fingerprint
// is recomputed, then compared against every accumulated entry in
// insertion order: an exact fingerprint match merges immediately; failing
// that, the first entry scoring at or above the similarity threshold
// merges (first above threshold, not best-scoring); otherwise the release
// becomes a new entry.
func (m *Matcher) AddOrMerge(release music.Release) {
	release.Fingerprint = GenerateFingerprint(release.LeadArtist(), release.Title, release.Year)

	for _, e := range m.entries {
		if e.release.Fingerprint == release.Fingerprint {
			m.merge(e, release)
			m.stats.ExactMatches++
			metrics.MatchOutcomes.WithLabelValues("exact").Inc()
			return
		}
	}
	for _, e := range m.entries {
		if ComputeSimilarity(release, e.release).Overall >= m.threshold {
			m.merge(e, release)
			m.stats.FuzzyMatches++
			metrics.MatchOutcomes.WithLabelValues("fuzzy").Inc()
			return
		}
	}
	m.entries = append(m.entries, m.newEntry(release))
	m.stats.NewEntries++
	metrics.MatchOutcomes.WithLabelValues("new").Inc()
}

// GetAll returns a snapshot of the accumulated canonical releases in
// insertion order. Mutating the snapshot does not affect the matcher.
func (m *Matcher) GetAll() []music.Release {
	out := make([]music.Release, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, copyRelease(e.release))
	}
	return out
}

// GetStats returns the running match counters.
func (m *Matcher) GetStats() MatchStats {
	return m.stats
}

// newEntry clones the release so later merges never mutate caller-owned
// slices, and records which source contributed the initial artwork.
func (m *Matcher) newEntry(release music.Release) *entry {
	e := &entry{release: copyRelease(release)}
	if release.ArtworkURL != "" {
		e.artworkSource = m.bestSource(release)
	}
	return e
}

// merge folds release r into entry e: identity and genre unions,
// confidence max, year backfill, artwork by source preference.
func (m *Matcher) merge(e *entry, r music.Release) {
	seenIDs := make(map[music.SourceID]struct{}, len(e.release.IDs))
	for _, id := range e.release.IDs {
		seenIDs[id] = struct{}{}
	}
	for _, id := range r.IDs {
		if _, ok := seenIDs[id]; !ok {
			seenIDs[id] = struct{}{}
			e.release.IDs = append(e.release.IDs, id)
		}
	}

	seenGenres := make(map[string]struct{}, len(e.release.Genres))
	for _, g := range e.release.Genres {
		seenGenres[g] = struct{}{}
	}
	for _, g := range r.Genres {
		if _, ok := seenGenres[g]; !ok {
			seenGenres[g] = struct{}{}
			e.release.Genres = append(e.release.Genres, g)
		}
	}

	if r.Confidence > e.release.Confidence {
		e.release.Confidence = r.Confidence
	}
	if e.release.Year == 0 && r.Year != 0 {
		e.release.Year = r.Year
	}
	if len(e.release.Artists) == 0 && len(r.Artists) > 0 {
		e.release.Artists = append([]music.ReleaseArtist(nil), r.Artists...)
	}

	for typ, score := range r.SourceScores {
		if cur, ok := e.release.SourceScores[typ]; !ok || score > cur {
			if e.release.SourceScores == nil {
				e.release.SourceScores = make(map[string]float64)
			}
			e.release.SourceScores[typ] = score
		}
	}

	m.mergeArtwork(e, r)
}

// mergeArtwork replaces the entry's artwork only when the incoming
// release's source outranks whichever source last set it. Between two
// unranked sources the SourceScores weight breaks the tie.
func (m *Matcher) mergeArtwork(e *entry, r music.Release) {
	if r.ArtworkURL == "" {
		return
	}
	src := m.bestSource(r)
	switch {
	case e.release.ArtworkURL == "":
		// nothing set yet, take it
	case m.rank(src) < m.rank(e.artworkSource):
		// strictly preferred source wins
	case m.rank(src) == m.rank(e.artworkSource) && src != e.artworkSource &&
		e.release.SourceScores[src] > e.release.SourceScores[e.artworkSource]:
		// both unranked, higher source score wins
	default:
		return
	}
	e.release.ArtworkURL = r.ArtworkURL
	e.artworkSource = src
}

// rank maps a source type to its artwork priority; unlisted sources rank
// below every listed one.
func (m *Matcher) rank(sourceType string) int {
	if r, ok := m.artworkRank[sourceType]; ok {
		return r
	}
	return len(m.artworkRank)
}

// bestSource returns the release's best-ranked reporting source.
func (m *Matcher) bestSource(r music.Release) string {
	best := ""
	for _, id := range r.IDs {
		if best == "" || m.rank(id.Source) < m.rank(best) {
			best = id.Source
		}
	}
	return best
}

func copyRelease(r music.Release) music.Release {
	r.IDs = append([]music.SourceID(nil), r.IDs...)
	r.Genres = append([]string(nil), r.Genres...)
	r.Artists = append([]music.ReleaseArtist(nil), r.Artists...)
	for i := range r.Artists {
		r.Artists[i].IDs = append([]music.SourceID(nil), r.Artists[i].IDs...)
	}
	if r.SourceScores != nil {
		scores := make(map[string]float64, len(r.SourceScores))
		for k, v := range r.SourceScores {
			scores[k] = v
		}
		r.SourceScores = scores
	}
	return r
}
