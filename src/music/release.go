package music

import "fmt"

// ReleaseArtist is an artist credit on a release, carrying the ids the
// reporting providers know the artist by.
type ReleaseArtist struct {
	Name string
	IDs  []SourceID
}

// Release is the normalized shape the release matcher operates on. Every
// source's album-like result is reduced to this form before matching, so
// the matcher never sees provider-specific records.
//
// Fingerprint is derived and may be blank on input; the matcher recomputes
// it. IDs must never be empty on input: a release always carries at least
// the id of the provider that reported it.
type Release struct {
	Fingerprint string
	Title       string
	Artists     []ReleaseArtist
	Type        AlbumType
	Year        int // 0 when unknown
	IDs         []SourceID
	Confidence  float64 // 0..1
	Genres      []string
	ArtworkURL  string
	// SourceScores maps a provider type to a ranking weight, used for
	// artwork and field tie-breaks between otherwise equal sources.
	SourceScores map[string]float64
}

// Validate validates the release fields.
func (r *Release) Validate() error {
	if r.Title == "" {
		return fmt.Errorf("release title cannot be empty")
	}
	if len(r.IDs) == 0 {
		return fmt.Errorf("release must carry at least one source id: title -> %s", r.Title)
	}
	if r.Confidence < 0 || r.Confidence > 1 {
		return fmt.Errorf("release confidence must be within [0,1], got %f", r.Confidence)
	}
	return nil
}

// LeadArtist returns the name of the first credited artist, or an empty
// string when the release carries no artist credits.
func (r *Release) LeadArtist() string {
	if len(r.Artists) == 0 {
		return ""
	}
	return r.Artists[0].Name
}
