package sources

import (
	"regexp"
	"strings"

	"github.com/hbollon/go-edlib"

	"github.com/unisonfm/unison/src/music"
)

// Weights for the similarity blend. Title carries the most signal, artist
// credits are noisier across providers, and a matching year adds a flat
// bonus on top. Identical title, artist and year sum to exactly 1.
const (
	titleWeight  = 0.50
	artistWeight = 0.35
	yearBonus    = 0.15
)

// Similarity is the result of comparing two releases.
type Similarity struct {
	Overall   float64
	Title     float64
	Artist    float64
	YearMatch bool
}

// parenthetical matches trailing or embedded "(Remastered)" / "[Deluxe]"
// style qualifiers, which providers attach inconsistently to reissues.
var parenthetical = regexp.MustCompile(`\s*[(\[][^)\]]*[)\]]`)

// ComputeSimilarity scores how likely two releases describe the same
// real-world album. The year bonus only applies when both sides report a
// year and the years agree; an absent year on either side never counts
// for or against the pair.
func ComputeSimilarity(a, b music.Release) Similarity {
	sim := Similarity{
		Title:  stringSimilarity(normalizeTitle(a.Title), normalizeTitle(b.Title)),
		Artist: stringSimilarity(artistKey(a), artistKey(b)),
	}
	sim.Overall = titleWeight*sim.Title + artistWeight*sim.Artist
	if a.Year != 0 && b.Year != 0 && a.Year == b.Year {
		sim.YearMatch = true
		sim.Overall += yearBonus
	}
	if sim.Overall > 1 {
		sim.Overall = 1
	}
	return sim
}

// normalizeTitle is the fingerprint normalization plus reissue-qualifier
// stripping, so "Abbey Road (Remastered)" compares as "abbey road".
func normalizeTitle(s string) string {
	s = parenthetical.ReplaceAllString(s, " ")
	return normalizeForFingerprint(s)
}

// artistKey flattens all artist credits on a release into one normalized
// string so multi-artist releases compare as a whole.
func artistKey(r music.Release) string {
	names := make([]string, 0, len(r.Artists))
	for _, a := range r.Artists {
		if a.Name != "" {
			names = append(names, a.Name)
		}
	}
	return normalizeForFingerprint(strings.Join(names, ", "))
}

// jaroWinklerFloor is the score below which two strings count as
// unrelated. Raw Jaro-Winkler rarely drops much under 0.6 even for
// completely different titles, so everything under the floor maps to 0
// and the band above it rescales to the full [0, 1] range.
const jaroWinklerFloor = 0.65

func stringSimilarity(a, b string) float64 {
	if a == b {
		return 1
	}
	if a == "" || b == "" {
		return 0
	}
	res, err := edlib.StringsSimilarity(a, b, edlib.JaroWinkler)
	if err != nil {
		return 0
	}
	raw := float64(res)
	if raw < jaroWinklerFloor {
		return 0
	}
	return (raw - jaroWinklerFloor) / (1 - jaroWinklerFloor)
}
