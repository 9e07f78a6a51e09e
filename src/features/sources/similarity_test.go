package sources

import (
	"math"
	"testing"

	"github.com/unisonfm/unison/src/music"
)

func release(artist, title string, year int, src, id string) music.Release {
	return music.Release{
		Title:   title,
		Artists: []music.ReleaseArtist{{Name: artist}},
		Year:    year,
		IDs:     []music.SourceID{{Source: src, ID: id}},
	}
}

func TestComputeSimilarity_IdenticalIsOne(t *testing.T) {
	a := release("The Beatles", "Abbey Road", 1969, "demo", "1")
	b := release("The Beatles", "Abbey Road", 1969, "musicbrainz", "2")

	sim := ComputeSimilarity(a, b)
	if math.Abs(sim.Overall-1) > 1e-9 {
		t.Errorf("expected overall similarity 1, got %f", sim.Overall)
	}
	if !sim.YearMatch {
		t.Error("expected year match")
	}
}

func TestComputeSimilarity_UnrelatedBelowHalf(t *testing.T) {
	a := release("The Beatles", "Abbey Road", 1969, "demo", "1")
	b := release("Aphex Twin", "Syro", 2014, "musicbrainz", "2")

	sim := ComputeSimilarity(a, b)
	if sim.Overall >= 0.5 {
		t.Errorf("expected overall similarity below 0.5 for unrelated releases, got %f", sim.Overall)
	}
	// Raw Jaro-Winkler keeps short unrelated strings in the 0.55-0.70
	// band; the floor has to push both components near zero.
	if sim.Title >= 0.2 {
		t.Errorf("expected near-zero title similarity, got %f", sim.Title)
	}
	if sim.Artist != 0 {
		t.Errorf("expected zero artist similarity below the floor, got %f", sim.Artist)
	}
	if sim.YearMatch {
		t.Error("expected no year match")
	}
}

func TestComputeSimilarity_YearBonusMonotonic(t *testing.T) {
	// Near-duplicate titles, identical artist; only the years differ
	// between the two comparisons.
	matched := ComputeSimilarity(
		release("Radiohead", "In Rainbows", 2007, "demo", "1"),
		release("Radiohead", "In Rainbow", 2007, "musicbrainz", "2"),
	)
	mismatched := ComputeSimilarity(
		release("Radiohead", "In Rainbows", 2007, "demo", "1"),
		release("Radiohead", "In Rainbow", 2008, "musicbrainz", "2"),
	)

	if !matched.YearMatch {
		t.Error("expected year match for equal years")
	}
	if mismatched.YearMatch {
		t.Error("expected no year match for different years")
	}
	if matched.Overall <= mismatched.Overall {
		t.Errorf("expected matching years to score strictly higher: %f vs %f", matched.Overall, mismatched.Overall)
	}
	if matched.Title != mismatched.Title || matched.Artist != mismatched.Artist {
		t.Error("title/artist similarity should not depend on years")
	}
}

func TestComputeSimilarity_NoBonusWhenYearAbsent(t *testing.T) {
	sim := ComputeSimilarity(
		release("Radiohead", "In Rainbows", 0, "demo", "1"),
		release("Radiohead", "In Rainbows", 2007, "musicbrainz", "2"),
	)
	if sim.YearMatch {
		t.Error("expected no year match when one side's year is absent")
	}
	if math.Abs(sim.Overall-(titleWeight+artistWeight)) > 1e-9 {
		t.Errorf("expected overall %f without the year bonus, got %f", titleWeight+artistWeight, sim.Overall)
	}
}

func TestComputeSimilarity_StripsReissueQualifiers(t *testing.T) {
	sim := ComputeSimilarity(
		release("The Beatles", "Abbey Road", 1969, "demo", "1"),
		release("The Beatles", "Abbey Road (Remastered)", 2009, "musicbrainz", "2"),
	)
	if sim.Title != 1 {
		t.Errorf("expected title similarity 1 after qualifier stripping, got %f", sim.Title)
	}
	if sim.Overall < DefaultSimilarityThreshold {
		t.Errorf("expected reissue to clear the default threshold, got %f", sim.Overall)
	}
}
