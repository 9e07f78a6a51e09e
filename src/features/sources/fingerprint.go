package sources

import (
	"strconv"
	"strings"

	"github.com/gosimple/unidecode"
)

// GenerateFingerprint builds the exact-match key for a release. Two
// releases with the same fingerprint are always considered the same album.
// A year of 0 renders as the literal segment "x" so releases without a
// year still fingerprint deterministically.
func GenerateFingerprint(artist, title string, year int) string {
	y := "x"
	if year > 0 {
		y = strconv.Itoa(year)
	}
	return normalizeForFingerprint(artist) + "::" + normalizeForFingerprint(title) + "::" + y
}

// normalizeForFingerprint lowercases, folds diacritics to ASCII, collapses
// whitespace and normalizes "&" to "and" so that credit-style spelling
// differences ("Simon & Garfunkel" vs "Simon and Garfunkel", "Björk" vs
// "Bjork") do not defeat exact matching.
func normalizeForFingerprint(s string) string {
	s = strings.ToLower(s)
	s = unidecode.Unidecode(s)
	s = strings.Join(strings.Fields(s), " ")
	s = strings.ReplaceAll(s, " & ", " and ")
	return s
}
