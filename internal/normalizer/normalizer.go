package normalizer

import (
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// StripDiacritics removes combining marks (Peñaranda -> Penaranda)
// without touching the base letters.
func StripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, _ := transform.String(t, s)
	return out
}

// MatchKey folds a name or query into the form the matcher compares:
// ASCII-transliterated, lowercased, punctuation collapsed to single
// spaces. PSGC names carry Spanish-era diacritics and ñ, so plain
// lowercasing is not enough.
func MatchKey(s string) string {
	s = unidecode.Unidecode(StripDiacritics(s))
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
