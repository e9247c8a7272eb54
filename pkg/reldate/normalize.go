// CLAUDE:SUMMARY Text normalization (lowercase, strip accents and punctuation, collapse whitespace) for lexicon matching.
package reldate

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize canonicalizes a phrase before lexicon lookup: lowercases, strips
// accents (so "amanhã" and "AMANHA" land on the same entry), drops sentence
// punctuation, and collapses whitespace runs. Total — any input, including
// empty, yields a (possibly empty) normalized string.
func Normalize(s string) string {
	folded, _, _ := transform.String(stripAccents, strings.ToLower(s))
	rs := []rune(folded)
	var b strings.Builder
	b.Grow(len(folded))
	for i, r := range rs {
		switch {
		case r == '.' || r == ',' || r == ';' || r == ':' || r == '!' || r == '?':
			// "seg." and "seg" must hit the same entry.
		case r == '’':
			b.WriteRune('\'')
		case r == '-' && i > 0 && i+1 < len(rs) && unicode.IsLetter(rs[i-1]) && unicode.IsLetter(rs[i+1]):
			// "segunda-feira" tokenizes like "segunda feira"; "-2" keeps its sign.
			b.WriteRune(' ')
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		default:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// tokenize normalizes and splits on whitespace.
func tokenize(s string) []string {
	return strings.Fields(Normalize(s))
}
