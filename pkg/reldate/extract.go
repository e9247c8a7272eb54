package reldate

import "strings"

// ExtractAll scans free text and returns every embedded relative-date
// expression in order of appearance. The leftmost match wins; at a given
// position the longest match wins, exact phrases beating templates of equal
// length; the scan resumes after the consumed tokens. Tokens that match
// nothing are skipped, so text with no expressions yields an empty slice,
// never an error.
func (lx *Lexicon) ExtractAll(text string) []Expr {
	tokens := tokenize(text)
	out := []Expr{}
	for i := 0; i < len(tokens); {
		e, n, ok := lx.matchAt(tokens, i)
		if !ok {
			i++
			continue
		}
		out = append(out, e)
		i += n
	}
	return out
}

// matchAt finds the longest expression starting exactly at tokens[i].
// Templates that fail on a quantity token are skipped here — mid-text
// extraction has no commitment point to report an error from.
func (lx *Lexicon) matchAt(tokens []string, i int) (Expr, int, bool) {
	var best Expr
	bestN := 0

	max := lx.maxPhraseRun
	if rest := len(tokens) - i; max > rest {
		max = rest
	}
	for n := max; n >= 1; n-- {
		if e, ok := lx.phrases[strings.Join(tokens[i:i+n], " ")]; ok {
			best, bestN = e, n
			break
		}
	}

	for _, t := range lx.templates {
		e, n, err := lx.matchTemplate(t, tokens, i)
		if err != nil || n <= bestN {
			continue
		}
		best, bestN = e, n
	}

	if bestN == 0 {
		return Expr{}, 0, false
	}
	return best, bestN, true
}
