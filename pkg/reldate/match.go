// CLAUDE:SUMMARY Deterministic single-pass matcher: exact phrases first, then token templates with vocabulary slots.
package reldate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Match maps a phrase to its expression: exact-phrase entries first, then
// templates in declared order. The whole input must be consumed — a
// recognized prefix followed by extra tokens is ErrNoMatch, never a partial
// success. Once a template's skeleton has matched the full input, a bad
// quantity token is ErrInvalidQuantity with no fallback to later templates.
func (lx *Lexicon) Match(text string) (Expr, error) {
	norm := Normalize(text)
	if e, ok := lx.phrases[norm]; ok {
		return e, nil
	}
	tokens := strings.Fields(norm)
	if len(tokens) == 0 {
		return Expr{}, fmt.Errorf("%w: empty input", ErrNoMatch)
	}
	for _, t := range lx.templates {
		e, consumed, err := lx.matchTemplate(t, tokens, 0)
		if err != nil {
			if errors.Is(err, ErrInvalidQuantity) && consumed == len(tokens) {
				return Expr{}, err
			}
			continue
		}
		if consumed != len(tokens) {
			continue
		}
		return e, nil
	}
	return Expr{}, fmt.Errorf("%w: %q (%s)", ErrNoMatch, norm, lx.locale)
}

// matchTemplate matches one template against tokens starting at start.
// Literal segments must equal their token; slot segments consume the longest
// vocabulary run. An {n} slot additionally accepts a single unrecognized
// token as a digit candidate, validated only after the rest of the skeleton
// has matched, so "em xyz semanas" can still fall through to a later
// template whose skeleton fits. Returns the tokens consumed; ErrNoMatch
// means the skeleton did not fit, ErrInvalidQuantity that it did but the
// quantity token is unusable.
func (lx *Lexicon) matchTemplate(t template, tokens []string, start int) (Expr, int, error) {
	i := start
	var caps captures
	for _, seg := range t.segs {
		if seg.slot == slotNone {
			if i >= len(tokens) || tokens[i] != seg.token {
				return Expr{}, 0, ErrNoMatch
			}
			i++
			continue
		}
		if i >= len(tokens) {
			return Expr{}, 0, ErrNoMatch
		}
		if n, ok := lx.vocab.matchRun(seg.slot, tokens, i, &caps); ok {
			i += n
			continue
		}
		if seg.slot == slotNumber {
			caps.rawNumeral = tokens[i]
			i++
			continue
		}
		return Expr{}, 0, ErrNoMatch
	}
	if !caps.hasN && caps.rawNumeral != "" {
		n, err := strconv.Atoi(caps.rawNumeral)
		if err != nil || n < 1 {
			return Expr{}, i - start, fmt.Errorf("%w: %q", ErrInvalidQuantity, caps.rawNumeral)
		}
		caps.n, caps.hasN = n, true
	}
	return t.build.apply(caps), i - start, nil
}
