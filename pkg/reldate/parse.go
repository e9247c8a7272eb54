// Package reldate turns natural-language relative-date phrases ("amanhã",
// "em 3 dias", "next monday") into typed, locale-independent expressions,
// and resolves those expressions against a reference date.
//
// The two stages are separable: Parse produces an Expr that carries no
// trace of the text or locale it came from, and Resolve maps an Expr plus
// a reference date to an absolute date, so one parse can be resolved
// against many reference dates. Lexicons are immutable once compiled and
// safe for concurrent use.
package reldate

import "fmt"

var builtins = compileBuiltins()

func compileBuiltins() map[string]*Lexicon {
	m := make(map[string]*Lexicon)
	for _, spec := range []*LexiconSpec{brazilianPortuguese(), english()} {
		lx := mustCompile(spec)
		m[lx.locale] = lx
	}
	return m
}

// Builtin returns the compiled built-in lexicon for a locale identifier,
// or ErrUnsupportedLocale. Use a Registry to also serve user lexicons.
func Builtin(locale string) (*Lexicon, error) {
	lx, ok := builtins[locale]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLocale, locale)
	}
	return lx, nil
}

// Parse matches text against the built-in lexicon for locale and returns
// the expression it denotes.
func Parse(text, locale string) (Expr, error) {
	lx, err := Builtin(locale)
	if err != nil {
		return Expr{}, err
	}
	return lx.Match(text)
}

// Extract scans free text for every embedded expression using the built-in
// lexicon for locale. Only an unknown locale fails; text without
// expressions yields an empty slice.
func Extract(text, locale string) ([]Expr, error) {
	lx, err := Builtin(locale)
	if err != nil {
		return nil, err
	}
	return lx.ExtractAll(text), nil
}
