package reldate

import (
	"errors"
	"testing"
	"time"
)

func lexicon(t *testing.T, locale string) *Lexicon {
	t.Helper()
	lx, err := Builtin(locale)
	if err != nil {
		t.Fatalf("Builtin(%q): %v", locale, err)
	}
	return lx
}

func TestMatchBrazilianPortuguese(t *testing.T) {
	lx := lexicon(t, "pt-BR")

	tests := []struct {
		input string
		want  Expr
	}{
		{"hoje", Today()},
		{"amanhã", Tomorrow()},
		{"amanha", Tomorrow()},
		{"AMANHÃ", Tomorrow()},
		{"ontem", Yesterday()},
		{"depois de amanhã", OffsetDays(2)},
		{"anteontem", OffsetDays(-2)},
		{"antes de ontem", OffsetDays(-2)},
		{"semana que vem", OffsetWeeks(1)},
		{"próxima semana", OffsetWeeks(1)},
		{"semana passada", OffsetWeeks(-1)},
		{"mês que vem", OffsetMonths(1)},
		{"mes passado", OffsetMonths(-1)},

		{"em 3 dias", OffsetDays(3)},
		{"em 1 dia", OffsetDays(1)},
		{"daqui a 3 dias", OffsetDays(3)},
		{"daqui 10 dias", OffsetDays(10)},
		{"em três dias", OffsetDays(3)},
		{"em vinte dias", OffsetDays(20)},
		{"em vinte e um dias", OffsetDays(21)},
		{"em trinta e um dias", OffsetDays(31)},
		{"em quatorze dias", OffsetDays(14)},
		{"em catorze dias", OffsetDays(14)},
		{"há 3 dias", OffsetDays(-3)},
		{"ha 3 dias", OffsetDays(-3)},
		{"3 dias atrás", OffsetDays(-3)},
		{"um dia atrás", OffsetDays(-1)},

		{"em 2 semanas", OffsetWeeks(2)},
		{"daqui a duas semanas", OffsetWeeks(2)},
		{"há 1 semana", OffsetWeeks(-1)},
		{"2 semanas atrás", OffsetWeeks(-2)},

		{"em 6 meses", OffsetMonths(6)},
		{"daqui a 1 mês", OffsetMonths(1)},
		{"há 3 meses", OffsetMonths(-3)},
		{"2 meses atrás", OffsetMonths(-2)},

		{"próxima segunda", WeekdayNext(time.Monday)},
		{"proxima segunda", WeekdayNext(time.Monday)},
		{"próxima segunda-feira", WeekdayNext(time.Monday)},
		{"próximo sábado", WeekdayNext(time.Saturday)},
		{"próx sex", WeekdayNext(time.Friday)},
		{"esta quarta", WeekdayNext(time.Wednesday)},
		{"este domingo", WeekdayNext(time.Sunday)},
		{"terça", WeekdayNext(time.Tuesday)},
		{"seg.", WeekdayNext(time.Monday)},
		{"última sexta", WeekdayLast(time.Friday)},
		{"último domingo", WeekdayLast(time.Sunday)},
		{"sexta passada", WeekdayLast(time.Friday)},
		{"sábado passado", WeekdayLast(time.Saturday)},

		{"primeiro domingo de outubro", WeekdayOfMonth(1, time.Sunday, time.October)},
		{"terceira quinta de novembro", WeekdayOfMonth(3, time.Thursday, time.November)},
		{"segunda segunda de janeiro", WeekdayOfMonth(2, time.Monday, time.January)},
		{"quinto sábado de dez", WeekdayOfMonth(5, time.Saturday, time.December)},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := lx.Match(tt.input)
			if err != nil {
				t.Fatalf("Match(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMatchEnglish(t *testing.T) {
	lx := lexicon(t, "en")

	tests := []struct {
		input string
		want  Expr
	}{
		{"today", Today()},
		{"Tomorrow", Tomorrow()},
		{"yesterday", Yesterday()},
		{"day after tomorrow", OffsetDays(2)},
		{"the day after tomorrow", OffsetDays(2)},
		{"the day before yesterday", OffsetDays(-2)},
		{"next week", OffsetWeeks(1)},
		{"last month", OffsetMonths(-1)},

		{"in 3 days", OffsetDays(3)},
		{"in 1 day", OffsetDays(1)},
		{"after 5 days", OffsetDays(5)},
		{"in three days", OffsetDays(3)},
		{"in twenty one days", OffsetDays(21)},
		{"in twenty-one days", OffsetDays(21)},
		{"in thirty one days", OffsetDays(31)},
		{"3 days ago", OffsetDays(-3)},
		{"one day ago", OffsetDays(-1)},
		{"in 2 weeks", OffsetWeeks(2)},
		{"two weeks ago", OffsetWeeks(-2)},
		{"in 6 months", OffsetMonths(6)},
		{"1 month ago", OffsetMonths(-1)},

		{"next monday", WeekdayNext(time.Monday)},
		{"the next monday", WeekdayNext(time.Monday)},
		{"the following friday", WeekdayNext(time.Friday)},
		{"this wednesday", WeekdayNext(time.Wednesday)},
		{"the current saturday", WeekdayNext(time.Saturday)},
		{"tue", WeekdayNext(time.Tuesday)},
		{"last monday", WeekdayLast(time.Monday)},
		{"the last sun", WeekdayLast(time.Sunday)},

		{"first sunday of october", WeekdayOfMonth(1, time.Sunday, time.October)},
		{"third thursday of november", WeekdayOfMonth(3, time.Thursday, time.November)},
		{"fifth sat of dec", WeekdayOfMonth(5, time.Saturday, time.December)},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := lx.Match(tt.input)
			if err != nil {
				t.Fatalf("Match(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMatchRequiresWholeInput(t *testing.T) {
	lx := lexicon(t, "pt-BR")

	// A recognized prefix with trailing tokens must fail, never resolve to
	// the prefix's expression.
	inputs := []string{
		"hoje xyz",
		"amanhã de manhã",
		"em 3 dias úteis",
		"próxima segunda cedo",
		"xyz hoje",
	}
	for _, input := range inputs {
		if got, err := lx.Match(input); !errors.Is(err, ErrNoMatch) {
			t.Errorf("Match(%q) = %v, %v; want ErrNoMatch", input, got, err)
		}
	}
}

func TestMatchNoMatch(t *testing.T) {
	lx := lexicon(t, "pt-BR")

	inputs := []string{"", "   ", "xyz", "dias", "em dias", "de outubro"}
	for _, input := range inputs {
		if got, err := lx.Match(input); !errors.Is(err, ErrNoMatch) {
			t.Errorf("Match(%q) = %v, %v; want ErrNoMatch", input, got, err)
		}
	}
}

func TestMatchInvalidQuantity(t *testing.T) {
	lx := lexicon(t, "pt-BR")

	// The template skeleton commits, so the quantity error is reported
	// rather than falling through to ErrNoMatch.
	inputs := []string{"em 0 dias", "em -2 dias", "em blah dias", "há 0 semanas"}
	for _, input := range inputs {
		if got, err := lx.Match(input); !errors.Is(err, ErrInvalidQuantity) {
			t.Errorf("Match(%q) = %v, %v; want ErrInvalidQuantity", input, got, err)
		}
	}
}

func TestMatchCaseAndAccentInvariance(t *testing.T) {
	lx := lexicon(t, "pt-BR")

	pairs := [][2]string{
		{"amanhã", "AMANHA"},
		{"próxima segunda", "Proxima SEGUNDA"},
		{"em três dias", "EM TRES DIAS"},
		{"sábado passado", "sabado PASSADO"},
	}
	for _, p := range pairs {
		a, errA := lx.Match(p[0])
		b, errB := lx.Match(p[1])
		if errA != nil || errB != nil {
			t.Errorf("Match(%q)/%q errors: %v, %v", p[0], p[1], errA, errB)
			continue
		}
		if a != b {
			t.Errorf("Match(%q) = %v but Match(%q) = %v", p[0], a, p[1], b)
		}
	}
}

func TestMatchAllExactPhrases(t *testing.T) {
	// Every exact phrase of every built-in lexicon must match itself.
	for locale, lx := range builtins {
		for phrase, want := range lx.phrases {
			got, err := lx.Match(phrase)
			if err != nil {
				t.Errorf("%s: Match(%q): %v", locale, phrase, err)
				continue
			}
			if got != want {
				t.Errorf("%s: Match(%q) = %v, want %v", locale, phrase, got, want)
			}
		}
	}
}

func TestParseUnsupportedLocale(t *testing.T) {
	if _, err := Parse("hoje", "fr"); !errors.Is(err, ErrUnsupportedLocale) {
		t.Errorf("Parse with unknown locale: err = %v, want ErrUnsupportedLocale", err)
	}
	if _, err := Extract("hoje", "fr"); !errors.Is(err, ErrUnsupportedLocale) {
		t.Errorf("Extract with unknown locale: err = %v, want ErrUnsupportedLocale", err)
	}
}

// The reference scenarios: locale pt-BR, reference Tuesday 2024-08-13.
func TestParseAndResolveScenarios(t *testing.T) {
	ref := time.Date(2024, time.August, 13, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		input string
		want  string
	}{
		{"hoje", "2024-08-13"},
		{"amanhã", "2024-08-14"},
		{"ontem", "2024-08-12"},
		{"em 3 dias", "2024-08-16"},
		{"próxima segunda", "2024-08-19"},
		{"depois de amanhã", "2024-08-15"},
		{"sexta passada", "2024-08-09"},
		{"em duas semanas", "2024-08-27"},
		{"daqui a um mês", "2024-09-13"},
		{"primeiro domingo de outubro", "2024-10-06"},
	}
	for _, tt := range tests {
		expr, err := Parse(tt.input, "pt-BR")
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.input, err)
			continue
		}
		if got := Resolve(expr, ref).Format("2006-01-02"); got != tt.want {
			t.Errorf("Resolve(Parse(%q)) = %s, want %s", tt.input, got, tt.want)
		}
	}
}
