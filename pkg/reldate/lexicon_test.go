package reldate

import (
	"strings"
	"testing"
	"time"
)

func minimalSpec() *LexiconSpec {
	return &LexiconSpec{
		Locale:   "xx",
		Weekdays: map[string]string{"lunes": "monday"},
		Numbers:  map[string]int{"uno": 1},
	}
}

func TestCompileMinimal(t *testing.T) {
	spec := minimalSpec()
	spec.Phrases = []PhraseSpec{{Phrase: "hoy", Expr: ExprSpec{Kind: "today"}}}
	spec.Templates = []TemplateSpec{{Pattern: "en {n} dias", Expr: ExprSpec{Kind: "offset_days"}}}

	lx, err := Compile(spec)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if lx.Locale() != "xx" || lx.Name() != "xx" {
		t.Errorf("Locale/Name = %q/%q", lx.Locale(), lx.Name())
	}
	if lx.FirstDay() != time.Monday {
		t.Errorf("default FirstDay = %v, want Monday", lx.FirstDay())
	}

	if e, err := lx.Match("hoy"); err != nil || e != Today() {
		t.Errorf("Match(hoy) = %v, %v", e, err)
	}
	if e, err := lx.Match("en uno dias"); err != nil || e != OffsetDays(1) {
		t.Errorf("Match(en uno dias) = %v, %v", e, err)
	}
}

func TestCompileAuthoringChecks(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*LexiconSpec)
		wantErr string
	}{
		{
			"missing locale",
			func(s *LexiconSpec) { s.Locale = "" },
			"missing locale",
		},
		{
			"unknown slot",
			func(s *LexiconSpec) {
				s.Templates = []TemplateSpec{{Pattern: "en {count} dias", Expr: ExprSpec{Kind: "offset_days"}}}
			},
			"unknown slot",
		},
		{
			"slot-free template",
			func(s *LexiconSpec) {
				s.Templates = []TemplateSpec{{Pattern: "pasado manana", Expr: ExprSpec{Kind: "offset_days", N: 2}}}
			},
			"no slots",
		},
		{
			"duplicate slot",
			func(s *LexiconSpec) {
				s.Templates = []TemplateSpec{{Pattern: "{n} y {n}", Expr: ExprSpec{Kind: "offset_days"}}}
			},
			"duplicate slot",
		},
		{
			"overlapping skeletons",
			func(s *LexiconSpec) {
				s.Templates = []TemplateSpec{
					{Pattern: "en {n} dias", Expr: ExprSpec{Kind: "offset_days"}},
					{Pattern: "en {weekday} dias", Expr: ExprSpec{Kind: "weekday_next"}},
				}
			},
			"skeleton",
		},
		{
			"duplicate phrase after normalization",
			func(s *LexiconSpec) {
				s.Phrases = []PhraseSpec{
					{Phrase: "mañana", Expr: ExprSpec{Kind: "tomorrow"}},
					{Phrase: "MANANA", Expr: ExprSpec{Kind: "tomorrow"}},
				}
			},
			"duplicate phrase",
		},
		{
			"unknown kind",
			func(s *LexiconSpec) {
				s.Phrases = []PhraseSpec{{Phrase: "hoy", Expr: ExprSpec{Kind: "fortnight"}}}
			},
			"unknown expression kind",
		},
		{
			"slot not consumed by kind",
			func(s *LexiconSpec) {
				s.Templates = []TemplateSpec{{Pattern: "en {n} dias", Expr: ExprSpec{Kind: "today"}}}
			},
			"not consumed",
		},
		{
			"literal and slot both set",
			func(s *LexiconSpec) {
				s.Templates = []TemplateSpec{{Pattern: "en {n} dias", Expr: ExprSpec{Kind: "offset_days", N: 2}}}
			},
			"mutually exclusive",
		},
		{
			"offset without n",
			func(s *LexiconSpec) {
				s.Phrases = []PhraseSpec{{Phrase: "pronto", Expr: ExprSpec{Kind: "offset_days"}}}
			},
			"non-zero literal n",
		},
		{
			"bad sign",
			func(s *LexiconSpec) {
				s.Templates = []TemplateSpec{{Pattern: "hace {n} dias", Expr: ExprSpec{Kind: "offset_days", Sign: 2}}}
			},
			"sign must be",
		},
		{
			"zero number word",
			func(s *LexiconSpec) { s.Numbers = map[string]int{"cero": 0} },
			"must be >= 1",
		},
		{
			"unknown canonical weekday",
			func(s *LexiconSpec) { s.Weekdays = map[string]string{"lunes": "lundi"} },
			"unknown canonical name",
		},
		{
			"ordinal out of range",
			func(s *LexiconSpec) { s.Ordinals = map[string]int{"sexto": 6} },
			"must be 1-5",
		},
		{
			"unknown first day",
			func(s *LexiconSpec) { s.FirstDay = "lunes" },
			"unknown first_day",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := minimalSpec()
			tt.mutate(spec)
			_, err := Compile(spec)
			if err == nil {
				t.Fatal("Compile succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestCompileTemplateSign(t *testing.T) {
	spec := minimalSpec()
	spec.Templates = []TemplateSpec{
		{Pattern: "hace {n} dias", Expr: ExprSpec{Kind: "offset_days", Sign: -1}},
	}
	lx, err := Compile(spec)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	// Direction is owned by the template, never by the token.
	if e, err := lx.Match("hace 3 dias"); err != nil || e != OffsetDays(-3) {
		t.Errorf("Match(hace 3 dias) = %v, %v; want offset_days(-3)", e, err)
	}
}

func TestBuiltinLexiconsCompile(t *testing.T) {
	for _, locale := range []string{"pt-BR", "en"} {
		lx, err := Builtin(locale)
		if err != nil {
			t.Fatalf("Builtin(%q): %v", locale, err)
		}
		if lx.Locale() != locale {
			t.Errorf("Locale() = %q, want %q", lx.Locale(), locale)
		}
		if len(lx.phrases) == 0 || len(lx.templates) == 0 {
			t.Errorf("%s: empty lexicon (%d phrases, %d templates)", locale, len(lx.phrases), len(lx.templates))
		}
	}
}

func TestMultiTokenVocabularyRuns(t *testing.T) {
	spec := minimalSpec()
	spec.Numbers = map[string]int{"veinte": 20, "veinte y uno": 21}
	spec.Templates = []TemplateSpec{{Pattern: "en {n} dias", Expr: ExprSpec{Kind: "offset_days"}}}

	lx, err := Compile(spec)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	// Longest run first: "veinte y uno" must not stop at "veinte".
	if e, err := lx.Match("en veinte y uno dias"); err != nil || e != OffsetDays(21) {
		t.Errorf("Match = %v, %v; want offset_days(21)", e, err)
	}
	if e, err := lx.Match("en veinte dias"); err != nil || e != OffsetDays(20) {
		t.Errorf("Match = %v, %v; want offset_days(20)", e, err)
	}
}
