package reldate

import (
	"reflect"
	"testing"
	"time"
)

func TestExtractAll(t *testing.T) {
	lx := lexicon(t, "pt-BR")

	tests := []struct {
		name  string
		input string
		want  []Expr
	}{
		{
			"phrases embedded in prose",
			"prefixo hoje meio amanhã sufixo",
			[]Expr{Today(), Tomorrow()},
		},
		{
			"template mid-sentence",
			"a reunião é daqui a 3 dias certo",
			[]Expr{OffsetDays(3)},
		},
		{
			"longest match wins over embedded phrase",
			"volto depois de amanhã tá",
			[]Expr{OffsetDays(2)},
		},
		{
			"multiple templates in order",
			"viajo em 2 semanas e volto próxima sexta",
			[]Expr{OffsetWeeks(2), WeekdayNext(time.Friday)},
		},
		{
			"whole text is one phrase",
			"hoje",
			[]Expr{Today()},
		},
		{
			"nothing recognizable",
			"nada para ver aqui",
			[]Expr{},
		},
		{
			"empty text",
			"",
			[]Expr{},
		},
		{
			"bad quantity token is skipped, not an error",
			"em muitos dias talvez",
			[]Expr{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lx.ExtractAll(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractAll(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractAllEnglish(t *testing.T) {
	lx := lexicon(t, "en")

	got := lx.ExtractAll("see you next monday, or the day after tomorrow at the latest")
	want := []Expr{WeekdayNext(time.Monday), OffsetDays(2)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractAll = %v, want %v", got, want)
	}
}

func TestExtractResumesAfterConsumedTokens(t *testing.T) {
	lx := lexicon(t, "pt-BR")

	// "próxima segunda" must consume both tokens: the bare-weekday template
	// must not also fire on "segunda".
	got := lx.ExtractAll("até próxima segunda então")
	want := []Expr{WeekdayNext(time.Monday)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractAll = %v, want %v", got, want)
	}
}
