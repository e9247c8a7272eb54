// CLAUDE:SUMMARY Built-in Brazilian Portuguese lexicon: phrases, templates, number/ordinal words, weekday and month names.
package reldate

// brazilianPortuguese is the built-in pt-BR lexicon. Surface forms are listed
// in their accented spelling; compilation normalizes them, which is also what
// makes "AMANHÃ", "amanha" and "Amanhã" hit the same entry. Hyphenated
// weekday names ("segunda-feira") normalize to their spaced form, so only one
// of the pair is listed.
func brazilianPortuguese() *LexiconSpec {
	return &LexiconSpec{
		Locale:   "pt-BR",
		Name:     "português brasileiro",
		FirstDay: "sunday",
		Phrases: []PhraseSpec{
			{Phrase: "hoje", Expr: ExprSpec{Kind: "today"}},
			{Phrase: "amanhã", Expr: ExprSpec{Kind: "tomorrow"}},
			{Phrase: "ontem", Expr: ExprSpec{Kind: "yesterday"}},
			{Phrase: "depois de amanhã", Expr: ExprSpec{Kind: "offset_days", N: 2}},
			{Phrase: "anteontem", Expr: ExprSpec{Kind: "offset_days", N: -2}},
			{Phrase: "antes de ontem", Expr: ExprSpec{Kind: "offset_days", N: -2}},
			{Phrase: "semana que vem", Expr: ExprSpec{Kind: "offset_weeks", N: 1}},
			{Phrase: "próxima semana", Expr: ExprSpec{Kind: "offset_weeks", N: 1}},
			{Phrase: "semana passada", Expr: ExprSpec{Kind: "offset_weeks", N: -1}},
			{Phrase: "mês que vem", Expr: ExprSpec{Kind: "offset_months", N: 1}},
			{Phrase: "próximo mês", Expr: ExprSpec{Kind: "offset_months", N: 1}},
			{Phrase: "mês passado", Expr: ExprSpec{Kind: "offset_months", N: -1}},
		},
		Templates: []TemplateSpec{
			{Pattern: "{ordinal} {weekday} de {month}", Expr: ExprSpec{Kind: "weekday_of_month"}},

			{Pattern: "próxima {weekday}", Expr: ExprSpec{Kind: "weekday_next"}},
			{Pattern: "próximo {weekday}", Expr: ExprSpec{Kind: "weekday_next"}},
			{Pattern: "próx {weekday}", Expr: ExprSpec{Kind: "weekday_next"}},
			{Pattern: "última {weekday}", Expr: ExprSpec{Kind: "weekday_last"}},
			{Pattern: "último {weekday}", Expr: ExprSpec{Kind: "weekday_last"}},
			{Pattern: "{weekday} passada", Expr: ExprSpec{Kind: "weekday_last"}},
			{Pattern: "{weekday} passado", Expr: ExprSpec{Kind: "weekday_last"}},
			{Pattern: "esta {weekday}", Expr: ExprSpec{Kind: "weekday_next"}},
			{Pattern: "essa {weekday}", Expr: ExprSpec{Kind: "weekday_next"}},
			{Pattern: "esse {weekday}", Expr: ExprSpec{Kind: "weekday_next"}},
			{Pattern: "este {weekday}", Expr: ExprSpec{Kind: "weekday_next"}},
			{Pattern: "{weekday}", Expr: ExprSpec{Kind: "weekday_next"}},

			{Pattern: "daqui a {n} dias", Expr: ExprSpec{Kind: "offset_days"}},
			{Pattern: "daqui a {n} dia", Expr: ExprSpec{Kind: "offset_days"}},
			{Pattern: "daqui {n} dias", Expr: ExprSpec{Kind: "offset_days"}},
			{Pattern: "daqui {n} dia", Expr: ExprSpec{Kind: "offset_days"}},
			{Pattern: "em {n} dias", Expr: ExprSpec{Kind: "offset_days"}},
			{Pattern: "em {n} dia", Expr: ExprSpec{Kind: "offset_days"}},
			{Pattern: "há {n} dias", Expr: ExprSpec{Kind: "offset_days", Sign: -1}},
			{Pattern: "há {n} dia", Expr: ExprSpec{Kind: "offset_days", Sign: -1}},
			{Pattern: "{n} dias atrás", Expr: ExprSpec{Kind: "offset_days", Sign: -1}},
			{Pattern: "{n} dia atrás", Expr: ExprSpec{Kind: "offset_days", Sign: -1}},

			{Pattern: "daqui a {n} semanas", Expr: ExprSpec{Kind: "offset_weeks"}},
			{Pattern: "daqui a {n} semana", Expr: ExprSpec{Kind: "offset_weeks"}},
			{Pattern: "daqui {n} semanas", Expr: ExprSpec{Kind: "offset_weeks"}},
			{Pattern: "daqui {n} semana", Expr: ExprSpec{Kind: "offset_weeks"}},
			{Pattern: "em {n} semanas", Expr: ExprSpec{Kind: "offset_weeks"}},
			{Pattern: "em {n} semana", Expr: ExprSpec{Kind: "offset_weeks"}},
			{Pattern: "há {n} semanas", Expr: ExprSpec{Kind: "offset_weeks", Sign: -1}},
			{Pattern: "há {n} semana", Expr: ExprSpec{Kind: "offset_weeks", Sign: -1}},
			{Pattern: "{n} semanas atrás", Expr: ExprSpec{Kind: "offset_weeks", Sign: -1}},
			{Pattern: "{n} semana atrás", Expr: ExprSpec{Kind: "offset_weeks", Sign: -1}},

			{Pattern: "daqui a {n} meses", Expr: ExprSpec{Kind: "offset_months"}},
			{Pattern: "daqui a {n} mês", Expr: ExprSpec{Kind: "offset_months"}},
			{Pattern: "daqui {n} meses", Expr: ExprSpec{Kind: "offset_months"}},
			{Pattern: "daqui {n} mês", Expr: ExprSpec{Kind: "offset_months"}},
			{Pattern: "em {n} meses", Expr: ExprSpec{Kind: "offset_months"}},
			{Pattern: "em {n} mês", Expr: ExprSpec{Kind: "offset_months"}},
			{Pattern: "há {n} meses", Expr: ExprSpec{Kind: "offset_months", Sign: -1}},
			{Pattern: "há {n} mês", Expr: ExprSpec{Kind: "offset_months", Sign: -1}},
			{Pattern: "{n} meses atrás", Expr: ExprSpec{Kind: "offset_months", Sign: -1}},
			{Pattern: "{n} mês atrás", Expr: ExprSpec{Kind: "offset_months", Sign: -1}},
		},
		Numbers: map[string]int{
			"um": 1, "uma": 1,
			"dois": 2, "duas": 2,
			"três":   3,
			"quatro": 4,
			"cinco":  5,
			"seis":   6,
			"sete":   7,
			"oito":   8,
			"nove":   9,
			"dez":    10,
			"onze":   11,
			"doze":   12,
			"treze":  13,
			"quatorze": 14, "catorze": 14,
			"quinze":    15,
			"dezesseis": 16,
			"dezessete": 17,
			"dezoito":   18,
			"dezenove":  19,
			"vinte":     20,
			"vinte e um": 21, "vinte e uma": 21,
			"vinte e dois": 22, "vinte e duas": 22,
			"vinte e três":   23,
			"vinte e quatro": 24,
			"vinte e cinco":  25,
			"vinte e seis":   26,
			"vinte e sete":   27,
			"vinte e oito":   28,
			"vinte e nove":   29,
			"trinta":         30,
			"trinta e um": 31, "trinta e uma": 31,
		},
		Ordinals: map[string]int{
			"primeiro": 1, "primeira": 1,
			"segundo": 2, "segunda": 2,
			"terceiro": 3, "terceira": 3,
			"quarto": 4, "quarta": 4,
			"quinto": 5, "quinta": 5,
		},
		Weekdays: map[string]string{
			"segunda-feira": "monday", "segunda": "monday", "seg": "monday",
			"terça-feira": "tuesday", "terça": "tuesday", "ter": "tuesday",
			"quarta-feira": "wednesday", "quarta": "wednesday", "qua": "wednesday",
			"quinta-feira": "thursday", "quinta": "thursday", "qui": "thursday",
			"sexta-feira": "friday", "sexta": "friday", "sex": "friday",
			"sábado": "saturday", "sáb": "saturday",
			"domingo": "sunday", "dom": "sunday",
		},
		Months: map[string]string{
			"janeiro": "january", "jan": "january",
			"fevereiro": "february", "fev": "february",
			"março": "march", "mar": "march",
			"abril": "april", "abr": "april",
			"maio": "may", "mai": "may",
			"junho": "june", "jun": "june",
			"julho": "july", "jul": "july",
			"agosto": "august", "ago": "august",
			"setembro": "september", "set": "september",
			"outubro": "october", "out": "october",
			"novembro": "november", "nov": "november",
			"dezembro": "december", "dez": "december",
		},
	}
}
