// CLAUDE:SUMMARY Built-in English lexicon: phrases, templates, number/ordinal words, weekday and month names.
package reldate

// english is the built-in en lexicon. Weekday and month vocabularies carry
// the long names plus the three-letter abbreviations; number words run
// through thirty one, hyphenated compounds ("twenty-one") normalizing to
// their spaced form.
func english() *LexiconSpec {
	return &LexiconSpec{
		Locale:   "en",
		Name:     "English",
		FirstDay: "sunday",
		Phrases: []PhraseSpec{
			{Phrase: "today", Expr: ExprSpec{Kind: "today"}},
			{Phrase: "tomorrow", Expr: ExprSpec{Kind: "tomorrow"}},
			{Phrase: "yesterday", Expr: ExprSpec{Kind: "yesterday"}},
			{Phrase: "day after tomorrow", Expr: ExprSpec{Kind: "offset_days", N: 2}},
			{Phrase: "the day after tomorrow", Expr: ExprSpec{Kind: "offset_days", N: 2}},
			{Phrase: "day before yesterday", Expr: ExprSpec{Kind: "offset_days", N: -2}},
			{Phrase: "the day before yesterday", Expr: ExprSpec{Kind: "offset_days", N: -2}},
			{Phrase: "next week", Expr: ExprSpec{Kind: "offset_weeks", N: 1}},
			{Phrase: "last week", Expr: ExprSpec{Kind: "offset_weeks", N: -1}},
			{Phrase: "next month", Expr: ExprSpec{Kind: "offset_months", N: 1}},
			{Phrase: "last month", Expr: ExprSpec{Kind: "offset_months", N: -1}},
		},
		Templates: []TemplateSpec{
			{Pattern: "{ordinal} {weekday} of {month}", Expr: ExprSpec{Kind: "weekday_of_month"}},

			{Pattern: "next {weekday}", Expr: ExprSpec{Kind: "weekday_next"}},
			{Pattern: "the next {weekday}", Expr: ExprSpec{Kind: "weekday_next"}},
			{Pattern: "the following {weekday}", Expr: ExprSpec{Kind: "weekday_next"}},
			{Pattern: "last {weekday}", Expr: ExprSpec{Kind: "weekday_last"}},
			{Pattern: "the last {weekday}", Expr: ExprSpec{Kind: "weekday_last"}},
			{Pattern: "this {weekday}", Expr: ExprSpec{Kind: "weekday_next"}},
			{Pattern: "the current {weekday}", Expr: ExprSpec{Kind: "weekday_next"}},
			{Pattern: "{weekday}", Expr: ExprSpec{Kind: "weekday_next"}},

			{Pattern: "in {n} days", Expr: ExprSpec{Kind: "offset_days"}},
			{Pattern: "in {n} day", Expr: ExprSpec{Kind: "offset_days"}},
			{Pattern: "after {n} days", Expr: ExprSpec{Kind: "offset_days"}},
			{Pattern: "after {n} day", Expr: ExprSpec{Kind: "offset_days"}},
			{Pattern: "{n} days ago", Expr: ExprSpec{Kind: "offset_days", Sign: -1}},
			{Pattern: "{n} day ago", Expr: ExprSpec{Kind: "offset_days", Sign: -1}},

			{Pattern: "in {n} weeks", Expr: ExprSpec{Kind: "offset_weeks"}},
			{Pattern: "in {n} week", Expr: ExprSpec{Kind: "offset_weeks"}},
			{Pattern: "after {n} weeks", Expr: ExprSpec{Kind: "offset_weeks"}},
			{Pattern: "after {n} week", Expr: ExprSpec{Kind: "offset_weeks"}},
			{Pattern: "{n} weeks ago", Expr: ExprSpec{Kind: "offset_weeks", Sign: -1}},
			{Pattern: "{n} week ago", Expr: ExprSpec{Kind: "offset_weeks", Sign: -1}},

			{Pattern: "in {n} months", Expr: ExprSpec{Kind: "offset_months"}},
			{Pattern: "in {n} month", Expr: ExprSpec{Kind: "offset_months"}},
			{Pattern: "after {n} months", Expr: ExprSpec{Kind: "offset_months"}},
			{Pattern: "after {n} month", Expr: ExprSpec{Kind: "offset_months"}},
			{Pattern: "{n} months ago", Expr: ExprSpec{Kind: "offset_months", Sign: -1}},
			{Pattern: "{n} month ago", Expr: ExprSpec{Kind: "offset_months", Sign: -1}},
		},
		Numbers: map[string]int{
			"one":       1,
			"two":       2,
			"three":     3,
			"four":      4,
			"five":      5,
			"six":       6,
			"seven":     7,
			"eight":     8,
			"nine":      9,
			"ten":       10,
			"eleven":    11,
			"twelve":    12,
			"thirteen":  13,
			"fourteen":  14,
			"fifteen":   15,
			"sixteen":   16,
			"seventeen": 17,
			"eighteen":  18,
			"nineteen":  19,
			"twenty":    20,
			"twenty one":   21,
			"twenty two":   22,
			"twenty three": 23,
			"twenty four":  24,
			"twenty five":  25,
			"twenty six":   26,
			"twenty seven": 27,
			"twenty eight": 28,
			"twenty nine":  29,
			"thirty":       30,
			"thirty one":   31,
		},
		Ordinals: map[string]int{
			"first":  1,
			"second": 2,
			"third":  3,
			"fourth": 4,
			"fifth":  5,
		},
		Weekdays: map[string]string{
			"monday": "monday", "mon": "monday",
			"tuesday": "tuesday", "tue": "tuesday",
			"wednesday": "wednesday", "wed": "wednesday",
			"thursday": "thursday", "thu": "thursday",
			"friday": "friday", "fri": "friday",
			"saturday": "saturday", "sat": "saturday",
			"sunday": "sunday", "sun": "sunday",
		},
		Months: map[string]string{
			"january": "january", "jan": "january",
			"february": "february", "feb": "february",
			"march": "march", "mar": "march",
			"april": "april", "apr": "april",
			"may":  "may",
			"june": "june", "jun": "june",
			"july": "july", "jul": "july",
			"august": "august", "aug": "august",
			"september": "september", "sep": "september",
			"october": "october", "oct": "october",
			"november": "november", "nov": "november",
			"december": "december", "dec": "december",
		},
	}
}
