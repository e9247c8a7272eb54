// CLAUDE:SUMMARY Locale-independent relative-date expression type (kind tag + payload) with JSON round-trip.
package reldate

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Kind discriminates the expression variants.
type Kind int

const (
	KindUnknown Kind = iota
	KindToday
	KindTomorrow
	KindYesterday
	KindOffsetDays
	KindOffsetWeeks
	KindOffsetMonths
	KindWeekdayNext
	KindWeekdayLast
	KindWeekdayOfMonth
)

var kindNames = map[Kind]string{
	KindToday:          "today",
	KindTomorrow:       "tomorrow",
	KindYesterday:      "yesterday",
	KindOffsetDays:     "offset_days",
	KindOffsetWeeks:    "offset_weeks",
	KindOffsetMonths:   "offset_months",
	KindWeekdayNext:    "weekday_next",
	KindWeekdayLast:    "weekday_last",
	KindWeekdayOfMonth: "weekday_of_month",
}

var kindValues = invertKindNames()

func invertKindNames() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = k
	}
	return m
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Expr is a parsed relative-date expression. It is locale-independent: once
// produced it carries no reference to the text or locale that generated it.
// Only the payload fields the Kind needs are set; the rest stay zero, so
// expressions compare with ==. The zero value is invalid — use the
// constructors.
type Expr struct {
	Kind    Kind
	N       int          // signed offset for the Offset kinds
	Weekday time.Weekday // for the Weekday kinds
	Ordinal int          // 1-5, occurrence within the month, KindWeekdayOfMonth only
	Month   time.Month   // KindWeekdayOfMonth only
}

// Today returns the expression for the reference date itself.
func Today() Expr { return Expr{Kind: KindToday} }

// Tomorrow returns the expression for one day after the reference date.
func Tomorrow() Expr { return Expr{Kind: KindTomorrow} }

// Yesterday returns the expression for one day before the reference date.
func Yesterday() Expr { return Expr{Kind: KindYesterday} }

// OffsetDays returns the expression for n days from the reference date.
// The sign of n carries the direction.
func OffsetDays(n int) Expr { return Expr{Kind: KindOffsetDays, N: n} }

// OffsetWeeks returns the expression for n weeks from the reference date.
func OffsetWeeks(n int) Expr { return Expr{Kind: KindOffsetWeeks, N: n} }

// OffsetMonths returns the expression for n calendar months from the
// reference date, day-of-month clamped.
func OffsetMonths(n int) Expr { return Expr{Kind: KindOffsetMonths, N: n} }

// WeekdayNext returns the expression for the next occurrence of w, strictly
// after the reference date.
func WeekdayNext(w time.Weekday) Expr { return Expr{Kind: KindWeekdayNext, Weekday: w} }

// WeekdayLast returns the expression for the most recent occurrence of w,
// strictly before the reference date.
func WeekdayLast(w time.Weekday) Expr { return Expr{Kind: KindWeekdayLast, Weekday: w} }

// WeekdayOfMonth returns the expression for the ord-th occurrence (1-5) of w
// in month m of the reference date's year.
func WeekdayOfMonth(ord int, w time.Weekday, m time.Month) Expr {
	return Expr{Kind: KindWeekdayOfMonth, Ordinal: ord, Weekday: w, Month: m}
}

// String renders the expression for logs and CLI output, e.g.
// "offset_days(3)" or "weekday_next(monday)".
func (e Expr) String() string {
	switch e.Kind {
	case KindOffsetDays, KindOffsetWeeks, KindOffsetMonths:
		return fmt.Sprintf("%s(%d)", e.Kind, e.N)
	case KindWeekdayNext, KindWeekdayLast:
		return fmt.Sprintf("%s(%s)", e.Kind, weekdayName(e.Weekday))
	case KindWeekdayOfMonth:
		return fmt.Sprintf("%s(%d, %s, %s)", e.Kind, e.Ordinal, weekdayName(e.Weekday), monthName(e.Month))
	}
	return e.Kind.String()
}

// exprWire is the JSON form: a lowercase kind discriminator plus only the
// payload fields that kind carries.
type exprWire struct {
	Kind    string  `json:"kind"`
	N       *int    `json:"n,omitempty"`
	Weekday *string `json:"weekday,omitempty"`
	Ordinal *int    `json:"ordinal,omitempty"`
	Month   *string `json:"month,omitempty"`
}

// MarshalJSON encodes the expression with its kind as a lowercase string and
// weekday/month payloads as lowercase English names.
func (e Expr) MarshalJSON() ([]byte, error) {
	name, ok := kindNames[e.Kind]
	if !ok {
		return nil, fmt.Errorf("marshal expression: unknown kind %d", int(e.Kind))
	}
	w := exprWire{Kind: name}
	switch e.Kind {
	case KindOffsetDays, KindOffsetWeeks, KindOffsetMonths:
		n := e.N
		w.N = &n
	case KindWeekdayNext, KindWeekdayLast:
		wd := weekdayName(e.Weekday)
		w.Weekday = &wd
	case KindWeekdayOfMonth:
		ord, wd, mo := e.Ordinal, weekdayName(e.Weekday), monthName(e.Month)
		w.Ordinal, w.Weekday, w.Month = &ord, &wd, &mo
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes and validates the wire form produced by MarshalJSON.
func (e *Expr) UnmarshalJSON(data []byte) error {
	var w exprWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	kind, ok := kindValues[w.Kind]
	if !ok {
		return fmt.Errorf("unknown expression kind %q", w.Kind)
	}
	out := Expr{Kind: kind}
	switch kind {
	case KindOffsetDays, KindOffsetWeeks, KindOffsetMonths:
		if w.N == nil {
			return fmt.Errorf("expression kind %q: missing n", w.Kind)
		}
		out.N = *w.N
	case KindWeekdayNext, KindWeekdayLast:
		wd, err := decodeWeekday(w.Weekday, w.Kind)
		if err != nil {
			return err
		}
		out.Weekday = wd
	case KindWeekdayOfMonth:
		wd, err := decodeWeekday(w.Weekday, w.Kind)
		if err != nil {
			return err
		}
		if w.Ordinal == nil || *w.Ordinal < 1 || *w.Ordinal > 5 {
			return fmt.Errorf("expression kind %q: ordinal must be 1-5", w.Kind)
		}
		if w.Month == nil {
			return fmt.Errorf("expression kind %q: missing month", w.Kind)
		}
		mo, ok := parseMonthName(*w.Month)
		if !ok {
			return fmt.Errorf("expression kind %q: unknown month %q", w.Kind, *w.Month)
		}
		out.Weekday, out.Ordinal, out.Month = wd, *w.Ordinal, mo
	}
	*e = out
	return nil
}

func decodeWeekday(s *string, kind string) (time.Weekday, error) {
	if s == nil {
		return 0, fmt.Errorf("expression kind %q: missing weekday", kind)
	}
	wd, ok := parseWeekdayName(*s)
	if !ok {
		return 0, fmt.Errorf("expression kind %q: unknown weekday %q", kind, *s)
	}
	return wd, nil
}

// Canonical lowercase English names, used on the wire and in lexicon specs.
var weekdayNames = [7]string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

var monthNames = [12]string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

func weekdayName(w time.Weekday) string {
	if w < 0 || w > 6 {
		return "unknown"
	}
	return weekdayNames[w]
}

func monthName(m time.Month) string {
	if m < time.January || m > time.December {
		return "unknown"
	}
	return monthNames[m-1]
}

func parseWeekdayName(s string) (time.Weekday, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range weekdayNames {
		if name == s {
			return time.Weekday(i), true
		}
	}
	return 0, false
}

func parseMonthName(s string) (time.Month, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range monthNames {
		if name == s {
			return time.Month(i + 1), true
		}
	}
	return 0, false
}
