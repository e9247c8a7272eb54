package reldate

import "time"

// Resolve maps an expression and a reference date to an absolute date. It is
// a pure function: no clock, no locale, no state. The result is anchored to
// midnight of the reference day in the reference's location; time-of-day on
// the input is ignored. Resolve never fails — an unknown kind yields the
// zero time.Time.
func Resolve(e Expr, ref time.Time) time.Time {
	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	switch e.Kind {
	case KindToday:
		return day
	case KindTomorrow:
		return day.AddDate(0, 0, 1)
	case KindYesterday:
		return day.AddDate(0, 0, -1)
	case KindOffsetDays:
		return day.AddDate(0, 0, e.N)
	case KindOffsetWeeks:
		return day.AddDate(0, 0, 7*e.N)
	case KindOffsetMonths:
		return addMonths(day, e.N)
	case KindWeekdayNext:
		// Strictly future: the same weekday as the reference means +7.
		d := (int(e.Weekday) - int(day.Weekday()) + 7) % 7
		if d == 0 {
			d = 7
		}
		return day.AddDate(0, 0, d)
	case KindWeekdayLast:
		// Strictly past, symmetric to KindWeekdayNext.
		d := (int(day.Weekday()) - int(e.Weekday) + 7) % 7
		if d == 0 {
			d = 7
		}
		return day.AddDate(0, 0, -d)
	case KindWeekdayOfMonth:
		return weekdayOfMonth(day.Year(), e.Month, e.Weekday, e.Ordinal, day.Location())
	}
	return time.Time{}
}

// addMonths moves day by n calendar months, clamping the day-of-month to the
// target month's length. time.AddDate would normalize Jan 31 + 1 month into
// early March; the month must never roll over, so the arithmetic anchors on
// the 1st and the day is reapplied afterwards.
func addMonths(day time.Time, n int) time.Time {
	first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
	target := first.AddDate(0, n, 0)
	d := day.Day()
	if last := daysIn(target.Year(), target.Month()); d > last {
		d = last
	}
	return time.Date(target.Year(), target.Month(), d, 0, 0, 0, 0, day.Location())
}

// daysIn returns the number of days in the given month; day zero of the
// following month normalizes to its last day.
func daysIn(year int, m time.Month) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// weekdayOfMonth returns the ord-th occurrence (1-5) of w in month m of the
// given year. When the requested fifth occurrence does not exist the result
// clamps to the month's last such weekday.
func weekdayOfMonth(year int, m time.Month, w time.Weekday, ord int, loc *time.Location) time.Time {
	first := time.Date(year, m, 1, 0, 0, 0, 0, loc)
	day := 1 + (int(w)-int(first.Weekday())+7)%7 + (ord-1)*7
	if day > daysIn(year, m) {
		day -= 7
	}
	return time.Date(year, m, day, 0, 0, 0, 0, loc)
}
