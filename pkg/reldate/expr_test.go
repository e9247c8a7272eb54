package reldate

import (
	"encoding/json"
	"testing"
	"time"
)

func TestExprJSONRoundTrip(t *testing.T) {
	tests := []struct {
		expr Expr
		json string
	}{
		{Today(), `{"kind":"today"}`},
		{Tomorrow(), `{"kind":"tomorrow"}`},
		{Yesterday(), `{"kind":"yesterday"}`},
		{OffsetDays(3), `{"kind":"offset_days","n":3}`},
		{OffsetDays(-2), `{"kind":"offset_days","n":-2}`},
		{OffsetWeeks(1), `{"kind":"offset_weeks","n":1}`},
		{OffsetMonths(-6), `{"kind":"offset_months","n":-6}`},
		{WeekdayNext(time.Monday), `{"kind":"weekday_next","weekday":"monday"}`},
		{WeekdayLast(time.Friday), `{"kind":"weekday_last","weekday":"friday"}`},
		{WeekdayOfMonth(2, time.Sunday, time.October), `{"kind":"weekday_of_month","weekday":"sunday","ordinal":2,"month":"october"}`},
	}
	for _, tt := range tests {
		data, err := json.Marshal(tt.expr)
		if err != nil {
			t.Errorf("marshal %v: %v", tt.expr, err)
			continue
		}
		if string(data) != tt.json {
			t.Errorf("marshal %v = %s, want %s", tt.expr, data, tt.json)
		}
		var back Expr
		if err := json.Unmarshal(data, &back); err != nil {
			t.Errorf("unmarshal %s: %v", data, err)
			continue
		}
		if back != tt.expr {
			t.Errorf("round trip %s = %v, want %v", data, back, tt.expr)
		}
	}
}

func TestExprUnmarshalRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"unknown kind", `{"kind":"fortnight"}`},
		{"offset missing n", `{"kind":"offset_days"}`},
		{"weekday missing", `{"kind":"weekday_next"}`},
		{"unknown weekday", `{"kind":"weekday_next","weekday":"segunda"}`},
		{"ordinal out of range", `{"kind":"weekday_of_month","weekday":"sunday","ordinal":6,"month":"october"}`},
		{"month missing", `{"kind":"weekday_of_month","weekday":"sunday","ordinal":1}`},
		{"unknown month", `{"kind":"weekday_of_month","weekday":"sunday","ordinal":1,"month":"outubro"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e Expr
			if err := json.Unmarshal([]byte(tt.json), &e); err == nil {
				t.Errorf("unmarshal %s succeeded as %v, want error", tt.json, e)
			}
		})
	}
}

func TestExprMarshalRejectsUnknownKind(t *testing.T) {
	if _, err := json.Marshal(Expr{}); err == nil {
		t.Error("marshal of zero Expr succeeded, want error")
	}
}

func TestExprString(t *testing.T) {
	tests := []struct {
		expr Expr
		want string
	}{
		{Today(), "today"},
		{OffsetDays(-3), "offset_days(-3)"},
		{OffsetWeeks(2), "offset_weeks(2)"},
		{WeekdayNext(time.Monday), "weekday_next(monday)"},
		{WeekdayOfMonth(1, time.Sunday, time.October), "weekday_of_month(1, sunday, october)"},
	}
	for _, tt := range tests {
		if got := tt.expr.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
