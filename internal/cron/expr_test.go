package cron

import (
	"testing"
	"time"
)

func mustParse(t *testing.T, s string) Expr {
	t.Helper()
	expr, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}
	return expr
}

func TestParseFormatsBack(t *testing.T) {
	tests := []string{
		"* * * * *",
		"0 9 * * *",
		"*/5 * * * *",
		"30 2 1 6 0",
		"0 0 1 * *",
	}
	for _, s := range tests {
		if got := mustParse(t, s).String(); got != s {
			t.Errorf("roundtrip %q -> %q", s, got)
		}
	}
}

func TestParseAliases(t *testing.T) {
	tests := map[string]string{
		"@hourly":  "0 * * * *",
		"@daily":   "0 0 * * *",
		"@weekly":  "0 0 * * 0",
		"@monthly": "0 0 1 * *",
	}
	for alias, want := range tests {
		if got := mustParse(t, alias).String(); got != want {
			t.Errorf("%s -> %q, want %q", alias, got, want)
		}
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []string{
		"",
		"* * * *",
		"* * * * * *",
		"60 * * * *",
		"* 24 * * *",
		"* * 0 * *",
		"* * 32 * *",
		"* * * 13 *",
		"* * * * 7",
		"*/0 * * * *",
		"*/x * * * *",
		"a * * * *",
		"@yearly",
	}
	for _, s := range tests {
		if _, err := Parse(s); err == nil {
			t.Errorf("Parse(%q) should fail", s)
		}
	}
}

// S5: daily 09:00 schedule from 2024-01-15T08:30:00Z fires at 09:00 the same
// day.
func TestNextAfterDailyNine(t *testing.T) {
	expr := mustParse(t, "0 9 * * *")

	got := expr.NextAfter(1705307400)
	if got != 1705309200 {
		t.Errorf("NextAfter = %d (%s), want 1705309200", got, time.Unix(got, 0).UTC())
	}
}

func TestNextAfterEveryMinute(t *testing.T) {
	expr := mustParse(t, "* * * * *")

	for _, from := range []int64{0, 59, 60, 61, 1705307400, 1705307429} {
		got := expr.NextAfter(from)
		if got <= from {
			t.Errorf("NextAfter(%d) = %d, not in the future", from, got)
		}
		if got < from+60 || got > from+120 {
			t.Errorf("NextAfter(%d) = %d, want within [from+60, from+120]", from, got)
		}
		if got%60 != 0 {
			t.Errorf("NextAfter(%d) = %d, not minute-aligned", from, got)
		}
	}
}

func TestNextAfterEveryFive(t *testing.T) {
	expr := mustParse(t, "*/5 * * * *")

	// 2024-01-15T08:31:00Z -> 08:35.
	got := expr.NextAfter(1705307460)
	if got != 1705307700 {
		t.Errorf("NextAfter = %d", got)
	}
}

func TestNextAfterMonthRollover(t *testing.T) {
	// 2024-01-31T23:30:00Z, monthly on the 1st -> 2024-02-01T00:00:00Z.
	expr := mustParse(t, "0 0 1 * *")
	got := expr.NextAfter(1706743800)
	if got != 1706745600 {
		t.Errorf("NextAfter = %d (%s)", got, time.Unix(got, 0).UTC())
	}
}

func TestNextAfterDowAndDomBothRequired(t *testing.T) {
	// Minute 0, hour 0, dom 15, dow 1 (Monday): both must hold.
	expr := mustParse(t, "0 0 15 * 1")

	// From 2024-01-01: Jan 15 2024 is a Monday.
	got := expr.NextAfter(1704067200)
	want := int64(1705276800) // 2024-01-15T00:00:00Z
	if got != want {
		t.Errorf("NextAfter = %d (%s), want %d", got, time.Unix(got, 0).UTC(), want)
	}

	bt := timestampToBroken(got)
	if bt.day != 15 || bt.dow != 1 {
		t.Errorf("fired at day=%d dow=%d", bt.day, bt.dow)
	}
}

func TestCivilConversionAgainstStdlib(t *testing.T) {
	// Spot checks across leap years, month boundaries, and the epoch.
	stamps := []int64{
		0, 86399, 86400,
		951782400,  // 2000-02-29
		1582934400, // 2020-02-29
		1705307400, // 2024-01-15T08:30
		4102444740, // 2099-12-31T23:59
	}
	for _, ts := range stamps {
		want := time.Unix(ts, 0).UTC()
		bt := timestampToBroken(ts)

		if bt.year != want.Year() || bt.month != int(want.Month()) || bt.day != want.Day() ||
			bt.hour != want.Hour() || bt.minute != want.Minute() || bt.dow != int(want.Weekday()) {
			t.Errorf("timestampToBroken(%d) = %+v, want %s", ts, bt, want)
		}

		if back := brokenToTimestamp(bt); back != ts-ts%60 {
			t.Errorf("brokenToTimestamp(%d) = %d", ts, back)
		}
	}
}
