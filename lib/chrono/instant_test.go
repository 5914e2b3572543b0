package chrono

import (
	"errors"
	"testing"
	"time"
)

func TestDate_Normalizes(t *testing.T) {
	tests := []struct {
		desc string
		got  Instant
		want string
	}{
		{"day past month end", Date(2006, 8, 32, 0, 0, 0), "2006-09-01 00:00:00"},
		{"month 13", Date(2006, 13, 1, 0, 0, 0), "2007-01-01 00:00:00"},
		{"month 0", Date(2006, 0, 1, 0, 0, 0), "2005-12-01 00:00:00"},
		{"hour 24", Date(2006, 12, 31, 24, 0, 0), "2007-01-01 00:00:00"},
		{"negative second", Date(2006, 1, 1, 0, 0, -1), "2005-12-31 23:59:59"},
		{"feb 29 in non-leap year", Date(2007, 2, 29, 0, 0, 0), "2007-03-01 00:00:00"},
		{"feb 29 in leap year", Date(2024, 2, 29, 0, 0, 0), "2024-02-29 00:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if tt.got.String() != tt.want {
				t.Errorf("expected %s, got %s", tt.want, tt.got)
			}
		})
	}
}

func TestInstant_Arithmetic(t *testing.T) {
	base := Date(2007, 1, 31, 10, 30, 0)

	tests := []struct {
		desc string
		got  Instant
		want Instant
	}{
		{"add seconds", base.AddSeconds(90), Date(2007, 1, 31, 10, 31, 30)},
		{"subtract seconds across midnight", Date(2006, 1, 1, 0, 0, 0).AddSeconds(-1), Date(2005, 12, 31, 23, 59, 59)},
		{"subtract more than a day", Date(2006, 1, 2, 0, 0, 0).AddSeconds(-secondsPerDay - 1), Date(2005, 12, 31, 23, 59, 59)},
		{"add a year of seconds", Date(2006, 1, 1, 0, 0, 0).AddSeconds(365*secondsPerDay + 1), Date(2007, 1, 1, 0, 0, 1)},
		{"add days", base.AddDays(1), Date(2007, 2, 1, 10, 30, 0)},
		{"add month rolls day over", base.AddMonths(1), Date(2007, 3, 3, 10, 30, 0)},
		{"add months across year", Date(2006, 12, 16, 0, 0, 0).AddMonths(1), Date(2007, 1, 16, 0, 0, 0)},
		{"subtract months across year", Date(2006, 1, 16, 0, 0, 0).AddMonths(-1), Date(2005, 12, 16, 0, 0, 0)},
		{"add year from leap day", Date(2024, 2, 29, 0, 0, 0).AddYears(1), Date(2025, 3, 1, 0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if !tt.got.Equal(tt.want) {
				t.Errorf("expected %s, got %s", tt.want, tt.got)
			}
		})
	}
}

func TestInstant_Weekday(t *testing.T) {
	// 2006-08-13 is a Sunday
	for i := 0; i < 7; i++ {
		day := Date(2006, 8, 13+i, 12, 0, 0)
		if day.Weekday() != i {
			t.Errorf("%s: expected weekday %d, got %d", day, i, day.Weekday())
		}
	}
}

func TestInstant_Truncation(t *testing.T) {
	i := Date(2006, 8, 16, 14, 35, 20)

	checks := map[string][2]Instant{
		"minute": {i.StartOfMinute(), Date(2006, 8, 16, 14, 35, 0)},
		"hour":   {i.StartOfHour(), Date(2006, 8, 16, 14, 0, 0)},
		"day":    {i.StartOfDay(), Date(2006, 8, 16, 0, 0, 0)},
		"month":  {i.StartOfMonth(), Date(2006, 8, 1, 0, 0, 0)},
		"year":   {i.StartOfYear(), Date(2006, 1, 1, 0, 0, 0)},
	}
	for name, c := range checks {
		if !c[0].Equal(c[1]) {
			t.Errorf("start of %s: expected %s, got %s", name, c[1], c[0])
		}
	}
}

func TestInstant_CompareAndSub(t *testing.T) {
	a := Date(2006, 8, 16, 14, 0, 0)
	b := Date(2006, 8, 16, 15, 0, 0)

	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Errorf("unexpected compare results: %d %d %d", a.Compare(b), b.Compare(a), a.Compare(a))
	}
	if !a.Before(b) || !b.After(a) {
		t.Error("expected a before b")
	}
	if got := b.Sub(a); got != 3600 {
		t.Errorf("expected 3600 seconds, got %d", got)
	}
}

func TestFromTime_DropsZoneAndFraction(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	in := time.Date(2006, 8, 16, 14, 0, 0, 999, loc)

	got := FromTime(in)
	if !got.Equal(Date(2006, 8, 16, 14, 0, 0)) {
		t.Errorf("expected wall clock 2006-08-16 14:00:00, got %s", got)
	}
}

func TestParseInstant(t *testing.T) {
	tests := []struct {
		input string
		want  Instant
	}{
		{"2006-08-16 14:00:00", Date(2006, 8, 16, 14, 0, 0)},
		{"2006-08-16T14:00:00", Date(2006, 8, 16, 14, 0, 0)},
		{"2006-08-16 14:00", Date(2006, 8, 16, 14, 0, 0)},
		{"2006-08-16", Date(2006, 8, 16, 0, 0, 0)},
		{"  2006-08-16  ", Date(2006, 8, 16, 0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseInstant(tt.input)
			if err != nil {
				t.Fatalf("ParseInstant(%q) unexpected error: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}

	if _, err := ParseInstant("next tuesday"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}
