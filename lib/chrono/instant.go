package chrono

import (
	"fmt"
	"strings"
	"time"
)

// Representable year range. Results outside it are reported as ErrArithmeticOverflow.
const (
	MinYear = 1
	MaxYear = 9999
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
	secondsPerWeek   = 7 * secondsPerDay
	monthsPerYear    = 12
)

// maxShiftSeconds bounds the distance between any two representable instants
const maxShiftSeconds = int64(MaxYear-MinYear+1) * 366 * secondsPerDay

// Instant is a point in civil time with second resolution and no zone.
// The zero value is not meaningful; build instants with Date or FromTime.
type Instant struct {
	t time.Time // always UTC, sub-second part always zero
}

// Date builds an Instant from civil fields. Out-of-range fields carry over into
// the next larger field, so day 32 of a 31-day month is day 1 of the next month.
func Date(year, month, day, hour, minute, second int) Instant {
	return Instant{t: time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)}
}

// FromTime takes the wall clock fields of t, dropping its location and sub-second part
func FromTime(t time.Time) Instant {
	return Date(t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second())
}

var instantLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseInstant parses a civil date or date-time.
func ParseInstant(s string) (Instant, error) {
	s = strings.TrimSpace(s)
	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return FromTime(t), nil
		}
	}
	return Instant{}, fmt.Errorf("%w: cannot parse instant %q", ErrInvalidArgument, s)
}

func (i Instant) Year() int   { return i.t.Year() }
func (i Instant) Month() int  { return int(i.t.Month()) }
func (i Instant) Day() int    { return i.t.Day() }
func (i Instant) Hour() int   { return i.t.Hour() }
func (i Instant) Minute() int { return i.t.Minute() }
func (i Instant) Second() int { return i.t.Second() }

// Weekday returns 0 for Sunday through 6 for Saturday
func (i Instant) Weekday() int { return int(i.t.Weekday()) }

// Time returns the instant as a UTC time.Time
func (i Instant) Time() time.Time { return i.t }

// IsZero reports whether i is the zero Instant.
func (i Instant) IsZero() bool { return i.t.IsZero() }

// AddSeconds returns i shifted by n seconds.
// Whole days are applied through the calendar so large shifts cannot overflow time.Duration.
func (i Instant) AddSeconds(n int64) Instant {
	days := n / secondsPerDay
	rem := n % secondsPerDay
	t := i.t.AddDate(0, 0, int(days)).Add(time.Duration(rem) * time.Second)
	return Instant{t: t}
}

// AddDays returns i shifted by n calendar days
func (i Instant) AddDays(n int) Instant {
	return Instant{t: i.t.AddDate(0, 0, n)}
}

// AddMonths adds n to the month field, carrying into the year and letting the
// day overflow into the following month (Jan 31 + 1 month = Mar 3 in 2007).
func (i Instant) AddMonths(n int) Instant {
	return Date(i.Year(), i.Month()+n, i.Day(), i.Hour(), i.Minute(), i.Second())
}

// AddYears adds n to the year field (Feb 29 + 1 year = Mar 1).
func (i Instant) AddYears(n int) Instant {
	return Date(i.Year()+n, i.Month(), i.Day(), i.Hour(), i.Minute(), i.Second())
}

// Sub returns i - j in seconds
func (i Instant) Sub(j Instant) int64 {
	return i.t.Unix() - j.t.Unix()
}

// Compare returns -1, 0 or +1 as i is before, equal to or after j.
func (i Instant) Compare(j Instant) int {
	switch {
	case i.t.Before(j.t):
		return -1
	case i.t.After(j.t):
		return 1
	default:
		return 0
	}
}

func (i Instant) Before(j Instant) bool { return i.t.Before(j.t) }
func (i Instant) After(j Instant) bool  { return i.t.After(j.t) }
func (i Instant) Equal(j Instant) bool  { return i.t.Equal(j.t) }

func (i Instant) StartOfMinute() Instant {
	return Date(i.Year(), i.Month(), i.Day(), i.Hour(), i.Minute(), 0)
}

func (i Instant) StartOfHour() Instant {
	return Date(i.Year(), i.Month(), i.Day(), i.Hour(), 0, 0)
}

// StartOfDay returns midnight of i's day
func (i Instant) StartOfDay() Instant {
	return Date(i.Year(), i.Month(), i.Day(), 0, 0, 0)
}

func (i Instant) StartOfMonth() Instant {
	return Date(i.Year(), i.Month(), 1, 0, 0, 0)
}

func (i Instant) StartOfYear() Instant {
	return Date(i.Year(), 1, 1, 0, 0, 0)
}

// inRange reports whether i lies inside [MinYear, MaxYear]
func (i Instant) inRange() bool {
	y := i.Year()
	return y >= MinYear && y <= MaxYear
}

// String formats i as "2006-01-02 15:04:05"
func (i Instant) String() string {
	return i.t.Format("2006-01-02 15:04:05")
}
