package chrono

import (
	"fmt"
	"regexp"
	"strings"
)

var unitKinds = map[string]Kind{
	"second":    KindSecond,
	"sec":       KindSecond,
	"minute":    KindMinute,
	"min":       KindMinute,
	"hour":      KindHour,
	"day":       KindDay,
	"week":      KindWeek,
	"fortnight": KindFortnight,
	"weekend":   KindWeekend,
	"month":     KindMonth,
	"year":      KindYear,
}

var timeSelector = regexp.MustCompile(`^[0-9:]*[0-9][0-9:]*$`)

// ParseKind maps a plain unit name ("hour", "weeks") to its Kind.
// Named days, named months, day portions and clock times are not kinds on
// their own; use Construct for those.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if k, ok := unitKinds[name]; ok {
		return k, nil
	}
	if k, ok := unitKinds[strings.TrimSuffix(name, "s")]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, name)
}

// Construct builds the repeater named by selector, bound to now.
//
// Accepted selectors, case-insensitive and with an optional plural "s":
// unit names (second, minute, hour, day, week, fortnight, weekend, month,
// year), weekday names or their first three letters, month names or their
// first three letters, day portions (am, pm, morning, afternoon, evening,
// night), and clock times made of digits and colons ("5", "17:30").
func Construct(selector string, now Instant) (*Repeater, error) {
	sel := strings.ToLower(strings.TrimSpace(selector))
	if sel == "" {
		return nil, fmt.Errorf("%w: empty selector", ErrUnknownUnit)
	}

	if timeSelector.MatchString(sel) {
		return NewTime(sel, now)
	}

	for _, name := range []string{sel, strings.TrimSuffix(sel, "s")} {
		if k, ok := unitKinds[name]; ok {
			return New(k, now)
		}
		if wd, ok := lookupName(weekdayNames[:], name); ok {
			return NewDayName(wd, now)
		}
		if m, ok := lookupName(monthNames[:], name); ok {
			return NewMonthName(m+1, now)
		}
		if p, err := ParsePortion(name); err == nil {
			return NewDayPortion(p, now)
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownUnit, selector)
}

// lookupName matches a full name or its three letter abbreviation
func lookupName(names []string, s string) (int, bool) {
	for i, name := range names {
		if s == name || (len(s) == 3 && strings.HasPrefix(name, s)) {
			return i, true
		}
	}
	return 0, false
}
