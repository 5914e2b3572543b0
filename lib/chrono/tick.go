package chrono

import (
	"fmt"
	"strconv"
	"strings"
)

// Tick is a clock time expressed as seconds after midnight.
// An ambiguous tick did not say AM or PM, so it may also mean the same
// clock time twelve hours later.
type Tick struct {
	seconds   int64
	ambiguous bool
}

// NewTick creates a tick, rejecting offsets outside a single day.
func NewTick(seconds int64, ambiguous bool) (Tick, error) {
	if seconds < 0 || seconds > secondsPerDay {
		return Tick{}, fmt.Errorf("%w: offset %d outside 0..%d", ErrInvalidTimeFormat, seconds, secondsPerDay)
	}
	return Tick{seconds: seconds, ambiguous: ambiguous}, nil
}

// Seconds returns the offset from midnight
func (t Tick) Seconds() int64 { return t.seconds }

// Ambiguous reports whether the tick lacks an AM/PM qualifier
func (t Tick) Ambiguous() bool { return t.ambiguous }

// ParseTick parses a clock time such as "5", "530", "05:30" or "17:30:15".
//
// Colons are stripped and the remaining digit count decides the layout:
//
//	1-2  H or HH       ambiguous
//	3    H MM          ambiguous
//	4    HH MM         ambiguous only with a colon, a non-zero first digit and HH <= 12
//	5    H MM SS       ambiguous
//	6    HH MM SS      same rule as 4
//
// An ambiguous hour 12 is stored as 0 so that its twin lands on noon.
func ParseTick(text string) (Tick, error) {
	digits := strings.ReplaceAll(text, ":", "")
	if digits == "" {
		return Tick{}, fmt.Errorf("%w: empty time", ErrInvalidTimeFormat)
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return Tick{}, fmt.Errorf("%w: %q contains non-digit characters", ErrInvalidTimeFormat, text)
		}
	}

	var hour, minute, second int
	ambiguous := true
	switch len(digits) {
	case 1, 2:
		hour = atoi(digits)
	case 3:
		hour, minute = atoi(digits[:1]), atoi(digits[1:3])
	case 4:
		hour, minute = atoi(digits[:2]), atoi(digits[2:4])
		ambiguous = strings.Contains(text, ":") && digits[0] != '0' && hour <= 12
	case 5:
		hour, minute, second = atoi(digits[:1]), atoi(digits[1:3]), atoi(digits[3:5])
	case 6:
		hour, minute, second = atoi(digits[:2]), atoi(digits[2:4]), atoi(digits[4:6])
		ambiguous = strings.Contains(text, ":") && digits[0] != '0' && hour <= 12
	default:
		return Tick{}, fmt.Errorf("%w: %q cannot exceed six digits", ErrInvalidTimeFormat, text)
	}

	if minute > 59 || second > 59 {
		return Tick{}, fmt.Errorf("%w: %q has minutes or seconds above 59", ErrInvalidTimeFormat, text)
	}
	if hour > 24 || (hour == 24 && (minute > 0 || second > 0)) {
		return Tick{}, fmt.Errorf("%w: %q has hour above 24", ErrInvalidTimeFormat, text)
	}
	if hour == 12 && ambiguous {
		hour = 0
	}

	return NewTick(int64(hour)*secondsPerHour+int64(minute)*secondsPerMinute+int64(second), ambiguous)
}

// atoi converts a string already checked to be all digits
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func (t Tick) String() string {
	h := t.seconds / secondsPerHour
	m := (t.seconds % secondsPerHour) / secondsPerMinute
	s := t.seconds % secondsPerMinute
	if t.ambiguous {
		return fmt.Sprintf("%02d:%02d:%02d?", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
