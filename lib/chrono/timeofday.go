package chrono

import (
	"fmt"
	"strings"
)

// Portion is a named part of the day.
type Portion int

const (
	AM Portion = iota
	PM
	Morning
	Afternoon
	Evening
	Night
)

var portionNames = [...]string{"am", "pm", "morning", "afternoon", "evening", "night"}

// portionBounds holds [begin, end) offsets from midnight in seconds
var portionBounds = [...][2]int64{
	AM:        {0, 12 * secondsPerHour},
	PM:        {12 * secondsPerHour, 24 * secondsPerHour},
	Morning:   {6 * secondsPerHour, 12 * secondsPerHour},
	Afternoon: {13 * secondsPerHour, 17 * secondsPerHour},
	Evening:   {17 * secondsPerHour, 20 * secondsPerHour},
	Night:     {20 * secondsPerHour, 24 * secondsPerHour},
}

// ParsePortion parses a day portion name such as "morning" or "pm".
func ParsePortion(s string) (Portion, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range portionNames {
		if name == s {
			return Portion(i), nil
		}
	}
	return 0, fmt.Errorf("%w: day portion %q", ErrUnknownUnit, s)
}

// hourRangeBase numbers the twelve-hour portions built by HourRange
const hourRangeBase Portion = 100

// DefaultAmbiguousHour starts the portion an unqualified ambiguous time is
// read in: 06:00 to 18:00.
const DefaultAmbiguousHour = 6

// HourRange returns the twelve-hour portion beginning at hour (0-12).
// Inside HourRange(6) an ambiguous "5" reads as 17:00 and "7" as 07:00.
func HourRange(hour int) (Portion, error) {
	if hour < 0 || hour > 12 {
		return 0, fmt.Errorf("%w: hour range start %d out of bounds [0, 12]", ErrInvalidArgument, hour)
	}
	return hourRangeBase + Portion(hour), nil
}

// WithTime returns the portion to use next to an explicit clock time.
// "5 in the morning" means 5 am, and the later named portions mean pm.
func (p Portion) WithTime() Portion {
	switch p {
	case Morning:
		return AM
	case Afternoon, Evening, Night:
		return PM
	default:
		return p
	}
}

func (p Portion) bounds() (begin, end int64, ok bool) {
	if p >= hourRangeBase && p <= hourRangeBase+12 {
		h := int64(p-hourRangeBase) * secondsPerHour
		return h, h + 12*secondsPerHour, true
	}
	if p < 0 || int(p) >= len(portionBounds) {
		return 0, 0, false
	}
	return portionBounds[p][0], portionBounds[p][1], true
}

func (p Portion) width() int64 {
	begin, end, _ := p.bounds()
	return end - begin
}

func (p Portion) String() string {
	if p >= 0 && int(p) < len(portionNames) {
		return portionNames[p]
	}
	if p >= hourRangeBase && p <= hourRangeBase+12 {
		h := int(p - hourRangeBase)
		return fmt.Sprintf("%02d-%02d", h, h+12)
	}
	return fmt.Sprintf("portion(%d)", int(p))
}

// firstTime picks the first occurrence of the tick at or beyond now.
//
// Candidates are tried in a fixed priority order and the first one on the
// right side of now wins:
//
//	future, ambiguous:    today, today+12h, tomorrow
//	future, unambiguous:  today, tomorrow
//	past, ambiguous:      today+12h, today, yesterday+12h
//	past, unambiguous:    today, yesterday
//
// The order decides which of the two daily readings an ambiguous time gets.
func (r *Repeater) firstTime(d Direction) Span {
	const half = secondsPerDay / 2
	midnight := r.now.StartOfDay()
	at := func(day int, offset int64) Instant {
		return midnight.AddDays(day).AddSeconds(offset + r.tick.seconds)
	}

	var candidates []Instant
	switch {
	case d == Future && r.tick.ambiguous:
		candidates = []Instant{at(0, 0), at(0, half), at(1, 0)}
	case d == Future:
		candidates = []Instant{at(0, 0), at(1, 0)}
	case r.tick.ambiguous:
		candidates = []Instant{at(0, half), at(0, 0), at(-1, half)}
	default:
		candidates = []Instant{at(0, 0), at(-1, 0)}
	}

	for _, c := range candidates {
		if (d == Future && !c.Before(r.now)) || (d == Past && !c.After(r.now)) {
			return spanOf(c, widthTime)
		}
	}

	// Only reachable for an ambiguous 24:00 looking back: keep stepping.
	c := candidates[len(candidates)-1]
	for c.After(r.now) {
		c = c.AddSeconds(-r.stride())
	}
	return spanOf(c, widthTime)
}

// firstPortion picks today's portion when it lies wholly ahead of (Future)
// or behind (Past) now, and otherwise the adjacent day's.
func (r *Repeater) firstPortion(d Direction) Span {
	begin, end, _ := r.portion.bounds()
	midnight := r.now.StartOfDay()
	elapsed := r.now.Sub(midnight)

	day := 0
	switch {
	case elapsed < begin:
		if d == Past {
			day = -1
		}
	case elapsed >= end:
		if d == Future {
			day = 1
		}
	default:
		day = int(d.sign())
	}
	return spanOf(midnight.AddDays(day).AddSeconds(begin), end-begin)
}

// thisPortion returns today's portion regardless of direction
func (r *Repeater) thisPortion() Span {
	begin, end, _ := r.portion.bounds()
	return spanOf(r.now.StartOfDay().AddSeconds(begin), end-begin)
}

// offsetPortion finds the portion adjacent to s.Begin() in direction d and
// moves it amount-1 further days, so amount 0 snaps one day short of it.
func (r *Repeater) offsetPortion(s Span, amount int64, d Direction) (Span, error) {
	sub := &Repeater{kind: KindDayPortion, now: s.Begin(), portion: r.portion}
	adjacent := sub.firstPortion(d)
	shift, err := checkedMul((amount-1)*d.sign(), secondsPerDay)
	if err != nil {
		return Span{}, err
	}
	return adjacent.Translate(shift), nil
}

// QualifyTime returns the day portion repeater that narrows the time
// repeater t, for use with Anchor or Within. An explicit portion is mapped
// through WithTime. Without one, an ambiguous tick is read inside
// HourRange(ambiguousHour), and a negative ambiguousHour turns that off.
// The result is nil when nothing qualifies t.
func QualifyTime(t, portion *Repeater, ambiguousHour int) (*Repeater, error) {
	if t == nil || t.kind != KindTime {
		return nil, fmt.Errorf("%w: qualify needs a time repeater", ErrInvalidArgument)
	}
	if portion != nil {
		if portion.kind != KindDayPortion {
			return nil, fmt.Errorf("%w: %s is not a day portion", ErrInvalidArgument, portion)
		}
		return NewDayPortion(portion.portion.WithTime(), t.now)
	}
	if !t.tick.ambiguous || ambiguousHour < 0 {
		return nil, nil
	}
	p, err := HourRange(ambiguousHour)
	if err != nil {
		return nil, err
	}
	return NewDayPortion(p, t.now)
}
