package chrono

import "fmt"

// Kind identifies the calendar unit a Repeater walks.
type Kind int

const (
	KindSecond Kind = iota
	KindMinute
	KindHour
	KindDay
	KindWeek
	KindFortnight
	KindWeekend
	KindDayName
	KindDayPortion
	KindMonth
	KindMonthName
	KindYear
	KindTime
)

var kindNames = [...]string{
	KindSecond:     "second",
	KindMinute:     "minute",
	KindHour:       "hour",
	KindDay:        "day",
	KindWeek:       "week",
	KindFortnight:  "fortnight",
	KindWeekend:    "weekend",
	KindDayName:    "dayname",
	KindDayPortion: "dayportion",
	KindMonth:      "month",
	KindMonthName:  "monthname",
	KindYear:       "year",
	KindTime:       "time",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Nominal widths in seconds. Month and year widths are approximations.
const (
	widthSecond    = 1
	widthMinute    = secondsPerMinute
	widthHour      = secondsPerHour
	widthDay       = secondsPerDay
	widthWeek      = secondsPerWeek
	widthFortnight = 2 * secondsPerWeek
	widthWeekend   = 2 * secondsPerDay
	widthMonth     = 30 * secondsPerDay
	widthYear      = 365 * secondsPerDay
	widthTime      = 1
)

// Repeater generates successive spans of one calendar unit relative to a
// fixed reference instant.
//
// The cursor holds the begin of the span most recently returned by Next, so
// repeated Next calls in one direction walk monotonically away from now.
// This and Offset never read or write the cursor. A Repeater is not safe for
// concurrent use; construct one per goroutine.
type Repeater struct {
	kind   Kind
	now    Instant
	cursor *Instant

	weekday int     // KindDayName, 0=Sunday
	month   int     // KindMonthName, 1=January
	portion Portion // KindDayPortion
	tick    Tick    // KindTime
}

// New creates a repeater for a kind that takes no parameter.
// Use NewDayName, NewMonthName, NewDayPortion or NewTime for the others.
func New(kind Kind, now Instant) (*Repeater, error) {
	switch kind {
	case KindSecond, KindMinute, KindHour, KindDay, KindWeek, KindFortnight, KindWeekend, KindMonth, KindYear:
		return &Repeater{kind: kind, now: now}, nil
	case KindDayName, KindMonthName, KindDayPortion, KindTime:
		return nil, fmt.Errorf("%w: %s repeater needs a parameter", ErrInvalidArgument, kind)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownUnit, kind)
	}
}

// NewDayName creates a repeater for a named day of the week (0=Sunday..6=Saturday).
func NewDayName(weekday int, now Instant) (*Repeater, error) {
	if weekday < 0 || weekday > 6 {
		return nil, fmt.Errorf("%w: weekday %d out of bounds [0, 6]", ErrInvalidArgument, weekday)
	}
	return &Repeater{kind: KindDayName, now: now, weekday: weekday}, nil
}

// NewMonthName creates a repeater for a named month (1=January..12=December).
func NewMonthName(month int, now Instant) (*Repeater, error) {
	if month < 1 || month > monthsPerYear {
		return nil, fmt.Errorf("%w: month %d out of bounds [1, 12]", ErrInvalidArgument, month)
	}
	return &Repeater{kind: KindMonthName, now: now, month: month}, nil
}

// NewDayPortion creates a repeater for a part of the day such as the morning.
func NewDayPortion(p Portion, now Instant) (*Repeater, error) {
	if _, _, ok := p.bounds(); !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidArgument, p)
	}
	return &Repeater{kind: KindDayPortion, now: now, portion: p}, nil
}

// NewTime creates a time-of-day repeater from a clock string (see ParseTick).
// Malformed strings fail here, never at resolution time.
func NewTime(text string, now Instant) (*Repeater, error) {
	tick, err := ParseTick(text)
	if err != nil {
		return nil, err
	}
	return NewTimeTick(tick, now), nil
}

// NewTimeTick creates a time-of-day repeater from an already parsed tick.
func NewTimeTick(tick Tick, now Instant) *Repeater {
	return &Repeater{kind: KindTime, now: now, tick: tick}
}

// Kind returns the unit this repeater walks.
func (r *Repeater) Kind() Kind { return r.kind }

// Now returns the reference instant.
func (r *Repeater) Now() Instant { return r.now }

// Cursor returns the begin of the span last returned by Next, if any.
func (r *Repeater) Cursor() (Instant, bool) {
	if r.cursor == nil {
		return Instant{}, false
	}
	return *r.cursor, true
}

// Reset rebinds the repeater to a new reference instant and clears the cursor.
func (r *Repeater) Reset(now Instant) {
	r.now = now
	r.cursor = nil
}

// Width returns the nominal length of one unit in seconds.
// It is exact for all kinds except Month, MonthName and Year.
func (r *Repeater) Width() int64 {
	switch r.kind {
	case KindSecond:
		return widthSecond
	case KindMinute:
		return widthMinute
	case KindHour:
		return widthHour
	case KindDay, KindDayName:
		return widthDay
	case KindWeek:
		return widthWeek
	case KindFortnight:
		return widthFortnight
	case KindWeekend:
		return widthWeekend
	case KindDayPortion:
		return r.portion.width()
	case KindMonth, KindMonthName:
		return widthMonth
	case KindYear:
		return widthYear
	case KindTime:
		return widthTime
	}
	return 0
}

// stride is the distance between the begins of consecutive spans for kinds
// that advance by a fixed number of seconds.
func (r *Repeater) stride() int64 {
	switch r.kind {
	case KindDayName, KindWeekend:
		return widthWeek
	case KindDayPortion:
		return secondsPerDay
	case KindTime:
		if r.tick.ambiguous {
			return secondsPerDay / 2
		}
		return secondsPerDay
	default:
		return r.Width()
	}
}

// Next returns the next span in direction d and advances the cursor to its
// begin. The first call resolves relative to now; later calls step from the
// cursor. On error the cursor is left unchanged.
func (r *Repeater) Next(d Direction) (Span, error) {
	if err := requireLinear("next", d); err != nil {
		return Span{}, err
	}

	var span Span
	var err error
	if r.cursor == nil {
		span, err = r.first(d)
	} else {
		span = r.step(*r.cursor, d)
	}
	if err != nil {
		return Span{}, err
	}
	if err := checkSpan(span); err != nil {
		return Span{}, err
	}

	begin := span.Begin()
	r.cursor = &begin
	return span, nil
}

// This returns the span of the current unit as seen from now in direction d.
// None is accepted; kinds without a distinct "none" reading treat it as Future.
func (r *Repeater) This(d Direction) (Span, error) {
	if d != Future && d != Past && d != None {
		return Span{}, fmt.Errorf("%w: unknown direction %s", ErrInvalidArgument, d)
	}

	var span Span
	var err error
	switch r.kind {
	case KindSecond, KindMinute, KindHour, KindDay:
		span = r.thisClock(d)
	case KindWeek, KindFortnight, KindWeekend:
		span, err = r.thisWeekly(d)
	case KindDayName, KindTime:
		if d == None {
			d = Future
		}
		span, err = r.first(d)
	case KindDayPortion:
		span = r.thisPortion()
	case KindMonth, KindYear:
		span = r.thisCalendar(d)
	case KindMonthName:
		if d == Past {
			span, err = r.first(Past)
		} else {
			span = r.firstMonthName(None)
		}
	default:
		return Span{}, fmt.Errorf("%w: %s", ErrUnknownUnit, r.kind)
	}
	if err != nil {
		return Span{}, err
	}
	if err := checkSpan(span); err != nil {
		return Span{}, err
	}
	return span, nil
}

// Offset moves s by amount units in direction d. It does not depend on or
// change the cursor. Amount zero is allowed; for Weekend and DayPortion it
// snaps s to the most recent boundary instead of returning s unchanged.
func (r *Repeater) Offset(s Span, amount int64, d Direction) (Span, error) {
	if amount < 0 {
		return Span{}, fmt.Errorf("%w: negative offset amount %d", ErrInvalidArgument, amount)
	}
	if err := requireLinear("offset", d); err != nil {
		return Span{}, err
	}

	var out Span
	var err error
	switch r.kind {
	case KindWeekend:
		out, err = r.offsetWeekend(s, amount, d)
	case KindDayPortion:
		out, err = r.offsetPortion(s, amount, d)
	case KindMonth:
		out, err = offsetMonths(s, amount, d)
	case KindMonthName, KindYear:
		out, err = offsetYears(s, amount, d)
	default:
		var shift int64
		shift, err = checkedMul(d.sign()*amount, r.stride())
		if err == nil {
			out = s.Translate(shift)
		}
	}
	if err != nil {
		return Span{}, err
	}
	if err := checkSpan(out); err != nil {
		return Span{}, err
	}
	return out, nil
}

// first resolves the initial span relative to now, ignoring the cursor.
func (r *Repeater) first(d Direction) (Span, error) {
	switch r.kind {
	case KindSecond, KindMinute, KindHour, KindDay:
		return r.firstClock(d), nil
	case KindWeek, KindFortnight, KindWeekend:
		return r.firstWeekly(d)
	case KindDayName:
		return r.firstDayName(d), nil
	case KindDayPortion:
		return r.firstPortion(d), nil
	case KindMonth:
		begin := r.now.StartOfMonth().AddMonths(int(d.sign()))
		return NewSpan(begin, begin.AddMonths(1)), nil
	case KindMonthName:
		return r.firstMonthName(d), nil
	case KindYear:
		begin := Date(r.now.Year()+int(d.sign()), 1, 1, 0, 0, 0)
		return NewSpan(begin, begin.AddYears(1)), nil
	case KindTime:
		return r.firstTime(d), nil
	}
	return Span{}, fmt.Errorf("%w: %s", ErrUnknownUnit, r.kind)
}

// step returns the span one unit away from cursor in direction d.
func (r *Repeater) step(cursor Instant, d Direction) Span {
	switch r.kind {
	case KindMonth:
		begin := cursor.StartOfMonth().AddMonths(int(d.sign()))
		return NewSpan(begin, begin.AddMonths(1))
	case KindMonthName:
		begin := cursor.AddYears(int(d.sign()))
		return NewSpan(begin, begin.AddMonths(1))
	case KindYear:
		begin := cursor.StartOfYear().AddYears(int(d.sign()))
		return NewSpan(begin, begin.AddYears(1))
	default:
		return spanOf(cursor.AddSeconds(d.sign()*r.stride()), r.Width())
	}
}

func (r *Repeater) String() string {
	switch r.kind {
	case KindDayName:
		return fmt.Sprintf("%s(%s)", r.kind, weekdayNames[r.weekday])
	case KindMonthName:
		return fmt.Sprintf("%s(%s)", r.kind, monthNames[r.month-1])
	case KindDayPortion:
		return fmt.Sprintf("%s(%s)", r.kind, r.portion)
	case KindTime:
		return fmt.Sprintf("%s(%s)", r.kind, r.tick)
	default:
		return r.kind.String()
	}
}
