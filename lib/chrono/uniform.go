package chrono

// Fixed-width units: second, minute, hour and day step by their width; week,
// fortnight and weekend are anchored on a weekday found through a DayName
// sub-repeater and then step by whole weeks.

// firstClock resolves the first span for second, minute, hour and day:
// the unit boundary one unit past the one containing now.
func (r *Repeater) firstClock(d Direction) Span {
	sign := d.sign()
	switch r.kind {
	case KindSecond:
		return spanOf(r.now.AddSeconds(sign), widthSecond)
	case KindMinute:
		return spanOf(r.now.StartOfMinute().AddSeconds(sign*widthMinute), widthMinute)
	case KindHour:
		return spanOf(r.now.StartOfHour().AddSeconds(sign*widthHour), widthHour)
	default:
		return spanOf(r.now.StartOfDay().AddDays(int(sign)), widthDay)
	}
}

// thisClock returns the remainder of the current unit after now (Future),
// the part before now (Past), or the whole unit (None). The cut point is
// truncated to the next finer unit: minutes for an hour, hours for a day.
func (r *Repeater) thisClock(d Direction) Span {
	var start, cut Instant
	var fine, width int64
	switch r.kind {
	case KindSecond:
		return spanOf(r.now, widthSecond)
	case KindMinute:
		start, cut, fine, width = r.now.StartOfMinute(), r.now, widthSecond, widthMinute
	case KindHour:
		start, cut, fine, width = r.now.StartOfHour(), r.now.StartOfMinute(), widthMinute, widthHour
	default:
		start, cut, fine, width = r.now.StartOfDay(), r.now.StartOfHour(), widthHour, widthDay
	}

	switch d {
	case Future:
		return NewSpan(cut.AddSeconds(fine), start.AddSeconds(width))
	case Past:
		return NewSpan(start, cut)
	default:
		return spanOf(start, width)
	}
}

// firstWeekly resolves the first week, fortnight or weekend span.
//
// Going forward it starts on the first anchor day after today. Going back,
// the sub-repeater starts from tomorrow so that today counts as the most
// recent anchor day; a week then skips back one more anchor, a fortnight two.
func (r *Repeater) firstWeekly(d Direction) (Span, error) {
	var begin Instant
	var err error
	switch r.kind {
	case KindWeek:
		if d == Future {
			begin, err = weekdayFrom(r.now, Sunday, Future, 1)
		} else {
			begin, err = weekdayFrom(r.now.AddDays(1), Sunday, Past, 2)
		}
	case KindFortnight:
		if d == Future {
			begin, err = weekdayFrom(r.now, Sunday, Future, 1)
		} else {
			begin, err = weekdayFrom(r.now.AddDays(1), Sunday, Past, 3)
		}
	default:
		if d == Future {
			begin, err = weekdayFrom(r.now, Saturday, Future, 1)
		} else {
			begin, err = weekdayFrom(r.now.AddDays(1), Saturday, Past, 1)
		}
	}
	if err != nil {
		return Span{}, err
	}
	return spanOf(begin, r.Width()), nil
}

// thisWeekly returns the current week, fortnight or weekend.
func (r *Repeater) thisWeekly(d Direction) (Span, error) {
	if r.kind == KindWeekend {
		dir := d
		if dir == None {
			dir = Future
		}
		saturday, err := weekdayFrom(r.now, Saturday, dir, 1)
		if err != nil {
			return Span{}, err
		}
		return spanOf(saturday, widthWeekend), nil
	}

	hour := r.now.StartOfHour()
	switch d {
	case Future:
		weeks := 1
		if r.kind == KindFortnight {
			weeks = 2
		}
		end, err := weekdayFrom(r.now, Sunday, Future, weeks)
		if err != nil {
			return Span{}, err
		}
		return NewSpan(hour.AddSeconds(widthHour), end), nil
	default:
		sunday, err := weekdayFrom(r.now.AddDays(1), Sunday, Past, 1)
		if err != nil {
			return Span{}, err
		}
		if d == Past {
			return NewSpan(sunday, hour), nil
		}
		return spanOf(sunday, r.Width()), nil
	}
}

// offsetWeekend moves s to the weekend amount weekends away. The weekend
// adjacent to s.Begin() in direction d counts as the first, so amount 0
// lands one weekend short of it.
func (r *Repeater) offsetWeekend(s Span, amount int64, d Direction) (Span, error) {
	sub := &Repeater{kind: KindWeekend, now: s.Begin()}
	adjacent, err := sub.Next(d)
	if err != nil {
		return Span{}, err
	}
	shift, err := checkedMul((amount-1)*d.sign(), widthWeek)
	if err != nil {
		return Span{}, err
	}
	return spanOf(adjacent.Begin().AddSeconds(shift), s.DurationSeconds()), nil
}

// weekdayFrom binds a DayName sub-repeater to now, calls Next(d) calls
// times and returns the begin of the last span. The sub-repeater is local,
// so its cursor never leaks into the caller.
func weekdayFrom(now Instant, weekday int, d Direction, calls int) (Instant, error) {
	sub := &Repeater{kind: KindDayName, now: now, weekday: weekday}
	var span Span
	for i := 0; i < calls; i++ {
		var err error
		if span, err = sub.Next(d); err != nil {
			return Instant{}, err
		}
	}
	return span.Begin(), nil
}
