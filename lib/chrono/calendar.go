package chrono

// Weekdays as returned by Instant.Weekday
const (
	Sunday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayNames = [...]string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

var monthNames = [...]string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// firstDayName scans day by day from the day after (or before) now until the
// weekday matches. Later Next calls step exactly seven days from the cursor,
// which always sits on the right weekday.
func (r *Repeater) firstDayName(d Direction) Span {
	sign := int(d.sign())
	day := r.now.StartOfDay().AddDays(sign)
	for day.Weekday() != r.weekday {
		day = day.AddDays(sign)
	}
	return spanOf(day, widthDay)
}

// firstMonthName finds the nearest occurrence of the target month.
// Future and Past skip the current month; None includes it.
func (r *Repeater) firstMonthName(d Direction) Span {
	year, current := r.now.Year(), r.now.Month()
	switch d {
	case Future:
		if current >= r.month {
			year++
		}
	case Past:
		if current <= r.month {
			year--
		}
	default:
		if current > r.month {
			year++
		}
	}
	begin := Date(year, r.month, 1, 0, 0, 0)
	return NewSpan(begin, begin.AddMonths(1))
}

// thisCalendar returns the current month or year: from tomorrow to the end
// of the unit (Future), from the start of the unit to today (Past), or the
// whole unit (None). Both cut points fall on midnight.
func (r *Repeater) thisCalendar(d Direction) Span {
	start, end := r.now.StartOfMonth(), r.now.StartOfMonth().AddMonths(1)
	if r.kind == KindYear {
		start, end = r.now.StartOfYear(), r.now.StartOfYear().AddYears(1)
	}

	today := r.now.StartOfDay()
	switch d {
	case Future:
		return NewSpan(today.AddDays(1), end)
	case Past:
		return NewSpan(start, today)
	default:
		return NewSpan(start, end)
	}
}

// offsetMonths shifts the month field of both ends of s
func offsetMonths(s Span, amount int64, d Direction) (Span, error) {
	if err := checkShift(amount, int64(MaxYear-MinYear+1)*monthsPerYear, "months"); err != nil {
		return Span{}, err
	}
	n := int(d.sign() * amount)
	return NewSpan(s.Begin().AddMonths(n), s.End().AddMonths(n)), nil
}

// offsetYears shifts the year field of both ends of s
func offsetYears(s Span, amount int64, d Direction) (Span, error) {
	if err := checkShift(amount, int64(MaxYear-MinYear+1), "years"); err != nil {
		return Span{}, err
	}
	n := int(d.sign() * amount)
	return NewSpan(s.Begin().AddYears(n), s.End().AddYears(n)), nil
}
