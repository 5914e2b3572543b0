package chrono

import (
	"fmt"
	"sort"
)

// Grabber selects which occurrence of a repeater an expression refers to:
// "last week", "this week", "next week".
type Grabber int

const (
	GrabLast Grabber = iota
	GrabThis
	GrabNext
)

func (g Grabber) String() string {
	switch g {
	case GrabLast:
		return "last"
	case GrabThis:
		return "this"
	case GrabNext:
		return "next"
	default:
		return fmt.Sprintf("grabber(%d)", int(g))
	}
}

// Anchor resolves r relative to its reference instant according to g.
// Last and Next advance the cursor; This uses context and leaves it alone.
//
// Inner repeaters narrow the result through Within ("friday this week",
// "5pm next day"). The widest of all the repeaters is the one g applies to,
// and with inner repeaters present This reads it with None. ok is false when
// an inner repeater has no occurrence inside the span around it.
func Anchor(r *Repeater, g Grabber, context Direction, inner ...*Repeater) (span Span, ok bool, err error) {
	reps := append([]*Repeater{r}, inner...)
	sort.SliceStable(reps, func(i, j int) bool { return reps[i].Width() > reps[j].Width() })
	head, rest := reps[0], reps[1:]
	if len(rest) > 0 {
		context = None
	}

	switch g {
	case GrabLast:
		span, err = head.Next(Past)
	case GrabThis:
		span, err = head.This(context)
	case GrabNext:
		span, err = head.Next(Future)
	default:
		return Span{}, false, fmt.Errorf("%w: invalid grabber %s", ErrInvalidArgument, g)
	}
	if err != nil {
		return Span{}, false, err
	}
	return Within(rest, span, Future)
}

// Within narrows outer through each repeater in turn. A repeater is rebound
// to the begin of the current span (Future) or its end (Past) and read with
// This(None); the result replaces the current span when the two overlap.
// Rebinding discards the repeaters' cursors. ok is false as soon as one
// repeater misses.
func Within(repeaters []*Repeater, outer Span, d Direction) (Span, bool, error) {
	if err := requireLinear("within", d); err != nil {
		return Span{}, false, err
	}
	for _, r := range repeaters {
		anchor := outer.Begin()
		if d == Past {
			anchor = outer.End()
		}
		r.Reset(anchor)
		inner, err := r.This(None)
		if err != nil {
			return Span{}, false, err
		}
		if !inner.Overlaps(outer) {
			return Span{}, false, nil
		}
		outer = inner
	}
	return outer, true, nil
}

// Nth returns the ordinal-th occurrence of r inside outer ("3rd wednesday in
// november"). The repeater is rebound to one second before outer begins, so
// its previous cursor is discarded. ok is false when the occurrence would
// begin at or after the end of outer.
func Nth(r *Repeater, ordinal int, outer Span) (span Span, ok bool, err error) {
	if ordinal < 1 {
		return Span{}, false, fmt.Errorf("%w: ordinal %d must be at least 1", ErrInvalidArgument, ordinal)
	}

	r.Reset(outer.Begin().AddSeconds(-1))
	for i := 0; i < ordinal; i++ {
		span, err = r.Next(Future)
		if err != nil {
			return Span{}, false, err
		}
		if !span.Begin().Before(outer.End()) {
			return Span{}, false, nil
		}
	}
	return span, true, nil
}

// Shift offsets the one-second span at r's reference instant by amount
// units ("3 hours ago", "2 weeks from now").
func Shift(r *Repeater, amount int64, d Direction) (Span, error) {
	return r.Offset(spanOf(r.Now(), widthSecond), amount, d)
}
