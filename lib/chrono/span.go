package chrono

import "fmt"

// Span is the half-open interval [begin, end) between two instants.
//
// A Span whose begin equals its end is a degenerate instantaneous span. Spans
// are values; every method returns a new Span rather than modifying s.
type Span struct {
	begin, end Instant
}

// NewSpan creates a span between a and b, swapping them if b precedes a.
func NewSpan(a, b Instant) Span {
	if b.Before(a) {
		a, b = b, a
	}
	return Span{begin: a, end: b}
}

// spanOf creates a span of width seconds starting at begin
func spanOf(begin Instant, width int64) Span {
	return NewSpan(begin, begin.AddSeconds(width))
}

// Begin returns the first instant in s.
func (s Span) Begin() Instant { return s.begin }

// End returns the first instant after s.
func (s Span) End() Instant { return s.end }

// DurationSeconds returns the length of s in seconds.
func (s Span) DurationSeconds() int64 {
	return s.end.Sub(s.begin)
}

// Translate moves both ends of s by n seconds.
func (s Span) Translate(n int64) Span {
	return Span{begin: s.begin.AddSeconds(n), end: s.end.AddSeconds(n)}
}

// WithBegin returns s with its begin replaced.
func (s Span) WithBegin(b Instant) Span { return NewSpan(b, s.end) }

// WithEnd returns s with its end replaced.
func (s Span) WithEnd(e Instant) Span { return NewSpan(s.begin, e) }

// Contains reports whether t is within [begin, end).
func (s Span) Contains(t Instant) bool {
	return !t.Before(s.begin) && t.Before(s.end)
}

// Overlaps reports whether s and r intersect for a non-zero duration.
func (s Span) Overlaps(r Span) bool {
	return s.begin.Before(r.end) && s.end.After(r.begin)
}

// Equal reports whether s and r cover the same interval.
func (s Span) Equal(r Span) bool {
	return s.begin.Equal(r.begin) && s.end.Equal(r.end)
}

func (s Span) String() string {
	return fmt.Sprintf("[%s, %s)", s.begin, s.end)
}
