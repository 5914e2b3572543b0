package db

import "time"

// Resolution is one journaled engine call: which unit, which operation, the
// reference instant it was resolved against, and the spans it produced.
type Resolution struct {
	ID        string
	Unit      string
	Operation string    // 'next', 'this', 'offset', 'width'
	Direction string    // 'future', 'past', 'none'
	Reference time.Time // civil instant stored as UTC
	Amount    int64     // offset amount or Next call count
	Width     int64     // nominal unit width in seconds
	CreatedAt time.Time
	Spans     []SpanRecord
}

// SpanRecord is a half-open interval [Begin, End) produced by a resolution.
// Seq orders spans within their resolution, starting at 0.
type SpanRecord struct {
	Seq   int
	Begin time.Time
	End   time.Time
}
