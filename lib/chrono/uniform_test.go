package chrono

import "testing"

func TestSecond(t *testing.T) {
	assertNextSequence(t, mustConstruct(t, "second", now), Future,
		span(at(2006, 8, 16, 14, 0, 1), at(2006, 8, 16, 14, 0, 2)),
		span(at(2006, 8, 16, 14, 0, 2), at(2006, 8, 16, 14, 0, 3)),
	)
	assertNextSequence(t, mustConstruct(t, "second", now), Past,
		span(at(2006, 8, 16, 13, 59, 59), at(2006, 8, 16, 14, 0, 0)),
		span(at(2006, 8, 16, 13, 59, 58), at(2006, 8, 16, 13, 59, 59)),
	)

	r := mustConstruct(t, "second", now)
	for _, d := range []Direction{Future, Past, None} {
		assertSpan(t, span(now, now.AddSeconds(1)), mustThis(t, r, d))
	}
}

func TestMinute(t *testing.T) {
	assertNextSequence(t, mustConstruct(t, "minute", now), Future,
		span(at(2006, 8, 16, 14, 1, 0), at(2006, 8, 16, 14, 2, 0)),
		span(at(2006, 8, 16, 14, 2, 0), at(2006, 8, 16, 14, 3, 0)),
	)
	assertNextSequence(t, mustConstruct(t, "minute", now), Past,
		span(at(2006, 8, 16, 13, 59, 0), at(2006, 8, 16, 14, 0, 0)),
		span(at(2006, 8, 16, 13, 58, 0), at(2006, 8, 16, 13, 59, 0)),
	)

	r := mustConstruct(t, "minute", at(2006, 8, 16, 14, 35, 20))
	assertSpan(t, span(at(2006, 8, 16, 14, 35, 21), at(2006, 8, 16, 14, 36, 0)), mustThis(t, r, Future))
	assertSpan(t, span(at(2006, 8, 16, 14, 35, 0), at(2006, 8, 16, 14, 35, 20)), mustThis(t, r, Past))
	assertSpan(t, span(at(2006, 8, 16, 14, 35, 0), at(2006, 8, 16, 14, 36, 0)), mustThis(t, r, None))
}

func TestHour(t *testing.T) {
	assertNextSequence(t, mustConstruct(t, "hour", now), Future,
		span(at(2006, 8, 16, 15, 0, 0), at(2006, 8, 16, 16, 0, 0)),
		span(at(2006, 8, 16, 16, 0, 0), at(2006, 8, 16, 17, 0, 0)),
	)
	assertNextSequence(t, mustConstruct(t, "hour", now), Past,
		span(at(2006, 8, 16, 13, 0, 0), at(2006, 8, 16, 14, 0, 0)),
		span(at(2006, 8, 16, 12, 0, 0), at(2006, 8, 16, 13, 0, 0)),
	)

	r := mustConstruct(t, "hour", at(2006, 8, 16, 14, 35, 20))
	assertSpan(t, span(at(2006, 8, 16, 14, 36, 0), at(2006, 8, 16, 15, 0, 0)), mustThis(t, r, Future))
	assertSpan(t, span(at(2006, 8, 16, 14, 0, 0), at(2006, 8, 16, 14, 35, 0)), mustThis(t, r, Past))
	assertSpan(t, span(at(2006, 8, 16, 14, 0, 0), at(2006, 8, 16, 15, 0, 0)), mustThis(t, r, None))

	s := span(at(2006, 8, 16, 14, 0, 0), at(2006, 8, 16, 15, 0, 0))
	assertSpan(t, span(at(2006, 8, 16, 17, 0, 0), at(2006, 8, 16, 18, 0, 0)), mustOffset(t, r, s, 3, Future))
	assertSpan(t, span(at(2006, 8, 16, 11, 0, 0), at(2006, 8, 16, 12, 0, 0)), mustOffset(t, r, s, 3, Past))
	assertSpan(t, s, mustOffset(t, r, s, 0, Future))
}

func TestHour_RollsOverMidnight(t *testing.T) {
	r := mustConstruct(t, "hour", at(2006, 12, 31, 23, 30, 0))
	assertSpan(t, span(at(2007, 1, 1, 0, 0, 0), at(2007, 1, 1, 1, 0, 0)), mustNext(t, r, Future))
}

func TestDay(t *testing.T) {
	assertNextSequence(t, mustConstruct(t, "day", now), Future,
		span(at(2006, 8, 17, 0, 0, 0), at(2006, 8, 18, 0, 0, 0)),
		span(at(2006, 8, 18, 0, 0, 0), at(2006, 8, 19, 0, 0, 0)),
	)
	assertNextSequence(t, mustConstruct(t, "day", now), Past,
		span(at(2006, 8, 15, 0, 0, 0), at(2006, 8, 16, 0, 0, 0)),
		span(at(2006, 8, 14, 0, 0, 0), at(2006, 8, 15, 0, 0, 0)),
	)

	r := mustConstruct(t, "day", at(2006, 8, 16, 14, 35, 20))
	assertSpan(t, span(at(2006, 8, 16, 15, 0, 0), at(2006, 8, 17, 0, 0, 0)), mustThis(t, r, Future))
	assertSpan(t, span(at(2006, 8, 16, 0, 0, 0), at(2006, 8, 16, 14, 0, 0)), mustThis(t, r, Past))
	assertSpan(t, span(at(2006, 8, 16, 0, 0, 0), at(2006, 8, 17, 0, 0, 0)), mustThis(t, r, None))

	s := span(now, now.AddSeconds(1))
	assertSpan(t, span(at(2006, 8, 18, 14, 0, 0), at(2006, 8, 18, 14, 0, 1)), mustOffset(t, r, s, 2, Future))
}

func TestWeek(t *testing.T) {
	assertNextSequence(t, mustConstruct(t, "week", now), Future,
		span(at(2006, 8, 20, 0, 0, 0), at(2006, 8, 27, 0, 0, 0)),
		span(at(2006, 8, 27, 0, 0, 0), at(2006, 9, 3, 0, 0, 0)),
	)
	assertNextSequence(t, mustConstruct(t, "week", now), Past,
		span(at(2006, 8, 6, 0, 0, 0), at(2006, 8, 13, 0, 0, 0)),
		span(at(2006, 7, 30, 0, 0, 0), at(2006, 8, 6, 0, 0, 0)),
	)

	r := mustConstruct(t, "week", now)
	assertSpan(t, span(at(2006, 8, 16, 15, 0, 0), at(2006, 8, 20, 0, 0, 0)), mustThis(t, r, Future))
	assertSpan(t, span(at(2006, 8, 13, 0, 0, 0), at(2006, 8, 16, 14, 0, 0)), mustThis(t, r, Past))
	assertSpan(t, span(at(2006, 8, 13, 0, 0, 0), at(2006, 8, 20, 0, 0, 0)), mustThis(t, r, None))

	s := span(at(2006, 8, 13, 0, 0, 0), at(2006, 8, 20, 0, 0, 0))
	assertSpan(t, span(at(2006, 7, 30, 0, 0, 0), at(2006, 8, 6, 0, 0, 0)), mustOffset(t, r, s, 2, Past))
}

func TestWeek_FromSunday(t *testing.T) {
	// Sunday counts as the first day of the current week
	r := mustConstruct(t, "week", at(2006, 8, 20, 10, 0, 0))

	assertSpan(t, span(at(2006, 8, 20, 0, 0, 0), at(2006, 8, 27, 0, 0, 0)), mustThis(t, r, None))
	assertSpan(t, span(at(2006, 8, 27, 0, 0, 0), at(2006, 9, 3, 0, 0, 0)), mustNext(t, r, Future))

	r.Reset(at(2006, 8, 20, 10, 0, 0))
	assertSpan(t, span(at(2006, 8, 13, 0, 0, 0), at(2006, 8, 20, 0, 0, 0)), mustNext(t, r, Past))
}

func TestFortnight(t *testing.T) {
	assertNextSequence(t, mustConstruct(t, "fortnight", now), Future,
		span(at(2006, 8, 20, 0, 0, 0), at(2006, 9, 3, 0, 0, 0)),
		span(at(2006, 9, 3, 0, 0, 0), at(2006, 9, 17, 0, 0, 0)),
	)
	assertNextSequence(t, mustConstruct(t, "fortnight", now), Past,
		span(at(2006, 7, 30, 0, 0, 0), at(2006, 8, 13, 0, 0, 0)),
	)

	r := mustConstruct(t, "fortnight", now)
	assertSpan(t, span(at(2006, 8, 16, 15, 0, 0), at(2006, 8, 27, 0, 0, 0)), mustThis(t, r, Future))
	assertSpan(t, span(at(2006, 8, 13, 0, 0, 0), at(2006, 8, 16, 14, 0, 0)), mustThis(t, r, Past))
	assertSpan(t, span(at(2006, 8, 13, 0, 0, 0), at(2006, 8, 27, 0, 0, 0)), mustThis(t, r, None))
}

func TestWeekend(t *testing.T) {
	assertNextSequence(t, mustConstruct(t, "weekend", now), Future,
		span(at(2006, 8, 19, 0, 0, 0), at(2006, 8, 21, 0, 0, 0)),
		span(at(2006, 8, 26, 0, 0, 0), at(2006, 8, 28, 0, 0, 0)),
	)
	assertNextSequence(t, mustConstruct(t, "weekend", now), Past,
		span(at(2006, 8, 12, 0, 0, 0), at(2006, 8, 14, 0, 0, 0)),
		span(at(2006, 8, 5, 0, 0, 0), at(2006, 8, 7, 0, 0, 0)),
	)
}

func TestWeekend_ThisFromWednesday(t *testing.T) {
	r := mustConstruct(t, "weekend", now)

	upcoming := span(at(2006, 8, 19, 0, 0, 0), at(2006, 8, 21, 0, 0, 0))
	assertSpan(t, upcoming, mustThis(t, r, Future))
	assertSpan(t, upcoming, mustThis(t, r, None))
	assertSpan(t, span(at(2006, 8, 12, 0, 0, 0), at(2006, 8, 14, 0, 0, 0)), mustThis(t, r, Past))

	if upcoming.Begin().Weekday() != Saturday || upcoming.DurationSeconds() != widthWeekend {
		t.Errorf("expected a two day span starting Saturday, got %s", upcoming)
	}
}

func TestWeekend_Offset(t *testing.T) {
	r := mustConstruct(t, "weekend", now)
	s := span(now, now.AddSeconds(1))

	tests := []struct {
		desc   string
		amount int64
		d      Direction
		want   Span
	}{
		{"one weekend ahead", 1, Future, span(at(2006, 8, 19, 0, 0, 0), at(2006, 8, 19, 0, 0, 1))},
		{"three weekends ahead", 3, Future, span(at(2006, 9, 2, 0, 0, 0), at(2006, 9, 2, 0, 0, 1))},
		{"one weekend back", 1, Past, span(at(2006, 8, 12, 0, 0, 0), at(2006, 8, 12, 0, 0, 1))},
		{"two weekends back", 2, Past, span(at(2006, 8, 5, 0, 0, 0), at(2006, 8, 5, 0, 0, 1))},
		// amount zero still snaps to a weekend boundary instead of returning s
		{"zero ahead snaps back", 0, Future, span(at(2006, 8, 12, 0, 0, 0), at(2006, 8, 12, 0, 0, 1))},
		{"zero back snaps ahead", 0, Past, span(at(2006, 8, 19, 0, 0, 0), at(2006, 8, 19, 0, 0, 1))},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := mustOffset(t, r, s, tt.amount, tt.d)
			assertSpan(t, tt.want, got)

			again := mustOffset(t, r, s, tt.amount, tt.d)
			assertSpan(t, got, again)
		})
	}
}

func TestZeroOffset_Idempotent(t *testing.T) {
	s := span(at(2006, 8, 16, 14, 0, 0), at(2006, 8, 16, 15, 0, 0))

	for _, sel := range []string{"week", "weekend", "fortnight", "evening"} {
		t.Run(sel, func(t *testing.T) {
			r := mustConstruct(t, sel, now)
			for _, d := range []Direction{Future, Past} {
				a := mustOffset(t, r, s, 0, d)
				b := mustOffset(t, r, s, 0, d)
				assertSpan(t, a, b)
			}
			if _, ok := r.Cursor(); ok {
				t.Error("Offset must not set the cursor")
			}
		})
	}
}
