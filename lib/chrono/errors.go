package chrono

import (
	"errors"
	"fmt"
)

// Standard errors
var (
	ErrUnknownUnit        = errors.New("chrono: unknown unit")
	ErrInvalidTimeFormat  = errors.New("chrono: invalid time format")
	ErrInvalidArgument    = errors.New("chrono: invalid argument")
	ErrArithmeticOverflow = errors.New("chrono: arithmetic overflow")
)

// checkedMul returns a*b, or ErrArithmeticOverflow if the product cannot
// represent a shift between two representable instants.
func checkedMul(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	p := a * b
	if p/b != a || p > maxShiftSeconds || p < -maxShiftSeconds {
		return 0, fmt.Errorf("%w: shift of %d x %d seconds", ErrArithmeticOverflow, a, b)
	}
	return p, nil
}

// checkShift rejects calendar shifts (days, months, years) larger than limit.
func checkShift(amount, limit int64, unit string) error {
	if amount > limit || amount < -limit {
		return fmt.Errorf("%w: shift of %d %s", ErrArithmeticOverflow, amount, unit)
	}
	return nil
}

// rangeEnd is the exclusive end of the representable range. A span may end
// there since it does not contain its end.
var rangeEnd = Date(MaxYear+1, 1, 1, 0, 0, 0)

// checkSpan verifies every instant of s is representable.
func checkSpan(s Span) error {
	if !s.begin.inRange() || !(s.end.inRange() || s.end.Equal(rangeEnd)) {
		return fmt.Errorf("%w: span %s outside years %d-%d", ErrArithmeticOverflow, s, MinYear, MaxYear)
	}
	return nil
}
