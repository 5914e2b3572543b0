package chrono

import (
	"fmt"
	"strings"
)

// Direction steers repeaters forward, backward, or (for This) around now.
type Direction int

const (
	None Direction = iota
	Future
	Past
)

// ParseDirection parses "future", "past" or "none"
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "future":
		return Future, nil
	case "past":
		return Past, nil
	case "none":
		return None, nil
	default:
		return None, fmt.Errorf("%w: invalid direction %q (must be future, past, or none)", ErrInvalidArgument, s)
	}
}

func (d Direction) String() string {
	switch d {
	case Future:
		return "future"
	case Past:
		return "past"
	case None:
		return "none"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// sign is +1 for Future and -1 otherwise. Callers reject None before using it.
func (d Direction) sign() int64 {
	if d == Future {
		return 1
	}
	return -1
}

// requireLinear rejects directions other than Future and Past
func requireLinear(op string, d Direction) error {
	if d != Future && d != Past {
		return fmt.Errorf("%w: %s requires future or past direction, got %s", ErrInvalidArgument, op, d)
	}
	return nil
}
