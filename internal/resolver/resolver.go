package resolver

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/livinlefevreloca/chrono/internal/db"
	"github.com/livinlefevreloca/chrono/lib/chrono"
)

// Operation names an engine call a request can make
type Operation string

const (
	OpNext   Operation = "next"
	OpThis   Operation = "this"
	OpOffset Operation = "offset"
	OpWidth  Operation = "width"
)

// ParseOperation parses an operation name
func ParseOperation(s string) (Operation, error) {
	switch op := Operation(strings.ToLower(strings.TrimSpace(s))); op {
	case OpNext, OpThis, OpOffset, OpWidth:
		return op, nil
	default:
		return "", fmt.Errorf("%w: unknown operation %q", ErrInvalidRequest, s)
	}
}

// Standard errors
var (
	ErrInvalidRequest = errors.New("resolver: invalid request")
	ErrJournal        = errors.New("resolver: journal write failed")
)

const defaultMaxCount = 10000

// Journal stores resolutions. *db.DB satisfies it.
type Journal interface {
	RecordResolution(res *db.Resolution) error
	ListResolutions(limit int) ([]*db.Resolution, error)
}

// Config holds resolver settings
type Config struct {
	// Context is the direction "this" uses when a request leaves it empty
	Context chrono.Direction
	// FixedNow, when set, replaces the clock as the reference instant
	FixedNow *chrono.Instant
	// Clock supplies the reference instant; defaults to time.Now
	Clock func() time.Time
	// MaxCount bounds Request.Count; defaults to 10000
	MaxCount int
}

// Request describes one resolution
type Request struct {
	Unit      string
	Operation Operation
	// Direction is "future", "past" or "none". Empty picks the operation's
	// default: future for next and offset, the configured context for this.
	Direction string
	// Count is the number of consecutive Next calls, 0 meaning 1
	Count int
	// Amount is the number of units Offset moves
	Amount int64
	// Base is the span Offset moves; nil means the one-second span at now
	Base *chrono.Span
	// Now, when set, overrides the reference instant
	Now *chrono.Instant
}

// Result is a completed resolution
type Result struct {
	ID        string
	Unit      string
	Operation Operation
	Direction chrono.Direction
	Now       chrono.Instant
	Amount    int64
	Width     int64
	Spans     []chrono.Span
}

// Resolver turns requests into repeater calls and journals the outcome
type Resolver struct {
	config  Config
	journal Journal
	logger  *slog.Logger
}

// New creates a resolver. journal may be nil to skip journaling.
func New(config Config, journal Journal, logger *slog.Logger) *Resolver {
	if config.Clock == nil {
		config.Clock = time.Now
	}
	if config.MaxCount <= 0 {
		config.MaxCount = defaultMaxCount
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		config:  config,
		journal: journal,
		logger:  logger,
	}
}

// Resolve validates req, runs it against a fresh repeater and journals it
func (r *Resolver) Resolve(req Request) (*Result, error) {
	now := r.referenceInstant(req.Now)

	direction, err := r.direction(req)
	if err != nil {
		return nil, err
	}
	count := req.Count
	if count == 0 {
		count = 1
	}
	if count < 0 || count > r.config.MaxCount {
		return nil, fmt.Errorf("%w: count %d out of bounds [1, %d]", ErrInvalidRequest, req.Count, r.config.MaxCount)
	}

	rep, err := chrono.Construct(req.Unit, now)
	if err != nil {
		return nil, fmt.Errorf("construct %q: %w", req.Unit, err)
	}

	result := &Result{
		ID:        uuid.NewString(),
		Unit:      rep.String(),
		Operation: req.Operation,
		Direction: direction,
		Now:       now,
		Width:     rep.Width(),
	}

	switch req.Operation {
	case OpNext:
		result.Amount = int64(count)
		for i := 0; i < count; i++ {
			s, err := rep.Next(direction)
			if err != nil {
				return nil, fmt.Errorf("next %s (call %d): %w", rep, i+1, err)
			}
			result.Spans = append(result.Spans, s)
		}
	case OpThis:
		s, err := rep.This(direction)
		if err != nil {
			return nil, fmt.Errorf("this %s: %w", rep, err)
		}
		result.Spans = []chrono.Span{s}
	case OpOffset:
		base := chrono.NewSpan(now, now.AddSeconds(1))
		if req.Base != nil {
			base = *req.Base
		}
		result.Amount = req.Amount
		s, err := rep.Offset(base, req.Amount, direction)
		if err != nil {
			return nil, fmt.Errorf("offset %s by %d: %w", rep, req.Amount, err)
		}
		result.Spans = []chrono.Span{s}
	case OpWidth:
	default:
		return nil, fmt.Errorf("%w: unknown operation %q", ErrInvalidRequest, req.Operation)
	}

	r.logger.Debug("resolved",
		"id", result.ID,
		"unit", result.Unit,
		"operation", string(result.Operation),
		"direction", result.Direction.String(),
		"now", now.String(),
		"spans", len(result.Spans))

	if r.journal != nil {
		if err := r.journal.RecordResolution(toRecord(result)); err != nil {
			r.logger.Error("failed to journal resolution", "id", result.ID, "error", err)
			return nil, fmt.Errorf("%w: %v", ErrJournal, err)
		}
	}

	return result, nil
}

// History returns the newest journaled resolutions
func (r *Resolver) History(limit int) ([]*db.Resolution, error) {
	if r.journal == nil {
		return nil, fmt.Errorf("%w: journal is disabled", ErrInvalidRequest)
	}
	return r.journal.ListResolutions(limit)
}

func (r *Resolver) referenceInstant(override *chrono.Instant) chrono.Instant {
	switch {
	case override != nil:
		return *override
	case r.config.FixedNow != nil:
		return *r.config.FixedNow
	default:
		return chrono.FromTime(r.config.Clock().UTC())
	}
}

func (r *Resolver) direction(req Request) (chrono.Direction, error) {
	if req.Direction == "" {
		switch req.Operation {
		case OpThis:
			return r.config.Context, nil
		case OpWidth:
			return chrono.None, nil
		default:
			return chrono.Future, nil
		}
	}
	d, err := chrono.ParseDirection(req.Direction)
	if err != nil {
		return chrono.None, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return d, nil
}

func toRecord(result *Result) *db.Resolution {
	res := &db.Resolution{
		ID:        result.ID,
		Unit:      result.Unit,
		Operation: string(result.Operation),
		Direction: result.Direction.String(),
		Reference: result.Now.Time(),
		Amount:    result.Amount,
		Width:     result.Width,
	}
	for _, s := range result.Spans {
		res.Spans = append(res.Spans, db.SpanRecord{
			Begin: s.Begin().Time(),
			End:   s.End().Time(),
		})
	}
	return res
}
