package testutil

import (
	"sync"
	"time"

	"github.com/livinlefevreloca/chrono/internal/db"
)

// MockJournal is an in-memory resolution journal for testing
type MockJournal struct {
	mu          sync.Mutex
	resolutions []*db.Resolution
	writeError  error
	listError   error
	now         func() time.Time
}

func NewMockJournal() *MockJournal {
	return &MockJournal{
		resolutions: make([]*db.Resolution, 0),
		now:         time.Now,
	}
}

func (m *MockJournal) SetWriteError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeError = err
}

func (m *MockJournal) SetListError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listError = err
}

// RecordResolution stores a copy of res, rejecting duplicate IDs like the real journal
func (m *MockJournal) RecordResolution(res *db.Resolution) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.writeError != nil {
		return m.writeError
	}
	for _, existing := range m.resolutions {
		if existing.ID == res.ID {
			return db.ErrDuplicate
		}
	}

	if res.CreatedAt.IsZero() {
		res.CreatedAt = m.now().UTC()
	}
	stored := *res
	stored.Spans = make([]db.SpanRecord, len(res.Spans))
	for i, s := range res.Spans {
		s.Seq = i
		stored.Spans[i] = s
	}
	m.resolutions = append(m.resolutions, &stored)
	return nil
}

// ListResolutions returns the newest limit resolutions, newest first
func (m *MockJournal) ListResolutions(limit int) ([]*db.Resolution, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.listError != nil {
		return nil, m.listError
	}

	out := make([]*db.Resolution, 0, len(m.resolutions))
	for i := len(m.resolutions) - 1; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, m.resolutions[i])
	}
	return out, nil
}

// Resolutions returns everything recorded, oldest first
func (m *MockJournal) Resolutions() []*db.Resolution {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*db.Resolution, len(m.resolutions))
	copy(out, m.resolutions)
	return out
}
