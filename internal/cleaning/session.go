package cleaning

import (
	"github.com/google/uuid"

	"github.com/tablewise/tablewise/internal/dataset"
)

// Session tracks a cleaning workflow over one dataset: the original as
// loaded, a working copy that cleaning runs mutate, and the summary of the
// latest run. A Session is single-writer; callers needing concurrency wrap
// it themselves.
type Session struct {
	id       string
	original *dataset.Dataset
	working  *dataset.Dataset
	summary  *Summary
}

// NewSession snapshots ds as the session original. Later changes to ds do
// not leak into the session.
func NewSession(ds *dataset.Dataset) *Session {
	return &Session{
		id:       uuid.NewString(),
		original: ds.Clone(),
		working:  ds.Clone(),
	}
}

func (s *Session) ID() string { return s.id }

// Current returns the working dataset. The caller must not mutate it;
// changes go through Apply.
func (s *Session) Current() *dataset.Dataset { return s.working }

// Summary returns the result of the most recent Apply, or nil before the
// first one.
func (s *Session) Summary() *Summary { return s.summary }

// Apply runs the operations against the working dataset and adopts the
// result. On validation failure the working dataset is unchanged.
func (s *Session) Apply(ops []Operation) (*Summary, error) {
	cleaned, sum, err := Clean(s.working, ops)
	if err != nil {
		return nil, err
	}
	s.working = cleaned
	s.summary = sum
	return sum, nil
}

// Commit promotes the working dataset to be the new original, making the
// cleaning permanent for this session.
func (s *Session) Commit() {
	s.original = s.working.Clone()
}

// Reset discards all uncommitted cleaning and restores the working dataset
// from the original.
func (s *Session) Reset() {
	s.working = s.original.Clone()
	s.summary = nil
}
