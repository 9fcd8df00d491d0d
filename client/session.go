package client

import (
	"context"
	"io"
	"sync"

	"github.com/plantimetable/calstream/calendar"
	"github.com/plantimetable/calstream/errs"
)

// Session renders streams for a single consumer where only the newest render
// counts.
//
// Renders are serialized: writing to w happens under the session lock, so a
// slow writer delays the next Render, including the cancellation of the
// request it supersedes. Fetches of concurrent renders still overlap.
type Session struct {
	fetcher *Fetcher

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
}

// NewSession creates a Session fetching through f.
func NewSession(f *Fetcher) *Session {
	return &Session{fetcher: f}
}

// Render fetches url, lays the points out and renders them with mark into w.
//
// Starting a render cancels the request of the previous one. A render that
// has been superseded by a later call returns errs.ErrSuperseded and writes
// nothing to w, whether or not its own fetch failed.
func (s *Session) Render(ctx context.Context, url string, mark calendar.Mark, w io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	gen := s.begin(cancel)

	points, err := s.fetcher.Fetch(ctx, url)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return errs.ErrSuperseded
	}
	s.cancel = nil

	if err != nil {
		return err
	}

	return mark.Render(w, calendar.NewLayout(points))
}

func (s *Session) begin(cancel context.CancelFunc) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
	s.generation++
	s.cancel = cancel

	return s.generation
}
