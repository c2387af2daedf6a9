package whatsapp

import (
	"context"
	"sync"
	"time"

	"github.com/DIMECULTIVA/nsm-whatsapp-Bot/internal/ai"
	"github.com/DIMECULTIVA/nsm-whatsapp-Bot/internal/leads"
)

// fakeModel scripts one reply or error per call, in order. Calls beyond the
// script succeed with "ok".
type fakeModel struct {
	mu      sync.Mutex
	calls   [][]ai.Turn
	replies []string
	errs    []error
}

func (f *fakeModel) Generate(_ context.Context, turns []ai.Turn) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	i := len(f.calls)
	copied := make([]ai.Turn, len(turns))
	copy(copied, turns)
	f.calls = append(f.calls, copied)

	if i < len(f.errs) && f.errs[i] != nil {
		return "", f.errs[i]
	}
	if i < len(f.replies) {
		return f.replies[i], nil
	}
	return "ok", nil
}

func (f *fakeModel) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type recordingSink struct {
	mu      sync.Mutex
	records []leads.Record
	err     error
}

func (s *recordingSink) Append(_ context.Context, rec leads.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.records = append(s.records, rec)
	return nil
}

// newTestGateway builds a gateway whose sleeps are recorded instead of slept.
func newTestGateway(model ai.ModelClient) (*Gateway, *[]string) {
	g := NewGateway(model, nil)
	var delays []string
	g.sleep = func(d time.Duration) {
		delays = append(delays, d.String())
	}
	return g, &delays
}
