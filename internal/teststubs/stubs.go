package teststubs

import (
	"context"
	"sync"
	"sync/atomic"
)

// StubLoader is a test double for poller.Loader.
type StubLoader struct {
	mu     sync.Mutex
	err    error
	Calls  atomic.Int32
	Notify chan struct{}
}

// SetErr changes the error returned by subsequent loads.
func (s *StubLoader) SetErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Load returns the configured error while tracking calls. The first call closes Notify.
func (s *StubLoader) Load(ctx context.Context) error {
	_ = ctx
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
