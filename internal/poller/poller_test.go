package poller

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/preston-bernstein/baseball-stats-dashboard/internal/metrics"
	"github.com/preston-bernstein/baseball-stats-dashboard/internal/teststubs"
)

func TestPollerLoadsImmediatelyAndOnInterval(t *testing.T) {
	loader := &teststubs.StubLoader{Notify: make(chan struct{})}

	p := New(loader, nil, nil, 5*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p.Start(ctx)

	select {
	case <-loader.Notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for initial load")
	}

	deadline := time.After(500 * time.Millisecond)
	for loader.Calls.Load() < 2 {
		select {
		case <-deadline:
			t.Fatalf("expected periodic reloads, got %d calls", loader.Calls.Load())
		case <-time.After(time.Millisecond):
		}
	}

	cancel()
	_ = p.Stop(context.Background())
}

func TestPollerWithoutIntervalLoadsOnce(t *testing.T) {
	loader := &teststubs.StubLoader{Notify: make(chan struct{})}

	p := New(loader, nil, nil, 0)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p.Start(ctx)
	select {
	case <-loader.Notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for initial load")
	}
	time.Sleep(20 * time.Millisecond)

	if got := loader.Calls.Load(); got != 1 {
		t.Fatalf("expected exactly one load, got %d", got)
	}
	if p.ticker != nil {
		t.Fatalf("expected no ticker without an interval")
	}
	_ = p.Stop(context.Background())
}

func TestPollerRetriesInitialLoadUntilSuccess(t *testing.T) {
	loader := &teststubs.StubLoader{}
	loader.SetErr(errors.New("backend down"))

	p := New(loader, nil, nil, 0)
	p.retry = time.Millisecond
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p.Start(ctx)

	deadline := time.After(500 * time.Millisecond)
	for loader.Calls.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("expected initial load retries, got %d calls", loader.Calls.Load())
		case <-time.After(time.Millisecond):
		}
	}
	if p.Status().IsReady() {
		t.Fatalf("expected not ready while the initial load fails")
	}

	loader.SetErr(nil)
	for !p.Status().IsReady() {
		select {
		case <-deadline:
			t.Fatalf("expected ready after recovery, got %+v", p.Status())
		case <-time.After(time.Millisecond):
		}
	}

	settled := loader.Calls.Load()
	time.Sleep(20 * time.Millisecond)
	if got := loader.Calls.Load(); got != settled {
		t.Fatalf("expected retries to stop after success; before=%d after=%d", settled, got)
	}
	_ = p.Stop(context.Background())
}

func TestPollerStopEndsInitialRetries(t *testing.T) {
	loader := &teststubs.StubLoader{Notify: make(chan struct{})}
	loader.SetErr(errors.New("backend down"))

	p := New(loader, nil, nil, 0)
	p.retry = time.Hour
	p.Start(context.Background())

	select {
	case <-loader.Notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for initial load")
	}
	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("stop returned error: %v", err)
	}
	time.Sleep(10 * time.Millisecond)
	if got := loader.Calls.Load(); got != 1 {
		t.Fatalf("expected a single attempt before stop, got %d", got)
	}
}

// trackedLoader reports loads made outside the poller.
type trackedLoader struct {
	teststubs.StubLoader

	mu   sync.Mutex
	last time.Time
}

func (l *trackedLoader) markLoaded(at time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.last = at
}

func (l *trackedLoader) LastLoad() time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.last
}

func TestPollerStatusCountsLoadsOutsideThePoller(t *testing.T) {
	loader := &trackedLoader{}
	loader.SetErr(errors.New("backend down"))

	p := New(loader, nil, nil, 0)
	if err := p.Reload(context.Background()); err == nil {
		t.Fatalf("expected reload error")
	}
	if p.Status().IsReady() {
		t.Fatalf("expected not ready after failed load")
	}

	loader.markLoaded(time.Now())
	status := p.Status()
	if !status.IsReady() || status.ConsecutiveFailures != 0 || status.LastError != "" {
		t.Fatalf("expected a later outside load to make the poller ready, got %+v", status)
	}
}

func TestPollerStatusKeepsFailuresNewerThanOutsideLoad(t *testing.T) {
	loader := &trackedLoader{}
	loader.markLoaded(time.Now().Add(-time.Minute))
	loader.SetErr(errors.New("backend down"))

	p := New(loader, nil, nil, 0)
	_ = p.Reload(context.Background())

	status := p.Status()
	if status.ConsecutiveFailures != 1 || status.LastError == "" {
		t.Fatalf("expected failure after the outside load to be kept, got %+v", status)
	}
	if status.LastSuccess.IsZero() || !status.IsReady() {
		t.Fatalf("expected earlier outside load to count as a success, got %+v", status)
	}
}

func TestPollerStopsOnContextCancel(t *testing.T) {
	loader := &teststubs.StubLoader{Notify: make(chan struct{})}

	p := New(loader, nil, nil, 5*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	p.Start(ctx)

	select {
	case <-loader.Notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for initial load")
	}

	cancel()
	_ = p.Stop(context.Background())
	time.Sleep(10 * time.Millisecond)

	callsAfterStop := loader.Calls.Load()
	time.Sleep(20 * time.Millisecond)
	if loader.Calls.Load() != callsAfterStop {
		t.Fatalf("expected no additional loads after stop; before=%d after=%d", callsAfterStop, loader.Calls.Load())
	}
}

func TestPollerStopIsIdempotent(t *testing.T) {
	p := New(&teststubs.StubLoader{}, nil, nil, time.Hour)

	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("first stop returned error: %v", err)
	}
	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("second stop returned error: %v", err)
	}
}

func TestPollerStartIsIdempotent(t *testing.T) {
	p := New(&teststubs.StubLoader{}, nil, nil, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p.Start(ctx)
	p.Start(ctx) // should no-op

	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("stop returned error: %v", err)
	}
}

func TestPollerNegativeIntervalDisablesSchedule(t *testing.T) {
	p := New(&teststubs.StubLoader{}, nil, nil, -time.Second)
	if p.interval != 0 {
		t.Fatalf("expected interval 0, got %s", p.interval)
	}
}

func TestPollerStartReturnsWhenAlreadyStarted(t *testing.T) {
	p := New(&teststubs.StubLoader{}, nil, nil, time.Hour)
	p.started = true
	p.Start(context.Background())
	if p.ticker != nil {
		t.Fatalf("expected ticker not to be created when already started")
	}
}

func TestPollerStatusTracksFailuresAndSuccess(t *testing.T) {
	loader := &teststubs.StubLoader{}
	loader.SetErr(errors.New("boom"))

	p := New(loader, nil, nil, 0)
	ctx := context.Background()

	if err := p.Reload(ctx); err == nil {
		t.Fatalf("expected reload error")
	}
	status := p.Status()
	if status.ConsecutiveFailures != 1 {
		t.Fatalf("expected 1 failure, got %d", status.ConsecutiveFailures)
	}
	if status.LastError == "" {
		t.Fatalf("expected last error recorded")
	}
	if !status.LastSuccess.IsZero() {
		t.Fatalf("expected no success recorded yet")
	}
	if status.IsReady() {
		t.Fatalf("expected not ready after failure")
	}

	loader.SetErr(nil)
	if err := p.Reload(ctx); err != nil {
		t.Fatalf("unexpected reload error %v", err)
	}
	status = p.Status()
	if status.ConsecutiveFailures != 0 || status.LastSuccess.IsZero() || !status.IsReady() {
		t.Fatalf("expected ready after success, got %+v", status)
	}
}

func TestStatusNotReadyAfterRepeatedFailures(t *testing.T) {
	s := Status{LastSuccess: time.Now(), ConsecutiveFailures: 3}
	if s.IsReady() {
		t.Fatalf("expected not ready after 3 consecutive failures")
	}
	s.ConsecutiveFailures = 2
	if !s.IsReady() {
		t.Fatalf("expected ready below the failure threshold")
	}
}

func TestPollerLogsOnErrorAndSuccess(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{}))
	loader := &teststubs.StubLoader{}
	loader.SetErr(errors.New("fail"))

	p := New(loader, logger, nil, time.Second)
	_ = p.Reload(context.Background())

	loader.SetErr(nil)
	_ = p.Reload(context.Background())

	out := buf.String()
	if !strings.Contains(out, "player load failed") || !strings.Contains(out, "players refreshed") {
		t.Fatalf("expected failure and success logs, got %q", out)
	}
}

func TestPollerRecordsRefreshMetrics(t *testing.T) {
	rec, _, shutdown, err := metrics.Setup(context.Background(), metrics.TelemetryConfig{Enabled: true})
	if err != nil {
		t.Fatalf("metrics setup: %v", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	p := New(&teststubs.StubLoader{}, logger, rec, 0)
	if err := p.Reload(context.Background()); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
}

func BenchmarkPollerReload(b *testing.B) {
	p := New(&teststubs.StubLoader{}, nil, nil, time.Second)
	ctx := context.Background()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = p.Reload(ctx)
	}
}
