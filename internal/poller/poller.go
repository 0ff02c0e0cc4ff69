package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/baseball-stats-dashboard/internal/logging"
	"github.com/preston-bernstein/baseball-stats-dashboard/internal/metrics"
)

// Loader refreshes the player collection from its data source.
type Loader interface {
	Load(ctx context.Context) error
}

// LoadTracker is implemented by loaders that are also reloaded outside the poller,
// such as after a mutation. LastLoad reports the most recent successful load.
type LoadTracker interface {
	LastLoad() time.Time
}

// initialRetryInterval spaces retries of the first load until one succeeds.
const initialRetryInterval = 5 * time.Second

// Poller performs the initial collection load and, when an interval is set, reloads periodically.
// The initial load is retried until it succeeds even when periodic reloads are off.
type Poller struct {
	loader   Loader
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	retry    time.Duration
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the load loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether a load has succeeded and loads are not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller. An interval <= 0 disables periodic reloads.
func New(loader Loader, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval < 0 {
		interval = 0
	}
	return &Poller{
		loader:   loader,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		retry:    initialRetryInterval,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start runs the initial load and then reloads on the interval until the context
// is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	var tick <-chan time.Time
	if p.interval > 0 {
		p.ticker = time.NewTicker(p.interval)
		tick = p.ticker.C
	}
	p.startMu.Unlock()

	go func() {
		p.logInfo("poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		defer p.logInfo("poller stopped")
		defer p.stopTicker()

		if !p.initialLoad(ctx) {
			return
		}
		for {
			select {
			case <-ctx.Done():
				return
			case <-p.done:
				return
			case <-tick:
				_ = p.loadOnce(ctx)
			}
		}
	}()
}

// initialLoad loads until one attempt succeeds, here or through the loader directly.
// It returns false when stopped first.
func (p *Poller) initialLoad(ctx context.Context) bool {
	for {
		if err := p.loadOnce(ctx); err == nil {
			return true
		}
		timer := time.NewTimer(p.retry)
		select {
		case <-ctx.Done():
			timer.Stop()
			return false
		case <-p.done:
			timer.Stop()
			return false
		case <-timer.C:
		}
		if !p.Status().LastSuccess.IsZero() {
			return true
		}
	}
}

// Stop halts the reload loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

func (p *Poller) loadOnce(ctx context.Context) error {
	start := p.now()
	p.recordAttempt(start)
	err := p.loader.Load(ctx)
	elapsed := p.now().Sub(start)
	p.metrics.RecordRefresh(elapsed, err)
	if err != nil {
		logging.Error(p.logger, "player load failed", err, slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()))
		p.recordFailure(err, start)
		return err
	}

	p.recordSuccess(start)
	p.logInfo("players refreshed", logging.FieldDurationMS, elapsed.Milliseconds())
	return nil
}

func (p *Poller) stopTicker() {
	p.startMu.Lock()
	defer p.startMu.Unlock()
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) logInfo(msg string, args ...any) {
	logging.Info(p.logger, msg, args...)
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health. When the loader is a
// LoadTracker, a successful load newer than the poller's last attempt counts too.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	status := p.status
	p.statusMu.RUnlock()

	tracker, ok := p.loader.(LoadTracker)
	if !ok {
		return status
	}
	last := tracker.LastLoad()
	if !last.After(status.LastSuccess) {
		return status
	}
	status.LastSuccess = last
	if !last.Before(status.LastAttempt) {
		status.ConsecutiveFailures = 0
		status.LastError = ""
	}
	return status
}

// Reload runs one load immediately, outside the schedule, and reports its error.
func (p *Poller) Reload(ctx context.Context) error {
	return p.loadOnce(ctx)
}
