package metrics

import (
	"sync"
	"time"
)

type sourceStats struct {
	calls           int
	errors          int
	lastOp          string
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about data source calls.
// When built by Setup it also forwards every observation to OpenTelemetry instruments.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*sourceStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*sourceStats),
		otel:  otel,
	}
}

// RecordDataSourceCall increments counters for a data source call and stores the last observed latency.
func (r *Recorder) RecordDataSourceCall(source, op string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.stats[source]
	if !ok {
		stats = &sourceStats{}
		r.stats[source] = stats
	}
	stats.calls++
	stats.lastOp = op
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordDataSourceCall(source, op, duration, err)
	}
}

// DataSourceCalls returns the total calls recorded for a data source.
func (r *Recorder) DataSourceCalls(source string) int {
	return r.Snapshot(source).Calls
}

// DataSourceErrors returns the total failed calls recorded for a data source.
func (r *Recorder) DataSourceErrors(source string) int {
	return r.Snapshot(source).Errors
}

// LastCallLatency returns the last recorded latency for a data source call.
func (r *Recorder) LastCallLatency(source string) time.Duration {
	return r.Snapshot(source).LastCallLatency
}

// Snapshot is a copy of the stats recorded for one data source.
type Snapshot struct {
	Calls           int
	Errors          int
	LastOp          string
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(source string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[source]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		LastOp:          stats.lastOp,
		LastCallLatency: stats.lastCallLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordRefresh tracks collection reload cycles and their failures.
func (r *Recorder) RecordRefresh(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordRefresh(duration, err)
}
