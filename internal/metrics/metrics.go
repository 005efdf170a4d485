package metrics

import (
	"sync"
	"time"
)

type sourceStats struct {
	calls           int
	errors          int
	staleServes     int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about source fetches and
// reconciliation outcomes. It is intentionally simple so it can be swapped for
// a real backend later; when otel instruments are configured it mirrors every
// observation to them.
type Recorder struct {
	mu          sync.Mutex
	stats       map[string]*sourceStats
	matched     int
	unmatched   int
	roomCalls   int
	roomErrors  int
	otel        *otelInstruments
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

// RecordSourceAttempt increments counters for an upstream fetch and stores the
// last observed latency.
func (r *Recorder) RecordSourceAttempt(source string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(source)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordSourceAttempt(source, duration, err)
	}
}

// RecordStaleServe tracks that a cache answered from a stale payload after a
// refresh failure.
func (r *Recorder) RecordStaleServe(source string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.ensureStats(source).staleServes++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordStaleServe(source)
	}
}

// RecordReconcile tracks whether a schedule entry found a results row.
func (r *Recorder) RecordReconcile(matched bool) {
	if r == nil {
		return
	}

	r.mu.Lock()
	if matched {
		r.matched++
	} else {
		r.unmatched++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordReconcile(matched)
	}
}

// RecordStreamRoom tracks one per-room stream detail fetch.
func (r *Recorder) RecordStreamRoom(err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.roomCalls++
	if err != nil {
		r.roomErrors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordStreamRoom(err)
	}
}

// RecordHTTPRequest tracks an inbound request for the logging middleware.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil {
		return
	}
	if r.otel != nil {
		r.otel.recordHTTPRequest(method, path, status, duration)
	}
}

// SourceCalls returns the total fetch attempts recorded for a source.
func (r *Recorder) SourceCalls(source string) int {
	return r.snapshot(source).calls
}

// SourceErrors returns the failed fetch attempts recorded for a source.
func (r *Recorder) SourceErrors(source string) int {
	return r.snapshot(source).errors
}

// StaleServes returns the stale-serve count recorded for a source.
func (r *Recorder) StaleServes(source string) int {
	return r.snapshot(source).staleServes
}

// ReconcileCounts returns the matched/unmatched totals.
func (r *Recorder) ReconcileCounts() (matched, unmatched int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.matched, r.unmatched
}

// StreamRoomCounts returns the room fetch attempt/error totals.
func (r *Recorder) StreamRoomCounts() (calls, errors int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.roomCalls, r.roomErrors
}

func (r *Recorder) snapshot(source string) sourceStats {
	if r == nil {
		return sourceStats{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.stats[source]; ok {
		return *stats
	}
	return sourceStats{}
}

func (r *Recorder) ensureStats(source string) *sourceStats {
	stats, ok := r.stats[source]
	if !ok {
		stats = &sourceStats{}
		r.stats[source] = stats
	}
	return stats
}
