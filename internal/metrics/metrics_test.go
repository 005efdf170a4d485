package metrics

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksSourceAttempts(t *testing.T) {
	rec := NewRecorder()

	rec.RecordSourceAttempt("results", 10*time.Millisecond, nil)
	rec.RecordSourceAttempt("results", 20*time.Millisecond, errors.New("boom"))
	rec.RecordSourceAttempt("schedule", time.Millisecond, nil)

	if got := rec.SourceCalls("results"); got != 2 {
		t.Fatalf("expected 2 results calls, got %d", got)
	}
	if got := rec.SourceErrors("results"); got != 1 {
		t.Fatalf("expected 1 results error, got %d", got)
	}
	if got := rec.SourceCalls("schedule"); got != 1 {
		t.Fatalf("expected 1 schedule call, got %d", got)
	}
	if got := rec.SourceCalls("unknown"); got != 0 {
		t.Fatalf("expected 0 calls for unknown source, got %d", got)
	}
}

func TestRecorderTracksStaleServesAndReconcile(t *testing.T) {
	rec := NewRecorder()

	rec.RecordStaleServe("schedule")
	rec.RecordStaleServe("schedule")
	if got := rec.StaleServes("schedule"); got != 2 {
		t.Fatalf("expected 2 stale serves, got %d", got)
	}

	rec.RecordReconcile(true)
	rec.RecordReconcile(false)
	rec.RecordReconcile(false)
	matched, unmatched := rec.ReconcileCounts()
	if matched != 1 || unmatched != 2 {
		t.Fatalf("expected 1/2, got %d/%d", matched, unmatched)
	}

	rec.RecordStreamRoom(nil)
	rec.RecordStreamRoom(errors.New("room down"))
	calls, roomErrs := rec.StreamRoomCounts()
	if calls != 2 || roomErrs != 1 {
		t.Fatalf("expected 2 calls / 1 error, got %d/%d", calls, roomErrs)
	}
}

func TestRecorderNilSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordSourceAttempt("results", 0, nil)
	rec.RecordStaleServe("results")
	rec.RecordReconcile(true)
	rec.RecordStreamRoom(nil)
	rec.RecordHTTPRequest("GET", "/live", 200, 0)
	if rec.SourceCalls("results") != 0 {
		t.Fatalf("expected zero calls on nil recorder")
	}
}

func TestSetupDisabledReturnsNoHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec == nil {
		t.Fatalf("expected recorder")
	}
	if handler != nil {
		t.Fatalf("expected nil handler when disabled")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected nil shutdown error, got %v", err)
	}
}

func TestSetupEnabledBuildsPrometheusHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: true, ServiceName: "test"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	if rec == nil || handler == nil {
		t.Fatalf("expected recorder and handler")
	}
	rec.RecordSourceAttempt("results", time.Millisecond, nil)
	rec.RecordHTTPRequest("GET", "/live", 200, time.Millisecond)
}
