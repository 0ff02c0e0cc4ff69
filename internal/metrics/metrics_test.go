package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestRecorderTracksDataSourceCallsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordDataSourceCall("playersapi", "list", 10*time.Millisecond, nil)
	rec.RecordDataSourceCall("playersapi", "create", 15*time.Millisecond, errors.New("boom"))

	if got := rec.DataSourceCalls("playersapi"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.DataSourceErrors("playersapi"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.LastCallLatency("playersapi"); got != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", got)
	}

	snap := rec.Snapshot("playersapi")
	if snap.Calls != 2 || snap.Errors != 1 || snap.LastOp != "create" {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestRecorderKeepsSourcesSeparate(t *testing.T) {
	rec := NewRecorder()
	rec.RecordDataSourceCall("playersapi", "list", time.Millisecond, nil)
	rec.RecordDataSourceCall("fixture", "list", time.Millisecond, nil)
	rec.RecordDataSourceCall("fixture", "delete", time.Millisecond, nil)

	if rec.DataSourceCalls("playersapi") != 1 || rec.DataSourceCalls("fixture") != 2 {
		t.Fatalf("expected per-source counts, got %+v / %+v", rec.Snapshot("playersapi"), rec.Snapshot("fixture"))
	}
	if snap := rec.Snapshot("unknown"); snap != (Snapshot{}) {
		t.Fatalf("expected zero snapshot for unknown source, got %+v", snap)
	}
}

func TestRecorderIsSafeForConcurrentUse(t *testing.T) {
	rec := NewRecorder()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec.RecordDataSourceCall("fixture", "list", time.Millisecond, nil)
		}()
	}
	wg.Wait()
	if got := rec.DataSourceCalls("fixture"); got != 20 {
		t.Fatalf("expected 20 calls, got %d", got)
	}
}

func TestNilRecorderIsNoop(t *testing.T) {
	var rec *Recorder
	rec.RecordDataSourceCall("x", "list", time.Millisecond, nil)
	rec.RecordHTTPRequest("GET", "/", 200, time.Millisecond)
	rec.RecordRefresh(time.Millisecond, nil)
	if snap := rec.Snapshot("x"); snap.Calls != 0 {
		t.Fatalf("expected empty snapshot, got %+v", snap)
	}
}
