package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksProviderAttemptsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordProviderAttempt("scoreboard", 10*time.Millisecond, nil)
	rec.RecordProviderAttempt("scoreboard", 15*time.Millisecond, errors.New("boom"))

	if got := rec.ProviderCalls("scoreboard"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.ProviderErrors("scoreboard"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.LastCallLatency("scoreboard"); got != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", got)
	}

	snap := rec.Snapshot("scoreboard")
	if snap.Calls != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestRecorderTracksRateLimits(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRateLimit("scoreboard", 5*time.Second)
	rec.RecordRateLimit("scoreboard", 0)

	if got := rec.RateLimitHits("scoreboard"); got != 2 {
		t.Fatalf("expected 2 rate limit hits, got %d", got)
	}
	if got := rec.LastRetryAfter("scoreboard"); got != 5*time.Second {
		t.Fatalf("expected last retry-after to be 5s, got %s", got)
	}
}

func TestRecorderTracksCodecTraffic(t *testing.T) {
	rec := NewRecorder()
	rec.RecordEncode()
	rec.RecordEncode()
	rec.RecordDecode(nil)
	rec.RecordDecode(errors.New("bad token"))

	snap := rec.Codec()
	if snap.Encodes != 2 {
		t.Fatalf("expected 2 encodes, got %d", snap.Encodes)
	}
	if snap.Decodes != 2 {
		t.Fatalf("expected 2 decodes, got %d", snap.Decodes)
	}
	if snap.DecodeErrors != 1 {
		t.Fatalf("expected 1 decode error, got %d", snap.DecodeErrors)
	}
}

func TestRecorderTracksPickActivity(t *testing.T) {
	rec := NewRecorder()
	rec.RecordPick()
	rec.RecordPick()
	rec.RecordClear()

	snap := rec.Picks()
	if snap.Applied != 2 {
		t.Fatalf("expected 2 picks applied, got %d", snap.Applied)
	}
	if snap.Cleared != 1 {
		t.Fatalf("expected 1 pick cleared, got %d", snap.Cleared)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordProviderAttempt("scoreboard", time.Millisecond, nil)
	rec.RecordRateLimit("scoreboard", time.Second)
	rec.RecordEncode()
	rec.RecordDecode(nil)
	rec.RecordPick()
	rec.RecordClear()
	rec.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)
	rec.RecordRefreshCycle(time.Millisecond, nil)

	if snap := rec.Snapshot("scoreboard"); snap.Calls != 0 {
		t.Fatalf("expected empty snapshot from nil recorder, got %+v", snap)
	}
	if snap := rec.Codec(); snap.Decodes != 0 {
		t.Fatalf("expected empty codec snapshot from nil recorder, got %+v", snap)
	}
	if snap := rec.Picks(); snap.Applied != 0 {
		t.Fatalf("expected empty pick snapshot from nil recorder, got %+v", snap)
	}
}
