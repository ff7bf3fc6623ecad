package metrics

import (
	"testing"
	"time"
)

func TestCollectorSnapshot(t *testing.T) {
	c := New()
	c.RecordRequest(200, 10*time.Millisecond)
	c.RecordRequest(200, 30*time.Millisecond)
	c.RecordRequest(503, 5*time.Millisecond)
	c.RecordRequest(429, 1*time.Millisecond)

	snap := c.Snapshot()
	if snap["requestsTotal"] != uint64(4) {
		t.Fatalf("requestsTotal = %v", snap["requestsTotal"])
	}
	if snap["errorsTotal"] != uint64(1) {
		t.Fatalf("errorsTotal = %v", snap["errorsTotal"])
	}
	if snap["rateLimitedTotal"] != uint64(1) {
		t.Fatalf("rateLimitedTotal = %v", snap["rateLimitedTotal"])
	}
	if snap["avgDurationMs"] != 11.5 {
		t.Fatalf("avgDurationMs = %v", snap["avgDurationMs"])
	}
}

func TestCollectorSummaryCounters(t *testing.T) {
	c := New()
	c.RecordSummary(true)
	c.RecordSummary(true)
	c.RecordSummary(false)

	snap := c.Snapshot()
	if snap["summariesTotal"] != uint64(3) {
		t.Fatalf("summariesTotal = %v", snap["summariesTotal"])
	}
	if snap["summaryMissesTotal"] != uint64(1) {
		t.Fatalf("summaryMissesTotal = %v", snap["summaryMissesTotal"])
	}
}

func TestEmptyCollectorAverage(t *testing.T) {
	snap := New().Snapshot()
	if snap["avgDurationMs"] != float64(0) {
		t.Fatalf("empty collector must report zero average, got %v", snap["avgDurationMs"])
	}
}
