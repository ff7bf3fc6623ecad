package metrics

import (
	"sync/atomic"
	"time"
)

// Collector tracks request-level counters plus the generative summary calls
// that ride on them. All counters are atomic; Snapshot is safe to call under
// load.
type Collector struct {
	requests        uint64
	serverErrors    uint64
	rateLimited     uint64
	totalDurationMs uint64
	summaries       uint64
	summaryMisses   uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) RecordRequest(status int, duration time.Duration) {
	atomic.AddUint64(&c.requests, 1)
	if status >= 500 {
		atomic.AddUint64(&c.serverErrors, 1)
	}
	if status == 429 {
		atomic.AddUint64(&c.rateLimited, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

// RecordSummary counts one insight-summary attempt; ok is false when the
// call degraded to absence.
func (c *Collector) RecordSummary(ok bool) {
	atomic.AddUint64(&c.summaries, 1)
	if !ok {
		atomic.AddUint64(&c.summaryMisses, 1)
	}
}

func (c *Collector) Snapshot() map[string]any {
	requests := atomic.LoadUint64(&c.requests)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if requests > 0 {
		avg = float64(totalMs) / float64(requests)
	}
	return map[string]any{
		"requestsTotal":      requests,
		"errorsTotal":        atomic.LoadUint64(&c.serverErrors),
		"rateLimitedTotal":   atomic.LoadUint64(&c.rateLimited),
		"avgDurationMs":      avg,
		"totalDurationMs":    totalMs,
		"summariesTotal":     atomic.LoadUint64(&c.summaries),
		"summaryMissesTotal": atomic.LoadUint64(&c.summaryMisses),
	}
}
