package metrics

import (
	"sync/atomic"
	"time"
)

type Collector struct {
	totalRequests       atomic.Uint64
	clientErrors        atomic.Uint64
	errorRequests       atomic.Uint64
	rateLimited         atomic.Uint64
	totalDurationMs     atomic.Uint64
	reminderSweeps      atomic.Uint64
	remindersDispatched atomic.Uint64
	startedAt           time.Time
}

func New() *Collector {
	return &Collector{startedAt: time.Now()}
}

func (c *Collector) Record(status int, duration time.Duration) {
	c.totalRequests.Add(1)
	switch {
	case status == 429:
		c.rateLimited.Add(1)
		c.clientErrors.Add(1)
	case status >= 500:
		c.errorRequests.Add(1)
	case status >= 400:
		c.clientErrors.Add(1)
	}
	c.totalDurationMs.Add(uint64(duration.Milliseconds()))
}

// RecordSweep counts one reminder sweep and the notifications it produced.
func (c *Collector) RecordSweep(dispatched int) {
	c.reminderSweeps.Add(1)
	if dispatched > 0 {
		c.remindersDispatched.Add(uint64(dispatched))
	}
}

func (c *Collector) Snapshot() map[string]any {
	total := c.totalRequests.Load()
	totalMs := c.totalDurationMs.Load()
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return map[string]any{
		"requestsTotal":            total,
		"clientErrorsTotal":        c.clientErrors.Load(),
		"errorsTotal":              c.errorRequests.Load(),
		"rateLimitedTotal":         c.rateLimited.Load(),
		"avgDurationMs":            avg,
		"totalDurationMs":          totalMs,
		"reminderSweepsTotal":      c.reminderSweeps.Load(),
		"remindersDispatchedTotal": c.remindersDispatched.Load(),
		"uptimeSeconds":            int64(time.Since(c.startedAt).Seconds()),
	}
}
