package metrics

import (
	"context"
	"runtime"
	"time"
)

// ResourceCollector periodically updates the process-level gauges
// (goroutines, heap, GC pauses, uptime) that sit alongside the
// FragmentCodec/ThresholdSecretSplitter operation counters, so metrics-server
// has something to report even between protect/recover calls on a backend
// it shares with other raseguard invocations.
type ResourceCollector struct {
	ctx      context.Context
	cancel   context.CancelFunc
	interval time.Duration
	started  time.Time
}

// NewResourceCollector creates a collector that updates the process gauges
// at the given interval. metrics-server runs it at 30s; tests use shorter
// intervals to observe a few ticks without waiting.
func NewResourceCollector(ctx context.Context, interval time.Duration) *ResourceCollector {
	collectorCtx, cancel := context.WithCancel(ctx)
	return &ResourceCollector{
		ctx:      collectorCtx,
		cancel:   cancel,
		interval: interval,
		started:  time.Now(),
	}
}

// Start ticks at the configured interval until Stop is called or the
// parent context is cancelled, updating gauges on every tick including the
// first. It blocks and is meant to run in its own goroutine, as
// metrics-server does.
func (rc *ResourceCollector) Start() {
	ticker := time.NewTicker(rc.interval)
	defer ticker.Stop()

	rc.collect()

	for {
		select {
		case <-rc.ctx.Done():
			return
		case <-ticker.C:
			rc.collect()
		}
	}
}

// Stop halts the resource collector gracefully.
func (rc *ResourceCollector) Stop() {
	rc.cancel()
}

// collect updates the gauges, then stamps uptime relative to when this
// collector started rather than process start, since the CLI may run
// metrics-server well after other subcommands have already run once.
func (rc *ResourceCollector) collect() {
	CollectOnce()
	if !IsEnabled() {
		return
	}
	ServerUptime.Set(time.Since(rc.started).Seconds())
}

// CollectOnce updates the goroutine, memory, and GC gauges from a single
// runtime.ReadMemStats snapshot. ResourceCollector calls this every tick;
// it is also exported for commands that want one reading without starting
// the periodic collector.
func CollectOnce() {
	if !IsEnabled() {
		return
	}

	Goroutines.Set(float64(runtime.NumGoroutine()))

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	MemoryAllocBytes.Set(float64(memStats.Alloc))
	MemorySysBytes.Set(float64(memStats.Sys))

	GCPauseTotalSeconds.Set(float64(memStats.PauseTotalNs) / 1e9)
}

// StartResourceCollector creates a ResourceCollector and starts it in a new
// goroutine, returning it so the caller can Stop it on shutdown.
func StartResourceCollector(ctx context.Context, interval time.Duration) *ResourceCollector {
	collector := NewResourceCollector(ctx, interval)
	go collector.Start()
	return collector
}
