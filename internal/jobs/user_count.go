package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// UserCounter reports how many users are stored
type UserCounter interface {
	Count(ctx context.Context) int
}

// GaugeSetter receives the sampled count
type GaugeSetter interface {
	SetUsersStored(n int)
}

// UserCountReporter periodically samples the store size into a gauge
type UserCountReporter struct {
	counter  UserCounter
	gauge    GaugeSetter
	logger   *slog.Logger
	interval time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup
	running  bool
	mu       sync.Mutex
}

// NewUserCountReporter creates a new reporter job
func NewUserCountReporter(counter UserCounter, gauge GaugeSetter, logger *slog.Logger, interval time.Duration) *UserCountReporter {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &UserCountReporter{
		counter:  counter,
		gauge:    gauge,
		logger:   logger,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the reporter job
func (r *UserCountReporter) Start() {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return
	}
	r.running = true
	r.mu.Unlock()

	r.wg.Add(1)
	go r.run()
	r.logger.Info("user count reporter started", slog.Duration("interval", r.interval))
}

// Stop gracefully stops the reporter job. It is safe to call more than once.
func (r *UserCountReporter) Stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	r.mu.Unlock()

	close(r.stopCh)
	r.wg.Wait()
	r.logger.Info("user count reporter stopped")
}

func (r *UserCountReporter) run() {
	defer r.wg.Done()

	// Report immediately on start
	r.RunOnce(context.Background())

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.RunOnce(context.Background())
		case <-r.stopCh:
			return
		}
	}
}

// RunOnce samples the count once (for testing or manual trigger)
func (r *UserCountReporter) RunOnce(ctx context.Context) int {
	n := r.counter.Count(ctx)
	if r.gauge != nil {
		r.gauge.SetUsersStored(n)
	}
	r.logger.Debug("users stored", slog.Int("count", n))
	return n
}
