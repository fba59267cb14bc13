package jobs

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/forgo/users/api/internal/metrics"
)

type fakeCounter struct {
	n     atomic.Int64
	calls atomic.Int64
}

func (f *fakeCounter) Count(context.Context) int {
	f.calls.Add(1)
	return int(f.n.Load())
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestUserCountReporter_RunOnceSetsGauge(t *testing.T) {
	t.Parallel()

	counter := &fakeCounter{}
	counter.n.Store(7)
	m := metrics.New()

	r := NewUserCountReporter(counter, m, quietLogger(), time.Hour)

	assert.Equal(t, 7, r.RunOnce(context.Background()))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.UsersStored))
}

func TestUserCountReporter_NilGauge(t *testing.T) {
	t.Parallel()

	counter := &fakeCounter{}
	counter.n.Store(3)

	r := NewUserCountReporter(counter, nil, quietLogger(), time.Hour)
	assert.Equal(t, 3, r.RunOnce(context.Background()))
}

func TestUserCountReporter_StartReportsImmediatelyAndOnTick(t *testing.T) {
	t.Parallel()

	counter := &fakeCounter{}
	counter.n.Store(2)
	m := metrics.New()

	r := NewUserCountReporter(counter, m, quietLogger(), 10*time.Millisecond)
	r.Start()
	r.Start() // second start is a no-op

	assert.Eventually(t, func() bool { return counter.calls.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)

	counter.n.Store(5)
	assert.Eventually(t, func() bool { return testutil.ToFloat64(m.UsersStored) == 5 }, 2*time.Second, 5*time.Millisecond)

	r.Stop()
	r.Stop()

	after := counter.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, counter.calls.Load(), "no samples after Stop")
}

func TestUserCountReporter_StopWithoutStart(t *testing.T) {
	t.Parallel()

	r := NewUserCountReporter(&fakeCounter{}, nil, nil, 0)
	r.Stop()
	assert.Equal(t, 30*time.Second, r.interval)
}
