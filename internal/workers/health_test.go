package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/lateness-tracker/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

// recordingReporter keeps every status it was given.
type recordingReporter struct {
	mu       sync.Mutex
	statuses []bool
	notify   chan struct{}
}

func newRecordingReporter() *recordingReporter {
	return &recordingReporter{notify: make(chan struct{}, 16)}
}

func (r *recordingReporter) SetServing(serving bool) {
	r.mu.Lock()
	r.statuses = append(r.statuses, serving)
	r.mu.Unlock()

	select {
	case r.notify <- struct{}{}:
	default:
	}
}

func (r *recordingReporter) wait(t *testing.T, n int) []bool {
	t.Helper()

	deadline := time.After(2 * time.Second)
	for {
		r.mu.Lock()
		if len(r.statuses) >= n {
			out := append([]bool(nil), r.statuses...)
			r.mu.Unlock()
			return out
		}
		r.mu.Unlock()

		select {
		case <-r.notify:
		case <-deadline:
			t.Fatalf("expected %d health reports", n)
		}
	}
}

var (
	healthy = pingFunc(func(context.Context) error { return nil })
	down    = pingFunc(func(context.Context) error { return errors.New("connection refused") })
)

// ── health worker ───────────────────────────────────────────────────────────

// TestHealthWorker_ReportsImmediately verifies the first probe runs before
// the first tick.
func TestHealthWorker_ReportsImmediately(t *testing.T) {
	reporter := newRecordingReporter()
	w := NewHealthWorker(time.Hour, reporter, logger.Nop(), Probe{Name: "db", Target: healthy})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	assert.Equal(t, []bool{true}, reporter.wait(t, 1))
}

// TestHealthWorker_AnyFailureIsNotServing verifies one failing probe is
// enough to report NOT_SERVING.
func TestHealthWorker_AnyFailureIsNotServing(t *testing.T) {
	reporter := newRecordingReporter()
	w := NewHealthWorker(time.Hour, reporter, logger.Nop(),
		Probe{Name: "db", Target: healthy},
		Probe{Name: "cache", Target: down},
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	assert.Equal(t, []bool{false}, reporter.wait(t, 1))
}

// TestHealthWorker_Recovers verifies the status follows the dependency on
// later ticks.
func TestHealthWorker_Recovers(t *testing.T) {
	var mu sync.Mutex
	failing := true
	flaky := pingFunc(func(context.Context) error {
		mu.Lock()
		defer mu.Unlock()
		if failing {
			failing = false
			return errors.New("timeout")
		}
		return nil
	})

	reporter := newRecordingReporter()
	w := NewHealthWorker(10*time.Millisecond, reporter, logger.Nop(), Probe{Name: "db", Target: flaky})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	statuses := reporter.wait(t, 2)
	assert.False(t, statuses[0])
	assert.True(t, statuses[1])
}

// TestHealthWorker_StopsOnCancel verifies Run returns once ctx is done.
func TestHealthWorker_StopsOnCancel(t *testing.T) {
	w := NewHealthWorker(10*time.Millisecond, newRecordingReporter(), logger.Nop(), Probe{Name: "db", Target: healthy})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		require.Fail(t, "health worker did not stop")
	}
}
