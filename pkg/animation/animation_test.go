package animation

import (
	"math"
	"testing"
	"time"
)

// stubClock is a manually advanced clock local to this package's tests.
// The shared sitetest clock cannot be used here without an import cycle.
type stubClock struct {
	now time.Time
}

func newStubClock() *stubClock {
	return &stubClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *stubClock) Now() time.Time { return c.now }

func (c *stubClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func withStubClock(t *testing.T) *stubClock {
	t.Helper()
	clk := newStubClock()
	prev := SetClock(clk)
	t.Cleanup(func() { SetClock(prev) })
	return clk
}

func TestTickerReportsElapsed(t *testing.T) {
	clk := withStubClock(t)

	var got time.Duration
	ticker := NewTicker(func(elapsed time.Duration) { got = elapsed })
	ticker.Start()
	defer ticker.Stop()

	clk.Advance(250 * time.Millisecond)
	StepTickers()
	if got != 250*time.Millisecond {
		t.Errorf("elapsed = %v, want 250ms", got)
	}

	clk.Advance(250 * time.Millisecond)
	StepTickers()
	if got != 500*time.Millisecond {
		t.Errorf("elapsed = %v, want 500ms", got)
	}
}

func TestStoppedTickerDoesNotFire(t *testing.T) {
	clk := withStubClock(t)

	fired := 0
	ticker := NewTicker(func(time.Duration) { fired++ })
	ticker.Start()
	ticker.Stop()

	clk.Advance(time.Second)
	StepTickers()
	if fired != 0 {
		t.Errorf("callback fired %d times after Stop", fired)
	}
	if HasActiveTickers() {
		t.Error("stopped ticker still registered as active")
	}
}

func TestStartIsIdempotent(t *testing.T) {
	clk := withStubClock(t)

	ticker := NewTicker(func(time.Duration) {})
	ticker.Start()
	defer ticker.Stop()

	clk.Advance(time.Second)
	ticker.Start() // must not reset the start time
	if ticker.Elapsed() != time.Second {
		t.Errorf("elapsed = %v, want 1s", ticker.Elapsed())
	}
}

func TestLoopProgressAdvancesLinearly(t *testing.T) {
	clk := withStubClock(t)

	loop := NewLoopController(10 * time.Second)
	loop.Start()
	defer loop.Dispose()

	clk.Advance(2500 * time.Millisecond)
	StepTickers()
	if got := loop.Progress(); got != 0.25 {
		t.Errorf("progress = %v, want 0.25", got)
	}
}

func TestLoopWrapsToZeroAtPeriod(t *testing.T) {
	clk := withStubClock(t)

	loop := NewLoopController(10 * time.Second)
	loop.Start()
	defer loop.Dispose()

	clk.Advance(10 * time.Second)
	StepTickers()
	if got := loop.Progress(); got != 0 {
		t.Errorf("progress at exactly one period = %v, want 0", got)
	}

	clk.Advance(13 * time.Second)
	StepTickers()
	if got := loop.Progress(); got != 0.3 {
		t.Errorf("progress at 2.3 periods = %v, want 0.3", got)
	}
}

func TestLoopNotifiesListeners(t *testing.T) {
	clk := withStubClock(t)

	loop := NewLoopController(time.Second)
	loop.Start()
	defer loop.Dispose()

	notified := 0
	unsubscribe := loop.AddListener(func() { notified++ })

	clk.Advance(100 * time.Millisecond)
	StepTickers()
	if notified != 1 {
		t.Fatalf("notified = %d, want 1", notified)
	}

	// Same progress again must not re-notify.
	StepTickers()
	if notified != 1 {
		t.Errorf("notified = %d after no-op step, want 1", notified)
	}

	unsubscribe()
	clk.Advance(100 * time.Millisecond)
	StepTickers()
	if notified != 1 {
		t.Errorf("notified = %d after unsubscribe, want 1", notified)
	}
}

func TestLoopStopFreezesProgress(t *testing.T) {
	clk := withStubClock(t)

	loop := NewLoopController(10 * time.Second)
	loop.Start()
	clk.Advance(4 * time.Second)
	StepTickers()
	loop.Stop()

	if loop.IsAnimating() {
		t.Error("stopped loop still reports animating")
	}
	clk.Advance(4 * time.Second)
	StepTickers()
	if got := loop.Progress(); got != 0.4 {
		t.Errorf("progress after stop = %v, want 0.4", got)
	}
}

func TestLoopCurveReshapesProgress(t *testing.T) {
	clk := withStubClock(t)

	loop := NewLoopController(10 * time.Second)
	loop.Curve = func(t float64) float64 { return t * t }
	loop.Start()
	defer loop.Dispose()

	clk.Advance(5 * time.Second)
	StepTickers()
	if got := loop.Progress(); got != 0.25 {
		t.Errorf("curved progress = %v, want 0.25", got)
	}
}

func TestCubicBezierEndpoints(t *testing.T) {
	curve := CubicBezier(0.4, 0.0, 0.2, 1.0)
	if curve(0) != 0 {
		t.Errorf("curve(0) = %v, want 0", curve(0))
	}
	if curve(1) != 1 {
		t.Errorf("curve(1) = %v, want 1", curve(1))
	}
}

func TestCubicBezierIsMonotonic(t *testing.T) {
	curve := EaseInOut
	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := curve(float64(i) / 100)
		if v < prev-1e-9 {
			t.Fatalf("curve decreased at t=%v: %v < %v", float64(i)/100, v, prev)
		}
		prev = v
	}
	if math.Abs(prev-1) > 1e-6 {
		t.Errorf("curve(1) = %v, want 1", prev)
	}
}

func TestLinearCurvePassesThrough(t *testing.T) {
	if LinearCurve(0.37) != 0.37 {
		t.Error("linear curve must return its input")
	}
}
