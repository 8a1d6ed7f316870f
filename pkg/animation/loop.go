package animation

import "time"

// LoopController produces a continuously repeating progress value.
//
// The value advances linearly from 0.0 to 1.0 over Period and wraps back
// to 0.0, forever, until Stop or Dispose. An optional Curve reshapes the
// progress within each cycle; the wrap point is unaffected, so a motion
// driven by the value stays seamless as long as progress 0 and progress 1
// map to the same visual position.
//
// Use AddListener to rebuild dependent widgets on each tick:
//
//	s.loop = animation.NewLoopController(12 * time.Second)
//	s.loop.AddListener(func() { s.SetState(func() {}) })
//	s.loop.Start()
//
// Always call Dispose when done.
type LoopController struct {
	// Period is the length of one full cycle.
	Period time.Duration

	// Curve reshapes progress within a cycle (optional).
	Curve func(float64) float64

	progress       float64
	ticker         *Ticker
	listeners      map[int]func()
	nextListenerID int
}

// NewLoopController creates a loop controller with the given cycle period.
func NewLoopController(period time.Duration) *LoopController {
	return &LoopController{
		Period:    period,
		listeners: make(map[int]func()),
	}
}

// Start begins the loop from progress zero.
func (c *LoopController) Start() {
	if c.ticker != nil {
		return
	}
	c.ticker = NewTicker(func(elapsed time.Duration) {
		c.tick(elapsed)
	})
	c.ticker.Start()
}

// Stop halts the loop at the current progress.
func (c *LoopController) Stop() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}

// IsAnimating returns true while the loop is running.
func (c *LoopController) IsAnimating() bool {
	return c.ticker != nil
}

// Progress returns the current cycle progress in [0, 1).
func (c *LoopController) Progress() float64 {
	if c.Curve != nil {
		return c.Curve(c.progress)
	}
	return c.progress
}

func (c *LoopController) tick(elapsed time.Duration) {
	if c.Period <= 0 {
		return
	}
	cycle := elapsed % c.Period
	next := float64(cycle) / float64(c.Period)
	if next == c.progress {
		return
	}
	c.progress = next
	c.notifyListeners()
}

// AddListener adds a callback that fires whenever the progress changes.
// Returns an unsubscribe function.
func (c *LoopController) AddListener(fn func()) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

func (c *LoopController) notifyListeners() {
	for _, listener := range c.listeners {
		listener()
	}
}

// Dispose stops the loop and releases listeners.
func (c *LoopController) Dispose() {
	c.Stop()
	c.listeners = nil
}
