package catch

import (
	"sync"
	"time"
)

// Scheduler drives the two periodic transitions of a running round.
// Start arms (or re-arms) both callbacks; Stop disarms them.
type Scheduler interface {
	Start(loop, clock func())
	Stop()
}

type nopScheduler struct{}

func (nopScheduler) Start(loop, clock func()) {}
func (nopScheduler) Stop()                    {}

// ManualScheduler fires callbacks only when told to. Tests use it to drive
// an exact number of ticks without wall-clock time.
type ManualScheduler struct {
	loop    func()
	clock   func()
	running bool
	starts  int
}

// NewManualScheduler creates a disarmed manual scheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Start arms the scheduler with the given callbacks.
func (m *ManualScheduler) Start(loop, clock func()) {
	m.loop = loop
	m.clock = clock
	m.running = true
	m.starts++
}

// Stop disarms the scheduler.
func (m *ManualScheduler) Stop() {
	m.running = false
}

// Running reports whether the scheduler is armed.
func (m *ManualScheduler) Running() bool {
	return m.running
}

// Starts returns how many times Start was called.
func (m *ManualScheduler) Starts() int {
	return m.starts
}

// Loop fires the loop callback up to n times, stopping early if disarmed.
// Returns the number of callbacks fired.
func (m *ManualScheduler) Loop(n int) int {
	fired := 0
	for i := 0; i < n && m.running; i++ {
		m.loop()
		fired++
	}
	return fired
}

// Clock fires the clock callback up to n times, stopping early if disarmed.
// Returns the number of callbacks fired.
func (m *ManualScheduler) Clock(n int) int {
	fired := 0
	for i := 0; i < n && m.running; i++ {
		m.clock()
		fired++
	}
	return fired
}

// TickerScheduler runs the loop and clock on wall-clock tickers.
// Callbacks are handed to post so they run on the owner's mutation path.
type TickerScheduler struct {
	loopEvery  time.Duration
	clockEvery time.Duration
	post       func(fn func()) bool

	mu   sync.Mutex
	gen  uint64
	stop chan struct{}
}

// NewTickerScheduler creates a ticker scheduler. post must serialize the
// callbacks with every other state mutation (see Actor.Post).
func NewTickerScheduler(loopEvery, clockEvery time.Duration, post func(fn func()) bool) *TickerScheduler {
	return &TickerScheduler{
		loopEvery:  loopEvery,
		clockEvery: clockEvery,
		post:       post,
	}
}

// Start launches the ticker goroutine, replacing any previous one.
func (t *TickerScheduler) Start(loop, clock func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()
	t.gen++
	t.stop = make(chan struct{})
	go t.run(t.gen, t.stop, loop, clock)
}

// Stop halts the ticker goroutine. Callbacks already posted are dropped.
func (t *TickerScheduler) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

func (t *TickerScheduler) stopLocked() {
	if t.stop != nil {
		close(t.stop)
		t.stop = nil
		t.gen++
	}
}

func (t *TickerScheduler) current(gen uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.gen == gen
}

func (t *TickerScheduler) run(gen uint64, stop <-chan struct{}, loop, clock func()) {
	loopTicker := time.NewTicker(t.loopEvery)
	defer loopTicker.Stop()
	clockTicker := time.NewTicker(t.clockEvery)
	defer clockTicker.Stop()

	guarded := func(fn func()) func() {
		return func() {
			if t.current(gen) {
				fn()
			}
		}
	}
	onLoop, onClock := guarded(loop), guarded(clock)

	for {
		select {
		case <-stop:
			return
		case <-loopTicker.C:
			if !t.post(onLoop) {
				return
			}
		case <-clockTicker.C:
			if !t.post(onClock) {
				return
			}
		}
	}
}
