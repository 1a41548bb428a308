package catch

// EventKind identifies a state change announced by the Controller.
type EventKind int

const (
	EventLayout EventKind = iota
	EventStarted
	EventCaught  // Critter holds the caught critter, Delta its score change
	EventSpawned // Critter holds the new critter
	EventTicked
	EventCountdown
	EventEnded
	EventBasketMoved
	EventFocusChanged
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventLayout:
		return "layout"
	case EventStarted:
		return "started"
	case EventCaught:
		return "caught"
	case EventSpawned:
		return "spawned"
	case EventTicked:
		return "ticked"
	case EventCountdown:
		return "countdown"
	case EventEnded:
		return "ended"
	case EventBasketMoved:
		return "basket_moved"
	case EventFocusChanged:
		return "focus_changed"
	default:
		return "unknown"
	}
}

// Event is delivered to subscribers after the mutation it describes.
type Event struct {
	Kind    EventKind
	Critter Critter
	Delta   int
}

// Controller owns a State and is the only thing that mutates it.
// It is not safe for concurrent use; callers serialize access
// (Bubble Tea's update loop, or an Actor).
type Controller struct {
	state   *State
	engine  *Engine
	sched   Scheduler
	subs    map[int]func(Event)
	nextSub int
}

// NewController creates an idle controller. A nil scheduler means the caller
// drives Tick and Clock itself.
func NewController(rules Rules, rng Rand, sched Scheduler) *Controller {
	if sched == nil {
		sched = nopScheduler{}
	}
	return &Controller{
		state:  NewState(),
		engine: NewEngine(rules, rng),
		sched:  sched,
		subs:   make(map[int]func(Event)),
	}
}

// Subscribe registers fn for every subsequent event and returns a function
// that removes it.
func (c *Controller) Subscribe(fn func(Event)) (unsubscribe func()) {
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	return func() { delete(c.subs, id) }
}

func (c *Controller) emit(ev Event) {
	for _, fn := range c.subs {
		fn(ev)
	}
}

// Rules returns the rules the controller plays by.
func (c *Controller) Rules() Rules {
	return c.engine.Rules()
}

// Layout sets the play area. Hosts call it once at first layout.
func (c *Controller) Layout(w, h float64) {
	c.state.Layout(w, h, c.engine.Rules())
	c.emit(Event{Kind: EventLayout})
}

// Start begins a new round and arms the scheduler.
// Calling it during a running round discards that round.
func (c *Controller) Start() {
	c.state.Start(c.engine.Rules())
	c.sched.Start(func() { c.Tick() }, func() { c.Clock() })
	c.emit(Event{Kind: EventStarted})
}

// MoveBasket writes the raw basket signal. No validation: clamping happens
// when the signal is mapped onto the play area.
func (c *Controller) MoveBasket(raw float64) {
	c.state.BasketRaw = raw
	c.emit(Event{Kind: EventBasketMoved})
}

// NudgeBasket shifts the raw basket signal by dir keyboard steps.
func (c *Controller) NudgeBasket(dir int) {
	c.MoveBasket(c.state.BasketRaw + float64(dir)*c.engine.Rules().KeyboardStep)
}

// SetForeground records whether the host is visible. It never changes the lifecycle.
func (c *Controller) SetForeground(fg bool) {
	if c.state.Foreground == fg {
		return
	}
	c.state.Foreground = fg
	c.emit(Event{Kind: EventFocusChanged})
}

// Tick runs one game-loop transition.
func (c *Controller) Tick() TickReport {
	report := c.engine.AdvanceTick(c.state)
	if report.Skipped {
		return report
	}
	for _, caught := range report.Caught {
		c.emit(Event{Kind: EventCaught, Critter: caught.Critter, Delta: caught.Delta})
	}
	if report.Spawned != nil {
		c.emit(Event{Kind: EventSpawned, Critter: *report.Spawned})
	}
	c.emit(Event{Kind: EventTicked, Delta: report.Delta})
	return report
}

// Clock runs one countdown transition and stops the scheduler when the round ends.
func (c *Controller) Clock() CountdownResult {
	result := AdvanceCountdown(c.state)
	switch result {
	case CountdownDecremented:
		c.emit(Event{Kind: EventCountdown})
	case CountdownEnded:
		c.sched.Stop()
		c.emit(Event{Kind: EventEnded})
	}
	return result
}

// Lifecycle returns the current round state.
func (c *Controller) Lifecycle() Lifecycle {
	return c.state.Lifecycle
}

// Score returns the current score.
func (c *Controller) Score() int {
	return c.state.Score
}

// BasketWidth returns the basket width in area units.
func (c *Controller) BasketWidth() float64 {
	return c.state.BasketWidth
}

// Countdown returns the seconds left in the round.
func (c *Controller) Countdown() int {
	return c.state.Countdown
}

// Snapshot returns a copy of the state for renderers.
func (c *Controller) Snapshot() Snapshot {
	return newSnapshot(c.state, c.engine.Rules())
}
