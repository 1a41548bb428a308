// Package tui provides the Bubble Tea integration for the catch game.
// It handles the terminal UI loop, input mapping, scoreboard and SSH hosting.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// LoopMsg triggers a movement tick for the scheduler generation that issued it.
type LoopMsg struct {
	Gen uint64
	At  time.Time
}

// ClockMsg triggers a countdown tick for the scheduler generation that issued it.
type ClockMsg struct {
	Gen uint64
	At  time.Time
}

// teaScheduler is the catch.Scheduler for Bubble Tea hosts. The controller arms
// and disarms it; the model turns that into tick commands. Each Start bumps the
// generation so ticks from a previous round are ignored instead of doubling the loop.
type teaScheduler struct {
	loopEvery  time.Duration
	clockEvery time.Duration

	loop    func()
	clock   func()
	running bool
	gen     uint64
	pending bool // Started since the last call to Commands
}

func newTeaScheduler(loopEvery, clockEvery time.Duration) *teaScheduler {
	return &teaScheduler{loopEvery: loopEvery, clockEvery: clockEvery}
}

func (s *teaScheduler) Start(loop, clock func()) {
	s.loop = loop
	s.clock = clock
	s.running = true
	s.gen++
	s.pending = true
}

func (s *teaScheduler) Stop() {
	s.running = false
	s.gen++
}

// Commands returns the first tick commands of a freshly started round, or nil.
func (s *teaScheduler) Commands() tea.Cmd {
	if !s.pending {
		return nil
	}
	s.pending = false
	return tea.Batch(loopCmd(s.loopEvery, s.gen), clockCmd(s.clockEvery, s.gen))
}

// Loop runs the loop callback if msg belongs to the live generation and
// returns the command for the next tick.
func (s *teaScheduler) Loop(msg LoopMsg) tea.Cmd {
	if !s.running || msg.Gen != s.gen {
		return nil
	}
	s.loop()
	if !s.running || msg.Gen != s.gen {
		return nil
	}
	return loopCmd(s.loopEvery, s.gen)
}

// Clock is Loop for the countdown.
func (s *teaScheduler) Clock(msg ClockMsg) tea.Cmd {
	if !s.running || msg.Gen != s.gen {
		return nil
	}
	s.clock()
	if !s.running || msg.Gen != s.gen {
		return nil
	}
	return clockCmd(s.clockEvery, s.gen)
}

func loopCmd(every time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(every, func(t time.Time) tea.Msg {
		return LoopMsg{Gen: gen, At: t}
	})
}

func clockCmd(every time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(every, func(t time.Time) tea.Msg {
		return ClockMsg{Gen: gen, At: t}
	})
}
