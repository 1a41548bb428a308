package catch

// CountdownResult reports the effect of a clock tick.
type CountdownResult int

const (
	CountdownSkipped     CountdownResult = iota // Not running, or backgrounded
	CountdownDecremented                        // One second elapsed
	CountdownEnded                              // Round moved to Ended
)

// AdvanceCountdown runs one clock tick. Backgrounded games keep their time.
// Once the countdown is at zero the next tick ends the round.
func AdvanceCountdown(s *State) CountdownResult {
	if s.Lifecycle != Running || !s.Foreground {
		return CountdownSkipped
	}
	if s.Countdown > 0 {
		s.Countdown--
		return CountdownDecremented
	}
	s.Lifecycle = Ended
	return CountdownEnded
}
