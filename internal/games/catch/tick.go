package catch

// Catch is one critter caught by the basket and the score change it caused.
type Catch struct {
	Critter Critter
	Delta   int // +1, -1, or 0 when a penalty hit a zero score
}

// TickReport describes what one movement tick did.
type TickReport struct {
	Skipped bool     // Round not running or countdown exhausted
	Caught  []Catch  // Critters caught this tick, in the order they were tested
	Delta   int      // Net score change
	Dropped int      // Critters that fell past the bottom
	Divisor int      // Spawn divisor k drawn this tick
	Spawned *Critter // Critter added this tick, if any
}

// AdvanceTick runs one game-loop tick: catch test, movement, off-screen removal,
// then the spawn draw. It is a no-op unless the round is running with time left.
func (e *Engine) AdvanceTick(s *State) TickReport {
	if s.Lifecycle != Running || s.Countdown <= 0 {
		return TickReport{Skipped: true}
	}

	var report TickReport
	catchRange := s.CatchRange(e.rules)
	next := make([]Critter, 0, len(s.Critters)+1)

	for _, c := range s.Critters {
		if s.inCatchBand(c.Pos.Y) && catchRange.Contains(c.Pos.X) {
			delta := s.award(c.Kind)
			report.Delta += delta
			report.Caught = append(report.Caught, Catch{Critter: c, Delta: delta})
			continue
		}

		c = c.advance(e.rules)
		if c.Pos.Y > s.Area.H {
			report.Dropped++
			continue
		}
		next = append(next, c)
	}
	s.Critters = next
	s.Dropped += report.Dropped

	report.Divisor = 1 + e.rng.Intn(e.rules.MaxSpawnDivisor)
	if s.Countdown%report.Divisor == 0 {
		c := e.SpawnCritter(s.Area)
		s.Critters = append(s.Critters, c)
		report.Spawned = &c
	}

	return report
}
