package catch

// CritterView is the renderer-facing view of a critter.
type CritterView struct {
	ID       string  `json:"id"`
	Kind     Kind    `json:"kind"`
	Color    string  `json:"color"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Rotation float64 `json:"rotation"`
}

// Snapshot is a copy of everything a renderer needs after a transition.
type Snapshot struct {
	AreaW       float64       `json:"areaW"`
	AreaH       float64       `json:"areaH"`
	Critters    []CritterView `json:"critters"`
	Score       int           `json:"score"`
	Countdown   int           `json:"countdown"`
	Lifecycle   Lifecycle     `json:"lifecycle"`
	BasketLeft  float64       `json:"basketLeft"`
	BasketWidth float64       `json:"basketWidth"`
	Foreground  bool          `json:"foreground"`
	Catches     int           `json:"catches"`
	Penalties   int           `json:"penalties"`
	Dropped     int           `json:"dropped"`
}

func newSnapshot(s *State, r Rules) Snapshot {
	critters := make([]CritterView, len(s.Critters))
	for i, c := range s.Critters {
		critters[i] = CritterView{
			ID:       c.ID.String(),
			Kind:     c.Kind,
			Color:    c.Kind.Color().String(),
			X:        c.Pos.X,
			Y:        c.Pos.Y,
			Rotation: c.Rotation,
		}
	}

	return Snapshot{
		AreaW:       s.Area.W,
		AreaH:       s.Area.H,
		Critters:    critters,
		Score:       s.Score,
		Countdown:   s.Countdown,
		Lifecycle:   s.Lifecycle,
		BasketLeft:  s.BasketLeft(r),
		BasketWidth: s.BasketWidth,
		Foreground:  s.Foreground,
		Catches:     s.Catches,
		Penalties:   s.Penalties,
		Dropped:     s.Dropped,
	}
}
