package game

import "image/color"

// Snapshot is the per-tick view handed to the presentation layer. It
// carries everything needed to draw a frame and nothing else; the
// renderer never reaches into live simulation state.
type Snapshot struct {
	State State
	Score int
	Lives int

	// FreezeSeconds is the remaining blade freeze, 0 when inactive
	FreezeSeconds float64

	// Shaking is set while the damage feedback signal is live
	Shaking bool

	Entities  []EntitySnapshot
	Particles []ParticleSnapshot
	Trail     []TrailPoint
}

// EntitySnapshot is the drawable view of one toss target.
type EntitySnapshot struct {
	Kind     Kind
	X, Y     float64
	Rotation float64
	Radius   float64
	Variant  int
}

// ParticleSnapshot is the drawable view of one particle.
type ParticleSnapshot struct {
	X, Y    float64
	Color   color.NRGBA
	Opacity float64
	Shape   ParticleShape
}

// Snapshot captures the current render state.
func (g *Game) Snapshot() Snapshot {
	now := g.clock.Now()

	snap := Snapshot{
		State:         g.state,
		Score:         g.score,
		Lives:         g.lives,
		FreezeSeconds: g.freeze.Remaining(now).Seconds(),
		Shaking:       now.Before(g.shakeUntil),
		Entities:      make([]EntitySnapshot, 0, len(g.entities)),
		Particles:     make([]ParticleSnapshot, 0, len(g.particles)),
		Trail:         append([]TrailPoint(nil), g.trail.Points()...),
	}

	for _, e := range g.entities {
		snap.Entities = append(snap.Entities, EntitySnapshot{
			Kind:     e.Kind,
			X:        e.X,
			Y:        e.Y,
			Rotation: e.Rotation,
			Radius:   e.Radius,
			Variant:  e.Variant,
		})
	}
	for i := range g.particles {
		p := &g.particles[i]
		snap.Particles = append(snap.Particles, ParticleSnapshot{
			X:       p.X,
			Y:       p.Y,
			Color:   p.Color,
			Opacity: p.Life,
			Shape:   p.Shape,
		})
	}
	return snap
}
