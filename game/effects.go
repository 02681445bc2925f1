package game

import "time"

// Score and burst tuning per kind.
const (
	fruitScore        = 10
	fruitBurstCount   = 10
	bombBurstPerColor = 10
	iceBurstPerColor  = 15
)

// resolveHit dispatches a registered cut on the entity's kind and
// applies the resulting score, life, freeze and particle mutations.
// The sliced flag is set exactly once; the entity is gone by the end
// of the tick.
func (g *Game) resolveHit(e *Entity, now time.Time) {
	e.Sliced = true

	switch e.Kind {
	case KindFruit:
		g.score += fruitScore
		g.particles = append(g.particles, newBurst(g.rng, e.X, e.Y, fruitBurstCount, FruitPalette[e.Variant])...)

	case KindBomb:
		g.particles = append(g.particles, newBurst(g.rng, e.X, e.Y, bombBurstPerColor, colorBombSmoke)...)
		g.particles = append(g.particles, newBurst(g.rng, e.X, e.Y, bombBurstPerColor, colorBombFlame)...)
		g.applyDamage(now)

	case KindIce:
		g.freeze.RegisterHit(now, g.cfg)
		// entering the frozen condition: no stale segment may keep cutting
		g.trail.Clear()
		g.particles = append(g.particles, newBurst(g.rng, e.X, e.Y, iceBurstPerColor, colorIceShard)...)
		g.particles = append(g.particles, newBurst(g.rng, e.X, e.Y, iceBurstPerColor, colorIceFrost)...)
	}
}

// applyDamage is the shared damage path for bomb hits and the drop
// penalty: shake feedback, one life, and the game-over transition at
// zero.
func (g *Game) applyDamage(now time.Time) {
	g.shakeUntil = now.Add(shakeDuration)
	g.lives--
	if g.lives <= 0 {
		g.lives = 0
		g.trail.Clear()
		g.transition(StateGameOver)
	}
}

// handleDropped accounts for an entity that fell out of the visible
// area unsliced. Only fruit carries a penalty: every
// DropPenaltyEvery-th consecutive drop costs one life and resets the
// counter.
func (g *Game) handleDropped(e *Entity, now time.Time) {
	if e.Kind != KindFruit {
		return
	}
	g.drops++
	if g.drops >= g.cfg.DropPenaltyEvery {
		g.drops = 0
		g.applyDamage(now)
	}
}
