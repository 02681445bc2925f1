package game

import (
	"math"
	"math/rand"
)

// Horizontal launch tuning. The center bias keeps tosses from drifting
// off one side of the screen on average.
const (
	horizontalBias   = 2.5 // px/tick at full distance from center
	horizontalJitter = 2.0 // px/tick of random spread
	spawnEdgeMargin  = 40.0
	baseRotationRate = 0.12 // rad/tick of random spread
)

// SpeedMultiplier scales gravity and spin with score. It is a
// non-decreasing step function: +10% for every full 50 points.
func SpeedMultiplier(score int) float64 {
	return 1 + float64(score/50)*0.1
}

// newTossedEntity launches an entity from below the bottom edge so that
// it decelerates to exactly zero vertical velocity at a randomly sampled
// apex height. The apex band keeps peaks below the HUD and above the
// lower third of the screen.
func newTossedEntity(cfg Config, rng *rand.Rand, score int, kind Kind) *Entity {
	mult := SpeedMultiplier(score)
	gravity := cfg.BaseGravity * mult

	bandBottom := float64(cfg.ScreenHeight) * cfg.PeakBandBottomFrac
	peakY := cfg.PeakBandTop + rng.Float64()*(bandBottom-cfg.PeakBandTop)

	startY := float64(cfg.ScreenHeight) + cfg.SpawnOffsetY
	dist := startY - peakY
	vy := -math.Sqrt(2 * gravity * dist)

	x := spawnEdgeMargin + rng.Float64()*(float64(cfg.ScreenWidth)-2*spawnEdgeMargin)
	center := float64(cfg.ScreenWidth) / 2
	bias := (center - x) / center
	vx := bias*horizontalBias + (rng.Float64()-0.5)*horizontalJitter

	return &Entity{
		ID:            newEntityID(),
		Kind:          kind,
		X:             x,
		Y:             startY,
		VX:            vx,
		VY:            vy,
		Gravity:       gravity,
		RotationSpeed: (rng.Float64() - 0.5) * baseRotationRate * mult,
		Radius:        radiusForKind(kind),
		Variant:       rng.Intn(len(FruitPalette)),
	}
}
