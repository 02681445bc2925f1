package game

import (
	"image/color"
	"math"
	"math/rand"
)

// FruitPalette holds the fruit body colors; an entity's Variant indexes
// into it and its burst particles reuse the same color.
var FruitPalette = []color.NRGBA{
	{R: 226, G: 61, B: 54, A: 255},  // apple red
	{R: 243, G: 146, B: 35, A: 255}, // orange
	{R: 247, G: 208, B: 56, A: 255}, // lemon yellow
	{R: 112, G: 186, B: 68, A: 255}, // lime green
	{R: 156, G: 82, B: 178, A: 255}, // plum purple
}

// Burst colors for the non-fruit kinds.
var (
	colorBombSmoke = color.NRGBA{R: 48, G: 48, B: 52, A: 255}
	colorBombFlame = color.NRGBA{R: 235, G: 64, B: 52, A: 255}
	colorIceShard  = color.NRGBA{R: 185, G: 225, B: 255, A: 255}
	colorIceFrost  = color.NRGBA{R: 120, G: 180, B: 240, A: 255}
)

// Particle motion tuning, per tick.
const (
	particleDrag    = 0.96
	particleGravity = 0.12
	particleDecay   = 0.02
	particleSpeed   = 5.0 // max initial speed in px/tick
)

// ParticleShape selects the primitive a particle renders as.
type ParticleShape int

const (
	ShapeDisc ParticleShape = iota
	ShapeSquare
)

// Particle is purely decorative: it takes no part in collision and is
// dropped as soon as its life runs out.
type Particle struct {
	X, Y   float64
	VX, VY float64

	// Life in [0, 1], decays linearly; doubles as render opacity
	Life float64

	Color color.NRGBA
	Shape ParticleShape
}

// Advance integrates one tick: simple drag plus downward acceleration,
// then linear life decay.
func (p *Particle) Advance() {
	p.X += p.VX
	p.Y += p.VY
	p.VX *= particleDrag
	p.VY *= particleDrag
	p.VY += particleGravity
	p.Life -= particleDecay
}

// Alive reports whether the particle should keep rendering.
func (p *Particle) Alive() bool {
	return p.Life > 0
}

// newBurst scatters n particles of one color from a point in random
// directions.
func newBurst(rng *rand.Rand, x, y float64, n int, clr color.NRGBA) []Particle {
	burst := make([]Particle, 0, n)
	for i := 0; i < n; i++ {
		angle := rng.Float64() * 2 * math.Pi
		speed := 1 + rng.Float64()*(particleSpeed-1)
		shape := ShapeDisc
		if rng.Float64() < 0.5 {
			shape = ShapeSquare
		}
		burst = append(burst, Particle{
			X:     x,
			Y:     y,
			VX:    math.Cos(angle) * speed,
			VY:    math.Sin(angle)*speed - 1, // slight upward kick
			Life:  1,
			Color: clr,
			Shape: shape,
		})
	}
	return burst
}
